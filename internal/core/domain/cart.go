package domain

import "math"

// CartItem pairs a catalog product with the quantity held in the cart.
// Quantity is a positive integer while the item is present; removing the
// last unit deletes the line instead of leaving it at zero.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal is unit price times quantity for one line.
func (i CartItem) Subtotal() float64 {
	return i.Product.Price * float64(i.Quantity)
}

// Cart is the pending collection of items for one user. The backend owns
// the authoritative copy; what lives here is the session's last-known
// snapshot of it.
type Cart struct {
	UserID int64      `json:"userId"`
	Items  []CartItem `json:"items"`
}

// CartTotal sums price times quantity across items, rounded to two
// decimals. Display value only — the backend computes the order total.
func CartTotal(items []CartItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Subtotal()
	}
	return math.Round(sum*100) / 100
}
