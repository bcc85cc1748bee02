package ports

import (
	"context"

	"github.com/esghir/sales-frontend/internal/core/domain"
)

// CheckoutForm is the billing and payment data collected at checkout.
// It is validated for presence only, passed through, and never persisted.
type CheckoutForm struct {
	FullName   string
	Email      string
	Address    string
	City       string
	ZipCode    string
	Country    string
	CardNumber string
	CardExpiry string
	CardCVC    string
}

// CheckoutResult reports where the linear checkout flow ended up.
type CheckoutResult struct {
	State    domain.CheckoutState
	Order    *domain.Order
	Redirect string
}

// CheckoutService drives the order placement flow: create the order from
// the current cart, then clear the cart, in that order. A failed order
// creation leaves the cart untouched; there is no partial clear.
type CheckoutService interface {
	Submit(ctx context.Context, sess *domain.Session, form CheckoutForm) (*CheckoutResult, error)
}
