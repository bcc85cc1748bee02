package domain

import "time"

// OrderStatus represents the lifecycle state of an order. The backend owns
// the state machine; the client validates a transition before asking for it
// so an impossible request never leaves this service.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// validTransitions defines the allowed state machine transitions.
// Completed and cancelled are terminal.
var validTransitions = map[OrderStatus][]OrderStatus{
	OrderPending: {OrderCompleted, OrderCancelled},
}

// CanTransitionTo reports whether a transition from the current status to
// next is valid.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Order is an immutable snapshot of a cart taken at checkout, plus the
// backend-controlled status. Items are a point-in-time copy — later catalog
// edits do not reach into a placed order.
type Order struct {
	ID        int64       `json:"id"`
	UserID    int64       `json:"userId,omitempty"`
	Items     []CartItem  `json:"items"`
	Total     float64     `json:"totalAmount"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
}
