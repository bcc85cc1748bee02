package ports

import (
	"context"

	"github.com/esghir/sales-frontend/internal/core/domain"
)

// OrderService surfaces the order history and the two mutations the UI
// offers: a shopper cancelling a pending order, and an admin driving the
// status machine. Status changes are validated against the transition
// table before any request is sent.
type OrderService interface {
	ListMine(ctx context.Context, sess *domain.Session) ([]domain.Order, error)
	Get(ctx context.Context, sess *domain.Session, orderID int64) (*domain.Order, error)
	Cancel(ctx context.Context, sess *domain.Session, orderID int64) error
	UpdateStatus(ctx context.Context, sess *domain.Session, orderID int64, status domain.OrderStatus) (*domain.Order, error)
}
