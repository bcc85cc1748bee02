package ports

import (
	"context"

	"github.com/esghir/sales-frontend/internal/core/domain"
)

// CartService is the cart view-model: every mutation goes to the backend
// first and the session snapshot is re-synchronized from the confirmed
// server state afterwards. Local state is provisional by design.
type CartService interface {
	// Items refreshes and returns the current cart lines.
	Items(ctx context.Context, sess *domain.Session) ([]domain.CartItem, error)

	// Add puts quantity units of a product in the cart. Quantities below
	// one are clamped to one.
	Add(ctx context.Context, sess *domain.Session, productID int64, quantity int) error

	// SetQuantity changes a line's quantity. Zero or negative behaves
	// exactly like Remove.
	SetQuantity(ctx context.Context, sess *domain.Session, productID int64, quantity int) error

	// Remove deletes a line regardless of its quantity.
	Remove(ctx context.Context, sess *domain.Session, productID int64) error
}
