package ports

import (
	"context"

	"github.com/esghir/sales-frontend/internal/core/domain"
)

// The backend API is consumed as four resource groups, one typed method per
// endpoint. Protected calls take the session's bearer token explicitly —
// the client does not manage the token lifecycle, the caller does.

// Credentials is the login payload.
type Credentials struct {
	Username string
	Password string
}

// RegisterInput is the account creation payload.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// AuthResult is what the backend returns from register and login.
type AuthResult struct {
	Token string
	User  *domain.User
}

// ProductInput carries the admin-editable fields of a catalog item.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	Image       string
	Category    string
}

type AuthAPI interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, creds Credentials) (*AuthResult, error)
}

type CatalogAPI interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	CreateProduct(ctx context.Context, token string, input ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, token string, id int64, input ProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, token string, id int64) error
}

type CartAPI interface {
	GetCart(ctx context.Context, token string, userID int64) ([]domain.CartItem, error)
	AddItem(ctx context.Context, token string, userID, productID int64, quantity int) error
	UpdateItem(ctx context.Context, token string, userID, productID int64, quantity int) error
	RemoveItem(ctx context.Context, token string, userID, productID int64) error
	ClearCart(ctx context.Context, token string, userID int64) error
}

type OrderAPI interface {
	ListUserOrders(ctx context.Context, token string, userID int64) ([]domain.Order, error)
	GetOrder(ctx context.Context, token string, orderID int64) (*domain.Order, error)
	CreateOrder(ctx context.Context, token string, userID int64) (*domain.Order, error)
	CancelOrder(ctx context.Context, token string, orderID int64) error
	UpdateOrderStatus(ctx context.Context, token string, orderID int64, status domain.OrderStatus) (*domain.Order, error)
}
