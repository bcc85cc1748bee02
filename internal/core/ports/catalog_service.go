package ports

import (
	"context"

	"github.com/esghir/sales-frontend/internal/core/domain"
)

// CatalogService exposes the product catalog. Reads are public; the CRUD
// operations belong to the admin panel and require an admin session.
type CatalogService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)

	Create(ctx context.Context, sess *domain.Session, input ProductInput) (*domain.Product, error)
	Update(ctx context.Context, sess *domain.Session, id int64, input ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, sess *domain.Session, id int64) error
}
