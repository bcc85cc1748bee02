package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/esghir/sales-frontend/internal/core/domain"
	"github.com/esghir/sales-frontend/internal/core/ports"
)

// CatalogService wraps the backend catalog API. Reads pass straight
// through; the CRUD half belongs to the admin panel and checks the
// session's role before the token ever leaves this service.
type CatalogService struct {
	catalog ports.CatalogAPI
	logger  zerolog.Logger
}

func NewCatalogService(catalog ports.CatalogAPI, logger zerolog.Logger) *CatalogService {
	return &CatalogService{catalog: catalog, logger: logger}
}

func (s *CatalogService) List(ctx context.Context) ([]domain.Product, error) {
	return s.catalog.ListProducts(ctx)
}

func (s *CatalogService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	return s.catalog.GetProduct(ctx, id)
}

func (s *CatalogService) Create(ctx context.Context, sess *domain.Session, input ports.ProductInput) (*domain.Product, error) {
	if !sess.Authenticated() || !sess.User.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	product, err := s.catalog.CreateProduct(ctx, sess.Token, input)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("product_id", product.ID).Str("name", product.Name).Msg("product created")
	return product, nil
}

func (s *CatalogService) Update(ctx context.Context, sess *domain.Session, id int64, input ports.ProductInput) (*domain.Product, error) {
	if !sess.Authenticated() || !sess.User.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return s.catalog.UpdateProduct(ctx, sess.Token, id, input)
}

func (s *CatalogService) Delete(ctx context.Context, sess *domain.Session, id int64) error {
	if !sess.Authenticated() || !sess.User.IsAdmin() {
		return domain.ErrForbidden
	}
	if err := s.catalog.DeleteProduct(ctx, sess.Token, id); err != nil {
		return err
	}
	s.logger.Info().Int64("product_id", id).Msg("product deleted")
	return nil
}
