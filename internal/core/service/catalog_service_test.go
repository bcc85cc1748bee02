package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/esghir/sales-frontend/internal/core/domain"
	"github.com/esghir/sales-frontend/internal/core/ports"
)

type stubCatalogAPI struct {
	product *domain.Product
	calls   []string
}

func (s *stubCatalogAPI) ListProducts(context.Context) ([]domain.Product, error) {
	s.calls = append(s.calls, "list")
	return []domain.Product{*s.product}, nil
}

func (s *stubCatalogAPI) GetProduct(context.Context, int64) (*domain.Product, error) {
	s.calls = append(s.calls, "get")
	return s.product, nil
}

func (s *stubCatalogAPI) CreateProduct(context.Context, string, ports.ProductInput) (*domain.Product, error) {
	s.calls = append(s.calls, "create")
	return s.product, nil
}

func (s *stubCatalogAPI) UpdateProduct(context.Context, string, int64, ports.ProductInput) (*domain.Product, error) {
	s.calls = append(s.calls, "update")
	return s.product, nil
}

func (s *stubCatalogAPI) DeleteProduct(context.Context, string, int64) error {
	s.calls = append(s.calls, "delete")
	return nil
}

func TestCatalogService_CreateRequiresAdmin(t *testing.T) {
	catalog := &stubCatalogAPI{product: &domain.Product{ID: 1, Name: "mug", Price: 10}}
	svc := NewCatalogService(catalog, zerolog.Nop())

	if _, err := svc.Create(context.Background(), testSession(), ports.ProductInput{Name: "mug", Price: 10}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if len(catalog.calls) != 0 {
		t.Fatalf("token must not leave the service for non-admins, got %v", catalog.calls)
	}
}

func TestCatalogService_AdminCRUD(t *testing.T) {
	catalog := &stubCatalogAPI{product: &domain.Product{ID: 1, Name: "mug", Price: 10}}
	svc := NewCatalogService(catalog, zerolog.Nop())
	sess := adminSession()

	if _, err := svc.Create(context.Background(), sess, ports.ProductInput{Name: "mug", Price: 10}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := svc.Update(context.Background(), sess, 1, ports.ProductInput{Name: "mug", Price: 12}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if err := svc.Delete(context.Background(), sess, 1); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	want := []string{"create", "update", "delete"}
	for i, call := range want {
		if catalog.calls[i] != call {
			t.Fatalf("expected calls %v, got %v", want, catalog.calls)
		}
	}
}

func TestCatalogService_PublicReads(t *testing.T) {
	catalog := &stubCatalogAPI{product: &domain.Product{ID: 1, Name: "mug", Price: 10}}
	svc := NewCatalogService(catalog, zerolog.Nop())

	products, err := svc.List(context.Background())
	if err != nil || len(products) != 1 {
		t.Fatalf("List: %v %v", products, err)
	}
	product, err := svc.Get(context.Background(), 1)
	if err != nil || product.ID != 1 {
		t.Fatalf("Get: %+v %v", product, err)
	}
}
