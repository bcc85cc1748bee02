package backend

import (
	"context"
	"strconv"

	"github.com/esghir/sales-frontend/internal/core/domain"
	"github.com/esghir/sales-frontend/internal/core/ports"
)

type productPayload struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
}

func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	resp, err := c.r(ctx, "").
		SetResult(&products).
		Get("/api/products")
	if err := c.check(resp, err, "products", nil); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	var product domain.Product
	resp, err := c.r(ctx, "").
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&product).
		Get("/api/products/{id}")
	if err := c.check(resp, err, "products", domain.ErrProductNotFound); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) CreateProduct(ctx context.Context, token string, input ports.ProductInput) (*domain.Product, error) {
	var product domain.Product
	resp, err := c.r(ctx, token).
		SetBody(toProductPayload(input)).
		SetResult(&product).
		Post("/api/products")
	if err := c.check(resp, err, "products", nil); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) UpdateProduct(ctx context.Context, token string, id int64, input ports.ProductInput) (*domain.Product, error) {
	var product domain.Product
	resp, err := c.r(ctx, token).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(toProductPayload(input)).
		SetResult(&product).
		Put("/api/products/{id}")
	if err := c.check(resp, err, "products", domain.ErrProductNotFound); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) DeleteProduct(ctx context.Context, token string, id int64) error {
	resp, err := c.r(ctx, token).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/api/products/{id}")
	return c.check(resp, err, "products", domain.ErrProductNotFound)
}

func toProductPayload(input ports.ProductInput) productPayload {
	return productPayload{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		Image:       input.Image,
		Category:    input.Category,
	}
}
