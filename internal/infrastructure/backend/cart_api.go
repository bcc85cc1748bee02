package backend

import (
	"context"
	"strconv"

	"github.com/esghir/sales-frontend/internal/core/domain"
)

func (c *Client) GetCart(ctx context.Context, token string, userID int64) ([]domain.CartItem, error) {
	var cart domain.Cart
	resp, err := c.r(ctx, token).
		SetPathParam("userId", strconv.FormatInt(userID, 10)).
		SetResult(&cart).
		Get("/api/cart/{userId}")
	if err := c.check(resp, err, "cart", nil); err != nil {
		return nil, err
	}
	return cart.Items, nil
}

// AddItem and UpdateItem carry productId/quantity as query parameters;
// that is the shape the backend exposes for cart mutations.
func (c *Client) AddItem(ctx context.Context, token string, userID, productID int64, quantity int) error {
	resp, err := c.r(ctx, token).
		SetPathParam("userId", strconv.FormatInt(userID, 10)).
		SetQueryParams(map[string]string{
			"productId": strconv.FormatInt(productID, 10),
			"quantity":  strconv.Itoa(quantity),
		}).
		Post("/api/cart/{userId}/items")
	return c.check(resp, err, "cart", domain.ErrProductNotFound)
}

func (c *Client) UpdateItem(ctx context.Context, token string, userID, productID int64, quantity int) error {
	resp, err := c.r(ctx, token).
		SetPathParams(map[string]string{
			"userId":    strconv.FormatInt(userID, 10),
			"productId": strconv.FormatInt(productID, 10),
		}).
		SetQueryParam("quantity", strconv.Itoa(quantity)).
		Put("/api/cart/{userId}/items/{productId}")
	return c.check(resp, err, "cart", domain.ErrProductNotFound)
}

func (c *Client) RemoveItem(ctx context.Context, token string, userID, productID int64) error {
	resp, err := c.r(ctx, token).
		SetPathParams(map[string]string{
			"userId":    strconv.FormatInt(userID, 10),
			"productId": strconv.FormatInt(productID, 10),
		}).
		Delete("/api/cart/{userId}/items/{productId}")
	return c.check(resp, err, "cart", domain.ErrProductNotFound)
}

func (c *Client) ClearCart(ctx context.Context, token string, userID int64) error {
	resp, err := c.r(ctx, token).
		SetPathParam("userId", strconv.FormatInt(userID, 10)).
		Delete("/api/cart/{userId}")
	return c.check(resp, err, "cart", nil)
}
