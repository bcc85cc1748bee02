package backend

import (
	"context"
	"strconv"

	"github.com/esghir/sales-frontend/internal/core/domain"
)

func (c *Client) ListUserOrders(ctx context.Context, token string, userID int64) ([]domain.Order, error) {
	var orders []domain.Order
	resp, err := c.r(ctx, token).
		SetPathParam("userId", strconv.FormatInt(userID, 10)).
		SetResult(&orders).
		Get("/api/orders/user/{userId}")
	if err := c.check(resp, err, "orders", nil); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) GetOrder(ctx context.Context, token string, orderID int64) (*domain.Order, error) {
	var order domain.Order
	resp, err := c.r(ctx, token).
		SetPathParam("id", strconv.FormatInt(orderID, 10)).
		SetResult(&order).
		Get("/api/orders/{id}")
	if err := c.check(resp, err, "orders", domain.ErrOrderNotFound); err != nil {
		return nil, err
	}
	return &order, nil
}

// CreateOrder snapshots the user's current backend cart into a new order.
// The body is empty on purpose: the backend derives everything from the
// cart it already holds.
func (c *Client) CreateOrder(ctx context.Context, token string, userID int64) (*domain.Order, error) {
	var order domain.Order
	resp, err := c.r(ctx, token).
		SetPathParam("userId", strconv.FormatInt(userID, 10)).
		SetResult(&order).
		Post("/api/orders/user/{userId}")
	if err := c.check(resp, err, "orders", nil); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) CancelOrder(ctx context.Context, token string, orderID int64) error {
	resp, err := c.r(ctx, token).
		SetPathParam("id", strconv.FormatInt(orderID, 10)).
		Post("/api/orders/{id}/cancel")
	return c.check(resp, err, "orders", domain.ErrOrderNotFound)
}

func (c *Client) UpdateOrderStatus(ctx context.Context, token string, orderID int64, status domain.OrderStatus) (*domain.Order, error) {
	var order domain.Order
	resp, err := c.r(ctx, token).
		SetPathParam("id", strconv.FormatInt(orderID, 10)).
		SetQueryParam("status", string(status)).
		SetResult(&order).
		Put("/api/orders/{id}/status")
	if err := c.check(resp, err, "orders", domain.ErrOrderNotFound); err != nil {
		return nil, err
	}
	return &order, nil
}
