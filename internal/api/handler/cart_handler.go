package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/esghir/sales-frontend/internal/core/domain"
	"github.com/esghir/sales-frontend/internal/core/ports"
)

// CartHandler is the HTTP face of the cart view-model.
type CartHandler struct {
	cart ports.CartService
}

func NewCartHandler(cart ports.CartService) *CartHandler {
	return &CartHandler{cart: cart}
}

// Get returns the server-confirmed cart with its display total.
func (h *CartHandler) Get(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	items, err := h.cart.Items(c.Request().Context(), sess)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cartResponse{Items: items, Total: domain.CartTotal(items)})
}

// AddItem puts a product in the cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.cart.Add(c.Request().Context(), sess, req.ProductID, int(req.Quantity)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cartResponse{Items: sess.Cart, Total: domain.CartTotal(sess.Cart)})
}

// UpdateItem changes a line's quantity; zero removes the line.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	productID, err := pathID(c, "productId")
	if err != nil {
		return err
	}

	var req updateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.cart.SetQuantity(c.Request().Context(), sess, productID, req.Quantity); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cartResponse{Items: sess.Cart, Total: domain.CartTotal(sess.Cart)})
}

// RemoveItem deletes a line regardless of quantity.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	productID, err := pathID(c, "productId")
	if err != nil {
		return err
	}

	if err := h.cart.Remove(c.Request().Context(), sess, productID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cartResponse{Items: sess.Cart, Total: domain.CartTotal(sess.Cart)})
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}
