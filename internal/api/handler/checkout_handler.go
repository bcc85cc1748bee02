package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/esghir/sales-frontend/internal/core/ports"
)

// CheckoutHandler runs the order placement flow.
type CheckoutHandler struct {
	checkout ports.CheckoutService
}

func NewCheckoutHandler(checkout ports.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// Submit validates the billing form and places the order. On success the
// response carries the redirect target; on failure the cart stands and the
// error message goes back to the form.
func (h *CheckoutHandler) Submit(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.checkout.Submit(c.Request().Context(), sess, ports.CheckoutForm{
		FullName:   req.FullName,
		Email:      req.Email,
		Address:    req.Address,
		City:       req.City,
		ZipCode:    req.ZipCode,
		Country:    req.Country,
		CardNumber: req.CardNumber,
		CardExpiry: req.CardExpiry,
		CardCVC:    req.CardCVC,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, checkoutResponse{
		State:    result.State,
		Order:    result.Order,
		Redirect: result.Redirect,
	})
}
