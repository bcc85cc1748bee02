package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/esghir/sales-frontend/internal/core/domain"
)

// ctxSession extracts the session injected by the Session middleware and
// fast-fails before any service call: an unauthenticated session on a
// protected route means the middleware chain was miswired.
func ctxSession(c echo.Context) (*domain.Session, error) {
	sess, _ := c.Get("session").(*domain.Session)
	if !sess.Authenticated() {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return sess, nil
}
