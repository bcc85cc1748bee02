package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/esghir/sales-frontend/internal/core/ports"
)

// Session resolves the visitor's session cookie and injects the session
// into the request context. Requests without a resolvable session stop
// here with 401; expired sessions surface domain.ErrSessionExpired so the
// central error handler can also drop the cookie.
func Session(sessions ports.SessionService, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing session")
			}

			sess, err := sessions.Resolve(c.Request().Context(), cookie.Value)
			if err != nil {
				return err
			}

			c.Set("session", sess)
			return next(c)
		}
	}
}
