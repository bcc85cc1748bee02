package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/esghir/sales-frontend/internal/core/ports"
)

// AuthHandler owns the session cookie: register and login mint it,
// logout destroys it.
type AuthHandler struct {
	sessions     ports.SessionService
	cookieName   string
	cookieSecure bool
}

func NewAuthHandler(sessions ports.SessionService, cookieName string, cookieSecure bool) *AuthHandler {
	return &AuthHandler{sessions: sessions, cookieName: cookieName, cookieSecure: cookieSecure}
}

// Register creates an account on the backend and opens a session for it.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sess, err := h.sessions.Register(c.Request().Context(), ports.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	h.setCookie(c, sess.ID, sess.ExpiresAt)
	return c.JSON(http.StatusCreated, sessionResponse{User: sess.User, Cart: sess.Cart})
}

// Login authenticates against the backend and opens a session.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sess, err := h.sessions.Login(c.Request().Context(), ports.Credentials{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	h.setCookie(c, sess.ID, sess.ExpiresAt)
	return c.JSON(http.StatusOK, sessionResponse{User: sess.User, Cart: sess.Cart})
}

// Logout destroys the session whether or not the cookie still resolves.
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(h.cookieName); err == nil && cookie.Value != "" {
		if err := h.sessions.Logout(c.Request().Context(), cookie.Value); err != nil {
			return err
		}
	}
	h.clearCookie(c)
	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHandler) setCookie(c echo.Context, sessionID string, expires time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    sessionID,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
	})
}
