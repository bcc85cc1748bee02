package handler

import "github.com/esghir/sales-frontend/internal/core/domain"

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// sessionResponse is what auth endpoints return: the identity and the
// current cart snapshot. The bearer token stays server-side — the browser
// only ever sees the session cookie.
type sessionResponse struct {
	User *domain.User      `json:"user"`
	Cart []domain.CartItem `json:"cart"`
}
