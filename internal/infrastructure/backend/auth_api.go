package backend

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/esghir/sales-frontend/internal/core/domain"
	"github.com/esghir/sales-frontend/internal/core/ports"
)

type registerPayload struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authPayload struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

func (c *Client) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	var result authPayload
	resp, err := c.r(ctx, "").
		SetBody(registerPayload{Username: input.Username, Email: input.Email, Password: input.Password}).
		SetResult(&result).
		Post("/api/auth/register")
	if err := c.checkAuth(resp, err); err != nil {
		return nil, err
	}
	return &ports.AuthResult{Token: result.Token, User: result.User}, nil
}

func (c *Client) Login(ctx context.Context, creds ports.Credentials) (*ports.AuthResult, error) {
	var result authPayload
	resp, err := c.r(ctx, "").
		SetBody(loginPayload{Username: creds.Username, Password: creds.Password}).
		SetResult(&result).
		Post("/api/auth/login")
	if err := c.checkAuth(resp, err); err != nil {
		return nil, err
	}
	return &ports.AuthResult{Token: result.Token, User: result.User}, nil
}

// checkAuth layers auth-specific meanings over the generic mapping: a 401
// here is a credential rejection, not an expired session, and a 409 on
// register means the account already exists.
func (c *Client) checkAuth(resp *resty.Response, err error) error {
	mapped := c.check(resp, err, "auth", nil)
	if mapped == nil {
		return nil
	}
	if errors.Is(mapped, domain.ErrSessionExpired) {
		return domain.ErrInvalidCredentials
	}
	if resp != nil && resp.StatusCode() == http.StatusConflict {
		return domain.ErrUserExists
	}
	return mapped
}
