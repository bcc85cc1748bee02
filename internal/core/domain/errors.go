package domain

import "errors"

// Backend failure taxonomy. Network trouble, auth expiry, and server-side
// faults each map to exactly one sentinel so call sites can branch with
// errors.Is instead of inspecting HTTP status codes.
var (
	ErrBackendUnavailable = errors.New("backend unreachable")
	ErrBackendFailure     = errors.New("backend request failed")
	ErrSessionExpired     = errors.New("session expired")
)

var (
	ErrSessionNotFound    = errors.New("session not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrForbidden          = errors.New("access forbidden")
	ErrProductNotFound    = errors.New("product not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrCartEmpty          = errors.New("cart is empty")
	ErrInvalidTransition  = errors.New("invalid status transition")
)

// ValidationError carries the backend's plain-text rejection message for a
// 4xx response, surfaced to the shopper as-is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
