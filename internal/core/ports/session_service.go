package ports

import (
	"context"

	"github.com/esghir/sales-frontend/internal/core/domain"
)

// SessionService owns the {user, token, cart} triple for each visitor.
// All three travel together: login sets user and token atomically, logout
// and expiry destroy the whole session, and the cart snapshot is only ever
// replaced wholesale by a refresh.
type SessionService interface {
	// Login authenticates against the backend and opens a session. The
	// initial cart fetch is best-effort; a failure leaves an empty cart.
	Login(ctx context.Context, creds Credentials) (*domain.Session, error)

	// Register creates the account and immediately logs it in.
	Register(ctx context.Context, input RegisterInput) (*domain.Session, error)

	// Logout destroys the session. Unknown IDs are not an error.
	Logout(ctx context.Context, sessionID string) error

	// Resolve loads a session by cookie ID, enforcing local expiry.
	Resolve(ctx context.Context, sessionID string) (*domain.Session, error)

	// RefreshCart replaces the session's cart snapshot with the backend's
	// current state. No-op without an authenticated session; any backend
	// failure other than auth expiry degrades to an empty cart.
	RefreshCart(ctx context.Context, sess *domain.Session) error

	// Expire destroys a session in reaction to the authentication-expiry
	// signal (a 401 from the backend or a passed token deadline).
	Expire(ctx context.Context, sessionID string) error
}
