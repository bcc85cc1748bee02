package ports

import (
	"context"

	"github.com/esghir/sales-frontend/internal/core/domain"
)

// SessionRepository persists per-visitor session state keyed by the cookie
// ID. Implementations must return domain.ErrSessionNotFound for unknown or
// already-expired IDs.
type SessionRepository interface {
	Create(ctx context.Context, sess *domain.Session) error
	Find(ctx context.Context, id string) (*domain.Session, error)
	Save(ctx context.Context, sess *domain.Session) error
	Delete(ctx context.Context, id string) error
}
