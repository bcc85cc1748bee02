// Package session provides the SessionRepository implementations: an
// in-memory store for single-instance deployments and tests, and a Redis
// store for anything that needs to survive a restart or scale out.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/esghir/sales-frontend/internal/core/domain"
	"github.com/esghir/sales-frontend/internal/core/ports"
)

const defaultSweepInterval = time.Minute

// MemoryRepository keeps sessions in a map guarded by a RWMutex. Entries
// past their deadline are invisible to Find and reaped by the janitor.
type MemoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
}

var _ ports.SessionRepository = (*MemoryRepository)(nil)

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{sessions: make(map[string]*domain.Session)}
}

func (r *MemoryRepository) Create(_ context.Context, sess *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[sess.ID] = cloneSession(sess)
	return nil
}

func (r *MemoryRepository) Find(_ context.Context, id string) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sess, ok := r.sessions[id]
	if !ok || sess.Expired(time.Now()) {
		return nil, domain.ErrSessionNotFound
	}
	return cloneSession(sess), nil
}

func (r *MemoryRepository) Save(_ context.Context, sess *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[sess.ID]; !ok {
		return domain.ErrSessionNotFound
	}
	r.sessions[sess.ID] = cloneSession(sess)
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

// Ping satisfies the readiness probe; the map is always reachable.
func (r *MemoryRepository) Ping(context.Context) error {
	return nil
}

// StartJanitor launches a goroutine that reaps expired sessions every
// interval until ctx is cancelled.
func (r *MemoryRepository) StartJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.sweep(time.Now())
			}
		}
	}()
}

func (r *MemoryRepository) sweep(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, sess := range r.sessions {
		if sess.Expired(now) {
			delete(r.sessions, id)
		}
	}
}

// cloneSession copies the session so callers never share mutable state
// with the store.
func cloneSession(sess *domain.Session) *domain.Session {
	clone := *sess
	if sess.User != nil {
		user := *sess.User
		clone.User = &user
	}
	if sess.Cart != nil {
		clone.Cart = make([]domain.CartItem, len(sess.Cart))
		copy(clone.Cart, sess.Cart)
	}
	return &clone
}
