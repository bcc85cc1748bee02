package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/esghir/sales-frontend/internal/api/metrics"
	"github.com/esghir/sales-frontend/internal/core/domain"
	"github.com/esghir/sales-frontend/internal/core/ports"
)

// SessionService implements the session lifecycle over the backend auth API
// and a session repository.
type SessionService struct {
	auth   ports.AuthAPI
	carts  ports.CartAPI
	repo   ports.SessionRepository
	ttl    time.Duration
	logger zerolog.Logger
}

func NewSessionService(auth ports.AuthAPI, carts ports.CartAPI, repo ports.SessionRepository, ttl time.Duration, logger zerolog.Logger) *SessionService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionService{auth: auth, carts: carts, repo: repo, ttl: ttl, logger: logger}
}

func (s *SessionService) Login(ctx context.Context, creds ports.Credentials) (*domain.Session, error) {
	result, err := s.auth.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	if result == nil || result.User == nil || result.Token == "" {
		// A token without a user (or vice versa) would be a partial
		// session; reject the whole login instead.
		return nil, domain.ErrInvalidCredentials
	}

	sess := s.newSession(result)

	// Initial cart fetch is best-effort: a failure here opens the session
	// with an empty cart rather than failing the login.
	if items, err := s.carts.GetCart(ctx, sess.Token, sess.User.ID); err == nil {
		sess.Cart = items
	} else {
		s.logger.Warn().Err(err).Int64("user_id", sess.User.ID).Msg("initial cart fetch failed")
	}
	if sess.Cart == nil {
		sess.Cart = []domain.CartItem{}
	}

	if err := s.repo.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	metrics.SessionsStartedTotal.Inc()
	s.logger.Info().Str("session_id", sess.ID).Int64("user_id", sess.User.ID).Msg("session opened")
	return sess, nil
}

func (s *SessionService) Register(ctx context.Context, input ports.RegisterInput) (*domain.Session, error) {
	if _, err := s.auth.Register(ctx, input); err != nil {
		return nil, err
	}
	// Mirrors the storefront behaviour: a fresh account is logged in
	// immediately after registration.
	return s.Login(ctx, ports.Credentials{Username: input.Username, Password: input.Password})
}

func (s *SessionService) Logout(ctx context.Context, sessionID string) error {
	err := s.repo.Delete(ctx, sessionID)
	if err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
		return err
	}
	metrics.SessionsEndedTotal.WithLabelValues("logout").Inc()
	return nil
}

func (s *SessionService) Resolve(ctx context.Context, sessionID string) (*domain.Session, error) {
	sess, err := s.repo.Find(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Expired(time.Now()) {
		_ = s.Expire(ctx, sess.ID)
		return nil, domain.ErrSessionExpired
	}
	return sess, nil
}

func (s *SessionService) RefreshCart(ctx context.Context, sess *domain.Session) error {
	if !sess.Authenticated() {
		// No session, no request.
		return nil
	}

	items, err := s.carts.GetCart(ctx, sess.Token, sess.User.ID)
	switch {
	case errors.Is(err, domain.ErrSessionExpired):
		_ = s.Expire(ctx, sess.ID)
		return domain.ErrSessionExpired
	case err != nil:
		s.logger.Warn().Err(err).Int64("user_id", sess.User.ID).Msg("cart refresh failed, falling back to empty cart")
		items = nil
	}

	if items == nil {
		items = []domain.CartItem{}
	}
	sess.Cart = items

	if err := s.repo.Save(ctx, sess); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *SessionService) Expire(ctx context.Context, sessionID string) error {
	err := s.repo.Delete(ctx, sessionID)
	if err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
		return err
	}
	metrics.SessionsEndedTotal.WithLabelValues("expired").Inc()
	return nil
}

func (s *SessionService) newSession(result *ports.AuthResult) *domain.Session {
	now := time.Now().UTC()
	expires := now.Add(s.ttl)
	// The backend token carries its own deadline. The session never
	// outlives it: a token past exp would only bounce with 401s.
	if deadline, ok := tokenDeadline(result.Token); ok && deadline.Before(expires) {
		expires = deadline
	}
	return &domain.Session{
		ID:        uuid.NewString(),
		User:      result.User,
		Token:     result.Token,
		Cart:      []domain.CartItem{},
		CreatedAt: now,
		ExpiresAt: expires,
	}
}

// tokenDeadline extracts the exp claim without verifying the signature —
// this side never holds the backend's signing secret.
func tokenDeadline(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
