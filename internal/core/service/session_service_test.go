package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/esghir/sales-frontend/internal/core/domain"
	"github.com/esghir/sales-frontend/internal/core/ports"
)

func newSessionService(auth *stubAuthAPI, carts *stubCartAPI, repo *stubSessionRepo) *SessionService {
	return NewSessionService(auth, carts, repo, time.Hour, zerolog.Nop())
}

func okLogin(token string) func(context.Context, ports.Credentials) (*ports.AuthResult, error) {
	return func(context.Context, ports.Credentials) (*ports.AuthResult, error) {
		return &ports.AuthResult{Token: token, User: testUser()}, nil
	}
}

func TestSessionService_Login_Success(t *testing.T) {
	auth := &stubAuthAPI{loginFn: okLogin("tok-1")}
	carts := &stubCartAPI{items: testItems()}
	repo := newStubSessionRepo()
	svc := newSessionService(auth, carts, repo)

	sess, err := svc.Login(context.Background(), ports.Credentials{Username: "alice", Password: "pw"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if sess.User == nil || sess.Token == "" {
		t.Fatalf("expected user and token set together, got %+v", sess)
	}
	if len(sess.Cart) != 2 {
		t.Fatalf("expected initial cart fetch, got %d items", len(sess.Cart))
	}
	if _, err := repo.Find(context.Background(), sess.ID); err != nil {
		t.Fatalf("session not persisted: %v", err)
	}
}

func TestSessionService_Login_CartFetchFailureDegradesToEmpty(t *testing.T) {
	auth := &stubAuthAPI{loginFn: okLogin("tok-1")}
	carts := &stubCartAPI{getErr: domain.ErrBackendFailure}
	svc := newSessionService(auth, carts, newStubSessionRepo())

	sess, err := svc.Login(context.Background(), ports.Credentials{Username: "alice", Password: "pw"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if len(sess.Cart) != 0 {
		t.Fatalf("expected empty cart, got %d items", len(sess.Cart))
	}
}

func TestSessionService_Login_PartialResultRejected(t *testing.T) {
	auth := &stubAuthAPI{loginFn: func(context.Context, ports.Credentials) (*ports.AuthResult, error) {
		return &ports.AuthResult{Token: "tok-1"}, nil // token without user
	}}
	svc := newSessionService(auth, &stubCartAPI{}, newStubSessionRepo())

	if _, err := svc.Login(context.Background(), ports.Credentials{Username: "a", Password: "b"}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestSessionService_Login_TokenDeadlineClampsExpiry(t *testing.T) {
	exp := time.Now().Add(5 * time.Minute)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice",
		"exp": exp.Unix(),
	}).SignedString([]byte("backend-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	auth := &stubAuthAPI{loginFn: okLogin(token)}
	svc := newSessionService(auth, &stubCartAPI{}, newStubSessionRepo())

	sess, err := svc.Login(context.Background(), ports.Credentials{Username: "alice", Password: "pw"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if sess.ExpiresAt.After(exp.Add(time.Second)) {
		t.Fatalf("session outlives token: session %v, token %v", sess.ExpiresAt, exp)
	}
}

func TestSessionService_Register_LogsInAfterwards(t *testing.T) {
	auth := &stubAuthAPI{
		registerFn: func(context.Context, ports.RegisterInput) (*ports.AuthResult, error) {
			return &ports.AuthResult{}, nil
		},
		loginFn: okLogin("tok-1"),
	}
	svc := newSessionService(auth, &stubCartAPI{}, newStubSessionRepo())

	sess, err := svc.Register(context.Background(), ports.RegisterInput{Username: "alice", Email: "a@example.com", Password: "pw"})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if auth.registerCalls != 1 || auth.loginCalls != 1 {
		t.Fatalf("expected register then login, got %d/%d", auth.registerCalls, auth.loginCalls)
	}
	if !sess.Authenticated() {
		t.Fatalf("expected authenticated session after register")
	}
}

func TestSessionService_Logout_DestroysWholeSession(t *testing.T) {
	repo := newStubSessionRepo()
	svc := newSessionService(&stubAuthAPI{}, &stubCartAPI{}, repo)

	sess := testSession()
	if err := repo.Create(context.Background(), sess); err != nil {
		t.Fatalf("seed session: %v", err)
	}

	if err := svc.Logout(context.Background(), sess.ID); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if _, err := repo.Find(context.Background(), sess.ID); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected session gone, got %v", err)
	}

	// Unknown IDs are not an error.
	if err := svc.Logout(context.Background(), "ghost"); err != nil {
		t.Fatalf("logout of unknown session: %v", err)
	}
}

func TestSessionService_RefreshCart_NoSessionNoRequest(t *testing.T) {
	carts := &stubCartAPI{items: testItems()}
	svc := newSessionService(&stubAuthAPI{}, carts, newStubSessionRepo())

	sess := &domain.Session{ID: "anon"}
	if err := svc.RefreshCart(context.Background(), sess); err != nil {
		t.Fatalf("RefreshCart returned error: %v", err)
	}
	if len(carts.calls) != 0 {
		t.Fatalf("expected no backend request, got %v", carts.calls)
	}
	if len(sess.Cart) != 0 {
		t.Fatalf("cart should be unchanged")
	}
}

func TestSessionService_RefreshCart_ReplacesSnapshot(t *testing.T) {
	carts := &stubCartAPI{items: testItems()}
	repo := newStubSessionRepo()
	svc := newSessionService(&stubAuthAPI{}, carts, repo)

	sess := testSession()
	_ = repo.Create(context.Background(), sess)

	if err := svc.RefreshCart(context.Background(), sess); err != nil {
		t.Fatalf("RefreshCart returned error: %v", err)
	}
	if len(sess.Cart) != 2 {
		t.Fatalf("expected 2 items, got %d", len(sess.Cart))
	}

	stored, _ := repo.Find(context.Background(), sess.ID)
	if len(stored.Cart) != 2 {
		t.Fatalf("refresh not persisted")
	}
}

func TestSessionService_RefreshCart_FailureFallsBackToEmpty(t *testing.T) {
	carts := &stubCartAPI{getErr: domain.ErrBackendUnavailable}
	repo := newStubSessionRepo()
	svc := newSessionService(&stubAuthAPI{}, carts, repo)

	sess := testSession()
	sess.Cart = testItems()
	_ = repo.Create(context.Background(), sess)

	if err := svc.RefreshCart(context.Background(), sess); err != nil {
		t.Fatalf("expected degraded refresh, got error %v", err)
	}
	if len(sess.Cart) != 0 {
		t.Fatalf("expected empty cart after failed refresh, got %d items", len(sess.Cart))
	}
}

func TestSessionService_RefreshCart_ExpiryDestroysSession(t *testing.T) {
	carts := &stubCartAPI{getErr: domain.ErrSessionExpired}
	repo := newStubSessionRepo()
	svc := newSessionService(&stubAuthAPI{}, carts, repo)

	sess := testSession()
	_ = repo.Create(context.Background(), sess)

	if err := svc.RefreshCart(context.Background(), sess); !errors.Is(err, domain.ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
	if _, err := repo.Find(context.Background(), sess.ID); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected session destroyed on expiry signal")
	}
}

func TestSessionService_Resolve_ExpiredSession(t *testing.T) {
	repo := newStubSessionRepo()
	svc := newSessionService(&stubAuthAPI{}, &stubCartAPI{}, repo)

	sess := testSession()
	sess.ExpiresAt = time.Now().Add(-time.Minute)
	_ = repo.Create(context.Background(), sess)

	if _, err := svc.Resolve(context.Background(), sess.ID); !errors.Is(err, domain.ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
	if _, err := repo.Find(context.Background(), sess.ID); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected expired session reaped")
	}
}
