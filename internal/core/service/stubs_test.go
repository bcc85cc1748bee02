package service

import (
	"context"
	"sync"
	"time"

	"github.com/esghir/sales-frontend/internal/core/domain"
	"github.com/esghir/sales-frontend/internal/core/ports"
)

// --- backend API stubs ---

type stubAuthAPI struct {
	registerFn func(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error)
	loginFn    func(ctx context.Context, creds ports.Credentials) (*ports.AuthResult, error)

	registerCalls int
	loginCalls    int
}

func (s *stubAuthAPI) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	s.registerCalls++
	return s.registerFn(ctx, input)
}

func (s *stubAuthAPI) Login(ctx context.Context, creds ports.Credentials) (*ports.AuthResult, error) {
	s.loginCalls++
	return s.loginFn(ctx, creds)
}

// stubCartAPI serves a fixed item set and records every call in order.
type stubCartAPI struct {
	items  []domain.CartItem
	getErr error

	addErr    error
	updateErr error
	removeErr error
	clearErr  error

	calls []string
}

func (s *stubCartAPI) GetCart(context.Context, string, int64) ([]domain.CartItem, error) {
	s.calls = append(s.calls, "get")
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.items, nil
}

func (s *stubCartAPI) AddItem(_ context.Context, _ string, _, _ int64, _ int) error {
	s.calls = append(s.calls, "add")
	return s.addErr
}

func (s *stubCartAPI) UpdateItem(_ context.Context, _ string, _, _ int64, _ int) error {
	s.calls = append(s.calls, "update")
	return s.updateErr
}

func (s *stubCartAPI) RemoveItem(context.Context, string, int64, int64) error {
	s.calls = append(s.calls, "remove")
	return s.removeErr
}

func (s *stubCartAPI) ClearCart(context.Context, string, int64) error {
	s.calls = append(s.calls, "clear")
	return s.clearErr
}

type stubOrderAPI struct {
	order     *domain.Order
	createErr error
	cancelErr error
	getErr    error

	calls []string
}

func (s *stubOrderAPI) ListUserOrders(context.Context, string, int64) ([]domain.Order, error) {
	s.calls = append(s.calls, "list")
	if s.order == nil {
		return nil, nil
	}
	return []domain.Order{*s.order}, nil
}

func (s *stubOrderAPI) GetOrder(context.Context, string, int64) (*domain.Order, error) {
	s.calls = append(s.calls, "get")
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.order, nil
}

func (s *stubOrderAPI) CreateOrder(context.Context, string, int64) (*domain.Order, error) {
	s.calls = append(s.calls, "create")
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.order, nil
}

func (s *stubOrderAPI) CancelOrder(context.Context, string, int64) error {
	s.calls = append(s.calls, "cancel")
	return s.cancelErr
}

func (s *stubOrderAPI) UpdateOrderStatus(_ context.Context, _ string, _ int64, status domain.OrderStatus) (*domain.Order, error) {
	s.calls = append(s.calls, "update_status")
	updated := *s.order
	updated.Status = status
	return &updated, nil
}

// --- session repository stub ---

type stubSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*domain.Session
	saves    int
}

func newStubSessionRepo() *stubSessionRepo {
	return &stubSessionRepo{sessions: make(map[string]*domain.Session)}
}

func (r *stubSessionRepo) Create(_ context.Context, sess *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *sess
	r.sessions[sess.ID] = &clone
	return nil
}

func (r *stubSessionRepo) Find(_ context.Context, id string) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sess, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	clone := *sess
	return &clone, nil
}

func (r *stubSessionRepo) Save(_ context.Context, sess *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++
	clone := *sess
	r.sessions[sess.ID] = &clone
	return nil
}

func (r *stubSessionRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

// --- helpers ---

func testUser() *domain.User {
	return &domain.User{ID: 7, Name: "alice", Email: "alice@example.com", Role: domain.RoleCustomer}
}

func testSession() *domain.Session {
	now := time.Now().UTC()
	return &domain.Session{
		ID:        "sess-1",
		User:      testUser(),
		Token:     "tok-1",
		Cart:      []domain.CartItem{},
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
}

func testItems() []domain.CartItem {
	return []domain.CartItem{
		{Product: domain.Product{ID: 1, Name: "mug", Price: 10}, Quantity: 2},
		{Product: domain.Product{ID: 2, Name: "cap", Price: 5}, Quantity: 1},
	}
}
