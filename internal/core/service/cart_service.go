package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/esghir/sales-frontend/internal/api/metrics"
	"github.com/esghir/sales-frontend/internal/core/domain"
	"github.com/esghir/sales-frontend/internal/core/ports"
)

// CartService is the cart view-model. Mutations are server-confirmed: each
// one is sent to the backend and the session snapshot is then replaced by a
// full refresh, so local state never runs ahead of the server.
type CartService struct {
	sessions ports.SessionService
	carts    ports.CartAPI
	logger   zerolog.Logger
}

func NewCartService(sessions ports.SessionService, carts ports.CartAPI, logger zerolog.Logger) *CartService {
	return &CartService{sessions: sessions, carts: carts, logger: logger}
}

func (s *CartService) Items(ctx context.Context, sess *domain.Session) ([]domain.CartItem, error) {
	if err := s.sessions.RefreshCart(ctx, sess); err != nil {
		return nil, err
	}
	return sess.Cart, nil
}

func (s *CartService) Add(ctx context.Context, sess *domain.Session, productID int64, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}
	if err := s.carts.AddItem(ctx, sess.Token, sess.User.ID, productID, quantity); err != nil {
		return err
	}
	metrics.CartMutationsTotal.WithLabelValues("add").Inc()
	return s.sessions.RefreshCart(ctx, sess)
}

func (s *CartService) SetQuantity(ctx context.Context, sess *domain.Session, productID int64, quantity int) error {
	if quantity <= 0 {
		return s.Remove(ctx, sess, productID)
	}
	if err := s.carts.UpdateItem(ctx, sess.Token, sess.User.ID, productID, quantity); err != nil {
		return err
	}
	metrics.CartMutationsTotal.WithLabelValues("update").Inc()
	return s.sessions.RefreshCart(ctx, sess)
}

func (s *CartService) Remove(ctx context.Context, sess *domain.Session, productID int64) error {
	if err := s.carts.RemoveItem(ctx, sess.Token, sess.User.ID, productID); err != nil {
		return err
	}
	metrics.CartMutationsTotal.WithLabelValues("remove").Inc()
	return s.sessions.RefreshCart(ctx, sess)
}
