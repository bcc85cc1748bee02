package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/esghir/sales-frontend/internal/core/domain"
	"github.com/esghir/sales-frontend/internal/core/ports"
)

// OrderService surfaces order history and the two mutations the UI offers.
// The backend is the sole arbiter of order state; this side only refuses
// requests that the transition table already rules out.
type OrderService struct {
	orders ports.OrderAPI
	logger zerolog.Logger
}

func NewOrderService(orders ports.OrderAPI, logger zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, logger: logger}
}

func (s *OrderService) ListMine(ctx context.Context, sess *domain.Session) ([]domain.Order, error) {
	return s.orders.ListUserOrders(ctx, sess.Token, sess.User.ID)
}

func (s *OrderService) Get(ctx context.Context, sess *domain.Session, orderID int64) (*domain.Order, error) {
	return s.orders.GetOrder(ctx, sess.Token, orderID)
}

// Cancel asks the backend to cancel an order. Only pending orders can be
// cancelled, so anything already terminal is rejected locally.
func (s *OrderService) Cancel(ctx context.Context, sess *domain.Session, orderID int64) error {
	order, err := s.orders.GetOrder(ctx, sess.Token, orderID)
	if err != nil {
		return err
	}
	if !order.Status.CanTransitionTo(domain.OrderCancelled) {
		return domain.ErrInvalidTransition
	}
	if err := s.orders.CancelOrder(ctx, sess.Token, orderID); err != nil {
		return err
	}
	s.logger.Info().Int64("order_id", orderID).Msg("order cancelled")
	return nil
}

// UpdateStatus is the admin-panel status control.
func (s *OrderService) UpdateStatus(ctx context.Context, sess *domain.Session, orderID int64, status domain.OrderStatus) (*domain.Order, error) {
	if !sess.Authenticated() || !sess.User.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	order, err := s.orders.GetOrder(ctx, sess.Token, orderID)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(status) {
		return nil, domain.ErrInvalidTransition
	}
	return s.orders.UpdateOrderStatus(ctx, sess.Token, orderID, status)
}
