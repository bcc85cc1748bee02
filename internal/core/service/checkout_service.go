package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/esghir/sales-frontend/internal/api/metrics"
	"github.com/esghir/sales-frontend/internal/core/domain"
	"github.com/esghir/sales-frontend/internal/core/ports"
)

// CheckoutService drives the linear submission flow:
//
//	FormEditing → Submitting → OrderCreated → CartCleared → Redirected
//
// A failure at either backend call ends in SubmissionFailed. The order
// create strictly precedes the cart clear, and a failed create never
// touches the cart.
type CheckoutService struct {
	orders ports.OrderAPI
	carts  ports.CartAPI
	repo   ports.SessionRepository
	logger zerolog.Logger
}

func NewCheckoutService(orders ports.OrderAPI, carts ports.CartAPI, repo ports.SessionRepository, logger zerolog.Logger) *CheckoutService {
	return &CheckoutService{orders: orders, carts: carts, repo: repo, logger: logger}
}

// Submit places an order from the current cart. The billing form has
// already been presence-validated at the transport boundary; it is not
// persisted anywhere and the backend snapshot of the cart becomes the
// order's item list.
func (s *CheckoutService) Submit(ctx context.Context, sess *domain.Session, form ports.CheckoutForm) (*ports.CheckoutResult, error) {
	if len(sess.Cart) == 0 {
		return &ports.CheckoutResult{State: domain.CheckoutFormEditing}, domain.ErrCartEmpty
	}

	order, err := s.orders.CreateOrder(ctx, sess.Token, sess.User.ID)
	if err != nil {
		metrics.CheckoutsTotal.WithLabelValues(string(domain.CheckoutFailed)).Inc()
		s.logger.Warn().Err(err).Int64("user_id", sess.User.ID).Msg("order creation failed")
		return &ports.CheckoutResult{State: domain.CheckoutFailed}, err
	}

	if err := s.carts.ClearCart(ctx, sess.Token, sess.User.ID); err != nil {
		// The order stands; only the clear failed. The cart is left as-is
		// and the next refresh shows whatever the backend holds.
		metrics.CheckoutsTotal.WithLabelValues(string(domain.CheckoutFailed)).Inc()
		s.logger.Error().Err(err).Int64("order_id", order.ID).Msg("cart clear failed after order creation")
		return &ports.CheckoutResult{State: domain.CheckoutFailed, Order: order}, err
	}

	sess.Cart = []domain.CartItem{}
	if err := s.repo.Save(ctx, sess); err != nil {
		s.logger.Warn().Err(err).Str("session_id", sess.ID).Msg("session save after checkout failed")
	}

	metrics.CheckoutsTotal.WithLabelValues(string(domain.CheckoutRedirected)).Inc()
	s.logger.Info().Int64("order_id", order.ID).Int64("user_id", sess.User.ID).Msg("checkout completed")

	return &ports.CheckoutResult{
		State:    domain.CheckoutRedirected,
		Order:    order,
		Redirect: fmt.Sprintf("/orders/%d", order.ID),
	}, nil
}
