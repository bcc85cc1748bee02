package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/esghir/sales-frontend/internal/core/domain"
)

func adminSession() *domain.Session {
	sess := testSession()
	sess.User.Role = domain.RoleAdmin
	return sess
}

func TestOrderService_Cancel_PendingOrder(t *testing.T) {
	orders := &stubOrderAPI{order: &domain.Order{ID: 1, Status: domain.OrderPending}}
	svc := NewOrderService(orders, zerolog.Nop())

	if err := svc.Cancel(context.Background(), testSession(), 1); err != nil {
		t.Fatalf("Cancel returned error: %v", err)
	}
	if len(orders.calls) != 2 || orders.calls[1] != "cancel" {
		t.Fatalf("expected get then cancel, got %v", orders.calls)
	}
}

func TestOrderService_Cancel_TerminalOrderRejectedLocally(t *testing.T) {
	for _, status := range []domain.OrderStatus{domain.OrderCompleted, domain.OrderCancelled} {
		orders := &stubOrderAPI{order: &domain.Order{ID: 1, Status: status}}
		svc := NewOrderService(orders, zerolog.Nop())

		if err := svc.Cancel(context.Background(), testSession(), 1); !errors.Is(err, domain.ErrInvalidTransition) {
			t.Fatalf("status %s: expected ErrInvalidTransition, got %v", status, err)
		}
		for _, call := range orders.calls {
			if call == "cancel" {
				t.Fatalf("status %s: cancel request must not reach the backend", status)
			}
		}
	}
}

func TestOrderService_UpdateStatus_RequiresAdmin(t *testing.T) {
	orders := &stubOrderAPI{order: &domain.Order{ID: 1, Status: domain.OrderPending}}
	svc := NewOrderService(orders, zerolog.Nop())

	if _, err := svc.UpdateStatus(context.Background(), testSession(), 1, domain.OrderCompleted); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-admin, got %v", err)
	}
	if len(orders.calls) != 0 {
		t.Fatalf("no backend call expected, got %v", orders.calls)
	}
}

func TestOrderService_UpdateStatus_ValidTransition(t *testing.T) {
	orders := &stubOrderAPI{order: &domain.Order{ID: 1, Status: domain.OrderPending}}
	svc := NewOrderService(orders, zerolog.Nop())

	order, err := svc.UpdateStatus(context.Background(), adminSession(), 1, domain.OrderCompleted)
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if order.Status != domain.OrderCompleted {
		t.Fatalf("expected completed, got %s", order.Status)
	}
}

func TestOrderService_UpdateStatus_InvalidTransition(t *testing.T) {
	orders := &stubOrderAPI{order: &domain.Order{ID: 1, Status: domain.OrderCancelled}}
	svc := NewOrderService(orders, zerolog.Nop())

	if _, err := svc.UpdateStatus(context.Background(), adminSession(), 1, domain.OrderCompleted); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}
