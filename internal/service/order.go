package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/lavkashop/lavka/internal/domain"
	"github.com/lavkashop/lavka/internal/email"
	"github.com/lavkashop/lavka/internal/store"
	"github.com/lavkashop/lavka/internal/telemetry"
)

type orderService struct {
	store  store.Store
	sender email.Sender
	logger *slog.Logger
}

// NewOrderService creates an OrderService backed by the store. The
// sender receives a confirmation email after each placed order.
func NewOrderService(st store.Store, sender email.Sender, logger *slog.Logger) domain.OrderService {
	return &orderService{store: st, sender: sender, logger: logger}
}

// Place snapshots the session's cart into a new pending order and
// clears the cart. The cart read, the order append, and the clear run
// inside one transaction so no interleaved mutation can split them.
// Item names and prices are resolved from the catalog at this moment
// and frozen into the order; a product that has since disappeared
// snapshots as a placeholder with a zero price.
func (s *orderService) Place(ctx context.Context, req domain.PlaceOrderRequest) (*domain.Order, error) {
	const op = "order.Place"

	if req.SessionID == "" {
		return nil, domain.Invalid(op, "Session ID is required")
	}
	if req.CustomerName == "" {
		return nil, domain.Invalid(op, "Customer name is required")
	}
	if req.CustomerEmail == "" {
		return nil, domain.Invalid(op, "Customer email is required")
	}
	if req.DeliveryAddress == "" {
		return nil, domain.Invalid(op, "Delivery address is required")
	}

	var order *domain.Order
	err := s.store.Transact(ctx, func(tx store.Store) error {
		items, err := tx.CartItems().ListBySession(ctx, req.SessionID)
		if err != nil {
			return fmt.Errorf("failed to list cart items: %w", err)
		}
		if len(items) == 0 {
			return domain.ErrEmptyCart
		}

		now := time.Now().UTC()
		o := domain.Order{
			ID:              uuid.NewString(),
			SessionID:       req.SessionID,
			CustomerName:    req.CustomerName,
			CustomerEmail:   req.CustomerEmail,
			CustomerPhone:   req.CustomerPhone,
			DeliveryAddress: req.DeliveryAddress,
			Items:           make([]domain.OrderItem, 0, len(items)),
			Status:          domain.OrderStatusPending,
			CreatedAt:       now,
		}

		for _, item := range items {
			snap := domain.OrderItem{
				ID:        uuid.NewString(),
				ProductID: item.ProductID,
				Size:      item.Size,
				Color:     item.Color,
				Quantity:  item.Quantity,
				CreatedAt: now,
			}

			p, err := tx.Products().Get(ctx, item.ProductID)
			switch {
			case err == nil:
				snap.Name = p.Name
				snap.Price = p.Price
			case errors.Is(err, store.ErrNotFound):
				snap.Name = placeholderName(item.ProductID)
			default:
				return fmt.Errorf("failed to get product: %w", err)
			}

			o.Items = append(o.Items, snap)
			o.Total += snap.Price * int64(snap.Quantity)
		}

		if err := tx.Orders().Create(ctx, o); err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		if err := tx.CartItems().DeleteBySession(ctx, req.SessionID); err != nil {
			return fmt.Errorf("failed to clear cart: %w", err)
		}

		order = &o
		return nil
	})
	if err != nil {
		return nil, err
	}

	telemetry.Business.OrdersPlaced.Inc()
	telemetry.Business.OrderValue.Observe(float64(order.Total))
	telemetry.Business.OrderItemCount.Observe(float64(len(order.Items)))

	// Confirmation mail is best effort; the order stands regardless.
	if err := s.sender.SendOrderConfirmation(ctx, order); err != nil {
		telemetry.Business.EmailFailed.Inc()
		s.logger.Warn("failed to send order confirmation",
			slog.String("order_id", order.ID),
			slog.String("error", err.Error()))
	} else {
		telemetry.Business.EmailSent.Inc()
	}

	return order, nil
}

// ListForSession returns the session's orders, newest first.
func (s *orderService) ListForSession(ctx context.Context, sessionID string) ([]domain.Order, error) {
	orders, err := s.store.Orders().ListBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

// Get returns an order by ID.
func (s *orderService) Get(ctx context.Context, orderID string) (*domain.Order, error) {
	o, err := s.store.Orders().Get(ctx, orderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return o, nil
}
