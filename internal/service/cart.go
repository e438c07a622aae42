package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lavkashop/lavka/internal/domain"
	"github.com/lavkashop/lavka/internal/store"
	"github.com/lavkashop/lavka/internal/telemetry"
)

type cartService struct {
	store store.Store
}

// NewCartService creates a CartService backed by the store.
func NewCartService(st store.Store) domain.CartService {
	return &cartService{store: st}
}

// View joins the session's cart rows against the live catalog. A row
// whose product was removed still renders, with a placeholder name and
// a zero price, so a stale cart never breaks the page.
func (s *cartService) View(ctx context.Context, sessionID string) (*domain.CartView, error) {
	items, err := s.store.CartItems().ListBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}

	view := &domain.CartView{Items: make([]domain.CartLine, 0, len(items))}
	for _, item := range items {
		line := domain.CartLine{CartItem: item}

		p, err := s.store.Products().Get(ctx, item.ProductID)
		switch {
		case err == nil:
			line.Name = p.Name
			line.Price = p.Price
			line.Image = p.Image
		case errors.Is(err, store.ErrNotFound):
			line.Name = placeholderName(item.ProductID)
		default:
			return nil, fmt.Errorf("failed to get product: %w", err)
		}

		view.Items = append(view.Items, line)
		view.Total += line.Price * int64(item.Quantity)
	}
	return view, nil
}

// Add merges the selection into the session's cart. The product is
// not required to exist in the catalog; a row for an unknown product
// renders through the placeholder path in View.
func (s *cartService) Add(ctx context.Context, sessionID, productID, size, color string, quantity int) error {
	const op = "cart.Add"

	if sessionID == "" {
		return domain.Invalid(op, "Session ID is required")
	}
	if productID == "" {
		return domain.Invalid(op, "Product ID is required")
	}
	if quantity <= 0 {
		quantity = 1
	}

	err := s.store.Transact(ctx, func(tx store.Store) error {
		existing, err := tx.CartItems().Find(ctx, sessionID, productID, size, color)
		if err == nil {
			return tx.CartItems().UpdateQuantity(ctx, existing.ID, existing.Quantity+quantity)
		}
		if !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("failed to find cart item: %w", err)
		}

		return tx.CartItems().Create(ctx, domain.CartItem{
			ID:        uuid.NewString(),
			SessionID: sessionID,
			ProductID: productID,
			Size:      size,
			Color:     color,
			Quantity:  quantity,
			CreatedAt: time.Now().UTC(),
		})
	})
	if err != nil {
		return err
	}

	telemetry.Business.CartItemsAdded.Inc()
	return nil
}

// UpdateQuantity sets a row's quantity. A quantity of zero or below
// deletes the row.
func (s *cartService) UpdateQuantity(ctx context.Context, itemID string, quantity int) error {
	if quantity <= 0 {
		return s.Remove(ctx, itemID)
	}

	if err := s.store.CartItems().UpdateQuantity(ctx, itemID, quantity); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.ErrCartItemNotFound
		}
		return fmt.Errorf("failed to update cart item: %w", err)
	}
	return nil
}

// Remove deletes a row. A missing row is treated as already removed.
func (s *cartService) Remove(ctx context.Context, itemID string) error {
	if err := s.store.CartItems().Delete(ctx, itemID); err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}
	return nil
}

// Clear deletes every row owned by the session.
func (s *cartService) Clear(ctx context.Context, sessionID string) error {
	if err := s.store.CartItems().DeleteBySession(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

func placeholderName(productID string) string {
	short := productID
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("Product #%s", short)
}
