package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lavkashop/lavka/internal/domain"
	"github.com/lavkashop/lavka/internal/store"
)

type wishlistService struct {
	store store.Store
}

// NewWishlistService creates a WishlistService backed by the store.
func NewWishlistService(st store.Store) domain.WishlistService {
	return &wishlistService{store: st}
}

// List resolves the session's entries against the live catalog.
// Entries whose product was removed are skipped, not surfaced.
func (s *wishlistService) List(ctx context.Context, sessionID string) ([]domain.WishlistProduct, error) {
	entries, err := s.store.Wishlist().ListBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wishlist: %w", err)
	}

	products := make([]domain.WishlistProduct, 0, len(entries))
	for _, e := range entries {
		p, err := s.store.Products().Get(ctx, e.ProductID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to get product: %w", err)
		}
		products = append(products, domain.WishlistProduct{
			Product:    *p,
			WishlistID: e.ID,
		})
	}
	return products, nil
}

// Add saves a product for the session. A duplicate add succeeds
// without creating a second entry. The product is not required to
// exist in the catalog; entries for unknown products are simply
// skipped by List.
func (s *wishlistService) Add(ctx context.Context, sessionID, productID string) error {
	const op = "wishlist.Add"

	if sessionID == "" {
		return domain.Invalid(op, "Session ID is required")
	}
	if productID == "" {
		return domain.Invalid(op, "Product ID is required")
	}

	return s.store.Transact(ctx, func(tx store.Store) error {
		_, err := tx.Wishlist().Find(ctx, sessionID, productID)
		if err == nil {
			return nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("failed to find wishlist entry: %w", err)
		}

		return tx.Wishlist().Create(ctx, domain.WishlistEntry{
			ID:        uuid.NewString(),
			SessionID: sessionID,
			ProductID: productID,
			CreatedAt: time.Now().UTC(),
		})
	})
}

// Remove deletes the entry. An absent entry is already removed.
func (s *wishlistService) Remove(ctx context.Context, sessionID, productID string) error {
	if err := s.store.Wishlist().Delete(ctx, sessionID, productID); err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("failed to delete wishlist entry: %w", err)
	}
	return nil
}

// Contains reports whether the session has saved the product.
func (s *wishlistService) Contains(ctx context.Context, sessionID, productID string) (bool, error) {
	_, err := s.store.Wishlist().Find(ctx, sessionID, productID)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	return false, fmt.Errorf("failed to find wishlist entry: %w", err)
}
