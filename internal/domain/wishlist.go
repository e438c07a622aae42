package domain

import (
	"context"
	"time"
)

// WishlistEntry marks a product as saved by a session. Entries are
// unique per (session, product); adding a duplicate is a no-op success.
type WishlistEntry struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	ProductID string    `json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
}

// WishlistProduct is a resolved wishlist item: the live product plus
// the entry that references it.
type WishlistProduct struct {
	Product
	WishlistID string `json:"wishlist_id"`
}

// WishlistService maintains session-scoped wishlists.
type WishlistService interface {
	// List returns the session's saved products. Entries whose product
	// no longer exists are skipped.
	List(ctx context.Context, sessionID string) ([]WishlistProduct, error)

	// Add saves a product for the session. Duplicate adds succeed
	// without creating a second entry.
	Add(ctx context.Context, sessionID, productID string) error

	// Remove deletes the entry. Removing an absent entry is not an error.
	Remove(ctx context.Context, sessionID, productID string) error

	// Contains reports whether the session has saved the product.
	Contains(ctx context.Context, sessionID, productID string) (bool, error)
}
