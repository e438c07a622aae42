package domain

import (
	"context"
	"time"
)

var (
	ErrCartItemNotFound = &Error{Code: ENOTFOUND, Message: "Cart item not found"}
)

// CartItem is one row in the cart ledger: a product+variant+quantity
// selection owned by a session. Quantity is always >= 1 while the row
// exists; a row whose quantity would drop to zero is deleted instead.
type CartItem struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	ProductID string    `json:"product_id"`
	Size      string    `json:"size,omitempty"`
	Color     string    `json:"color,omitempty"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

// CartLine is a cart item joined against the live catalog. When the
// referenced product no longer exists, Name is a placeholder and
// Price is zero rather than the view failing.
type CartLine struct {
	CartItem
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Image string `json:"image"`
}

// CartView is the full cart for a session with its recomputed total.
// The total is never cached on the line items; every view joins
// against current catalog prices.
type CartView struct {
	Items []CartLine `json:"items"`
	Total int64      `json:"total"`
}

// CartService maintains session-scoped cart ledgers.
type CartService interface {
	// View returns the session's items joined against live prices.
	View(ctx context.Context, sessionID string) (*CartView, error)

	// Add merges the selection into the ledger: an existing row with
	// the same (session, product, size, color) key has its quantity
	// incremented, otherwise a new row is created.
	Add(ctx context.Context, sessionID, productID, size, color string, quantity int) error

	// UpdateQuantity sets a row's quantity. A quantity <= 0 deletes
	// the row; that is the defined removal path, not a rejected input.
	UpdateQuantity(ctx context.Context, itemID string, quantity int) error

	// Remove deletes a row. Removing an absent row is not an error.
	Remove(ctx context.Context, itemID string) error

	// Clear deletes every row owned by the session.
	Clear(ctx context.Context, sessionID string) error
}
