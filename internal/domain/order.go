package domain

import (
	"context"
	"time"
)

// Order status values. Orders are created pending; nothing in this
// service transitions them further.
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

var (
	ErrOrderNotFound = &Error{Code: ENOTFOUND, Message: "Order not found"}

	// ErrEmptyCart rejects checkout for a session with no cart items.
	ErrEmptyCart = &Error{Code: EINVALID, Message: "Cart is empty"}
)

// OrderItem is a snapshot of a cart line at order-creation time. Name
// and Price are copied from the catalog when the order is formed and
// never change afterwards, even if the product is repriced or removed.
type OrderItem struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Name      string    `json:"name"`
	Price     int64     `json:"price"`
	Size      string    `json:"size,omitempty"`
	Color     string    `json:"color,omitempty"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

// Order is an immutable record of a completed checkout. Total is the
// sum of snapshot prices times quantities; a promocode discount
// validated by the client is advisory and never persisted here.
type Order struct {
	ID              string      `json:"id"`
	SessionID       string      `json:"session_id"`
	CustomerName    string      `json:"customer_name"`
	CustomerEmail   string      `json:"customer_email"`
	CustomerPhone   string      `json:"customer_phone"`
	DeliveryAddress string      `json:"delivery_address"`
	Items           []OrderItem `json:"items"`
	Total           int64       `json:"total"`
	Status          string      `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
}

// PlaceOrderRequest carries the checkout payload.
type PlaceOrderRequest struct {
	SessionID       string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	DeliveryAddress string
}

// OrderService forms orders from cart ledgers.
type OrderService interface {
	// Place snapshots the session's cart into a new pending order and
	// clears the cart. Snapshot and clear happen in one transaction.
	Place(ctx context.Context, req PlaceOrderRequest) (*Order, error)

	// ListForSession returns the session's orders, newest first.
	ListForSession(ctx context.Context, sessionID string) ([]Order, error)

	// Get returns an order by ID.
	Get(ctx context.Context, orderID string) (*Order, error)
}
