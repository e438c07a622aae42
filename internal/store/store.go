// Package store defines the repository abstraction behind which the
// persistence strategy is swappable: a flat-file JSON document or
// PostgreSQL, selected at startup.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/lavkashop/lavka/internal/domain"
)

// ErrNotFound is returned by lookups with no matching row. Services
// translate it into the appropriate domain error.
var ErrNotFound = errors.New("store: not found")

// ProductRepo owns the product collection.
type ProductRepo interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, p domain.Product) error
}

// CartRepo owns the cart ledger rows.
type CartRepo interface {
	ListBySession(ctx context.Context, sessionID string) ([]domain.CartItem, error)
	Get(ctx context.Context, id string) (*domain.CartItem, error)

	// Find locates a row by its merge key (session, product, size, color).
	Find(ctx context.Context, sessionID, productID, size, color string) (*domain.CartItem, error)

	Create(ctx context.Context, item domain.CartItem) error
	UpdateQuantity(ctx context.Context, id string, quantity int) error
	Delete(ctx context.Context, id string) error
	DeleteBySession(ctx context.Context, sessionID string) error
}

// OrderRepo owns the order collection. Orders are append-only.
type OrderRepo interface {
	Create(ctx context.Context, o domain.Order) error
	ListBySession(ctx context.Context, sessionID string) ([]domain.Order, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
}

// WishlistRepo owns wishlist entries.
type WishlistRepo interface {
	ListBySession(ctx context.Context, sessionID string) ([]domain.WishlistEntry, error)
	Find(ctx context.Context, sessionID, productID string) (*domain.WishlistEntry, error)
	Create(ctx context.Context, e domain.WishlistEntry) error
	Delete(ctx context.Context, sessionID, productID string) error
}

// PromoRepo owns the static promocode table.
type PromoRepo interface {
	// FindActiveByCode matches codes case-insensitively among active rows.
	FindActiveByCode(ctx context.Context, code string) (*domain.Promocode, error)
	ListActive(ctx context.Context) ([]domain.Promocode, error)
	Create(ctx context.Context, p domain.Promocode) error
}

// UserRepo owns user accounts.
type UserRepo interface {
	Get(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u domain.User) error
}

// TokenRepo owns issued bearer tokens.
type TokenRepo interface {
	Create(ctx context.Context, t domain.AuthToken) error
	Find(ctx context.Context, token string) (*domain.AuthToken, error)

	// DeleteExpired removes tokens whose expiry is before the cutoff
	// and reports how many were removed.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

// Store aggregates the repositories and provides the transaction
// boundary for multi-step sequences. Order formation reads the cart,
// appends the order, and clears the cart inside a single Transact call
// so a fault between the steps cannot be observed.
type Store interface {
	Products() ProductRepo
	CartItems() CartRepo
	Orders() OrderRepo
	Wishlist() WishlistRepo
	Promocodes() PromoRepo
	Users() UserRepo
	Tokens() TokenRepo

	// Transact runs fn atomically. The Store passed to fn must be used
	// in place of the receiver for every access inside fn.
	Transact(ctx context.Context, fn func(Store) error) error
}
