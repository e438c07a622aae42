// Package jsonfile persists the whole store as a single JSON document
// on disk. The document is loaded wholesale at startup and rewritten
// wholesale after every mutating call. All access is serialized behind
// a mutex and multi-step sequences run under Transact, so
// read-modify-write races and torn checkouts cannot occur.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/lavkashop/lavka/internal/domain"
	"github.com/lavkashop/lavka/internal/store"
)

// document is the on-disk shape: one JSON object holding every
// collection. Timestamps serialize as RFC3339 via time.Time.
type document struct {
	Users      []domain.User          `json:"users"`
	Products   []domain.Product       `json:"products"`
	CartItems  []domain.CartItem      `json:"cart_items"`
	Orders     []domain.Order         `json:"orders"`
	Wishlist   []domain.WishlistEntry `json:"wishlist"`
	Promocodes []domain.Promocode     `json:"promocodes"`
	AuthTokens []domain.AuthToken     `json:"auth_tokens"`
}

func newDocument() *document {
	return &document{
		Users:      []domain.User{},
		Products:   []domain.Product{},
		CartItems:  []domain.CartItem{},
		Orders:     []domain.Order{},
		Wishlist:   []domain.WishlistEntry{},
		Promocodes: []domain.Promocode{},
		AuthTokens: []domain.AuthToken{},
	}
}

// DB is the flat-file store. It satisfies store.Store.
type DB struct {
	mu     sync.RWMutex
	path   string
	data   *document
	logger *slog.Logger
}

var _ store.Store = (*DB)(nil)

// Open loads the document at path, creating a fresh one when the file
// does not exist. An empty product collection is seeded with the
// default catalog and promocode table.
func Open(path string, logger *slog.Logger) (*DB, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db := &DB{
		path:   path,
		data:   newDocument(),
		logger: logger,
	}

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(raw, db.data); err != nil {
			return nil, fmt.Errorf("failed to parse store file %s: %w", path, err)
		}
		logger.Info("store loaded",
			"path", path,
			"products", len(db.data.Products),
			"users", len(db.data.Users),
			"orders", len(db.data.Orders),
		)
	case os.IsNotExist(err):
		logger.Info("store file not found, starting fresh", "path", path)
	default:
		return nil, fmt.Errorf("failed to read store file %s: %w", path, err)
	}

	if len(db.data.Products) == 0 {
		seed(db.data)
		if err := db.save(); err != nil {
			return nil, fmt.Errorf("failed to persist seed data: %w", err)
		}
		logger.Info("store seeded",
			"products", len(db.data.Products),
			"promocodes", len(db.data.Promocodes),
		)
	}

	return db, nil
}

// save writes the whole document to disk. The caller must hold the
// write lock. The write goes through a temp file and a rename so a
// crash mid-write never leaves a truncated store behind.
func (db *DB) save() error {
	raw, err := json.MarshalIndent(db.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode store: %w", err)
	}

	dir := filepath.Dir(db.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".store-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp store file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close store file: %w", err)
	}

	if err := os.Rename(tmpName, db.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace store file: %w", err)
	}

	return nil
}

// clone deep-copies the document for transaction rollback.
func (d *document) clone() (*document, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	out := newDocument()
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, err
	}
	return out, nil
}

// view runs fn with the read lock held.
func (db *DB) view(fn func(*document) error) error {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return fn(db.data)
}

// mutate runs fn with the write lock held and persists on success.
// fn must not modify the document on its error paths.
func (db *DB) mutate(fn func(*document) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if err := fn(db.data); err != nil {
		return err
	}
	return db.save()
}

// Transact runs fn in one critical section: the whole sequence holds
// the write lock, mutations apply to a working copy, and the document
// is persisted exactly once at the end. An error from fn discards
// every change.
func (db *DB) Transact(ctx context.Context, fn func(store.Store) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	work, err := db.data.clone()
	if err != nil {
		return fmt.Errorf("failed to snapshot store: %w", err)
	}

	tx := &txStore{db: db, data: work}
	if err := fn(tx); err != nil {
		return err
	}

	db.data = work
	return db.save()
}

// Products returns the product repository.
func (db *DB) Products() store.ProductRepo { return productRepo{access{db: db}} }

// CartItems returns the cart ledger repository.
func (db *DB) CartItems() store.CartRepo { return cartRepo{access{db: db}} }

// Orders returns the order repository.
func (db *DB) Orders() store.OrderRepo { return orderRepo{access{db: db}} }

// Wishlist returns the wishlist repository.
func (db *DB) Wishlist() store.WishlistRepo { return wishlistRepo{access{db: db}} }

// Promocodes returns the promocode repository.
func (db *DB) Promocodes() store.PromoRepo { return promoRepo{access{db: db}} }

// Users returns the user repository.
func (db *DB) Users() store.UserRepo { return userRepo{access{db: db}} }

// Tokens returns the auth token repository.
func (db *DB) Tokens() store.TokenRepo { return tokenRepo{access{db: db}} }

// txStore is the view of the store inside Transact. The transaction
// already holds the write lock, so repositories operate on the working
// copy directly and nothing is persisted until the transaction ends.
type txStore struct {
	db   *DB
	data *document
}

var _ store.Store = (*txStore)(nil)

func (t *txStore) Products() store.ProductRepo   { return productRepo{access{tx: t}} }
func (t *txStore) CartItems() store.CartRepo     { return cartRepo{access{tx: t}} }
func (t *txStore) Orders() store.OrderRepo       { return orderRepo{access{tx: t}} }
func (t *txStore) Wishlist() store.WishlistRepo  { return wishlistRepo{access{tx: t}} }
func (t *txStore) Promocodes() store.PromoRepo   { return promoRepo{access{tx: t}} }
func (t *txStore) Users() store.UserRepo         { return userRepo{access{tx: t}} }
func (t *txStore) Tokens() store.TokenRepo       { return tokenRepo{access{tx: t}} }

// Transact on a transaction joins the enclosing one.
func (t *txStore) Transact(ctx context.Context, fn func(store.Store) error) error {
	return fn(t)
}

// access routes repository operations either through the DB's locking
// helpers or straight at a transaction's working copy.
type access struct {
	db *DB
	tx *txStore
}

func (a access) view(fn func(*document) error) error {
	if a.tx != nil {
		return fn(a.tx.data)
	}
	return a.db.view(fn)
}

func (a access) mutate(fn func(*document) error) error {
	if a.tx != nil {
		return fn(a.tx.data)
	}
	return a.db.mutate(fn)
}
