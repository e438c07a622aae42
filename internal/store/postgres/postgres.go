// Package postgres implements the store repositories on PostgreSQL via
// pgx. Transactions map directly onto pgx.Tx, so the order-formation
// critical section is a real database transaction here.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lavkashop/lavka/internal/store"
)

// querier is the subset of pgx shared by pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DB is the PostgreSQL-backed store. It satisfies store.Store.
type DB struct {
	pool *pgxpool.Pool
}

var _ store.Store = (*DB)(nil)

// Open creates a connection pool and verifies connectivity.
func Open(ctx context.Context, dsn string) (*DB, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}
	return &DB{pool: pool}, nil
}

// Close releases the connection pool.
func (db *DB) Close() {
	db.pool.Close()
}

func (db *DB) Products() store.ProductRepo  { return productRepo{q: db.pool} }
func (db *DB) CartItems() store.CartRepo    { return cartRepo{q: db.pool} }
func (db *DB) Orders() store.OrderRepo      { return orderRepo{q: db.pool} }
func (db *DB) Wishlist() store.WishlistRepo { return wishlistRepo{q: db.pool} }
func (db *DB) Promocodes() store.PromoRepo  { return promoRepo{q: db.pool} }
func (db *DB) Users() store.UserRepo        { return userRepo{q: db.pool} }
func (db *DB) Tokens() store.TokenRepo      { return tokenRepo{q: db.pool} }

// Transact runs fn inside a database transaction.
func (db *DB) Transact(ctx context.Context, fn func(store.Store) error) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(&txStore{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// txStore exposes the repositories bound to an open transaction.
type txStore struct {
	tx pgx.Tx
}

var _ store.Store = (*txStore)(nil)

func (t *txStore) Products() store.ProductRepo  { return productRepo{q: t.tx} }
func (t *txStore) CartItems() store.CartRepo    { return cartRepo{q: t.tx} }
func (t *txStore) Orders() store.OrderRepo      { return orderRepo{q: t.tx} }
func (t *txStore) Wishlist() store.WishlistRepo { return wishlistRepo{q: t.tx} }
func (t *txStore) Promocodes() store.PromoRepo  { return promoRepo{q: t.tx} }
func (t *txStore) Users() store.UserRepo        { return userRepo{q: t.tx} }
func (t *txStore) Tokens() store.TokenRepo      { return tokenRepo{q: t.tx} }

// Transact on a transaction joins the enclosing one.
func (t *txStore) Transact(ctx context.Context, fn func(store.Store) error) error {
	return fn(t)
}

// mapErr translates pgx sentinel errors into store errors.
func mapErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}
