package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/lavkashop/lavka/internal/domain"
	"github.com/lavkashop/lavka/internal/store"
)

// =============================================================================
// PRODUCTS
// =============================================================================

const productColumns = `id, name, description, category, price, old_price, image,
	sizes, colors, stock, rating, review_count, badge, created_at`

type productRepo struct{ q querier }

func scanProduct(row interface{ Scan(...any) error }) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Category, &p.Price, &p.OldPrice, &p.Image,
		&p.Sizes, &p.Colors, &p.Stock, &p.Rating, &p.ReviewCount, &p.Badge, &p.CreatedAt,
	)
	if err != nil {
		return nil, mapErr(err)
	}
	return &p, nil
}

func (r productRepo) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productColumns+` FROM products`)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var out []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r productRepo) Get(ctx context.Context, id string) (*domain.Product, error) {
	row := r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	return scanProduct(row)
}

func (r productRepo) Create(ctx context.Context, p domain.Product) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO products (`+productColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		p.ID, p.Name, p.Description, p.Category, p.Price, p.OldPrice, p.Image,
		p.Sizes, p.Colors, p.Stock, p.Rating, p.ReviewCount, p.Badge, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// =============================================================================
// CART ITEMS
// =============================================================================

const cartColumns = `id, session_id, product_id, size, color, quantity, created_at`

type cartRepo struct{ q querier }

func scanCartItem(row interface{ Scan(...any) error }) (*domain.CartItem, error) {
	var ci domain.CartItem
	err := row.Scan(&ci.ID, &ci.SessionID, &ci.ProductID, &ci.Size, &ci.Color, &ci.Quantity, &ci.CreatedAt)
	if err != nil {
		return nil, mapErr(err)
	}
	return &ci, nil
}

func (r cartRepo) ListBySession(ctx context.Context, sessionID string) ([]domain.CartItem, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+cartColumns+` FROM cart_items
		WHERE session_id = $1 ORDER BY created_at`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}
	defer rows.Close()

	var out []domain.CartItem
	for rows.Next() {
		ci, err := scanCartItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		out = append(out, *ci)
	}
	return out, rows.Err()
}

func (r cartRepo) Get(ctx context.Context, id string) (*domain.CartItem, error) {
	row := r.q.QueryRow(ctx, `SELECT `+cartColumns+` FROM cart_items WHERE id = $1`, id)
	return scanCartItem(row)
}

func (r cartRepo) Find(ctx context.Context, sessionID, productID, size, color string) (*domain.CartItem, error) {
	row := r.q.QueryRow(ctx, `
		SELECT `+cartColumns+` FROM cart_items
		WHERE session_id = $1 AND product_id = $2 AND size = $3 AND color = $4`,
		sessionID, productID, size, color)
	return scanCartItem(row)
}

func (r cartRepo) Create(ctx context.Context, item domain.CartItem) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO cart_items (`+cartColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		item.ID, item.SessionID, item.ProductID, item.Size, item.Color, item.Quantity, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create cart item: %w", err)
	}
	return nil
}

func (r cartRepo) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	tag, err := r.q.Exec(ctx, `UPDATE cart_items SET quantity = $2 WHERE id = $1`, id, quantity)
	if err != nil {
		return fmt.Errorf("failed to update cart item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r cartRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM cart_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r cartRepo) DeleteBySession(ctx context.Context, sessionID string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM cart_items WHERE session_id = $1`, sessionID)
	if err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

// =============================================================================
// ORDERS
// =============================================================================

const orderColumns = `id, session_id, customer_name, customer_email, customer_phone,
	delivery_address, items, total, status, created_at`

type orderRepo struct{ q querier }

func scanOrder(row interface{ Scan(...any) error }) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(
		&o.ID, &o.SessionID, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone,
		&o.DeliveryAddress, &o.Items, &o.Total, &o.Status, &o.CreatedAt,
	)
	if err != nil {
		return nil, mapErr(err)
	}
	return &o, nil
}

func (r orderRepo) Create(ctx context.Context, o domain.Order) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO orders (`+orderColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		o.ID, o.SessionID, o.CustomerName, o.CustomerEmail, o.CustomerPhone,
		o.DeliveryAddress, o.Items, o.Total, o.Status, o.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

func (r orderRepo) ListBySession(ctx context.Context, sessionID string) ([]domain.Order, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+orderColumns+` FROM orders
		WHERE session_id = $1 ORDER BY created_at DESC`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var out []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

func (r orderRepo) Get(ctx context.Context, id string) (*domain.Order, error) {
	row := r.q.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	return scanOrder(row)
}

// =============================================================================
// WISHLIST
// =============================================================================

type wishlistRepo struct{ q querier }

func (r wishlistRepo) ListBySession(ctx context.Context, sessionID string) ([]domain.WishlistEntry, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, session_id, product_id, created_at FROM wishlist
		WHERE session_id = $1 ORDER BY created_at`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wishlist: %w", err)
	}
	defer rows.Close()

	var out []domain.WishlistEntry
	for rows.Next() {
		var e domain.WishlistEntry
		if err := rows.Scan(&e.ID, &e.SessionID, &e.ProductID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan wishlist entry: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r wishlistRepo) Find(ctx context.Context, sessionID, productID string) (*domain.WishlistEntry, error) {
	var e domain.WishlistEntry
	err := r.q.QueryRow(ctx, `
		SELECT id, session_id, product_id, created_at FROM wishlist
		WHERE session_id = $1 AND product_id = $2`, sessionID, productID).
		Scan(&e.ID, &e.SessionID, &e.ProductID, &e.CreatedAt)
	if err != nil {
		return nil, mapErr(err)
	}
	return &e, nil
}

func (r wishlistRepo) Create(ctx context.Context, e domain.WishlistEntry) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO wishlist (id, session_id, product_id, created_at)
		VALUES ($1, $2, $3, $4)`,
		e.ID, e.SessionID, e.ProductID, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create wishlist entry: %w", err)
	}
	return nil
}

func (r wishlistRepo) Delete(ctx context.Context, sessionID, productID string) error {
	tag, err := r.q.Exec(ctx, `
		DELETE FROM wishlist WHERE session_id = $1 AND product_id = $2`,
		sessionID, productID)
	if err != nil {
		return fmt.Errorf("failed to delete wishlist entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// =============================================================================
// PROMOCODES
// =============================================================================

type promoRepo struct{ q querier }

func (r promoRepo) FindActiveByCode(ctx context.Context, code string) (*domain.Promocode, error) {
	var p domain.Promocode
	err := r.q.QueryRow(ctx, `
		SELECT code, discount, kind, active FROM promocodes
		WHERE active AND LOWER(code) = LOWER($1)`, code).
		Scan(&p.Code, &p.Discount, &p.Kind, &p.Active)
	if err != nil {
		return nil, mapErr(err)
	}
	return &p, nil
}

func (r promoRepo) ListActive(ctx context.Context) ([]domain.Promocode, error) {
	rows, err := r.q.Query(ctx, `SELECT code, discount, kind, active FROM promocodes WHERE active ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("failed to list promocodes: %w", err)
	}
	defer rows.Close()

	var out []domain.Promocode
	for rows.Next() {
		var p domain.Promocode
		if err := rows.Scan(&p.Code, &p.Discount, &p.Kind, &p.Active); err != nil {
			return nil, fmt.Errorf("failed to scan promocode: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r promoRepo) Create(ctx context.Context, p domain.Promocode) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO promocodes (code, discount, kind, active)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (code) DO NOTHING`,
		p.Code, p.Discount, p.Kind, p.Active,
	)
	if err != nil {
		return fmt.Errorf("failed to create promocode: %w", err)
	}
	return nil
}

// =============================================================================
// USERS
// =============================================================================

const userColumns = `id, email, password_hash, name, phone, address, created_at`

type userRepo struct{ q querier }

func scanUser(row interface{ Scan(...any) error }) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Phone, &u.Address, &u.CreatedAt)
	if err != nil {
		return nil, mapErr(err)
	}
	return &u, nil
}

func (r userRepo) Get(ctx context.Context, id string) (*domain.User, error) {
	row := r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r userRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE LOWER(email) = LOWER($1)`, email)
	return scanUser(row)
}

func (r userRepo) Create(ctx context.Context, u domain.User) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID, u.Email, u.PasswordHash, u.Name, u.Phone, u.Address, u.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// =============================================================================
// AUTH TOKENS
// =============================================================================

type tokenRepo struct{ q querier }

func (r tokenRepo) Create(ctx context.Context, t domain.AuthToken) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO auth_tokens (token, user_id, expires_at, created_at)
		VALUES ($1, $2, $3, $4)`,
		t.Token, t.UserID, t.ExpiresAt, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create auth token: %w", err)
	}
	return nil
}

func (r tokenRepo) Find(ctx context.Context, token string) (*domain.AuthToken, error) {
	var t domain.AuthToken
	err := r.q.QueryRow(ctx, `
		SELECT token, user_id, expires_at, created_at FROM auth_tokens
		WHERE token = $1`, token).
		Scan(&t.Token, &t.UserID, &t.ExpiresAt, &t.CreatedAt)
	if err != nil {
		return nil, mapErr(err)
	}
	return &t, nil
}

func (r tokenRepo) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM auth_tokens WHERE expires_at < $1`, before)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired tokens: %w", err)
	}
	return tag.RowsAffected(), nil
}
