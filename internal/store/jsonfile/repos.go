package jsonfile

import (
	"context"
	"strings"
	"time"

	"github.com/lavkashop/lavka/internal/domain"
	"github.com/lavkashop/lavka/internal/store"
)

// =============================================================================
// PRODUCTS
// =============================================================================

type productRepo struct{ access }

func (r productRepo) List(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	err := r.view(func(d *document) error {
		out = append(out, d.Products...)
		return nil
	})
	return out, err
}

func (r productRepo) Get(ctx context.Context, id string) (*domain.Product, error) {
	var out *domain.Product
	err := r.view(func(d *document) error {
		for i := range d.Products {
			if d.Products[i].ID == id {
				p := d.Products[i]
				out = &p
				return nil
			}
		}
		return store.ErrNotFound
	})
	return out, err
}

func (r productRepo) Create(ctx context.Context, p domain.Product) error {
	return r.mutate(func(d *document) error {
		d.Products = append(d.Products, p)
		return nil
	})
}

// =============================================================================
// CART ITEMS
// =============================================================================

type cartRepo struct{ access }

func (r cartRepo) ListBySession(ctx context.Context, sessionID string) ([]domain.CartItem, error) {
	var out []domain.CartItem
	err := r.view(func(d *document) error {
		for _, ci := range d.CartItems {
			if ci.SessionID == sessionID {
				out = append(out, ci)
			}
		}
		return nil
	})
	return out, err
}

func (r cartRepo) Get(ctx context.Context, id string) (*domain.CartItem, error) {
	var out *domain.CartItem
	err := r.view(func(d *document) error {
		for i := range d.CartItems {
			if d.CartItems[i].ID == id {
				ci := d.CartItems[i]
				out = &ci
				return nil
			}
		}
		return store.ErrNotFound
	})
	return out, err
}

func (r cartRepo) Find(ctx context.Context, sessionID, productID, size, color string) (*domain.CartItem, error) {
	var out *domain.CartItem
	err := r.view(func(d *document) error {
		for i := range d.CartItems {
			ci := d.CartItems[i]
			if ci.SessionID == sessionID && ci.ProductID == productID && ci.Size == size && ci.Color == color {
				out = &ci
				return nil
			}
		}
		return store.ErrNotFound
	})
	return out, err
}

func (r cartRepo) Create(ctx context.Context, item domain.CartItem) error {
	return r.mutate(func(d *document) error {
		d.CartItems = append(d.CartItems, item)
		return nil
	})
}

func (r cartRepo) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	return r.mutate(func(d *document) error {
		for i := range d.CartItems {
			if d.CartItems[i].ID == id {
				d.CartItems[i].Quantity = quantity
				return nil
			}
		}
		return store.ErrNotFound
	})
}

func (r cartRepo) Delete(ctx context.Context, id string) error {
	return r.mutate(func(d *document) error {
		for i := range d.CartItems {
			if d.CartItems[i].ID == id {
				d.CartItems = append(d.CartItems[:i], d.CartItems[i+1:]...)
				return nil
			}
		}
		return store.ErrNotFound
	})
}

func (r cartRepo) DeleteBySession(ctx context.Context, sessionID string) error {
	return r.mutate(func(d *document) error {
		kept := d.CartItems[:0]
		for _, ci := range d.CartItems {
			if ci.SessionID != sessionID {
				kept = append(kept, ci)
			}
		}
		d.CartItems = kept
		return nil
	})
}

// =============================================================================
// ORDERS
// =============================================================================

type orderRepo struct{ access }

func (r orderRepo) Create(ctx context.Context, o domain.Order) error {
	return r.mutate(func(d *document) error {
		d.Orders = append(d.Orders, o)
		return nil
	})
}

func (r orderRepo) ListBySession(ctx context.Context, sessionID string) ([]domain.Order, error) {
	var out []domain.Order
	err := r.view(func(d *document) error {
		for _, o := range d.Orders {
			if o.SessionID == sessionID {
				out = append(out, o)
			}
		}
		return nil
	})
	return out, err
}

func (r orderRepo) Get(ctx context.Context, id string) (*domain.Order, error) {
	var out *domain.Order
	err := r.view(func(d *document) error {
		for i := range d.Orders {
			if d.Orders[i].ID == id {
				o := d.Orders[i]
				out = &o
				return nil
			}
		}
		return store.ErrNotFound
	})
	return out, err
}

// =============================================================================
// WISHLIST
// =============================================================================

type wishlistRepo struct{ access }

func (r wishlistRepo) ListBySession(ctx context.Context, sessionID string) ([]domain.WishlistEntry, error) {
	var out []domain.WishlistEntry
	err := r.view(func(d *document) error {
		for _, w := range d.Wishlist {
			if w.SessionID == sessionID {
				out = append(out, w)
			}
		}
		return nil
	})
	return out, err
}

func (r wishlistRepo) Find(ctx context.Context, sessionID, productID string) (*domain.WishlistEntry, error) {
	var out *domain.WishlistEntry
	err := r.view(func(d *document) error {
		for i := range d.Wishlist {
			if d.Wishlist[i].SessionID == sessionID && d.Wishlist[i].ProductID == productID {
				w := d.Wishlist[i]
				out = &w
				return nil
			}
		}
		return store.ErrNotFound
	})
	return out, err
}

func (r wishlistRepo) Create(ctx context.Context, e domain.WishlistEntry) error {
	return r.mutate(func(d *document) error {
		d.Wishlist = append(d.Wishlist, e)
		return nil
	})
}

func (r wishlistRepo) Delete(ctx context.Context, sessionID, productID string) error {
	return r.mutate(func(d *document) error {
		for i := range d.Wishlist {
			if d.Wishlist[i].SessionID == sessionID && d.Wishlist[i].ProductID == productID {
				d.Wishlist = append(d.Wishlist[:i], d.Wishlist[i+1:]...)
				return nil
			}
		}
		return store.ErrNotFound
	})
}

// =============================================================================
// PROMOCODES
// =============================================================================

type promoRepo struct{ access }

func (r promoRepo) FindActiveByCode(ctx context.Context, code string) (*domain.Promocode, error) {
	var out *domain.Promocode
	err := r.view(func(d *document) error {
		for i := range d.Promocodes {
			p := d.Promocodes[i]
			if p.Active && strings.EqualFold(p.Code, code) {
				out = &p
				return nil
			}
		}
		return store.ErrNotFound
	})
	return out, err
}

func (r promoRepo) ListActive(ctx context.Context) ([]domain.Promocode, error) {
	var out []domain.Promocode
	err := r.view(func(d *document) error {
		for _, p := range d.Promocodes {
			if p.Active {
				out = append(out, p)
			}
		}
		return nil
	})
	return out, err
}

func (r promoRepo) Create(ctx context.Context, p domain.Promocode) error {
	return r.mutate(func(d *document) error {
		d.Promocodes = append(d.Promocodes, p)
		return nil
	})
}

// =============================================================================
// USERS
// =============================================================================

type userRepo struct{ access }

func (r userRepo) Get(ctx context.Context, id string) (*domain.User, error) {
	var out *domain.User
	err := r.view(func(d *document) error {
		for i := range d.Users {
			if d.Users[i].ID == id {
				u := d.Users[i]
				out = &u
				return nil
			}
		}
		return store.ErrNotFound
	})
	return out, err
}

func (r userRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var out *domain.User
	err := r.view(func(d *document) error {
		for i := range d.Users {
			if strings.EqualFold(d.Users[i].Email, email) {
				u := d.Users[i]
				out = &u
				return nil
			}
		}
		return store.ErrNotFound
	})
	return out, err
}

func (r userRepo) Create(ctx context.Context, u domain.User) error {
	return r.mutate(func(d *document) error {
		d.Users = append(d.Users, u)
		return nil
	})
}

// =============================================================================
// AUTH TOKENS
// =============================================================================

type tokenRepo struct{ access }

func (r tokenRepo) Create(ctx context.Context, t domain.AuthToken) error {
	return r.mutate(func(d *document) error {
		d.AuthTokens = append(d.AuthTokens, t)
		return nil
	})
}

func (r tokenRepo) Find(ctx context.Context, token string) (*domain.AuthToken, error) {
	var out *domain.AuthToken
	err := r.view(func(d *document) error {
		for i := range d.AuthTokens {
			if d.AuthTokens[i].Token == token {
				t := d.AuthTokens[i]
				out = &t
				return nil
			}
		}
		return store.ErrNotFound
	})
	return out, err
}

func (r tokenRepo) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	var removed int64
	err := r.mutate(func(d *document) error {
		kept := d.AuthTokens[:0]
		for _, t := range d.AuthTokens {
			if t.ExpiresAt.Before(before) {
				removed++
				continue
			}
			kept = append(kept, t)
		}
		d.AuthTokens = kept
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}
