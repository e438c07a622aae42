package service

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/lavkashop/lavka/internal/domain"
	"github.com/lavkashop/lavka/internal/store"
	"github.com/lavkashop/lavka/internal/store/jsonfile"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()
	db, err := jsonfile.Open(filepath.Join(t.TempDir(), "store.json"), nil)
	require.NoError(t, err)
	return db
}

// catalogOverlayStore swaps the product repository for a mutable
// in-memory one so tests can change or remove products between calls.
type catalogOverlayStore struct {
	store.Store
	products *memProductRepo
}

func (s *catalogOverlayStore) Products() store.ProductRepo { return s.products }

func (s *catalogOverlayStore) Transact(ctx context.Context, fn func(store.Store) error) error {
	return s.Store.Transact(ctx, func(tx store.Store) error {
		return fn(&catalogOverlayStore{Store: tx, products: s.products})
	})
}

func newCatalogOverlayStore(t *testing.T) (*catalogOverlayStore, *memProductRepo) {
	t.Helper()
	products := &memProductRepo{byID: map[string]domain.Product{}}
	return &catalogOverlayStore{Store: newTestStore(t), products: products}, products
}

type memProductRepo struct {
	mu   sync.Mutex
	byID map[string]domain.Product
}

func (r *memProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Product, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}

func (r *memProductRepo) Get(ctx context.Context, id string) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &p, nil
}

func (r *memProductRepo) Create(ctx context.Context, p domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[p.ID] = p
	return nil
}

func (r *memProductRepo) setPrice(id string, price int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.byID[id]
	p.Price = price
	r.byID[id] = p
}

func createProduct(t *testing.T, st store.Store, name, category string, price int64, stock int) domain.Product {
	t.Helper()
	p := domain.Product{
		ID:        uuid.NewString(),
		Name:      name,
		Category:  category,
		Price:     price,
		Stock:     stock,
		Sizes:     []string{"S", "M", "L"},
		Colors:    []string{"black"},
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, st.Products().Create(context.Background(), p))
	return p
}
