// Package service implements the business logic behind the storefront
// API. Each service takes the store abstraction and returns domain
// errors that the handler layer maps onto HTTP statuses.
package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/lavkashop/lavka/internal/domain"
	"github.com/lavkashop/lavka/internal/store"
	"github.com/lavkashop/lavka/internal/telemetry"
)

type catalogService struct {
	store store.Store
	coll  *collate.Collator
}

// NewCatalogService creates a CatalogService backed by the store.
func NewCatalogService(st store.Store) domain.CatalogService {
	return &catalogService{
		store: st,
		coll:  collate.New(language.English, collate.IgnoreCase),
	}
}

// List returns in-stock products matching the filter. Without an
// explicit sort key the newest products come first.
func (s *catalogService) List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	all, err := s.store.Products().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	telemetry.Business.ProductSearches.WithLabelValues(filterKind(filter)).Inc()

	products := make([]domain.Product, 0, len(all))
	for _, p := range all {
		if p.Stock <= 0 {
			continue
		}
		if filter.Category != "" && filter.Category != domain.CategoryAll && p.Category != filter.Category {
			continue
		}
		if filter.Search != "" && !matchesSearch(p, filter.Search) {
			continue
		}
		products = append(products, p)
	}

	switch filter.Sort {
	case domain.SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case domain.SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case domain.SortName:
		sort.SliceStable(products, func(i, j int) bool {
			return s.coll.CompareString(products[i].Name, products[j].Name) < 0
		})
	default:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	}

	return products, nil
}

// Get returns a product by ID. Out-of-stock products are still
// retrievable by direct lookup.
func (s *catalogService) Get(ctx context.Context, id string) (*domain.Product, error) {
	p, err := s.store.Products().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.NotFound("catalog.Get", "Product", id)
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return p, nil
}

// Categories returns distinct category labels in first-seen order,
// including categories whose products are all out of stock.
func (s *catalogService) Categories(ctx context.Context) ([]string, error) {
	all, err := s.store.Products().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, p := range all {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	return categories, nil
}

func filterKind(filter domain.ProductFilter) string {
	switch {
	case filter.Search != "":
		return "search"
	case filter.Category != "" && filter.Category != domain.CategoryAll:
		return "category"
	default:
		return "none"
	}
}

func matchesSearch(p domain.Product, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q)
}
