package domain

import (
	"context"
	"time"
)

// Badge values for display-only product tags. A badge never affects
// pricing or availability.
const (
	BadgeNew        = "new"
	BadgeSale       = "sale"
	BadgeBestseller = "bestseller"
	BadgePremium    = "premium"
)

// Sort keys accepted by the catalog listing.
const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortName      = "name"
)

// CategoryAll is the sentinel category meaning "no category filter".
const CategoryAll = "all"

// Product is a catalog entry. Price is the authoritative unit price at
// read time, in the smallest currency unit; nothing freezes it between
// cart-add and checkout.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       int64     `json:"price"`
	OldPrice    int64     `json:"old_price,omitempty"`
	Image       string    `json:"image"`
	Sizes       []string  `json:"sizes"`
	Colors      []string  `json:"colors"`
	Stock       int       `json:"stock"`
	Rating      float64   `json:"rating,omitempty"`
	ReviewCount int       `json:"review_count,omitempty"`
	Badge       string    `json:"badge,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProductFilter narrows and orders a catalog listing. Filtering and
// sorting are independent and composable.
type ProductFilter struct {
	// Category retains exact matches; empty or CategoryAll disables the filter.
	Category string

	// Search is a case-insensitive substring match against name or description.
	Search string

	// Sort is one of the Sort* keys; anything else falls back to newest-first.
	Sort string
}

// CatalogService provides read access to the product catalog.
type CatalogService interface {
	// List returns in-stock products matching the filter.
	List(ctx context.Context, filter ProductFilter) ([]Product, error)

	// Get returns a product by ID regardless of stock level.
	Get(ctx context.Context, id string) (*Product, error)

	// Categories returns the distinct category labels across all
	// products, including out-of-stock ones.
	Categories(ctx context.Context) ([]string, error)
}
