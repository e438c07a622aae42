package jsonfile

import (
	"time"

	"github.com/google/uuid"

	"github.com/lavkashop/lavka/internal/domain"
)

// seed fills an empty document with the default catalog and the static
// promocode table. Stock counts are informational display data; nothing
// reserves or decrements them.
func seed(d *document) {
	now := time.Now().UTC()

	// Creation timestamps are staggered so the default newest-first
	// catalog ordering is deterministic.
	at := func(i int) time.Time { return now.Add(-time.Duration(i) * time.Minute) }

	d.Products = []domain.Product{
		{
			ID:          uuid.NewString(),
			Name:        "Classic White T-Shirt",
			Description: "Premium-quality basic cotton tee. A staple for everyday wear.",
			Price:       1990,
			Category:    "t-shirts",
			Image:       "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=400",
			Sizes:       []string{"XS", "S", "M", "L", "XL"},
			Colors:      []string{"white", "black", "grey"},
			Stock:       50,
			Rating:      4.7,
			ReviewCount: 182,
			Badge:       domain.BadgeBestseller,
			CreatedAt:   at(0),
		},
		{
			ID:          uuid.NewString(),
			Name:        "Slim Fit Jeans",
			Description: "Tapered jeans cut from quality denim.",
			Price:       4990,
			Category:    "jeans",
			Image:       "https://images.unsplash.com/photo-1542272604-787c3835535d?w=400",
			Sizes:       []string{"28", "30", "32", "34", "36"},
			Colors:      []string{"blue", "black", "light blue"},
			Stock:       35,
			Rating:      4.5,
			ReviewCount: 96,
			CreatedAt:   at(1),
		},
		{
			ID:          uuid.NewString(),
			Name:        "Oversized Hoodie",
			Description: "Warm oversized hoodie in soft fleece. Everyday comfort.",
			Price:       3990,
			OldPrice:    4990,
			Category:    "hoodies",
			Image:       "https://images.unsplash.com/photo-1556821840-3a63f95609a7?w=400",
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			Colors:      []string{"black", "grey", "beige", "khaki"},
			Stock:       40,
			Rating:      4.8,
			ReviewCount: 214,
			Badge:       domain.BadgeSale,
			CreatedAt:   at(2),
		},
		{
			ID:          uuid.NewString(),
			Name:        "Midi Dress",
			Description: "Elegant midi-length dress. Works for the office and special occasions.",
			Price:       5990,
			Category:    "dresses",
			Image:       "https://images.unsplash.com/photo-1595777457583-95e059d581b8?w=400",
			Sizes:       []string{"XS", "S", "M", "L"},
			Colors:      []string{"black", "burgundy", "navy"},
			Stock:       25,
			Rating:      4.6,
			ReviewCount: 73,
			Badge:       domain.BadgeNew,
			CreatedAt:   at(3),
		},
		{
			ID:          uuid.NewString(),
			Name:        "Leather Jacket",
			Description: "Classic genuine leather jacket. A style proven by time.",
			Price:       14990,
			Category:    "jackets",
			Image:       "https://images.unsplash.com/photo-1551028719-00167b16eac5?w=400",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"black", "brown"},
			Stock:       15,
			Rating:      4.9,
			ReviewCount: 41,
			Badge:       domain.BadgePremium,
			CreatedAt:   at(4),
		},
		{
			ID:          uuid.NewString(),
			Name:        "Jogger Pants",
			Description: "Comfortable joggers with an elastic waistband. Great for workouts and downtime.",
			Price:       2990,
			Category:    "pants",
			Image:       "https://images.unsplash.com/photo-1624378439575-d8705ad7ae80?w=400",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"black", "grey", "navy"},
			Stock:       45,
			Rating:      4.4,
			ReviewCount: 128,
			CreatedAt:   at(5),
		},
		{
			ID:          uuid.NewString(),
			Name:        "Plaid Flannel Shirt",
			Description: "Classic plaid shirt in soft cotton. A universal layer.",
			Price:       2490,
			Category:    "shirts",
			Image:       "https://images.unsplash.com/photo-1596755094514-f87e34085b2c?w=400",
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			Colors:      []string{"red", "blue", "green"},
			Stock:       30,
			Rating:      4.3,
			ReviewCount: 67,
			CreatedAt:   at(6),
		},
		{
			ID:          uuid.NewString(),
			Name:        "Chunky Knit Sweater",
			Description: "Warm merino wool sweater. Cozy and stylish.",
			Price:       4490,
			Category:    "sweaters",
			Image:       "https://images.unsplash.com/photo-1434389677669-e08b4cac3105?w=400",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"white", "beige", "grey", "pink"},
			Stock:       20,
			Rating:      4.7,
			ReviewCount: 89,
			CreatedAt:   at(7),
		},
	}

	d.Promocodes = []domain.Promocode{
		{Code: "WELCOME10", Discount: 10, Kind: domain.DiscountPercent, Active: true},
		{Code: "SALE500", Discount: 500, Kind: domain.DiscountFixed, Active: true},
		{Code: "VIP20", Discount: 20, Kind: domain.DiscountPercent, Active: false},
	}
}
