package domain

import "context"

// Promocode discount kinds.
const (
	DiscountPercent = "percent"
	DiscountFixed   = "fixed"
)

var (
	// ErrInvalidPromoCode means no active code matched the lookup.
	ErrInvalidPromoCode = &Error{Code: EINVALID, Message: "Invalid promocode"}
)

// Promocode is a statically configured discount code. It is not tied
// to any session; validation is advisory and the result is never
// enforced against an order total.
type Promocode struct {
	Code     string `json:"code"`
	Discount int64  `json:"discount"`
	Kind     string `json:"type"`
	Active   bool   `json:"active"`
}

// Discount is the result of validating a code against a cart total
// supplied by the caller.
type Discount struct {
	Code   string `json:"code"`
	Amount int64  `json:"amount"`
	Label  string `json:"label"`
}

// PromoSummary is a public listing entry for an active code.
type PromoSummary struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// PromoService validates discount codes.
type PromoService interface {
	// Validate looks up an active code (case-insensitive) and computes
	// the discount against the supplied cart total. Percent discounts
	// are rounded half away from zero; fixed discounts are returned
	// as-is even when they exceed the cart total.
	Validate(ctx context.Context, code string, cartTotal int64) (*Discount, error)

	// ListActive returns all active codes with display labels.
	ListActive(ctx context.Context) ([]PromoSummary, error)
}
