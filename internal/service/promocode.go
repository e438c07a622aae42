package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/lavkashop/lavka/internal/domain"
	"github.com/lavkashop/lavka/internal/store"
	"github.com/lavkashop/lavka/internal/telemetry"
)

type promoService struct {
	store store.Store
}

// NewPromoService creates a PromoService backed by the store.
func NewPromoService(st store.Store) domain.PromoService {
	return &promoService{store: st}
}

// Validate resolves an active code and computes the discount against
// the supplied cart total. The discount is advisory: nothing here
// reserves the code or adjusts any stored total.
func (s *promoService) Validate(ctx context.Context, code string, cartTotal int64) (*domain.Discount, error) {
	if code == "" {
		return nil, domain.Invalid("promo.Validate", "Promocode is required")
	}

	promo, err := s.store.Promocodes().FindActiveByCode(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			telemetry.Business.PromoValidations.WithLabelValues("invalid").Inc()
			return nil, domain.ErrInvalidPromoCode
		}
		return nil, fmt.Errorf("failed to look up promocode: %w", err)
	}

	telemetry.Business.PromoValidations.WithLabelValues("ok").Inc()
	return &domain.Discount{
		Code:   promo.Code,
		Amount: discountAmount(*promo, cartTotal),
		Label:  discountLabel(*promo),
	}, nil
}

// ListActive returns all active codes with display labels.
func (s *promoService) ListActive(ctx context.Context) ([]domain.PromoSummary, error) {
	promos, err := s.store.Promocodes().ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list promocodes: %w", err)
	}

	summaries := make([]domain.PromoSummary, 0, len(promos))
	for _, p := range promos {
		summaries = append(summaries, domain.PromoSummary{
			Code:  p.Code,
			Label: discountLabel(p),
		})
	}
	return summaries, nil
}

// discountAmount computes the monetary discount. Percent discounts
// round half away from zero; fixed discounts are not clamped to the
// cart total.
func discountAmount(p domain.Promocode, cartTotal int64) int64 {
	if p.Kind == domain.DiscountPercent {
		return int64(math.Round(float64(cartTotal) * float64(p.Discount) / 100))
	}
	return p.Discount
}

func discountLabel(p domain.Promocode) string {
	if p.Kind == domain.DiscountPercent {
		return fmt.Sprintf("%d%%", p.Discount)
	}
	return fmt.Sprintf("%d", p.Discount)
}
