package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lavkashop/lavka/internal/domain"
)

// The seeded promocode table is WELCOME10 (10%), SALE500 (fixed 500),
// and VIP20 (20%, inactive).

func TestPromoValidate_Percent(t *testing.T) {
	st := newTestStore(t)
	svc := NewPromoService(st)
	ctx := context.Background()

	d, err := svc.Validate(ctx, "WELCOME10", 1000)
	require.NoError(t, err)
	assert.Equal(t, "WELCOME10", d.Code)
	assert.Equal(t, int64(100), d.Amount)
	assert.Equal(t, "10%", d.Label)

	// Rounding is half away from zero.
	d, err = svc.Validate(ctx, "WELCOME10", 25)
	require.NoError(t, err)
	assert.Equal(t, int64(3), d.Amount)

	d, err = svc.Validate(ctx, "WELCOME10", 7970)
	require.NoError(t, err)
	assert.Equal(t, int64(797), d.Amount)
}

func TestPromoValidate_FixedNotClamped(t *testing.T) {
	st := newTestStore(t)
	svc := NewPromoService(st)
	ctx := context.Background()

	d, err := svc.Validate(ctx, "SALE500", 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(500), d.Amount)
	assert.Equal(t, "500", d.Label)

	// A fixed discount can exceed the cart total.
	d, err = svc.Validate(ctx, "SALE500", 300)
	require.NoError(t, err)
	assert.Equal(t, int64(500), d.Amount)
}

func TestPromoValidate_CaseInsensitive(t *testing.T) {
	st := newTestStore(t)
	svc := NewPromoService(st)

	d, err := svc.Validate(context.Background(), "welcome10", 1000)
	require.NoError(t, err)
	assert.Equal(t, "WELCOME10", d.Code)
}

func TestPromoValidate_Rejections(t *testing.T) {
	st := newTestStore(t)
	svc := NewPromoService(st)
	ctx := context.Background()

	_, err := svc.Validate(ctx, "NOPE", 1000)
	assert.ErrorIs(t, err, domain.ErrInvalidPromoCode)

	// Inactive codes are invisible to validation.
	_, err = svc.Validate(ctx, "VIP20", 1000)
	assert.ErrorIs(t, err, domain.ErrInvalidPromoCode)

	_, err = svc.Validate(ctx, "", 1000)
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
}

func TestPromoListActive(t *testing.T) {
	st := newTestStore(t)
	svc := NewPromoService(st)

	promos, err := svc.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, promos, 2)

	byCode := make(map[string]string, len(promos))
	for _, p := range promos {
		byCode[p.Code] = p.Label
	}
	assert.Equal(t, "10%", byCode["WELCOME10"])
	assert.Equal(t, "500", byCode["SALE500"])
}
