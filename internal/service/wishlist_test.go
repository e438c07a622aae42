package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lavkashop/lavka/internal/domain"
)

func TestWishlistAdd_Idempotent(t *testing.T) {
	st := newTestStore(t)
	svc := NewWishlistService(st)
	ctx := context.Background()

	p := createProduct(t, st, "Wish Tee", "tees-test", 1990, 5)
	session := "sess_" + uuid.NewString()

	require.NoError(t, svc.Add(ctx, session, p.ID))
	require.NoError(t, svc.Add(ctx, session, p.ID))

	listed, err := svc.List(ctx, session)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, p.ID, listed[0].ID)

	ok, err := svc.Contains(ctx, session, p.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestWishlistAdd_Validation(t *testing.T) {
	st := newTestStore(t)
	svc := NewWishlistService(st)
	ctx := context.Background()

	err := svc.Add(ctx, "", "some-product")
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))

	err = svc.Add(ctx, "sess_1", "")
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
}

func TestWishlistAdd_UnknownProductAccepted(t *testing.T) {
	st := newTestStore(t)
	svc := NewWishlistService(st)
	ctx := context.Background()

	session := "sess_" + uuid.NewString()

	// No catalog lookup on add; the entry exists but List hides it.
	require.NoError(t, svc.Add(ctx, session, "ghost-product-id"))

	ok, err := svc.Contains(ctx, session, "ghost-product-id")
	require.NoError(t, err)
	assert.True(t, ok)

	listed, err := svc.List(ctx, session)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestWishlistRemove_Idempotent(t *testing.T) {
	st := newTestStore(t)
	svc := NewWishlistService(st)
	ctx := context.Background()

	p := createProduct(t, st, "Unwish Tee", "tees-test", 1990, 5)
	session := "sess_" + uuid.NewString()
	require.NoError(t, svc.Add(ctx, session, p.ID))

	require.NoError(t, svc.Remove(ctx, session, p.ID))
	require.NoError(t, svc.Remove(ctx, session, p.ID))

	ok, err := svc.Contains(ctx, session, p.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWishlistList_SkipsMissingProducts(t *testing.T) {
	st := newTestStore(t)
	svc := NewWishlistService(st)
	ctx := context.Background()

	p := createProduct(t, st, "Kept Tee", "tees-test", 1990, 5)
	session := "sess_" + uuid.NewString()
	require.NoError(t, svc.Add(ctx, session, p.ID))

	require.NoError(t, st.Wishlist().Create(ctx, domain.WishlistEntry{
		ID:        uuid.NewString(),
		SessionID: session,
		ProductID: "vanished-product-id",
		CreatedAt: time.Now().UTC(),
	}))

	listed, err := svc.List(ctx, session)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, p.ID, listed[0].ID)
}
