package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lavkashop/lavka/internal/domain"
	"github.com/lavkashop/lavka/internal/store"
)

// recordingSender captures confirmation sends for assertions.
type recordingSender struct {
	orders []*domain.Order
}

func (r *recordingSender) SendOrderConfirmation(ctx context.Context, order *domain.Order) error {
	r.orders = append(r.orders, order)
	return nil
}

func newOrderFixture(t *testing.T) (store.Store, domain.CartService, domain.OrderService, *recordingSender) {
	t.Helper()
	st := newTestStore(t)
	sender := &recordingSender{}
	return st, NewCartService(st), NewOrderService(st, sender, testLogger()), sender
}

func validRequest(sessionID string) domain.PlaceOrderRequest {
	return domain.PlaceOrderRequest{
		SessionID:       sessionID,
		CustomerName:    "Ann Customer",
		CustomerEmail:   "ann@example.com",
		CustomerPhone:   "+1 555 0100",
		DeliveryAddress: "1 Main St",
	}
}

func TestOrderPlace_SnapshotsCartAndClearsIt(t *testing.T) {
	st, cart, orders, sender := newOrderFixture(t)
	ctx := context.Background()

	a := createProduct(t, st, "Checkout Tee", "tees-test", 1990, 10)
	b := createProduct(t, st, "Checkout Hoodie", "hoodies-test", 3990, 10)
	session := "sess_" + uuid.NewString()

	require.NoError(t, cart.Add(ctx, session, a.ID, "M", "black", 2))
	require.NoError(t, cart.Add(ctx, session, b.ID, "", "", 1))

	view, err := cart.View(ctx, session)
	require.NoError(t, err)
	require.Equal(t, int64(7970), view.Total)

	order, err := orders.Place(ctx, validRequest(session))
	require.NoError(t, err)

	// The order total matches the pre-checkout cart total. A discount
	// validated against it is advisory and never subtracted here.
	assert.Equal(t, int64(7970), order.Total)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Len(t, order.Items, 2)

	view, err = cart.View(ctx, session)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Zero(t, view.Total)

	require.Len(t, sender.orders, 1)
	assert.Equal(t, order.ID, sender.orders[0].ID)
}

func TestOrderPlace_EmptyCart(t *testing.T) {
	_, _, orders, sender := newOrderFixture(t)
	ctx := context.Background()

	session := "sess_" + uuid.NewString()
	_, err := orders.Place(ctx, validRequest(session))
	assert.ErrorIs(t, err, domain.ErrEmptyCart)

	listed, err := orders.ListForSession(ctx, session)
	require.NoError(t, err)
	assert.Empty(t, listed)
	assert.Empty(t, sender.orders)
}

func TestOrderPlace_Validation(t *testing.T) {
	_, _, orders, _ := newOrderFixture(t)
	ctx := context.Background()

	for name, mutate := range map[string]func(*domain.PlaceOrderRequest){
		"missing session": func(r *domain.PlaceOrderRequest) { r.SessionID = "" },
		"missing name":    func(r *domain.PlaceOrderRequest) { r.CustomerName = "" },
		"missing email":   func(r *domain.PlaceOrderRequest) { r.CustomerEmail = "" },
		"missing address": func(r *domain.PlaceOrderRequest) { r.DeliveryAddress = "" },
	} {
		t.Run(name, func(t *testing.T) {
			req := validRequest("sess_1")
			mutate(&req)
			_, err := orders.Place(ctx, req)
			assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
		})
	}
}

func TestOrderPlace_MissingProductSnapshotsPlaceholder(t *testing.T) {
	st, _, orders, _ := newOrderFixture(t)
	ctx := context.Background()

	session := "sess_" + uuid.NewString()
	require.NoError(t, st.CartItems().Create(ctx, domain.CartItem{
		ID:        uuid.NewString(),
		SessionID: session,
		ProductID: "vanished-product-id",
		Quantity:  1,
		CreatedAt: time.Now().UTC(),
	}))

	order, err := orders.Place(ctx, validRequest(session))
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Product #vanished", order.Items[0].Name)
	assert.Zero(t, order.Items[0].Price)
	assert.Zero(t, order.Total)
}

func TestOrderSnapshot_SurvivesCatalogDrift(t *testing.T) {
	st, products := newCatalogOverlayStore(t)
	cart := NewCartService(st)
	orders := NewOrderService(st, &recordingSender{}, testLogger())
	ctx := context.Background()

	p := createProduct(t, st, "Frozen Tee", "tees-test", 2500, 10)
	session := "sess_" + uuid.NewString()
	require.NoError(t, cart.Add(ctx, session, p.ID, "", "", 1))

	placed, err := orders.Place(ctx, validRequest(session))
	require.NoError(t, err)

	// A later price change must not reach the frozen snapshot.
	products.setPrice(p.ID, 9900)

	got, err := orders.Get(ctx, placed.ID)
	require.NoError(t, err)
	assert.Equal(t, "Frozen Tee", got.Items[0].Name)
	assert.Equal(t, int64(2500), got.Items[0].Price)
	assert.Equal(t, int64(2500), got.Total)
}

func TestOrderListForSession_NewestFirst(t *testing.T) {
	st, cart, orders, _ := newOrderFixture(t)
	ctx := context.Background()

	p := createProduct(t, st, "Repeat Tee", "tees-test", 1000, 10)
	session := "sess_" + uuid.NewString()

	var ids []string
	for i := 0; i < 3; i++ {
		require.NoError(t, cart.Add(ctx, session, p.ID, "", "", 1))
		o, err := orders.Place(ctx, validRequest(session))
		require.NoError(t, err)
		ids = append(ids, o.ID)
		time.Sleep(2 * time.Millisecond)
	}

	listed, err := orders.ListForSession(ctx, session)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, ids[2], listed[0].ID)
	assert.Equal(t, ids[0], listed[2].ID)
}

func TestOrderGet_NotFound(t *testing.T) {
	_, _, orders, _ := newOrderFixture(t)

	_, err := orders.Get(context.Background(), "no-such-order")
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}
