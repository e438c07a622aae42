package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lavkashop/lavka/internal/domain"
	"github.com/lavkashop/lavka/internal/email"
	"github.com/lavkashop/lavka/internal/handler"
	"github.com/lavkashop/lavka/internal/router"
	"github.com/lavkashop/lavka/internal/routes"
	"github.com/lavkashop/lavka/internal/service"
	"github.com/lavkashop/lavka/internal/store"
	"github.com/lavkashop/lavka/internal/store/jsonfile"
)

// newTestServer wires the full API against a fresh jsonfile store,
// the same way cmd/server does.
func newTestServer(t *testing.T) (*httptest.Server, store.Store) {
	t.Helper()

	st, err := jsonfile.Open(filepath.Join(t.TempDir(), "store.json"), nil)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := router.New()
	routes.RegisterAPIRoutes(r, routes.APIDeps{
		Products: handler.NewProductHandler(service.NewCatalogService(st)),
		Cart:     handler.NewCartHandler(service.NewCartService(st)),
		Wishlist: handler.NewWishlistHandler(service.NewWishlistService(st)),
		Promos:   handler.NewPromoHandler(service.NewPromoService(st)),
		Orders:   handler.NewOrderHandler(service.NewOrderService(st, email.NopSender{}, logger)),
		Auth:     handler.NewAuthHandler(service.NewUserService(st)),
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, st
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func seedProduct(t *testing.T, st store.Store, name string, price int64) domain.Product {
	t.Helper()
	p := domain.Product{
		ID:        uuid.NewString(),
		Name:      name,
		Category:  "api-test",
		Price:     price,
		Stock:     10,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, st.Products().Create(context.Background(), p))
	return p
}

func TestAPI_ProductRoutes(t *testing.T) {
	srv, st := newTestServer(t)
	p := seedProduct(t, st, "Route Tee", 1990)

	resp, raw := doJSON(t, http.MethodGet, srv.URL+"/api/products?category=api-test", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var products []domain.Product
	require.NoError(t, json.Unmarshal(raw, &products))
	require.Len(t, products, 1)
	assert.Equal(t, p.ID, products[0].ID)

	resp, raw = doJSON(t, http.MethodGet, srv.URL+"/api/products/"+p.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got domain.Product
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "Route Tee", got.Name)

	resp, raw = doJSON(t, http.MethodGet, srv.URL+"/api/products/no-such-id", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(raw), `"not_found"`)

	resp, raw = doJSON(t, http.MethodGet, srv.URL+"/api/products/meta/categories", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), "api-test")
}

func TestAPI_CartFlow(t *testing.T) {
	srv, st := newTestServer(t)
	p := seedProduct(t, st, "Flow Tee", 1990)
	session := "sess_" + uuid.NewString()

	resp, raw := doJSON(t, http.MethodPost, srv.URL+"/api/cart/add", map[string]any{
		"sessionId": session,
		"productId": p.ID,
		"size":      "M",
		"quantity":  2,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var view domain.CartView
	require.NoError(t, json.Unmarshal(raw, &view))
	require.Len(t, view.Items, 1)
	assert.Equal(t, int64(3980), view.Total)

	itemID := view.Items[0].ID
	resp, _ = doJSON(t, http.MethodPut, srv.URL+"/api/cart/update/"+itemID, map[string]any{"quantity": 5})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, raw = doJSON(t, http.MethodGet, srv.URL+"/api/cart/"+session, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(raw, &view))
	assert.Equal(t, int64(5*1990), view.Total)

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/api/cart/remove/"+itemID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, raw = doJSON(t, http.MethodGet, srv.URL+"/api/cart/"+session, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(raw, &view))
	assert.Empty(t, view.Items)
}

func TestAPI_CartAddValidationErrorBody(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, raw := doJSON(t, http.MethodPost, srv.URL+"/api/cart/add", map[string]any{
		"sessionId": "",
		"productId": "whatever",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "invalid", body.Error.Code)
	assert.Equal(t, "Session ID is required", body.Error.Message)
}

func TestAPI_CheckoutFlow(t *testing.T) {
	srv, st := newTestServer(t)
	a := seedProduct(t, st, "Checkout A", 1990)
	b := seedProduct(t, st, "Checkout B", 3990)
	session := "sess_" + uuid.NewString()

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/cart/add", map[string]any{
		"sessionId": session, "productId": a.ID, "quantity": 2,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/cart/add", map[string]any{
		"sessionId": session, "productId": b.ID, "quantity": 1,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Validate a promocode against the cart total; the discount is
	// advisory and the order keeps the full total.
	resp, raw := doJSON(t, http.MethodPost, srv.URL+"/api/promocodes/validate", map[string]any{
		"code": "WELCOME10", "cartTotal": 7970,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var promo struct {
		DiscountAmount int64  `json:"discountAmount"`
		DiscountLabel  string `json:"discountLabel"`
	}
	require.NoError(t, json.Unmarshal(raw, &promo))
	assert.Equal(t, int64(797), promo.DiscountAmount)
	assert.Equal(t, "10%", promo.DiscountLabel)

	resp, raw = doJSON(t, http.MethodPost, srv.URL+"/api/orders", map[string]any{
		"sessionId":       session,
		"customerName":    "Ann Customer",
		"customerEmail":   "ann@example.com",
		"deliveryAddress": "1 Main St",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var placed struct {
		OrderID string `json:"orderId"`
		Total   int64  `json:"total"`
	}
	require.NoError(t, json.Unmarshal(raw, &placed))
	assert.NotEmpty(t, placed.OrderID)
	assert.Equal(t, int64(7970), placed.Total)

	resp, raw = doJSON(t, http.MethodGet, srv.URL+"/api/orders/"+placed.OrderID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var order domain.Order
	require.NoError(t, json.Unmarshal(raw, &order))
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Len(t, order.Items, 2)

	resp, raw = doJSON(t, http.MethodGet, srv.URL+"/api/cart/"+session, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var view domain.CartView
	require.NoError(t, json.Unmarshal(raw, &view))
	assert.Empty(t, view.Items)

	// Checkout with the now-empty cart is rejected.
	resp, raw = doJSON(t, http.MethodPost, srv.URL+"/api/orders", map[string]any{
		"sessionId":       session,
		"customerName":    "Ann Customer",
		"customerEmail":   "ann@example.com",
		"deliveryAddress": "1 Main St",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(raw), "Cart is empty")
}

func TestAPI_WishlistRoutes(t *testing.T) {
	srv, st := newTestServer(t)
	p := seedProduct(t, st, "Wish Route Tee", 1990)
	session := "sess_" + uuid.NewString()

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/wishlist/add", map[string]any{
		"sessionId": session, "productId": p.ID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, raw := doJSON(t, http.MethodGet, fmt.Sprintf("%s/api/wishlist/check/%s/%s", srv.URL, session, p.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"inWishlist":true}`, string(raw))

	resp, _ = doJSON(t, http.MethodDelete, fmt.Sprintf("%s/api/wishlist/remove/%s/%s", srv.URL, session, p.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, raw = doJSON(t, http.MethodGet, fmt.Sprintf("%s/api/wishlist/check/%s/%s", srv.URL, session, p.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"inWishlist":false}`, string(raw))
}

func TestAPI_AuthRoutes(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, raw := doJSON(t, http.MethodPost, srv.URL+"/api/auth/register", map[string]any{
		"email":    "route@example.com",
		"password": "password1",
		"name":     "Route User",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var creds domain.Credentials
	require.NoError(t, json.Unmarshal(raw, &creds))
	require.NotEmpty(t, creds.Token)
	// The password hash never leaves the server.
	assert.NotContains(t, string(raw), "password")

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/auth/me", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+creds.Token)
	meResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer meResp.Body.Close()
	require.Equal(t, http.StatusOK, meResp.StatusCode)

	var me domain.PublicUser
	require.NoError(t, json.NewDecoder(meResp.Body).Decode(&me))
	assert.Equal(t, "route@example.com", me.Email)

	resp, raw = doJSON(t, http.MethodGet, srv.URL+"/api/auth/me", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, string(raw), `"unauthorized"`)

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/auth/login", map[string]any{
		"email": "route@example.com", "password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
