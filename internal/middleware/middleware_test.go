package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	var captured string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	assert.NotEmpty(t, captured)
	assert.Equal(t, captured, rec.Header().Get(RequestIDHeader))

	// An upstream request ID is reused, not replaced.
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.Header.Set(RequestIDHeader, "upstream-id")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "upstream-id", captured)
}

func TestRateLimiter_ExhaustsBurst(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{
		RequestsPerSecond: 0.001,
		BurstSize:         3,
		CleanupInterval:   time.Minute,
	})
	defer rl.Stop()

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("1.2.3.4"), "request %d within burst", i)
	}
	assert.False(t, rl.Allow("1.2.3.4"))

	// Other clients have their own bucket.
	assert.True(t, rl.Allow("5.6.7.8"))
}

func TestRateLimiter_MiddlewareRespondsJSON(t *testing.T) {
	limiter := NewRateLimiter(RateLimiterConfig{
		RequestsPerSecond: 0.001,
		BurstSize:         1,
		CleanupInterval:   time.Minute,
	})
	defer limiter.Stop()

	h := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.RemoteAddr = "9.9.9.9:1234"

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `"rate_limit"`)
}

func TestGetClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:5000"
	assert.Equal(t, "10.0.0.1", GetClientIP(req))

	req.Header.Set("X-Real-IP", "20.0.0.2")
	assert.Equal(t, "20.0.0.2", GetClientIP(req))

	req.Header.Set("X-Forwarded-For", "30.0.0.3, 20.0.0.2")
	assert.Equal(t, "30.0.0.3", GetClientIP(req))
}

func TestNormalizePath(t *testing.T) {
	cases := map[string]string{
		"/api/products":                       "/api/products",
		"/api/products/abc-123":               "/api/products/:id",
		"/api/products/meta/categories":       "/api/products/meta/categories",
		"/api/cart/sess_42":                   "/api/cart/:sessionID",
		"/api/cart/add":                       "/api/cart/add",
		"/api/cart/update/item-9":             "/api/cart/update/:id",
		"/api/wishlist/check/sess_42/prod-1":  "/api/wishlist/check/:sessionID/:productID",
		"/api/wishlist/remove/sess_42/prod-1": "/api/wishlist/remove/:sessionID/:productID",
		"/api/orders/ord-77":                  "/api/orders/:orderID",
		"/api/orders/user/sess_42":            "/api/orders/user/:sessionID",
		"/health":                             "/health",
		"/static/css/site.css":                "/static/*",
	}
	for in, want := range cases {
		assert.Equal(t, want, normalizePath(in), in)
	}
}
