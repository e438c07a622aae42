// Package routes binds the storefront API onto the router. Route
// wiring lives here so the server and the HTTP tests share it.
package routes

import (
	"github.com/lavkashop/lavka/internal/handler"
	"github.com/lavkashop/lavka/internal/middleware"
	"github.com/lavkashop/lavka/internal/router"
)

// RegisterAPIRoutes registers every storefront API route.
func RegisterAPIRoutes(r *router.Router, deps APIDeps) {
	// Catalog
	r.Get("/api/products", deps.Products.List)
	r.Get("/api/products/meta/categories", deps.Products.Categories)
	r.Get("/api/products/{id}", deps.Products.Get)

	// Cart
	r.Get("/api/cart/{sessionID}", deps.Cart.View)
	r.Post("/api/cart/add", deps.Cart.Add)
	r.Put("/api/cart/update/{itemID}", deps.Cart.UpdateQuantity)
	r.Delete("/api/cart/remove/{itemID}", deps.Cart.Remove)
	r.Delete("/api/cart/clear/{sessionID}", deps.Cart.Clear)

	// Wishlist
	r.Get("/api/wishlist/{sessionID}", deps.Wishlist.List)
	r.Get("/api/wishlist/check/{sessionID}/{productID}", deps.Wishlist.Check)
	r.Post("/api/wishlist/add", deps.Wishlist.Add)
	r.Delete("/api/wishlist/remove/{sessionID}/{productID}", deps.Wishlist.Remove)

	// Promocodes
	r.Post("/api/promocodes/validate", deps.Promos.Validate)
	r.Get("/api/promocodes/list", deps.Promos.List)

	// Orders
	r.Post("/api/orders", deps.Orders.Place)
	r.Get("/api/orders/user/{sessionID}", deps.Orders.ListForSession)
	r.Get("/api/orders/{orderID}", deps.Orders.Get)

	// Auth, with a stricter rate limit on the credential endpoints.
	strict := middleware.RateLimit(middleware.StrictRateLimiterConfig())
	r.Post("/api/auth/register", deps.Auth.Register, strict)
	r.Post("/api/auth/login", deps.Auth.Login, strict)
	r.Get("/api/auth/me", deps.Auth.Me)

	// Operational endpoints
	r.Get("/health", handler.Health)
	if deps.Metrics != nil {
		r.Handle("GET", "/metrics", deps.Metrics.Handler())
	}
}
