package routes

import (
	"github.com/lavkashop/lavka/internal/handler"
	"github.com/lavkashop/lavka/internal/middleware"
)

// APIDeps contains the handlers behind the storefront API routes.
type APIDeps struct {
	Products *handler.ProductHandler
	Cart     *handler.CartHandler
	Wishlist *handler.WishlistHandler
	Promos   *handler.PromoHandler
	Orders   *handler.OrderHandler
	Auth     *handler.AuthHandler
	Metrics  *middleware.Metrics
}
