package handler

import (
	"net/http"

	"github.com/lavkashop/lavka/internal/domain"
)

// WishlistHandler serves the session wishlist routes.
type WishlistHandler struct {
	wishlist domain.WishlistService
}

// NewWishlistHandler creates a new wishlist handler.
func NewWishlistHandler(wishlist domain.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlist: wishlist}
}

type addToWishlistRequest struct {
	SessionID string `json:"sessionId"`
	ProductID string `json:"productId"`
}

// List handles GET /api/wishlist/{sessionID}
func (h *WishlistHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.wishlist.List(r.Context(), r.PathValue("sessionID"))
	if err != nil {
		RespondError(w, r, err)
		return
	}
	RespondJSON(w, http.StatusOK, products)
}

// Check handles GET /api/wishlist/check/{sessionID}/{productID}
func (h *WishlistHandler) Check(w http.ResponseWriter, r *http.Request) {
	ok, err := h.wishlist.Contains(r.Context(), r.PathValue("sessionID"), r.PathValue("productID"))
	if err != nil {
		RespondError(w, r, err)
		return
	}
	RespondJSON(w, http.StatusOK, map[string]bool{"inWishlist": ok})
}

// Add handles POST /api/wishlist/add
func (h *WishlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addToWishlistRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondError(w, r, err)
		return
	}

	if err := h.wishlist.Add(r.Context(), req.SessionID, req.ProductID); err != nil {
		RespondError(w, r, err)
		return
	}
	RespondJSON(w, http.StatusCreated, map[string]bool{"success": true})
}

// Remove handles DELETE /api/wishlist/remove/{sessionID}/{productID}
func (h *WishlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if err := h.wishlist.Remove(r.Context(), r.PathValue("sessionID"), r.PathValue("productID")); err != nil {
		RespondError(w, r, err)
		return
	}
	RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
