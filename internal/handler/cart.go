package handler

import (
	"net/http"

	"github.com/lavkashop/lavka/internal/domain"
)

// CartHandler serves the session cart routes.
type CartHandler struct {
	cart domain.CartService
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(cart domain.CartService) *CartHandler {
	return &CartHandler{cart: cart}
}

type addToCartRequest struct {
	SessionID string `json:"sessionId"`
	ProductID string `json:"productId"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// View handles GET /api/cart/{sessionID}
func (h *CartHandler) View(w http.ResponseWriter, r *http.Request) {
	view, err := h.cart.View(r.Context(), r.PathValue("sessionID"))
	if err != nil {
		RespondError(w, r, err)
		return
	}
	RespondJSON(w, http.StatusOK, view)
}

// Add handles POST /api/cart/add
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addToCartRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondError(w, r, err)
		return
	}

	if err := h.cart.Add(r.Context(), req.SessionID, req.ProductID, req.Size, req.Color, req.Quantity); err != nil {
		RespondError(w, r, err)
		return
	}

	view, err := h.cart.View(r.Context(), req.SessionID)
	if err != nil {
		RespondError(w, r, err)
		return
	}
	RespondJSON(w, http.StatusCreated, view)
}

// UpdateQuantity handles PUT /api/cart/update/{itemID}
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req updateQuantityRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondError(w, r, err)
		return
	}

	if err := h.cart.UpdateQuantity(r.Context(), r.PathValue("itemID"), req.Quantity); err != nil {
		RespondError(w, r, err)
		return
	}
	RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Remove handles DELETE /api/cart/remove/{itemID}
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if err := h.cart.Remove(r.Context(), r.PathValue("itemID")); err != nil {
		RespondError(w, r, err)
		return
	}
	RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Clear handles DELETE /api/cart/clear/{sessionID}
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.cart.Clear(r.Context(), r.PathValue("sessionID")); err != nil {
		RespondError(w, r, err)
		return
	}
	RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
