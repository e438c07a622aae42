package handler

import (
	"net/http"

	"github.com/lavkashop/lavka/internal/domain"
)

// PromoHandler serves promocode validation and listing.
type PromoHandler struct {
	promos domain.PromoService
}

// NewPromoHandler creates a new promocode handler.
func NewPromoHandler(promos domain.PromoService) *PromoHandler {
	return &PromoHandler{promos: promos}
}

type validatePromoRequest struct {
	Code      string `json:"code"`
	CartTotal int64  `json:"cartTotal"`
}

type validatePromoResponse struct {
	Code           string `json:"code"`
	DiscountAmount int64  `json:"discountAmount"`
	DiscountLabel  string `json:"discountLabel"`
}

// Validate handles POST /api/promocodes/validate
func (h *PromoHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req validatePromoRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondError(w, r, err)
		return
	}

	d, err := h.promos.Validate(r.Context(), req.Code, req.CartTotal)
	if err != nil {
		RespondError(w, r, err)
		return
	}
	RespondJSON(w, http.StatusOK, validatePromoResponse{
		Code:           d.Code,
		DiscountAmount: d.Amount,
		DiscountLabel:  d.Label,
	})
}

// List handles GET /api/promocodes/list
func (h *PromoHandler) List(w http.ResponseWriter, r *http.Request) {
	promos, err := h.promos.ListActive(r.Context())
	if err != nil {
		RespondError(w, r, err)
		return
	}
	RespondJSON(w, http.StatusOK, promos)
}
