package handler

import (
	"net/http"

	"github.com/lavkashop/lavka/internal/domain"
)

// OrderHandler serves checkout and order lookup routes.
type OrderHandler struct {
	orders domain.OrderService
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orders domain.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type placeOrderRequest struct {
	SessionID       string `json:"sessionId"`
	CustomerName    string `json:"customerName"`
	CustomerEmail   string `json:"customerEmail"`
	CustomerPhone   string `json:"customerPhone"`
	DeliveryAddress string `json:"deliveryAddress"`
}

type placeOrderResponse struct {
	OrderID string `json:"orderId"`
	Total   int64  `json:"total"`
}

// Place handles POST /api/orders
func (h *OrderHandler) Place(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondError(w, r, err)
		return
	}

	order, err := h.orders.Place(r.Context(), domain.PlaceOrderRequest{
		SessionID:       req.SessionID,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		DeliveryAddress: req.DeliveryAddress,
	})
	if err != nil {
		RespondError(w, r, err)
		return
	}
	RespondJSON(w, http.StatusCreated, placeOrderResponse{
		OrderID: order.ID,
		Total:   order.Total,
	})
}

// ListForSession handles GET /api/orders/user/{sessionID}
func (h *OrderHandler) ListForSession(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.ListForSession(r.Context(), r.PathValue("sessionID"))
	if err != nil {
		RespondError(w, r, err)
		return
	}
	RespondJSON(w, http.StatusOK, orders)
}

// Get handles GET /api/orders/{orderID}
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.Get(r.Context(), r.PathValue("orderID"))
	if err != nil {
		RespondError(w, r, err)
		return
	}
	RespondJSON(w, http.StatusOK, order)
}
