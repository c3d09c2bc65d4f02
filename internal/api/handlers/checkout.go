package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/framecraft/storefront/internal/api/dto"
	"github.com/framecraft/storefront/internal/application/checkout"
	"github.com/framecraft/storefront/internal/infrastructure/storage"
)

// CheckoutHandler turns a cart into an order.
type CheckoutHandler struct {
	*Base
	service *checkout.Service
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(repo storage.Repository, service *checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{Base: NewBase(repo), service: service}
}

// PlaceOrder handles POST /api/checkout.
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.CheckoutRequest
	if err := DecodeJSON(r, &req); err != nil {
		h.WriteError(w, http.StatusBadRequest, dto.BadRequestError("invalid request body"))
		return
	}

	if req.CartID == "" {
		h.WriteError(w, http.StatusBadRequest, dto.ValidationError("cart_id is required"))
		return
	}

	var missing []string
	if strings.TrimSpace(req.CustomerName) == "" {
		missing = append(missing, "customer_name")
	}
	if strings.TrimSpace(req.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(req.ShippingAddress) == "" {
		missing = append(missing, "shipping_address")
	}
	if len(missing) > 0 {
		h.WriteError(w, http.StatusBadRequest,
			dto.ValidationError("missing required fields: "+strings.Join(missing, ", ")))
		return
	}

	order, err := h.service.PlaceOrder(checkout.PlaceOrderRequest{
		CartID:          req.CartID,
		CustomerName:    req.CustomerName,
		Email:           req.Email,
		Phone:           req.Phone,
		ShippingAddress: req.ShippingAddress,
	})
	if err != nil {
		h.writeCheckoutError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, toOrderResponse(order))
}

// toOrderResponse converts a storage order to an API response.
func toOrderResponse(order *storage.Order) dto.OrderResponse {
	response := dto.OrderResponse{
		ID:              order.ID,
		CustomerName:    order.CustomerName,
		Email:           order.Email,
		Phone:           order.Phone,
		ShippingAddress: order.ShippingAddress,
		Subtotal:        order.Subtotal,
		ShippingFee:     order.ShippingFee,
		Total:           order.Total,
		Status:          order.Status,
		CreatedAt:       order.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		Items:           make([]dto.OrderItemResponse, 0, len(order.Items)),
	}

	for _, item := range order.Items {
		response.Items = append(response.Items, dto.OrderItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			VariantID:   item.VariantID,
			VariantName: item.VariantName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LineTotal:   item.LineTotal,
			LensConfig:  json.RawMessage(item.LensConfigJSON),
		})
	}

	return response
}
