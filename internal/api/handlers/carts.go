package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/framecraft/storefront/internal/api/dto"
	"github.com/framecraft/storefront/internal/application/checkout"
	"github.com/framecraft/storefront/internal/infrastructure/storage"
)

// CartsHandler handles cart lifecycle requests.
type CartsHandler struct {
	*Base
	service *checkout.Service
}

// NewCartsHandler creates a new carts handler.
func NewCartsHandler(repo storage.Repository, service *checkout.Service) *CartsHandler {
	return &CartsHandler{Base: NewBase(repo), service: service}
}

// Create handles POST /api/carts.
func (h *CartsHandler) Create(w http.ResponseWriter, r *http.Request) {
	cart := &storage.Cart{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}

	if err := h.repo.CreateCart(cart); err != nil {
		h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return
	}

	h.WriteJSON(w, http.StatusCreated, toCartResponse(cart))
}

// Get handles GET /api/carts/{id}.
func (h *CartsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		h.WriteError(w, http.StatusBadRequest, dto.BadRequestError("cart ID is required"))
		return
	}

	cart, err := h.repo.GetCart(id)
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return
	}
	if cart == nil {
		h.WriteError(w, http.StatusNotFound, dto.NotFoundError("cart"))
		return
	}

	h.WriteJSON(w, http.StatusOK, toCartResponse(cart))
}

// AddItem handles POST /api/carts/{id}/items. The lens configuration in the
// request is validated for checkout eligibility and frozen as the line's
// snapshot.
func (h *CartsHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "id")
	if cartID == "" {
		h.WriteError(w, http.StatusBadRequest, dto.BadRequestError("cart ID is required"))
		return
	}

	var req dto.AddCartItemRequest
	if err := DecodeJSON(r, &req); err != nil {
		h.WriteError(w, http.StatusBadRequest, dto.BadRequestError("invalid request body"))
		return
	}

	if req.ProductID == "" {
		h.WriteError(w, http.StatusBadRequest, dto.ValidationError("product_id is required"))
		return
	}
	if req.Quantity < 1 {
		h.WriteError(w, http.StatusBadRequest, dto.ValidationError("quantity must be at least 1"))
		return
	}

	item, err := h.service.AddItem(checkout.AddItemRequest{
		CartID:    cartID,
		ProductID: req.ProductID,
		VariantID: req.VariantID,
		Quantity:  req.Quantity,
		Config:    req.LensConfig,
	})
	if err != nil {
		h.writeCheckoutError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, toCartItemResponse(item))
}

// UpdateItem handles PUT /api/carts/{id}/items/{itemID}. Only the quantity
// can change; the unit price stays frozen.
func (h *CartsHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")
	if itemID == "" {
		h.WriteError(w, http.StatusBadRequest, dto.BadRequestError("item ID is required"))
		return
	}

	var req dto.UpdateCartItemRequest
	if err := DecodeJSON(r, &req); err != nil {
		h.WriteError(w, http.StatusBadRequest, dto.BadRequestError("invalid request body"))
		return
	}
	if req.Quantity < 1 {
		h.WriteError(w, http.StatusBadRequest, dto.ValidationError("quantity must be at least 1"))
		return
	}

	item, err := h.service.UpdateItemQuantity(itemID, req.Quantity)
	if err != nil {
		h.writeCheckoutError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, toCartItemResponse(item))
}

// DeleteItem handles DELETE /api/carts/{id}/items/{itemID}.
func (h *CartsHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")
	if itemID == "" {
		h.WriteError(w, http.StatusBadRequest, dto.BadRequestError("item ID is required"))
		return
	}

	item, err := h.repo.GetCartItem(itemID)
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return
	}
	if item == nil {
		h.WriteError(w, http.StatusNotFound, dto.NotFoundError("cart item"))
		return
	}

	if err := h.repo.DeleteCartItem(itemID); err != nil {
		h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toCartResponse(cart *storage.Cart) dto.CartResponse {
	response := dto.CartResponse{
		ID:    cart.ID,
		Items: make([]dto.CartItemResponse, 0, len(cart.Items)),
	}

	for i := range cart.Items {
		response.Items = append(response.Items, toCartItemResponse(&cart.Items[i]))
		response.Subtotal += cart.Items[i].LineTotal
	}

	return response
}

func toCartItemResponse(item *storage.CartItem) dto.CartItemResponse {
	return dto.CartItemResponse{
		ID:         item.ID,
		ProductID:  item.ProductID,
		VariantID:  item.VariantID,
		Quantity:   item.Quantity,
		UnitPrice:  item.UnitPrice,
		LineTotal:  item.LineTotal,
		LensConfig: json.RawMessage(item.LensConfigJSON),
	}
}
