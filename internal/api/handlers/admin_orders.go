package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/framecraft/storefront/internal/api/dto"
	"github.com/framecraft/storefront/internal/infrastructure/storage"
)

// AdminOrdersHandler serves the back-office order views.
type AdminOrdersHandler struct {
	*Base
}

// NewAdminOrdersHandler creates a new admin orders handler.
func NewAdminOrdersHandler(repo storage.Repository) *AdminOrdersHandler {
	return &AdminOrdersHandler{Base: NewBase(repo)}
}

// List handles GET /api/admin/orders - returns paginated list of orders.
func (h *AdminOrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	filters := storage.OrderFilters{
		Status:   r.URL.Query().Get("status"),
		Search:   r.URL.Query().Get("search"),
		DaysBack: ParseIntParam(r, "days_back", 0),
		Limit:    ParseIntParam(r, "limit", 50),
		Offset:   ParseIntParam(r, "offset", 0),
	}

	if filters.Status != "" && !storage.ValidOrderStatus(filters.Status) {
		h.WriteError(w, http.StatusBadRequest, dto.ValidationError("unknown order status"))
		return
	}

	result, err := h.repo.ListOrders(filters)
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return
	}

	response := dto.OrderListResponse{
		Orders:     make([]dto.OrderResponse, 0, len(result.Orders)),
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	}
	for _, order := range result.Orders {
		response.Orders = append(response.Orders, toOrderResponse(order))
	}

	h.WriteJSON(w, http.StatusOK, response)
}

// Get handles GET /api/admin/orders/{id}. The response carries each line's
// configuration snapshot so the back office can render the prescription
// exactly as submitted.
func (h *AdminOrdersHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		h.WriteError(w, http.StatusBadRequest, dto.BadRequestError("order ID is required"))
		return
	}

	order, err := h.repo.GetOrder(id)
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return
	}
	if order == nil {
		h.WriteError(w, http.StatusNotFound, dto.NotFoundError("order"))
		return
	}

	h.WriteJSON(w, http.StatusOK, toOrderResponse(order))
}

// UpdateStatus handles PUT /api/admin/orders/{id}/status.
func (h *AdminOrdersHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		h.WriteError(w, http.StatusBadRequest, dto.BadRequestError("order ID is required"))
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := DecodeJSON(r, &req); err != nil {
		h.WriteError(w, http.StatusBadRequest, dto.BadRequestError("invalid request body"))
		return
	}

	if !storage.ValidOrderStatus(req.Status) {
		h.WriteError(w, http.StatusBadRequest, dto.ValidationError("unknown order status"))
		return
	}

	order, err := h.repo.GetOrder(id)
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return
	}
	if order == nil {
		h.WriteError(w, http.StatusNotFound, dto.NotFoundError("order"))
		return
	}

	if err := h.repo.UpdateOrderStatus(id, req.Status); err != nil {
		h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return
	}

	order.Status = req.Status
	h.WriteJSON(w, http.StatusOK, toOrderResponse(order))
}

// Stats handles GET /api/admin/stats.
func (h *AdminOrdersHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.repo.GetStats()
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return
	}

	h.WriteJSON(w, http.StatusOK, dto.StatsResponse{
		TotalOrders:    stats.TotalOrders,
		TotalRevenue:   stats.TotalRevenue,
		OrdersByStatus: stats.OrdersByStatus,
	})
}
