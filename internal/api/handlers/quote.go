package handlers

import (
	"net/http"

	"github.com/framecraft/storefront/internal/api/dto"
	"github.com/framecraft/storefront/internal/application/checkout"
	"github.com/framecraft/storefront/internal/infrastructure/storage"
)

// QuoteHandler prices a configured line on demand. The storefront calls it
// on every configuration change to keep the displayed price current.
type QuoteHandler struct {
	*Base
	service *checkout.Service
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(repo storage.Repository, service *checkout.Service) *QuoteHandler {
	return &QuoteHandler{Base: NewBase(repo), service: service}
}

// Quote handles POST /api/price-quote.
func (h *QuoteHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req dto.QuoteRequest
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

	quote, err := h.service.Quote(checkout.QuoteRequest{
		ProductID:  req.ProductID,
		VariantID:  req.VariantID,
		LensTypeID: req.LensTypeID,
		Quantity:   req.Quantity,
	})
	if err != nil {
		h.writeCheckoutError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, dto.QuoteResponse{
		UnitPrice: quote.UnitPrice,
		LineTotal: quote.LineTotal,
	})
}
