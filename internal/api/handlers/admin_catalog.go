package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/framecraft/storefront/internal/api/dto"
	"github.com/framecraft/storefront/internal/infrastructure/storage"
)

// AdminCatalogHandler manages the catalog from the back office: creating and
// updating products, variants and lens types.
type AdminCatalogHandler struct {
	*Base
}

// NewAdminCatalogHandler creates a new admin catalog handler.
func NewAdminCatalogHandler(repo storage.Repository) *AdminCatalogHandler {
	return &AdminCatalogHandler{Base: NewBase(repo)}
}

// SaveProduct handles POST and PUT /api/admin/products. An empty ID creates
// a new product; a set ID updates it and replaces its variants.
func (h *AdminCatalogHandler) SaveProduct(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveProductRequest
	if err := DecodeJSON(r, &req); err != nil {
		h.WriteError(w, http.StatusBadRequest, dto.BadRequestError("invalid request body"))
		return
	}

	if req.Name == "" {
		h.WriteError(w, http.StatusBadRequest, dto.ValidationError("name is required"))
		return
	}
	if req.BasePrice < 0 {
		h.WriteError(w, http.StatusBadRequest, dto.ValidationError("base_price cannot be negative"))
		return
	}

	created := req.ID == ""
	if created {
		req.ID = uuid.NewString()
	}

	product := &storage.Product{
		ID:                req.ID,
		Name:              req.Name,
		Description:       req.Description,
		BasePrice:         req.BasePrice,
		ImagePath:         req.ImagePath,
		OffersLensOptions: req.OffersLensOptions,
		Enabled:           req.Enabled,
		DisplayOrder:      req.DisplayOrder,
		CreatedAt:         time.Now().UTC(),
		Variants:          make([]storage.ProductVariant, 0, len(req.Variants)),
	}

	for _, v := range req.Variants {
		if v.Name == "" {
			h.WriteError(w, http.StatusBadRequest, dto.ValidationError("variant name is required"))
			return
		}
		id := v.ID
		if id == "" {
			id = uuid.NewString()
		}
		product.Variants = append(product.Variants, storage.ProductVariant{
			ID:              id,
			ProductID:       product.ID,
			Name:            v.Name,
			PriceAdjustment: v.PriceAdjustment,
			Stock:           v.Stock,
			DisplayOrder:    v.DisplayOrder,
			Enabled:         v.Enabled,
		})
	}

	if err := h.repo.SaveProduct(product); err != nil {
		h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	h.WriteJSON(w, status, toProductResponse(product))
}

// SaveLensType handles POST and PUT /api/admin/lens-types.
func (h *AdminCatalogHandler) SaveLensType(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveLensTypeRequest
	if err := DecodeJSON(r, &req); err != nil {
		h.WriteError(w, http.StatusBadRequest, dto.BadRequestError("invalid request body"))
		return
	}

	if req.Name == "" {
		h.WriteError(w, http.StatusBadRequest, dto.ValidationError("name is required"))
		return
	}

	created := req.ID == ""
	if created {
		req.ID = uuid.NewString()
	}

	lensType := &storage.LensType{
		ID:              req.ID,
		Name:            req.Name,
		Description:     req.Description,
		ImagePath:       req.ImagePath,
		PriceAdjustment: req.PriceAdjustment,
		Enabled:         req.Enabled,
		DisplayOrder:    req.DisplayOrder,
	}

	if err := h.repo.SaveLensType(lensType); err != nil {
		h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	h.WriteJSON(w, status, toLensTypeResponse(lensType))
}
