package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/framecraft/storefront/internal/api/dto"
	"github.com/framecraft/storefront/internal/infrastructure/storage"
)

// CatalogHandler serves the storefront catalog: products with their variants
// and the available lens types.
type CatalogHandler struct {
	*Base
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(repo storage.Repository) *CatalogHandler {
	return &CatalogHandler{Base: NewBase(repo)}
}

// ListProducts handles GET /api/products. The storefront only sees enabled
// products; the admin UI passes include_disabled=true.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	includeDisabled := ParseBoolParam(r, "include_disabled", false)

	products, err := h.repo.ListProducts(includeDisabled)
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return
	}

	response := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, toProductResponse(p))
	}

	h.WriteJSON(w, http.StatusOK, response)
}

// GetProduct handles GET /api/products/{id}.
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		h.WriteError(w, http.StatusBadRequest, dto.BadRequestError("product ID is required"))
		return
	}

	product, err := h.repo.GetProduct(id)
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return
	}
	if product == nil {
		h.WriteError(w, http.StatusNotFound, dto.NotFoundError("product"))
		return
	}

	h.WriteJSON(w, http.StatusOK, toProductResponse(product))
}

// ListLensTypes handles GET /api/lens-types.
func (h *CatalogHandler) ListLensTypes(w http.ResponseWriter, r *http.Request) {
	includeDisabled := ParseBoolParam(r, "include_disabled", false)

	lensTypes, err := h.repo.ListLensTypes(includeDisabled)
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return
	}

	response := make([]dto.LensTypeResponse, 0, len(lensTypes))
	for _, lt := range lensTypes {
		response = append(response, toLensTypeResponse(lt))
	}

	h.WriteJSON(w, http.StatusOK, response)
}

func toProductResponse(p *storage.Product) dto.ProductResponse {
	response := dto.ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		Description:       p.Description,
		BasePrice:         p.BasePrice,
		ImagePath:         p.ImagePath,
		OffersLensOptions: p.OffersLensOptions,
		Enabled:           p.Enabled,
		DisplayOrder:      p.DisplayOrder,
		Variants:          make([]dto.VariantResponse, 0, len(p.Variants)),
	}

	for _, v := range p.Variants {
		response.Variants = append(response.Variants, dto.VariantResponse{
			ID:              v.ID,
			Name:            v.Name,
			PriceAdjustment: v.PriceAdjustment,
			Stock:           v.Stock,
			DisplayOrder:    v.DisplayOrder,
			Enabled:         v.Enabled,
		})
	}

	return response
}

func toLensTypeResponse(lt *storage.LensType) dto.LensTypeResponse {
	return dto.LensTypeResponse{
		ID:              lt.ID,
		Name:            lt.Name,
		Description:     lt.Description,
		ImagePath:       lt.ImagePath,
		PriceAdjustment: lt.PriceAdjustment,
		Enabled:         lt.Enabled,
		DisplayOrder:    lt.DisplayOrder,
	}
}
