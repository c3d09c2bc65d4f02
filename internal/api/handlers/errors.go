package handlers

import (
	"errors"
	"net/http"

	"github.com/framecraft/storefront/internal/api/dto"
	"github.com/framecraft/storefront/internal/application/checkout"
)

// writeCheckoutError maps checkout service errors to API responses. Lookup
// failures become 404s, incomplete configurations become 422s, everything
// unexpected becomes a 500.
func (b *Base) writeCheckoutError(w http.ResponseWriter, err error) {
	var ineligible *checkout.IneligibleError
	if errors.As(err, &ineligible) {
		b.WriteError(w, http.StatusUnprocessableEntity, dto.IncompleteConfigurationError(ineligible.Reason))
		return
	}

	switch {
	case errors.Is(err, checkout.ErrCartNotFound):
		b.WriteError(w, http.StatusNotFound, dto.NotFoundError("cart"))
	case errors.Is(err, checkout.ErrCartItemNotFound):
		b.WriteError(w, http.StatusNotFound, dto.NotFoundError("cart item"))
	case errors.Is(err, checkout.ErrProductNotFound):
		b.WriteError(w, http.StatusNotFound, dto.NotFoundError("product"))
	case errors.Is(err, checkout.ErrVariantNotFound):
		b.WriteError(w, http.StatusNotFound, dto.NotFoundError("variant"))
	case errors.Is(err, checkout.ErrLensTypeNotFound):
		b.WriteError(w, http.StatusNotFound, dto.NotFoundError("lens type"))
	case errors.Is(err, checkout.ErrCartEmpty):
		b.WriteError(w, http.StatusBadRequest, dto.BadRequestError("cart is empty"))
	default:
		b.WriteError(w, http.StatusInternalServerError, dto.InternalError())
	}
}
