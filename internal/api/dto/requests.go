package dto

import "github.com/framecraft/storefront/internal/domain/lensconfig"

// QuoteRequest asks for the price of one configured line. The storefront
// posts it on every configuration change.
type QuoteRequest struct {
	ProductID  string `json:"product_id"`
	VariantID  string `json:"variant_id,omitempty"`
	LensTypeID string `json:"lens_type_id,omitempty"`
	Quantity   int    `json:"quantity"`
}

// AddCartItemRequest adds a configured product line to a cart.
type AddCartItemRequest struct {
	ProductID  string                   `json:"product_id"`
	VariantID  string                   `json:"variant_id,omitempty"`
	Quantity   int                      `json:"quantity"`
	LensConfig lensconfig.Configuration `json:"lens_config"`
}

// UpdateCartItemRequest changes a cart line's quantity.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// CheckoutRequest places an order from a cart.
type CheckoutRequest struct {
	CartID          string `json:"cart_id"`
	CustomerName    string `json:"customer_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone,omitempty"`
	ShippingAddress string `json:"shipping_address"`
}

// UpdateOrderStatusRequest moves an order to a new fulfillment status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// SaveProductRequest creates or updates a catalog product.
type SaveProductRequest struct {
	ID                string               `json:"id,omitempty"`
	Name              string               `json:"name"`
	Description       string               `json:"description,omitempty"`
	BasePrice         float64              `json:"base_price"`
	ImagePath         string               `json:"image_path,omitempty"`
	OffersLensOptions bool                 `json:"offers_lens_options"`
	Enabled           bool                 `json:"enabled"`
	DisplayOrder      int                  `json:"display_order,omitempty"`
	Variants          []SaveVariantRequest `json:"variants,omitempty"`
}

// SaveVariantRequest is one variant inside a SaveProductRequest.
type SaveVariantRequest struct {
	ID              string  `json:"id,omitempty"`
	Name            string  `json:"name"`
	PriceAdjustment float64 `json:"price_adjustment"`
	Stock           int     `json:"stock"`
	DisplayOrder    int     `json:"display_order,omitempty"`
	Enabled         bool    `json:"enabled"`
}

// SaveLensTypeRequest creates or updates a lens type.
type SaveLensTypeRequest struct {
	ID              string  `json:"id,omitempty"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	ImagePath       string  `json:"image_path,omitempty"`
	PriceAdjustment float64 `json:"price_adjustment"`
	Enabled         bool    `json:"enabled"`
	DisplayOrder    int     `json:"display_order,omitempty"`
}
