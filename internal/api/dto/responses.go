package dto

import (
	"encoding/json"
	"time"
)

// ProductResponse is a catalog product with its variants.
type ProductResponse struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Description       string            `json:"description,omitempty"`
	BasePrice         float64           `json:"base_price"`
	ImagePath         string            `json:"image_path,omitempty"`
	OffersLensOptions bool              `json:"offers_lens_options"`
	Enabled           bool              `json:"enabled"`
	DisplayOrder      int               `json:"display_order"`
	Variants          []VariantResponse `json:"variants"`
}

// VariantResponse is one purchasable option of a product.
type VariantResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	PriceAdjustment float64 `json:"price_adjustment"`
	Stock           int     `json:"stock"`
	DisplayOrder    int     `json:"display_order"`
	Enabled         bool    `json:"enabled"`
}

// LensTypeResponse is a lens treatment option.
type LensTypeResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	ImagePath       string  `json:"image_path,omitempty"`
	PriceAdjustment float64 `json:"price_adjustment"`
	Enabled         bool    `json:"enabled"`
	DisplayOrder    int     `json:"display_order"`
}

// QuoteResponse is a computed line price.
type QuoteResponse struct {
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

// UploadResponse is the durable reference for a stored prescription file.
type UploadResponse struct {
	ID         string `json:"id"`
	FileName   string `json:"file_name"`
	MIMEType   string `json:"mime_type"`
	Size       int64  `json:"size"`
	StorageKey string `json:"storage_key"`
}

// CartResponse is a cart with its lines and a running subtotal.
type CartResponse struct {
	ID       string             `json:"id"`
	Items    []CartItemResponse `json:"items"`
	Subtotal float64            `json:"subtotal"`
}

// CartItemResponse is one configured line in a cart. LensConfig is the
// frozen configuration snapshot, passed through untouched.
type CartItemResponse struct {
	ID         string          `json:"id"`
	ProductID  string          `json:"product_id"`
	VariantID  string          `json:"variant_id,omitempty"`
	Quantity   int             `json:"quantity"`
	UnitPrice  float64         `json:"unit_price"`
	LineTotal  float64         `json:"line_total"`
	LensConfig json.RawMessage `json:"lens_config"`
}

// OrderResponse is a placed order.
type OrderResponse struct {
	ID              string              `json:"id"`
	CustomerName    string              `json:"customer_name"`
	Email           string              `json:"email"`
	Phone           string              `json:"phone,omitempty"`
	ShippingAddress string              `json:"shipping_address"`
	Subtotal        float64             `json:"subtotal"`
	ShippingFee     float64             `json:"shipping_fee"`
	Total           float64             `json:"total"`
	Status          string              `json:"status"`
	CreatedAt       string              `json:"created_at"`
	Items           []OrderItemResponse `json:"items"`
}

// OrderItemResponse is one line of an order. LensConfig carries the exact
// configuration captured at add-to-cart time so fulfillment can render the
// prescription table (or the uploaded file reference) back.
type OrderItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	VariantID   string          `json:"variant_id,omitempty"`
	VariantName string          `json:"variant_name,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   float64         `json:"unit_price"`
	LineTotal   float64         `json:"line_total"`
	LensConfig  json.RawMessage `json:"lens_config"`
}

// OrderListResponse is a paginated order listing.
type OrderListResponse struct {
	Orders     []OrderResponse `json:"orders"`
	TotalCount int             `json:"total_count"`
	Limit      int             `json:"limit"`
	Offset     int             `json:"offset"`
}

// StatsResponse holds the admin dashboard aggregates.
type StatsResponse struct {
	TotalOrders    int            `json:"total_orders"`
	TotalRevenue   float64        `json:"total_revenue"`
	OrdersByStatus map[string]int `json:"orders_by_status"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// NewHealthResponse creates a health response with the current timestamp.
func NewHealthResponse() HealthResponse {
	return HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
