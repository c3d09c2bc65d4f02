package storage

import "time"

// Product is a catalog product (an eyewear frame).
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"base_price"`
	ImagePath   string  `json:"image_path,omitempty"`

	// OffersLensOptions is true when the product can be configured with lens
	// types and prescriptions. Accessories (cases, cloths) set it false.
	OffersLensOptions bool `json:"offers_lens_options"`

	Enabled      bool      `json:"enabled"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`

	Variants []ProductVariant `json:"variants,omitempty"`
}

// ProductVariant is a purchasable option of a product (color, size,
// material) with its own stock count and price adjustment.
type ProductVariant struct {
	ID              string  `json:"id"`
	ProductID       string  `json:"product_id"`
	Name            string  `json:"name"`
	PriceAdjustment float64 `json:"price_adjustment"`
	Stock           int     `json:"stock"`
	DisplayOrder    int     `json:"display_order"`
	Enabled         bool    `json:"enabled"`
}

// LensType is a catalog-defined lens treatment (anti-glare, blue-light
// filtering, ...) carrying its own price adjustment.
type LensType struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	ImagePath       string  `json:"image_path,omitempty"`
	PriceAdjustment float64 `json:"price_adjustment"`
	Enabled         bool    `json:"enabled"`
	DisplayOrder    int     `json:"display_order"`
}

// Cart is a shopper's cart.
type Cart struct {
	ID        string     `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	Items     []CartItem `json:"items"`
}

// CartItem is one configured product line in a cart. The lens configuration
// is stored as an opaque JSON blob and copied verbatim onto the order item
// at checkout, so what fulfillment reads back is exactly what was captured.
type CartItem struct {
	ID             string    `json:"id"`
	CartID         string    `json:"cart_id"`
	ProductID      string    `json:"product_id"`
	VariantID      string    `json:"variant_id,omitempty"`
	Quantity       int       `json:"quantity"`
	UnitPrice      float64   `json:"unit_price"`
	LineTotal      float64   `json:"line_total"`
	LensConfigJSON string    `json:"lens_config_json"`
	CreatedAt      time.Time `json:"created_at"`
}

// Order is a placed order. Orders are historical records: product names and
// prices are denormalized at checkout time and never updated afterwards.
type Order struct {
	ID              string      `json:"id"`
	CustomerName    string      `json:"customer_name"`
	Email           string      `json:"email"`
	Phone           string      `json:"phone,omitempty"`
	ShippingAddress string      `json:"shipping_address"`
	Subtotal        float64     `json:"subtotal"`
	ShippingFee     float64     `json:"shipping_fee"`
	Total           float64     `json:"total"`
	Status          string      `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
	Items           []OrderItem `json:"items"`
}

// Order statuses
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderItem is one line of a placed order.
type OrderItem struct {
	ID             string  `json:"id"`
	OrderID        string  `json:"order_id"`
	ProductID      string  `json:"product_id"`
	ProductName    string  `json:"product_name"`
	VariantID      string  `json:"variant_id,omitempty"`
	VariantName    string  `json:"variant_name,omitempty"`
	Quantity       int     `json:"quantity"`
	UnitPrice      float64 `json:"unit_price"`
	LineTotal      float64 `json:"line_total"`
	LensConfigJSON string  `json:"lens_config_json"`
}

// UploadedFile is the metadata row for a stored prescription upload.
type UploadedFile struct {
	ID         string    `json:"id"`
	FileName   string    `json:"file_name"`
	MIMEType   string    `json:"mime_type"`
	SizeBytes  int64     `json:"size_bytes"`
	StorageKey string    `json:"storage_key"`
	CreatedAt  time.Time `json:"created_at"`
}

// Stats holds aggregate figures for the admin dashboard.
type Stats struct {
	TotalOrders    int            `json:"total_orders"`
	TotalRevenue   float64        `json:"total_revenue"`
	OrdersByStatus map[string]int `json:"orders_by_status"`
}
