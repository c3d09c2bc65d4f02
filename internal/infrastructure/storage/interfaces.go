package storage

// Repository defines the complete storage interface.
// This interface allows swapping implementations (SQLite, PostgreSQL, etc.)
// and makes testing with mocks straightforward.
type Repository interface {
	CatalogRepository
	CartRepository
	OrderRepository
	FileRepository
	Close() error
}

// CatalogRepository handles products, variants and lens types.
type CatalogRepository interface {
	// ListProducts returns products ordered by display order. When
	// includeDisabled is false only enabled products are returned.
	ListProducts(includeDisabled bool) ([]*Product, error)

	// GetProduct retrieves a product with its variants. Returns nil, nil
	// when the product does not exist.
	GetProduct(id string) (*Product, error)

	// SaveProduct inserts or updates a product and replaces its variants.
	SaveProduct(p *Product) error

	// GetVariant retrieves a single variant. Returns nil, nil when missing.
	GetVariant(id string) (*ProductVariant, error)

	// ListLensTypes returns lens types ordered by display order.
	ListLensTypes(includeDisabled bool) ([]*LensType, error)

	// GetLensType retrieves a lens type. Returns nil, nil when missing.
	GetLensType(id string) (*LensType, error)

	// SaveLensType inserts or updates a lens type.
	SaveLensType(lt *LensType) error
}

// CartRepository handles carts and cart items.
type CartRepository interface {
	// CreateCart inserts a new empty cart.
	CreateCart(cart *Cart) error

	// GetCart retrieves a cart with its items. Returns nil, nil when missing.
	GetCart(id string) (*Cart, error)

	// AddCartItem inserts a cart line.
	AddCartItem(item *CartItem) error

	// GetCartItem retrieves a cart line. Returns nil, nil when missing.
	GetCartItem(id string) (*CartItem, error)

	// UpdateCartItem updates quantity and prices of an existing line.
	UpdateCartItem(item *CartItem) error

	// DeleteCartItem removes a cart line.
	DeleteCartItem(id string) error
}

// OrderFilters defines filters for listing orders.
type OrderFilters struct {
	Status   string // Filter by status (empty = all)
	Search   string // Substring match on order ID, customer name or email
	DaysBack int    // How many days back to look (0 = all time)
	Limit    int    // Max results (0 = default 50)
	Offset   int    // Pagination offset
}

// OrderListResult contains paginated order results.
type OrderListResult struct {
	Orders     []*Order `json:"orders"`
	TotalCount int      `json:"total_count"`
	Limit      int      `json:"limit"`
	Offset     int      `json:"offset"`
}

// OrderRepository handles placed orders.
type OrderRepository interface {
	// CreateOrderFromCart persists an order with its items and empties the
	// originating cart in a single transaction. When the write fails the
	// cart is left untouched so the shopper can retry.
	CreateOrderFromCart(order *Order, cartID string) error

	// GetOrder retrieves an order with its items. Returns nil, nil when missing.
	GetOrder(id string) (*Order, error)

	// ListOrders returns orders matching the given filters with pagination.
	ListOrders(filters OrderFilters) (*OrderListResult, error)

	// UpdateOrderStatus moves an order to a new status.
	UpdateOrderStatus(id, status string) error

	// GetStats returns aggregate statistics for the admin dashboard.
	GetStats() (*Stats, error)
}

// FileRepository handles uploaded-file metadata.
type FileRepository interface {
	// SaveFile inserts an uploaded-file record.
	SaveFile(f *UploadedFile) error

	// GetFile retrieves an uploaded-file record. Returns nil, nil when missing.
	GetFile(id string) (*UploadedFile, error)
}
