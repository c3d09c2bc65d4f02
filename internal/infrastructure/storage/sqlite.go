package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Storage provides SQLite database access for the storefront.
// It implements the Repository interface.
type Storage struct {
	db *sql.DB
}

// Compile-time check that Storage implements Repository
var _ Repository = (*Storage)(nil)

// NewStorage creates a new storage instance backed by a SQLite database.
func NewStorage(dbPath string) (*Storage, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	// Enable foreign key constraints (SQLite-specific)
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := runMigrations(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Storage{db: db}, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	return s.db.Close()
}

// --- Catalog ---

// ListProducts returns products ordered by display order, with variants.
func (s *Storage) ListProducts(includeDisabled bool) ([]*Product, error) {
	query := `
	SELECT id, name, description, base_price, image_path,
	       offers_lens_options, enabled, display_order, created_at
	FROM products
	`
	if !includeDisabled {
		query += " WHERE enabled = 1"
	}
	query += " ORDER BY display_order, name"

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		p := &Product{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.BasePrice,
			&p.ImagePath, &p.OffersLensOptions, &p.Enabled, &p.DisplayOrder,
			&p.CreatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, p := range products {
		variants, err := s.variantsForProduct(p.ID, includeDisabled)
		if err != nil {
			return nil, err
		}
		p.Variants = variants
	}

	return products, nil
}

// GetProduct retrieves a product with its variants.
func (s *Storage) GetProduct(id string) (*Product, error) {
	p := &Product{}
	err := s.db.QueryRow(`
	SELECT id, name, description, base_price, image_path,
	       offers_lens_options, enabled, display_order, created_at
	FROM products WHERE id = ?
	`, id).Scan(&p.ID, &p.Name, &p.Description, &p.BasePrice, &p.ImagePath,
		&p.OffersLensOptions, &p.Enabled, &p.DisplayOrder, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	variants, err := s.variantsForProduct(id, true)
	if err != nil {
		return nil, err
	}
	p.Variants = variants

	return p, nil
}

func (s *Storage) variantsForProduct(productID string, includeDisabled bool) ([]ProductVariant, error) {
	query := `
	SELECT id, product_id, name, price_adjustment, stock, display_order, enabled
	FROM product_variants WHERE product_id = ?
	`
	if !includeDisabled {
		query += " AND enabled = 1"
	}
	query += " ORDER BY display_order, name"

	rows, err := s.db.Query(query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var variants []ProductVariant
	for rows.Next() {
		var v ProductVariant
		if err := rows.Scan(&v.ID, &v.ProductID, &v.Name, &v.PriceAdjustment,
			&v.Stock, &v.DisplayOrder, &v.Enabled); err != nil {
			return nil, err
		}
		variants = append(variants, v)
	}
	return variants, rows.Err()
}

// SaveProduct inserts or updates a product and replaces its variants.
func (s *Storage) SaveProduct(p *Product) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	_, err = tx.Exec(`
	INSERT OR REPLACE INTO products
	(id, name, description, base_price, image_path, offers_lens_options,
	 enabled, display_order, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, p.ID, p.Name, p.Description, p.BasePrice, p.ImagePath,
		p.OffersLensOptions, p.Enabled, p.DisplayOrder, p.CreatedAt)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM product_variants WHERE product_id = ?`, p.ID); err != nil {
		return err
	}

	for i := range p.Variants {
		v := &p.Variants[i]
		v.ProductID = p.ID
		_, err := tx.Exec(`
		INSERT INTO product_variants
		(id, product_id, name, price_adjustment, stock, display_order, enabled)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		`, v.ID, v.ProductID, v.Name, v.PriceAdjustment, v.Stock, v.DisplayOrder, v.Enabled)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetVariant retrieves a single variant.
func (s *Storage) GetVariant(id string) (*ProductVariant, error) {
	v := &ProductVariant{}
	err := s.db.QueryRow(`
	SELECT id, product_id, name, price_adjustment, stock, display_order, enabled
	FROM product_variants WHERE id = ?
	`, id).Scan(&v.ID, &v.ProductID, &v.Name, &v.PriceAdjustment, &v.Stock,
		&v.DisplayOrder, &v.Enabled)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

// ListLensTypes returns lens types ordered by display order.
func (s *Storage) ListLensTypes(includeDisabled bool) ([]*LensType, error) {
	query := `
	SELECT id, name, description, image_path, price_adjustment, enabled, display_order
	FROM lens_types
	`
	if !includeDisabled {
		query += " WHERE enabled = 1"
	}
	query += " ORDER BY display_order, name"

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lensTypes []*LensType
	for rows.Next() {
		lt := &LensType{}
		if err := rows.Scan(&lt.ID, &lt.Name, &lt.Description, &lt.ImagePath,
			&lt.PriceAdjustment, &lt.Enabled, &lt.DisplayOrder); err != nil {
			return nil, err
		}
		lensTypes = append(lensTypes, lt)
	}
	return lensTypes, rows.Err()
}

// GetLensType retrieves a lens type.
func (s *Storage) GetLensType(id string) (*LensType, error) {
	lt := &LensType{}
	err := s.db.QueryRow(`
	SELECT id, name, description, image_path, price_adjustment, enabled, display_order
	FROM lens_types WHERE id = ?
	`, id).Scan(&lt.ID, &lt.Name, &lt.Description, &lt.ImagePath,
		&lt.PriceAdjustment, &lt.Enabled, &lt.DisplayOrder)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return lt, nil
}

// SaveLensType inserts or updates a lens type.
func (s *Storage) SaveLensType(lt *LensType) error {
	_, err := s.db.Exec(`
	INSERT OR REPLACE INTO lens_types
	(id, name, description, image_path, price_adjustment, enabled, display_order)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	`, lt.ID, lt.Name, lt.Description, lt.ImagePath, lt.PriceAdjustment,
		lt.Enabled, lt.DisplayOrder)
	return err
}

// --- Carts ---

// CreateCart inserts a new empty cart.
func (s *Storage) CreateCart(cart *Cart) error {
	if cart.CreatedAt.IsZero() {
		cart.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(`INSERT INTO carts (id, created_at) VALUES (?, ?)`,
		cart.ID, cart.CreatedAt)
	return err
}

// GetCart retrieves a cart with its items.
func (s *Storage) GetCart(id string) (*Cart, error) {
	cart := &Cart{}
	err := s.db.QueryRow(`SELECT id, created_at FROM carts WHERE id = ?`, id).
		Scan(&cart.ID, &cart.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`
	SELECT id, cart_id, product_id, variant_id, quantity, unit_price,
	       line_total, lens_config_json, created_at
	FROM cart_items WHERE cart_id = ? ORDER BY created_at
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item CartItem
		if err := rows.Scan(&item.ID, &item.CartID, &item.ProductID,
			&item.VariantID, &item.Quantity, &item.UnitPrice, &item.LineTotal,
			&item.LensConfigJSON, &item.CreatedAt); err != nil {
			return nil, err
		}
		cart.Items = append(cart.Items, item)
	}
	return cart, rows.Err()
}

// AddCartItem inserts a cart line.
func (s *Storage) AddCartItem(item *CartItem) error {
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(`
	INSERT INTO cart_items
	(id, cart_id, product_id, variant_id, quantity, unit_price, line_total,
	 lens_config_json, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, item.ID, item.CartID, item.ProductID, item.VariantID, item.Quantity,
		item.UnitPrice, item.LineTotal, item.LensConfigJSON, item.CreatedAt)
	return err
}

// GetCartItem retrieves a cart line.
func (s *Storage) GetCartItem(id string) (*CartItem, error) {
	item := &CartItem{}
	err := s.db.QueryRow(`
	SELECT id, cart_id, product_id, variant_id, quantity, unit_price,
	       line_total, lens_config_json, created_at
	FROM cart_items WHERE id = ?
	`, id).Scan(&item.ID, &item.CartID, &item.ProductID, &item.VariantID,
		&item.Quantity, &item.UnitPrice, &item.LineTotal,
		&item.LensConfigJSON, &item.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateCartItem updates quantity and prices of an existing line.
func (s *Storage) UpdateCartItem(item *CartItem) error {
	_, err := s.db.Exec(`
	UPDATE cart_items SET quantity = ?, unit_price = ?, line_total = ?
	WHERE id = ?
	`, item.Quantity, item.UnitPrice, item.LineTotal, item.ID)
	return err
}

// DeleteCartItem removes a cart line.
func (s *Storage) DeleteCartItem(id string) error {
	_, err := s.db.Exec(`DELETE FROM cart_items WHERE id = ?`, id)
	return err
}

// --- Orders ---

// CreateOrderFromCart persists the order with its items and empties the
// originating cart, all in one transaction.
func (s *Storage) CreateOrderFromCart(order *Order, cartID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}

	_, err = tx.Exec(`
	INSERT INTO orders
	(id, customer_name, email, phone, shipping_address, subtotal,
	 shipping_fee, total, status, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, order.ID, order.CustomerName, order.Email, order.Phone,
		order.ShippingAddress, order.Subtotal, order.ShippingFee, order.Total,
		order.Status, order.CreatedAt)
	if err != nil {
		return err
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		_, err := tx.Exec(`
		INSERT INTO order_items
		(id, order_id, product_id, product_name, variant_id, variant_name,
		 quantity, unit_price, line_total, lens_config_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, item.ID, item.OrderID, item.ProductID, item.ProductName,
			item.VariantID, item.VariantName, item.Quantity, item.UnitPrice,
			item.LineTotal, item.LensConfigJSON)
		if err != nil {
			return err
		}
	}

	if _, err := tx.Exec(`DELETE FROM cart_items WHERE cart_id = ?`, cartID); err != nil {
		return err
	}

	return tx.Commit()
}

// GetOrder retrieves an order with its items.
func (s *Storage) GetOrder(id string) (*Order, error) {
	order := &Order{}
	err := s.db.QueryRow(`
	SELECT id, customer_name, email, phone, shipping_address, subtotal,
	       shipping_fee, total, status, created_at
	FROM orders WHERE id = ?
	`, id).Scan(&order.ID, &order.CustomerName, &order.Email, &order.Phone,
		&order.ShippingAddress, &order.Subtotal, &order.ShippingFee,
		&order.Total, &order.Status, &order.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	items, err := s.itemsForOrder(id)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return order, nil
}

func (s *Storage) itemsForOrder(orderID string) ([]OrderItem, error) {
	rows, err := s.db.Query(`
	SELECT id, order_id, product_id, product_name, variant_id, variant_name,
	       quantity, unit_price, line_total, lens_config_json
	FROM order_items WHERE order_id = ?
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []OrderItem
	for rows.Next() {
		var item OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID,
			&item.ProductName, &item.VariantID, &item.VariantName,
			&item.Quantity, &item.UnitPrice, &item.LineTotal,
			&item.LensConfigJSON); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// ListOrders returns orders matching the given filters with pagination.
func (s *Storage) ListOrders(filters OrderFilters) (*OrderListResult, error) {
	if filters.Limit <= 0 {
		filters.Limit = 50
	}

	var conditions []string
	var args []interface{}

	if filters.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, filters.Status)
	}
	if filters.Search != "" {
		conditions = append(conditions, "(id LIKE ? OR customer_name LIKE ? OR email LIKE ?)")
		like := "%" + filters.Search + "%"
		args = append(args, like, like, like)
	}
	if filters.DaysBack > 0 {
		conditions = append(conditions, "created_at >= ?")
		args = append(args, time.Now().UTC().AddDate(0, 0, -filters.DaysBack))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var totalCount int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM orders"+where, args...).Scan(&totalCount); err != nil {
		return nil, err
	}

	query := `
	SELECT id, customer_name, email, phone, shipping_address, subtotal,
	       shipping_fee, total, status, created_at
	FROM orders` + where + ` ORDER BY created_at DESC LIMIT ? OFFSET ?`
	args = append(args, filters.Limit, filters.Offset)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		order := &Order{}
		if err := rows.Scan(&order.ID, &order.CustomerName, &order.Email,
			&order.Phone, &order.ShippingAddress, &order.Subtotal,
			&order.ShippingFee, &order.Total, &order.Status,
			&order.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, order := range orders {
		items, err := s.itemsForOrder(order.ID)
		if err != nil {
			return nil, err
		}
		order.Items = items
	}

	return &OrderListResult{
		Orders:     orders,
		TotalCount: totalCount,
		Limit:      filters.Limit,
		Offset:     filters.Offset,
	}, nil
}

// UpdateOrderStatus moves an order to a new status.
func (s *Storage) UpdateOrderStatus(id, status string) error {
	result, err := s.db.Exec(`UPDATE orders SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("order %s not found", id)
	}
	return nil
}

// GetStats returns aggregate statistics for the admin dashboard.
func (s *Storage) GetStats() (*Stats, error) {
	stats := &Stats{OrdersByStatus: make(map[string]int)}

	err := s.db.QueryRow(`
	SELECT COUNT(*), COALESCE(SUM(total), 0) FROM orders WHERE status != ?
	`, OrderStatusCancelled).Scan(&stats.TotalOrders, &stats.TotalRevenue)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`SELECT status, COUNT(*) FROM orders GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats.OrdersByStatus[status] = count
	}
	return stats, rows.Err()
}

// --- Files ---

// SaveFile inserts an uploaded-file record.
func (s *Storage) SaveFile(f *UploadedFile) error {
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(`
	INSERT INTO uploaded_files (id, file_name, mime_type, size_bytes, storage_key, created_at)
	VALUES (?, ?, ?, ?, ?, ?)
	`, f.ID, f.FileName, f.MIMEType, f.SizeBytes, f.StorageKey, f.CreatedAt)
	return err
}

// GetFile retrieves an uploaded-file record.
func (s *Storage) GetFile(id string) (*UploadedFile, error) {
	f := &UploadedFile{}
	err := s.db.QueryRow(`
	SELECT id, file_name, mime_type, size_bytes, storage_key, created_at
	FROM uploaded_files WHERE id = ?
	`, id).Scan(&f.ID, &f.FileName, &f.MIMEType, &f.SizeBytes, &f.StorageKey, &f.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}
