package storage

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// MockRepository is an in-memory implementation of Repository for testing.
// It stores all data in maps, making tests fast and isolated.
type MockRepository struct {
	products  map[string]*Product
	lensTypes map[string]*LensType
	carts     map[string]*Cart
	cartItems map[string]*CartItem
	orders    map[string]*Order
	files     map[string]*UploadedFile

	// Hooks for test assertions
	CreateOrderCalled bool
	LastCreatedOrder  *Order

	// Error injection for testing error paths
	CreateOrderErr error
	AddCartItemErr error
	ListOrdersErr  error
	SaveFileErr    error
}

// NewMockRepository creates a new mock repository for testing
func NewMockRepository() *MockRepository {
	return &MockRepository{
		products:  make(map[string]*Product),
		lensTypes: make(map[string]*LensType),
		carts:     make(map[string]*Cart),
		cartItems: make(map[string]*CartItem),
		orders:    make(map[string]*Order),
		files:     make(map[string]*UploadedFile),
	}
}

// Compile-time check that MockRepository implements Repository
var _ Repository = (*MockRepository)(nil)

// Close is a no-op for the mock.
func (m *MockRepository) Close() error { return nil }

// --- Catalog ---

func (m *MockRepository) ListProducts(includeDisabled bool) ([]*Product, error) {
	var out []*Product
	for _, p := range m.products {
		if !includeDisabled && !p.Enabled {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DisplayOrder != out[j].DisplayOrder {
			return out[i].DisplayOrder < out[j].DisplayOrder
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (m *MockRepository) GetProduct(id string) (*Product, error) {
	return m.products[id], nil
}

func (m *MockRepository) SaveProduct(p *Product) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	for i := range p.Variants {
		p.Variants[i].ProductID = p.ID
	}
	m.products[p.ID] = p
	return nil
}

func (m *MockRepository) GetVariant(id string) (*ProductVariant, error) {
	for _, p := range m.products {
		for i := range p.Variants {
			if p.Variants[i].ID == id {
				v := p.Variants[i]
				return &v, nil
			}
		}
	}
	return nil, nil
}

func (m *MockRepository) ListLensTypes(includeDisabled bool) ([]*LensType, error) {
	var out []*LensType
	for _, lt := range m.lensTypes {
		if !includeDisabled && !lt.Enabled {
			continue
		}
		out = append(out, lt)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DisplayOrder != out[j].DisplayOrder {
			return out[i].DisplayOrder < out[j].DisplayOrder
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (m *MockRepository) GetLensType(id string) (*LensType, error) {
	return m.lensTypes[id], nil
}

func (m *MockRepository) SaveLensType(lt *LensType) error {
	m.lensTypes[lt.ID] = lt
	return nil
}

// --- Carts ---

func (m *MockRepository) CreateCart(cart *Cart) error {
	if cart.CreatedAt.IsZero() {
		cart.CreatedAt = time.Now().UTC()
	}
	m.carts[cart.ID] = cart
	return nil
}

func (m *MockRepository) GetCart(id string) (*Cart, error) {
	cart, ok := m.carts[id]
	if !ok {
		return nil, nil
	}
	out := *cart
	out.Items = nil
	var items []*CartItem
	for _, item := range m.cartItems {
		if item.CartID == id {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	for _, item := range items {
		out.Items = append(out.Items, *item)
	}
	return &out, nil
}

func (m *MockRepository) AddCartItem(item *CartItem) error {
	if m.AddCartItemErr != nil {
		return m.AddCartItemErr
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}
	m.cartItems[item.ID] = item
	return nil
}

func (m *MockRepository) GetCartItem(id string) (*CartItem, error) {
	return m.cartItems[id], nil
}

func (m *MockRepository) UpdateCartItem(item *CartItem) error {
	existing, ok := m.cartItems[item.ID]
	if !ok {
		return fmt.Errorf("cart item %s not found", item.ID)
	}
	existing.Quantity = item.Quantity
	existing.UnitPrice = item.UnitPrice
	existing.LineTotal = item.LineTotal
	return nil
}

func (m *MockRepository) DeleteCartItem(id string) error {
	delete(m.cartItems, id)
	return nil
}

// --- Orders ---

func (m *MockRepository) CreateOrderFromCart(order *Order, cartID string) error {
	m.CreateOrderCalled = true
	if m.CreateOrderErr != nil {
		return m.CreateOrderErr
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
	}
	m.orders[order.ID] = order
	m.LastCreatedOrder = order
	for id, item := range m.cartItems {
		if item.CartID == cartID {
			delete(m.cartItems, id)
		}
	}
	return nil
}

func (m *MockRepository) GetOrder(id string) (*Order, error) {
	return m.orders[id], nil
}

func (m *MockRepository) ListOrders(filters OrderFilters) (*OrderListResult, error) {
	if m.ListOrdersErr != nil {
		return nil, m.ListOrdersErr
	}
	if filters.Limit <= 0 {
		filters.Limit = 50
	}

	var matched []*Order
	for _, order := range m.orders {
		if filters.Status != "" && order.Status != filters.Status {
			continue
		}
		if filters.Search != "" {
			needle := strings.ToLower(filters.Search)
			if !strings.Contains(strings.ToLower(order.ID), needle) &&
				!strings.Contains(strings.ToLower(order.CustomerName), needle) &&
				!strings.Contains(strings.ToLower(order.Email), needle) {
				continue
			}
		}
		if filters.DaysBack > 0 {
			cutoff := time.Now().UTC().AddDate(0, 0, -filters.DaysBack)
			if order.CreatedAt.Before(cutoff) {
				continue
			}
		}
		matched = append(matched, order)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := len(matched)
	start := filters.Offset
	if start > total {
		start = total
	}
	end := start + filters.Limit
	if end > total {
		end = total
	}

	return &OrderListResult{
		Orders:     matched[start:end],
		TotalCount: total,
		Limit:      filters.Limit,
		Offset:     filters.Offset,
	}, nil
}

func (m *MockRepository) UpdateOrderStatus(id, status string) error {
	order, ok := m.orders[id]
	if !ok {
		return fmt.Errorf("order %s not found", id)
	}
	order.Status = status
	return nil
}

func (m *MockRepository) GetStats() (*Stats, error) {
	stats := &Stats{OrdersByStatus: make(map[string]int)}
	for _, order := range m.orders {
		stats.OrdersByStatus[order.Status]++
		if order.Status != OrderStatusCancelled {
			stats.TotalOrders++
			stats.TotalRevenue += order.Total
		}
	}
	return stats, nil
}

// --- Files ---

func (m *MockRepository) SaveFile(f *UploadedFile) error {
	if m.SaveFileErr != nil {
		return m.SaveFileErr
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now().UTC()
	}
	m.files[f.ID] = f
	return nil
}

func (m *MockRepository) GetFile(id string) (*UploadedFile, error) {
	return m.files[id], nil
}
