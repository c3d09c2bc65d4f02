// Package checkout orchestrates the cart and order-placement flow: pricing
// a configured line, validating it for checkout, and turning a cart into an
// immutable order.
package checkout

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/framecraft/storefront/internal/domain/lensconfig"
	"github.com/framecraft/storefront/internal/domain/pricing"
	"github.com/framecraft/storefront/internal/infrastructure/storage"
)

// Lookup failures surfaced to handlers as 404s.
var (
	ErrCartNotFound     = errors.New("cart not found")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrVariantNotFound  = errors.New("variant not found")
	ErrLensTypeNotFound = errors.New("lens type not found")
)

// ErrCartEmpty is returned when placing an order from an empty cart.
var ErrCartEmpty = errors.New("cart is empty")

// IneligibleError means the lens configuration is not complete enough for
// checkout. The shopper completes the form and retries; nothing is persisted.
type IneligibleError struct {
	Reason string
}

func (e *IneligibleError) Error() string {
	return "configuration not ready for checkout: " + e.Reason
}

// Service implements the cart and checkout operations on top of the
// repository and the pricing rules.
type Service struct {
	repo     storage.Repository
	shipping pricing.ShippingRule
	logger   *slog.Logger
}

// NewService creates a checkout service.
func NewService(repo storage.Repository, shipping pricing.ShippingRule, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, shipping: shipping, logger: logger}
}

// QuoteRequest asks for the price of one configured line. It is re-evaluated
// on every configuration change in the product view.
type QuoteRequest struct {
	ProductID  string
	VariantID  string
	LensTypeID string
	Quantity   int
}

// Quote prices a line without touching the cart.
func (s *Service) Quote(req QuoteRequest) (*pricing.Quote, error) {
	item, _, _, err := s.buildLineItem(req.ProductID, req.VariantID, req.LensTypeID, req.Quantity)
	if err != nil {
		return nil, err
	}
	return pricing.PriceLine(*item)
}

// buildLineItem resolves catalog references and assembles the pricing input.
// Returns the resolved product and variant for callers that need the names.
func (s *Service) buildLineItem(productID, variantID, lensTypeID string, quantity int) (*pricing.LineItem, *storage.Product, *storage.ProductVariant, error) {
	product, err := s.repo.GetProduct(productID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load product: %w", err)
	}
	if product == nil || !product.Enabled {
		return nil, nil, nil, ErrProductNotFound
	}

	item := &pricing.LineItem{BasePrice: product.BasePrice, Quantity: quantity}

	var variant *storage.ProductVariant
	if variantID != "" {
		for i := range product.Variants {
			if product.Variants[i].ID == variantID && product.Variants[i].Enabled {
				variant = &product.Variants[i]
				break
			}
		}
		if variant == nil {
			return nil, nil, nil, ErrVariantNotFound
		}
		adj := variant.PriceAdjustment
		item.VariantAdjustment = &adj
	}

	if lensTypeID != "" {
		lensType, err := s.repo.GetLensType(lensTypeID)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to load lens type: %w", err)
		}
		if lensType == nil || !lensType.Enabled {
			return nil, nil, nil, ErrLensTypeNotFound
		}
		adj := lensType.PriceAdjustment
		item.LensAdjustment = &adj
	}

	return item, product, variant, nil
}

// AddItemRequest adds one configured product line to a cart.
type AddItemRequest struct {
	CartID    string
	ProductID string
	VariantID string
	Quantity  int
	Config    lensconfig.Configuration
}

// AddItem validates the configuration, prices the line and persists it.
// The configuration snapshot is frozen as JSON at this point and never
// mutated again.
func (s *Service) AddItem(req AddItemRequest) (*storage.CartItem, error) {
	cart, err := s.repo.GetCart(req.CartID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}

	lineItem, product, _, err := s.buildLineItem(req.ProductID, req.VariantID, req.Config.LensTypeID, req.Quantity)
	if err != nil {
		return nil, err
	}

	if result := lensconfig.CheckEligibility(req.Config, product.OffersLensOptions); !result.Eligible {
		return nil, &IneligibleError{Reason: result.Reason}
	}

	quote, err := pricing.PriceLine(*lineItem)
	if err != nil {
		return nil, err
	}

	configJSON, err := json.Marshal(req.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize configuration: %w", err)
	}

	item := &storage.CartItem{
		ID:             uuid.NewString(),
		CartID:         req.CartID,
		ProductID:      req.ProductID,
		VariantID:      req.VariantID,
		Quantity:       req.Quantity,
		UnitPrice:      quote.UnitPrice,
		LineTotal:      quote.LineTotal,
		LensConfigJSON: string(configJSON),
	}

	if err := s.repo.AddCartItem(item); err != nil {
		return nil, fmt.Errorf("failed to save cart item: %w", err)
	}

	s.logger.Info("item added to cart",
		"cart_id", req.CartID,
		"product_id", req.ProductID,
		"quantity", req.Quantity,
		"line_total", quote.LineTotal)

	return item, nil
}

// UpdateItemQuantity changes a line's quantity and recomputes its total.
// The unit price was frozen when the line was added.
func (s *Service) UpdateItemQuantity(itemID string, quantity int) (*storage.CartItem, error) {
	if quantity < 1 {
		return nil, errors.New("quantity must be at least 1")
	}

	item, err := s.repo.GetCartItem(itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart item: %w", err)
	}
	if item == nil {
		return nil, ErrCartItemNotFound
	}

	quote, err := pricing.PriceLine(pricing.LineItem{BasePrice: item.UnitPrice, Quantity: quantity})
	if err != nil {
		return nil, err
	}

	item.Quantity = quantity
	item.LineTotal = quote.LineTotal

	if err := s.repo.UpdateCartItem(item); err != nil {
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}
	return item, nil
}

// PlaceOrderRequest turns a cart into an order.
type PlaceOrderRequest struct {
	CartID          string
	CustomerName    string
	Email           string
	Phone           string
	ShippingAddress string
}

// PlaceOrder re-validates every cart line, computes the order totals and
// persists the order atomically. Each line's configuration JSON is copied
// onto the order byte for byte; fulfillment reads back exactly what the
// shopper submitted. On a persistence failure the cart is left intact so
// the shopper can retry.
func (s *Service) PlaceOrder(req PlaceOrderRequest) (*storage.Order, error) {
	if err := validateCustomer(req); err != nil {
		return nil, err
	}

	cart, err := s.repo.GetCart(req.CartID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}
	if len(cart.Items) == 0 {
		return nil, ErrCartEmpty
	}

	orderItems := make([]storage.OrderItem, 0, len(cart.Items))
	lineTotals := make([]float64, 0, len(cart.Items))

	for _, cartItem := range cart.Items {
		var cfg lensconfig.Configuration
		if err := json.Unmarshal([]byte(cartItem.LensConfigJSON), &cfg); err != nil {
			return nil, fmt.Errorf("corrupt configuration on cart item %s: %w", cartItem.ID, err)
		}

		product, err := s.repo.GetProduct(cartItem.ProductID)
		if err != nil {
			return nil, fmt.Errorf("failed to load product: %w", err)
		}
		if product == nil {
			return nil, ErrProductNotFound
		}

		if result := lensconfig.CheckEligibility(cfg, product.OffersLensOptions); !result.Eligible {
			return nil, &IneligibleError{Reason: result.Reason}
		}

		var variantName string
		if cartItem.VariantID != "" {
			for _, v := range product.Variants {
				if v.ID == cartItem.VariantID {
					variantName = v.Name
					break
				}
			}
		}

		orderItems = append(orderItems, storage.OrderItem{
			ID:             uuid.NewString(),
			ProductID:      cartItem.ProductID,
			ProductName:    product.Name,
			VariantID:      cartItem.VariantID,
			VariantName:    variantName,
			Quantity:       cartItem.Quantity,
			UnitPrice:      cartItem.UnitPrice,
			LineTotal:      cartItem.LineTotal,
			LensConfigJSON: cartItem.LensConfigJSON,
		})
		lineTotals = append(lineTotals, cartItem.LineTotal)
	}

	totals := pricing.TotalOrder(lineTotals, s.shipping)

	order := &storage.Order{
		ID:              uuid.NewString(),
		CustomerName:    req.CustomerName,
		Email:           req.Email,
		Phone:           req.Phone,
		ShippingAddress: req.ShippingAddress,
		Subtotal:        totals.Subtotal,
		ShippingFee:     totals.ShippingFee,
		Total:           totals.Total,
		Status:          storage.OrderStatusPending,
		Items:           orderItems,
	}

	if err := s.repo.CreateOrderFromCart(order, req.CartID); err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	s.logger.Info("order placed",
		"order_id", order.ID,
		"cart_id", req.CartID,
		"items", len(order.Items),
		"total", order.Total)

	return order, nil
}

func validateCustomer(req PlaceOrderRequest) error {
	var missing []string
	if strings.TrimSpace(req.CustomerName) == "" {
		missing = append(missing, "customer_name")
	}
	if strings.TrimSpace(req.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(req.ShippingAddress) == "" {
		missing = append(missing, "shipping_address")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}
