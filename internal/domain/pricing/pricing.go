// Package pricing computes line-item and order totals.
//
// A line's unit price is the product's base price plus the selected
// variant's adjustment and the selected lens type's adjustment:
//
//	unit  = base + variantAdj + lensAdj
//	total = unit * quantity
//
// Adjustments only apply when their option is actually selected; the lens
// adjustment applies whenever a lens type is set, independent of whether a
// prescription is being configured.
package pricing

import (
	"errors"
	"math"
)

// LineItem describes one priced cart or order line. The adjustment pointers
// are nil when no variant / lens type is selected, which is distinct from a
// selected option with a zero adjustment.
type LineItem struct {
	BasePrice         float64
	VariantAdjustment *float64
	LensAdjustment    *float64
	Quantity          int
}

// Quote is the computed price for a line item.
type Quote struct {
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

// PriceLine computes the unit price and line total for a line item.
// Returns an error for a negative base price or a non-positive quantity.
func PriceLine(item LineItem) (*Quote, error) {
	if item.BasePrice < 0 {
		return nil, errors.New("base price cannot be negative")
	}
	if item.Quantity < 1 {
		return nil, errors.New("quantity must be at least 1")
	}

	unit := item.BasePrice
	if item.VariantAdjustment != nil {
		unit += *item.VariantAdjustment
	}
	if item.LensAdjustment != nil {
		unit += *item.LensAdjustment
	}
	unit = roundToCents(unit)

	return &Quote{
		UnitPrice: unit,
		LineTotal: roundToCents(unit * float64(item.Quantity)),
	}, nil
}

// ShippingRule is the flat shipping policy: free at or above the threshold,
// a fixed fee below it.
type ShippingRule struct {
	FreeThreshold float64
	Fee           float64
}

// ShippingFee returns the shipping cost for an order subtotal.
func (r ShippingRule) ShippingFee(subtotal float64) float64 {
	if subtotal >= r.FreeThreshold {
		return 0
	}
	return r.Fee
}

// OrderTotals aggregates line totals into subtotal, shipping and grand total.
type OrderTotals struct {
	Subtotal    float64 `json:"subtotal"`
	ShippingFee float64 `json:"shipping_fee"`
	Total       float64 `json:"total"`
}

// TotalOrder sums line totals and applies the shipping rule.
func TotalOrder(lineTotals []float64, rule ShippingRule) OrderTotals {
	var subtotal float64
	for _, lt := range lineTotals {
		subtotal += lt
	}
	subtotal = roundToCents(subtotal)

	fee := rule.ShippingFee(subtotal)
	return OrderTotals{
		Subtotal:    subtotal,
		ShippingFee: fee,
		Total:       roundToCents(subtotal + fee),
	}
}

// roundToCents rounds a float to 2 decimal places.
func roundToCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
