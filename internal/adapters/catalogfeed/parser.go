package catalogfeed

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/framecraft/storefront/internal/infrastructure/storage"
)

// ParseFeed parses a supplier feed from a reader.
func ParseFeed(r io.Reader) (*Feed, error) {
	var feed Feed
	if err := json.NewDecoder(r).Decode(&feed); err != nil {
		return nil, fmt.Errorf("failed to decode feed: %w", err)
	}
	return &feed, nil
}

// ParseFeedBytes parses a supplier feed from a byte slice.
func ParseFeedBytes(data []byte) (*Feed, error) {
	var feed Feed
	if err := json.Unmarshal(data, &feed); err != nil {
		return nil, fmt.Errorf("failed to decode feed: %w", err)
	}
	return &feed, nil
}

// ConvertProduct converts a feed product to a catalog product. Imported
// products start disabled so they can be reviewed in the back office before
// going live.
func ConvertProduct(fp FeedProduct) (*storage.Product, error) {
	if fp.SKU == "" {
		return nil, fmt.Errorf("product %q has no SKU", fp.Name)
	}
	if fp.Name == "" {
		return nil, fmt.Errorf("product %s has no name", fp.SKU)
	}

	basePrice, err := parseAmount(fp.BasePrice)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base price %q for %s: %w", fp.BasePrice, fp.SKU, err)
	}
	if basePrice < 0 {
		return nil, fmt.Errorf("product %s has a negative base price", fp.SKU)
	}

	product := &storage.Product{
		ID:                fp.SKU,
		Name:              fp.Name,
		Description:       fp.Description,
		BasePrice:         basePrice,
		ImagePath:         fp.ImagePath,
		OffersLensOptions: fp.OffersLensOptions,
		Enabled:           false,
		DisplayOrder:      fp.DisplayOrder,
	}

	for i, fv := range fp.Variants {
		variant, err := convertVariant(fp.SKU, fv)
		if err != nil {
			return nil, fmt.Errorf("failed to parse variant %d of %s: %w", i, fp.SKU, err)
		}
		product.Variants = append(product.Variants, *variant)
	}

	return product, nil
}

func convertVariant(productSKU string, fv FeedVariant) (*storage.ProductVariant, error) {
	if fv.SKU == "" {
		return nil, fmt.Errorf("variant %q has no SKU", fv.Name)
	}
	if fv.Name == "" {
		return nil, fmt.Errorf("variant %s has no name", fv.SKU)
	}

	adjustment := 0.0
	if fv.PriceAdjustment != "" {
		var err error
		adjustment, err = parseAmount(fv.PriceAdjustment)
		if err != nil {
			return nil, fmt.Errorf("failed to parse price adjustment %q: %w", fv.PriceAdjustment, err)
		}
	}

	return &storage.ProductVariant{
		ID:              fv.SKU,
		ProductID:       productSKU,
		Name:            fv.Name,
		PriceAdjustment: adjustment,
		Stock:           fv.Stock,
		DisplayOrder:    fv.DisplayOrder,
		Enabled:         true,
	}, nil
}

// ConvertLensType converts a feed lens type to a catalog lens type.
func ConvertLensType(flt FeedLensType) (*storage.LensType, error) {
	if flt.SKU == "" {
		return nil, fmt.Errorf("lens type %q has no SKU", flt.Name)
	}
	if flt.Name == "" {
		return nil, fmt.Errorf("lens type %s has no name", flt.SKU)
	}

	adjustment := 0.0
	if flt.PriceAdjustment != "" {
		var err error
		adjustment, err = parseAmount(flt.PriceAdjustment)
		if err != nil {
			return nil, fmt.Errorf("failed to parse price adjustment %q: %w", flt.PriceAdjustment, err)
		}
	}

	return &storage.LensType{
		ID:              flt.SKU,
		Name:            flt.Name,
		Description:     flt.Description,
		PriceAdjustment: adjustment,
		Enabled:         false,
		DisplayOrder:    flt.DisplayOrder,
	}, nil
}

// parseAmount parses a feed amount like "$1,234.56" or "45.00".
func parseAmount(s string) (float64, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return 0, fmt.Errorf("empty amount")
	}
	return strconv.ParseFloat(cleaned, 64)
}
