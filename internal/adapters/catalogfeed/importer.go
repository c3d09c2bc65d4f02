package catalogfeed

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/framecraft/storefront/internal/infrastructure/storage"
)

// ImportResult summarizes one feed import.
type ImportResult struct {
	Supplier  string
	Products  int
	LensTypes int
	Skipped   []string
}

// Importer writes parsed feed entries into the catalog.
type Importer struct {
	repo   storage.CatalogRepository
	logger *slog.Logger
}

// NewImporter creates a feed importer.
func NewImporter(repo storage.CatalogRepository, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{repo: repo, logger: logger}
}

// Import parses a feed and upserts its entries. Malformed entries are
// skipped and reported in the result rather than aborting the whole import;
// a feed with one bad row should not block the rest of the assortment.
func (i *Importer) Import(r io.Reader) (*ImportResult, error) {
	feed, err := ParseFeed(r)
	if err != nil {
		return nil, err
	}
	if feed.Supplier == "" {
		return nil, fmt.Errorf("feed has no supplier name")
	}

	result := &ImportResult{Supplier: feed.Supplier}

	for _, fp := range feed.Products {
		product, err := ConvertProduct(fp)
		if err != nil {
			i.logger.Warn("skipping product", "sku", fp.SKU, "error", err)
			result.Skipped = append(result.Skipped, fmt.Sprintf("product %s: %v", fp.SKU, err))
			continue
		}
		if err := i.repo.SaveProduct(product); err != nil {
			return nil, fmt.Errorf("failed to save product %s: %w", product.ID, err)
		}
		result.Products++
	}

	for _, flt := range feed.LensTypes {
		lensType, err := ConvertLensType(flt)
		if err != nil {
			i.logger.Warn("skipping lens type", "sku", flt.SKU, "error", err)
			result.Skipped = append(result.Skipped, fmt.Sprintf("lens type %s: %v", flt.SKU, err))
			continue
		}
		if err := i.repo.SaveLensType(lensType); err != nil {
			return nil, fmt.Errorf("failed to save lens type %s: %w", lensType.ID, err)
		}
		result.LensTypes++
	}

	i.logger.Info("feed imported",
		"supplier", result.Supplier,
		"products", result.Products,
		"lens_types", result.LensTypes,
		"skipped", len(result.Skipped))

	return result, nil
}
