package cli

import (
	"fmt"
	"strings"

	"github.com/framecraft/storefront/internal/adapters/catalogfeed"
	"github.com/framecraft/storefront/internal/infrastructure/storage"
)

// PrintImportSummary prints the result of a feed import.
func PrintImportSummary(result *catalogfeed.ImportResult) {
	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("Supplier: %s | Products=%d LensTypes=%d Skipped=%d\n",
		result.Supplier,
		result.Products,
		result.LensTypes,
		len(result.Skipped))

	if len(result.Skipped) > 0 {
		fmt.Println("\nSkipped entries:")
		for _, entry := range result.Skipped {
			fmt.Printf("  - %s\n", entry)
		}
	}

	if result.Products > 0 || result.LensTypes > 0 {
		fmt.Println("\nImported entries are disabled until reviewed in the back office.")
	}
}

// PrintCatalogSummary prints the current catalog counts.
func PrintCatalogSummary(store storage.CatalogRepository) {
	products, err := store.ListProducts(true)
	if err != nil {
		return
	}
	lensTypes, err := store.ListLensTypes(true)
	if err != nil {
		return
	}

	variants := 0
	for _, p := range products {
		variants += len(p.Variants)
	}

	fmt.Printf("\nCatalog: Products=%d Variants=%d LensTypes=%d\n",
		len(products), variants, len(lensTypes))
}
