package catalogfeed_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framecraft/storefront/internal/adapters/catalogfeed"
	"github.com/framecraft/storefront/internal/infrastructure/storage"
)

func TestImporter_Import(t *testing.T) {
	t.Run("imports products and lens types", func(t *testing.T) {
		repo := storage.NewMockRepository()
		importer := catalogfeed.NewImporter(repo, nil)

		result, err := importer.Import(strings.NewReader(sampleFeed))
		require.NoError(t, err)

		assert.Equal(t, "acme-optical", result.Supplier)
		assert.Equal(t, 2, result.Products)
		assert.Equal(t, 1, result.LensTypes)
		assert.Empty(t, result.Skipped)

		product, err := repo.GetProduct("ACME-AV-01")
		require.NoError(t, err)
		require.NotNil(t, product)
		assert.Len(t, product.Variants, 2)
	})

	t.Run("skips malformed entries and keeps going", func(t *testing.T) {
		repo := storage.NewMockRepository()
		importer := catalogfeed.NewImporter(repo, nil)

		feed := `{
			"supplier": "acme-optical",
			"products": [
				{"sku": "GOOD-1", "name": "Good Frame", "base_price": "20.00"},
				{"sku": "BAD-1", "name": "Bad Frame", "base_price": "not-a-price"},
				{"sku": "GOOD-2", "name": "Another Frame", "base_price": "30.00"}
			]
		}`

		result, err := importer.Import(strings.NewReader(feed))
		require.NoError(t, err)

		assert.Equal(t, 2, result.Products)
		require.Len(t, result.Skipped, 1)
		assert.Contains(t, result.Skipped[0], "BAD-1")

		product, err := repo.GetProduct("BAD-1")
		require.NoError(t, err)
		assert.Nil(t, product)
	})

	t.Run("re-importing the same feed is idempotent", func(t *testing.T) {
		repo := storage.NewMockRepository()
		importer := catalogfeed.NewImporter(repo, nil)

		_, err := importer.Import(strings.NewReader(sampleFeed))
		require.NoError(t, err)
		_, err = importer.Import(strings.NewReader(sampleFeed))
		require.NoError(t, err)

		products, err := repo.ListProducts(true)
		require.NoError(t, err)
		assert.Len(t, products, 2)
	})

	t.Run("rejects a feed without supplier", func(t *testing.T) {
		repo := storage.NewMockRepository()
		importer := catalogfeed.NewImporter(repo, nil)

		_, err := importer.Import(strings.NewReader(`{"products": []}`))
		assert.Error(t, err)
	})
}
