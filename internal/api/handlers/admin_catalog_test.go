package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framecraft/storefront/internal/api/dto"
	"github.com/framecraft/storefront/internal/api/handlers"
	"github.com/framecraft/storefront/internal/infrastructure/storage"
)

func TestAdminCatalogHandler_SaveProduct(t *testing.T) {
	t.Run("creates a product and generates IDs", func(t *testing.T) {
		repo := storage.NewMockRepository()
		handler := handlers.NewAdminCatalogHandler(repo)

		body := `{
			"name": "Aviator Classic",
			"description": "Timeless metal frame",
			"base_price": 45.00,
			"offers_lens_options": true,
			"enabled": true,
			"variants": [
				{"name": "Gold", "price_adjustment": 2.00, "stock": 10, "enabled": true}
			]
		}`
		req := httptest.NewRequest(http.MethodPost, "/api/admin/products", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.SaveProduct(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var response dto.ProductResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
		assert.NotEmpty(t, response.ID)
		require.Len(t, response.Variants, 1)
		assert.NotEmpty(t, response.Variants[0].ID)

		stored, err := repo.GetProduct(response.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "Aviator Classic", stored.Name)
	})

	t.Run("updates an existing product in place", func(t *testing.T) {
		repo := storage.NewMockRepository()
		require.NoError(t, repo.SaveProduct(&storage.Product{
			ID: "p-1", Name: "Old Name", BasePrice: 30.00, Enabled: true,
		}))

		handler := handlers.NewAdminCatalogHandler(repo)

		body := `{"id": "p-1", "name": "New Name", "base_price": 35.00, "enabled": true}`
		req := httptest.NewRequest(http.MethodPut, "/api/admin/products", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.SaveProduct(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		stored, err := repo.GetProduct("p-1")
		require.NoError(t, err)
		assert.Equal(t, "New Name", stored.Name)
		assert.Equal(t, 35.00, stored.BasePrice)
	})

	t.Run("requires a name", func(t *testing.T) {
		repo := storage.NewMockRepository()
		handler := handlers.NewAdminCatalogHandler(repo)

		req := httptest.NewRequest(http.MethodPost, "/api/admin/products",
			strings.NewReader(`{"base_price": 10.00}`))
		rec := httptest.NewRecorder()

		handler.SaveProduct(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects a negative base price", func(t *testing.T) {
		repo := storage.NewMockRepository()
		handler := handlers.NewAdminCatalogHandler(repo)

		req := httptest.NewRequest(http.MethodPost, "/api/admin/products",
			strings.NewReader(`{"name": "Broken", "base_price": -1}`))
		rec := httptest.NewRecorder()

		handler.SaveProduct(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAdminCatalogHandler_SaveLensType(t *testing.T) {
	t.Run("creates a lens type", func(t *testing.T) {
		repo := storage.NewMockRepository()
		handler := handlers.NewAdminCatalogHandler(repo)

		body := `{"name": "Blue Light Filter", "price_adjustment": 15.00, "enabled": true}`
		req := httptest.NewRequest(http.MethodPost, "/api/admin/lens-types", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.SaveLensType(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var response dto.LensTypeResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
		assert.NotEmpty(t, response.ID)

		stored, err := repo.GetLensType(response.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "Blue Light Filter", stored.Name)
	})

	t.Run("updates an existing lens type", func(t *testing.T) {
		repo := storage.NewMockRepository()
		require.NoError(t, repo.SaveLensType(&storage.LensType{
			ID: "lt-1", Name: "Progressive", PriceAdjustment: 25.00, Enabled: true,
		}))

		handler := handlers.NewAdminCatalogHandler(repo)

		body := `{"id": "lt-1", "name": "Progressive", "price_adjustment": 29.00, "enabled": true}`
		req := httptest.NewRequest(http.MethodPut, "/api/admin/lens-types", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.SaveLensType(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		stored, err := repo.GetLensType("lt-1")
		require.NoError(t, err)
		assert.Equal(t, 29.00, stored.PriceAdjustment)
	})

	t.Run("requires a name", func(t *testing.T) {
		repo := storage.NewMockRepository()
		handler := handlers.NewAdminCatalogHandler(repo)

		req := httptest.NewRequest(http.MethodPost, "/api/admin/lens-types",
			strings.NewReader(`{"price_adjustment": 5.00}`))
		rec := httptest.NewRecorder()

		handler.SaveLensType(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
