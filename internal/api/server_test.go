package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framecraft/storefront/internal/api"
	"github.com/framecraft/storefront/internal/api/dto"
	"github.com/framecraft/storefront/internal/application/checkout"
	"github.com/framecraft/storefront/internal/domain/pricing"
	"github.com/framecraft/storefront/internal/infrastructure/files"
	"github.com/framecraft/storefront/internal/infrastructure/storage"
)

func newTestServer(t *testing.T) (*api.Server, *storage.MockRepository) {
	t.Helper()

	repo := storage.NewMockRepository()
	store, err := files.NewStore(t.TempDir())
	require.NoError(t, err)

	service := checkout.NewService(repo, pricing.ShippingRule{FreeThreshold: 50, Fee: 4.99}, nil)
	server := api.NewServer(api.DefaultConfig(), repo, service, store, nil)
	return server, repo
}

func TestServer_ShopperFlow(t *testing.T) {
	server, repo := newTestServer(t)

	require.NoError(t, repo.SaveProduct(&storage.Product{
		ID:                "p-1",
		Name:              "Aviator Classic",
		BasePrice:         45.00,
		OffersLensOptions: true,
		Enabled:           true,
	}))
	require.NoError(t, repo.SaveLensType(&storage.LensType{
		ID: "lt-1", Name: "Progressive", PriceAdjustment: 25.00, Enabled: true,
	}))

	// Browse the catalog.
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	// Open a cart.
	rec = httptest.NewRecorder()
	server.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/carts", nil))
	require.Equal(t, http.StatusCreated, rec.Code)

	var cart dto.CartResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&cart))

	// Add a configured line.
	addBody := `{
		"product_id": "p-1",
		"quantity": 1,
		"lens_config": {
			"has_eyesight": true,
			"lens_type_id": "lt-1",
			"prescription_method": "manual",
			"prescription_data": {
				"right_eye": {"sph": "+1.00", "pd": "32"},
				"left_eye": {"sph": "-0.50", "pd": "32"},
				"two_pd_numbers": true
			}
		}
	}`
	rec = httptest.NewRecorder()
	server.Router().ServeHTTP(rec, httptest.NewRequest(
		http.MethodPost, "/api/carts/"+cart.ID+"/items", strings.NewReader(addBody)))
	require.Equal(t, http.StatusCreated, rec.Code)

	// Check out.
	checkoutBody := `{
		"cart_id": "` + cart.ID + `",
		"customer_name": "Ada Lovelace",
		"email": "ada@example.com",
		"shipping_address": "12 Analytical Way"
	}`
	rec = httptest.NewRecorder()
	server.Router().ServeHTTP(rec, httptest.NewRequest(
		http.MethodPost, "/api/checkout", strings.NewReader(checkoutBody)))
	require.Equal(t, http.StatusCreated, rec.Code)

	var order dto.OrderResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&order))
	assert.Equal(t, 70.00, order.Subtotal) // 45.00 base + 25.00 lens
	assert.Zero(t, order.ShippingFee)      // over the free threshold
	require.Len(t, order.Items, 1)

	// The order item carries the exact configuration the shopper submitted.
	var cfg map[string]any
	require.NoError(t, json.Unmarshal(order.Items[0].LensConfig, &cfg))
	assert.Equal(t, true, cfg["has_eyesight"])
	assert.Equal(t, "lt-1", cfg["lens_type_id"])

	// The back office sees the order.
	rec = httptest.NewRecorder()
	server.Router().ServeHTTP(rec, httptest.NewRequest(
		http.MethodGet, "/api/admin/orders/"+order.ID, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_HealthEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var response dto.HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Equal(t, "ok", response.Status)
}

func TestServer_UnknownRoute(t *testing.T) {
	server, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
