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
	"github.com/framecraft/storefront/internal/application/checkout"
	"github.com/framecraft/storefront/internal/domain/pricing"
	"github.com/framecraft/storefront/internal/infrastructure/storage"
)

func newCheckoutHandler(repo storage.Repository) *handlers.CheckoutHandler {
	service := checkout.NewService(repo, pricing.ShippingRule{FreeThreshold: 50, Fee: 4.99}, nil)
	return handlers.NewCheckoutHandler(repo, service)
}

func TestCheckoutHandler_PlaceOrder(t *testing.T) {
	t.Run("places an order and copies configurations verbatim", func(t *testing.T) {
		repo := storage.NewMockRepository()
		require.NoError(t, repo.SaveProduct(&storage.Product{
			ID: "acc-1", Name: "Cleaning Cloth", BasePrice: 9.90, Enabled: true,
		}))
		require.NoError(t, repo.CreateCart(&storage.Cart{ID: "cart-1"}))
		require.NoError(t, repo.AddCartItem(&storage.CartItem{
			ID: "item-1", CartID: "cart-1", ProductID: "acc-1",
			Quantity: 1, UnitPrice: 9.90, LineTotal: 9.90,
			LensConfigJSON: `{"has_eyesight":false}`,
		}))

		handler := newCheckoutHandler(repo)

		body := `{
			"cart_id": "cart-1",
			"customer_name": "Ada Lovelace",
			"email": "ada@example.com",
			"shipping_address": "12 Analytical Way"
		}`
		req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.PlaceOrder(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var response dto.OrderResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
		assert.Equal(t, "Ada Lovelace", response.CustomerName)
		assert.Equal(t, storage.OrderStatusPending, response.Status)
		assert.Equal(t, 9.90, response.Subtotal)
		assert.Equal(t, 4.99, response.ShippingFee) // below free threshold
		assert.Equal(t, 14.89, response.Total)
		require.Len(t, response.Items, 1)
		assert.Equal(t, "Cleaning Cloth", response.Items[0].ProductName)
		assert.Equal(t, `{"has_eyesight":false}`, string(response.Items[0].LensConfig))

		// Cart was emptied by the checkout.
		cart, err := repo.GetCart("cart-1")
		require.NoError(t, err)
		assert.Empty(t, cart.Items)
	})

	t.Run("rejects an empty cart", func(t *testing.T) {
		repo := storage.NewMockRepository()
		require.NoError(t, repo.CreateCart(&storage.Cart{ID: "cart-1"}))

		handler := newCheckoutHandler(repo)

		body := `{
			"cart_id": "cart-1",
			"customer_name": "Ada Lovelace",
			"email": "ada@example.com",
			"shipping_address": "12 Analytical Way"
		}`
		req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.PlaceOrder(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("names the missing customer fields", func(t *testing.T) {
		repo := storage.NewMockRepository()
		handler := newCheckoutHandler(repo)

		body := `{"cart_id":"cart-1","customer_name":"Ada Lovelace"}`
		req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.PlaceOrder(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var response dto.APIError
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
		assert.Equal(t, dto.ErrCodeValidation, response.Code)
		assert.Contains(t, response.Message, "email")
		assert.Contains(t, response.Message, "shipping_address")
	})

	t.Run("returns 404 for unknown cart", func(t *testing.T) {
		repo := storage.NewMockRepository()
		handler := newCheckoutHandler(repo)

		body := `{
			"cart_id": "nope",
			"customer_name": "Ada Lovelace",
			"email": "ada@example.com",
			"shipping_address": "12 Analytical Way"
		}`
		req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.PlaceOrder(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("fails with 422 when a line became ineligible", func(t *testing.T) {
		repo := storage.NewMockRepository()
		require.NoError(t, repo.SaveProduct(&storage.Product{
			ID: "p-1", Name: "Aviator Classic", BasePrice: 45.00,
			OffersLensOptions: true, Enabled: true,
		}))
		require.NoError(t, repo.CreateCart(&storage.Cart{ID: "cart-1"}))
		require.NoError(t, repo.AddCartItem(&storage.CartItem{
			ID: "item-1", CartID: "cart-1", ProductID: "p-1",
			Quantity: 1, UnitPrice: 45.00, LineTotal: 45.00,
			LensConfigJSON: `{"has_eyesight":false}`,
		}))

		handler := newCheckoutHandler(repo)

		body := `{
			"cart_id": "cart-1",
			"customer_name": "Ada Lovelace",
			"email": "ada@example.com",
			"shipping_address": "12 Analytical Way"
		}`
		req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.PlaceOrder(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.False(t, repo.CreateOrderCalled)
	})
}
