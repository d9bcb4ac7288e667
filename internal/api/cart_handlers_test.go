package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_RequiresAuth(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	resp := ts.api.Get("/api/v1/cart")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestCart_AddAndGet(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	data := ts.signUpCustomer(t)

	resp := ts.api.Post("/api/v1/cart/items", bearer(data.AccessToken), map[string]any{
		"book_id":  1,
		"quantity": 2,
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	envelope := decodeEnvelope[map[string]any](t, resp.Body.Bytes())
	assert.True(t, envelope.Success)
	assert.EqualValues(t, 2, envelope.Data["item_count"])

	// Adding the same book again increments the line
	resp = ts.api.Post("/api/v1/cart/items", bearer(data.AccessToken), map[string]any{
		"book_id": 1,
	})
	require.Equal(t, http.StatusOK, resp.Code)

	envelope = decodeEnvelope[map[string]any](t, resp.Body.Bytes())
	assert.EqualValues(t, 3, envelope.Data["item_count"])
}

func TestCart_AddNegativeQuantityIgnored(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	data := ts.signUpCustomer(t)

	resp := ts.api.Post("/api/v1/cart/items", bearer(data.AccessToken), map[string]any{
		"book_id":  1,
		"quantity": -5,
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	envelope := decodeEnvelope[map[string]any](t, resp.Body.Bytes())
	assert.EqualValues(t, 0, envelope.Data["item_count"])
	assert.Empty(t, envelope.Data["lines"])
}

func TestCart_AddUnknownBook(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	data := ts.signUpCustomer(t)

	resp := ts.api.Post("/api/v1/cart/items", bearer(data.AccessToken), map[string]any{
		"book_id": 999,
	})
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestCart_SetQuantityZeroRemovesLine(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	data := ts.signUpCustomer(t)

	resp := ts.api.Post("/api/v1/cart/items", bearer(data.AccessToken), map[string]any{
		"book_id": 1, "quantity": 3,
	})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Put("/api/v1/cart/items/1", bearer(data.AccessToken), map[string]any{
		"quantity": 0,
	})
	require.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[map[string]any](t, resp.Body.Bytes())
	assert.EqualValues(t, 0, envelope.Data["item_count"])
}

func TestCart_Summary(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	data := ts.signUpCustomer(t)

	resp := ts.api.Post("/api/v1/cart/items", bearer(data.AccessToken), map[string]any{
		"book_id": 1, "quantity": 1,
	})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Get("/api/v1/cart/summary", bearer(data.AccessToken))
	require.Equal(t, http.StatusOK, resp.Code)

	// Book 1 costs 12.99, tax is 10%
	envelope := decodeEnvelope[map[string]any](t, resp.Body.Bytes())
	assert.Equal(t, "12.99", envelope.Data["subtotal"])
	assert.Equal(t, "1.299", envelope.Data["tax"])
	assert.Equal(t, "14.289", envelope.Data["grand_total"])
}

func TestCheckout(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	data := ts.signUpCustomer(t)

	resp := ts.api.Post("/api/v1/cart/items", bearer(data.AccessToken), map[string]any{
		"book_id": 1, "quantity": 2,
	})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Post("/api/v1/cart/checkout", bearer(data.AccessToken))
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	envelope := decodeEnvelope[map[string]any](t, resp.Body.Bytes())
	assert.True(t, envelope.Success)
	assert.NotEmpty(t, envelope.Data["receipt_id"])

	// Cart is empty afterwards
	resp = ts.api.Get("/api/v1/cart", bearer(data.AccessToken))
	require.Equal(t, http.StatusOK, resp.Code)

	cartEnvelope := decodeEnvelope[map[string]any](t, resp.Body.Bytes())
	assert.EqualValues(t, 0, cartEnvelope.Data["item_count"])

	// And the order shows up in history
	resp = ts.api.Get("/api/v1/orders", bearer(data.AccessToken))
	require.Equal(t, http.StatusOK, resp.Code)

	ordersEnvelope := decodeEnvelope[OrderListResponse](t, resp.Body.Bytes())
	assert.Equal(t, 1, ordersEnvelope.Data.Total)
}

func TestCheckout_EmptyCart(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	data := ts.signUpCustomer(t)

	resp := ts.api.Post("/api/v1/cart/checkout", bearer(data.AccessToken))
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	envelope := decodeEnvelope[struct{}](t, resp.Body.Bytes())
	assert.Equal(t, "VALIDATION", envelope.Code)
}
