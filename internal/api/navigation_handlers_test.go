package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YOHANEKUMWENDA/bookstore-application/internal/domain"
)

func TestNavigation_PushPopReset(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	data := ts.signUpCustomer(t)
	token := bearer(data.AccessToken)

	// Signup landed the stack on home
	resp := ts.api.Get("/api/v1/navigation", token)
	require.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[NavStateDTO](t, resp.Body.Bytes())
	assert.Equal(t, string(domain.ScreenHome), string(envelope.Data.Current.Kind))
	assert.Equal(t, 1, envelope.Data.Depth)

	// Push a book detail screen
	resp = ts.api.Post("/api/v1/navigation/push", token, map[string]any{
		"kind":    "book_detail",
		"book_id": 3,
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	envelope = decodeEnvelope[NavStateDTO](t, resp.Body.Bytes())
	assert.Equal(t, string(domain.ScreenBookDetail), string(envelope.Data.Current.Kind))
	assert.Equal(t, 3, envelope.Data.Current.BookID)
	assert.Equal(t, 2, envelope.Data.Depth)

	// Pop back to home
	resp = ts.api.Post("/api/v1/navigation/pop", token)
	require.Equal(t, http.StatusOK, resp.Code)

	envelope = decodeEnvelope[NavStateDTO](t, resp.Body.Bytes())
	assert.Equal(t, string(domain.ScreenHome), string(envelope.Data.Current.Kind))

	// Reset to the cart screen
	resp = ts.api.Post("/api/v1/navigation/reset", token, map[string]any{
		"kind": "cart",
	})
	require.Equal(t, http.StatusOK, resp.Code)

	envelope = decodeEnvelope[NavStateDTO](t, resp.Body.Bytes())
	assert.Equal(t, string(domain.ScreenCart), string(envelope.Data.Current.Kind))
	assert.Equal(t, 1, envelope.Data.Depth)
}

func TestNavigation_PushUnknownScreen(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	data := ts.signUpCustomer(t)

	resp := ts.api.Post("/api/v1/navigation/push", bearer(data.AccessToken), map[string]any{
		"kind": "nonsense",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestNavigation_PushUnknownBookDetail(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	data := ts.signUpCustomer(t)

	resp := ts.api.Post("/api/v1/navigation/push", bearer(data.AccessToken), map[string]any{
		"kind":    "book_detail",
		"book_id": 999,
	})
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestNavigation_BusyRejectsWithConflict(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	data := ts.signUpCustomer(t)
	token := bearer(data.AccessToken)

	resp := ts.api.Put("/api/v1/navigation/busy", token, map[string]any{
		"busy": true,
	})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Post("/api/v1/navigation/push", token, map[string]any{
		"kind": "search",
	})
	assert.Equal(t, http.StatusConflict, resp.Code)

	envelope := decodeEnvelope[struct{}](t, resp.Body.Bytes())
	assert.Equal(t, "CONFLICT", envelope.Code)

	resp = ts.api.Put("/api/v1/navigation/busy", token, map[string]any{
		"busy": false,
	})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Post("/api/v1/navigation/push", token, map[string]any{
		"kind": "search",
	})
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestNavigation_InitialScreen(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	// Anonymous callers land on the landing screen
	resp := ts.api.Get("/api/v1/navigation/initial")
	require.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[InitialScreenResponse](t, resp.Body.Bytes())
	assert.Equal(t, string(domain.ScreenLanding), string(envelope.Data.Screen.Kind))

	// Admins land on the dashboard
	admin := ts.signUpAdmin(t)
	resp = ts.api.Get("/api/v1/navigation/initial", bearer(admin.AccessToken))
	require.Equal(t, http.StatusOK, resp.Code)

	envelope = decodeEnvelope[InitialScreenResponse](t, resp.Body.Bytes())
	assert.Equal(t, string(domain.ScreenAdminDashboard), string(envelope.Data.Screen.Kind))
}
