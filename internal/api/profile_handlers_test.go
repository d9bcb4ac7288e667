package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_RequiresAuth(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	resp := ts.api.Get("/api/v1/profile")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestProfile_Update(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	data := ts.signUpCustomer(t)

	resp := ts.api.Patch("/api/v1/profile", bearer(data.AccessToken), map[string]any{
		"name":         "Alice M.",
		"phone_number": "+265991234567",
		"address":      "12 Chileka Rd",
		"city":         "Blantyre",
		"country":      "Malawi",
		"bio":          "Reads everything",
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	envelope := decodeEnvelope[UserResponse](t, resp.Body.Bytes())
	assert.Equal(t, "Alice M.", envelope.Data.Name)
	assert.Equal(t, "Blantyre", envelope.Data.City)
	assert.Equal(t, "Malawi", envelope.Data.Country)

	resp = ts.api.Get("/api/v1/profile", bearer(data.AccessToken))
	require.Equal(t, http.StatusOK, resp.Code)

	envelope = decodeEnvelope[UserResponse](t, resp.Body.Bytes())
	assert.Equal(t, "12 Chileka Rd", envelope.Data.Address)
	assert.Equal(t, "Reads everything", envelope.Data.Bio)
}

func TestProfile_Preferences(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	ts.signUpCustomer(t)

	// Log in with remember-me so credentials get saved
	resp := ts.api.Post("/api/v1/auth/login", map[string]any{
		"email":       "alice@example.com",
		"password":    "password123",
		"remember_me": true,
		"device_info": map[string]any{
			"device_type": "mobile",
			"platform":    "android",
		},
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	login := decodeEnvelope[AuthResponse](t, resp.Body.Bytes())

	resp = ts.api.Get("/api/v1/profile/preferences", bearer(login.Data.AccessToken))
	require.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[PreferencesResponse](t, resp.Body.Bytes())
	assert.True(t, envelope.Data.RememberMe)
	assert.Equal(t, "alice@example.com", envelope.Data.SavedEmail)

	// The saved password never crosses the wire
	assert.NotContains(t, resp.Body.String(), "password123")

	resp = ts.api.Delete("/api/v1/profile/preferences/remember-me", bearer(login.Data.AccessToken))
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	resp = ts.api.Get("/api/v1/profile/preferences", bearer(login.Data.AccessToken))
	require.Equal(t, http.StatusOK, resp.Code)

	envelope = decodeEnvelope[PreferencesResponse](t, resp.Body.Bytes())
	assert.False(t, envelope.Data.RememberMe)
	assert.Empty(t, envelope.Data.SavedEmail)
}

func TestFavorites(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	data := ts.signUpCustomer(t)

	resp := ts.api.Put("/api/v1/favorites/1", bearer(data.AccessToken))
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	resp = ts.api.Put("/api/v1/favorites/3", bearer(data.AccessToken))
	require.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Get("/api/v1/favorites", bearer(data.AccessToken))
	require.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[BookListResponse](t, resp.Body.Bytes())
	assert.Equal(t, 2, envelope.Data.Total)

	resp = ts.api.Delete("/api/v1/favorites/1", bearer(data.AccessToken))
	require.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Get("/api/v1/favorites", bearer(data.AccessToken))
	envelope = decodeEnvelope[BookListResponse](t, resp.Body.Bytes())
	assert.Equal(t, 1, envelope.Data.Total)
	assert.Equal(t, 3, envelope.Data.Books[0].ID)
}

func TestFavorites_UnknownBook(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	data := ts.signUpCustomer(t)

	resp := ts.api.Put("/api/v1/favorites/999", bearer(data.AccessToken))
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
