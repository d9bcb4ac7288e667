package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YOHANEKUMWENDA/bookstore-application/internal/domain"
)

func TestSignUp_ReturnsTokensAndInitialScreen(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	data := ts.signUpCustomer(t)

	assert.NotEmpty(t, data.AccessToken)
	assert.NotEmpty(t, data.RefreshToken)
	assert.NotEmpty(t, data.SessionID)
	assert.Equal(t, "Bearer", data.TokenType)
	assert.Equal(t, "customer", data.User.Role)
	assert.Equal(t, string(domain.ScreenHome), string(data.InitialScreen.Kind))
	assert.Equal(t, 1, data.Navigation.Depth)
}

func TestSignUp_AdminLandsOnDashboard(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	data := ts.signUpAdmin(t)

	assert.Equal(t, "admin", data.User.Role)
	assert.Equal(t, string(domain.ScreenAdminDashboard), string(data.InitialScreen.Kind))
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	ts.signUpCustomer(t)

	resp := ts.api.Post("/api/v1/auth/signup", map[string]any{
		"name":     "Impostor",
		"email":    "alice@example.com",
		"password": "password456",
		"device_info": map[string]any{
			"device_type": "mobile",
			"platform":    "android",
		},
	})
	assert.Equal(t, http.StatusConflict, resp.Code)

	envelope := decodeEnvelope[struct{}](t, resp.Body.Bytes())
	assert.False(t, envelope.Success)
	assert.Equal(t, "ALREADY_EXISTS", envelope.Code)
}

func TestLogin(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	ts.signUpCustomer(t)

	resp := ts.api.Post("/api/v1/auth/login", map[string]any{
		"email":    "alice@example.com",
		"password": "password123",
		"device_info": map[string]any{
			"device_type": "mobile",
			"platform":    "android",
		},
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	envelope := decodeEnvelope[AuthResponse](t, resp.Body.Bytes())
	assert.True(t, envelope.Success)
	assert.Equal(t, "alice@example.com", envelope.Data.User.Email)
	assert.NotEmpty(t, envelope.Data.AccessToken)
}

func TestLogin_WrongPassword(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	ts.signUpCustomer(t)

	resp := ts.api.Post("/api/v1/auth/login", map[string]any{
		"email":    "alice@example.com",
		"password": "wrong-password",
		"device_info": map[string]any{
			"device_type": "mobile",
			"platform":    "android",
		},
	})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	envelope := decodeEnvelope[struct{}](t, resp.Body.Bytes())
	assert.False(t, envelope.Success)
	assert.Equal(t, "INVALID_CREDENTIALS", envelope.Code)
}

func TestRefresh_RotatesTokens(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	data := ts.signUpCustomer(t)

	resp := ts.api.Post("/api/v1/auth/refresh", map[string]any{
		"refresh_token": data.RefreshToken,
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	envelope := decodeEnvelope[AuthResponse](t, resp.Body.Bytes())
	assert.NotEqual(t, data.RefreshToken, envelope.Data.RefreshToken)

	// Old refresh token is dead
	resp = ts.api.Post("/api/v1/auth/refresh", map[string]any{
		"refresh_token": data.RefreshToken,
	})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestLogout_ResetsNavigationAndCart(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	data := ts.signUpCustomer(t)

	// Build up some state first
	resp := ts.api.Post("/api/v1/cart/items", bearer(data.AccessToken), map[string]any{
		"book_id": 1, "quantity": 2,
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	resp = ts.api.Post("/api/v1/navigation/push", bearer(data.AccessToken), map[string]any{
		"kind": "cart",
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	resp = ts.api.Post("/api/v1/auth/logout", bearer(data.AccessToken), map[string]any{
		"session_id": data.SessionID,
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	envelope := decodeEnvelope[NavStateDTO](t, resp.Body.Bytes())
	assert.Equal(t, string(domain.ScreenLogin), string(envelope.Data.Current.Kind))
	assert.Equal(t, 1, envelope.Data.Depth)

	// The refresh token no longer works
	resp = ts.api.Post("/api/v1/auth/refresh", map[string]any{
		"refresh_token": data.RefreshToken,
	})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestLogout_RequiresAuth(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	resp := ts.api.Post("/api/v1/auth/logout", map[string]any{
		"session_id": "session-123",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestForgotPassword_NeverRevealsAccounts(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	resp := ts.api.Post("/api/v1/auth/forgot-password", map[string]any{
		"email": "nobody@example.com",
	})
	assert.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[MessageResponse](t, resp.Body.Bytes())
	assert.True(t, envelope.Success)
}
