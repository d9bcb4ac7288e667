package api

import (
	"bytes"
	"encoding/json/v2"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/require"

	"github.com/YOHANEKUMWENDA/bookstore-application/internal/auth"
	"github.com/YOHANEKUMWENDA/bookstore-application/internal/catalog"
	"github.com/YOHANEKUMWENDA/bookstore-application/internal/mail"
	"github.com/YOHANEKUMWENDA/bookstore-application/internal/service"
	"github.com/YOHANEKUMWENDA/bookstore-application/internal/store"
)

// testEnvelope mirrors the response envelope for unmarshalling in tests.
type testEnvelope[T any] struct {
	V       int    `json:"v"`
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details any    `json:"details"`
}

// testServer wraps the API server for handler testing.
type testServer struct {
	*Server
	api     humatest.TestAPI
	cleanup func()
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "bookstore-api-test-*")
	require.NoError(t, err)

	dbPath := filepath.Join(tmpDir, "test.db")
	st, err := store.New(dbPath, nil)
	require.NoError(t, err)

	key := bytes.Repeat([]byte{0x24}, 32)
	tokenService, err := auth.NewTokenService(key, 15*time.Minute, 30*24*time.Hour)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cat := catalog.New()

	sessionService := service.NewSessionService(st, tokenService, logger)
	authService := service.NewAuthService(st, tokenService, sessionService, mail.NewLogMailer(logger), logger)
	cartService := service.NewCartService(cat, st, logger)
	navigatorService := service.NewNavigatorService(cat, cartService, authService, logger)

	services := &Services{
		Auth:      authService,
		Session:   sessionService,
		Catalog:   service.NewCatalogService(cat, logger),
		Cart:      cartService,
		Navigator: navigatorService,
		Profile:   service.NewProfileService(st, cat, logger),
		Admin:     service.NewAdminService(st, cat, logger),
	}

	s := NewServer(st, services, logger)

	cleanup := func() {
		_ = st.Close()
		_ = os.RemoveAll(tmpDir)
	}

	return &testServer{
		Server:  s,
		api:     humatest.Wrap(t, s.api),
		cleanup: cleanup,
	}
}

// signUpTestUser registers an account and returns its auth payload.
func (ts *testServer) signUpTestUser(t *testing.T, name, email, password string) AuthResponse {
	t.Helper()

	resp := ts.api.Post("/api/v1/auth/signup", map[string]any{
		"name":     name,
		"email":    email,
		"password": password,
		"device_info": map[string]any{
			"device_type": "mobile",
			"platform":    "android",
		},
	})
	require.Equal(t, http.StatusOK, resp.Code, "Signup failed: %s", resp.Body.String())

	var envelope testEnvelope[AuthResponse]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	require.True(t, envelope.Success)

	return envelope.Data
}

func (ts *testServer) signUpCustomer(t *testing.T) AuthResponse {
	t.Helper()
	return ts.signUpTestUser(t, "Alice", "alice@example.com", "password123")
}

func (ts *testServer) signUpAdmin(t *testing.T) AuthResponse {
	t.Helper()
	return ts.signUpTestUser(t, "Admin", "admin@gmail.com", "password123")
}

func bearer(token string) string {
	return "Authorization: Bearer " + token
}

func decodeEnvelope[T any](t *testing.T, body []byte) testEnvelope[T] {
	t.Helper()

	var envelope testEnvelope[T]
	require.NoError(t, json.Unmarshal(body, &envelope))
	return envelope
}
