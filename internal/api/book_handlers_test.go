package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListBooks(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	resp := ts.api.Get("/api/v1/books")
	require.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[BookListResponse](t, resp.Body.Bytes())
	assert.True(t, envelope.Success)
	assert.Equal(t, 12, envelope.Data.Total)
}

func TestGetBook(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	resp := ts.api.Get("/api/v1/books/1")
	require.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[map[string]any](t, resp.Body.Bytes())
	assert.Equal(t, "Forest Spirit", envelope.Data["title"])
}

func TestGetBook_NotFound(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	resp := ts.api.Get("/api/v1/books/999")
	assert.Equal(t, http.StatusNotFound, resp.Code)

	envelope := decodeEnvelope[struct{}](t, resp.Body.Bytes())
	assert.False(t, envelope.Success)
	assert.Equal(t, "NOT_FOUND", envelope.Code)
}

func TestSearchBooks(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	t.Run("query too short", func(t *testing.T) {
		resp := ts.api.Get("/api/v1/books/search?q=ze")
		require.Equal(t, http.StatusOK, resp.Code)

		envelope := decodeEnvelope[BookListResponse](t, resp.Body.Bytes())
		assert.Equal(t, 0, envelope.Data.Total)
	})

	t.Run("case-insensitive match", func(t *testing.T) {
		resp := ts.api.Get("/api/v1/books/search?q=ZERO+ONE")
		require.Equal(t, http.StatusOK, resp.Code)

		envelope := decodeEnvelope[BookListResponse](t, resp.Body.Bytes())
		assert.Equal(t, 2, envelope.Data.Total)
	})
}

func TestFeaturedBooks(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	resp := ts.api.Get("/api/v1/books/featured")
	require.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[BookListResponse](t, resp.Body.Bytes())
	assert.Equal(t, 5, envelope.Data.Total)
	for _, book := range envelope.Data.Books {
		assert.GreaterOrEqual(t, book.Rating, 4.5)
	}
}

func TestBestSellerBooks(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	resp := ts.api.Get("/api/v1/books/best-sellers")
	require.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[BookListResponse](t, resp.Body.Bytes())
	require.Equal(t, 4, envelope.Data.Total)

	// Ordered by rating, best first
	for i := 1; i < len(envelope.Data.Books); i++ {
		assert.GreaterOrEqual(t, envelope.Data.Books[i-1].Rating, envelope.Data.Books[i].Rating)
	}
}

func TestBooksByCategory(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	resp := ts.api.Get("/api/v1/categories/Sci-Fi/books")
	require.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[BookListResponse](t, resp.Body.Bytes())
	assert.Greater(t, envelope.Data.Total, 0)
	for _, book := range envelope.Data.Books {
		assert.Equal(t, "Sci-Fi", book.Category)
	}

	// Category match is case-sensitive
	resp = ts.api.Get("/api/v1/categories/sci-fi/books")
	require.Equal(t, http.StatusOK, resp.Code)

	envelope = decodeEnvelope[BookListResponse](t, resp.Body.Bytes())
	assert.Equal(t, 0, envelope.Data.Total)
}

func TestListCategories(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	resp := ts.api.Get("/api/v1/categories")
	require.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[CategoryListResponse](t, resp.Body.Bytes())
	assert.Len(t, envelope.Data.Categories, 6)
}
