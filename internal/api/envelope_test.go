package api

import (
	"encoding/json/v2"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeTransformer_Success(t *testing.T) {
	result, err := EnvelopeTransformer(nil, "200", map[string]string{"id": "b-1"})
	require.NoError(t, err)

	env, ok := result.(*Envelope)
	require.True(t, ok)
	assert.Equal(t, envelopeVersion, env.V)
	assert.True(t, env.Success)
	assert.NotNil(t, env.Data)
	assert.Empty(t, env.Error)
}

func TestEnvelopeTransformer_Error(t *testing.T) {
	result, err := EnvelopeTransformer(nil, "404", &APIError{
		status:  http.StatusNotFound,
		Code:    "NOT_FOUND",
		Message: "Book not found",
	})
	require.NoError(t, err)

	env, ok := result.(*Envelope)
	require.True(t, ok)
	assert.False(t, env.Success)
	assert.Equal(t, "Book not found", env.Error)
	assert.Equal(t, "NOT_FOUND", env.Code)
	assert.Nil(t, env.Data)
}

func TestEnvelopeTransformer_AlreadyWrapped(t *testing.T) {
	wrapped := &Envelope{V: envelopeVersion, Success: true}
	result, err := EnvelopeTransformer(nil, "200", wrapped)
	require.NoError(t, err)
	assert.Same(t, wrapped, result)
}

// TestEnvelope_WireShape pins the field names clients parse.
func TestEnvelope_WireShape(t *testing.T) {
	body, err := json.Marshal(&Envelope{
		V:       envelopeVersion,
		Success: true,
		Data:    map[string]string{"id": "b-1"},
	})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))

	assert.Contains(t, decoded, "v")
	assert.Contains(t, decoded, "success")
	assert.Contains(t, decoded, "data")
	assert.NotContains(t, decoded, "error")
	assert.NotContains(t, decoded, "code")
}

func TestHealthCheck(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	resp := ts.api.Get("/health")
	require.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[HealthResponse](t, resp.Body.Bytes())
	assert.True(t, envelope.Success)
	assert.Equal(t, "healthy", envelope.Data.Status)
	assert.Equal(t, "healthy", envelope.Data.Components["database"].Status)
	assert.Equal(t, "healthy", envelope.Data.Components["catalog"].Status)
}
