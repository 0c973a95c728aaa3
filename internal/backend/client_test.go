package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewHTTPClient(Config{Endpoint: server.URL, APIKey: "test-key"})
	require.NoError(t, err)

	return client, server
}

func TestAnalyzeSendsRawInputs(t *testing.T) {
	var gotBody map[string]string
	var gotContentType, gotAuth string

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"result": "All clear, safe to mix."}`))
	})

	payload, err := client.Analyze(context.Background(), "  Bleach ", "household AMMONIA")
	require.NoError(t, err)

	// The raw, original strings go over the wire, not normalized forms.
	assert.Equal(t, "  Bleach ", gotBody["chem1"])
	assert.Equal(t, "household AMMONIA", gotBody["chem2"])
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.JSONEq(t, `"All clear, safe to mix."`, string(payload.Result))
}

func TestAnalyzeStructuredResult(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"result": {"type": "Safe", "title": "OK", "explanation": "Fine.", "recommendations": []}}`))
	})

	payload, err := client.Analyze(context.Background(), "a", "b")
	require.NoError(t, err)
	assert.JSONEq(t, `{"type": "Safe", "title": "OK", "explanation": "Fine.", "recommendations": []}`, string(payload.Result))
}

func TestAnalyzeHTTPError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	})

	_, err := client.Analyze(context.Background(), "a", "b")
	require.Error(t, err)

	var backendErr *Error
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, http.StatusServiceUnavailable, backendErr.StatusCode)
}

func TestAnalyzeApplicationError(t *testing.T) {
	// An error field in a 200 response is a failure like any other.
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"error": "analysis model unavailable"}`))
	})

	_, err := client.Analyze(context.Background(), "a", "b")
	require.Error(t, err)

	var backendErr *Error
	require.ErrorAs(t, err, &backendErr)
	assert.Contains(t, backendErr.Message, "analysis model unavailable")
}

func TestAnalyzeMalformedTopLevelResponse(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json at all`))
	})

	_, err := client.Analyze(context.Background(), "a", "b")
	require.Error(t, err)

	var backendErr *Error
	assert.ErrorAs(t, err, &backendErr)
}

func TestAnalyzeTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	endpoint := server.URL
	server.Close() // connection refused from here on

	client, err := NewHTTPClient(Config{Endpoint: endpoint})
	require.NoError(t, err)

	_, err = client.Analyze(context.Background(), "a", "b")
	require.Error(t, err)

	var backendErr *Error
	assert.ErrorAs(t, err, &backendErr)
}

func TestNewHTTPClientRequiresEndpoint(t *testing.T) {
	_, err := NewHTTPClient(Config{})
	assert.Error(t, err)
}
