package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexListsEndpoints(t *testing.T) {
	router := newTestRouter(t, &platformFixture{}, "")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status    string   `json:"status"`
		Message   string   `json:"message"`
		Endpoints []string `json:"endpoints"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "online", body.Status)
	assert.NotEmpty(t, body.Message)
	assert.Equal(t, Endpoints, body.Endpoints)
}

func TestAPITest(t *testing.T) {
	router := newTestRouter(t, &platformFixture{}, "")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/test", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success   bool   `json:"success"`
		Message   string `json:"message"`
		Timestamp string `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "API is working", body.Message)

	_, err := time.Parse(time.RFC3339, body.Timestamp)
	assert.NoError(t, err)
}

func TestHealthReportsCredential(t *testing.T) {
	router := newTestRouter(t, &platformFixture{}, "cookie")

	_, env := doRequest(t, router, http.MethodGet, "/health", "")

	assert.True(t, env.Success)
	assert.JSONEq(t, `{"status":"ok","service":"rbxpresence","sessionCredential":true}`, string(env.Data))
}

func TestMetricsEndpoint(t *testing.T) {
	fixture := &platformFixture{presenceBody: `{"userPresences":[]}`}
	router := newTestRouter(t, fixture, "")

	doRequest(t, router, http.MethodGet, "/api/presence/1", "")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	raw, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `rbxpresence_upstream_requests_total{endpoint="presence",outcome="ok"} 1`)
	assert.Contains(t, string(raw), `rbxpresence_http_requests_total{method="GET",route="/api/presence/{userId}",status="200"} 1`)
}

func TestCORSPreflight(t *testing.T) {
	router := newTestRouter(t, &platformFixture{}, "")

	r := httptest.NewRequest(http.MethodOptions, "/api/presence", nil)
	r.Header.Set("Origin", "https://example.com")
	r.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, r)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
