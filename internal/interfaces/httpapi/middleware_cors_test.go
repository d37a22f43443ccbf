package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdmgray/eplpal/internal/platform/logging"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCORS_AllowsConfiguredOrigin(t *testing.T) {
	handler := CORS([]string{" https://eplpal.example.com ", ""}, okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/matchdays", nil)
	req.Header.Set("Origin", "https://eplpal.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://eplpal.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Origin", rec.Header().Get("Vary"))
	assert.Equal(t, "GET,OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
}

func TestCORS_DisallowsUnconfiguredOrigin(t *testing.T) {
	handler := CORS([]string{"https://eplpal.example.com"}, okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/matchdays", nil)
	req.Header.Set("Origin", "https://not-allowed.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Header().Get("Access-Control-Expose-Headers"))
}

func TestCORS_NoOriginPassesThrough(t *testing.T) {
	handler := CORS([]string{"*"}, okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_RouterPreflightForBetsRoute(t *testing.T) {
	router := NewRouter(newSeededHandler(t), logging.NewNop(), RouterOptions{
		ServiceName:        "eplpal-api",
		CORSAllowedOrigins: []string{"*"},
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/bets/7", nil)
	req.Header.Set("Origin", "https://eplpal.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	req.Header.Set("Access-Control-Request-Headers", requestIDHeader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), requestIDHeader)
	assert.Equal(t, "600", rec.Header().Get("Access-Control-Max-Age"))
	assert.Zero(t, rec.Body.Len())
}

func TestCORS_RouterExposesRequestID(t *testing.T) {
	router := NewRouter(newSeededHandler(t), logging.NewNop(), RouterOptions{
		ServiceName:        "eplpal-api",
		CORSAllowedOrigins: []string{"https://eplpal.example.com"},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/fixtures/matchday/5", nil)
	req.Header.Set("Origin", "https://eplpal.example.com")
	req.Header.Set(requestIDHeader, "req-cors-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-cors-1", rec.Header().Get(requestIDHeader))
	assert.Equal(t, requestIDHeader, rec.Header().Get("Access-Control-Expose-Headers"))
}
