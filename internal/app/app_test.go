package app

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rdmgray/eplpal/internal/config"
	"github.com/rdmgray/eplpal/internal/platform/logging"
)

func memoryConfig() config.Config {
	return config.Config{
		ServiceName:        "eplpal-api-test",
		HTTPAddr:           ":0",
		ReadTimeout:        5 * time.Second,
		WriteTimeout:       5 * time.Second,
		StoreDriver:        config.StoreDriverMemory,
		FanoutWorkers:      4,
		CacheEnabled:       true,
		CacheBackend:       config.CacheBackendMemory,
		CacheTTL:           time.Minute,
		CORSAllowedOrigins: []string{"*"},
		MetricsEnabled:     true,
	}
}

func TestNewHTTPServer_MemoryStore(t *testing.T) {
	srv, cleanup, err := NewHTTPServer(context.Background(), memoryConfig(), logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(cleanup)

	for _, path := range []string{"/api/matchdays", "/api/matchdays", "/api/teams", "/api/bettors", "/api/fixtures/matchday/5"} {
		rr := httptest.NewRecorder()
		srv.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rr.Code, "path %s body %s", path, rr.Body.String())
	}

	rr := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(body), "eplpal_fanout_duration_seconds"), "metrics body lacks fan-out histogram")
}

func TestNewHTTPServer_MetricsDisabled(t *testing.T) {
	cfg := memoryConfig()
	cfg.MetricsEnabled = false
	cfg.CacheEnabled = false

	srv, cleanup, err := NewHTTPServer(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(cleanup)

	rr := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestNewHTTPServer_RejectsEmptyAddr(t *testing.T) {
	cfg := memoryConfig()
	cfg.HTTPAddr = ""

	_, _, err := NewHTTPServer(context.Background(), cfg, logging.NewNop())
	require.Error(t, err)
}

func TestNewHTTPServer_BadNameMapPath(t *testing.T) {
	cfg := memoryConfig()
	cfg.TeamNameMapPath = "/nonexistent/names.yaml"

	_, _, err := NewHTTPServer(context.Background(), cfg, logging.NewNop())
	require.Error(t, err)
}
