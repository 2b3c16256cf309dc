package server

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-secret-vault/internal/config"
	"github.com/MKhiriev/go-secret-vault/internal/logger"
)

func TestNewHTTPServer_AppliesConfig(t *testing.T) {
	cfg := config.ServerConfig{
		HTTPAddress:     "localhost:8080",
		RequestTimeout:  3 * time.Second,
		ShutdownTimeout: time.Second,
	}

	srv := newHTTPServer(http.NewServeMux(), cfg, logger.Nop())

	assert.Equal(t, "localhost:8080", srv.server.Addr)
	assert.Equal(t, cfg.RequestTimeout, srv.server.ReadTimeout)
	assert.Equal(t, cfg.RequestTimeout, srv.server.WriteTimeout)
	assert.Equal(t, cfg.ShutdownTimeout, srv.shutdownTimeout)
}

func TestHTTPServer_ShutdownCompletesWithinTimeout(t *testing.T) {
	cfg := config.ServerConfig{
		HTTPAddress:     "localhost:0",
		ShutdownTimeout: 2 * time.Second,
	}

	srv := newHTTPServer(http.NewServeMux(), cfg, logger.Nop())

	start := time.Now()
	srv.Shutdown()
	require.Less(t, time.Since(start), cfg.ShutdownTimeout)
}
