package config

import (
	"fmt"
	"time"
)

// DefaultServerAddress applies when no listen address is configured.
const DefaultServerAddress = "localhost:8080"

// DefaultShutdownTimeout bounds graceful shutdown when none is configured.
const DefaultShutdownTimeout = 10 * time.Second

// ServerConfig is the top-level server configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	// HTTPAddress is the TCP address on which the HTTP server listens.
	HTTPAddress string
	// RequestTimeout bounds a single inbound request.
	RequestTimeout time.Duration
	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration
	// DB contains the relational database settings.
	DB DB
}

// GetServerConfig builds and validates a server-specific config view from
// the merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		HTTPAddress:     cfg.Server.HTTPAddress,
		RequestTimeout:  cfg.Server.RequestTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		DB:              cfg.Storage.DB,
	}

	if serverCfg.HTTPAddress == "" {
		serverCfg.HTTPAddress = DefaultServerAddress
	}
	if serverCfg.RequestTimeout == 0 {
		serverCfg.RequestTimeout = DefaultRequestTimeout
	}
	if serverCfg.ShutdownTimeout == 0 {
		serverCfg.ShutdownTimeout = DefaultShutdownTimeout
	}

	return serverCfg, serverCfg.validate()
}
