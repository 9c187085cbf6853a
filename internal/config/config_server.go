package config

import (
	"fmt"
	"time"
)

// ServerAuth holds token issuing parameters for the server auth service.
type ServerAuth struct {
	// TokenSignKey is the JWT signing secret.
	TokenSignKey string
	// TokenIssuer is the "iss" claim of issued tokens.
	TokenIssuer string
	// TokenDuration is the token validity window.
	TokenDuration time.Duration
}

// ServerConfig is the server-specific view assembled from
// [StructuredConfig].
type ServerConfig struct {
	// HTTPAddress is the listen address of the HTTP server.
	HTTPAddress string
	// RequestTimeout bounds a single inbound request.
	RequestTimeout time.Duration
	// DSN is the database connection string.
	DSN string
	// Auth contains token issuing settings.
	Auth ServerAuth
}

// GetServerConfig builds and validates the server config view from the
// merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		HTTPAddress:    cfg.Server.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
		DSN:            cfg.Storage.DB.DSN,
		Auth: ServerAuth{
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
		},
	}

	return serverCfg, serverCfg.validate()
}
