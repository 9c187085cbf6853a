// Package http implements the HTTP transport layer of the entry server.
// It provides the router, middleware, and route handlers for the REST API.
// Authentication and request logging are handled at this layer before
// requests are forwarded to the service layer.
package http

import (
	"github.com/dsmirnov/cryptodiary/internal/logger"
	"github.com/dsmirnov/cryptodiary/internal/service"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
