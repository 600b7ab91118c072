package http

import (
	"github.com/securedesk/secure-desk/internal/logger"
	"github.com/securedesk/secure-desk/internal/service"
)

// Handler holds the service layer and the root logger used by the HTTP
// transport. All request handlers and middleware are methods on it.
type Handler struct {
	services *service.Services

	logger *logger.Logger
}

// NewHandler wires the service layer into a new HTTP handler.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
