package handler

import (
	"github.com/MKhiriev/go-user-cards/internal/config"
	"github.com/MKhiriev/go-user-cards/internal/handler/http"
	"github.com/MKhiriev/go-user-cards/internal/logger"
	"github.com/MKhiriev/go-user-cards/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(ctrl http.Controller, page http.PageRenderer, services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(ctrl, page, services, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
