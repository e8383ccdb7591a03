package http

import (
	"github.com/MKhiriev/go-user-cards/internal/controller"
	"github.com/MKhiriev/go-user-cards/internal/logger"
	"github.com/MKhiriev/go-user-cards/internal/service"
	"github.com/MKhiriev/go-user-cards/models"
)

// Controller is the part of [controller.Controller] the web client drives.
type Controller interface {
	ClickCard(target *controller.Target)
	ClickPopup(target *controller.Target)
	ChangeSort(dir models.SortDirection)
	Users() []models.User
	StartupErr() error
}

// PageRenderer renders the whole document from the current surface state.
type PageRenderer interface {
	Page() (string, error)
}

type Handler struct {
	controller Controller
	page       PageRenderer
	services   *service.Services

	logger *logger.Logger
}

func NewHandler(ctrl Controller, page PageRenderer, services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		controller: ctrl,
		page:       page,
		services:   services,
		logger:     logger,
	}
}
