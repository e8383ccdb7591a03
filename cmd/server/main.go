package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-cards/internal/adapter"
	"github.com/MKhiriev/go-user-cards/internal/config"
	"github.com/MKhiriev/go-user-cards/internal/controller"
	"github.com/MKhiriev/go-user-cards/internal/handler"
	"github.com/MKhiriev/go-user-cards/internal/logger"
	"github.com/MKhiriev/go-user-cards/internal/render"
	"github.com/MKhiriev/go-user-cards/internal/server"
	"github.com/MKhiriev/go-user-cards/internal/service"
	"github.com/MKhiriev/go-user-cards/internal/workers"
	"github.com/MKhiriev/go-user-cards/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("user-cards-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	userAdapter, err := adapter.NewHTTPRandomUserAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating randomuser adapter")
	}

	services, err := service.NewServices(userAdapter, cfg.Batch, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	surface := render.NewHTMLSurface()
	ctrl := controller.New(services.UserService, surface, log)

	handlers, err := handler.NewHandlers(ctrl, surface, services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers.HTTP.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// the page is served while the batch is still loading
	workers.NewWorkers(workers.NewStartupWorker(ctx, ctrl, log)).Run()

	if err = srv.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("server run error")
	}
}
