package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-user-cards/internal/adapter"
	"github.com/MKhiriev/go-user-cards/internal/client"
	"github.com/MKhiriev/go-user-cards/internal/config"
	"github.com/MKhiriev/go-user-cards/internal/controller"
	"github.com/MKhiriev/go-user-cards/internal/logger"
	"github.com/MKhiriev/go-user-cards/internal/render"
	"github.com/MKhiriev/go-user-cards/internal/service"
	"github.com/MKhiriev/go-user-cards/internal/tui"
	"github.com/MKhiriev/go-user-cards/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	// stdout may be the plain list
	fmt.Fprint(os.Stderr, buildInfo)

	log := logger.NewClientLogger("user-cards-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	userAdapter, err := adapter.NewHTTPRandomUserAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating randomuser adapter")
	}

	services, err := service.NewServices(userAdapter, cfg.Batch, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	surface := render.NewTextSurface()
	ctrl := controller.New(services.UserService, surface, log)
	ui := tui.New(ctrl, surface, buildInfo, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = client.NewApp(ctrl, ui, log).Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		log.Err(err).Msg("client run error")
		stop()
		os.Exit(1)
	}
}
