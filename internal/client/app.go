package client

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-user-cards/internal/logger"
	"golang.org/x/term"
)

type App struct {
	starter Starter
	ui      UI

	out        io.Writer
	isTerminal func() bool

	logger *logger.Logger
}

func NewApp(starter Starter, ui UI, logger *logger.Logger) *App {
	return &App{
		starter:    starter,
		ui:         ui,
		out:        os.Stdout,
		isTerminal: stdoutIsTerminal,
		logger:     logger,
	}
}

func (a *App) Run(ctx context.Context) error {
	if a.isTerminal() {
		a.logger.Info().Msg("starting terminal UI")
		return a.ui.Run(ctx)
	}

	a.logger.Info().Msg("stdout is not a terminal, printing plain list")
	startupErr := a.starter.Startup(ctx)

	if err := a.ui.Dump(a.out); err != nil {
		return fmt.Errorf("write user list: %w", err)
	}
	return startupErr
}

func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
