// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal client: a bubbletea program that draws the
// [render.TextSurface] and turns key presses into controller events.
package tui

import (
	"context"
	"io"

	"github.com/MKhiriev/go-user-cards/internal/controller"
	"github.com/MKhiriev/go-user-cards/internal/logger"
	"github.com/MKhiriev/go-user-cards/internal/render"
	"github.com/MKhiriev/go-user-cards/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Controller is the part of [controller.Controller] the UI drives.
type Controller interface {
	Startup(ctx context.Context) error
	ClickCard(target *controller.Target)
	ClickPopup(target *controller.Target)
	ChangeSort(dir models.SortDirection)
	Sort() models.SortDirection
	OpenPopup() (string, bool)
}

type TUI struct {
	ctrl      Controller
	surface   *render.TextSurface
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(ctrl Controller, surface *render.TextSurface, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{ctrl: ctrl, surface: surface, buildInfo: buildInfo, logger: logger}
}

// Run shows the card list until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	model := newCardsModel(ctx, t.ctrl, t.surface, t.buildInfo)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		t.logger.Err(err).Msg("terminal UI stopped with error")
	}
	return err
}

// Dump writes the current surface as plain text, for output that is not a
// terminal.
func (t *TUI) Dump(w io.Writer) error {
	_, err := io.WriteString(w, t.surface.String())
	return err
}
