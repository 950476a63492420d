// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-stego-client/internal/controller"
	"github.com/MKhiriev/go-stego-client/internal/logger"
	"github.com/MKhiriev/go-stego-client/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrMissingDependency is returned by [New] when a required dependency is nil.
var ErrMissingDependency = errors.New("tui: missing dependency")

// TUI runs the terminal front end of the client.
type TUI struct {
	services *service.ClientServices
	ctrl     *controller.Controller
	log      *logger.Logger
}

// New creates a [TUI] driving ctrl with services.
func New(services *service.ClientServices, ctrl *controller.Controller, log *logger.Logger) (*TUI, error) {
	if services == nil || ctrl == nil || log == nil {
		return nil, ErrMissingDependency
	}
	return &TUI{services: services, ctrl: ctrl, log: log}, nil
}

// Run shows the workflow tabs and blocks until the user quits or ctx is
// cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.ctrl, t.log)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	if result, ok := finalModel.(appModel); ok && result.quitByUser {
		t.log.Info().Msg("user quit")
	}
	return nil
}
