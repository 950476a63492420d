// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-stego-client/internal/logger"
	"github.com/MKhiriev/go-stego-client/internal/tui"
)

var _ Client = (*App)(nil)

// ErrNoUI is returned by [NewApp] when no terminal UI is supplied.
var ErrNoUI = errors.New("client: no ui")

// App runs the terminal UI until the user quits or the process is
// interrupted.
type App struct {
	ui  *tui.TUI
	log *logger.Logger
}

// NewApp creates an [App] around ui.
func NewApp(ui *tui.TUI, log *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, ErrNoUI
	}
	return &App{ui: ui, log: log}, nil
}

// Run blocks until the UI exits. SIGINT and SIGTERM cancel the UI context.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.log.Info().Msg("client started")
	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	a.log.Info().Msg("client stopped")
	return nil
}
