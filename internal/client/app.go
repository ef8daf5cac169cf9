// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pydt-client/internal/config"
	"github.com/MKhiriev/go-pydt-client/internal/logger"
	"github.com/MKhiriev/go-pydt-client/internal/service"
	"github.com/MKhiriev/go-pydt-client/internal/workers"
)

// ErrNoServices is returned by NewApp without services.
var ErrNoServices = errors.New("client services are required")

type App struct {
	services *service.ClientServices
	ui       UI
	workers  *workers.Workers
	logger   *logger.Logger
}

// NewApp creates the tray application. ui may be nil for a headless run
// that only polls and transfers until the context ends.
func NewApp(services *service.ClientServices, ui UI, cfg config.Workers, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, ErrNoServices
	}

	return &App{
		services: services,
		ui:       ui,
		workers: workers.New(
			workers.NewPollWorker(services.PollJob, cfg),
			workers.NewCloser(services.TransferService.Close),
		),
		logger: log,
	}, nil
}

// Run starts the poll job, then blocks in the UI (or on ctx when headless).
// On return the poll job is stopped and any watch session is closed.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.workers.Start(ctx)
	defer a.workers.Stop()

	a.logger.Info().Bool("headless", a.ui == nil).Msg("client started")

	if a.ui == nil {
		<-ctx.Done()
		a.logger.Info().Msg("client stopping")
		return nil
	}

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("tray: %w", err)
	}

	a.logger.Info().Msg("client stopping")
	return nil
}
