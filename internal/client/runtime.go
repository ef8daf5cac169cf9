// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pydt-client/internal/adapter"
	"github.com/MKhiriev/go-pydt-client/internal/config"
	"github.com/MKhiriev/go-pydt-client/internal/logger"
	"github.com/MKhiriev/go-pydt-client/internal/presenter"
	"github.com/MKhiriev/go-pydt-client/internal/service"
	"github.com/MKhiriev/go-pydt-client/internal/store"
)

// Runtime is the fully wired dependency graph shared by every command.
type Runtime struct {
	Config    *config.StructuredConfig
	Logger    *logger.Logger
	Logs      *logger.RingBuffer
	Storages  *store.ClientStorages
	Services  *service.ClientServices
	Notices   *presenter.NotificationCenter
	Presenter *presenter.Presenter
}

// NewRuntime builds the runtime from cfg. The caller must Close it.
func NewRuntime(ctx context.Context, cfg *config.StructuredConfig, role string) (*Runtime, error) {
	logs := logger.NewRingBuffer(cfg.Log.RingSize)
	log := logger.NewClientLogger(role, cfg.Log.File, logs)

	remote, err := adapter.NewHTTPRemoteAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create remote adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	notices := presenter.NewNotificationCenter(0, log)
	services := service.NewClientServices(storages.RosterRepository, remote, notices, cfg, log)

	return &Runtime{
		Config:    cfg,
		Logger:    log,
		Logs:      logs,
		Storages:  storages,
		Services:  services,
		Notices:   notices,
		Presenter: presenter.New(services.PollerService, services.TransferService, notices, log),
	}, nil
}

// Close stops the poll job, tears down the watch session and closes the
// database.
func (r *Runtime) Close() error {
	if r == nil {
		return nil
	}

	var errs []error
	if r.Services != nil {
		r.Services.PollJob.Stop()
		r.Services.TransferService.Close()
	}
	if err := r.Storages.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close storage: %w", err))
	}
	return errors.Join(errs...)
}
