// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-pydt-client/internal/adapter"
	"github.com/MKhiriev/go-pydt-client/internal/config"
	"github.com/MKhiriev/go-pydt-client/internal/logger"
	"github.com/MKhiriev/go-pydt-client/internal/store"
)

type ClientServices struct {
	AccountService  AccountService
	GameService     GameService
	PollerService   PollerService
	PollJob         PollJob
	TransferService TransferService
}

func NewClientServices(roster store.RosterRepository, remote adapter.RemoteAdapter, notifier Notifier, cfg *config.StructuredConfig, log *logger.Logger) *ClientServices {
	accountSvc := NewAccountService(roster, remote, log)
	pollerSvc := NewPollerService(roster, remote, PollerOptions{ProfilesTTL: cfg.Cache.ProfilesTTL}, log)
	transferSvc := NewTransferService(remote, pollerSvc, notifier, TransferOptions{
		SaveDir:        cfg.Transfer.SaveDir,
		Extension:      cfg.Transfer.SaveExtension,
		StabilityDelay: cfg.Transfer.StabilityDelay,
		SettleDelay:    cfg.Transfer.SettleDelay,
	}, log)

	return &ClientServices{
		AccountService:  accountSvc,
		GameService:     NewGameService(accountSvc, remote, pollerSvc, log),
		PollerService:   pollerSvc,
		PollJob:         NewPollJob(pollerSvc, log),
		TransferService: transferSvc,
	}
}
