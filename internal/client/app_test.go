// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pydt-client/internal/config"
	"github.com/MKhiriev/go-pydt-client/internal/logger"
	"github.com/MKhiriev/go-pydt-client/internal/mock"
	"github.com/MKhiriev/go-pydt-client/internal/service"
)

type funcUI func(ctx context.Context) error

func (f funcUI) Run(ctx context.Context) error { return f(ctx) }

func newTestServices(ctrl *gomock.Controller) (*service.ClientServices, *mock.MockPollJob, *mock.MockTransferService) {
	job := mock.NewMockPollJob(ctrl)
	transfer := mock.NewMockTransferService(ctrl)
	return &service.ClientServices{PollJob: job, TransferService: transfer}, job, transfer
}

func TestNewApp_RequiresServices(t *testing.T) {
	_, err := NewApp(nil, nil, config.Workers{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoServices)
}

func TestApp_Run_StartsAndStopsAroundUI(t *testing.T) {
	ctrl := gomock.NewController(t)
	services, job, transfer := newTestServices(ctrl)

	var uiRan bool
	gomock.InOrder(
		job.EXPECT().Start(gomock.Any(), time.Minute),
		job.EXPECT().Stop(),
	)
	transfer.EXPECT().Close()

	app, err := NewApp(services, funcUI(func(context.Context) error {
		uiRan = true
		return nil
	}), config.Workers{PollInterval: time.Minute}, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))
	assert.True(t, uiRan)
}

func TestApp_Run_UIErrorStillShutsDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	services, job, transfer := newTestServices(ctrl)

	job.EXPECT().Start(gomock.Any(), gomock.Any())
	job.EXPECT().Stop()
	transfer.EXPECT().Close()

	app, err := NewApp(services, funcUI(func(context.Context) error {
		return errors.New("no tty")
	}), config.Workers{}, logger.Nop())
	require.NoError(t, err)

	assert.ErrorContains(t, app.Run(context.Background()), "no tty")
}

func TestApp_Run_HeadlessWaitsForContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	services, job, transfer := newTestServices(ctrl)

	job.EXPECT().Start(gomock.Any(), gomock.Any())
	job.EXPECT().Stop()
	transfer.EXPECT().Close()

	app, err := NewApp(services, nil, config.Workers{}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	require.NoError(t, app.Run(ctx))
}
