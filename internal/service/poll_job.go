// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-pydt-client/internal/logger"
)

// DefaultPollInterval is used when Start is given a non-positive interval.
const DefaultPollInterval = 60 * time.Second

type pollJob struct {
	poller PollerService
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPollJob creates a pollJob that calls poller.Refresh on a ticker. The job
// is idle until Start is called.
func NewPollJob(poller PollerService, log *logger.Logger) PollJob {
	return &pollJob{poller: poller, logger: log}
}

// Start implements PollJob. The goroutine exits when ctx is cancelled or Stop
// is called.
func (j *pollJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		j.tick(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.tick(jobCtx)
			}
		}
	}()
}

func (j *pollJob) tick(ctx context.Context) {
	if _, err := j.poller.Refresh(ctx); err != nil && ctx.Err() == nil {
		j.logger.Warn().Err(err).Str("func", "pollJob.tick").Msg("poll cycle failed")
	}
}

// Stop implements PollJob. Safe to call when the job is not running.
func (j *pollJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
