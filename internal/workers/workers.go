package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pydt-client/internal/config"
	"github.com/MKhiriev/go-pydt-client/internal/service"
)

type Workers struct {
	workers []Worker
}

// New groups workers. They start in the given order and stop in reverse.
func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

type pollWorker struct {
	job      service.PollJob
	interval time.Duration
}

// NewPollWorker runs job every cfg.PollInterval.
func NewPollWorker(job service.PollJob, cfg config.Workers) Worker {
	return &pollWorker{job: job, interval: cfg.PollInterval}
}

func (w *pollWorker) Start(ctx context.Context) {
	w.job.Start(ctx, w.interval)
}

func (w *pollWorker) Stop() {
	w.job.Stop()
}

type closerWorker struct {
	close func()
}

// NewCloser wraps a shutdown hook, such as closing the active watch
// session, as a worker with nothing to start.
func NewCloser(close func()) Worker {
	return &closerWorker{close: close}
}

func (w *closerWorker) Start(context.Context) {}

func (w *closerWorker) Stop() {
	w.close()
}
