// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pydt-client/internal/config"
	"github.com/MKhiriev/go-pydt-client/internal/mock"
)

// orderWorker records its id into a shared slice on Start and Stop.
type orderWorker struct {
	id      int
	started *[]int
	stopped *[]int
}

func (o *orderWorker) Start(context.Context) {
	*o.started = append(*o.started, o.id)
}

func (o *orderWorker) Stop() {
	*o.stopped = append(*o.stopped, o.id)
}

func TestWorkers_StartInOrderStopInReverse(t *testing.T) {
	var started, stopped []int
	newOrderWorker := func(id int) Worker {
		return &orderWorker{id: id, started: &started, stopped: &stopped}
	}

	ws := New(newOrderWorker(1), newOrderWorker(2), newOrderWorker(3))
	ws.Start(context.Background())
	ws.Stop()

	expectedStart := []int{1, 2, 3}
	expectedStop := []int{3, 2, 1}
	for i := range expectedStart {
		if started[i] != expectedStart[i] {
			t.Errorf("expected started[%d]=%d, got %d", i, expectedStart[i], started[i])
		}
		if stopped[i] != expectedStop[i] {
			t.Errorf("expected stopped[%d]=%d, got %d", i, expectedStop[i], stopped[i])
		}
	}
}

func TestWorkers_Empty(t *testing.T) {
	ws := New()

	// Should not panic on empty workers list
	ws.Start(context.Background())
	ws.Stop()
}

func TestWorkers_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Start(context.Background())
	ws.Stop()
}

func TestPollWorker_DelegatesToJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	job := mock.NewMockPollJob(ctrl)
	ctx := context.Background()

	gomock.InOrder(
		job.EXPECT().Start(ctx, 30*time.Second),
		job.EXPECT().Stop(),
	)

	w := NewPollWorker(job, config.Workers{PollInterval: 30 * time.Second})
	w.Start(ctx)
	w.Stop()
}

func TestCloser_RunsOnStopOnly(t *testing.T) {
	calls := 0
	w := NewCloser(func() { calls++ })

	w.Start(context.Background())
	if calls != 0 {
		t.Errorf("expected no call on Start, got %d", calls)
	}

	w.Stop()
	if calls != 1 {
		t.Errorf("expected one call on Stop, got %d", calls)
	}
}
