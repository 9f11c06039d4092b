// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-cipher-desk/internal/config"
	"github.com/MKhiriev/go-cipher-desk/internal/mock"
	"github.com/MKhiriev/go-cipher-desk/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// recordingWorker appends its id to a shared log on Start and Stop.
type recordingWorker struct {
	id  int
	log *[]string
}

func (r *recordingWorker) Start(context.Context) {
	*r.log = append(*r.log, "start-"+string(rune('0'+r.id)))
}

func (r *recordingWorker) Stop() {
	*r.log = append(*r.log, "stop-"+string(rune('0'+r.id)))
}

func TestWorkers_StartStop_Order(t *testing.T) {
	var log []string
	ws := &Workers{workers: []Worker{
		&recordingWorker{id: 1, log: &log},
		&recordingWorker{id: 2, log: &log},
		&recordingWorker{id: 3, log: &log},
	}}

	ws.Start(context.Background())
	ws.Stop()

	assert.Equal(t, []string{"start-1", "start-2", "start-3", "stop-3", "stop-2", "stop-1"}, log)
}

func TestWorkers_Empty(t *testing.T) {
	ws := &Workers{}

	assert.NotPanics(t, func() {
		ws.Start(context.Background())
		ws.Stop()
	})
}

// TestNewWorkers_PruneJobSchedule verifies that the prune job receives the
// configured retention and interval.
func TestNewWorkers_PruneJobSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	job := mock.NewMockHistoryPruneJob(ctrl)
	ctx := context.Background()

	ws := NewWorkers(config.ClientWorkers{
		HistoryRetention: 72 * time.Hour,
		PruneInterval:    15 * time.Minute,
	}, &service.ClientServices{PruneJob: job})

	gomock.InOrder(
		job.EXPECT().Start(ctx, 72*time.Hour, 15*time.Minute),
		job.EXPECT().Stop(),
	)

	ws.Start(ctx)
	ws.Stop()
}

func TestNewWorkers_StopDrainsJournal(t *testing.T) {
	ctrl := gomock.NewController(t)
	job := mock.NewMockHistoryPruneJob(ctrl)
	submission := mock.NewMockSubmissionController(ctrl)
	ctx := context.Background()

	ws := NewWorkers(config.ClientWorkers{
		HistoryRetention: time.Hour,
		PruneInterval:    time.Minute,
	}, &service.ClientServices{PruneJob: job, Submission: submission})

	gomock.InOrder(
		job.EXPECT().Start(ctx, time.Hour, time.Minute),
		submission.EXPECT().Wait(),
		job.EXPECT().Stop(),
	)

	ws.Start(ctx)
	ws.Stop()
}
