// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-cipher-desk/internal/logger"
	"github.com/MKhiriev/go-cipher-desk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyHistoryRepo counts Prune calls and records the last cutoff.
type spyHistoryRepo struct {
	calls atomic.Int64
	err   error

	mu     sync.Mutex
	cutoff time.Time
}

func (s *spyHistoryRepo) Save(_ context.Context, e models.HistoryEntry) (models.HistoryEntry, error) {
	return e, nil
}

func (s *spyHistoryRepo) List(_ context.Context, _ int) ([]models.HistoryEntry, error) {
	return nil, nil
}

func (s *spyHistoryRepo) Prune(_ context.Context, olderThan time.Time) (int64, error) {
	s.calls.Add(1)
	s.mu.Lock()
	s.cutoff = olderThan
	s.mu.Unlock()
	return 1, s.err
}

func (s *spyHistoryRepo) lastCutoff() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cutoff
}

func TestNewHistoryPruneJob_ReturnsInterface(t *testing.T) {
	job := NewHistoryPruneJob(&spyHistoryRepo{}, logger.Nop())
	require.NotNil(t, job)

	var _ HistoryPruneJob = job
}

func TestHistoryPruneJob_Start_PrunesPeriodically(t *testing.T) {
	spy := &spyHistoryRepo{}
	job := NewHistoryPruneJob(spy, logger.Nop())

	// Interval 10ms: about 5 ticks plus the immediate run in 55ms.
	job.Start(context.Background(), time.Hour, 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "Prune should run several times, ran: %d", got)
}

func TestHistoryPruneJob_UsesRetentionCutoff(t *testing.T) {
	spy := &spyHistoryRepo{}
	job := NewHistoryPruneJob(spy, logger.Nop()).(*historyPruneJob)
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	job.now = func() time.Time { return now }

	job.Start(context.Background(), 48*time.Hour, time.Hour)
	require.Eventually(t, func() bool { return spy.calls.Load() >= 1 }, time.Second, 5*time.Millisecond)
	job.Stop()

	assert.Equal(t, now.Add(-48*time.Hour), spy.lastCutoff())
}

func TestHistoryPruneJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyHistoryRepo{}
	job := NewHistoryPruneJob(spy, logger.Nop())

	job.Start(context.Background(), time.Hour, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.calls.Load(), "no calls after Stop")
}

func TestHistoryPruneJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewHistoryPruneJob(&spyHistoryRepo{}, logger.Nop())
	assert.NotPanics(t, func() { job.Stop() })
}

func TestHistoryPruneJob_ErrorsKeepRunning(t *testing.T) {
	spy := &spyHistoryRepo{err: errors.New("database is locked")}
	job := NewHistoryPruneJob(spy, logger.Nop())

	job.Start(context.Background(), time.Hour, 10*time.Millisecond)
	time.Sleep(45 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(2))
}

func TestHistoryPruneJob_ContextCancelStops(t *testing.T) {
	spy := &spyHistoryRepo{}
	job := NewHistoryPruneJob(spy, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, time.Hour, 10*time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after context cancel")
	}
}
