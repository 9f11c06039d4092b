package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-cipher-desk/internal/logger"
	"github.com/MKhiriev/go-cipher-desk/internal/store"
)

const (
	defaultPruneInterval    = time.Hour
	defaultHistoryRetention = 30 * 24 * time.Hour
)

type historyPruneJob struct {
	repo   store.HistoryRepository
	now    func() time.Time
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewHistoryPruneJob creates a historyPruneJob that calls repo.Prune on a
// ticker. The job is idle until Start is called.
func NewHistoryPruneJob(repo store.HistoryRepository, logger *logger.Logger) HistoryPruneJob {
	return &historyPruneJob{repo: repo, now: time.Now, logger: logger}
}

// Start implements HistoryPruneJob. It stops any previously running job,
// prunes once immediately, then prunes every interval. Non-positive values
// fall back to an hourly prune with 30 days of retention. The goroutine
// exits when ctx is cancelled or Stop is called.
func (j *historyPruneJob) Start(ctx context.Context, retention, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPruneInterval
	}
	if retention <= 0 {
		retention = defaultHistoryRetention
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

		j.prune(jobCtx, retention)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.prune(jobCtx, retention)
			}
		}
	}()
}

func (j *historyPruneJob) prune(ctx context.Context, retention time.Duration) {
	removed, err := j.repo.Prune(ctx, j.now().Add(-retention))
	if err != nil {
		j.logger.Err(err).Str("func", "*historyPruneJob.prune").Msg("failed to prune history")
		return
	}
	if removed > 0 {
		j.logger.Debug().Str("func", "*historyPruneJob.prune").
			Int64("removed", removed).
			Msg("pruned history entries")
	}
}

// Stop implements HistoryPruneJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call
// when the job is not running.
func (j *historyPruneJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
