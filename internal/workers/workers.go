package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-cipher-desk/internal/config"
	"github.com/MKhiriev/go-cipher-desk/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the client's background jobs from cfg.
func NewWorkers(cfg config.ClientWorkers, services *service.ClientServices) *Workers {
	w := &Workers{workers: []Worker{
		&historyPruneWorker{
			job:       services.PruneJob,
			retention: cfg.HistoryRetention,
			interval:  cfg.PruneInterval,
		},
	}}
	if services.Submission != nil {
		w.workers = append(w.workers, &journalFlushWorker{submission: services.Submission})
	}
	return w
}

// Start starts every worker in registration order.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops every worker in reverse registration order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

// historyPruneWorker binds the prune job to its configured schedule.
type historyPruneWorker struct {
	job       service.HistoryPruneJob
	retention time.Duration
	interval  time.Duration
}

func (h *historyPruneWorker) Start(ctx context.Context) {
	h.job.Start(ctx, h.retention, h.interval)
}

func (h *historyPruneWorker) Stop() {
	h.job.Stop()
}

// journalFlushWorker drains pending history writes on shutdown, before the
// storage is closed.
type journalFlushWorker struct {
	submission service.SubmissionController
}

func (j *journalFlushWorker) Start(context.Context) {}

func (j *journalFlushWorker) Stop() {
	j.submission.Wait()
}
