package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-cipher-desk/internal/adapter"
	"github.com/MKhiriev/go-cipher-desk/internal/crypto"
	"github.com/MKhiriev/go-cipher-desk/internal/logger"
	"github.com/MKhiriev/go-cipher-desk/internal/store"
	"github.com/MKhiriev/go-cipher-desk/models"
)

type submissionController struct {
	adapter   adapter.TransformAdapter
	artifacts store.ArtifactStore
	history   store.HistoryRepository
	clipboard Clipboard

	holder *ResultHolder

	mu    sync.Mutex
	state models.SubmissionState

	journalWG sync.WaitGroup

	logger *logger.Logger
}

// NewSubmissionController wires the controller. history may be nil, in
// which case round trips are not journaled.
func NewSubmissionController(
	transformAdapter adapter.TransformAdapter,
	artifacts store.ArtifactStore,
	history store.HistoryRepository,
	clipboard Clipboard,
	logger *logger.Logger,
) SubmissionController {
	return &submissionController{
		adapter:   transformAdapter,
		artifacts: artifacts,
		history:   history,
		clipboard: clipboard,
		holder:    NewResultHolder(),
		state:     models.SubmissionIdle,
		logger:    logger,
	}
}

func (c *submissionController) Submit(ctx context.Context, snapshot models.FormSnapshot) (models.SubmissionResult, error) {
	c.mu.Lock()
	if c.state.Busy() {
		c.mu.Unlock()
		return models.SubmissionResult{}, ErrSubmissionInFlight
	}
	c.state = models.SubmissionSubmitting
	c.mu.Unlock()

	c.holder.Clear()

	var result models.SubmissionResult
	resp, err := c.adapter.Transform(ctx, snapshot)
	if err != nil {
		c.logger.Err(err).Str("func", "*submissionController.Submit").
			Str("cipher", snapshot.CipherID.String()).
			Msg("transform round trip failed")
		result = models.FailedSubmission(err)
	} else {
		result = models.NewSubmissionResult(resp)
	}

	c.holder.Set(result)

	c.mu.Lock()
	if result.Success {
		c.state = models.SubmissionSucceeded
	} else {
		c.state = models.SubmissionFailed
	}
	c.mu.Unlock()

	if c.history != nil {
		c.journalWG.Add(1)
		go func() {
			defer c.journalWG.Done()
			c.journal(context.WithoutCancel(ctx), snapshot, result)
		}()
	}

	return result, nil
}

// Wait blocks until every queued history write has finished.
func (c *submissionController) Wait() {
	c.journalWG.Wait()
}

// journal records the round trip. Failures are logged only.
func (c *submissionController) journal(ctx context.Context, snapshot models.FormSnapshot, result models.SubmissionResult) {
	entry := models.HistoryEntry{
		CipherID:  snapshot.CipherID,
		Operation: snapshot.Operation,
		Mode:      snapshot.Mode.String(),
		Success:   result.Success,
		Filename:  result.Filename,
		Size:      result.Size,
		Error:     result.ErrorMessage,
	}

	if result.Success {
		digest, err := crypto.Fingerprint(result.Payload)
		if err != nil {
			c.logger.Debug().Err(err).Str("func", "*submissionController.journal").
				Msg("result not fingerprinted")
		}
		entry.Digest = digest
	}

	if _, err := c.history.Save(ctx, entry); err != nil {
		c.logger.Warn().Err(err).Str("func", "*submissionController.journal").
			Msg("failed to save history entry")
	}
}

func (c *submissionController) Download(ctx context.Context) (string, error) {
	result, ok := c.holder.Get()
	if !ok {
		return "", ErrNoResult
	}

	data, err := c.adapter.Download(ctx, result.Payload, result.Filename)
	if err != nil {
		return "", fmt.Errorf("download result: %w", err)
	}

	path, err := c.artifacts.Save(ctx, result.Filename, data)
	if err != nil {
		return "", fmt.Errorf("save result: %w", err)
	}

	c.logger.Info().Str("func", "*submissionController.Download").
		Str("path", path).
		Msg("result downloaded")

	return path, nil
}

func (c *submissionController) Copy() error {
	result, ok := c.holder.Get()
	if !ok {
		return ErrNoResult
	}

	if err := c.clipboard.WriteText(result.Payload); err != nil {
		return fmt.Errorf("copy result: %w", err)
	}
	return nil
}

// Reset clears the held artifact. A submission that is still outstanding
// keeps the controller busy until it completes.
func (c *submissionController) Reset() {
	c.holder.Clear()

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.state.Busy() {
		c.state = models.SubmissionIdle
	}
}

func (c *submissionController) State() models.SubmissionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *submissionController) Result() (models.SubmissionResult, bool) {
	return c.holder.Get()
}
