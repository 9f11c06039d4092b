// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the client use cases: the submission controller
// that owns the request/result lifecycle, the history journal reader, and
// the background job that keeps the journal bounded.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-cipher-desk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Clipboard receives copied results.
type Clipboard interface {
	// WriteText replaces the clipboard content with text.
	WriteText(text string) error
}

// SubmissionController owns the submission lifecycle and the result
// artifact produced by the last successful round trip.
type SubmissionController interface {
	// Submit sends snapshot to the transform service and projects the
	// outcome. The round trip is journaled in the background. Remote and transport failures are reported through the
	// returned result; the error is non-nil only when the submission was
	// not attempted (ErrSubmissionInFlight).
	Submit(ctx context.Context, snapshot models.FormSnapshot) (models.SubmissionResult, error)

	// Download fetches the held artifact from the service and writes it to
	// the download directory. Returns the written path, or ErrNoResult
	// without making a request when nothing is held.
	Download(ctx context.Context) (string, error)

	// Copy writes the held base64 payload to the clipboard. Returns
	// ErrNoResult when nothing is held.
	Copy() error

	// Reset clears the held artifact and returns the controller to idle.
	Reset()

	// State returns the current lifecycle position.
	State() models.SubmissionState

	// Result returns the held artifact, if any.
	Result() (models.SubmissionResult, bool)

	// Wait blocks until the history writes queued by Submit have finished.
	Wait()
}

// HistoryService reads the local journal of completed round trips.
type HistoryService interface {
	// Recent returns at most limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]models.HistoryEntry, error)
}

// HistoryPruneJob periodically removes old journal entries.
type HistoryPruneJob interface {
	// Start launches the background loop. Entries older than retention are
	// removed every interval.
	Start(ctx context.Context, retention, interval time.Duration)
	// Stop cancels the loop and blocks until it has exited.
	Stop()
}
