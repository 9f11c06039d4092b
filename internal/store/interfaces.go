// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store provides local persistence for the client: the SQLite
// history journal and the directory downloaded artifacts are written to.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-cipher-desk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// HistoryRepository is the journal of completed transform round trips.
type HistoryRepository interface {
	// Save appends entry. A missing ID or CreatedAt is filled in and the
	// stored entry is returned.
	Save(ctx context.Context, entry models.HistoryEntry) (models.HistoryEntry, error)
	// List returns at most limit entries, newest first.
	List(ctx context.Context, limit int) ([]models.HistoryEntry, error)
	// Prune removes entries created before olderThan and returns how many
	// were removed.
	Prune(ctx context.Context, olderThan time.Time) (int64, error)
}

// ArtifactStore writes downloaded results to the local file system.
type ArtifactStore interface {
	// Save writes data under the base name of filename and returns the
	// path it was written to. Existing files are never overwritten.
	Save(ctx context.Context, filename string, data []byte) (string, error)
}

// IDGenerator produces identifiers for new history entries.
type IDGenerator interface {
	Generate() string
}
