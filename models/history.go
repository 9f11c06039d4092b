// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// HistoryEntry records one completed transform round trip in the local
// journal. Payloads are never stored, only what is needed to list past jobs.
type HistoryEntry struct {
	ID        string    `json:"id"`
	CipherID  CipherID  `json:"cipher_id"`
	Operation Operation `json:"operation"`
	Mode      string    `json:"mode"`
	Success   bool      `json:"success"`
	Filename  string    `json:"filename,omitempty"`
	Size      int64     `json:"size"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	// Digest is the BLAKE2b-256 fingerprint of the decoded result, set for
	// successful jobs only.
	Digest string `json:"digest,omitempty"`
}
