// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-cipher-desk client. It aggregates all sub-configurations and is
// populated by merging values from defaults, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the transform service address and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the history database and download directory settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Catalog holds the cipher lists normally injected by the host page.
	Catalog Catalog `envPrefix:"CATALOG_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// UI holds optional layout switches of the terminal UI.
	UI UI `envPrefix:"UI_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds settings of the outbound connection to the transform
// service.
type Adapter struct {
	// HTTPAddress is the base address of the transform service, either
	// "host:port" or a full URL (e.g. "http://localhost:5000").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single transform or download round trip.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the local persistence settings.
type Storage struct {
	// DB holds the history journal database settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the download directory settings.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the SQLite history journal.
type DB struct {
	// DSN is the SQLite database file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Files holds file-system settings for downloaded artifacts.
type Files struct {
	// DownloadDir is the directory downloaded results are written to.
	// Env: STORAGE_FILES_DOWNLOAD_DIR
	DownloadDir string `env:"DOWNLOAD_DIR"`
}

// Catalog holds the two cipher lists that classify the catalog. Empty lists
// fall back to the built-in catalog.
type Catalog struct {
	// LettersOnly lists ciphers restricted to A–Z input.
	// Env: CATALOG_LETTERS_ONLY (comma separated)
	LettersOnly []string `env:"LETTERS_ONLY" envSeparator:","`

	// BinaryCapable lists ciphers that accept arbitrary bytes.
	// Env: CATALOG_BINARY_CAPABLE (comma separated)
	BinaryCapable []string `env:"BINARY_CAPABLE" envSeparator:","`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// HistoryRetention is how long history entries are kept.
	// Env: WORKERS_HISTORY_RETENTION
	HistoryRetention time.Duration `env:"HISTORY_RETENTION"`

	// PruneInterval is how often expired history entries are removed.
	// Env: WORKERS_PRUNE_INTERVAL
	PruneInterval time.Duration `env:"PRUNE_INTERVAL"`
}

// UI holds layout switches. Hidden panes are simply not bound.
type UI struct {
	// HidePreview removes the digraph preview pane.
	// Env: UI_HIDE_PREVIEW
	HidePreview bool `env:"HIDE_PREVIEW"`

	// HideHistory removes the history pane.
	// Env: UI_HIDE_HISTORY
	HideHistory bool `env:"HIDE_HISTORY"`
}

// defaultConfig returns the values used when no source sets a field.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    "localhost:5000",
			RequestTimeout: 30 * time.Second,
		},
		Storage: Storage{
			DB:    DB{DSN: "cipher-desk.db"},
			Files: Files{DownloadDir: "downloads"},
		},
		Workers: Workers{
			HistoryRetention: 30 * 24 * time.Hour,
			PruneInterval:    time.Hour,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
