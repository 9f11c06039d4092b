// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"ADAPTER_ADDRESS":         "localhost:5000",
		"ADAPTER_REQUEST_TIMEOUT": "15s",

		// Storage has nested prefixes: STORAGE_ + DB_ / FILES_
		"STORAGE_DB_DSN":             "/tmp/history.db",
		"STORAGE_FILES_DOWNLOAD_DIR": "/tmp/downloads",

		"CATALOG_LETTERS_ONLY":   "vigenere,playfair",
		"CATALOG_BINARY_CAPABLE": "super",

		"WORKERS_HISTORY_RETENTION": "48h",
		"WORKERS_PRUNE_INTERVAL":    "10m",

		"UI_HIDE_PREVIEW": "true",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "localhost:5000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "/tmp/history.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/downloads", cfg.Storage.Files.DownloadDir)

	assert.Equal(t, []string{"vigenere", "playfair"}, cfg.Catalog.LettersOnly)
	assert.Equal(t, []string{"super"}, cfg.Catalog.BinaryCapable)

	assert.Equal(t, 48*time.Hour, cfg.Workers.HistoryRetention)
	assert.Equal(t, 10*time.Minute, cfg.Workers.PruneInterval)

	assert.True(t, cfg.UI.HidePreview)
	assert.False(t, cfg.UI.HideHistory)
}

func TestParseEnv_Empty(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"ADAPTER_REQUEST_TIMEOUT": "soon"})

	err := parseEnv(&StructuredConfig{})
	assert.Error(t, err)
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"ADAPTER_ADDRESS",
		"ADAPTER_REQUEST_TIMEOUT",

		"STORAGE_DB_DSN",
		"STORAGE_FILES_DOWNLOAD_DIR",

		"CATALOG_LETTERS_ONLY",
		"CATALOG_BINARY_CAPABLE",

		"WORKERS_HISTORY_RETENTION",
		"WORKERS_PRUNE_INTERVAL",

		"UI_HIDE_PREVIEW",
		"UI_HIDE_HISTORY",
	}
	for _, k := range keys {
		if v, ok := os.LookupEnv(k); ok {
			require.NoError(t, os.Unsetenv(k))
			t.Cleanup(func() { _ = os.Setenv(k, v) })
		}
	}
}
