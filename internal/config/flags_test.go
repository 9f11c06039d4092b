package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 5000}, expected: "localhost:5000"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		expected    NetAddress
	}{
		{name: "localhost", input: "localhost:5000", expected: NetAddress{Host: "localhost", Port: 5000}},
		{name: "ipv4", input: "10.0.0.1:80", expected: NetAddress{Host: "10.0.0.1", Port: 80}},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "non numeric port", input: "localhost:http", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "hostname is not an IP", input: "example.com:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, a)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "127.0.0.1:5001",
		"-request-timeout", "5s",
		"-d", "h.db",
		"-download-dir", "/tmp/out",
		"-letters-only", "vigenere, playfair,",
		"-binary-capable", "super",
		"-history-retention", "24h",
		"-prune-interval", "30m",
		"-hide-preview",
		"-hide-history",
		"-config", "cfg.json",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:5001", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "h.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/out", cfg.Storage.Files.DownloadDir)
	assert.Equal(t, []string{"vigenere", "playfair"}, cfg.Catalog.LettersOnly)
	assert.Equal(t, []string{"super"}, cfg.Catalog.BinaryCapable)
	assert.Equal(t, 24*time.Hour, cfg.Workers.HistoryRetention)
	assert.Equal(t, 30*time.Minute, cfg.Workers.PruneInterval)
	assert.True(t, cfg.UI.HidePreview)
	assert.True(t, cfg.UI.HideHistory)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_BadAddress(t *testing.T) {
	_, err := ParseFlags([]string{"-a", "nope"})
	assert.Error(t, err)
}
