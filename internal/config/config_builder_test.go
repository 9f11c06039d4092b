package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceOverrides verifies that a later non-zero field wins
// over the same field from an earlier source.
func TestBuild_LaterSourceOverrides(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{
		Adapter: Adapter{HTTPAddress: "127.0.0.1:9000"},
	})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout, "untouched default must survive")
}

func TestBuild_ZeroFieldsDoNotOverride(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "first.db"}}},
		&StructuredConfig{Storage: Storage{Files: Files{DownloadDir: "out"}}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "first.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "out", cfg.Storage.Files.DownloadDir)
}

func TestBuild_NegativeDurationRejected(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Workers: Workers{PruneInterval: -time.Second},
	})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidWorkerConfigs)
}

// ── withFlags / withJSON ──────────────────────────────────────────────────────

func TestWithFlags_InvalidFlagSetsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-unknown-flag"})
	assert.Error(t, b.err)
}

func TestWithJSON_NotSpecified_NoConfigAdded(t *testing.T) {
	b := newConfigBuilder().withDefaults().withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/cfg.json"})

	b = b.withJSON()
	assert.Error(t, b.err)
}

// TestFullChain_JSONWinsOverFlags verifies the priority order
// defaults < flags < JSON.
func TestFullChain_JSONWinsOverFlags(t *testing.T) {
	clearEnvVars(t)

	path := writeTempJSONConfig(t, map[string]any{
		"adapter": map[string]any{"http_address": "http://cipher.example:5000"},
		"catalog": map[string]any{"letters_only": []string{"vigenere"}},
	})

	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags([]string{"-a", "127.0.0.1:7000", "-d", "flags.db", "-c", path}).
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, "http://cipher.example:5000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "flags.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "downloads", cfg.Storage.Files.DownloadDir)
	assert.Equal(t, []string{"vigenere"}, cfg.Catalog.LettersOnly)
	assert.Equal(t, time.Hour, cfg.Workers.PruneInterval)
}

// ── client view ───────────────────────────────────────────────────────────────

func TestNewClientConfig_FromDefaults(t *testing.T) {
	clientCfg, err := newClientConfig(defaultConfig())
	require.NoError(t, err)

	assert.Equal(t, "localhost:5000", clientCfg.Adapter.HTTPAddress)
	assert.Equal(t, "cipher-desk.db", clientCfg.Storage.DB.DSN)
	assert.Nil(t, clientCfg.Catalog.LettersOnly)
	assert.True(t, clientCfg.UI.ShowPreview)
	assert.True(t, clientCfg.UI.ShowHistory)
}

func TestNewClientConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *StructuredConfig)
		wantErr error
	}{
		{
			name:    "missing address",
			mutate:  func(c *StructuredConfig) { c.Adapter.HTTPAddress = "" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "missing dsn",
			mutate:  func(c *StructuredConfig) { c.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing download dir",
			mutate:  func(c *StructuredConfig) { c.Storage.Files.DownloadDir = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "zero prune interval",
			mutate:  func(c *StructuredConfig) { c.Workers.PruneInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			_, err := newClientConfig(cfg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewClientConfig_CatalogAndUI(t *testing.T) {
	cfg := defaultConfig()
	cfg.Catalog.LettersOnly = []string{"vigenere", "playfair"}
	cfg.Catalog.BinaryCapable = []string{"super"}
	cfg.UI.HideHistory = true

	clientCfg, err := newClientConfig(cfg)
	require.NoError(t, err)

	require.Len(t, clientCfg.Catalog.LettersOnly, 2)
	assert.Equal(t, "playfair", clientCfg.Catalog.LettersOnly[1].String())
	assert.Equal(t, "super", clientCfg.Catalog.BinaryCapable[0].String())
	assert.True(t, clientCfg.UI.ShowPreview)
	assert.False(t, clientCfg.UI.ShowHistory)
}
