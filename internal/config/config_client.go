package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-cipher-desk/models"
)

// ClientAdapter holds network settings used by the transform adapter.
type ClientAdapter struct {
	// HTTPAddress is the transform service address.
	HTTPAddress string
	// RequestTimeout is the timeout for a single round trip.
	RequestTimeout time.Duration
}

// ClientDB contains history database settings.
type ClientDB struct {
	// DSN is the SQLite database file path.
	DSN string
}

// ClientStorage groups client storage settings.
type ClientStorage struct {
	// DB holds history database settings.
	DB ClientDB
	// DownloadDir is where downloaded results are written.
	DownloadDir string
}

// ClientCatalog holds the typed cipher lists.
type ClientCatalog struct {
	LettersOnly   []models.CipherID
	BinaryCapable []models.CipherID
}

// ClientWorkers contains background job settings.
type ClientWorkers struct {
	// HistoryRetention is the maximum age of history entries.
	HistoryRetention time.Duration
	// PruneInterval defines how often the prune job runs.
	PruneInterval time.Duration
}

// ClientUI lists which optional panes are bound.
type ClientUI struct {
	ShowPreview bool
	ShowHistory bool
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains transform service settings.
	Adapter ClientAdapter
	// Storage contains local storage settings.
	Storage ClientStorage
	// Catalog contains the cipher classification lists.
	Catalog ClientCatalog
	// Workers contains background job settings.
	Workers ClientWorkers
	// UI contains layout switches.
	UI ClientUI
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB:          ClientDB{DSN: cfg.Storage.DB.DSN},
			DownloadDir: cfg.Storage.Files.DownloadDir,
		},
		Catalog: ClientCatalog{
			LettersOnly:   toCipherIDs(cfg.Catalog.LettersOnly),
			BinaryCapable: toCipherIDs(cfg.Catalog.BinaryCapable),
		},
		Workers: ClientWorkers{
			HistoryRetention: cfg.Workers.HistoryRetention,
			PruneInterval:    cfg.Workers.PruneInterval,
		},
		UI: ClientUI{
			ShowPreview: !cfg.UI.HidePreview,
			ShowHistory: !cfg.UI.HideHistory,
		},
	}

	return clientCfg, clientCfg.validate()
}

func toCipherIDs(names []string) []models.CipherID {
	if len(names) == 0 {
		return nil
	}
	ids := make([]models.CipherID, 0, len(names))
	for _, n := range names {
		ids = append(ids, models.CipherID(n))
	}
	return ids
}
