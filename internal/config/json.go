package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			DownloadDir string `json:"download_dir"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Catalog struct {
		LettersOnly   []string `json:"letters_only"`
		BinaryCapable []string `json:"binary_capable"`
	} `json:"catalog,omitempty"`

	Workers struct {
		HistoryRetention Duration `json:"history_retention"`
		PruneInterval    Duration `json:"prune_interval"`
	} `json:"workers,omitempty"`

	UI struct {
		HidePreview bool `json:"hide_preview"`
		HideHistory bool `json:"hide_history"`
	} `json:"ui,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				DownloadDir: jsonCfg.Storage.Files.DownloadDir,
			},
		},
		Catalog: Catalog{
			LettersOnly:   jsonCfg.Catalog.LettersOnly,
			BinaryCapable: jsonCfg.Catalog.BinaryCapable,
		},
		Workers: Workers{
			HistoryRetention: time.Duration(jsonCfg.Workers.HistoryRetention),
			PruneInterval:    time.Duration(jsonCfg.Workers.PruneInterval),
		},
		UI: UI{
			HidePreview: jsonCfg.UI.HidePreview,
			HideHistory: jsonCfg.UI.HideHistory,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
