// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON decoding.
// Durations are accepted as strings ("30s") or as nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		DataDir string `json:"data_dir"`
	} `json:"app,omitempty"`

	Adapter struct {
		BaseURL         string   `json:"base_url"`
		RequestTimeout  Duration `json:"request_timeout"`
		TransferTimeout Duration `json:"transfer_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		PollInterval Duration `json:"poll_interval"`
	} `json:"workers,omitempty"`

	Transfer struct {
		SaveDir        string   `json:"save_dir"`
		SaveExtension  string   `json:"save_extension"`
		StabilityDelay Duration `json:"stability_delay"`
		SettleDelay    Duration `json:"settle_delay"`
	} `json:"transfer,omitempty"`

	Cache struct {
		ProfilesTTL Duration `json:"profiles_ttl"`
	} `json:"cache,omitempty"`

	Log struct {
		File     string `json:"file"`
		RingSize int    `json:"ring_size"`
	} `json:"log,omitempty"`
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
		App: App{
			DataDir: jsonCfg.App.DataDir,
		},
		Adapter: Adapter{
			BaseURL:         jsonCfg.Adapter.BaseURL,
			RequestTimeout:  time.Duration(jsonCfg.Adapter.RequestTimeout),
			TransferTimeout: time.Duration(jsonCfg.Adapter.TransferTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Workers: Workers{
			PollInterval: time.Duration(jsonCfg.Workers.PollInterval),
		},
		Transfer: Transfer{
			SaveDir:        jsonCfg.Transfer.SaveDir,
			SaveExtension:  jsonCfg.Transfer.SaveExtension,
			StabilityDelay: time.Duration(jsonCfg.Transfer.StabilityDelay),
			SettleDelay:    time.Duration(jsonCfg.Transfer.SettleDelay),
		},
		Cache: Cache{
			ProfilesTTL: time.Duration(jsonCfg.Cache.ProfilesTTL),
		},
		Log: Log{
			File:     jsonCfg.Log.File,
			RingSize: jsonCfg.Log.RingSize,
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
