// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// StructuredConfig is the top-level configuration container for the
// go-pydt-client application. It aggregates all sub-configurations and is
// populated by merging values from command-line flags, environment
// variables, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the remote PYDT API settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local roster database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// Transfer holds the save directory and watch timing settings.
	Transfer Transfer `envPrefix:"TRANSFER_"`

	// Cache holds the roster profile cache settings.
	Cache Cache `envPrefix:"CACHE_"`

	// Log holds log sink settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// DataDir is the directory holding the roster database and the log file.
	// Env: APP_DATA_DIR
	DataDir string `env:"DATA_DIR"`
}

// Adapter holds settings of the remote API client.
type Adapter struct {
	// BaseURL is the PYDT API base URL.
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds every API call (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// TransferTimeout bounds save downloads and uploads (e.g. "5m").
	// Env: ADAPTER_TRANSFER_TIMEOUT
	TransferTimeout time.Duration `env:"TRANSFER_TIMEOUT"`
}

// Storage groups the configuration for local persistence.
type Storage struct {
	// DB holds the roster database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite roster database.
type DB struct {
	// DSN is the SQLite database file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// PollInterval is the delay between two poll cycles (e.g. "60s").
	// Env: WORKERS_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`
}

// Transfer holds save file placement and watch settings.
type Transfer struct {
	// SaveDir is the hotseat save directory of the game.
	// Env: TRANSFER_SAVE_DIR
	SaveDir string `env:"SAVE_DIR"`

	// SaveExtension is the save file extension including the dot.
	// Env: TRANSFER_SAVE_EXTENSION
	SaveExtension string `env:"SAVE_EXTENSION"`

	// StabilityDelay is the quiet period after the last write to a new save
	// before it is treated as complete.
	// Env: TRANSFER_STABILITY_DELAY
	StabilityDelay time.Duration `env:"STABILITY_DELAY"`

	// SettleDelay is the extra wait between detecting a save and reading it.
	// Env: TRANSFER_SETTLE_DELAY
	SettleDelay time.Duration `env:"SETTLE_DELAY"`
}

// Cache holds the roster profile cache settings.
type Cache struct {
	// ProfilesTTL is how long the profile cache stays fresh (e.g. "180m").
	// Env: CACHE_PROFILES_TTL
	ProfilesTTL time.Duration `env:"PROFILES_TTL"`
}

// Log holds log sink settings.
type Log struct {
	// File is the path of the JSON log file.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// RingSize is the number of entries kept in memory for the log view.
	// Env: LOG_RING_SIZE
	RingSize int `env:"RING_SIZE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first non-zero value wins):
//  1. Command-line flags (flagCfg, read by [FlagsFrom])
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(flagCfg *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flagCfg).
		withEnv().
		withJSON().
		withDefaults().
		build()
}

// Load reads configuration from fs, which must already have been parsed
// with the flags registered by [BindFlags].
func Load(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return GetStructuredConfig(FlagsFrom(fs))
}
