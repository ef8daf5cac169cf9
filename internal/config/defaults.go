// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// Built-in defaults, used for every field no other source sets.
const (
	DefaultBaseURL         = "https://api.playyourdamnturn.com"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultTransferTimeout = 5 * time.Minute
	DefaultPollInterval    = 60 * time.Second
	DefaultProfilesTTL     = 180 * time.Minute
	DefaultSaveExtension   = ".Civ6Save"
	DefaultStabilityDelay  = 2 * time.Second
	DefaultSettleDelay     = time.Second
	DefaultRingSize        = 500

	appDirName = "pydt-client"
	dbFileName = "roster.db"
	logName    = "client.log"
)

const civDir = "Sid Meier's Civilization VI"

func defaultConfig() (*StructuredConfig, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("error resolving home directory: %w", err)
	}

	dataDir, err := os.UserConfigDir()
	if err != nil {
		dataDir = filepath.Join(home, ".config")
	}
	dataDir = filepath.Join(dataDir, appDirName)

	return &StructuredConfig{
		App: App{DataDir: dataDir},
		Adapter: Adapter{
			BaseURL:         DefaultBaseURL,
			RequestTimeout:  DefaultRequestTimeout,
			TransferTimeout: DefaultTransferTimeout,
		},
		Storage: Storage{DB: DB{DSN: filepath.Join(dataDir, dbFileName)}},
		Workers: Workers{PollInterval: DefaultPollInterval},
		Transfer: Transfer{
			SaveDir:        DefaultSaveDir(runtime.GOOS, home),
			SaveExtension:  DefaultSaveExtension,
			StabilityDelay: DefaultStabilityDelay,
			SettleDelay:    DefaultSettleDelay,
		},
		Cache: Cache{ProfilesTTL: DefaultProfilesTTL},
		Log: Log{
			File:     filepath.Join(dataDir, logName),
			RingSize: DefaultRingSize,
		},
	}, nil
}

// DefaultSaveDir returns the hotseat save directory the game uses on goos.
func DefaultSaveDir(goos, home string) string {
	switch goos {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", civDir, civDir, "Saves", "Hotseat")
	case "windows":
		return filepath.Join(home, "Documents", "My Games", civDir, "Saves", "Hotseat")
	default:
		return filepath.Join(home, ".local", "share", "aspyr-media", civDir, "Saves", "Hotseat")
	}
}
