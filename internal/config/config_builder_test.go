// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			BaseURL:         "https://api.example.com",
			RequestTimeout:  time.Second,
			TransferTimeout: time.Minute,
		},
		Storage:  Storage{DB: DB{DSN: "/tmp/roster.db"}},
		Workers:  Workers{PollInterval: time.Minute},
		Transfer: Transfer{SaveDir: "/tmp/saves", SaveExtension: ".Civ6Save"},
		Cache:    Cache{ProfilesTTL: time.Hour},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that a builder without sources fails
// validation.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that earlier configs take priority and
// later ones only fill zero fields.
func TestBuild_FirstSourceWins(t *testing.T) {
	first := &StructuredConfig{Adapter: Adapter{BaseURL: "https://flags.example.com"}}
	second := validConfig()
	second.Workers.PollInterval = 5 * time.Second

	b := newConfigBuilder()
	b.configs = append(b.configs, first, second)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "https://flags.example.com", cfg.Adapter.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Workers.PollInterval)
	assert.Equal(t, "/tmp/roster.db", cfg.Storage.DB.DSN)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_AppendsOneConfig(t *testing.T) {
	clearEnvVars(t)
	b := newConfigBuilder().withEnv()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{"WORKERS_POLL_INTERVAL": "15s"})

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, 15*time.Second, b.configs[0].Workers.PollInterval)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{"WORKERS_POLL_INTERVAL": "soon"})

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_NilIsSkipped(t *testing.T) {
	b := newConfigBuilder().withFlags(nil)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"adapter": map[string]any{"base_url": "https://json.example.com"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "https://json.example.com", b.configs[1].Adapter.BaseURL)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})
	b.withJSON()

	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_UsesFirstPath verifies that the path of the highest-priority
// source is used.
func TestWithJSON_UsesFirstPath(t *testing.T) {
	first := writeTempJSONConfig(t, map[string]any{"log": map[string]any{"file": "first.log"}})
	second := writeTempJSONConfig(t, map[string]any{"log": map[string]any{"file": "second.log"}})

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: second},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "first.log", b.configs[2].Log.File)
}

// ── withDefaults / GetStructuredConfig ────────────────────────────────────────

func TestWithDefaults_FillsEverything(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)

	d := b.configs[0]
	assert.Equal(t, DefaultBaseURL, d.Adapter.BaseURL)
	assert.Equal(t, DefaultPollInterval, d.Workers.PollInterval)
	assert.Equal(t, DefaultProfilesTTL, d.Cache.ProfilesTTL)
	assert.Equal(t, DefaultSaveExtension, d.Transfer.SaveExtension)
	assert.Equal(t, DefaultRingSize, d.Log.RingSize)
	assert.NotEmpty(t, d.Storage.DB.DSN)
	assert.NotEmpty(t, d.Transfer.SaveDir)
}

func TestGetStructuredConfig_PrecedenceFlagsEnvJSONDefaults(t *testing.T) {
	clearEnvVars(t)
	path := writeTempJSONConfig(t, map[string]any{
		"adapter":  map[string]any{"base_url": "https://json.example.com", "request_timeout": "7s"},
		"workers":  map[string]any{"poll_interval": "20s"},
		"transfer": map[string]any{"save_dir": "/json/saves"},
	})
	setEnvVars(t, map[string]string{
		"CONFIG":                path,
		"WORKERS_POLL_INTERVAL": "10s",
		"TRANSFER_SAVE_DIR":     "/env/saves",
	})

	flags := &StructuredConfig{Transfer: Transfer{SaveDir: "/flag/saves"}}

	cfg, err := GetStructuredConfig(flags)
	require.NoError(t, err)

	assert.Equal(t, "/flag/saves", cfg.Transfer.SaveDir)
	assert.Equal(t, 10*time.Second, cfg.Workers.PollInterval)
	assert.Equal(t, "https://json.example.com", cfg.Adapter.BaseURL)
	assert.Equal(t, 7*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultTransferTimeout, cfg.Adapter.TransferTimeout)
	assert.Equal(t, DefaultProfilesTTL, cfg.Cache.ProfilesTTL)
}

func TestDefaultSaveDir(t *testing.T) {
	home := "/home/u"
	assert.Contains(t, DefaultSaveDir("darwin", home), "Application Support")
	assert.Contains(t, DefaultSaveDir("windows", home), "My Games")
	assert.Contains(t, DefaultSaveDir("linux", home), "aspyr-media")
	for _, goos := range []string{"darwin", "windows", "linux"} {
		assert.Contains(t, DefaultSaveDir(goos, home), "Hotseat")
	}
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(c *StructuredConfig) {}},
		{name: "empty dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "memory dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = ":memory:" }, wantErr: ErrInvalidStorageConfigs},
		{name: "relative base url", mutate: func(c *StructuredConfig) { c.Adapter.BaseURL = "api.example.com" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero request timeout", mutate: func(c *StructuredConfig) { c.Adapter.RequestTimeout = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero poll interval", mutate: func(c *StructuredConfig) { c.Workers.PollInterval = 0 }, wantErr: ErrInvalidWorkerConfigs},
		{name: "zero profiles ttl", mutate: func(c *StructuredConfig) { c.Cache.ProfilesTTL = 0 }, wantErr: ErrInvalidWorkerConfigs},
		{name: "extension without dot", mutate: func(c *StructuredConfig) { c.Transfer.SaveExtension = "Civ6Save" }, wantErr: ErrInvalidTransferConfigs},
		{name: "negative ring size", mutate: func(c *StructuredConfig) { c.Log.RingSize = -1 }, wantErr: ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)
			err := c.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
