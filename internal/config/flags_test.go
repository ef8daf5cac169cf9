// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagsFrom_ParsedValues(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)

	err := fs.Parse([]string{
		"-c", "/etc/pydt.json",
		"--base-url", "https://api.example.com",
		"--poll-interval", "45s",
		"--save-dir", "/saves",
		"--save-ext", ".Civ6Save",
		"--profiles-ttl", "2h",
		"--db", "/tmp/roster.db",
	})
	require.NoError(t, err)

	cfg := FlagsFrom(fs)
	assert.Equal(t, "/etc/pydt.json", cfg.JSONFilePath)
	assert.Equal(t, "https://api.example.com", cfg.Adapter.BaseURL)
	assert.Equal(t, 45*time.Second, cfg.Workers.PollInterval)
	assert.Equal(t, "/saves", cfg.Transfer.SaveDir)
	assert.Equal(t, ".Civ6Save", cfg.Transfer.SaveExtension)
	assert.Equal(t, 2*time.Hour, cfg.Cache.ProfilesTTL)
	assert.Equal(t, "/tmp/roster.db", cfg.Storage.DB.DSN)
}

// TestFlagsFrom_UnsetFlagsAreZero verifies that defaults do not leak from
// flags into the merge.
func TestFlagsFrom_UnsetFlagsAreZero(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)
	require.NoError(t, fs.Parse(nil))

	assert.Equal(t, &StructuredConfig{}, FlagsFrom(fs))
}

func TestFlagsFrom_NilOrForeignFlagSet(t *testing.T) {
	assert.Equal(t, &StructuredConfig{}, FlagsFrom(nil))

	fs := pflag.NewFlagSet("other", pflag.ContinueOnError)
	fs.String("unrelated", "x", "")
	assert.Equal(t, &StructuredConfig{}, FlagsFrom(fs))
}

func TestFlagsFrom_InvalidDurationRejectedByParse(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)
	assert.Error(t, fs.Parse([]string{"--poll-interval", "often"}))
}
