// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// Flag names shared by every command.
const (
	FlagConfig          = "config"
	FlagDataDir         = "data-dir"
	FlagBaseURL         = "base-url"
	FlagRequestTimeout  = "request-timeout"
	FlagTransferTimeout = "transfer-timeout"
	FlagDSN             = "db"
	FlagPollInterval    = "poll-interval"
	FlagSaveDir         = "save-dir"
	FlagSaveExtension   = "save-ext"
	FlagStabilityDelay  = "stability-delay"
	FlagSettleDelay     = "settle-delay"
	FlagProfilesTTL     = "profiles-ttl"
	FlagLogFile         = "log-file"
)

// BindFlags registers all configuration flags on fs. Zero defaults are used
// on purpose so that an unset flag never shadows env, JSON or built-in
// defaults during the merge.
//
// Flags:
//
//	-c/--config          json file path with configs
//	--data-dir           directory for the roster database and logs
//	--base-url           PYDT API base URL
//	--request-timeout    timeout of API calls (e.g. "30s")
//	--transfer-timeout   timeout of save downloads/uploads (e.g. "5m")
//	--db                 roster database path
//	--poll-interval      delay between poll cycles (e.g. "60s")
//	--save-dir           hotseat save directory
//	--save-ext           save file extension (e.g. ".Civ6Save")
//	--stability-delay    quiet period before a new save is complete
//	--settle-delay       extra wait before reading a detected save
//	--profiles-ttl       profile cache lifetime (e.g. "180m")
//	--log-file           JSON log file path
func BindFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "JSON config file path")
	fs.String(FlagDataDir, "", "Directory for the roster database and logs")
	fs.String(FlagBaseURL, "", "PYDT API base URL")
	fs.Duration(FlagRequestTimeout, 0, "Timeout of API calls (e.g. 30s)")
	fs.Duration(FlagTransferTimeout, 0, "Timeout of save downloads and uploads (e.g. 5m)")
	fs.String(FlagDSN, "", "Roster database path")
	fs.Duration(FlagPollInterval, 0, "Delay between poll cycles (e.g. 60s)")
	fs.String(FlagSaveDir, "", "Hotseat save directory")
	fs.String(FlagSaveExtension, "", "Save file extension (e.g. .Civ6Save)")
	fs.Duration(FlagStabilityDelay, 0, "Quiet period before a new save is treated as complete")
	fs.Duration(FlagSettleDelay, 0, "Extra wait before reading a detected save")
	fs.Duration(FlagProfilesTTL, 0, "Profile cache lifetime (e.g. 180m)")
	fs.String(FlagLogFile, "", "JSON log file path")
}

// FlagsFrom reads the values of the flags registered by [BindFlags] from a
// parsed flag set. Flags missing from fs are left at their zero value.
func FlagsFrom(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}
	if fs == nil {
		return cfg
	}

	str := func(name string) string {
		v, _ := fs.GetString(name)
		return v
	}
	dur := func(name string) time.Duration {
		v, _ := fs.GetDuration(name)
		return v
	}

	cfg.JSONFilePath = str(FlagConfig)
	cfg.App.DataDir = str(FlagDataDir)
	cfg.Adapter.BaseURL = str(FlagBaseURL)
	cfg.Adapter.RequestTimeout = dur(FlagRequestTimeout)
	cfg.Adapter.TransferTimeout = dur(FlagTransferTimeout)
	cfg.Storage.DB.DSN = str(FlagDSN)
	cfg.Workers.PollInterval = dur(FlagPollInterval)
	cfg.Transfer.SaveDir = str(FlagSaveDir)
	cfg.Transfer.SaveExtension = str(FlagSaveExtension)
	cfg.Transfer.StabilityDelay = dur(FlagStabilityDelay)
	cfg.Transfer.SettleDelay = dur(FlagSettleDelay)
	cfg.Cache.ProfilesTTL = dur(FlagProfilesTTL)
	cfg.Log.File = str(FlagLogFile)

	return cfg
}
