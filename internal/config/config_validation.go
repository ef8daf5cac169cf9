// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.TransferTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	if u, err := url.Parse(cfg.Adapter.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.PollInterval <= 0 || cfg.Cache.ProfilesTTL <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Transfer.SaveDir == "" || !strings.HasPrefix(cfg.Transfer.SaveExtension, ".") ||
		cfg.Transfer.StabilityDelay < 0 || cfg.Transfer.SettleDelay < 0 {
		return ErrInvalidTransferConfigs
	}

	if cfg.Log.RingSize < 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}
