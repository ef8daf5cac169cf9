// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every environment variable the client reads,
// e.g. PYDT_WORKERS_POLL_INTERVAL.
const EnvPrefix = "PYDT_"

// parseEnv populates cfg from PYDT_-prefixed environment variables. Fields
// are mapped via the `env` and `envPrefix` tags of [StructuredConfig].
func parseEnv(cfg any) error {
	err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
