// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-pydt-client/internal/logger"
	"github.com/MKhiriev/go-pydt-client/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate brings the roster schema up to date.
func (db *DB) Migrate(ctx context.Context) error {
	version, err := migrations.Migrate(ctx, db.DB)
	if err != nil {
		return err
	}
	db.logger.Debug().Int64("schema_version", version).Msg("roster schema migrated")
	return nil
}
