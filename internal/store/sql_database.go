// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	"github.com/MKhiriev/go-matrix-client/internal/logger"
	"github.com/MKhiriev/go-matrix-client/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies the migration set named by dir (migrations.StateDir or
// migrations.CacheDir).
func (db *DB) Migrate(dir string) error {
	return migrations.Migrate(db.DB, dir)
}
