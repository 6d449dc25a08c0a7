// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-matrix-client/internal/logger"
	"github.com/MKhiriev/go-matrix-client/migrations"
)

// ClientStorages groups everything persisted under one [StorageLocation].
type ClientStorages struct {
	Location StorageLocation

	// Sessions holds session.json.
	Sessions SessionStore

	// SyncState keeps the /sync resume token in state/state.db.
	SyncState SyncStateRepository

	// Events caches received message events in cache/events.db.
	Events EventCacheRepository

	dbs []*DB
}

// NewClientStorages initialises the client storage layer. It performs the
// following steps:
//  1. Creates the storage location and its sub-store directories.
//  2. Opens state/state.db and cache/events.db, creating the files if they
//     do not yet exist.
//  3. Runs pending schema migrations on both databases.
//
// Returns an error wrapping [ErrStorageUnwritable] if the location cannot be
// prepared.
func NewClientStorages(ctx context.Context, location StorageLocation, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("path", location.Root()).Msg("creating new storages...")

	if err := location.Prepare(); err != nil {
		return nil, err
	}

	storages := &ClientStorages{
		Location: location,
		Sessions: NewSessionFileStore(location.SessionFile(), logger),
	}

	stateDB, err := openMigrated(ctx, location.StateDB(), migrations.StateDir, logger)
	if err != nil {
		return nil, fmt.Errorf("state store: %w", err)
	}
	storages.dbs = append(storages.dbs, stateDB)

	cacheDB, err := openMigrated(ctx, location.CacheDB(), migrations.CacheDir, logger)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("event cache: %w", err)
	}
	storages.dbs = append(storages.dbs, cacheDB)

	storages.SyncState = NewSyncStateRepository(stateDB, logger)
	storages.Events = NewEventCacheRepository(cacheDB, logger)

	return storages, nil
}

func openMigrated(ctx context.Context, file, dir string, logger *logger.Logger) (*DB, error) {
	db, err := NewConnectSQLite(ctx, file, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(dir); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return db, nil
}

// Close closes the SQLite databases. The session file needs no closing.
func (s *ClientStorages) Close() error {
	var errs []error
	for _, db := range s.dbs {
		errs = append(errs, db.Close())
	}
	s.dbs = nil
	return errors.Join(errs...)
}
