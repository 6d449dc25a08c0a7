// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-matrix-client/internal/logger"
)

type syncStateRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

func NewSyncStateRepository(db *DB, logger *logger.Logger) SyncStateRepository {
	return &syncStateRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *syncStateRepository) NextBatch(ctx context.Context, userID string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectNextBatchQuery(userID)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var nextBatch string
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&nextBatch)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "syncStateRepository.NextBatch").
			Str("user_id", userID).
			Msg("failed to query next batch token")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nextBatch, nil
}

func (r *syncStateRepository) SaveNextBatch(ctx context.Context, userID, nextBatch string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertNextBatchQuery(userID, nextBatch, r.now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "syncStateRepository.SaveNextBatch").
			Str("user_id", userID).
			Msg("failed to upsert next batch token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
