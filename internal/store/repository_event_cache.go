// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-matrix-client/internal/logger"
	"github.com/MKhiriev/go-matrix-client/models"
)

type eventCacheRepository struct {
	*DB
	logger *logger.Logger
}

func NewEventCacheRepository(db *DB, logger *logger.Logger) EventCacheRepository {
	return &eventCacheRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *eventCacheRepository) SaveEvents(ctx context.Context, events ...models.MessageEvent) error {
	if len(events) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := buildInsertEventsQuery(events...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "eventCacheRepository.SaveEvents").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "eventCacheRepository.SaveEvents").
			Int("count", len(events)).
			Msg("failed to insert events")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "eventCacheRepository.SaveEvents").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *eventCacheRepository) RecentEvents(ctx context.Context, roomID string, limit uint64) ([]models.MessageEvent, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRecentEventsQuery(roomID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "eventCacheRepository.RecentEvents").
			Str("room_id", roomID).
			Msg("failed to query recent events")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var events []models.MessageEvent
	for rows.Next() {
		var (
			e       models.MessageEvent
			content []byte
		)
		if err := rows.Scan(
			&e.EventID,
			&e.RoomID,
			&e.Sender,
			&e.Type,
			&e.MsgType,
			&e.Body,
			&content,
			&e.OriginServerTS,
		); err != nil {
			log.Err(err).Str("func", "eventCacheRepository.RecentEvents").Msg("failed to scan event row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		e.Content = content
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	// newest first from the query; callers replay oldest first
	slices.Reverse(events)
	return events, nil
}
