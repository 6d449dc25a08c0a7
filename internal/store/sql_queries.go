// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-matrix-client/models"
)

const (
	syncStateTable = "sync_state"
	eventsTable    = "events"
)

var eventColumns = []string{
	"event_id",
	"room_id",
	"sender",
	"type",
	"msgtype",
	"body",
	"content",
	"origin_server_ts",
}

// sqlite uses ? placeholders
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildSelectNextBatchQuery(userID string) (string, []any, error) {
	return psql.
		Select("next_batch").
		From(syncStateTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildUpsertNextBatchQuery(userID, nextBatch string, now time.Time) (string, []any, error) {
	return psql.
		Insert(syncStateTable).
		Columns("user_id", "next_batch", "updated_at").
		Values(userID, nextBatch, now).
		Suffix("ON CONFLICT(user_id) DO UPDATE SET next_batch = excluded.next_batch, updated_at = excluded.updated_at").
		ToSql()
}

func buildInsertEventsQuery(events ...models.MessageEvent) (string, []any, error) {
	query := psql.
		Insert(eventsTable).
		Columns(eventColumns...)

	for _, e := range events {
		query = query.Values(
			e.EventID,
			e.RoomID,
			e.Sender,
			e.Type,
			e.MsgType,
			e.Body,
			[]byte(e.Content),
			e.OriginServerTS.UTC(),
		)
	}

	return query.
		Suffix("ON CONFLICT(event_id) DO NOTHING").
		ToSql()
}

func buildSelectRecentEventsQuery(roomID string, limit uint64) (string, []any, error) {
	return psql.
		Select(eventColumns...).
		From(eventsTable).
		Where(sq.Eq{"room_id": roomID}).
		OrderBy("origin_server_ts DESC", "received_at DESC").
		Limit(limit).
		ToSql()
}
