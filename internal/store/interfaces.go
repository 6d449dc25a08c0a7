// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-matrix-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SessionStore persists the single session of a storage location.
type SessionStore interface {
	// Load returns the saved session, [ErrSessionNotFound] when none has
	// been saved, or [ErrCorruptSession] when the file cannot be decoded.
	Load(ctx context.Context) (models.Session, error)

	// Save atomically replaces the saved session. Readers see either the
	// previous session or the new one, never a partial file.
	Save(ctx context.Context, session models.Session) error
}

// SyncStateRepository keeps the /sync resume token per user.
type SyncStateRepository interface {
	// NextBatch returns the last persisted token, or "" when the user has
	// never completed a sync.
	NextBatch(ctx context.Context, userID string) (string, error)
	SaveNextBatch(ctx context.Context, userID, nextBatch string) error
}

// EventCacheRepository caches received message events.
type EventCacheRepository interface {
	// SaveEvents stores events; already cached event IDs are ignored.
	SaveEvents(ctx context.Context, events ...models.MessageEvent) error
	// RecentEvents returns up to limit newest events of a room, oldest first.
	RecentEvents(ctx context.Context, roomID string, limit uint64) ([]models.MessageEvent, error)
}
