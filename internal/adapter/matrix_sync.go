// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-matrix-client/internal/logger"
	"github.com/MKhiriev/go-matrix-client/models"
)

const maxRetryDelay = 30 * time.Second

// Sync implements [ProtocolClient]. Each iteration long-polls /sync from the
// last token, caches the received m.room.message events, hands them to the
// handler in timeline order and persists the new token.
//
// Transient failures (5xx, 429, network) are retried with exponential
// backoff; after settings.MaxRetries consecutive failures the last error is
// returned. Any other failure, M_UNKNOWN_TOKEN included, is returned at once.
func (m *matrixClient) Sync(ctx context.Context, settings models.SyncSettings) error {
	if m.session.AccessToken == "" {
		return ErrNoSession
	}
	log := m.logger.With().Str("user_id", m.session.UserID).Logger()
	ctx = log.WithContext(ctx)

	since := m.loadNextBatch(ctx)
	log.Info().Str("since", since).Dur("timeout", settings.Timeout).Msg("sync loop started")

	for {
		var resp *syncResponse
		backoff := retry.WithCappedDuration(maxRetryDelay,
			retry.WithMaxRetries(settings.MaxRetries, retry.NewExponential(m.retryBase)))

		err := retry.Do(ctx, backoff, func(ctx context.Context) error {
			var syncErr error
			resp, syncErr = m.syncOnce(ctx, since, settings)
			if syncErr != nil && isTransient(syncErr) {
				log.Warn().Err(syncErr).Msg("sync failed, retrying")
				return retry.RetryableError(syncErr)
			}
			return syncErr
		})
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return fmt.Errorf("sync cancelled: %w", ctxErr)
			}
			log.Error().Err(err).Msg("sync loop stopped")
			return fmt.Errorf("sync: %w", err)
		}

		m.handleSyncResponse(ctx, resp)

		if resp.NextBatch != "" && resp.NextBatch != since {
			since = resp.NextBatch
			m.saveNextBatch(ctx, since)
		}
	}
}

func (m *matrixClient) syncOnce(ctx context.Context, since string, settings models.SyncSettings) (*syncResponse, error) {
	reqCtx, cancel := context.WithTimeout(ctx, settings.Timeout+m.requestTimeout)
	defer cancel()

	req := m.authedRequest(reqCtx).
		SetQueryParam("timeout", strconv.FormatInt(settings.Timeout.Milliseconds(), 10))
	if since != "" {
		req.SetQueryParam("since", since)
	}
	if settings.Filter != "" {
		req.SetQueryParam("filter", settings.Filter)
	}

	resp, err := req.Get(syncPath)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, mapTransportError("sync request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var result syncResponse
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("%w: malformed sync response: %w", ErrServerUnavailable, err)
	}
	return &result, nil
}

func (m *matrixClient) handleSyncResponse(ctx context.Context, resp *syncResponse) {
	log := logger.FromContext(ctx)

	events := extractMessageEvents(resp)
	if len(events) == 0 {
		return
	}

	if m.events != nil {
		if err := m.events.SaveEvents(ctx, events...); err != nil {
			log.Warn().Err(err).Int("count", len(events)).Msg("failed to cache events")
		}
	}

	if m.handler == nil {
		log.Debug().Int("count", len(events)).Msg("no event handler registered, dropping events")
		return
	}

	for _, event := range events {
		if err := m.handler(ctx, event); err != nil {
			log.Debug().Err(err).Str("event_id", event.EventID).Msg("event handler returned an error")
		}
	}
}

// extractMessageEvents returns the message events of all joined rooms, rooms
// ordered by ID and events in timeline order.
func extractMessageEvents(resp *syncResponse) []models.MessageEvent {
	roomIDs := make([]string, 0, len(resp.Rooms.Join))
	for id := range resp.Rooms.Join {
		roomIDs = append(roomIDs, id)
	}
	slices.Sort(roomIDs)

	var events []models.MessageEvent
	for _, roomID := range roomIDs {
		for _, ev := range resp.Rooms.Join[roomID].Timeline.Events {
			if ev.Type != models.EventTypeRoomMessage {
				continue
			}

			var content messageContent
			// redacted events have empty content
			_ = json.Unmarshal(ev.Content, &content)

			events = append(events, models.MessageEvent{
				RoomID:         roomID,
				EventID:        ev.EventID,
				Sender:         ev.Sender,
				Type:           ev.Type,
				MsgType:        content.MsgType,
				Body:           content.Body,
				OriginServerTS: time.UnixMilli(ev.OriginServerTS),
				Content:        ev.Content,
			})
		}
	}
	return events
}

func (m *matrixClient) loadNextBatch(ctx context.Context) string {
	if m.syncState == nil {
		return ""
	}
	since, err := m.syncState.NextBatch(ctx, m.session.UserID)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("failed to load sync token, starting a full sync")
		return ""
	}
	return since
}

func (m *matrixClient) saveNextBatch(ctx context.Context, since string) {
	if m.syncState == nil {
		return
	}
	if err := m.syncState.SaveNextBatch(ctx, m.session.UserID, since); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("failed to persist sync token")
	}
}

func (m *matrixClient) authedRequest(ctx context.Context) *resty.Request {
	req := m.client.R().SetContext(ctx)
	if m.session.AccessToken != "" {
		req.SetAuthToken(m.session.AccessToken)
	}
	return req
}
