// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-matrix-client/internal/mock"
	"github.com/MKhiriev/go-matrix-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testSession = models.Session{
	UserID:      "@alice:example.org",
	DeviceID:    "DEV1",
	AccessToken: "syt_token",
}

var testSyncSettings = models.SyncSettings{Timeout: 10 * time.Millisecond, MaxRetries: 3}

const syncBody = `{
	"next_batch": "s1",
	"rooms": {
		"join": {
			"!b:example.org": {
				"timeline": {
					"events": [
						{"type": "m.room.message", "event_id": "$3", "sender": "@carol:example.org",
						 "origin_server_ts": 1700000003000, "content": {"msgtype": "m.text", "body": "third"}}
					]
				}
			},
			"!a:example.org": {
				"timeline": {
					"events": [
						{"type": "m.room.message", "event_id": "$1", "sender": "@bob:example.org",
						 "origin_server_ts": 1700000001000, "content": {"msgtype": "m.text", "body": "first"}},
						{"type": "m.room.member", "event_id": "$m", "sender": "@bob:example.org",
						 "origin_server_ts": 1700000001500, "content": {"membership": "join"}},
						{"type": "m.room.message", "event_id": "$2", "sender": "@bob:example.org",
						 "origin_server_ts": 1700000002000, "content": {"msgtype": "m.notice", "body": "second"}}
					]
				}
			}
		}
	}
}`

const unknownTokenBody = `{"errcode":"M_UNKNOWN_TOKEN","error":"Invalid access token passed."}`

func TestSync_NoSession(t *testing.T) {
	m := newTestMatrixClient(t, "http://127.0.0.1:8008")
	err := m.Sync(context.Background(), testSyncSettings)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSync_DeliversEventsAndPersistsToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, syncPath, r.URL.Path)
		assert.Equal(t, "Bearer syt_token", r.Header.Get("Authorization"))
		assert.Equal(t, "10", r.URL.Query().Get("timeout"))

		switch calls.Add(1) {
		case 1:
			assert.Equal(t, "s0", r.URL.Query().Get("since"))
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(syncBody))
		default:
			assert.Equal(t, "s1", r.URL.Query().Get("since"))
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(unknownTokenBody))
		}
	}))
	defer srv.Close()

	syncState := mock.NewMockSyncStateRepository(ctrl)
	events := mock.NewMockEventCacheRepository(ctrl)

	m := newTestMatrixClient(t, srv.URL)
	m.syncState = syncState
	m.events = events
	require.NoError(t, m.Restore(context.Background(), testSession))

	gomock.InOrder(
		syncState.EXPECT().NextBatch(gomock.Any(), testSession.UserID).Return("s0", nil),
		events.EXPECT().SaveEvents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
		syncState.EXPECT().SaveNextBatch(gomock.Any(), testSession.UserID, "s1").Return(nil),
	)

	var received []models.MessageEvent
	m.RegisterEventHandler(func(_ context.Context, event models.MessageEvent) error {
		received = append(received, event)
		return nil
	})

	err := m.Sync(context.Background(), testSyncSettings)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownToken)
	assert.EqualValues(t, 2, calls.Load(), "unknown token must not be retried")

	require.Len(t, received, 3)
	assert.Equal(t, []string{"$1", "$2", "$3"}, []string{received[0].EventID, received[1].EventID, received[2].EventID})
	assert.Equal(t, "!a:example.org", received[0].RoomID)
	assert.Equal(t, "first", received[0].Body)
	assert.Equal(t, "m.notice", received[1].MsgType)
	assert.Equal(t, time.UnixMilli(1700000003000), received[2].OriginServerTS)
}

func TestSync_HandlerErrorDoesNotStopLoop(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			_, _ = w.Write([]byte(syncBody))
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(unknownTokenBody))
	}))
	defer srv.Close()

	m := newTestMatrixClient(t, srv.URL)
	require.NoError(t, m.Restore(context.Background(), testSession))

	var handled int
	m.RegisterEventHandler(func(context.Context, models.MessageEvent) error {
		handled++
		return errors.New("handler failed")
	})

	err := m.Sync(context.Background(), testSyncSettings)

	assert.ErrorIs(t, err, ErrUnknownToken)
	assert.Equal(t, 3, handled)
}

func TestSync_RetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch calls.Add(1) {
		case 1:
			w.WriteHeader(http.StatusBadGateway)
		case 2:
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"errcode":"M_LIMIT_EXCEEDED","error":"slow down"}`))
		case 3:
			_, _ = w.Write([]byte(syncBody))
		default:
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(unknownTokenBody))
		}
	}))
	defer srv.Close()

	m := newTestMatrixClient(t, srv.URL)
	require.NoError(t, m.Restore(context.Background(), testSession))

	var handled int
	m.RegisterEventHandler(func(context.Context, models.MessageEvent) error {
		handled++
		return nil
	})

	err := m.Sync(context.Background(), testSyncSettings)

	assert.ErrorIs(t, err, ErrUnknownToken)
	assert.Equal(t, 3, handled)
	assert.EqualValues(t, 4, calls.Load())
}

func TestSync_GivesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	m := newTestMatrixClient(t, srv.URL)
	require.NoError(t, m.Restore(context.Background(), testSession))

	err := m.Sync(context.Background(), models.SyncSettings{Timeout: 10 * time.Millisecond, MaxRetries: 2})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServerUnavailable)
	assert.EqualValues(t, 3, calls.Load())
}

func TestSync_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(syncBody))
	}))
	defer srv.Close()

	m := newTestMatrixClient(t, srv.URL)
	require.NoError(t, m.Restore(context.Background(), testSession))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m.RegisterEventHandler(func(context.Context, models.MessageEvent) error {
		cancel()
		return nil
	})

	err := m.Sync(ctx, testSyncSettings)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExtractMessageEvents_Empty(t *testing.T) {
	var resp syncResponse
	require.NoError(t, json.Unmarshal([]byte(`{"next_batch":"s2"}`), &resp))
	assert.Empty(t, extractMessageEvents(&resp))
}
