// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"context"
	"encoding/json"
	"time"
)

// EventTypeRoomMessage is the Matrix event type of room messages.
const EventTypeRoomMessage = "m.room.message"

// MessageEvent is a read-only view of an inbound room message. Handlers
// receive it by value; Content is a private copy of the raw event content.
type MessageEvent struct {
	RoomID         string          `json:"room_id"`
	EventID        string          `json:"event_id"`
	Sender         string          `json:"sender"`
	Type           string          `json:"type"`
	MsgType        string          `json:"msgtype,omitempty"`
	Body           string          `json:"body,omitempty"`
	OriginServerTS time.Time       `json:"origin_server_ts"`
	Content        json.RawMessage `json:"content,omitempty"`
}

// MessageHandler is invoked once per inbound message event, inline with event
// delivery and never concurrently with itself.
type MessageHandler func(ctx context.Context, event MessageEvent) error
