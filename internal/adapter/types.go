// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
)

const (
	loginPath     = "/_matrix/client/v3/login"
	syncPath      = "/_matrix/client/v3/sync"
	wellKnownPath = "/.well-known/matrix/client"

	loginTypePassword  = "m.login.password"
	identifierTypeUser = "m.id.user"
)

type userIdentifier struct {
	Type string `json:"type"`
	User string `json:"user"`
}

// loginRequest is the JSON body for POST /_matrix/client/v3/login.
type loginRequest struct {
	Type                     string         `json:"type"`
	Identifier               userIdentifier `json:"identifier"`
	Password                 string         `json:"password"`
	InitialDeviceDisplayName string         `json:"initial_device_display_name,omitempty"`
}

type loginResponse struct {
	UserID       string `json:"user_id"`
	AccessToken  string `json:"access_token"`
	DeviceID     string `json:"device_id"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

type wellKnownResponse struct {
	Homeserver struct {
		BaseURL string `json:"base_url"`
	} `json:"m.homeserver"`
}

type syncResponse struct {
	NextBatch string `json:"next_batch"`
	Rooms     struct {
		Join map[string]joinedRoom `json:"join,omitempty"`
	} `json:"rooms"`
}

type joinedRoom struct {
	Timeline struct {
		Events  []roomEvent `json:"events"`
		Limited bool        `json:"limited,omitempty"`
	} `json:"timeline"`
}

type roomEvent struct {
	Type           string          `json:"type"`
	EventID        string          `json:"event_id"`
	Sender         string          `json:"sender"`
	OriginServerTS int64           `json:"origin_server_ts"`
	Content        json.RawMessage `json:"content"`
}

type messageContent struct {
	MsgType string `json:"msgtype"`
	Body    string `json:"body"`
}
