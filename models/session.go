// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Session is an authenticated identity bound to a homeserver.
//
// A Session is produced by a successful login, persisted immediately and
// loaded on the next start. It is never mutated in place: a new login always
// yields a new value that replaces the persisted one.
type Session struct {
	// UserID is the fully-qualified Matrix user ID (e.g. "@alice:example.org").
	UserID string `json:"user_id"`

	// DeviceID is the device identifier issued by the homeserver for this login.
	DeviceID string `json:"device_id"`

	// AccessToken is the opaque bearer token. Must never be logged.
	AccessToken string `json:"access_token"`

	// RefreshToken is returned only by homeservers that issue refreshable
	// tokens.
	RefreshToken string `json:"refresh_token,omitempty"`
}

// ServerName returns the server part of UserID ("example.org" for
// "@alice:example.org"), or an empty string if UserID is malformed.
func (s Session) ServerName() string {
	if !strings.HasPrefix(s.UserID, "@") {
		return ""
	}
	_, server, found := strings.Cut(s.UserID, ":")
	if !found {
		return ""
	}
	return server
}

// Localpart returns the user part of UserID ("alice" for "@alice:example.org").
func (s Session) Localpart() string {
	local, _, _ := strings.Cut(strings.TrimPrefix(s.UserID, "@"), ":")
	return local
}

// IsZero reports whether s carries no identity at all.
func (s Session) IsZero() bool {
	return s == Session{}
}
