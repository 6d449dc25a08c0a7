// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_ServerNameAndLocalpart(t *testing.T) {
	tests := []struct {
		userID    string
		server    string
		localpart string
	}{
		{userID: "@alice:example.org", server: "example.org", localpart: "alice"},
		{userID: "@bob:matrix.example.org:8448", server: "matrix.example.org:8448", localpart: "bob"},
		{userID: "alice:example.org", server: "", localpart: "alice"},
		{userID: "@alice", server: "", localpart: "alice"},
		{userID: "", server: "", localpart: ""},
	}

	for _, tt := range tests {
		t.Run(tt.userID, func(t *testing.T) {
			s := Session{UserID: tt.userID}
			assert.Equal(t, tt.server, s.ServerName())
			assert.Equal(t, tt.localpart, s.Localpart())
		})
	}
}

func TestSession_JSONFieldNames(t *testing.T) {
	data, err := json.Marshal(Session{UserID: "@alice:example.org", DeviceID: "DEV1", AccessToken: "syt_token"})
	require.NoError(t, err)

	assert.JSONEq(t, `{"user_id":"@alice:example.org","device_id":"DEV1","access_token":"syt_token"}`, string(data))
}

func TestSession_IsZero(t *testing.T) {
	assert.True(t, Session{}.IsZero())
	assert.False(t, Session{DeviceID: "DEV1"}.IsZero())
}

func TestCredential_StringHidesPassword(t *testing.T) {
	c := Credential{Username: "alice", Password: "secret123", Origin: OriginPrompt}

	assert.Equal(t, "alice (prompt)", c.String())
	assert.NotContains(t, c.String(), "secret123")
	assert.False(t, c.Empty())
	assert.True(t, Credential{Username: "alice"}.Empty())
}

func TestLoginOutcome(t *testing.T) {
	ok := LoginSucceeded(Session{UserID: "@alice:example.org"})
	assert.True(t, ok.Succeeded())

	failed := LoginFailed(errors.New("invalid password"))
	assert.False(t, failed.Succeeded())
	assert.EqualError(t, failed.Reason, "invalid password")
}

func TestSessionState_String(t *testing.T) {
	assert.Equal(t, "restoring", StateRestoring.String())
	assert.Equal(t, "failed", StateFailed.String())
	assert.Equal(t, "unknown", SessionState(42).String())
}
