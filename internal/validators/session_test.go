// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-matrix-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSession() models.Session {
	return models.Session{
		UserID:      "@alice:example.org",
		DeviceID:    "DEVICEID",
		AccessToken: "syt_token",
	}
}

func TestNewSessionValidator(t *testing.T) {
	v := NewSessionValidator("example.org")
	require.NotNil(t, v)
	_, ok := v.(*SessionValidator)
	assert.True(t, ok)
}

func TestSessionValidator_Session(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		serverName string
		mutate     func(*models.Session)
		wantErr    error
	}{
		{"valid", "example.org", func(*models.Session) {}, nil},
		{"valid with port and case", "Example.org:8448", func(*models.Session) {}, nil},
		{"valid homeserver url", "https://matrix.example.org", func(*models.Session) {}, nil},
		{"valid exact url host", "https://example.org:8448", func(*models.Session) {}, nil},
		{"empty user id", "example.org", func(s *models.Session) { s.UserID = "" }, ErrEmptyUserID},
		{"no sigil", "example.org", func(s *models.Session) { s.UserID = "alice:example.org" }, ErrMalformedUserID},
		{"no server", "example.org", func(s *models.Session) { s.UserID = "@alice" }, ErrMalformedUserID},
		{"empty localpart", "example.org", func(s *models.Session) { s.UserID = "@:example.org" }, ErrMalformedUserID},
		{"empty device", "example.org", func(s *models.Session) { s.DeviceID = "" }, ErrEmptyDeviceID},
		{"empty token", "example.org", func(s *models.Session) { s.AccessToken = "" }, ErrEmptyAccessToken},
		{"foreign server", "matrix.org", func(*models.Session) {}, ErrServerNameMismatch},
		{"suffix is not a subdomain", "badexample.org", func(*models.Session) {}, ErrServerNameMismatch},
		{"bare name never climbs to a tld", "example.org", func(s *models.Session) { s.UserID = "@mallory:org" }, ErrServerNameMismatch},
		{"url never climbs to a tld", "https://matrix.example.org", func(s *models.Session) { s.UserID = "@mallory:org" }, ErrServerNameMismatch},
		{"bare subdomain is not delegated", "chat.example.org", func(s *models.Session) { s.UserID = "@bob:example.org" }, ErrServerNameMismatch},
		{"url subdomain is delegated", "https://chat.example.org", func(s *models.Session) { s.UserID = "@bob:example.org" }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSession()
			tt.mutate(&s)

			err := NewSessionValidator(tt.serverName).Validate(ctx, s)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSessionValidator_SessionPointer(t *testing.T) {
	s := validSession()
	v := NewSessionValidator("example.org")

	assert.NoError(t, v.Validate(context.Background(), &s))
	assert.ErrorIs(t, v.Validate(context.Background(), (*models.Session)(nil)), ErrUnsupportedType)
}

func TestSessionValidator_FieldScoping(t *testing.T) {
	s := validSession()
	s.AccessToken = ""
	v := NewSessionValidator("example.org")

	assert.NoError(t, v.Validate(context.Background(), s, FieldUserID, FieldDeviceID))
	assert.ErrorIs(t, v.Validate(context.Background(), s, FieldAccessToken), ErrEmptyAccessToken)
	assert.ErrorIs(t, v.Validate(context.Background(), s, "bogus"), ErrUnknownField)
}

func TestSessionValidator_Credential(t *testing.T) {
	v := NewSessionValidator("example.org")
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.Credential{Username: "alice", Password: "secret123"}))
	assert.NoError(t, v.Validate(ctx, &models.Credential{Username: "alice", Password: "secret123"}))
	assert.ErrorIs(t, v.Validate(ctx, models.Credential{Username: "  ", Password: "x"}), ErrEmptyUsername)
	assert.ErrorIs(t, v.Validate(ctx, models.Credential{Username: "alice"}), ErrEmptyPassword)
	assert.NoError(t, v.Validate(ctx, models.Credential{Username: "alice"}, FieldUsername))
}

func TestSessionValidator_UnsupportedType(t *testing.T) {
	v := NewSessionValidator("example.org")
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), nil), ErrUnsupportedType)
}
