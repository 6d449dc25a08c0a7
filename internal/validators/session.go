// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"net"
	"strings"

	"github.com/MKhiriev/go-matrix-client/internal/utils"
	"github.com/MKhiriev/go-matrix-client/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldUserID targets the fully-qualified user ID of a session.
	FieldUserID = "user_id"

	// FieldDeviceID targets the device ID issued on login.
	FieldDeviceID = "device_id"

	// FieldAccessToken targets the bearer token of a session.
	FieldAccessToken = "access_token"

	// FieldServerName checks that the server part of the user ID matches
	// the configured server.
	FieldServerName = "server_name"

	// FieldUsername targets the username of a credential.
	FieldUsername = "username"

	// FieldPassword targets the secret of a credential.
	FieldPassword = "password"
)

// SessionValidator checks sessions loaded from disk and credentials before
// they reach the homeserver.
type SessionValidator struct {
	serverHost string
	// delegated is set when the configured value is a homeserver URL, whose
	// users may live on a parent domain.
	delegated bool
}

// NewSessionValidator returns a Validator bound to serverName, which may be
// a bare server name or a homeserver URL.
func NewSessionValidator(serverName string) Validator {
	return &SessionValidator{
		serverHost: utils.ServerHost(serverName),
		delegated:  strings.Contains(serverName, "://"),
	}
}

func (v *SessionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Session:
		return v.validateSession(ctx, value, fields...)
	case *models.Session:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateSession(ctx, *value, fields...)

	case models.Credential:
		return v.validateCredential(ctx, value, fields...)
	case *models.Credential:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCredential(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *SessionValidator) validateSession(_ context.Context, session models.Session, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldDeviceID, FieldAccessToken, FieldServerName}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if session.UserID == "" {
				return ErrEmptyUserID
			}
			if session.ServerName() == "" || session.Localpart() == "" {
				return fmt.Errorf("%w: %q", ErrMalformedUserID, session.UserID)
			}
		case FieldDeviceID:
			if session.DeviceID == "" {
				return ErrEmptyDeviceID
			}
		case FieldAccessToken:
			if session.AccessToken == "" {
				return ErrEmptyAccessToken
			}
		case FieldServerName:
			if !v.sameServer(session) {
				return fmt.Errorf("%w: %s is not on %s", ErrServerNameMismatch, session.UserID, v.serverHost)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// sameServer compares hosts without ports. A bare server name must match
// exactly. A homeserver URL such as https://matrix.example.org also serves
// users of its parent domain example.org through delegation; single-label
// names and IP addresses are never accepted as a parent.
func (v *SessionValidator) sameServer(session models.Session) bool {
	host := utils.ServerHost(session.ServerName())
	if host == "" {
		return false
	}
	if v.serverHost == "" || host == v.serverHost {
		return true
	}
	if !v.delegated || !strings.Contains(host, ".") || net.ParseIP(host) != nil {
		return false
	}
	return strings.HasSuffix(v.serverHost, "."+host)
}

func (v *SessionValidator) validateCredential(_ context.Context, cred models.Credential, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if strings.TrimSpace(cred.Username) == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if cred.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
