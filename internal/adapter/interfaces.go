// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to a Matrix homeserver over the client-server API.
//
// The primary abstraction is [ProtocolClient], which decouples the session
// manager and sync driver from the wire protocol. [NewMatrixClient] is the
// resty-based implementation: it resolves the homeserver through
// .well-known discovery, logs in with a password, restores a saved session
// without network I/O, and runs the /sync long-poll loop.
//
// Homeserver errors are decoded into [MatrixError] and mapped onto the
// sentinels in errors.go by mapHTTPError so callers can use [errors.Is]
// (e.g. [ErrInvalidCredentials] for M_FORBIDDEN on login, [ErrUnknownToken]
// for a revoked access token).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-matrix-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/protocol_client_mock.go -package=mock

// ProtocolClient is the chat protocol client consumed by the session
// lifecycle.
type ProtocolClient interface {
	// Login authenticates with a password and returns the new session. The
	// client uses the session for subsequent calls.
	Login(ctx context.Context, username, password string) (models.Session, error)

	// Restore makes the client use a previously saved session. It performs
	// no network I/O; a revoked token surfaces on the first sync.
	Restore(ctx context.Context, session models.Session) error

	// RegisterEventHandler sets the handler invoked for every received
	// message event. It replaces any previous handler.
	RegisterEventHandler(handler models.MessageHandler)

	// Sync runs the sync loop. It only returns on a fatal error or when ctx
	// is cancelled; the returned error is never nil.
	Sync(ctx context.Context, settings models.SyncSettings) error
}
