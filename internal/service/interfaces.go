// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the session lifecycle of the matrix client:
// restoring or establishing a session, dispatching received messages and
// driving the sync loop.
package service

import (
	"context"

	"github.com/MKhiriev/go-matrix-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CredentialProvider hands out credentials for login attempts and learns
// the outcome of each one. *credential.Chain implements it.
type CredentialProvider interface {
	// Credential returns the next credential to try.
	Credential(ctx context.Context) (models.Credential, error)

	// Accept is called once after cred logged in successfully.
	Accept(ctx context.Context, cred models.Credential) error

	// Reject is called after the homeserver refused cred.
	Reject(ctx context.Context, cred models.Credential, reason error)
}

// SessionService resolves the session used by the rest of the process.
type SessionService interface {
	// Establish restores the saved session or logs in with credentials from
	// the provider, retrying failed logins. A successful login is persisted
	// exactly once; a restore writes nothing. Calling Establish again after
	// success returns the same session without side effects.
	Establish(ctx context.Context) (models.Session, error)

	// State reports the current lifecycle phase.
	State() models.SessionState

	// Fail moves the lifecycle to its terminal state.
	Fail(err error)
}

// DispatchService routes received message events to the single registered
// handler.
type DispatchService interface {
	// Register sets the handler. It must be called exactly once, before
	// sync starts.
	Register(handler models.MessageHandler) error

	// Dispatch invokes the handler for event. Handler errors are logged
	// and do not stop the sync loop.
	Dispatch(ctx context.Context, event models.MessageEvent) error
}

// SyncService runs the sync loop.
type SyncService interface {
	// Run blocks until the loop ends. The returned error is never nil and
	// always wraps [ErrSyncTerminated].
	Run(ctx context.Context, session models.Session) error
}
