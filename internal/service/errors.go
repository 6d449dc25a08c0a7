// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidSession is returned when a saved or freshly issued session
	// fails validation against the configured server.
	ErrInvalidSession = errors.New("session is not valid for this server")

	// ErrTooManyAttempts is returned when the configured number of failed
	// logins was reached.
	ErrTooManyAttempts = errors.New("too many failed login attempts")

	// ErrLifecycleFailed is returned by Establish after a fatal error.
	ErrLifecycleFailed = errors.New("session lifecycle already failed")

	// ErrNotAuthenticated is returned by the sync driver when no session
	// was established.
	ErrNotAuthenticated = errors.New("no session established")

	// ErrSyncTerminated wraps whatever ended the sync loop. Sync has no
	// success path, so it always surfaces as an error.
	ErrSyncTerminated = errors.New("sync terminated")

	ErrNilHandler               = errors.New("event handler is nil")
	ErrHandlerAlreadyRegistered = errors.New("an event handler is already registered")
)
