// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// matrix client services and the client binary.
//
// All Msg* constants are human-readable strings printed to the operator's
// console to describe the outcome of a lifecycle step or to diagnose a fatal
// error. Keeping them in one place ensures consistent wording.
package app

const (
	// MsgSessionRestored is printed when a saved session was resumed
	// without logging in. Arguments: user ID, device ID.
	MsgSessionRestored = "Restored session for %s (device %s)"

	// MsgLoggedIn is printed after a successful login. Arguments: user ID,
	// device ID.
	MsgLoggedIn = "Logged in as %s (device %s)"

	// MsgNoSession is printed when no session file exists yet. Argument:
	// server name.
	MsgNoSession = "No saved session, logging in to %s"

	// MsgLoginFailed is printed before asking for credentials again.
	// Argument: reason.
	MsgLoginFailed = "Login failed: %s"

	// MsgCredentialNotSaved is printed when the write-back failed. The
	// login itself still counts. Argument: reason.
	MsgCredentialNotSaved = "Could not save the credential to the secure store: %s"

	// MsgSyncStarted is printed when the sync loop takes over.
	MsgSyncStarted = "Starting sync loop"

	// MsgMessageReceived is printed for each received message. Arguments:
	// room ID, sender, body.
	MsgMessageReceived = "Received a message in %s from %s: %s"
)

// Diagnoses for fatal errors. Each one tells the operator what to do next.
const (
	// MsgDiagnoseCorruptSession is printed when session.json cannot be
	// decoded or does not belong to the configured server. Argument: path.
	MsgDiagnoseCorruptSession = "The saved session at %s is unreadable or belongs to another server. Remove it to log in again."

	// MsgDiagnoseUnknownToken is printed when the homeserver no longer
	// accepts the saved access token. Argument: path.
	MsgDiagnoseUnknownToken = "The homeserver rejected the saved access token (logged out elsewhere?). Remove %s to log in again."

	// MsgDiagnoseStorageUnwritable is printed when the storage directory
	// cannot be created or written. Argument: path.
	MsgDiagnoseStorageUnwritable = "Cannot write to the storage directory %s. Check its permissions or pass another session path."

	// MsgDiagnoseCredentialsUnavailable is printed when no credential
	// source can be used.
	MsgDiagnoseCredentialsUnavailable = "No credentials available: the secure store is not accessible and no prompt is possible."

	// MsgDiagnoseInputClosed is printed when stdin closed during a prompt.
	MsgDiagnoseInputClosed = "Input closed before a username and password were entered."

	// MsgDiagnoseTooManyAttempts is printed when the login attempt limit
	// was reached.
	MsgDiagnoseTooManyAttempts = "Too many failed login attempts."

	// MsgDiagnoseServerUnavailable is printed when the homeserver could not
	// be reached. Argument: server name.
	MsgDiagnoseServerUnavailable = "The homeserver %s is unavailable. Check the server name, your network and the proxy settings."

	// MsgDiagnoseDiscovery is printed when .well-known discovery returned
	// an unusable document. Argument: server name.
	MsgDiagnoseDiscovery = "Could not discover the homeserver for %s. Pass the homeserver URL instead of the server name."

	// MsgDiagnoseInterrupted is printed when the process was interrupted.
	MsgDiagnoseInterrupted = "Interrupted."

	// MsgDiagnoseUnexpected is printed for any other fatal error. Argument:
	// error text.
	MsgDiagnoseUnexpected = "Fatal error: %s"
)
