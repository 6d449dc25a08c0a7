// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package credential

import "errors"

var (
	// ErrNotFound means the source has no credential; the chain moves on.
	ErrNotFound = errors.New("credential not found")

	// ErrAccessDenied means the secure store exists but refused the read
	// (locked keychain, no D-Bus session, denied prompt).
	ErrAccessDenied = errors.New("secure store access denied")

	// ErrInputClosed means the operator's input stream ended before a
	// credential was entered.
	ErrInputClosed = errors.New("input closed")

	// ErrCredentialsUnavailable means no source in the chain could supply a
	// credential.
	ErrCredentialsUnavailable = errors.New("no credential source available")
)
