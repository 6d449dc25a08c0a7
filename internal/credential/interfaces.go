// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package credential resolves the username and password used for a login.
//
// Sources are tried in an explicit order by [Chain]: the OS secure store
// first, then an interactive prompt. A source that has nothing to offer
// returns [ErrNotFound] so the chain can fall through; any other error is
// either reported and skipped (secure store access denied, when a prompt
// follows) or returned to the caller.
package credential

import (
	"context"

	"github.com/MKhiriev/go-matrix-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_mock.go -package=mock

// Source yields one credential per call.
type Source interface {
	Credential(ctx context.Context) (models.Credential, error)
}

// SecureStore is the OS credential store, addressed by service and account.
type SecureStore interface {
	// Get returns the stored secret, or an error wrapping
	// keyring.ErrNotFound when nothing is stored.
	Get(service, account string) (string, error)
	Set(service, account, secret string) error
}
