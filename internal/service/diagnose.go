// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-matrix-client/internal/adapter"
	"github.com/MKhiriev/go-matrix-client/internal/app"
	"github.com/MKhiriev/go-matrix-client/internal/credential"
	"github.com/MKhiriev/go-matrix-client/internal/store"
	"github.com/MKhiriev/go-matrix-client/internal/validators"
)

// Describe turns a failed login reason into a short operator-facing text.
func Describe(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, adapter.ErrInvalidCredentials):
		return "invalid username or password"
	case errors.Is(err, adapter.ErrRateLimited):
		return "too many requests, wait a moment before trying again"
	case errors.Is(err, adapter.ErrServerUnavailable):
		return "the homeserver is unavailable"
	case errors.Is(err, validators.ErrEmptyUsername):
		return "username must not be empty"
	case errors.Is(err, validators.ErrEmptyPassword):
		return "password must not be empty"
	default:
		return err.Error()
	}
}

// Diagnosis names a fatal error and the files involved in it.
type Diagnosis struct {
	ServerName  string
	SessionFile string
	StorageRoot string
}

// Explain returns the message printed before the process exits with err.
func (d Diagnosis) Explain(err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return app.MsgDiagnoseInterrupted
	case errors.Is(err, store.ErrCorruptSession):
		return fmt.Sprintf(app.MsgDiagnoseCorruptSession, d.SessionFile)
	case errors.Is(err, adapter.ErrUnknownToken):
		return fmt.Sprintf(app.MsgDiagnoseUnknownToken, d.SessionFile)
	case errors.Is(err, store.ErrStorageUnwritable):
		return fmt.Sprintf(app.MsgDiagnoseStorageUnwritable, d.StorageRoot)
	case errors.Is(err, credential.ErrCredentialsUnavailable):
		return app.MsgDiagnoseCredentialsUnavailable
	case errors.Is(err, credential.ErrInputClosed):
		return app.MsgDiagnoseInputClosed
	case errors.Is(err, ErrTooManyAttempts):
		return app.MsgDiagnoseTooManyAttempts
	case errors.Is(err, adapter.ErrDiscovery):
		return fmt.Sprintf(app.MsgDiagnoseDiscovery, d.ServerName)
	case errors.Is(err, adapter.ErrServerUnavailable):
		return fmt.Sprintf(app.MsgDiagnoseServerUnavailable, d.ServerName)
	default:
		return fmt.Sprintf(app.MsgDiagnoseUnexpected, err)
	}
}
