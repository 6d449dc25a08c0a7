// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-matrix-client/internal/adapter"
	"github.com/MKhiriev/go-matrix-client/internal/app"
	"github.com/MKhiriev/go-matrix-client/models"
)

type syncDriver struct {
	env      *Environment
	protocol adapter.ProtocolClient
	settings models.SyncSettings
}

// NewSyncDriver returns a [SyncService] that runs the protocol client's
// sync loop with settings. There is no restart policy: whatever ends the
// loop ends the process.
func NewSyncDriver(env *Environment, protocol adapter.ProtocolClient, settings models.SyncSettings) SyncService {
	defaults := models.DefaultSyncSettings()
	if settings.Timeout <= 0 {
		settings.Timeout = defaults.Timeout
	}
	return &syncDriver{
		env:      env,
		protocol: protocol,
		settings: settings,
	}
}

func (s *syncDriver) Run(ctx context.Context, session models.Session) error {
	if session.AccessToken == "" {
		return fmt.Errorf("%w: %w", ErrSyncTerminated, ErrNotAuthenticated)
	}

	s.env.Logger.Info().
		Str("user_id", session.UserID).
		Dur("timeout", s.settings.Timeout).
		Uint64("max_retries", s.settings.MaxRetries).
		Msg("starting sync")
	s.env.Console.Logf(app.MsgSyncStarted)

	err := s.protocol.Sync(ctx, s.settings)
	if err == nil {
		err = errors.New("sync returned without an error")
	}

	s.env.Logger.Error().Err(err).Msg("sync terminated")
	return fmt.Errorf("%w: %w", ErrSyncTerminated, err)
}
