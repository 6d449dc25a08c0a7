// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-matrix-client/internal/service"
	"github.com/MKhiriev/go-matrix-client/models"
)

type App struct {
	services *service.ClientServices
	handler  models.MessageHandler
}

// NewApp returns the client lifecycle. handler receives every message
// event once sync starts.
func NewApp(services *service.ClientServices, handler models.MessageHandler) (*App, error) {
	if services == nil {
		return nil, errors.New("client services are required")
	}
	if handler == nil {
		return nil, service.ErrNilHandler
	}
	return &App{services: services, handler: handler}, nil
}

// Run establishes the session, registers the handler and blocks in sync.
func (a *App) Run(ctx context.Context) error {
	log := a.services.Env.Logger

	session, err := a.services.Sessions.Establish(ctx)
	if err != nil {
		return fmt.Errorf("error establishing session: %w", err)
	}
	log.Info().
		Str("user_id", session.UserID).
		Str("state", a.services.Sessions.State().String()).
		Msg("session established")

	if err = a.services.Dispatcher.Register(a.handler); err != nil {
		a.services.Sessions.Fail(err)
		return fmt.Errorf("error registering event handler: %w", err)
	}

	err = a.services.Sync.Run(ctx, session)
	a.services.Sessions.Fail(err)
	return err
}
