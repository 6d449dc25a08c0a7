// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-matrix-client/internal/app"
	"github.com/MKhiriev/go-matrix-client/internal/console"
	"github.com/MKhiriev/go-matrix-client/models"
)

type eventDispatcher struct {
	env     *Environment
	handler models.MessageHandler
}

// NewEventDispatcher returns a [DispatchService] with no handler. Events
// dispatched before Register are dropped.
func NewEventDispatcher(env *Environment) DispatchService {
	return &eventDispatcher{env: env}
}

func (d *eventDispatcher) Register(handler models.MessageHandler) error {
	if handler == nil {
		return ErrNilHandler
	}
	if d.handler != nil {
		return ErrHandlerAlreadyRegistered
	}
	d.handler = handler
	return nil
}

// Dispatch runs the handler inline. A handler panic is not recovered and
// ends the process.
func (d *eventDispatcher) Dispatch(ctx context.Context, event models.MessageEvent) error {
	if d.handler == nil {
		d.env.Logger.Debug().Str("event_id", event.EventID).Msg("no handler registered, event dropped")
		return nil
	}

	if err := d.handler(ctx, event); err != nil {
		d.env.Logger.Warn().
			Err(err).
			Str("room_id", event.RoomID).
			Str("event_id", event.EventID).
			Msg("event handler failed")
	}
	return nil
}

// NewConsoleMessageHandler prints every received message to the operator
// console.
func NewConsoleMessageHandler(printer *console.Printer) models.MessageHandler {
	return func(_ context.Context, event models.MessageEvent) error {
		printer.Logf(app.MsgMessageReceived, event.RoomID, event.Sender, event.Body)
		return nil
	}
}
