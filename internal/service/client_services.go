// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-matrix-client/internal/adapter"
	"github.com/MKhiriev/go-matrix-client/internal/config"
	"github.com/MKhiriev/go-matrix-client/internal/store"
	"github.com/MKhiriev/go-matrix-client/models"
)

// ClientServices groups the services of one client process.
type ClientServices struct {
	Env        *Environment
	Sessions   SessionService
	Dispatcher DispatchService
	Sync       SyncService
}

// NewClientServices builds the services and routes protocol events through
// the dispatcher.
func NewClientServices(
	env *Environment,
	cfg *config.ClientConfig,
	sessions store.SessionStore,
	protocol adapter.ProtocolClient,
	credentials CredentialProvider,
) *ClientServices {
	dispatcher := NewEventDispatcher(env)
	protocol.RegisterEventHandler(dispatcher.Dispatch)

	settings := models.SyncSettings{
		Timeout:    cfg.Workers.SyncTimeout,
		MaxRetries: cfg.Workers.SyncRetries,
	}

	return &ClientServices{
		Env:        env,
		Sessions:   NewSessionManager(env, cfg.Adapter.ServerName, sessions, protocol, credentials, cfg.Credentials.MaxAttempts),
		Dispatcher: dispatcher,
		Sync:       NewSyncDriver(env, protocol, settings),
	}
}
