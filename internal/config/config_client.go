// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"
)

// ClientApp holds process-level client settings.
type ClientApp struct {
	ServiceName string
	Account     string
	LogDir      string
}

// ClientAdapter holds homeserver connection settings.
type ClientAdapter struct {
	ServerName     string
	Proxy          string
	RequestTimeout time.Duration
	DeviceName     string
}

// ClientStorage holds the storage location.
type ClientStorage struct {
	SessionPath string
}

// ClientCredentials configures the credential source chain.
type ClientCredentials struct {
	// Keyring puts the OS secure store first in the chain.
	Keyring bool
	// WriteBack saves prompted credentials to the secure store after a
	// successful login.
	WriteBack bool
	// Form selects the full-screen login form.
	Form bool
	// MaxAttempts bounds failed logins; 0 means unbounded.
	MaxAttempts int
}

// ClientWorkers holds sync loop settings.
type ClientWorkers struct {
	SyncTimeout time.Duration
	SyncRetries uint64
}

// ClientConfig is the client view assembled from [StructuredConfig].
type ClientConfig struct {
	App         ClientApp
	Adapter     ClientAdapter
	Storage     ClientStorage
	Credentials ClientCredentials
	Workers     ClientWorkers
}

// GetClientConfig builds and validates the client configuration from the
// process environment and os.Args.
func GetClientConfig() (*ClientConfig, error) {
	return GetClientConfigFromArgs(os.Args[1:])
}

// GetClientConfigFromArgs is GetClientConfig with explicit arguments.
func GetClientConfigFromArgs(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			ServiceName: cfg.App.ServiceName,
			Account:     cfg.App.Account,
			LogDir:      cfg.App.LogDir,
		},
		Adapter: ClientAdapter{
			ServerName:     cfg.Adapter.ServerName,
			Proxy:          cfg.Proxy,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			DeviceName:     cfg.Adapter.DeviceName,
		},
		Storage: ClientStorage{
			SessionPath: cfg.Storage.SessionPath,
		},
		Credentials: ClientCredentials{
			Keyring:     !cfg.Credentials.NoKeyring,
			WriteBack:   !cfg.Credentials.NoWriteBack,
			Form:        cfg.Credentials.Form,
			MaxAttempts: cfg.Credentials.MaxAttempts,
		},
		Workers: ClientWorkers{
			SyncTimeout: cfg.Workers.SyncTimeout,
			SyncRetries: cfg.Workers.SyncRetries,
		},
	}

	return clientCfg, clientCfg.validate()
}
