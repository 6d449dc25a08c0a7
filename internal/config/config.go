// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging defaults, environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings: the secure store service name, the
	// account used to address it, and where logs are written.
	App App `envPrefix:"APP_"`

	// Storage holds the storage location of the session and the protocol
	// client's sub-stores.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds homeserver connection settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Credentials controls the credential source chain.
	Credentials Credentials `envPrefix:"CREDENTIALS_"`

	// Workers holds settings of the sync loop.
	Workers Workers `envPrefix:"WORKERS_"`

	// Proxy is the optional proxy URL for all homeserver traffic.
	// Env: PROXY
	Proxy string `env:"PROXY"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CONFIG
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// ServiceName addresses the OS secure credential store.
	// Env: APP_SERVICE_NAME
	ServiceName string `env:"SERVICE_NAME"`

	// Account is the secure store account the credential is kept under.
	// Env: APP_ACCOUNT
	Account string `env:"ACCOUNT"`

	// LogDir is the directory of the structured log file. Empty means the
	// executable's directory.
	// Env: APP_LOG_DIR
	LogDir string `env:"LOG_DIR"`
}

// Storage holds the storage location settings.
type Storage struct {
	// SessionPath is the directory holding session.json and the crypto,
	// state and cache sub-stores.
	// Env: STORAGE_SESSION_PATH
	SessionPath string `env:"SESSION_PATH"`
}

// Adapter holds homeserver connection settings.
type Adapter struct {
	// ServerName is a Matrix server name ("example.org") or a homeserver
	// URL ("https://matrix.example.org").
	// Env: ADAPTER_SERVER_NAME
	ServerName string `env:"SERVER_NAME"`

	// RequestTimeout bounds every non-sync request (login, discovery).
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// DeviceName is sent as initial_device_display_name on login.
	// Env: ADAPTER_DEVICE_NAME
	DeviceName string `env:"DEVICE_NAME"`
}

// Credentials controls the ordered credential source chain.
type Credentials struct {
	// NoKeyring removes the OS secure store from the chain.
	// Env: CREDENTIALS_NO_KEYRING
	NoKeyring bool `env:"NO_KEYRING"`

	// NoWriteBack stops prompted credentials from being saved to the
	// secure store after a successful login.
	// Env: CREDENTIALS_NO_WRITE_BACK
	NoWriteBack bool `env:"NO_WRITE_BACK"`

	// Form selects the full-screen login form instead of line prompts.
	// Env: CREDENTIALS_FORM
	Form bool `env:"FORM"`

	// MaxAttempts bounds failed logins; 0 means unbounded.
	// Env: CREDENTIALS_MAX_ATTEMPTS
	MaxAttempts int `env:"MAX_ATTEMPTS"`
}

// Workers holds sync loop settings.
type Workers struct {
	// SyncTimeout is the /sync long-poll timeout.
	// Env: WORKERS_SYNC_TIMEOUT
	SyncTimeout time.Duration `env:"SYNC_TIMEOUT"`

	// SyncRetries is the number of consecutive transient sync failures
	// tolerated before the loop is declared dead.
	// Env: WORKERS_SYNC_RETRIES
	SyncRetries uint64 `env:"SYNC_RETRIES"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all sources in the following priority order (later sources override
// earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags and positional arguments from args
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
