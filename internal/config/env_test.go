// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",
		"PROXY":  "http://127.0.0.1:8080",

		"APP_SERVICE_NAME": "svc",
		"APP_ACCOUNT":      "alice",
		"APP_LOG_DIR":      "/var/log/client",

		"STORAGE_SESSION_PATH": "/var/lib/client",

		"ADAPTER_SERVER_NAME":     "example.org",
		"ADAPTER_REQUEST_TIMEOUT": "10s",
		"ADAPTER_DEVICE_NAME":     "laptop",

		"CREDENTIALS_NO_KEYRING":    "true",
		"CREDENTIALS_NO_WRITE_BACK": "true",
		"CREDENTIALS_FORM":          "true",
		"CREDENTIALS_MAX_ATTEMPTS":  "3",

		"WORKERS_SYNC_TIMEOUT": "1m",
		"WORKERS_SYNC_RETRIES": "7",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "http://127.0.0.1:8080", cfg.Proxy)
	assert.Equal(t, "svc", cfg.App.ServiceName)
	assert.Equal(t, "alice", cfg.App.Account)
	assert.Equal(t, "/var/log/client", cfg.App.LogDir)
	assert.Equal(t, "/var/lib/client", cfg.Storage.SessionPath)
	assert.Equal(t, "example.org", cfg.Adapter.ServerName)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "laptop", cfg.Adapter.DeviceName)
	assert.True(t, cfg.Credentials.NoKeyring)
	assert.True(t, cfg.Credentials.NoWriteBack)
	assert.True(t, cfg.Credentials.Form)
	assert.Equal(t, 3, cfg.Credentials.MaxAttempts)
	assert.Equal(t, time.Minute, cfg.Workers.SyncTimeout)
	assert.Equal(t, uint64(7), cfg.Workers.SyncRetries)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"WORKERS_SYNC_TIMEOUT": "soon",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

// Helpers

var knownEnvVars = []string{
	"CONFIG", "PROXY",
	"APP_SERVICE_NAME", "APP_ACCOUNT", "APP_LOG_DIR",
	"STORAGE_SESSION_PATH",
	"ADAPTER_SERVER_NAME", "ADAPTER_REQUEST_TIMEOUT", "ADAPTER_DEVICE_NAME",
	"CREDENTIALS_NO_KEYRING", "CREDENTIALS_NO_WRITE_BACK", "CREDENTIALS_FORM", "CREDENTIALS_MAX_ATTEMPTS",
	"WORKERS_SYNC_TIMEOUT", "WORKERS_SYNC_RETRIES",
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

// clearEnvVars blanks every variable the config reads. t.Setenv restores the
// previous values when the test ends; caarlos0/env treats "" as unset.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range knownEnvVars {
		t.Setenv(k, "")
	}
}
