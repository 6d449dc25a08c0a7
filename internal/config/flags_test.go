// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_Positionals(t *testing.T) {
	cfg, _, err := parseFlags([]string{"example.org", "/tmp/alice"})

	require.NoError(t, err)
	assert.Equal(t, "example.org", cfg.Adapter.ServerName)
	assert.Equal(t, "/tmp/alice", cfg.Storage.SessionPath)
}

func TestParseFlags_OnlyServerName(t *testing.T) {
	cfg, _, err := parseFlags([]string{"example.org"})

	require.NoError(t, err)
	assert.Equal(t, "example.org", cfg.Adapter.ServerName)
	assert.Empty(t, cfg.Storage.SessionPath)
}

func TestParseFlags_ProxyShorthandAndLong(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"short", []string{"-p", "http://proxy:3128", "example.org"}},
		{"long", []string{"--proxy=http://proxy:3128", "example.org"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, _, err := parseFlags(tt.args)
			require.NoError(t, err)
			assert.Equal(t, "http://proxy:3128", cfg.Proxy)
			assert.Equal(t, "example.org", cfg.Adapter.ServerName)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, _, err := parseFlags([]string{
		"--config", "/etc/client.json",
		"--service-name", "svc",
		"--account", "bob",
		"--log-dir", "/logs",
		"--device-name", "desk",
		"--request-timeout", "5s",
		"--no-keyring",
		"--no-write-back",
		"--form",
		"--max-attempts", "4",
		"--sync-timeout", "45s",
		"--sync-retries", "9",
		"matrix.org",
	})

	require.NoError(t, err)
	assert.Equal(t, "/etc/client.json", cfg.JSONFilePath)
	assert.Equal(t, "svc", cfg.App.ServiceName)
	assert.Equal(t, "bob", cfg.App.Account)
	assert.Equal(t, "/logs", cfg.App.LogDir)
	assert.Equal(t, "desk", cfg.Adapter.DeviceName)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.True(t, cfg.Credentials.NoKeyring)
	assert.True(t, cfg.Credentials.NoWriteBack)
	assert.True(t, cfg.Credentials.Form)
	assert.Equal(t, 4, cfg.Credentials.MaxAttempts)
	assert.Equal(t, 45*time.Second, cfg.Workers.SyncTimeout)
	assert.Equal(t, uint64(9), cfg.Workers.SyncRetries)
	assert.Equal(t, "matrix.org", cfg.Adapter.ServerName)
}

func TestParseFlags_TooManyPositionals(t *testing.T) {
	_, _, err := parseFlags([]string{"a", "b", "c"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooManyArguments)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, _, err := parseFlags([]string{"--bogus", "example.org"})
	require.Error(t, err)
}

func TestParseFlags_ReportsExplicitFlags(t *testing.T) {
	_, set, err := parseFlags([]string{"--max-attempts", "0", "--no-keyring=false", "-p", "http://proxy:1", "example.org"})

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"max-attempts", "no-keyring", "proxy"}, set)
}
