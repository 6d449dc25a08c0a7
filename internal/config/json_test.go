// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSONConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempJSONConfig(t, `{
		"app": {"service_name": "svc", "account": "alice", "log_dir": "/logs"},
		"storage": {"session_path": "/data"},
		"adapter": {"server_name": "example.org", "request_timeout": "12s", "device_name": "phone"},
		"credentials": {"no_keyring": true, "form": true, "max_attempts": 2},
		"workers": {"sync_timeout": "20s", "sync_retries": 3},
		"proxy": "socks5://127.0.0.1:1080"
	}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, "svc", cfg.App.ServiceName)
	assert.Equal(t, "alice", cfg.App.Account)
	assert.Equal(t, "/logs", cfg.App.LogDir)
	assert.Equal(t, "/data", cfg.Storage.SessionPath)
	assert.Equal(t, "example.org", cfg.Adapter.ServerName)
	assert.Equal(t, 12*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "phone", cfg.Adapter.DeviceName)
	assert.True(t, cfg.Credentials.NoKeyring)
	assert.False(t, cfg.Credentials.NoWriteBack)
	assert.True(t, cfg.Credentials.Form)
	assert.Equal(t, 2, cfg.Credentials.MaxAttempts)
	assert.Equal(t, 20*time.Second, cfg.Workers.SyncTimeout)
	assert.Equal(t, uint64(3), cfg.Workers.SyncRetries)
	assert.Equal(t, "socks5://127.0.0.1:1080", cfg.Proxy)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_Malformed(t *testing.T) {
	path := writeTempJSONConfig(t, `{"adapter": `)

	_, err := parseJSON(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"string", `"1m30s"`, 90 * time.Second, false},
		{"nanoseconds", `1000000000`, time.Second, false},
		{"bad string", `"later"`, 0, true},
		{"bool", `true`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Duration(2 * time.Minute))
	require.NoError(t, err)
	assert.JSONEq(t, `"2m0s"`, string(data))
}
