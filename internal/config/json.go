// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the optional JSON config file.
type StructuredJSONConfig struct {
	App struct {
		ServiceName string `json:"service_name"`
		Account     string `json:"account"`
		LogDir      string `json:"log_dir"`
	} `json:"app,omitempty"`

	Storage struct {
		SessionPath string `json:"session_path"`
	} `json:"storage,omitempty"`

	Adapter struct {
		ServerName     string   `json:"server_name"`
		RequestTimeout Duration `json:"request_timeout"`
		DeviceName     string   `json:"device_name"`
	} `json:"adapter,omitempty"`

	Credentials struct {
		NoKeyring   bool `json:"no_keyring"`
		NoWriteBack bool `json:"no_write_back"`
		Form        bool `json:"form"`
		MaxAttempts int  `json:"max_attempts"`
	} `json:"credentials,omitempty"`

	Workers struct {
		SyncTimeout Duration `json:"sync_timeout"`
		SyncRetries uint64   `json:"sync_retries"`
	} `json:"workers,omitempty"`

	Proxy string `json:"proxy"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			ServiceName: jsonCfg.App.ServiceName,
			Account:     jsonCfg.App.Account,
			LogDir:      jsonCfg.App.LogDir,
		},
		Storage: Storage{
			SessionPath: jsonCfg.Storage.SessionPath,
		},
		Adapter: Adapter{
			ServerName:     jsonCfg.Adapter.ServerName,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			DeviceName:     jsonCfg.Adapter.DeviceName,
		},
		Credentials: Credentials{
			NoKeyring:   jsonCfg.Credentials.NoKeyring,
			NoWriteBack: jsonCfg.Credentials.NoWriteBack,
			Form:        jsonCfg.Credentials.Form,
			MaxAttempts: jsonCfg.Credentials.MaxAttempts,
		},
		Workers: Workers{
			SyncTimeout: time.Duration(jsonCfg.Workers.SyncTimeout),
			SyncRetries: jsonCfg.Workers.SyncRetries,
		},
		Proxy: jsonCfg.Proxy,
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
