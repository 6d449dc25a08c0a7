// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"os/user"
	"time"
)

const (
	DefaultServiceName    = "go-matrix-client"
	DefaultDeviceName     = "go-matrix-client"
	DefaultRequestTimeout = 30 * time.Second
	DefaultSyncTimeout    = 30 * time.Second
	DefaultSyncRetries    = 5
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			ServiceName: DefaultServiceName,
			Account:     currentAccount(),
		},
		Storage: Storage{
			SessionPath: os.TempDir(),
		},
		Adapter: Adapter{
			RequestTimeout: DefaultRequestTimeout,
			DeviceName:     DefaultDeviceName,
		},
		Workers: Workers{
			SyncTimeout: DefaultSyncTimeout,
			SyncRetries: DefaultSyncRetries,
		},
	}
}

// currentAccount names the OS user running the client; it keys the secure
// store entry.
func currentAccount() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
