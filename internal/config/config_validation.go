// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

func (cfg *ClientConfig) validate() error {
	if err := validateServerName(cfg.Adapter.ServerName); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAdapterConfigs, err)
	}

	if cfg.Adapter.Proxy != "" {
		u, err := url.Parse(cfg.Adapter.Proxy)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: proxy must be an absolute URL, got %q", ErrInvalidAdapterConfigs, cfg.Adapter.Proxy)
		}
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	if strings.TrimSpace(cfg.Storage.SessionPath) == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Credentials.Keyring && (cfg.App.ServiceName == "" || cfg.App.Account == "") {
		return fmt.Errorf("%w: secure store needs a service name and an account", ErrInvalidAppConfigs)
	}

	if cfg.Credentials.MaxAttempts < 0 {
		return ErrInvalidCredentialConfigs
	}

	if cfg.Workers.SyncTimeout <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func validateServerName(serverName string) error {
	serverName = strings.TrimSpace(serverName)
	if serverName == "" {
		return fmt.Errorf("server name is required")
	}

	if strings.Contains(serverName, "://") {
		u, err := url.Parse(serverName)
		if err != nil {
			return err
		}
		if u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			return fmt.Errorf("homeserver URL must be http(s) with a host, got %q", serverName)
		}
		return nil
	}

	if strings.ContainsAny(serverName, "/ @") {
		return fmt.Errorf("invalid server name %q", serverName)
	}

	return nil
}
