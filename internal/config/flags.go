// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// Usage is printed by the client binary on configuration errors.
const Usage = "usage: go-matrix-client [flags] <server_name> [session_path]"

// parseFlags parses the command line.
//
// Positional arguments:
//
//	server_name   Matrix server name or homeserver URL (required)
//	session_path  storage directory (default: OS temp dir)
//
// Flags:
//
//	-p/--proxy             proxy URL for all homeserver traffic
//	-c/--config            JSON config file path
//	--service-name         secure store service name
//	--account              secure store account
//	--log-dir              structured log directory
//	--device-name          device display name sent on login
//	--request-timeout      timeout of login/discovery requests
//	--no-keyring           do not consult the OS secure store
//	--no-write-back        do not save prompted credentials to the secure store
//	--form                 use the full-screen login form
//	--max-attempts         give up after this many failed logins (0 = never)
//	--sync-timeout         /sync long-poll timeout
//	--sync-retries         consecutive transient sync failures tolerated
//
// The second result names the flags given on the command line, so that an
// explicit zero value (--max-attempts 0, --no-keyring=false) can still
// override an earlier source.
func parseFlags(args []string) (*StructuredConfig, []string, error) {
	var (
		cfg            StructuredConfig
		requestTimeout time.Duration
		syncTimeout    time.Duration
	)

	fs := pflag.NewFlagSet("go-matrix-client", pflag.ContinueOnError)
	fs.StringVarP(&cfg.Proxy, "proxy", "p", "", "Proxy URL for homeserver traffic")
	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")
	fs.StringVar(&cfg.App.ServiceName, "service-name", "", "Secure credential store service name")
	fs.StringVar(&cfg.App.Account, "account", "", "Secure credential store account")
	fs.StringVar(&cfg.App.LogDir, "log-dir", "", "Directory of the structured log file")
	fs.StringVar(&cfg.Adapter.DeviceName, "device-name", "", "Device display name sent on login")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Timeout of login and discovery requests (e.g. 30s)")
	fs.BoolVar(&cfg.Credentials.NoKeyring, "no-keyring", false, "Do not consult the OS secure credential store")
	fs.BoolVar(&cfg.Credentials.NoWriteBack, "no-write-back", false, "Do not save prompted credentials to the secure store")
	fs.BoolVar(&cfg.Credentials.Form, "form", false, "Use the full-screen login form")
	fs.IntVar(&cfg.Credentials.MaxAttempts, "max-attempts", 0, "Give up after this many failed logins (0 = never)")
	fs.DurationVar(&syncTimeout, "sync-timeout", 0, "Sync long-poll timeout (e.g. 30s)")
	fs.Uint64Var(&cfg.Workers.SyncRetries, "sync-retries", 0, "Consecutive transient sync failures tolerated")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	positional := fs.Args()
	if len(positional) > 2 {
		return nil, nil, fmt.Errorf("%w: unexpected argument %q", ErrTooManyArguments, positional[2])
	}
	if len(positional) > 0 {
		cfg.Adapter.ServerName = positional[0]
	}
	if len(positional) > 1 {
		cfg.Storage.SessionPath = positional[1]
	}

	cfg.Adapter.RequestTimeout = requestTimeout
	cfg.Workers.SyncTimeout = syncTimeout

	var set []string
	fs.Visit(func(f *pflag.Flag) {
		set = append(set, f.Name)
	})

	return &cfg, set, nil
}

// flagFields copies the field behind each flag from src to dst.
var flagFields = map[string]func(dst, src *StructuredConfig){
	"proxy":           func(dst, src *StructuredConfig) { dst.Proxy = src.Proxy },
	"config":          func(dst, src *StructuredConfig) { dst.JSONFilePath = src.JSONFilePath },
	"service-name":    func(dst, src *StructuredConfig) { dst.App.ServiceName = src.App.ServiceName },
	"account":         func(dst, src *StructuredConfig) { dst.App.Account = src.App.Account },
	"log-dir":         func(dst, src *StructuredConfig) { dst.App.LogDir = src.App.LogDir },
	"device-name":     func(dst, src *StructuredConfig) { dst.Adapter.DeviceName = src.Adapter.DeviceName },
	"request-timeout": func(dst, src *StructuredConfig) { dst.Adapter.RequestTimeout = src.Adapter.RequestTimeout },
	"no-keyring":      func(dst, src *StructuredConfig) { dst.Credentials.NoKeyring = src.Credentials.NoKeyring },
	"no-write-back":   func(dst, src *StructuredConfig) { dst.Credentials.NoWriteBack = src.Credentials.NoWriteBack },
	"form":            func(dst, src *StructuredConfig) { dst.Credentials.Form = src.Credentials.Form },
	"max-attempts":    func(dst, src *StructuredConfig) { dst.Credentials.MaxAttempts = src.Credentials.MaxAttempts },
	"sync-timeout":    func(dst, src *StructuredConfig) { dst.Workers.SyncTimeout = src.Workers.SyncTimeout },
	"sync-retries":    func(dst, src *StructuredConfig) { dst.Workers.SyncRetries = src.Workers.SyncRetries },
}

// pinFlags returns a function applying the given flags of src verbatim,
// zero values included.
func pinFlags(src *StructuredConfig, names []string) func(*StructuredConfig) {
	return func(dst *StructuredConfig) {
		for _, name := range names {
			if apply, ok := flagFields[name]; ok {
				apply(dst, src)
			}
		}
	}
}
