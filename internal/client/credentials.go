// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"io"

	"github.com/MKhiriev/go-matrix-client/internal/config"
	"github.com/MKhiriev/go-matrix-client/internal/credential"
	"github.com/MKhiriev/go-matrix-client/internal/service"
	"github.com/MKhiriev/go-matrix-client/internal/tui"
)

// NewCredentialChain orders the credential sources: the OS secure store
// (unless disabled), then either the login form or line prompts on in.
// Prompted credentials are written back to the secure store after a
// successful login when write-back is enabled.
func NewCredentialChain(env *service.Environment, cfg *config.ClientConfig, store credential.SecureStore, in io.Reader, out io.Writer) *credential.Chain {
	var sources []credential.Source

	var keyring *credential.SecureStoreSource
	if cfg.Credentials.Keyring && store != nil {
		keyring = credential.NewSecureStoreSource(store, cfg.App.ServiceName, cfg.App.Account)
		sources = append(sources, keyring)
	}

	if cfg.Credentials.Form {
		sources = append(sources, credential.NewFormSource(tui.NewLoginForm(in, out), cfg.Adapter.ServerName))
	} else {
		sources = append(sources, credential.NewPromptSource(in, env.Console))
	}

	chain := credential.NewChain(env.Logger.Component("credentials"), sources...)
	if keyring != nil && cfg.Credentials.WriteBack {
		chain.WithWriteBack(keyring)
	}
	return chain
}
