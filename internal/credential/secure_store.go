// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package credential

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/MKhiriev/go-matrix-client/internal/logger"
	"github.com/MKhiriev/go-matrix-client/models"
)

// OSKeyring is the [SecureStore] of the running OS: Keychain on macOS,
// Secret Service on Linux, Credential Manager on Windows.
type OSKeyring struct{}

func (OSKeyring) Get(service, account string) (string, error) {
	return keyring.Get(service, account)
}

func (OSKeyring) Set(service, account, secret string) error {
	return keyring.Set(service, account, secret)
}

// storedSecret is what the secure store entry holds.
type storedSecret struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SecureStoreSource reads the credential from a [SecureStore] entry.
type SecureStoreSource struct {
	store   SecureStore
	service string
	account string
}

func NewSecureStoreSource(store SecureStore, service, account string) *SecureStoreSource {
	return &SecureStoreSource{
		store:   store,
		service: service,
		account: account,
	}
}

// Credential implements [Source]. An entry that is not a JSON object is
// taken as a bare password for a user named after the account.
func (s *SecureStoreSource) Credential(ctx context.Context) (models.Credential, error) {
	log := logger.FromContext(ctx)

	secret, err := s.store.Get(s.service, s.account)
	if errors.Is(err, keyring.ErrNotFound) {
		log.Debug().Str("service", s.service).Str("account", s.account).Msg("no secure store entry")
		return models.Credential{}, ErrNotFound
	}
	if err != nil {
		return models.Credential{}, fmt.Errorf("%w: %w", ErrAccessDenied, err)
	}

	var stored storedSecret
	if jsonErr := json.Unmarshal([]byte(secret), &stored); jsonErr != nil {
		stored = storedSecret{Username: s.account, Password: secret}
	}

	cred := models.Credential{
		Username: stored.Username,
		Password: stored.Password,
		Origin:   models.OriginSecureStore,
	}
	if cred.Empty() {
		log.Warn().Str("service", s.service).Str("account", s.account).Msg("secure store entry is incomplete, ignoring it")
		return models.Credential{}, ErrNotFound
	}

	return cred, nil
}

// Store writes cred to the secure store entry, replacing any previous one.
func (s *SecureStoreSource) Store(_ context.Context, cred models.Credential) error {
	data, err := json.Marshal(storedSecret{Username: cred.Username, Password: cred.Password})
	if err != nil {
		return fmt.Errorf("error encoding credential: %w", err)
	}

	if err := s.store.Set(s.service, s.account, string(data)); err != nil {
		return fmt.Errorf("error writing to secure store: %w", err)
	}
	return nil
}
