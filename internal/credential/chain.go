// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package credential

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-matrix-client/internal/logger"
	"github.com/MKhiriev/go-matrix-client/models"
)

// rejectionListener is implemented by sources that show the previous
// failure when asked again.
type rejectionListener interface {
	Rejected(reason error)
}

type chainEntry struct {
	source   Source
	disabled bool
}

// Chain consults its sources in order and returns the first credential.
//
//   - ErrNotFound falls through to the next source.
//   - ErrAccessDenied falls through with a warning when a later source
//     exists, and is fatal otherwise.
//   - Any other error is returned as is.
//
// A non-interactive source whose credential was rejected by the server is
// not consulted again.
type Chain struct {
	entries   []*chainEntry
	last      *chainEntry
	writeBack *SecureStoreSource
	logger    *logger.Logger
}

func NewChain(logger *logger.Logger, sources ...Source) *Chain {
	entries := make([]*chainEntry, 0, len(sources))
	for _, s := range sources {
		if s != nil {
			entries = append(entries, &chainEntry{source: s})
		}
	}
	return &Chain{
		entries: entries,
		logger:  logger,
	}
}

// WithWriteBack makes [Chain.Accept] save prompted credentials to store.
func (c *Chain) WithWriteBack(store *SecureStoreSource) *Chain {
	c.writeBack = store
	return c
}

// Credential returns the next credential to try.
func (c *Chain) Credential(ctx context.Context) (models.Credential, error) {
	c.last = nil

	for i, e := range c.entries {
		if e.disabled {
			continue
		}

		cred, err := e.source.Credential(ctx)
		switch {
		case err == nil:
			c.last = e
			c.logger.Debug().Str("origin", cred.Origin.String()).Msg("credential resolved")
			return cred, nil

		case errors.Is(err, ErrNotFound):
			continue

		case errors.Is(err, ErrAccessDenied):
			if !c.hasEnabledAfter(i) {
				return models.Credential{}, fmt.Errorf("%w: %w", ErrCredentialsUnavailable, err)
			}
			c.logger.Warn().Err(err).Msg("secure store unavailable, falling back to the next credential source")
			e.disabled = true
			continue

		default:
			return models.Credential{}, err
		}
	}

	return models.Credential{}, ErrCredentialsUnavailable
}

// Accept is called after cred logged in successfully.
func (c *Chain) Accept(ctx context.Context, cred models.Credential) error {
	if c.writeBack == nil || cred.Origin != models.OriginPrompt {
		return nil
	}
	if err := c.writeBack.Store(ctx, cred); err != nil {
		return err
	}
	c.logger.Info().Str("username", cred.Username).Msg("credential saved to secure store")
	return nil
}

// Reject is called after the server refused cred.
func (c *Chain) Reject(_ context.Context, cred models.Credential, reason error) {
	if c.last == nil {
		return
	}

	if l, ok := c.last.source.(rejectionListener); ok {
		l.Rejected(reason)
	}

	if cred.Origin != models.OriginPrompt {
		c.logger.Info().Str("origin", cred.Origin.String()).Msg("credential rejected, not offering it again")
		c.last.disabled = true
	}
	c.last = nil
}

func (c *Chain) hasEnabledAfter(i int) bool {
	for _, e := range c.entries[i+1:] {
		if !e.disabled {
			return true
		}
	}
	return false
}
