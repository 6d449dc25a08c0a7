// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncSettings controls the continuous synchronisation loop.
type SyncSettings struct {
	// Timeout is the long-poll duration sent to the homeserver.
	Timeout time.Duration

	// MaxRetries is the number of consecutive transient failures tolerated
	// before the loop gives up with a fatal error.
	MaxRetries uint64

	// Filter is an optional filter ID or inline JSON filter.
	Filter string
}

// DefaultSyncSettings returns the settings used when none are configured.
func DefaultSyncSettings() SyncSettings {
	return SyncSettings{
		Timeout:    30 * time.Second,
		MaxRetries: 5,
	}
}
