// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates a missing or unparsable server
	// name, proxy URL or request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an empty session path.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates missing secure store addressing.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates a non-positive sync timeout.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidCredentialConfigs indicates a negative attempt limit.
	ErrInvalidCredentialConfigs = errors.New("invalid credentials configuration")
	// ErrTooManyArguments is returned for more than two positional arguments.
	ErrTooManyArguments = errors.New("too many arguments")
)
