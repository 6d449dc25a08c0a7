// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUserID        = errors.New("user ID is required")
	ErrMalformedUserID    = errors.New("user ID must look like @localpart:server")
	ErrEmptyDeviceID      = errors.New("device ID is required")
	ErrEmptyAccessToken   = errors.New("access token is required")
	ErrServerNameMismatch = errors.New("session belongs to a different server")
	ErrEmptyUsername      = errors.New("username is required")
	ErrEmptyPassword      = errors.New("password is required")
)
