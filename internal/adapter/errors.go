// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials is returned by Login when the homeserver rejects
	// the username or password.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUnknownToken means the access token is unknown to the homeserver,
	// usually because the device was logged out elsewhere.
	ErrUnknownToken = errors.New("access token is not recognised by the homeserver")
	// ErrRateLimited is returned for HTTP 429 / M_LIMIT_EXCEEDED.
	ErrRateLimited = errors.New("rate limited by homeserver")
	// ErrServerUnavailable is returned for 5xx responses and transport
	// failures.
	ErrServerUnavailable = errors.New("homeserver unavailable")
	// ErrForbidden is returned for M_FORBIDDEN outside of login.
	ErrForbidden = errors.New("forbidden")
	// ErrBadRequest is returned for any other 4xx response.
	ErrBadRequest = errors.New("bad request")
	// ErrNoSession is returned by Sync before Login or Restore.
	ErrNoSession = errors.New("no session: login or restore first")
	// ErrDiscovery is returned when .well-known discovery yields an
	// unusable homeserver URL.
	ErrDiscovery = errors.New("homeserver discovery failed")
)

// Standard Matrix error codes.
const (
	ErrCodeForbidden     = "M_FORBIDDEN"
	ErrCodeUnknownToken  = "M_UNKNOWN_TOKEN"
	ErrCodeMissingToken  = "M_MISSING_TOKEN"
	ErrCodeLimitExceeded = "M_LIMIT_EXCEEDED"
	ErrCodeUserDeactived = "M_USER_DEACTIVATED"
	ErrCodeUnknown       = "M_UNKNOWN"
)

// MatrixError is the standard error body of the client-server API.
type MatrixError struct {
	// Code is the Matrix error code (e.g., "M_FORBIDDEN", "M_UNKNOWN_TOKEN").
	Code string `json:"errcode"`
	// Message is the human-readable error description from the server.
	Message string `json:"error"`
	// RetryAfterMs is set on M_LIMIT_EXCEEDED.
	RetryAfterMs int64 `json:"retry_after_ms,omitempty"`
	// StatusCode is the HTTP status code of the response.
	StatusCode int `json:"-"`
}

func (e *MatrixError) Error() string {
	return fmt.Sprintf("matrix: %s (%d): %s", e.Code, e.StatusCode, e.Message)
}

// IsMatrixError checks whether err is a *MatrixError with the given error code.
func IsMatrixError(err error, code string) bool {
	var matrixErr *MatrixError
	if errors.As(err, &matrixErr) {
		return matrixErr.Code == code
	}
	return false
}
