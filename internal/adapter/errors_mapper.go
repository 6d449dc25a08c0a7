// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for 2xx responses. Otherwise it decodes the
// Matrix error body and wraps it with the matching sentinel.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	matrixErr := &MatrixError{StatusCode: resp.StatusCode()}
	body := strings.TrimSpace(string(resp.Body()))
	if err := json.Unmarshal(resp.Body(), matrixErr); err != nil || matrixErr.Code == "" {
		matrixErr.Code = ErrCodeUnknown
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		matrixErr.Message = body
	}

	switch {
	case matrixErr.Code == ErrCodeUnknownToken || matrixErr.Code == ErrCodeMissingToken ||
		resp.StatusCode() == http.StatusUnauthorized:
		return fmt.Errorf("%w: %w", ErrUnknownToken, matrixErr)
	case matrixErr.Code == ErrCodeLimitExceeded || resp.StatusCode() == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %w", ErrRateLimited, matrixErr)
	case resp.StatusCode() >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %w", ErrServerUnavailable, matrixErr)
	case matrixErr.Code == ErrCodeForbidden || resp.StatusCode() == http.StatusForbidden:
		return fmt.Errorf("%w: %w", ErrForbidden, matrixErr)
	default:
		return fmt.Errorf("%w: %w", ErrBadRequest, matrixErr)
	}
}

// mapTransportError classifies an error returned by resty before any
// response was read.
func mapTransportError(op string, err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w: %w", op, ErrServerUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// isTransient reports whether a failed request is worth repeating.
func isTransient(err error) bool {
	return errors.Is(err, ErrServerUnavailable) || errors.Is(err, ErrRateLimited)
}
