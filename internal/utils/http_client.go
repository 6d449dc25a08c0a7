// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/tls"

	"github.com/go-resty/resty/v2"
)

// RequestIDHeader carries a per-request correlation ID to the homeserver.
const RequestIDHeader = "X-Request-ID"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.HTTPClientOptions{})
//	resp, err := client.R().Get("https://example.org/_matrix/client/versions")
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOptions configures [NewHTTPClient].
type HTTPClientOptions struct {
	// Proxy routes all traffic through the given URL. When set, TLS
	// certificate verification is disabled so that intercepting debug
	// proxies work.
	Proxy string

	// UserAgent is sent on every request when non-empty.
	UserAgent string
}

// NewHTTPClient creates and returns a new HTTPClient instance.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state. No client-wide timeout is set:
// callers bound each request with its context, since /sync long-polls and
// login requests need different deadlines.
//
// Every request gets an X-Request-ID header. The ID is taken from the
// request context (see [WithRequestID]) or freshly generated.
func NewHTTPClient(opts HTTPClientOptions) *HTTPClient {
	client := resty.New()

	if opts.Proxy != "" {
		client.SetProxy(opts.Proxy)
		client.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true}) //nolint:gosec // debugging proxies
	}

	if opts.UserAgent != "" {
		client.SetHeader("User-Agent", opts.UserAgent)
	}

	ids := NewUUIDGenerator()
	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if req.Header.Get(RequestIDHeader) != "" {
			return nil
		}
		id, ok := GetRequestIDFromContext(req.Context())
		if !ok {
			id = ids.Generate()
		}
		req.SetHeader(RequestIDHeader, id)
		return nil
	})

	return &HTTPClient{Client: client}
}
