// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net"
	"net/url"
	"strings"
)

// ServerHost reduces a Matrix server name or homeserver URL to a comparable
// host: lowercase, without scheme, port, path or IPv6 brackets.
//
//	ServerHost("Example.org:8448")                 == "example.org"
//	ServerHost("https://matrix.example.org/path")  == "matrix.example.org"
//	ServerHost("[::1]:8448")                       == "::1"
func ServerHost(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	if strings.Contains(name, "://") {
		if u, err := url.Parse(name); err == nil {
			return strings.ToLower(u.Hostname())
		}
	}

	if host, _, err := net.SplitHostPort(name); err == nil {
		return strings.ToLower(host)
	}

	return strings.ToLower(strings.Trim(name, "[]"))
}

// HomeserverURL turns a server name into the base URL used when
// .well-known discovery is unavailable. Names already carrying a scheme are
// returned without a trailing slash.
func HomeserverURL(name string) string {
	name = strings.TrimRight(strings.TrimSpace(name), "/")
	if name == "" {
		return ""
	}
	if strings.Contains(name, "://") {
		return name
	}
	return "https://" + name
}
