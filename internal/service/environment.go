// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-matrix-client/internal/console"
	"github.com/MKhiriev/go-matrix-client/internal/logger"
)

// Environment carries the process-wide collaborators. It is built once in
// main and passed to every service.
type Environment struct {
	// ServiceName keys the secure store entry and names the log role.
	ServiceName string

	Logger  *logger.Logger
	Console *console.Printer
}

// NewEnvironment fills missing collaborators with silent defaults.
func NewEnvironment(serviceName string, log *logger.Logger, printer *console.Printer) *Environment {
	if log == nil {
		log = logger.Nop()
	}
	if printer == nil {
		printer = console.Discard()
	}
	return &Environment{
		ServiceName: serviceName,
		Logger:      log,
		Console:     printer,
	}
}
