// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bytes"
	"testing"

	"github.com/MKhiriev/go-matrix-client/internal/console"
	"github.com/MKhiriev/go-matrix-client/internal/logger"
	"github.com/stretchr/testify/assert"
)

type recordingCloser struct {
	name  string
	order *[]string
	err   error
}

func (c *recordingCloser) Close() error {
	*c.order = append(*c.order, c.name)
	return c.err
}

func TestFatalExit_ReleaseClosesInReverseOrder(t *testing.T) {
	var order []string
	var logs bytes.Buffer
	exit := &fatalExit{printer: console.Discard(), log: logger.New(&logs, "test")}

	exit.closeOnExit(&recordingCloser{name: "storages", order: &order})
	exit.closeOnExit(&recordingCloser{name: "protocol", order: &order, err: assert.AnError})
	exit.release()

	assert.Equal(t, []string{"protocol", "storages"}, order)
	assert.Contains(t, logs.String(), "close on exit")

	exit.release()
	assert.Len(t, order, 2, "closers run once")
}
