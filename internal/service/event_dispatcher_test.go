// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-matrix-client/internal/console"
	"github.com/MKhiriev/go-matrix-client/internal/logger"
	"github.com/MKhiriev/go-matrix-client/internal/mock"
	"github.com/MKhiriev/go-matrix-client/models"
)

var helloEvent = models.MessageEvent{
	RoomID:  "!room:example.org",
	EventID: "$1",
	Sender:  "@bob:example.org",
	Type:    models.EventTypeRoomMessage,
	MsgType: "m.text",
	Body:    "hello",
}

func newTestEnv() *Environment {
	return NewEnvironment("go-matrix-client", logger.Nop(), console.Discard())
}

func TestEventDispatcher_Register(t *testing.T) {
	d := NewEventDispatcher(newTestEnv())
	noop := func(context.Context, models.MessageEvent) error { return nil }

	assert.ErrorIs(t, d.Register(nil), ErrNilHandler)
	require.NoError(t, d.Register(noop))
	assert.ErrorIs(t, d.Register(noop), ErrHandlerAlreadyRegistered)
}

func TestEventDispatcher_DispatchInOrder(t *testing.T) {
	d := NewEventDispatcher(newTestEnv())

	var got []string
	require.NoError(t, d.Register(func(_ context.Context, e models.MessageEvent) error {
		got = append(got, e.EventID)
		return nil
	}))

	for _, id := range []string{"$1", "$2", "$3"} {
		ev := helloEvent
		ev.EventID = id
		require.NoError(t, d.Dispatch(context.Background(), ev))
	}

	assert.Equal(t, []string{"$1", "$2", "$3"}, got)
}

func TestEventDispatcher_HandlerErrorIsSwallowed(t *testing.T) {
	d := NewEventDispatcher(newTestEnv())
	require.NoError(t, d.Register(func(context.Context, models.MessageEvent) error {
		return errors.New("render failed")
	}))

	assert.NoError(t, d.Dispatch(context.Background(), helloEvent))
}

func TestEventDispatcher_NoHandler(t *testing.T) {
	d := NewEventDispatcher(newTestEnv())
	assert.NoError(t, d.Dispatch(context.Background(), helloEvent))
}

func TestEventDispatcher_HandlerPanicIsNotRecovered(t *testing.T) {
	d := NewEventDispatcher(newTestEnv())
	require.NoError(t, d.Register(func(context.Context, models.MessageEvent) error {
		panic("boom")
	}))

	assert.Panics(t, func() {
		_ = d.Dispatch(context.Background(), helloEvent)
	})
}

func TestConsoleMessageHandler(t *testing.T) {
	var out bytes.Buffer
	handler := NewConsoleMessageHandler(console.New(&out, "Main"))

	require.NoError(t, handler(context.Background(), helloEvent))

	assert.Contains(t, out.String(), "Received a message in !room:example.org from @bob:example.org: hello")
}

func TestNewClientServices_RoutesEventsThroughDispatcher(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	protocol := mock.NewMockProtocolClient(ctrl)

	var registered models.MessageHandler
	protocol.EXPECT().RegisterEventHandler(gomock.Any()).Do(func(h models.MessageHandler) {
		registered = h
	})

	services := NewClientServices(newTestEnv(), testClientConfig(), mock.NewMockSessionStore(ctrl), protocol, mock.NewMockCredentialProvider(ctrl))
	require.NotNil(t, registered)

	var got []models.MessageEvent
	require.NoError(t, services.Dispatcher.Register(func(_ context.Context, e models.MessageEvent) error {
		got = append(got, e)
		return nil
	}))

	require.NoError(t, registered(context.Background(), helloEvent))
	assert.Equal(t, []models.MessageEvent{helloEvent}, got)
}
