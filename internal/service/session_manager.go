// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-matrix-client/internal/adapter"
	"github.com/MKhiriev/go-matrix-client/internal/app"
	"github.com/MKhiriev/go-matrix-client/internal/store"
	"github.com/MKhiriev/go-matrix-client/internal/validators"
	"github.com/MKhiriev/go-matrix-client/models"
)

type sessionManager struct {
	env         *Environment
	serverName  string
	sessions    store.SessionStore
	protocol    adapter.ProtocolClient
	credentials CredentialProvider
	validator   validators.Validator

	// maxAttempts bounds failed logins; 0 means unbounded.
	maxAttempts int

	state   models.SessionState
	session models.Session
}

// NewSessionManager constructs the [SessionService] state machine:
//
//	Uninitialized → Restoring → Authenticated
//	                   ↓            ↑
//	             Authenticating ────┘
//
// Any fatal error moves it to Failed, which is terminal.
func NewSessionManager(
	env *Environment,
	serverName string,
	sessions store.SessionStore,
	protocol adapter.ProtocolClient,
	credentials CredentialProvider,
	maxAttempts int,
) SessionService {
	return &sessionManager{
		env:         env,
		serverName:  serverName,
		sessions:    sessions,
		protocol:    protocol,
		credentials: credentials,
		validator:   validators.NewSessionValidator(serverName),
		maxAttempts: maxAttempts,
		state:       models.StateUninitialized,
	}
}

func (m *sessionManager) State() models.SessionState {
	return m.state
}

func (m *sessionManager) Fail(err error) {
	if m.state == models.StateFailed {
		return
	}
	m.env.Logger.Error().Err(err).Str("from", m.state.String()).Msg("session lifecycle failed")
	m.state = models.StateFailed
}

func (m *sessionManager) Establish(ctx context.Context) (models.Session, error) {
	switch m.state {
	case models.StateAuthenticated:
		return m.session, nil
	case models.StateFailed:
		return models.Session{}, ErrLifecycleFailed
	}

	session, err := m.restore(ctx)
	if err == nil {
		return m.authenticated(session), nil
	}
	if !errors.Is(err, store.ErrSessionNotFound) {
		m.Fail(err)
		return models.Session{}, err
	}

	m.env.Console.Logf(app.MsgNoSession, m.serverName)

	session, err = m.authenticate(ctx)
	if err != nil {
		m.Fail(err)
		return models.Session{}, err
	}
	return m.authenticated(session), nil
}

// restore loads and validates the saved session and hands it to the
// protocol client. It performs no network I/O and writes nothing.
func (m *sessionManager) restore(ctx context.Context) (models.Session, error) {
	m.state = models.StateRestoring

	session, err := m.sessions.Load(ctx)
	if err != nil {
		return models.Session{}, err
	}

	if err = m.validator.Validate(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w: %w", store.ErrCorruptSession, ErrInvalidSession, err)
	}

	if err = m.protocol.Restore(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("error restoring session: %w", err)
	}

	m.env.Logger.Info().Str("user_id", session.UserID).Msg("session restored from disk")
	m.env.Console.Logf(app.MsgSessionRestored, session.UserID, session.DeviceID)
	return session, nil
}

// authenticate asks for credentials until a login succeeds.
func (m *sessionManager) authenticate(ctx context.Context) (models.Session, error) {
	m.state = models.StateAuthenticating

	for failures := 0; ; {
		if err := ctx.Err(); err != nil {
			return models.Session{}, err
		}

		cred, err := m.credentials.Credential(ctx)
		if err != nil {
			return models.Session{}, fmt.Errorf("error getting credential: %w", err)
		}

		outcome := m.login(ctx, cred)
		if outcome.Succeeded() {
			if err = m.persist(ctx, outcome.Session); err != nil {
				return models.Session{}, err
			}
			m.accept(ctx, cred)
			m.env.Console.Logf(app.MsgLoggedIn, outcome.Session.UserID, outcome.Session.DeviceID)
			return outcome.Session, nil
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return models.Session{}, ctxErr
		}
		if errors.Is(outcome.Reason, ErrInvalidSession) {
			return models.Session{}, outcome.Reason
		}

		failures++
		m.env.Logger.Warn().
			Err(outcome.Reason).
			Str("origin", cred.Origin.String()).
			Int("failures", failures).
			Msg("login attempt failed")
		m.env.Console.Errorf(app.MsgLoginFailed, Describe(outcome.Reason))
		m.credentials.Reject(ctx, cred, outcome.Reason)

		if m.maxAttempts > 0 && failures >= m.maxAttempts {
			return models.Session{}, fmt.Errorf("%w: %w", ErrTooManyAttempts, outcome.Reason)
		}
	}
}

// login runs one attempt. The outcome always carries either a session or
// the reason the attempt failed.
func (m *sessionManager) login(ctx context.Context, cred models.Credential) models.LoginOutcome {
	if err := m.validator.Validate(ctx, cred); err != nil {
		return models.LoginFailed(err)
	}

	session, err := m.protocol.Login(ctx, cred.Username, cred.Password)
	if err != nil {
		return models.LoginFailed(err)
	}

	if err = m.validator.Validate(ctx, session); err != nil {
		return models.LoginFailed(fmt.Errorf("%w: %w", ErrInvalidSession, err))
	}

	return models.LoginSucceeded(session)
}

func (m *sessionManager) persist(ctx context.Context, session models.Session) error {
	if err := m.sessions.Save(ctx, session); err != nil {
		return fmt.Errorf("error saving session: %w", err)
	}
	m.env.Logger.Info().Str("user_id", session.UserID).Msg("session saved")
	return nil
}

// accept reports success to the provider. A failed write-back is reported
// and the login still counts.
func (m *sessionManager) accept(ctx context.Context, cred models.Credential) {
	if err := m.credentials.Accept(ctx, cred); err != nil {
		m.env.Logger.Warn().Err(err).Msg("credential write-back failed")
		m.env.Console.Errorf(app.MsgCredentialNotSaved, err)
	}
}

func (m *sessionManager) authenticated(session models.Session) models.Session {
	m.session = session
	m.state = models.StateAuthenticated
	return session
}
