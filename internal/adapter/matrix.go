// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-matrix-client/internal/config"
	"github.com/MKhiriev/go-matrix-client/internal/logger"
	"github.com/MKhiriev/go-matrix-client/internal/store"
	"github.com/MKhiriev/go-matrix-client/internal/utils"
	"github.com/MKhiriev/go-matrix-client/models"
)

const userAgent = "go-matrix-client"

type matrixClient struct {
	client *utils.HTTPClient

	baseURL        string
	deviceName     string
	requestTimeout time.Duration
	retryBase      time.Duration

	session models.Session
	handler models.MessageHandler

	syncState store.SyncStateRepository
	events    store.EventCacheRepository

	logger *logger.Logger
}

// NewMatrixClient constructs the Matrix implementation of [ProtocolClient].
//
// adapterCfg.ServerName is either a homeserver URL, used as is, or a server
// name resolved through https://<name>/.well-known/matrix/client. A missing
// well-known document falls back to https://<name>; a malformed one is an
// error.
//
// syncState and events persist the sync token and received messages; either
// may be nil.
func NewMatrixClient(
	ctx context.Context,
	adapterCfg config.ClientAdapter,
	syncState store.SyncStateRepository,
	events store.EventCacheRepository,
	logger *logger.Logger,
) (ProtocolClient, error) {
	client := utils.NewHTTPClient(utils.HTTPClientOptions{
		Proxy:     adapterCfg.Proxy,
		UserAgent: userAgent,
	})
	if adapterCfg.Proxy != "" {
		logger.Warn().Str("proxy", adapterCfg.Proxy).Msg("using proxy, TLS certificate verification is disabled")
	}

	m := &matrixClient{
		client:         client,
		deviceName:     adapterCfg.DeviceName,
		requestTimeout: adapterCfg.RequestTimeout,
		retryBase:      500 * time.Millisecond,
		syncState:      syncState,
		events:         events,
		logger:         logger,
	}
	if m.requestTimeout <= 0 {
		m.requestTimeout = config.DefaultRequestTimeout
	}

	baseURL, err := m.resolveHomeserver(ctx, adapterCfg.ServerName)
	if err != nil {
		return nil, err
	}
	m.baseURL = baseURL
	client.SetBaseURL(baseURL)

	logger.Info().Str("homeserver", baseURL).Msg("homeserver resolved")
	return m, nil
}

// resolveHomeserver implements client-side server discovery.
func (m *matrixClient) resolveHomeserver(ctx context.Context, serverName string) (string, error) {
	serverName = strings.TrimSpace(serverName)
	if strings.Contains(serverName, "://") {
		return normalizeBaseURL(serverName)
	}

	fallback := utils.HomeserverURL(serverName)

	reqCtx, cancel := context.WithTimeout(ctx, m.requestTimeout)
	defer cancel()

	var wk wellKnownResponse
	resp, err := m.client.R().
		SetContext(reqCtx).
		Get(fallback + wellKnownPath)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		m.logger.Debug().Err(err).Str("server_name", serverName).Msg("well-known lookup failed, using server name")
		return fallback, nil
	}
	if resp.StatusCode() == http.StatusNotFound || resp.StatusCode() >= http.StatusInternalServerError {
		return fallback, nil
	}
	if err := mapHTTPError(resp); err != nil {
		return "", fmt.Errorf("%w: %w", ErrDiscovery, err)
	}

	if err := json.Unmarshal(resp.Body(), &wk); err != nil {
		return "", fmt.Errorf("%w: malformed well-known document: %w", ErrDiscovery, err)
	}
	if wk.Homeserver.BaseURL == "" {
		return "", fmt.Errorf("%w: well-known document has no m.homeserver.base_url", ErrDiscovery)
	}

	baseURL, err := normalizeBaseURL(wk.Homeserver.BaseURL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDiscovery, err)
	}
	return baseURL, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", errors.New("address must include an http(s) scheme and a host")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Login implements [ProtocolClient]. It POSTs an m.login.password request
// with an m.id.user identifier.
func (m *matrixClient) Login(ctx context.Context, username, password string) (models.Session, error) {
	reqCtx, cancel := context.WithTimeout(ctx, m.requestTimeout)
	defer cancel()

	resp, err := m.client.R().
		SetContext(reqCtx).
		SetHeader("Content-Type", "application/json").
		SetBody(loginRequest{
			Type:                     loginTypePassword,
			Identifier:               userIdentifier{Type: identifierTypeUser, User: username},
			Password:                 password,
			InitialDeviceDisplayName: m.deviceName,
		}).
		Post(loginPath)
	if err != nil {
		return models.Session{}, mapTransportError("login request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		if IsMatrixError(err, ErrCodeForbidden) || IsMatrixError(err, ErrCodeUserDeactived) {
			return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
		}
		return models.Session{}, err
	}

	var result loginResponse
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.Session{}, fmt.Errorf("%w: malformed login response: %w", ErrBadRequest, err)
	}

	session := models.Session{
		UserID:       result.UserID,
		DeviceID:     result.DeviceID,
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
	}
	m.session = session

	m.logger.Info().
		Str("user_id", session.UserID).
		Str("device_id", session.DeviceID).
		Msg("logged in to matrix")

	return session, nil
}

// Restore implements [ProtocolClient].
func (m *matrixClient) Restore(_ context.Context, session models.Session) error {
	if session.AccessToken == "" || session.UserID == "" {
		return ErrNoSession
	}
	m.session = session

	m.logger.Info().
		Str("user_id", session.UserID).
		Str("device_id", session.DeviceID).
		Msg("session restored")
	return nil
}

// RegisterEventHandler implements [ProtocolClient].
func (m *matrixClient) RegisterEventHandler(handler models.MessageHandler) {
	m.handler = handler
}
