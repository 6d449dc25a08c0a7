// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package credential

import (
	"context"

	"github.com/MKhiriev/go-matrix-client/models"
)

// StaticSource returns a fixed credential. It is for tests and local
// development only and cannot be selected through configuration.
type StaticSource struct {
	username string
	password string
}

func NewStaticSource(username, password string) *StaticSource {
	return &StaticSource{username: username, password: password}
}

func (s *StaticSource) Credential(context.Context) (models.Credential, error) {
	if s.username == "" {
		return models.Credential{}, ErrNotFound
	}
	return models.Credential{
		Username: s.username,
		Password: s.password,
		Origin:   models.OriginStatic,
	}, nil
}
