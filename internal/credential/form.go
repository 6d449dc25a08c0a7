// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package credential

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-matrix-client/internal/tui"
	"github.com/MKhiriev/go-matrix-client/models"
)

// FormRunner shows a login form once.
type FormRunner interface {
	Run(ctx context.Context, req tui.FormRequest) (tui.FormResult, error)
}

// FormSource asks for the credential in a full-screen form. Its
// credentials count as prompted ones.
type FormSource struct {
	form     FormRunner
	server   string
	lastUser string
	lastErr  error
}

func NewFormSource(form FormRunner, server string) *FormSource {
	return &FormSource{
		form:   form,
		server: server,
	}
}

// Credential implements [Source]. Closing the form yields [ErrInputClosed].
func (f *FormSource) Credential(ctx context.Context) (models.Credential, error) {
	res, err := f.form.Run(ctx, tui.FormRequest{
		Server:    f.server,
		Username:  f.lastUser,
		LastError: f.lastErr,
	})
	if errors.Is(err, tui.ErrUserQuit) {
		return models.Credential{}, ErrInputClosed
	}
	if err != nil {
		return models.Credential{}, err
	}

	f.lastUser = res.Username
	f.lastErr = nil

	return models.Credential{
		Username: res.Username,
		Password: res.Password,
		Origin:   models.OriginPrompt,
	}, nil
}

// Rejected records why the last login failed so the next form shows it.
func (f *FormSource) Rejected(reason error) {
	f.lastErr = reason
}
