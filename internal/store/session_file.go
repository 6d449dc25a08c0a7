// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-matrix-client/internal/logger"
	"github.com/MKhiriev/go-matrix-client/models"
)

type sessionFileStore struct {
	path   string
	logger *logger.Logger
}

// NewSessionFileStore returns a [SessionStore] backed by a JSON file.
func NewSessionFileStore(path string, logger *logger.Logger) SessionStore {
	return &sessionFileStore{
		path:   path,
		logger: logger,
	}
}

func (s *sessionFileStore) Load(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		log.Err(err).Str("path", s.path).Msg("failed to read session file")
		return models.Session{}, fmt.Errorf("error reading session file %s: %w", s.path, err)
	}

	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil {
		log.Err(err).Str("path", s.path).Msg("session file cannot be decoded")
		return models.Session{}, fmt.Errorf("%w: %s: %w", ErrCorruptSession, s.path, err)
	}

	log.Debug().Str("path", s.path).Str("user_id", session.UserID).Msg("session loaded")
	return session, nil
}

// Save writes to a temp file in the same directory, syncs it and renames it
// over the target. A failure at any step leaves the previous file in place.
func (s *sessionFileStore) Save(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding session: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		log.Err(err).Str("dir", dir).Msg("failed to create session directory")
		return fmt.Errorf("%w: %w", ErrStorageUnwritable, err)
	}

	tmp, err := os.CreateTemp(dir, "."+SessionFileName+".*.tmp")
	if err != nil {
		log.Err(err).Str("dir", dir).Msg("failed to create temp session file")
		return fmt.Errorf("%w: %w", ErrStorageUnwritable, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if err := writeAndClose(tmp, data); err != nil {
		log.Err(err).Str("path", tmpName).Msg("failed to write temp session file")
		return fmt.Errorf("%w: %w", ErrStorageUnwritable, err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		log.Err(err).Str("path", s.path).Msg("failed to replace session file")
		return fmt.Errorf("%w: %w", ErrStorageUnwritable, err)
	}

	log.Debug().Str("path", s.path).Str("user_id", session.UserID).Msg("session saved")
	return nil
}

func writeAndClose(f *os.File, data []byte) error {
	if err := f.Chmod(filePerm); err != nil {
		f.Close()
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
