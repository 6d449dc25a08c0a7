// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// Layout of a storage location.
const (
	CryptoDir       = "crypto"
	StateDir        = "state"
	CacheDir        = "cache"
	SessionFileName = "session.json"

	StateDBFileName = "state.db"
	CacheDBFileName = "events.db"

	dirPerm  os.FileMode = 0o700
	filePerm os.FileMode = 0o600
)

// StorageLocation is the directory owning one session and the protocol
// client's crypto, state and cache stores.
//
// A location belongs to one process at a time. Nothing enforces this; two
// clients pointed at the same directory will overwrite each other's session.
type StorageLocation struct {
	root string
}

func NewStorageLocation(root string) StorageLocation {
	return StorageLocation{root: filepath.Clean(root)}
}

func (l StorageLocation) Root() string        { return l.root }
func (l StorageLocation) CryptoPath() string  { return filepath.Join(l.root, CryptoDir) }
func (l StorageLocation) StatePath() string   { return filepath.Join(l.root, StateDir) }
func (l StorageLocation) CachePath() string   { return filepath.Join(l.root, CacheDir) }
func (l StorageLocation) SessionFile() string { return filepath.Join(l.root, SessionFileName) }

func (l StorageLocation) StateDB() string {
	return filepath.Join(l.StatePath(), StateDBFileName)
}

func (l StorageLocation) CacheDB() string {
	return filepath.Join(l.CachePath(), CacheDBFileName)
}

// Prepare creates the root and its sub-store directories, owner-only.
// Existing directories keep their permissions.
func (l StorageLocation) Prepare() error {
	for _, dir := range []string{l.root, l.CryptoPath(), l.StatePath(), l.CachePath()} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("%w: %w", ErrStorageUnwritable, err)
		}
	}
	return nil
}
