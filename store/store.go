// Copyright (C) 2025 Specter Ops, Inc.
//
// This file is part of PIMHound.
//
// PIMHound is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// PIMHound is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package store persists the user-scoped documents (presets, favorites,
// subscription cache) under opaque keys. Every write replaces the whole
// document; there is no cross-process locking because the tool targets a
// single interactive user.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/bloodhoundad/pimhound/constants"
)

//go:generate go run go.uber.org/mock/mockgen -destination=./mocks/store.go -package=mocks . Store

type Store interface {
	// Get returns the stored document and whether it exists.
	Get(key string) ([]byte, bool, error)

	// Put replaces the stored document.
	Put(key string, data []byte) error

	// Delete removes the stored document, reporting whether it existed.
	// Deleting a missing document is not an error.
	Delete(key string) (bool, error)
}

// DefaultDir returns the per-user directory documents are kept in.
func DefaultDir() (string, error) {
	if base, err := os.UserConfigDir(); err != nil {
		return "", fmt.Errorf("unable to locate user config dir: %w", err)
	} else {
		return filepath.Join(base, constants.Name), nil
	}
}

func NewFileStore(fs afero.Fs, dir string) Store {
	return &fileStore{fs: fs, dir: dir}
}

type fileStore struct {
	fs  afero.Fs
	dir string
}

func (s *fileStore) path(key string) string {
	// keys are tool-chosen and never contain separators, but flatten them
	// anyway so a bad key cannot escape the store directory
	safe := strings.ReplaceAll(key, string(os.PathSeparator), "_")
	return filepath.Join(s.dir, safe+".json")
}

func (s *fileStore) Get(key string) ([]byte, bool, error) {
	if data, err := afero.ReadFile(s.fs, s.path(key)); os.IsNotExist(err) {
		return nil, false, nil
	} else if err != nil {
		return nil, false, fmt.Errorf("unable to read %s: %w", key, err)
	} else {
		return data, true, nil
	}
}

func (s *fileStore) Put(key string, data []byte) error {
	if err := s.fs.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("unable to create store dir: %w", err)
	} else if err := afero.WriteFile(s.fs, s.path(key), data, 0o600); err != nil {
		return fmt.Errorf("unable to write %s: %w", key, err)
	} else {
		return nil
	}
}

func (s *fileStore) Delete(key string) (bool, error) {
	if err := s.fs.Remove(s.path(key)); os.IsNotExist(err) {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("unable to delete %s: %w", key, err)
	} else {
		return true, nil
	}
}
