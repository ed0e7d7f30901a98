// Package storage implements the durable key-value stores backing access
// history.
package storage

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/zerr"
)

// File implements ports.KeyValueStore using a flat JSON file. Every write
// rewrites the whole file; the store holds a handful of small values, so
// simplicity wins over write amplification.
type File struct {
	path   string
	mu     sync.RWMutex
	values map[string][]byte
}

// NewFile creates a File store backed by the file at the given path. A
// missing file starts empty; an unreadable or corrupt file is an error so
// the caller can decide how to degrade.
func NewFile(path string) (*File, error) {
	s := &File{
		path:   filepath.Clean(path),
		values: make(map[string][]byte),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *File) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read storage file")
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.values); err != nil {
		return zerr.Wrap(err, "failed to unmarshal storage file")
	}

	return nil
}

func (s *File) saveLocked() error {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal storage file")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create storage directory")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write storage file")
	}

	return nil
}

// Get returns the value stored under key.
func (s *File) Get(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}
	return v, true, nil
}

// Set stores value under key and persists the file.
func (s *File) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return s.saveLocked()
}

// Delete removes the value stored under key and persists the file.
func (s *File) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.values[key]; !ok {
		return nil
	}
	delete(s.values, key)
	return s.saveLocked()
}
