package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore implements Store on top of a single JSON file. The whole key
// space is kept in memory and flushed to disk on every mutation using a
// temp-file-and-rename sequence, so a crash mid-write never leaves a
// truncated file behind.
//
// A missing or unparsable file is treated as an empty store rather than an
// error, so a corrupt state file degrades to a fresh start instead of
// blocking the application.
type FileStore struct {
	path string

	mu     sync.RWMutex
	values map[string]string
	closed bool
}

// NewFileStore creates a file-backed store at path, loading any existing
// contents. The parent directory is created if it does not exist.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("kv: file store path is required")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("kv: create state directory: %w", err)
	}

	s := &FileStore{
		path:   path,
		values: make(map[string]string),
	}
	s.load()

	return s, nil
}

// load reads the state file into memory. Corrupt or missing data yields an
// empty map.
func (s *FileStore) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}

	var values map[string]string
	if err := json.Unmarshal(data, &values); err != nil || values == nil {
		return
	}
	s.values = values
}

// Get retrieves the value stored under key.
func (s *FileStore) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return "", ErrStoreClosed
	}

	value, exists := s.values[key]
	if !exists {
		return "", ErrKeyNotFound
	}
	return value, nil
}

// Set stores value under key and flushes the full key space to disk.
func (s *FileStore) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	s.values[key] = value
	return s.flush()
}

// Remove deletes the value stored under key and flushes to disk.
func (s *FileStore) Remove(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	if _, exists := s.values[key]; !exists {
		return nil
	}

	delete(s.values, key)
	return s.flush()
}

// Close flushes any pending state and marks the store as closed.
func (s *FileStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return nil
}

// flush writes the key space atomically. Callers must hold the write lock.
func (s *FileStore) flush() error {
	data, err := json.Marshal(s.values)
	if err != nil {
		return fmt.Errorf("kv: marshal state: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("kv: write state file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("kv: replace state file: %w", err)
	}
	return nil
}
