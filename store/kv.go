// Package store persists the widget layout in a small key/value namespace.
package store

import (
	"errors"
	"fmt"
	"sync"
)

// KV is a durable string key/value namespace.
type KV interface {
	// Get reports ok=false for a missing key.
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	// Delete of a missing key is not an error.
	Delete(key string) error
	Close() error
}

type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

var ErrUnknownBackend = errors.New("store: unknown backend")

// Open returns the KV for backend. path is ignored by the memory backend.
func Open(backend Backend, path string) (KV, error) {
	switch backend {
	case BackendFile, "":
		return OpenFile(path)
	case BackendSQLite:
		return OpenSQLite(path)
	case BackendMemory:
		return NewMemory(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
}

// Memory keeps values for the process lifetime only.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

func (m *Memory) Close() error { return nil }
