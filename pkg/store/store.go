/*
Package store provides the key-value persistence wordfix keeps its rule data in.

The autocorrect core only needs two operations, Get and Set, over string keys
and string values. Three backends are provided:

  - Memory: a map, for tests and throwaway sessions.
  - File: a TOML document on disk, rewritten on every Set.
  - Postgres: a single kv table, for hosts that share rules between machines.

Open picks a backend from the [store] config section.
*/
package store

import (
	"fmt"
	"sync"

	"github.com/bastiangx/wordfix/pkg/config"
)

// KV is the persistent key-value collaborator.
// Get reports false when key has never been set.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Open returns the backend selected by cfg.Backend.
// defaultPath is used by the file backend when cfg.Path is empty.
func Open(cfg config.StoreConfig, defaultPath string) (KV, error) {
	switch cfg.Backend {
	case "", "file":
		path := cfg.Path
		if path == "" {
			path = defaultPath
		}
		return OpenFile(path)
	case "memory":
		return NewMemory(), nil
	case "postgres":
		return OpenPostgres(cfg.DSN)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}

// Memory is a map-backed KV safe for concurrent use.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	m.values[key] = value
	m.mu.Unlock()
	return nil
}
