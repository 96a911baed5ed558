package store

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/bastiangx/wordfix/internal/utils"
	"github.com/charmbracelet/log"
)

// fileDoc is the on-disk layout of a File store.
type fileDoc struct {
	Values map[string]string `toml:"values"`
}

// File is a KV persisted as a TOML document.
// The whole document is rewritten on every Set.
type File struct {
	path   string
	mu     sync.RWMutex
	values map[string]string
}

// OpenFile loads path if it exists, or starts empty.
func OpenFile(path string) (*File, error) {
	if path == "" {
		return nil, fmt.Errorf("file store: empty path")
	}
	f := &File{path: path, values: make(map[string]string)}

	if !utils.FileExists(path) {
		log.Debugf("file store %s does not exist yet", path)
		return f, nil
	}

	var doc fileDoc
	if err := utils.LoadTOMLFile(path, &doc); err != nil {
		return nil, fmt.Errorf("file store %s: %w", path, err)
	}
	for k, v := range doc.Values {
		f.values[k] = v
	}
	log.Debugf("file store %s loaded with %d keys", path, len(f.values))
	return f, nil
}

// Path returns the file backing the store.
func (f *File) Path() string { return f.path }

func (f *File) Get(key string) (string, bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.values[key]
	return v, ok, nil
}

// Set updates key and rewrites the file. On write failure the in-memory
// value is kept and the error returned.
func (f *File) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.values[key] = value
	if err := utils.EnsureDir(filepath.Dir(f.path)); err != nil {
		return fmt.Errorf("file store: %w", err)
	}
	doc := fileDoc{Values: make(map[string]string, len(f.values))}
	for k, v := range f.values {
		doc.Values[k] = v
	}
	if err := utils.SaveTOMLFile(doc, f.path); err != nil {
		return fmt.Errorf("file store %s: %w", f.path, err)
	}
	return nil
}
