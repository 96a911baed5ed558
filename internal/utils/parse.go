package utils

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// LoadTOMLFile decodes path into v. Callers decide how to recover.
func LoadTOMLFile(path string, v any) error {
	if _, err := toml.DecodeFile(path, v); err != nil {
		log.Warnf("TOML error in %s: %v", path, err)
		return err
	}
	return nil
}

// ParseTOMLWithRecovery decodes path into a generic table so that sections
// which still parse can be picked out one by one.
func ParseTOMLWithRecovery(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	table := make(map[string]any)
	if _, err := toml.Decode(string(data), &table); err != nil {
		return nil, err
	}
	return table, nil
}

// Extract returns table[key] when it holds a T.
func Extract[T any](table map[string]any, key string) (T, bool) {
	v, ok := table[key].(T)
	return v, ok
}

// ExtractSection returns a nested [section] table.
func ExtractSection(table map[string]any, name string) (map[string]any, bool) {
	return Extract[map[string]any](table, name)
}

// ExtractInt narrows a TOML integer, which always decodes as int64.
func ExtractInt(table map[string]any, key string) (int, bool) {
	v, ok := Extract[int64](table, key)
	return int(v), ok
}
