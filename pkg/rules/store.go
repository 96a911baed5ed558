package rules

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/bastiangx/wordfix/pkg/store"
	"github.com/charmbracelet/log"
)

// KV keys holding the persisted layers.
const (
	OverridesKey  = "wordfix.overrides"
	ExclusionsKey = "wordfix.exclusions"
)

// Source tells which layer a rule came from.
type Source string

const (
	SourceDefault  Source = "default"
	SourceOverride Source = "override"
)

// Rule is one effective rule.
type Rule struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Source Source `json:"source"`
}

// Snapshot is the persisted form of the user layers.
type Snapshot struct {
	Overrides  map[string]string `json:"overrides"`
	Exclusions []string          `json:"exclusions"`
}

// Store merges the default table with user overrides and keeps the
// exclusion set. Lookups take a read lock; mutations take the write lock
// and then persist to the KV store.
type Store struct {
	mu         sync.RWMutex
	defaults   *Table
	overrides  *Table
	exclusions map[string]struct{}
	kv         store.KV
}

// New creates a store over defaults with empty user layers.
// kv may be nil, in which case nothing is persisted.
func New(defaults map[string]string, kv store.KV) *Store {
	return &Store{
		defaults:   NewTable(defaults),
		overrides:  NewTable(nil),
		exclusions: make(map[string]struct{}),
		kv:         kv,
	}
}

// Load creates a store and reads the user layers from kv.
// Missing keys are treated as empty.
func Load(defaults map[string]string, kv store.KV) (*Store, error) {
	s := New(defaults, kv)
	if kv == nil {
		return s, nil
	}

	raw, ok, err := kv.Get(OverridesKey)
	if err != nil {
		return nil, fmt.Errorf("load overrides: %w", err)
	}
	if ok && raw != "" {
		var m map[string]string
		if err := json.Unmarshal([]byte(raw), &m); err != nil {
			return nil, fmt.Errorf("decode overrides: %w", err)
		}
		s.overrides = NewTable(m)
	}

	raw, ok, err = kv.Get(ExclusionsKey)
	if err != nil {
		return nil, fmt.Errorf("load exclusions: %w", err)
	}
	if ok && raw != "" {
		var words []string
		if err := json.Unmarshal([]byte(raw), &words); err != nil {
			return nil, fmt.Errorf("decode exclusions: %w", err)
		}
		for _, w := range words {
			if k := Normalize(w); k != "" {
				s.exclusions[k] = struct{}{}
			}
		}
	}
	log.Debugf("rules loaded: %d defaults, %d overrides, %d exclusions",
		s.defaults.Len(), s.overrides.Len(), len(s.exclusions))
	return s, nil
}

// Lookup returns the replacement for word, checking overrides first.
func (s *Store) Lookup(word string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if r, ok := s.overrides.Get(word); ok {
		return r, true
	}
	return s.defaults.Get(word)
}

// AddOverride inserts or replaces a user rule.
func (s *Store) AddOverride(from, to string) error {
	key := Normalize(from)
	to = strings.TrimSpace(to)
	switch {
	case key == "":
		return &InvalidRuleError{From: from, To: to, Reason: "empty word"}
	case to == "":
		return &InvalidRuleError{From: from, To: to, Reason: "empty replacement"}
	case strings.IndexFunc(key, unicode.IsSpace) >= 0:
		return &InvalidRuleError{From: from, To: to, Reason: "word contains whitespace"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides.Set(key, to)
	return s.persistOverrides()
}

// RemoveOverride deletes a user rule. Removing an absent rule is a no-op.
func (s *Store) RemoveOverride(from string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.overrides.Delete(from) {
		return nil
	}
	return s.persistOverrides()
}

// AddExclusion marks word as known correct. Duplicate adds are no-ops.
func (s *Store) AddExclusion(word string) error {
	key := Normalize(word)
	if key == "" {
		return &InvalidRuleError{From: word, Reason: "empty word"}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.exclusions[key]; ok {
		return nil
	}
	s.exclusions[key] = struct{}{}
	return s.persistExclusions()
}

// RemoveExclusion unmarks word. Removing an absent word is a no-op.
func (s *Store) RemoveExclusion(word string) error {
	key := Normalize(word)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.exclusions[key]; !ok {
		return nil
	}
	delete(s.exclusions, key)
	return s.persistExclusions()
}

func (s *Store) IsExcluded(word string) bool {
	key := Normalize(word)
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.exclusions[key]
	return ok
}

// Rules lists the effective rules whose word starts with prefix, sorted by word.
func (s *Store) Rules(prefix string) []Rule {
	s.mu.RLock()
	defer s.mu.RUnlock()

	merged := make(map[string]Rule)
	s.defaults.Walk(prefix, func(w, r string) {
		merged[w] = Rule{From: w, To: r, Source: SourceDefault}
	})
	s.overrides.Walk(prefix, func(w, r string) {
		merged[w] = Rule{From: w, To: r, Source: SourceOverride}
	})

	out := make([]Rule, 0, len(merged))
	for _, r := range merged {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].From < out[j].From })
	return out
}

// Exclusions returns the exclusion set sorted.
func (s *Store) Exclusions() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedExclusions()
}

// Export returns a copy of the user layers.
func (s *Store) Export() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Overrides:  s.overrides.Map(),
		Exclusions: s.sortedExclusions(),
	}
}

// Import merges snap into the user layers and persists both.
// Invalid entries are skipped and reported in the returned count.
func (s *Store) Import(snap Snapshot) (skipped int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for from, to := range snap.Overrides {
		key := Normalize(from)
		to = strings.TrimSpace(to)
		if key == "" || to == "" || strings.IndexFunc(key, unicode.IsSpace) >= 0 {
			skipped++
			continue
		}
		s.overrides.Set(key, to)
	}
	for _, w := range snap.Exclusions {
		key := Normalize(w)
		if key == "" {
			skipped++
			continue
		}
		s.exclusions[key] = struct{}{}
	}

	if err := s.persistOverrides(); err != nil {
		return skipped, err
	}
	return skipped, s.persistExclusions()
}

func (s *Store) sortedExclusions() []string {
	out := make([]string, 0, len(s.exclusions))
	for w := range s.exclusions {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// persistOverrides and persistExclusions must be called with mu held.
func (s *Store) persistOverrides() error {
	return s.persist(OverridesKey, s.overrides.Map())
}

func (s *Store) persistExclusions() error {
	return s.persist(ExclusionsKey, s.sortedExclusions())
}

func (s *Store) persist(key string, v any) error {
	if s.kv == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return &PersistError{Key: key, Err: err}
	}
	if err := s.kv.Set(key, string(data)); err != nil {
		log.Warnf("Failed to persist %s: %v", key, err)
		return &PersistError{Key: key, Err: err}
	}
	return nil
}
