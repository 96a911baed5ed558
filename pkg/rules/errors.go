package rules

import "fmt"

// InvalidRuleError is returned when a rule or exclusion cannot be added.
// The store is left unchanged.
type InvalidRuleError struct {
	From   string
	To     string
	Reason string
}

func (e *InvalidRuleError) Error() string {
	return fmt.Sprintf("invalid rule %q -> %q: %s", e.From, e.To, e.Reason)
}

// PersistError reports a failed write to the KV store.
// The in-memory change it belongs to has already been applied.
type PersistError struct {
	Key string
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("persist %s: %v", e.Key, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }
