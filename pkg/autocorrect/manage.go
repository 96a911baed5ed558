package autocorrect

import (
	"errors"
	"fmt"

	"github.com/bastiangx/wordfix/pkg/rules"
)

// AddRule adds a user rule and reports the outcome to the sink.
func (c *Corrector) AddRule(from, to string) error {
	err := c.rules.AddOverride(from, to)
	c.report(err, fmt.Sprintf("Rule added: %s → %s", rules.Normalize(from), to))
	return err
}

// RemoveRule removes a user rule. Default rules cannot be removed, only
// overridden or excluded.
func (c *Corrector) RemoveRule(from string) error {
	err := c.rules.RemoveOverride(from)
	c.report(err, fmt.Sprintf("Rule removed: %s", rules.Normalize(from)))
	return err
}

// Exclude marks word as known correct.
func (c *Corrector) Exclude(word string) error {
	err := c.rules.AddExclusion(word)
	c.report(err, fmt.Sprintf("Added to dictionary: %s", rules.Normalize(word)))
	return err
}

// Include removes word from the exclusion set.
func (c *Corrector) Include(word string) error {
	err := c.rules.RemoveExclusion(word)
	c.report(err, fmt.Sprintf("Removed from dictionary: %s", rules.Normalize(word)))
	return err
}

func (c *Corrector) report(err error, ok string) {
	var invalid *rules.InvalidRuleError
	var persist *rules.PersistError
	switch {
	case err == nil:
		c.sink.Notify(ok)
	case errors.As(err, &invalid):
		c.sink.Notify("Invalid rule: " + invalid.Reason)
	case errors.As(err, &persist):
		c.sink.Notify(ok + " (not saved: " + persist.Err.Error() + ")")
	default:
		c.sink.Notify(err.Error())
	}
}
