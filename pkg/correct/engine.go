package correct

import (
	"strings"
	"sync/atomic"
	"unicode"
)

// Reason tells why a correction was produced.
type Reason int

const (
	RuleMatch Reason = iota + 1
	Capitalization
)

func (r Reason) String() string {
	switch r {
	case RuleMatch:
		return "rule"
	case Capitalization:
		return "capitalization"
	default:
		return "none"
	}
}

// Correction is the outcome of evaluating one word.
type Correction struct {
	Replacement string
	Reason      Reason
}

// Rules is what the engine needs from a rule store.
type Rules interface {
	Lookup(word string) (string, bool)
	IsExcluded(word string) bool
}

// Engine decides which correction, if any, applies to a word.
// It is safe for concurrent use.
type Engine struct {
	rules      Rules
	capitalize atomic.Bool
}

func NewEngine(rules Rules, capitalize bool) *Engine {
	e := &Engine{rules: rules}
	e.capitalize.Store(capitalize)
	return e
}

func (e *Engine) SetCapitalize(on bool) { e.capitalize.Store(on) }

func (e *Engine) Capitalize() bool { return e.capitalize.Load() }

// Evaluate returns the correction for word given the text before it.
// Order: excluded words never change; a rule match wins over
// capitalization; capitalization applies to the first word of the document
// or a word following '.', '!' or '?'.
func (e *Engine) Evaluate(word, preceding string, firstWord bool) (Correction, bool) {
	if word == "" {
		return Correction{}, false
	}
	key := strings.ToLower(word)
	if e.rules.IsExcluded(key) {
		return Correction{}, false
	}
	if repl, ok := e.rules.Lookup(key); ok {
		repl = matchLeadingCase(word, repl)
		if repl == word {
			return Correction{}, false
		}
		return Correction{Replacement: repl, Reason: RuleMatch}, true
	}
	if !e.Capitalize() || !(firstWord || startsSentence(preceding)) {
		return Correction{}, false
	}
	if up, ok := upperFirst(word); ok {
		return Correction{Replacement: up, Reason: Capitalization}, true
	}
	return Correction{}, false
}

// capitalizeAfterRule upper-cases the first rune of a rule replacement when
// the word sits at a sentence start.
func (e *Engine) capitalizeAfterRule(repl, preceding string) string {
	if !e.Capitalize() || !startsSentence(preceding) {
		return repl
	}
	if up, ok := upperFirst(repl); ok {
		return up
	}
	return repl
}

// startsSentence reports whether a word following preceding begins a
// sentence: preceding is blank or ends in terminal punctuation.
func startsSentence(preceding string) bool {
	t := strings.TrimRightFunc(preceding, unicode.IsSpace)
	if t == "" {
		return true
	}
	switch t[len(t)-1] {
	case '.', '!', '?':
		return true
	}
	return false
}

// upperFirst upper-cases the first rune. It fails when that rune is not a
// lowercase letter.
func upperFirst(s string) (string, bool) {
	runes := []rune(s)
	if len(runes) == 0 || !unicode.IsLower(runes[0]) {
		return s, false
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes), true
}

// matchLeadingCase keeps a capital the user typed: "Teh" becomes "The".
func matchLeadingCase(word, repl string) string {
	w := []rune(word)
	if len(w) == 0 || !unicode.IsUpper(w[0]) {
		return repl
	}
	if up, ok := upperFirst(repl); ok {
		return up
	}
	return repl
}
