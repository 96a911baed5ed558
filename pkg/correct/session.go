package correct

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bastiangx/wordfix/pkg/textbuf"
	"github.com/charmbracelet/log"
)

// Pending is an interactive suggestion waiting for the user.
// [Start, End) is the anchor of Word in the text it was detected in.
type Pending struct {
	Word        string
	Replacement string
	Start       int
	End         int
}

// State is either Idle or Suggested.
type State interface{ isState() }

// Idle means no suggestion is pending.
type Idle struct{}

// Suggested holds the one live suggestion.
type Suggested struct{ Pending }

func (Idle) isState()      {}
func (Suggested) isState() {}

// Event is an editing event delivered to Session.Handle.
type Event interface{ isEvent() }

// Insert reports that Text was just inserted and the cursor now sits right
// after it.
type Insert struct{ Text string }

// CursorMoved reports a caret move without a text change.
type CursorMoved struct{}

// Accept asks to apply the pending suggestion.
type Accept struct{}

// Dismiss asks to drop the pending suggestion without changing the text.
type Dismiss struct{}

func (Insert) isEvent()      {}
func (CursorMoved) isEvent() {}
func (Accept) isEvent()      {}
func (Dismiss) isEvent()     {}

// Options control a Session.
type Options struct {
	// Autocorrect gates every automatic change made on a word-boundary key.
	Autocorrect bool
	// MinWordLength is the shortest word that gets an inline suggestion.
	MinWordLength int
	// BoundaryChars end a word in addition to whitespace.
	BoundaryChars string
}

// DefaultOptions matches the [engine] defaults of the config file.
func DefaultOptions() Options {
	return Options{
		Autocorrect:   true,
		MinWordLength: 2,
		BoundaryChars: " .,!?;:",
	}
}

type anchor struct {
	word  string
	start int
}

// Session tracks the pending suggestion of one editing context.
// It is not safe for concurrent use.
type Session struct {
	engine    *Engine
	opts      Options
	state     State
	dismissed *anchor
}

func NewSession(engine *Engine, opts Options) *Session {
	if opts.MinWordLength <= 0 {
		opts.MinWordLength = 1
	}
	return &Session{engine: engine, opts: opts, state: Idle{}}
}

// State returns the current state.
func (s *Session) State() State { return s.state }

// Pending returns the live suggestion, if any.
func (s *Session) Pending() (Pending, bool) {
	if st, ok := s.state.(Suggested); ok {
		return st.Pending, true
	}
	return Pending{}, false
}

func (s *Session) SetAutocorrect(on bool) { s.opts.Autocorrect = on }

func (s *Session) Options() Options { return s.opts }

// Handle processes ev against a snapshot of the buffer (text and cursor
// after the event) and returns the action the host should perform.
func (s *Session) Handle(text string, cursor int, ev Event) Action {
	switch ev := ev.(type) {
	case Insert:
		last, _ := utf8.DecodeLastRuneInString(ev.Text)
		if ev.Text == "" {
			return s.cursorMoved(text, cursor)
		}
		if s.isBoundary(last) {
			return s.autoApply(text, cursor, cursor-1)
		}
		return s.detect(text, cursor)
	case CursorMoved:
		return s.cursorMoved(text, cursor)
	case Accept:
		return s.accept(text)
	case Dismiss:
		return s.dismiss()
	}
	return Action{}
}

func (s *Session) isBoundary(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune(s.opts.BoundaryChars, r)
}

// detect looks at the word being typed and creates, replaces or drops the
// inline suggestion. Only rule matches are suggested.
func (s *Session) detect(text string, cursor int) Action {
	raw := WordBeforeCursor(text, cursor)
	w := trimWord(raw)
	if w.Len() < s.opts.MinWordLength {
		return s.clear(Superseded)
	}
	if d := s.dismissed; d != nil {
		if d.start == w.Start && d.word == w.Text {
			return Action{}
		}
		s.dismissed = nil
	}

	preceding := prefix(text, raw.Start)
	c, ok := s.engine.Evaluate(w.Text, preceding, isBlank(preceding))
	if !ok || c.Reason != RuleMatch {
		return s.clear(Superseded)
	}

	p := Pending{Word: w.Text, Replacement: c.Replacement, Start: w.Start, End: w.End}
	if cur, ok := s.Pending(); ok && cur == p {
		return Action{}
	}
	s.state = Suggested{p}
	log.Debugf("suggest %q -> %q at [%d,%d)", p.Word, p.Replacement, p.Start, p.End)
	return Action{Kind: ActionSuggest, Pending: p}
}

// autoApply runs on a word-boundary key. wordEnd is the offset right before
// the boundary rune. Any pending suggestion is cleared whether or not a
// correction is made. A word whose suggestion was just dismissed is left
// as typed.
func (s *Session) autoApply(text string, cursor, wordEnd int) Action {
	dismissed := s.dismissed
	s.dismissed = nil
	_, hadPending := s.Pending()
	s.state = Idle{}

	none := Action{}
	if hadPending {
		none = Action{Kind: ActionClear, Resolution: AutoApplied}
	}
	if !s.opts.Autocorrect {
		return none
	}

	raw := WordBeforeCursor(text, wordEnd)
	w := trimWord(raw)
	if w.Len() == 0 {
		return none
	}
	if dismissed != nil && dismissed.start == w.Start && dismissed.word == w.Text {
		return none
	}
	preceding := prefix(text, raw.Start)
	c, ok := s.engine.Evaluate(w.Text, preceding, isBlank(preceding))
	if !ok {
		return none
	}
	repl := c.Replacement
	if c.Reason == RuleMatch {
		repl = s.engine.capitalizeAfterRule(repl, preceding)
	}

	delta := utf8.RuneCountInString(repl) - w.Len()
	log.Debugf("auto-apply %q -> %q (%s)", w.Text, repl, c.Reason)
	return Action{
		Kind:       ActionReplace,
		Resolution: AutoApplied,
		Start:      w.Start,
		End:        w.End,
		Text:       repl,
		Expect:     w.Text,
		Cursor:     cursor + delta,
		Reason:     c.Reason,
	}
}

func (s *Session) cursorMoved(text string, cursor int) Action {
	if d := s.dismissed; d != nil {
		end := d.start + utf8.RuneCountInString(d.word)
		if cur, ok := textbuf.Slice(text, d.start, end); !ok || cur != d.word {
			s.dismissed = nil
		}
	}
	p, ok := s.Pending()
	if !ok {
		return Action{}
	}
	if cursor > p.Start && cursor <= p.End {
		if w := trimWord(WordBeforeCursor(text, cursor)); w.Start == p.Start {
			return Action{}
		}
	}
	return s.clear(CursorLeft)
}

// accept re-reads the anchor in text and compares it with the recorded word.
// On mismatch the suggestion is dropped without touching the text.
func (s *Session) accept(text string) Action {
	p, ok := s.Pending()
	if !ok {
		return Action{}
	}
	s.state = Idle{}

	cur, ok := textbuf.Slice(text, p.Start, p.End)
	if !ok || !strings.EqualFold(cur, p.Word) {
		log.Debugf("stale suggestion %q at [%d,%d): found %q", p.Word, p.Start, p.End, cur)
		return Action{Kind: ActionClear, Resolution: Stale}
	}
	return Action{
		Kind:       ActionReplace,
		Resolution: Accepted,
		Start:      p.Start,
		End:        p.End,
		Text:       p.Replacement,
		Expect:     cur,
		Cursor:     p.Start + utf8.RuneCountInString(p.Replacement),
		Reason:     RuleMatch,
	}
}

func (s *Session) dismiss() Action {
	p, ok := s.Pending()
	if !ok {
		return Action{}
	}
	s.dismissed = &anchor{word: p.Word, start: p.Start}
	s.state = Idle{}
	return Action{Kind: ActionClear, Resolution: Dismissed}
}

// clear drops the pending suggestion, reporting it only when one existed.
func (s *Session) clear(why Resolution) Action {
	if _, ok := s.Pending(); !ok {
		return Action{}
	}
	s.state = Idle{}
	return Action{Kind: ActionClear, Resolution: why}
}

func prefix(text string, n int) string {
	runes := []rune(text)
	if n > len(runes) {
		n = len(runes)
	}
	return string(runes[:n])
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
