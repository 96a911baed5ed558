package correct

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bastiangx/wordfix/pkg/textbuf"
)

// ErrStaleAnchor is returned by Action.Apply when the text at the action's
// range no longer matches what the correction was computed for.
var ErrStaleAnchor = errors.New("stale correction anchor")

// ActionKind is what the host must do after an event.
type ActionKind int

const (
	// ActionNone: nothing changed.
	ActionNone ActionKind = iota
	// ActionSuggest: show the inline suggestion in Action.Pending.
	ActionSuggest
	// ActionClear: remove any suggestion UI.
	ActionClear
	// ActionReplace: replace [Start, End) with Text, move the cursor to
	// Cursor, and remove any suggestion UI.
	ActionReplace
)

func (k ActionKind) String() string {
	switch k {
	case ActionSuggest:
		return "suggest"
	case ActionClear:
		return "clear"
	case ActionReplace:
		return "replace"
	default:
		return "none"
	}
}

// Resolution records how a pending suggestion (or an auto-apply) ended.
type Resolution int

const (
	Unresolved Resolution = iota
	Accepted
	Dismissed
	Superseded
	CursorLeft
	Stale
	AutoApplied
)

func (r Resolution) String() string {
	switch r {
	case Accepted:
		return "accepted"
	case Dismissed:
		return "dismissed"
	case Superseded:
		return "superseded"
	case CursorLeft:
		return "cursor-left"
	case Stale:
		return "stale"
	case AutoApplied:
		return "auto-applied"
	default:
		return "unresolved"
	}
}

// Action is the side effect an event asks the host to perform.
type Action struct {
	Kind       ActionKind
	Resolution Resolution

	// ActionSuggest
	Pending Pending

	// ActionReplace
	Start  int
	End    int
	Text   string
	Cursor int
	Expect string // text that must still be at [Start, End)
	Reason Reason
}

func (a Action) String() string {
	switch a.Kind {
	case ActionSuggest:
		return fmt.Sprintf("suggest %q -> %q at [%d,%d)", a.Pending.Word, a.Pending.Replacement, a.Pending.Start, a.Pending.End)
	case ActionReplace:
		return fmt.Sprintf("replace [%d,%d) %q -> %q (%s, %s)", a.Start, a.End, a.Expect, a.Text, a.Reason, a.Resolution)
	case ActionClear:
		return fmt.Sprintf("clear (%s)", a.Resolution)
	default:
		return "none"
	}
}

// Apply executes a replace action on buf. Other kinds are no-ops.
// The expected text is re-read from buf first; on mismatch nothing is
// written and ErrStaleAnchor is returned.
func (a Action) Apply(buf textbuf.Buffer) error {
	if a.Kind != ActionReplace {
		return nil
	}
	cur, ok := textbuf.Slice(buf.Text(), a.Start, a.End)
	if !ok || !strings.EqualFold(cur, a.Expect) {
		return fmt.Errorf("replace [%d,%d): have %q, want %q: %w", a.Start, a.End, cur, a.Expect, ErrStaleAnchor)
	}
	if err := buf.ReplaceRange(a.Start, a.End, a.Text); err != nil {
		return err
	}
	buf.SetCursor(a.Cursor)
	return nil
}
