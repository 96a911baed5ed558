/*
Package textbuf abstracts the mutable text a correction is applied to.

Offsets are 0-based rune indices into Text(). Ranges are half-open: [start, end).

Hosts with their own editing surface implement Buffer directly so that a
correction goes through the same path (and the same undo history) as any
other edit. Memory is the in-process implementation used by the CLI, the
servers and the tests.
*/
package textbuf

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when a replacement range does not fit the text.
var ErrOutOfRange = errors.New("range out of bounds")

// Buffer is the host text surface the autocorrect core reads and mutates.
type Buffer interface {
	// Text returns the full current content.
	Text() string
	// Cursor returns the caret position as a rune offset.
	Cursor() int
	// ReplaceRange replaces [start, end) with text.
	ReplaceRange(start, end int, text string) error
	// SetCursor moves the caret, clamped to the text bounds.
	SetCursor(pos int)
}

// Slice returns the runes of text in [start, end) or false when the range is
// not valid for text.
func Slice(text string, start, end int) (string, bool) {
	runes := []rune(text)
	if start < 0 || end < start || end > len(runes) {
		return "", false
	}
	return string(runes[start:end]), true
}

func checkRange(n, start, end int) error {
	if start < 0 || end < start || end > n {
		return fmt.Errorf("replace [%d,%d) in %d runes: %w", start, end, n, ErrOutOfRange)
	}
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
