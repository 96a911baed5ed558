/*
Package correct is the autocorrect core.

It finds the word before the cursor (WordBeforeCursor), decides what
correction applies to it (Engine.Evaluate), and tracks the one pending inline
suggestion of an editing context (Session). It never touches a buffer
itself: Session.Handle returns an Action and the host executes it, usually
through Action.Apply.

All offsets are rune offsets.
*/
package correct

import "unicode"

// Word is a span of text ending at (or before) the cursor.
type Word struct {
	Text  string
	Start int
	End   int
}

// Len returns the word length in runes.
func (w Word) Len() int { return w.End - w.Start }

// WordBeforeCursor scans backward from cursor while runes are not whitespace.
// The result always has End == cursor (after clamping cursor into text).
// When cursor is 0 or the rune before it is whitespace the word is empty.
func WordBeforeCursor(text string, cursor int) Word {
	runes := []rune(text)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	start := cursor
	for start > 0 && !unicode.IsSpace(runes[start-1]) {
		start--
	}
	return Word{Text: string(runes[start:cursor]), Start: start, End: cursor}
}

// trimWord drops leading and trailing punctuation and symbols so that
// "(teh" or "teh," match the rule for "teh". Inner punctuation such as the
// apostrophe in "don't" is kept.
func trimWord(w Word) Word {
	runes := []rune(w.Text)
	lo, hi := 0, len(runes)
	for lo < hi && isEdgeMark(runes[lo]) {
		lo++
	}
	for hi > lo && isEdgeMark(runes[hi-1]) {
		hi--
	}
	return Word{Text: string(runes[lo:hi]), Start: w.Start + lo, End: w.Start + hi}
}

func isEdgeMark(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}
