package correct

import (
	"strings"
	"testing"
	"unicode"
)

func TestWordBeforeCursor(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		cursor int
		want   Word
	}{
		{"cursor at start", "hello", 0, Word{"", 0, 0}},
		{"after single char", "a", 1, Word{"a", 0, 1}},
		{"end of word", "I think teh answer", 11, Word{"teh", 8, 11}},
		{"inside word", "I think teh answer", 10, Word{"te", 8, 10}},
		{"after whitespace", "I think ", 8, Word{"", 8, 8}},
		{"inside whitespace run", "a    b", 3, Word{"", 3, 3}},
		{"only whitespace", "   \t ", 4, Word{"", 4, 4}},
		{"empty text", "", 0, Word{"", 0, 0}},
		{"newline boundary", "line\nteh", 8, Word{"teh", 5, 8}},
		{"punctuation kept", "x (teh,", 7, Word{"(teh,", 2, 7}},
		{"multibyte", "naïve café", 10, Word{"café", 6, 10}},
		{"cursor past end is clamped", "abc", 10, Word{"abc", 0, 3}},
		{"negative cursor is clamped", "abc", -3, Word{"", 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WordBeforeCursor(tt.text, tt.cursor); got != tt.want {
				t.Fatalf("WordBeforeCursor(%q,%d)=%+v, want %+v", tt.text, tt.cursor, got, tt.want)
			}
		})
	}
}

// For every valid offset: start <= end == offset and the word has no whitespace.
func TestWordBeforeCursor_Properties(t *testing.T) {
	samples := []string{
		"",
		" ",
		"a",
		"I think teh answer",
		"  leading and trailing  ",
		"tabs\tand\nnewlines\r\n",
		"ünïcödé wörds ände",
		"x.y,z!  ?",
	}
	for _, s := range samples {
		n := len([]rune(s))
		for o := 0; o <= n; o++ {
			w := WordBeforeCursor(s, o)
			if w.End != o || w.Start > w.End {
				t.Fatalf("%q@%d: got [%d,%d)", s, o, w.Start, w.End)
			}
			if got := string([]rune(s)[w.Start:w.End]); got != w.Text {
				t.Fatalf("%q@%d: text %q does not match span %q", s, o, w.Text, got)
			}
			if strings.IndexFunc(w.Text, unicode.IsSpace) >= 0 {
				t.Fatalf("%q@%d: word %q contains whitespace", s, o, w.Text)
			}
		}
	}
}

func TestTrimWord(t *testing.T) {
	tests := []struct {
		in   Word
		want Word
	}{
		{Word{"(teh,", 2, 7}, Word{"teh", 3, 6}},
		{Word{"don't", 0, 5}, Word{"don't", 0, 5}},
		{Word{"\"I'm\"", 4, 9}, Word{"I'm", 5, 8}},
		{Word{"...", 0, 3}, Word{"", 3, 3}},
	}
	for _, tt := range tests {
		if got := trimWord(tt.in); got != tt.want {
			t.Fatalf("trimWord(%+v)=%+v, want %+v", tt.in, got, tt.want)
		}
	}
}
