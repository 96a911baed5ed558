package cli

import (
	"fmt"
	"io"

	"github.com/bastiangx/wordfix/pkg/rules"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

var (
	wordColor   = color.New(color.FgCyan)
	sourceColor = color.New(color.Faint)
)

// PrintRules writes one aligned line per rule.
func PrintRules(w io.Writer, list []rules.Rule) {
	width := 0
	for _, r := range list {
		width = max(width, runewidth.StringWidth(r.From))
	}
	for _, r := range list {
		fmt.Fprintf(w, "%s  →  %s  %s\n",
			wordColor.Sprint(runewidth.FillRight(r.From, width)),
			r.To,
			sourceColor.Sprint(r.Source))
	}
}

// PrintWords writes one word per line.
func PrintWords(w io.Writer, words []string) {
	for _, word := range words {
		fmt.Fprintln(w, wordColor.Sprint(word))
	}
}
