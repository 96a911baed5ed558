package cli

import (
	"strings"
	"unicode"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

var (
	removedColor = color.New(color.FgRed, color.CrossedOut)
	addedColor   = color.New(color.FgGreen, color.Bold)
)

// maxTokens keeps token indexes below the surrogate range so they survive
// the string round trip inside diffmatchpatch.
const maxTokens = 0xD800

// Diff renders the word-level changes from before to after inline:
// removed words as [-old-], added words as {+new+}, colored when color is on.
// It also returns the number of changed hunks.
func Diff(before, after string) (string, int) {
	dmp := diffmatchpatch.New()
	diffs := wordDiff(dmp, before, after)

	var b strings.Builder
	hunks := 0
	inHunk := false
	for _, d := range diffs {
		if d.Type == diffmatchpatch.DiffEqual {
			inHunk = false
			b.WriteString(d.Text)
			continue
		}
		if !inHunk {
			hunks++
			inHunk = true
		}
		if d.Type == diffmatchpatch.DiffDelete {
			b.WriteString(removedColor.Sprint("[-" + d.Text + "-]"))
		} else {
			b.WriteString(addedColor.Sprint("{+" + d.Text + "+}"))
		}
	}
	return b.String(), hunks
}

func wordDiff(dmp *diffmatchpatch.DiffMatchPatch, before, after string) []diffmatchpatch.Diff {
	index := map[string]rune{}
	tokens := []string{""}
	encode := func(text string) ([]rune, bool) {
		var out []rune
		for _, tok := range splitTokens(text) {
			r, ok := index[tok]
			if !ok {
				if len(tokens) >= maxTokens {
					return nil, false
				}
				r = rune(len(tokens))
				index[tok] = r
				tokens = append(tokens, tok)
			}
			out = append(out, r)
		}
		return out, true
	}

	a, okA := encode(before)
	b, okB := encode(after)
	if !okA || !okB {
		return dmp.DiffCleanupSemantic(dmp.DiffMain(before, after, false))
	}
	return dmp.DiffCharsToLines(dmp.DiffMainRunes(a, b, false), tokens)
}

// splitTokens splits text into alternating runs of space and non-space.
func splitTokens(text string) []string {
	var out []string
	start := 0
	prevSpace := false
	for i, r := range text {
		space := unicode.IsSpace(r)
		if i > 0 && space != prevSpace {
			out = append(out, text[start:i])
			start = i
		}
		prevSpace = space
	}
	if start < len(text) {
		out = append(out, text[start:])
	}
	return out
}
