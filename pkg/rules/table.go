// Package rules holds the autocorrect rule tables: shipped defaults, user
// overrides and the exclusion set of words the user marked as correct.
package rules

import (
	"sort"
	"strings"

	"github.com/tchap/go-patricia/v2/patricia"
	"golang.org/x/text/unicode/norm"
)

// Normalize turns a word into its table key: trimmed, NFC composed, lowercase.
func Normalize(word string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(word)))
}

// Table maps lowercase words to replacements.
// It is indexed by a patricia trie so rules can be listed by prefix.
type Table struct {
	trie *patricia.Trie
	size int
}

// NewTable builds a table from m. Keys are normalized; empty keys are skipped.
func NewTable(m map[string]string) *Table {
	t := &Table{trie: patricia.NewTrie()}
	for from, to := range m {
		t.Set(from, to)
	}
	return t
}

func (t *Table) Len() int { return t.size }

func (t *Table) Get(word string) (string, bool) {
	item := t.trie.Get(patricia.Prefix(Normalize(word)))
	if item == nil {
		return "", false
	}
	return item.(string), true
}

func (t *Table) Set(word, replacement string) {
	key := Normalize(word)
	if key == "" {
		return
	}
	if t.trie.Get(patricia.Prefix(key)) == nil {
		t.size++
	}
	t.trie.Set(patricia.Prefix(key), replacement)
}

func (t *Table) Delete(word string) bool {
	if t.trie.Delete(patricia.Prefix(Normalize(word))) {
		t.size--
		return true
	}
	return false
}

// Walk visits every rule whose key starts with prefix, in key order.
func (t *Table) Walk(prefix string, fn func(word, replacement string)) {
	var words []string
	vals := make(map[string]string)
	_ = t.trie.VisitSubtree(patricia.Prefix(Normalize(prefix)), func(p patricia.Prefix, item patricia.Item) error {
		w := string(p)
		words = append(words, w)
		vals[w] = item.(string)
		return nil
	})
	sort.Strings(words)
	for _, w := range words {
		fn(w, vals[w])
	}
}

// Map returns a copy of the table contents.
func (t *Table) Map() map[string]string {
	out := make(map[string]string, t.size)
	t.Walk("", func(w, r string) { out[w] = r })
	return out
}
