package autocorrect

import (
	"errors"
	"reflect"
	"testing"

	"github.com/bastiangx/wordfix/pkg/correct"
	"github.com/bastiangx/wordfix/pkg/notify"
	"github.com/bastiangx/wordfix/pkg/rules"
	"github.com/bastiangx/wordfix/pkg/store"
	"github.com/bastiangx/wordfix/pkg/textbuf"
)

type brokenKV struct{ *store.Memory }

func (brokenKV) Set(string, string) error { return errors.New("storage unavailable") }

func newCorrector(t *testing.T, opts Options) (*Corrector, *notify.Recorder) {
	t.Helper()
	rec := &notify.Recorder{}
	return New(rules.New(rules.Defaults, store.NewMemory()), rec, opts), rec
}

func TestCorrect(t *testing.T) {
	c, _ := newCorrector(t, DefaultOptions())
	tests := []struct{ in, want string }{
		{"teh cat", "The cat"},
		{"i think teh answer is alot. wich one?", "I think the answer is a lot. Which one?"},
		{"hello world. teh end", "Hello world. The end"},
		{"", ""},
		{"   ", "   "},
		{"teh", "The"},
		{"so teh", "So the"},
		{"i think teh", "I think the"},
		{"so teh\n", "So the\n"},
	}
	for _, tt := range tests {
		if got := c.Correct(tt.in); got != tt.want {
			t.Errorf("Correct(%q)=%q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCorrect_Toggles(t *testing.T) {
	c, _ := newCorrector(t, DefaultOptions())
	c.SetAutocapitalize(false)
	if got := c.Correct("hello. teh end "); got != "hello. the end " {
		t.Fatalf("got %q", got)
	}
	c.SetAutocorrect(false)
	if got := c.Correct("hello. teh end "); got != "hello. teh end " {
		t.Fatalf("got %q", got)
	}
	if got := c.Correct("so teh"); got != "so teh" {
		t.Fatalf("final word corrected with autocorrect off: %q", got)
	}
}

func TestDocument_AcceptAndUndo(t *testing.T) {
	c, _ := newCorrector(t, DefaultOptions())
	buf := textbuf.NewMemory("so ", textbuf.Options{})
	doc := c.Open(buf)
	for _, r := range "teh" {
		buf.Insert(string(r))
		if _, err := doc.HandleEdit(correct.Insert{Text: string(r)}); err != nil {
			t.Fatal(err)
		}
	}
	if p, ok := doc.Pending(); !ok || p.Replacement != "the" {
		t.Fatalf("pending=%+v,%v", p, ok)
	}
	a, err := doc.HandleEdit(correct.Accept{})
	if err != nil || a.Resolution != correct.Accepted {
		t.Fatalf("accept=%s,%v", a, err)
	}
	if buf.Text() != "so the" || buf.Cursor() != 6 {
		t.Fatalf("text=%q cursor=%d", buf.Text(), buf.Cursor())
	}
	buf.Undo()
	if buf.Text() != "so teh" {
		t.Fatalf("undo text=%q", buf.Text())
	}
}

func TestDocument_ToggleAppliesToOpenDocuments(t *testing.T) {
	c, _ := newCorrector(t, DefaultOptions())
	buf := textbuf.NewMemory("so teh", textbuf.Options{})
	doc := c.Open(buf)
	c.SetAutocorrect(false)
	buf.Insert(" ")
	if _, err := doc.HandleEdit(correct.Insert{Text: " "}); err != nil {
		t.Fatal(err)
	}
	if buf.Text() != "so teh " {
		t.Fatalf("text=%q", buf.Text())
	}
}

func TestManage_Notifications(t *testing.T) {
	c, rec := newCorrector(t, DefaultOptions())
	if err := c.AddRule("Brb", "be right back"); err != nil {
		t.Fatal(err)
	}
	if err := c.AddRule("", "x"); err == nil {
		t.Fatal("expected invalid rule error")
	}
	_ = c.Exclude("teh")
	_ = c.Include("teh")
	_ = c.RemoveRule("brb")

	want := []string{
		"Rule added: brb → be right back",
		"Invalid rule: empty word",
		"Added to dictionary: teh",
		"Removed from dictionary: teh",
		"Rule removed: brb",
	}
	if got := rec.Drain(); !reflect.DeepEqual(got, want) {
		t.Fatalf("messages=%q", got)
	}
}

func TestManage_PersistFailureIsReported(t *testing.T) {
	rec := &notify.Recorder{}
	c := New(rules.New(rules.Defaults, brokenKV{store.NewMemory()}), rec, DefaultOptions())
	err := c.AddRule("brb", "be right back")
	var perr *rules.PersistError
	if !errors.As(err, &perr) {
		t.Fatalf("err=%v", err)
	}
	msgs := rec.Drain()
	if len(msgs) != 1 || msgs[0] != "Rule added: brb → be right back (not saved: storage unavailable)" {
		t.Fatalf("messages=%q", msgs)
	}
	if got := c.Correct("so brb "); got != "So be right back " {
		t.Fatalf("rule must work for the session: %q", got)
	}
}
