/*
Package autocorrect wires the rule store, the correction engine and the
notification sink into one Corrector, and binds editing sessions to buffers.

	kv, _ := store.Open(cfg.Store, config.DefaultStorePath(configPath))
	rs, _ := rules.Load(rules.Defaults, kv)
	c := autocorrect.New(rs, notify.Logger{}, autocorrect.OptionsFromConfig(cfg.Engine))

	doc := c.Open(buf)
	action, err := doc.HandleEdit(correct.Insert{Text: " "})

Every host (CLI, terminal editor, IPC and HTTP servers) goes through
Document.HandleEdit so corrections reach the buffer as ordinary edits.
*/
package autocorrect

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"unicode"
	"unicode/utf8"

	"github.com/bastiangx/wordfix/pkg/config"
	"github.com/bastiangx/wordfix/pkg/correct"
	"github.com/bastiangx/wordfix/pkg/notify"
	"github.com/bastiangx/wordfix/pkg/rules"
	"github.com/bastiangx/wordfix/pkg/textbuf"
	"github.com/charmbracelet/log"
)

// Options are the engine toggles.
type Options struct {
	Autocorrect    bool
	Autocapitalize bool
	MinWordLength  int
	BoundaryChars  string
}

// OptionsFromConfig maps the [engine] config section.
func OptionsFromConfig(cfg config.EngineConfig) Options {
	return Options{
		Autocorrect:    cfg.Autocorrect,
		Autocapitalize: cfg.Autocapitalize,
		MinWordLength:  cfg.MinWordLength,
		BoundaryChars:  cfg.BoundaryChars,
	}
}

// DefaultOptions mirrors config.DefaultConfig().Engine.
func DefaultOptions() Options {
	return OptionsFromConfig(config.DefaultConfig().Engine)
}

// Corrector is the composition root shared by all documents of a host.
type Corrector struct {
	rules       *rules.Store
	engine      *correct.Engine
	sink        notify.Sink
	minLen      int
	boundary    string
	autocorrect atomic.Bool
}

// New creates a Corrector. A nil sink discards messages.
func New(rs *rules.Store, sink notify.Sink, opts Options) *Corrector {
	if sink == nil {
		sink = notify.Discard
	}
	if opts.BoundaryChars == "" {
		opts.BoundaryChars = correct.DefaultOptions().BoundaryChars
	}
	c := &Corrector{
		rules:    rs,
		engine:   correct.NewEngine(rs, opts.Autocapitalize),
		sink:     sink,
		minLen:   opts.MinWordLength,
		boundary: opts.BoundaryChars,
	}
	c.autocorrect.Store(opts.Autocorrect)
	return c
}

func (c *Corrector) Rules() *rules.Store { return c.rules }

func (c *Corrector) Engine() *correct.Engine { return c.engine }

func (c *Corrector) SetAutocorrect(on bool) { c.autocorrect.Store(on) }

func (c *Corrector) Autocorrect() bool { return c.autocorrect.Load() }

func (c *Corrector) SetAutocapitalize(on bool) { c.engine.SetCapitalize(on) }

func (c *Corrector) Autocapitalize() bool { return c.engine.Capitalize() }

// Options returns the current toggles.
func (c *Corrector) Options() Options {
	return Options{
		Autocorrect:    c.Autocorrect(),
		Autocapitalize: c.Autocapitalize(),
		MinWordLength:  c.minLen,
		BoundaryChars:  c.boundary,
	}
}

func (c *Corrector) sessionOptions() correct.Options {
	return correct.Options{
		Autocorrect:   c.Autocorrect(),
		MinWordLength: c.minLen,
		BoundaryChars: c.boundary,
	}
}

// Document binds one buffer to its own suggestion session.
// It is not safe for concurrent use.
type Document struct {
	c    *Corrector
	buf  textbuf.Buffer
	sess *correct.Session
}

// Open starts a session over buf.
func (c *Corrector) Open(buf textbuf.Buffer) *Document {
	return &Document{c: c, buf: buf, sess: correct.NewSession(c.engine, c.sessionOptions())}
}

func (d *Document) Buffer() textbuf.Buffer { return d.buf }

func (d *Document) Pending() (correct.Pending, bool) { return d.sess.Pending() }

func (d *Document) State() correct.State { return d.sess.State() }

// HandleEdit runs ev through the session and applies the resulting action
// to the buffer. A correction whose anchor went stale between evaluation and
// application is dropped: the returned action is then a stale clear and the
// error is nil.
func (d *Document) HandleEdit(ev correct.Event) (correct.Action, error) {
	d.sess.SetAutocorrect(d.c.Autocorrect())
	a := d.sess.Handle(d.buf.Text(), d.buf.Cursor(), ev)
	if err := a.Apply(d.buf); err != nil {
		if errors.Is(err, correct.ErrStaleAnchor) {
			log.Debugf("dropping correction: %v", err)
			return correct.Action{Kind: correct.ActionClear, Resolution: correct.Stale}, nil
		}
		return a, fmt.Errorf("apply %s: %w", a.Kind, err)
	}
	return a, nil
}

// Correct runs text through a fresh document one rune at a time, as if it
// was typed, and returns the corrected text. A final word with no boundary
// after it is checked as if one followed.
func (c *Corrector) Correct(text string) string {
	buf := textbuf.NewMemory("", textbuf.Options{HistoryLimit: -1})
	doc := c.Open(buf)
	typed := func(s string) {
		buf.Insert(s)
		if _, err := doc.HandleEdit(correct.Insert{Text: s}); err != nil {
			log.Errorf("correct: %v", err)
		}
	}
	for _, r := range text {
		typed(string(r))
	}
	if last, _ := utf8.DecodeLastRuneInString(text); text == "" || c.isBoundary(last) {
		return buf.Text()
	}

	typed(sentinel)
	return strings.TrimSuffix(buf.Text(), sentinel)
}

// sentinel closes the final word in Correct and is stripped afterwards.
const sentinel = "\n"

func (c *Corrector) isBoundary(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune(c.boundary, r)
}
