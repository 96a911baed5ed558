// Package tui is a small terminal editor that corrects text as it is typed.
package tui

import (
	"strings"

	"github.com/bastiangx/wordfix/pkg/autocorrect"
	"github.com/bastiangx/wordfix/pkg/correct"
	"github.com/bastiangx/wordfix/pkg/notify"
	"github.com/bastiangx/wordfix/pkg/textbuf"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	pendingStyle = lipgloss.NewStyle().Underline(true).Foreground(lipgloss.AdaptiveColor{Light: "#b4637a", Dark: "#eb6f92"})
	hintStyle    = lipgloss.NewStyle().Faint(true).Italic(true)
	cursorStyle  = lipgloss.NewStyle().Reverse(true)
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"})
	helpStyle    = lipgloss.NewStyle().Faint(true)
)

// Model is the bubbletea model of the editor.
type Model struct {
	buf      *textbuf.Memory
	doc      *autocorrect.Document
	feedback *notify.Recorder
	status   string
	width    int
}

// New opens an editor over text. feedback, when not nil, must be the sink
// the corrector was created with; its messages are shown in the status line.
func New(c *autocorrect.Corrector, feedback *notify.Recorder, text string) *Model {
	buf := textbuf.NewMemory(text, textbuf.Options{})
	return &Model{
		buf:      buf,
		doc:      c.Open(buf),
		feedback: feedback,
		width:    80,
	}
}

// Text returns the current buffer contents.
func (m *Model) Text() string { return m.buf.Text() }

func (m *Model) Cursor() int { return m.buf.Cursor() }

func (m *Model) Pending() (correct.Pending, bool) { return m.doc.Pending() }

func (m *Model) Status() string { return m.status }

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Quit):
		return tea.Quit
	case key.Matches(msg, keys.Accept):
		m.handle(correct.Accept{})
	case key.Matches(msg, keys.Dismiss):
		m.handle(correct.Dismiss{})
	case key.Matches(msg, keys.Undo):
		if m.buf.Undo() {
			m.handle(correct.CursorMoved{})
		}
	case key.Matches(msg, keys.Redo):
		if m.buf.Redo() {
			m.handle(correct.CursorMoved{})
		}
	case key.Matches(msg, keys.Left):
		m.moveTo(m.buf.Cursor() - 1)
	case key.Matches(msg, keys.Right):
		m.moveTo(m.buf.Cursor() + 1)
	case key.Matches(msg, keys.Home):
		m.moveTo(m.lineStart())
	case key.Matches(msg, keys.End):
		m.moveTo(m.lineEnd())
	case key.Matches(msg, keys.Backspace):
		if m.buf.DeleteBackward() {
			m.handle(correct.CursorMoved{})
		}
	case key.Matches(msg, keys.Newline):
		m.insert("\n")
	case msg.Type == tea.KeySpace:
		m.insert(" ")
	case msg.Type == tea.KeyRunes:
		for _, r := range msg.Runes {
			m.insert(string(r))
		}
	}
	return nil
}

func (m *Model) insert(s string) {
	m.buf.Insert(s)
	m.handle(correct.Insert{Text: s})
}

func (m *Model) moveTo(pos int) {
	m.buf.SetCursor(pos)
	m.handle(correct.CursorMoved{})
}

func (m *Model) handle(ev correct.Event) {
	a, err := m.doc.HandleEdit(ev)
	if err != nil {
		log.Errorf("edit: %v", err)
		m.status = err.Error()
		return
	}
	switch a.Kind {
	case correct.ActionReplace:
		m.status = a.Resolution.String() + ": " + a.Expect + " → " + a.Text
	case correct.ActionClear:
		m.status = a.Resolution.String()
	}
	if m.feedback != nil {
		if msgs := m.feedback.Drain(); len(msgs) > 0 {
			m.status = msgs[len(msgs)-1]
		}
	}
}

func (m *Model) lineStart() int {
	runes := []rune(m.buf.Text())
	i := m.buf.Cursor()
	for i > 0 && runes[i-1] != '\n' {
		i--
	}
	return i
}

func (m *Model) lineEnd() int {
	runes := []rune(m.buf.Text())
	i := m.buf.Cursor()
	for i < len(runes) && runes[i] != '\n' {
		i++
	}
	return i
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("wordfix"))
	b.WriteString("\n\n")
	b.WriteString(m.renderText())
	b.WriteString("\n\n")

	if p, ok := m.doc.Pending(); ok {
		b.WriteString(hintStyle.Render(p.Word + " → " + p.Replacement + " (tab to accept, esc to dismiss)"))
	} else if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n")

	help := make([]string, 0, len(keys.help()))
	for _, k := range keys.help() {
		h := k.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	b.WriteString(helpStyle.Render(strings.Join(help, " • ")))
	b.WriteString("\n")
	return b.String()
}

// renderText draws the buffer with the pending word underlined and the
// cursor in reverse video.
func (m *Model) renderText() string {
	runes := []rune(m.buf.Text())
	cursor := m.buf.Cursor()
	p, hasPending := m.doc.Pending()

	var b strings.Builder
	for i, r := range runes {
		s := string(r)
		if r == '\n' {
			if i == cursor {
				b.WriteString(cursorStyle.Render(" "))
			}
			b.WriteString("\n")
			continue
		}
		switch {
		case i == cursor:
			b.WriteString(cursorStyle.Render(s))
		case hasPending && i >= p.Start && i < p.End:
			b.WriteString(pendingStyle.Render(s))
		default:
			b.WriteString(s)
		}
	}
	if cursor == len(runes) {
		b.WriteString(cursorStyle.Render(" "))
	}
	return b.String()
}

// Run starts the editor on the terminal and returns the final text.
func Run(c *autocorrect.Corrector, feedback *notify.Recorder, text string) (string, error) {
	m := New(c, feedback, text)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return m.Text(), err
	}
	return m.Text(), nil
}
