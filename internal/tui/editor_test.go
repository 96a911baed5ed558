package tui

import (
	"strings"
	"testing"

	"github.com/bastiangx/wordfix/pkg/autocorrect"
	"github.com/bastiangx/wordfix/pkg/notify"
	"github.com/bastiangx/wordfix/pkg/rules"
	"github.com/bastiangx/wordfix/pkg/store"
	tea "github.com/charmbracelet/bubbletea"
)

func newModel(t *testing.T, text string) (*Model, *notify.Recorder) {
	t.Helper()
	rec := &notify.Recorder{}
	c := autocorrect.New(rules.New(rules.Defaults, store.NewMemory()), rec, autocorrect.DefaultOptions())
	return New(c, rec, text), rec
}

func typeKeys(m *Model, s string) {
	for _, r := range s {
		if r == ' ' {
			m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func press(m *Model, t tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: t})
	return cmd
}

func TestEditor_AcceptWithTab(t *testing.T) {
	m, _ := newModel(t, "")
	typeKeys(m, "so teh")
	p, ok := m.Pending()
	if !ok || p.Replacement != "the" {
		t.Fatalf("pending=%+v,%v", p, ok)
	}
	if !strings.Contains(m.View(), "teh → the") {
		t.Fatalf("view missing hint:\n%s", m.View())
	}
	press(m, tea.KeyTab)
	// "so" was capitalized when the space was typed.
	if m.Text() != "So the" {
		t.Fatalf("text=%q", m.Text())
	}
	press(m, tea.KeyCtrlZ)
	if m.Text() != "So teh" {
		t.Fatalf("undo text=%q", m.Text())
	}
}

func TestEditor_AutoApplyAndDismiss(t *testing.T) {
	m, _ := newModel(t, "")
	typeKeys(m, "teh adn ")
	if m.Text() != "The and " {
		t.Fatalf("text=%q", m.Text())
	}

	typeKeys(m, "wiht")
	press(m, tea.KeyEsc)
	if _, ok := m.Pending(); ok {
		t.Fatal("dismiss must clear the suggestion")
	}
	typeKeys(m, " ")
	if m.Text() != "The and wiht " {
		t.Fatalf("dismissed word corrected: %q", m.Text())
	}
}

func TestEditor_CursorAndBackspace(t *testing.T) {
	m, _ := newModel(t, "")
	typeKeys(m, "teh")
	press(m, tea.KeyLeft)
	press(m, tea.KeyLeft)
	press(m, tea.KeyLeft)
	if _, ok := m.Pending(); ok {
		t.Fatal("moving to the word start must clear the suggestion")
	}
	if m.Cursor() != 0 {
		t.Fatalf("cursor=%d", m.Cursor())
	}
	press(m, tea.KeyEnd)
	press(m, tea.KeyBackspace)
	if m.Text() != "te" || m.Cursor() != 2 {
		t.Fatalf("text=%q cursor=%d", m.Text(), m.Cursor())
	}
}

func TestEditor_Quit(t *testing.T) {
	m, _ := newModel(t, "")
	if cmd := press(m, tea.KeyCtrlC); cmd == nil {
		t.Fatal("ctrl+c must quit")
	}
}
