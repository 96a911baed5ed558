package textbuf

import (
	"errors"
	"testing"
)

func TestMemory_InsertMovesCursor(t *testing.T) {
	m := NewMemory("", Options{})
	m.Insert("héllo")
	if got := m.Text(); got != "héllo" {
		t.Fatalf("text=%q, want %q", got, "héllo")
	}
	if got := m.Cursor(); got != 5 {
		t.Fatalf("cursor=%d, want 5", got)
	}
}

func TestMemory_ReplaceRange_ShiftsCursor(t *testing.T) {
	tests := []struct {
		name       string
		cursor     int
		start, end int
		text       string
		wantText   string
		wantCursor int
	}{
		{"cursor after range", 11, 8, 11, "the", "I think the answer", 11},
		{"cursor after grows", 18, 8, 11, "their", "I think their answer", 20},
		{"cursor before range", 2, 8, 11, "a", "I think a answer", 2},
		{"cursor inside range", 9, 8, 11, "the", "I think the answer", 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMemory("I think teh answer", Options{})
			m.SetCursor(tt.cursor)
			if err := m.ReplaceRange(tt.start, tt.end, tt.text); err != nil {
				t.Fatalf("ReplaceRange: %v", err)
			}
			if got := m.Text(); got != tt.wantText {
				t.Fatalf("text=%q, want %q", got, tt.wantText)
			}
			if got := m.Cursor(); got != tt.wantCursor {
				t.Fatalf("cursor=%d, want %d", got, tt.wantCursor)
			}
		})
	}
}

func TestMemory_ReplaceRange_OutOfBounds(t *testing.T) {
	m := NewMemory("abc", Options{})
	for _, r := range [][2]int{{-1, 1}, {2, 1}, {0, 4}} {
		err := m.ReplaceRange(r[0], r[1], "x")
		if !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("range %v: err=%v, want ErrOutOfRange", r, err)
		}
	}
	if m.Text() != "abc" || m.CanUndo() {
		t.Fatalf("failed replace must not mutate or record history")
	}
}

func TestMemory_UndoRedo(t *testing.T) {
	m := NewMemory("", Options{})
	m.Insert("teh")
	m.Insert(" ")
	if err := m.ReplaceRange(0, 3, "the"); err != nil {
		t.Fatal(err)
	}
	if m.Text() != "the " {
		t.Fatalf("text=%q", m.Text())
	}

	if !m.Undo() {
		t.Fatal("expected undo")
	}
	if m.Text() != "teh " || m.Cursor() != 4 {
		t.Fatalf("after undo text=%q cursor=%d", m.Text(), m.Cursor())
	}
	if !m.Redo() {
		t.Fatal("expected redo")
	}
	if m.Text() != "the " {
		t.Fatalf("after redo text=%q", m.Text())
	}

	m.Undo()
	m.Insert("x")
	if m.CanRedo() {
		t.Fatal("new edit must clear redo")
	}
}

func TestMemory_HistoryLimit(t *testing.T) {
	m := NewMemory("", Options{HistoryLimit: 2})
	m.Insert("a")
	m.Insert("b")
	m.Insert("c")
	n := 0
	for m.Undo() {
		n++
	}
	if n != 2 {
		t.Fatalf("undo steps=%d, want 2", n)
	}
	if m.Text() != "a" {
		t.Fatalf("text=%q, want %q", m.Text(), "a")
	}
}

func TestSlice(t *testing.T) {
	if s, ok := Slice("naïve cat", 0, 5); !ok || s != "naïve" {
		t.Fatalf("Slice=%q,%v", s, ok)
	}
	if _, ok := Slice("abc", 2, 5); ok {
		t.Fatal("expected invalid range")
	}
}

func TestMemory_Reset(t *testing.T) {
	m := NewMemory("abc", Options{})
	m.Insert("d")
	m.Reset("naïve", 9)
	if m.Text() != "naïve" || m.Cursor() != 5 {
		t.Fatalf("text=%q cursor=%d", m.Text(), m.Cursor())
	}
	if m.CanUndo() {
		t.Fatal("reset must drop history")
	}
}
