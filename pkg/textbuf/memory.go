package textbuf

// Options configures a Memory buffer.
type Options struct {
	HistoryLimit int // default: 1000
}

type snapshot struct {
	text   []rune
	cursor int
}

// Memory is an in-memory Buffer with an undo/redo history.
// Every mutation, including corrections, is one undo step.
type Memory struct {
	runes   []rune
	cursor  int
	version uint64

	opt  Options
	undo []snapshot
	redo []snapshot
}

// NewMemory creates a buffer holding text with the cursor at its end.
func NewMemory(text string, opt Options) *Memory {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	r := []rune(text)
	return &Memory{
		runes:  r,
		cursor: len(r),
		opt:    opt,
	}
}

func (m *Memory) Text() string { return string(m.runes) }

func (m *Memory) Len() int { return len(m.runes) }

func (m *Memory) Cursor() int { return m.cursor }

// Version increments on every text or cursor change.
func (m *Memory) Version() uint64 { return m.version }

func (m *Memory) SetCursor(pos int) {
	next := clamp(pos, 0, len(m.runes))
	if next == m.cursor {
		return
	}
	m.cursor = next
	m.version++
}

// ReplaceRange replaces [start, end) with text. The cursor keeps its position
// relative to the surrounding text: positions after the range shift by the
// length delta, positions inside the range move to the end of the insertion.
func (m *Memory) ReplaceRange(start, end int, text string) error {
	if err := checkRange(len(m.runes), start, end); err != nil {
		return err
	}
	ins := []rune(text)
	if end == start && len(ins) == 0 {
		return nil
	}

	m.record()

	next := make([]rune, 0, len(m.runes)-(end-start)+len(ins))
	next = append(next, m.runes[:start]...)
	next = append(next, ins...)
	next = append(next, m.runes[end:]...)
	m.runes = next

	switch {
	case m.cursor >= end:
		m.cursor += len(ins) - (end - start)
	case m.cursor > start:
		m.cursor = start + len(ins)
	}
	m.version++
	return nil
}

// Insert types text at the cursor and leaves the cursor after it.
func (m *Memory) Insert(text string) {
	at := m.cursor
	if err := m.ReplaceRange(at, at, text); err != nil {
		return
	}
	m.cursor = at + len([]rune(text))
}

// DeleteBackward removes the rune before the cursor.
func (m *Memory) DeleteBackward() bool {
	if m.cursor == 0 {
		return false
	}
	return m.ReplaceRange(m.cursor-1, m.cursor, "") == nil
}

func (m *Memory) CanUndo() bool { return len(m.undo) > 0 }

func (m *Memory) CanRedo() bool { return len(m.redo) > 0 }

func (m *Memory) Undo() bool {
	if len(m.undo) == 0 {
		return false
	}
	i := len(m.undo) - 1
	prev := m.undo[i]
	m.undo = m.undo[:i]
	m.redo = append(m.redo, m.snapshot())
	m.restore(prev)
	return true
}

func (m *Memory) Redo() bool {
	if len(m.redo) == 0 {
		return false
	}
	i := len(m.redo) - 1
	next := m.redo[i]
	m.redo = m.redo[:i]
	m.push(m.snapshot())
	m.restore(next)
	return true
}

func (m *Memory) snapshot() snapshot {
	cp := make([]rune, len(m.runes))
	copy(cp, m.runes)
	return snapshot{text: cp, cursor: m.cursor}
}

func (m *Memory) restore(s snapshot) {
	m.runes = s.text
	m.cursor = clamp(s.cursor, 0, len(m.runes))
	m.version++
}

func (m *Memory) record() {
	m.push(m.snapshot())
	m.redo = nil
}

func (m *Memory) push(s snapshot) {
	limit := m.opt.HistoryLimit
	if limit <= 0 {
		return
	}
	m.undo = append(m.undo, s)
	if len(m.undo) > limit {
		m.undo = m.undo[len(m.undo)-limit:]
	}
}

// Reset replaces the whole text, places the cursor and drops the history.
// Hosts that mirror a remote document use it to resync before each edit.
func (m *Memory) Reset(text string, cursor int) {
	m.runes = []rune(text)
	m.cursor = clamp(cursor, 0, len(m.runes))
	m.undo = nil
	m.redo = nil
	m.version++
}
