package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Accept    key.Binding
	Dismiss   key.Binding
	Undo      key.Binding
	Redo      key.Binding
	Left      key.Binding
	Right     key.Binding
	Home      key.Binding
	End       key.Binding
	Backspace key.Binding
	Newline   key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	Accept:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "accept")),
	Dismiss:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss")),
	Undo:      key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
	Redo:      key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "redo")),
	Left:      key.NewBinding(key.WithKeys("left")),
	Right:     key.NewBinding(key.WithKeys("right")),
	Home:      key.NewBinding(key.WithKeys("home", "ctrl+a")),
	End:       key.NewBinding(key.WithKeys("end", "ctrl+e")),
	Backspace: key.NewBinding(key.WithKeys("backspace")),
	Newline:   key.NewBinding(key.WithKeys("enter")),
	Quit:      key.NewBinding(key.WithKeys("ctrl+c", "ctrl+d"), key.WithHelp("ctrl+c", "quit")),
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.Accept, k.Dismiss, k.Undo, k.Redo, k.Quit}
}
