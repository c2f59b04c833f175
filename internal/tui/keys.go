package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	MoveLeft  key.Binding
	MoveRight key.Binding
	StartWork key.Binding
	Repaired  key.Binding
	Scrap     key.Binding
	New       key.Binding
	Reports   key.Binding
	MarkRead  key.Binding
	Back      key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev column")),
	Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next column")),
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev card")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next card")),
	MoveLeft:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "move card left")),
	MoveRight: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "move card right")),
	StartWork: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start work")),
	Repaired:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "complete: repaired")),
	Scrap:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "complete: scrap")),
	New:       key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new request")),
	Reports:   key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reports")),
	MarkRead:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "mark notification read")),
	Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}
