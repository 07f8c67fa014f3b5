package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the board key bindings.
type keyMap struct {
	Quit      key.Binding
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	MoveLeft  key.Binding
	MoveRight key.Binding
	Drop      key.Binding
	Search    key.Binding
	Filter    key.Binding
	DueToday  key.Binding
	Overdue   key.Binding
	Sidebar   key.Binding
	Add       key.Binding
	Edit      key.Binding
	Delete    key.Binding
	Undo      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "column left")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "column right")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "card up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "card down")),
		MoveLeft:  key.NewBinding(key.WithKeys("shift+left", "H"), key.WithHelp("H", "move card left")),
		MoveRight: key.NewBinding(key.WithKeys("shift+right", "L"), key.WithHelp("L", "move card right")),
		Drop:      key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "move card to column")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Filter:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "cycle status filter")),
		DueToday:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "due today")),
		Overdue:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "overdue")),
		Sidebar:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sidebar")),
		Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		Undo:      key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo delete")),
	}
}

// shortHelp is the status bar help line.
func (k keyMap) shortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Up, k.MoveRight, k.Drop, k.Search, k.Filter, k.DueToday, k.Overdue, k.Add, k.Edit, k.Delete, k.Quit}
}
