package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit       key.Binding
	NextFocus  key.Binding
	PrevFocus  key.Binding
	Submit     key.Binding
	Search     key.Binding
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Favorite   key.Binding
	ClearFavs  key.Binding
	NextPage   key.Binding
	PrevPage   key.Binding
	Sort       key.Binding
	Reset      key.Binding
	Match      key.Binding
	Area       key.Binding
	Logout     key.Binding
	ZoomIn     key.Binding
	ZoomOut    key.Binding
	Close      key.Binding
	ToggleItem key.Binding
}

var keys = keyMap{
	Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	NextFocus:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	PrevFocus:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
	Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
	Search:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "search")),
	Up:         key.NewBinding(key.WithKeys("up", "k")),
	Down:       key.NewBinding(key.WithKeys("down", "j")),
	Left:       key.NewBinding(key.WithKeys("left", "h")),
	Right:      key.NewBinding(key.WithKeys("right", "l")),
	Favorite:   key.NewBinding(key.WithKeys(" ", "f"), key.WithHelp("space", "favorite")),
	ClearFavs:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear favorites")),
	NextPage:   key.NewBinding(key.WithKeys("]", "pgdown"), key.WithHelp("]", "next page")),
	PrevPage:   key.NewBinding(key.WithKeys("[", "pgup"), key.WithHelp("[", "prev page")),
	Sort:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
	Reset:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
	Match:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "find match")),
	Area:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "map area")),
	Logout:     key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "logout")),
	ZoomIn:     key.NewBinding(key.WithKeys("+", "=")),
	ZoomOut:    key.NewBinding(key.WithKeys("-")),
	Close:      key.NewBinding(key.WithKeys("esc")),
	ToggleItem: key.NewBinding(key.WithKeys("enter")),
}
