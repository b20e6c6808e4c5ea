// Package keymap defines the keybindings the selectkit TUI host uses
// and their translation to the widget package's abstract key actions.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/grovetools/selectkit/widget"
)

// Base contains the keybindings driving a selection widget. Filterable
// widgets route printable runes to the filter input instead, so only
// control keys live here.
type Base struct {
	Up        key.Binding
	Down      key.Binding
	Home      key.Binding
	End       key.Binding
	Confirm   key.Binding
	ToggleKey key.Binding
	Cancel    key.Binding
	Backspace key.Binding
	Quit      key.Binding
	SelectAll key.Binding
}

// NewBase creates a Base keymap with the default bindings.
func NewBase() Base {
	return Base{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		ToggleKey: key.NewBinding(
			key.WithKeys(" ", "tab"),
			key.WithHelp("space", "toggle"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("bksp", "remove last"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("C-c", "quit"),
		),
		SelectAll: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("C-a", "select all"),
		),
	}
}

// Resolve maps a terminal key message to the widget action it drives.
// Keys not bound here resolve to widget.KeyNone and fall through to
// the host (typically the filter text input).
func (b Base) Resolve(msg tea.KeyMsg) widget.Key {
	switch {
	case key.Matches(msg, b.Up):
		return widget.KeyUp
	case key.Matches(msg, b.Down):
		return widget.KeyDown
	case key.Matches(msg, b.Home):
		return widget.KeyHome
	case key.Matches(msg, b.End):
		return widget.KeyEnd
	case key.Matches(msg, b.Confirm):
		return widget.KeyEnter
	case key.Matches(msg, b.ToggleKey):
		return widget.KeySpace
	case key.Matches(msg, b.Cancel):
		return widget.KeyEscape
	case key.Matches(msg, b.Backspace):
		return widget.KeyBackspace
	default:
		return widget.KeyNone
	}
}
