package widget

// Key is the abstract keyboard action a host delivers to a widget.
// Hosts translate their native key events (tea.KeyMsg in the tui
// package) into these before calling HandleKey.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyEnter
	KeySpace
	KeyEscape
	KeyBackspace
	KeyHome
	KeyEnd
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyEnter:
		return "enter"
	case KeySpace:
		return "space"
	case KeyEscape:
		return "escape"
	case KeyBackspace:
		return "backspace"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	default:
		return "none"
	}
}
