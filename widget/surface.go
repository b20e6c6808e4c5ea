package widget

import (
	"sync"

	"github.com/grovetools/selectkit/position"
)

// Surface is one of the opaque host regions a widget controls: the
// root input surface, the wrapper, and the popover. The core relies on
// nothing beyond this contract; rendering and event plumbing stay on
// the host side.
type Surface interface {
	Content() string
	SetContent(text string)

	Visible() bool
	SetVisible(visible bool)

	AddClass(name string)
	RemoveClass(name string)
	HasClass(name string) bool

	Bounds() position.Rect
	SetBounds(r position.Rect)
}

// Node is the in-memory Surface used by headless hosts and tests. The
// tui package embeds it for its rendered surfaces.
type Node struct {
	mu      sync.Mutex
	content string
	visible bool
	classes []string
	bounds  position.Rect
}

// NewNode creates an empty, hidden surface.
func NewNode() *Node {
	return &Node{}
}

func (n *Node) Content() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.content
}

func (n *Node) SetContent(text string) {
	n.mu.Lock()
	n.content = text
	n.mu.Unlock()
}

func (n *Node) Visible() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.visible
}

func (n *Node) SetVisible(visible bool) {
	n.mu.Lock()
	n.visible = visible
	n.mu.Unlock()
}

func (n *Node) AddClass(name string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, c := range n.classes {
		if c == name {
			return
		}
	}
	n.classes = append(n.classes, name)
}

func (n *Node) RemoveClass(name string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, c := range n.classes {
		if c == name {
			n.classes = append(n.classes[:i:i], n.classes[i+1:]...)
			return
		}
	}
}

func (n *Node) HasClass(name string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, c := range n.classes {
		if c == name {
			return true
		}
	}
	return false
}

func (n *Node) Bounds() position.Rect {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.bounds
}

func (n *Node) SetBounds(r position.Rect) {
	n.mu.Lock()
	n.bounds = r
	n.mu.Unlock()
}
