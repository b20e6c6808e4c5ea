package position

import "sync"

// Notifier is a push-style positioner for hosts that can observe
// layout changes (window resizes, scroll). Placement math is Static's;
// Invalidate fans out to every live AutoUpdate subscription.
type Notifier struct {
	Static

	mu     sync.Mutex
	nextID uint64
	subs   map[uint64]func()
}

// NewNotifier creates an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[uint64]func())}
}

// AutoUpdate registers fn to run on every Invalidate until stop is
// called. stop is idempotent.
func (n *Notifier) AutoUpdate(anchor, floating func() Rect, fn func()) func() {
	n.mu.Lock()
	n.nextID++
	id := n.nextID
	n.subs[id] = fn
	n.mu.Unlock()

	return func() {
		n.mu.Lock()
		delete(n.subs, id)
		n.mu.Unlock()
	}
}

// Invalidate signals a geometry change to all subscribers.
func (n *Notifier) Invalidate() {
	n.mu.Lock()
	fns := make([]func(), 0, len(n.subs))
	for _, fn := range n.subs {
		fns = append(fns, fn)
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
