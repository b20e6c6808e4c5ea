// Package overlay implements the shared, reference-counted registry of
// overlay host containers. All widget instances on a page share one
// host per identifier; the host is created lazily on first acquire and
// discarded when the last holder releases it.
//
// The registry is injected into widgets rather than reached through
// ambient global state, so tests can use a fresh registry per run.
package overlay

import "sync"

// DefaultHostID is the well-known identifier for the shared popover
// container.
const DefaultHostID = "selectkit-overlay"

type host[T any] struct {
	surface T
	refs    int
}

// Registry tracks overlay hosts by identifier, reference-counted.
type Registry[T any] struct {
	mu    sync.Mutex
	hosts map[string]*host[T]
}

// NewRegistry creates an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{hosts: make(map[string]*host[T])}
}

// Acquire returns the host surface for id, creating it with create on
// first acquisition, and increments its reference count.
func (r *Registry[T]) Acquire(id string, create func() T) T {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.hosts[id]
	if !ok {
		h = &host[T]{surface: create()}
		r.hosts[id] = h
	}
	h.refs++
	return h.surface
}

// Release decrements the host's reference count, discarding the host
// when it reaches zero. Releasing an unknown id is a no-op.
func (r *Registry[T]) Release(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.hosts[id]
	if !ok {
		return
	}
	h.refs--
	if h.refs <= 0 {
		delete(r.hosts, id)
	}
}

// Refs returns the current reference count for id.
func (r *Registry[T]) Refs(id string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if h, ok := r.hosts[id]; ok {
		return h.refs
	}
	return 0
}

// Reset discards every host regardless of reference counts. Intended
// for tests.
func (r *Registry[T]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hosts = make(map[string]*host[T])
}
