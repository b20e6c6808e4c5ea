// Package store implements the keyed reactive state record backing each
// widget instance. It is an explicit observer map rather than a
// transparent proxy: values are read with Get, replaced with Set, and
// every Set notifies that key's subscribers synchronously.
package store

import "sync"

type watcher struct {
	id uint64
	fn func(value any)
}

// Store holds a widget's state record. Notification is synchronous and
// depth-first: a Set performed inside a subscriber runs its own full
// notification cycle before control returns to the outer subscriber.
// Set always notifies, even when the new value equals the old one.
type Store struct {
	mu     sync.Mutex
	values map[string]any
	subs   map[string][]*watcher
	nextID uint64
}

// New creates a store seeded with the given initial values.
func New(initial map[string]any) *Store {
	values := make(map[string]any, len(initial))
	for k, v := range initial {
		values[k] = v
	}
	return &Store{
		values: values,
		subs:   make(map[string][]*watcher),
	}
}

// Get returns the current value for key, or nil when unset.
func (s *Store) Get(key string) any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[key]
}

// Set replaces the value for key and notifies that key's subscribers in
// subscription order. The store lock is released around each handler
// call, so handlers may call Set and Subscribe re-entrantly.
func (s *Store) Set(key string, value any) {
	s.mu.Lock()
	s.values[key] = value
	snapshot := append([]*watcher(nil), s.subs[key]...)
	s.mu.Unlock()

	for _, w := range snapshot {
		s.mu.Lock()
		alive := s.watching(key, w.id)
		s.mu.Unlock()
		if alive {
			w.fn(value)
		}
	}
}

func (s *Store) watching(key string, id uint64) bool {
	for _, w := range s.subs[key] {
		if w.id == id {
			return true
		}
	}
	return false
}

// SubscribeOption customizes a Subscribe call.
type SubscribeOption func(*subscribeConfig)

type subscribeConfig struct {
	emitImmediately bool
}

// EmitImmediately makes the handler fire once synchronously at
// subscribe time with the key's current value.
func EmitImmediately() SubscribeOption {
	return func(c *subscribeConfig) { c.emitImmediately = true }
}

// Subscribe registers a handler for changes to key and returns an
// idempotent unsubscribe function.
func (s *Store) Subscribe(key string, fn func(value any), opts ...SubscribeOption) func() {
	var cfg subscribeConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if fn == nil {
		return func() {}
	}

	s.mu.Lock()
	s.nextID++
	w := &watcher{id: s.nextID, fn: fn}
	s.subs[key] = append(s.subs[key], w)
	current := s.values[key]
	s.mu.Unlock()

	if cfg.emitImmediately {
		fn(current)
	}

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		subs := s.subs[key]
		for i, cand := range subs {
			if cand.id == w.id {
				s.subs[key] = append(subs[:i:i], subs[i+1:]...)
				return
			}
		}
	}
}

// Int reads key as an int, returning fallback when unset or mistyped.
func (s *Store) Int(key string, fallback int) int {
	if v, ok := s.Get(key).(int); ok {
		return v
	}
	return fallback
}

// Bool reads key as a bool, returning false when unset or mistyped.
func (s *Store) Bool(key string) bool {
	v, _ := s.Get(key).(bool)
	return v
}

// String reads key as a string, returning "" when unset or mistyped.
func (s *Store) String(key string) string {
	v, _ := s.Get(key).(string)
	return v
}
