// Package datasource wraps the three entry-collection backings (a
// static slice, a one-shot future, or a factory of fetches) behind one
// fetch/cache/invalidate contract with loading/load/error events.
//
// A Source is externally owned and may feed several widget instances at
// once; each widget subscribes its own listeners and removes exactly
// those on teardown.
package datasource

import (
	"context"
	"sync"

	"github.com/grovetools/selectkit/events"
	"github.com/grovetools/selectkit/pkg/entry"
)

// Event topics published by a Source.
const (
	EventLoading = "loading" // nil payload, before every real fetch
	EventLoad    = "load"    // []entry.Entry payload
	EventError   = "error"   // error payload
)

// Loader produces an entry collection. Factory-backed sources invoke it
// fresh on every real fetch; future-backed sources invoke it at most
// once and replay the settled result.
type Loader func(ctx context.Context) ([]entry.Entry, error)

// Source is the cached asynchronous data source behind a widget.
//
// Fetch blocks its caller until the backing loader settles, so hosts
// run it off the interaction path (a goroutine or tea.Cmd). Overlapping
// forced fetches are neither serialized nor cancelled: each emits its
// own loading/load pair and the last one to settle wins the cache.
type Source struct {
	bus *events.Bus

	mu          sync.Mutex
	loader      Loader
	staticItems []entry.Entry
	static      bool
	cached      []entry.Entry
	resolved    bool
	inflight    int
}

// NewStatic creates a source over a fixed collection. It is Resolved
// from construction and never emits loading asynchronously.
func NewStatic(items []entry.Entry) *Source {
	return &Source{
		bus:         events.NewBus(),
		staticItems: entry.Clone(items),
		static:      true,
		cached:      entry.Clone(items),
		resolved:    true,
	}
}

// NewFuture creates a source over a one-shot pending result. The loader
// runs at most once; later fetches, including after Invalidate, replay
// its settled value or error, the way an already-settled promise is
// re-awaited.
func NewFuture(load Loader) *Source {
	return &Source{bus: events.NewBus(), loader: memoize(load)}
}

// NewFactory creates a source whose loader is invoked fresh each time a
// real fetch happens.
func NewFactory(load Loader) *Source {
	return &Source{bus: events.NewBus(), loader: load}
}

func memoize(load Loader) Loader {
	var (
		once  sync.Once
		items []entry.Entry
		err   error
	)
	return func(ctx context.Context) ([]entry.Entry, error) {
		once.Do(func() { items, err = load(ctx) })
		return items, err
	}
}

// Fetch returns the entry collection, consulting the cache first.
//
// With a warm cache and force false it returns synchronously without
// emitting events. Otherwise it emits loading, resolves the backing
// input, and on success caches the collection and emits load; on
// failure it emits error and leaves the cache untouched. For a given
// fetch, loading is always emitted strictly before its load or error.
func (s *Source) Fetch(ctx context.Context, force bool) ([]entry.Entry, error) {
	s.mu.Lock()
	if s.resolved && !force {
		items := s.cached
		s.mu.Unlock()
		return items, nil
	}

	if s.static {
		// No real re-fetch is possible; replay the collection. The
		// loading/load pair is emitted back to back in this same call,
		// so IsLoading never reads true for a static source.
		s.cached = entry.Clone(s.staticItems)
		s.resolved = true
		items := s.cached
		s.mu.Unlock()
		s.bus.Publish(EventLoading, nil)
		s.bus.Publish(EventLoad, items)
		return items, nil
	}

	s.inflight++
	s.mu.Unlock()

	s.bus.Publish(EventLoading, nil)

	items, err := s.loader(ctx)

	s.mu.Lock()
	s.inflight--
	if err != nil {
		s.mu.Unlock()
		s.bus.Publish(EventError, err)
		return nil, err
	}
	// Last writer wins when forced fetches overlap.
	s.cached = items
	s.resolved = true
	s.mu.Unlock()

	s.bus.Publish(EventLoad, items)
	return items, nil
}

// Invalidate clears the cached collection. It does not touch in-flight
// work; a fetch already running will still settle and cache its result.
func (s *Source) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.resolved = false
	s.mu.Unlock()
}

// Data returns the cached collection, or nil when nothing is cached.
func (s *Source) Data() []entry.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cached
}

// Resolved reports whether a collection is cached.
func (s *Source) Resolved() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolved
}

// IsLoading reports whether an asynchronous resolution is in progress.
// It is never true for a static source.
func (s *Source) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inflight > 0
}

// OnLoading subscribes to the loading signal and returns an idempotent
// unsubscribe function scoped to this subscription only.
func (s *Source) OnLoading(fn func()) func() {
	return s.bus.Subscribe(EventLoading, func(any) { fn() })
}

// OnLoad subscribes to successful loads.
func (s *Source) OnLoad(fn func(items []entry.Entry)) func() {
	return events.On(s.bus, EventLoad, fn)
}

// OnError subscribes to fetch failures.
func (s *Source) OnError(fn func(err error)) func() {
	return events.On(s.bus, EventError, fn)
}
