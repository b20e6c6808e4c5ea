// Package events provides the typed publish/subscribe primitive shared
// by every selectkit component. Topics are plain strings; each topic
// carries one payload type, fixed by the publishing component.
package events

import "sync"

// Handler receives a topic's payload. Payloads are nil for pure signal
// topics such as "open" and "close".
type Handler func(payload any)

type subscription struct {
	id      uint64
	topic   string
	handler Handler
	once    bool
}

// Bus dispatches published payloads to subscribers in subscription
// order. Handlers run synchronously on the publishing goroutine; the
// bus lock is never held across a handler call, so handlers may
// subscribe, unsubscribe, and publish re-entrantly.
type Bus struct {
	mu     sync.Mutex
	topics map[string][]*subscription
	nextID uint64
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{topics: make(map[string][]*subscription)}
}

// Subscribe registers a handler for a topic and returns an idempotent
// unsubscribe function. Removal is by subscription identity, so a
// handler function registered twice yields two independent
// subscriptions.
func (b *Bus) Subscribe(topic string, h Handler) func() {
	return b.add(topic, h, false)
}

// SubscribeOnce registers a handler that detaches itself before its
// first invocation; later publishes on the topic never reach it.
func (b *Bus) SubscribeOnce(topic string, h Handler) func() {
	return b.add(topic, h, true)
}

func (b *Bus) add(topic string, h Handler, once bool) func() {
	if h == nil {
		return func() {}
	}

	b.mu.Lock()
	b.nextID++
	sub := &subscription{id: b.nextID, topic: topic, handler: h, once: once}
	b.topics[topic] = append(b.topics[topic], sub)
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		b.remove(sub)
		b.mu.Unlock()
	}
}

// remove deletes sub from its topic list. Callers hold b.mu. Calling it
// for an already-removed subscription is a no-op.
func (b *Bus) remove(sub *subscription) {
	subs := b.topics[sub.topic]
	for i, s := range subs {
		if s.id == sub.id {
			b.topics[sub.topic] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

func (b *Bus) registered(sub *subscription) bool {
	for _, s := range b.topics[sub.topic] {
		if s.id == sub.id {
			return true
		}
	}
	return false
}

// UnsubscribeAll drops every handler registered for the topic.
func (b *Bus) UnsubscribeAll(topic string) {
	b.mu.Lock()
	delete(b.topics, topic)
	b.mu.Unlock()
}

// SubscriberCount returns the number of live subscriptions for a topic.
func (b *Bus) SubscriberCount(topic string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.topics[topic])
}

// Publish invokes every handler currently registered for the topic, in
// subscription order. Publishing with zero subscribers is a no-op. A
// handler unsubscribed while the publish cycle is in progress is not
// invoked later in that same cycle; once-handlers are detached before
// their own invocation so co-registered handlers already observe the
// detachment.
func (b *Bus) Publish(topic string, payload any) {
	b.mu.Lock()
	subs := append([]*subscription(nil), b.topics[topic]...)
	b.mu.Unlock()

	for _, sub := range subs {
		b.mu.Lock()
		alive := b.registered(sub)
		if alive && sub.once {
			b.remove(sub)
		}
		b.mu.Unlock()

		if alive {
			sub.handler(payload)
		}
	}
}

// On registers a typed handler for a topic. Payloads that are neither
// nil nor of type T are ignored; a nil payload invokes the handler with
// the zero value, which serves signal topics subscribed as struct{} or
// with a slice/pointer payload type.
func On[T any](b *Bus, topic string, h func(T)) func() {
	return b.Subscribe(topic, func(payload any) {
		if payload == nil {
			var zero T
			h(zero)
			return
		}
		if v, ok := payload.(T); ok {
			h(v)
		}
	})
}
