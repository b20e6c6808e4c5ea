// Package testutil holds fixtures and helpers shared by selectkit
// tests.
package testutil

import (
	"sync"

	"github.com/grovetools/selectkit/events"
	"github.com/grovetools/selectkit/pkg/entry"
)

// Cities returns the standard four-entry fixture used across the
// widget tests: Samara is disabled, the rest are selectable.
func Cities() []entry.Entry {
	return []entry.Entry{
		entry.New(1, "Moscow"),
		entry.NewDisabled(2, "Samara"),
		entry.New(3, "Murmansk"),
		entry.New(4, "Kazan"),
	}
}

// Texts returns the display texts of items in order.
func Texts(items []entry.Entry) []string {
	out := make([]string, len(items))
	for i, e := range items {
		out[i] = e.Text
	}
	return out
}

// Recorder captures every publish on one bus topic. Safe for
// concurrent use; publishes may come from timer goroutines.
type Recorder struct {
	mu       sync.Mutex
	payloads []any
	unsub    func()
}

// Record subscribes a Recorder to topic on bus. Call Stop when done.
func Record(bus *events.Bus, topic string) *Recorder {
	r := &Recorder{}
	r.unsub = bus.Subscribe(topic, func(payload any) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.payloads = append(r.payloads, payload)
	})
	return r
}

// Count returns how many publishes were observed.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.payloads)
}

// Payloads returns a copy of the observed payloads in publish order.
func (r *Recorder) Payloads() []any {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]any, len(r.payloads))
	copy(out, r.payloads)
	return out
}

// Last returns the most recent payload, or nil.
func (r *Recorder) Last() any {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.payloads) == 0 {
		return nil
	}
	return r.payloads[len(r.payloads)-1]
}

// Stop removes the subscription.
func (r *Recorder) Stop() {
	if r.unsub != nil {
		r.unsub()
	}
}
