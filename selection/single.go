package selection

import (
	"github.com/grovetools/selectkit/events"
	"github.com/grovetools/selectkit/filter"
	"github.com/grovetools/selectkit/pkg/entry"
	"github.com/grovetools/selectkit/store"
)

// Single is the single-select engine. The Filterable flag adds the
// combobox behavior: a selection clears the filter text and restores
// the full collection as the visible set.
type Single struct {
	st         *store.Store
	bus        *events.Bus
	filterable bool
	fopts      filter.Options
}

// NewSingle creates a single-select engine over the given store and bus.
func NewSingle(st *store.Store, bus *events.Bus, filterable bool, fopts filter.Options) *Single {
	return &Single{st: st, bus: bus, filterable: filterable, fopts: fopts}
}

// Value returns the selected entry, or nil when nothing is selected.
func (s *Single) Value() *entry.Entry {
	v, _ := s.st.Get(KeySelectedItem).(*entry.Entry)
	return v
}

// Select stores e as the selection and publishes change. Disabled
// entries and entries absent from the current data set are ignored.
func (s *Single) Select(e entry.Entry) bool {
	if e.Disabled || !entry.Contains(dataItems(s.st), e.Value) {
		return false
	}

	selected := e
	s.st.Set(KeySelectedItem, &selected)

	if s.filterable {
		s.st.Set(KeyFilterText, "")
		s.st.Set(KeyFilteredItems, dataItems(s.st))
		s.st.Set(KeyFocusedIndex, -1)
	}

	s.bus.Publish(EventChange, selected)
	return true
}

// SetValue resolves raw against the current data set by value equality
// and selects the match. An unknown or disabled value is nothing to do,
// not a fault: no event, no error.
func (s *Single) SetValue(raw any) {
	items := dataItems(s.st)
	idx := entry.IndexOf(items, raw)
	if idx == -1 {
		return
	}
	s.Select(items[idx])
}

// SetItems replaces the data set wholesale. A selection whose value is
// absent from the new set is dropped; the visible collection is
// re-filtered and keyboard focus resets.
func (s *Single) SetItems(items []entry.Entry) {
	s.st.Set(KeyDataItems, items)

	if sel := s.Value(); sel != nil && !entry.Contains(items, sel.Value) {
		s.st.Set(KeySelectedItem, (*entry.Entry)(nil))
	}

	refreshVisible(s.st, s.filterable, s.fopts, items)
}
