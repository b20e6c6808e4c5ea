// Package selection implements the single- and multi-select engines
// that operate over a widget's state store and publish change events on
// its bus.
//
// Both engines absorb invalid programmatic input silently: selecting an
// unknown value, a disabled value, or toggling past the selection
// ceiling is a caller no-op, not a fault.
package selection

import (
	"github.com/grovetools/selectkit/filter"
	"github.com/grovetools/selectkit/pkg/entry"
	"github.com/grovetools/selectkit/store"
)

// State store keys owned by the selection engines. FocusedIndex always
// indexes the filtered/visible collection and resets to -1 whenever
// that collection changes identity.
const (
	KeyDataItems     = "dataItems"
	KeySelectedItem  = "selectedItem"  // *entry.Entry, nil when none
	KeySelectedItems = "selectedItems" // []entry.Entry in selection order
	KeyAllSelected   = "allSelected"
	KeyFocusedIndex  = "focusedIndex"
	KeyFilterText    = "filterText"
	KeyFilteredItems = "filteredItems"
)

// EventChange is published on every actual selection mutation. The
// single engine publishes the selected entry.Entry; the multi engine
// publishes the resulting []entry.Entry in selection order.
const EventChange = "change"

func dataItems(st *store.Store) []entry.Entry {
	v, _ := st.Get(KeyDataItems).([]entry.Entry)
	return v
}

func refreshVisible(st *store.Store, filterable bool, opts filter.Options, items []entry.Entry) {
	if filterable {
		st.Set(KeyFilteredItems, opts.Apply(items, st.String(KeyFilterText)))
	} else {
		st.Set(KeyFilteredItems, items)
	}
	st.Set(KeyFocusedIndex, -1)
}
