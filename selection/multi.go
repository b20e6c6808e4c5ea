package selection

import (
	"github.com/grovetools/selectkit/events"
	"github.com/grovetools/selectkit/filter"
	"github.com/grovetools/selectkit/pkg/entry"
	"github.com/grovetools/selectkit/store"
)

// Multi is the multi-select engine. Selected entries keep selection
// order, not source order. MaxSelected caps interactive toggling only;
// the programmatic SetValues path deliberately ignores it.
type Multi struct {
	st          *store.Store
	bus         *events.Bus
	fopts       filter.Options
	maxSelected int // 0 = no ceiling
}

// NewMulti creates a multi-select engine over the given store and bus.
func NewMulti(st *store.Store, bus *events.Bus, fopts filter.Options, maxSelected int) *Multi {
	return &Multi{st: st, bus: bus, fopts: fopts, maxSelected: maxSelected}
}

// Values returns the current selection in selection order. It is always
// non-nil, possibly empty.
func (m *Multi) Values() []entry.Entry {
	if v, ok := m.st.Get(KeySelectedItems).([]entry.Entry); ok && v != nil {
		return v
	}
	return []entry.Entry{}
}

// AllSelected reports the cached derived flag.
func (m *Multi) AllSelected() bool {
	return m.st.Bool(KeyAllSelected)
}

// SetValues is the programmatic selection path.
//
//   - [entry.SelectAllValue] selects every enabled entry.
//   - An empty slice clears the selection.
//   - Otherwise every enabled entry whose value appears in raw is
//     selected, in raw order; disabled and unknown values are silently
//     dropped.
//
// The MaxSelected ceiling does not apply here; it only governs
// interactive toggling.
func (m *Multi) SetValues(raw []any) {
	if len(raw) == 1 && raw[0] == entry.SelectAllValue {
		m.selectAllEnabled()
		return
	}

	items := dataItems(m.st)
	selected := make([]entry.Entry, 0, len(raw))
	for _, v := range raw {
		idx := entry.IndexOf(items, v)
		if idx == -1 || items[idx].Disabled || entry.Contains(selected, v) {
			continue
		}
		selected = append(selected, items[idx])
	}

	m.commit(selected)
}

// Toggle is the interactive selection path. Removal is always allowed;
// adding is refused silently once the ceiling is reached.
func (m *Multi) Toggle(e entry.Entry) bool {
	selected := m.Values()

	if idx := entry.IndexOf(selected, e.Value); idx != -1 {
		next := append(entry.Clone(selected[:idx]), selected[idx+1:]...)
		m.commit(next)
		return true
	}

	if e.Disabled || !entry.Contains(dataItems(m.st), e.Value) {
		return false
	}
	if m.maxSelected > 0 && len(selected) >= m.maxSelected {
		return false
	}

	m.commit(append(entry.Clone(selected), e))
	return true
}

// ToggleLast removes the most recently selected entry, serving the
// backspace-in-empty-input gesture. It is a no-op on an empty
// selection.
func (m *Multi) ToggleLast() bool {
	selected := m.Values()
	if len(selected) == 0 {
		return false
	}
	return m.Toggle(selected[len(selected)-1])
}

// ToggleSelectAll clears the selection when everything enabled is
// already selected, and selects all enabled entries otherwise. Both
// paths publish change.
func (m *Multi) ToggleSelectAll() {
	if m.AllSelected() {
		m.commit([]entry.Entry{})
		return
	}
	m.selectAllEnabled()
}

// SetItems replaces the data set wholesale, intersecting the current
// selection with the new set's values (selection order preserved).
func (m *Multi) SetItems(items []entry.Entry) {
	m.st.Set(KeyDataItems, items)

	selected := m.Values()
	kept := make([]entry.Entry, 0, len(selected))
	for _, e := range selected {
		if entry.Contains(items, e.Value) {
			kept = append(kept, e)
		}
	}
	m.st.Set(KeySelectedItems, kept)
	m.st.Set(KeyAllSelected, m.computeAllSelected(kept))

	refreshVisible(m.st, true, m.fopts, items)
}

func (m *Multi) selectAllEnabled() {
	m.commit(entry.Enabled(dataItems(m.st)))
}

// commit stores the new selection, recomputes the derived allSelected
// flag, and publishes change. allSelected is never hand-toggled
// anywhere else.
func (m *Multi) commit(selected []entry.Entry) {
	m.st.Set(KeySelectedItems, selected)
	m.st.Set(KeyAllSelected, m.computeAllSelected(selected))
	m.bus.Publish(EventChange, selected)
}

// computeAllSelected reports whether the enabled entries' values form a
// set equal to the selection's values.
func (m *Multi) computeAllSelected(selected []entry.Entry) bool {
	enabled := entry.Enabled(dataItems(m.st))
	if len(enabled) == 0 || len(selected) != len(enabled) {
		return false
	}
	for _, e := range enabled {
		if !entry.Contains(selected, e.Value) {
			return false
		}
	}
	return true
}
