package widget

import (
	"fmt"
	"strings"

	"github.com/grovetools/selectkit/events"
	"github.com/grovetools/selectkit/pkg/entry"
	"github.com/grovetools/selectkit/selection"
	"github.com/grovetools/selectkit/store"
)

// summaryLimit is the number of selected texts shown verbatim before
// the summary collapses to a count.
const summaryLimit = 3

// Multiselect is the filterable multi-select widget. Activating an
// entry toggles its membership and keeps the popover open; backspace
// on an empty filter removes the most recently selected entry.
type Multiselect struct {
	*base
	sel *selection.Multi
}

// NewMultiselect builds a multiselect from o. It fails fast with a
// construction fault when Root is missing or both Items and Source
// are given.
func NewMultiselect(o Options) (*Multiselect, error) {
	if err := o.validate("multiselect"); err != nil {
		return nil, err
	}

	b := newBase("multiselect", o, true)
	m := &Multiselect{base: b, sel: selection.NewMulti(b.st, b.bus, b.fopts, o.MaxSelectedItems)}

	b.setItems = m.sel.SetItems
	b.selected = func(e entry.Entry) bool {
		return entry.Contains(m.sel.Values(), e.Value)
	}
	b.activate = func(e entry.Entry) {
		m.sel.Toggle(e)
	}
	b.onBackspace = func() {
		m.sel.ToggleLast()
	}

	b.wire(o)

	if len(o.Values) > 0 {
		m.sel.SetValues(o.Values)
	}
	b.unsubs = append(b.unsubs, b.st.Subscribe(selection.KeySelectedItems, func(any) {
		b.root.SetContent(m.SummaryText())
	}, store.EmitImmediately()))

	return m, nil
}

// Values returns the selection in selection order, never nil.
func (m *Multiselect) Values() []entry.Entry {
	return m.sel.Values()
}

// SetValues is the programmatic selection path. A single
// entry.SelectAllValue selects every enabled entry; an empty slice
// clears the selection.
func (m *Multiselect) SetValues(raw []any) {
	m.sel.SetValues(raw)
}

// ToggleValue toggles membership of the entry whose value equals raw.
func (m *Multiselect) ToggleValue(raw any) bool {
	items := m.Items()
	idx := entry.IndexOf(items, raw)
	if idx == -1 {
		return false
	}
	return m.sel.Toggle(items[idx])
}

// ToggleSelectAll selects all enabled entries, or clears the
// selection when everything enabled is already selected.
func (m *Multiselect) ToggleSelectAll() {
	m.sel.ToggleSelectAll()
}

// AllSelected reports whether every enabled entry is selected.
func (m *Multiselect) AllSelected() bool {
	return m.sel.AllSelected()
}

// OnChange fires with the full selection in selection order.
func (m *Multiselect) OnChange(fn func([]entry.Entry)) func() {
	return events.On(m.bus, EventChange, fn)
}

// SummaryText lists the selected texts in selection order, collapsing
// to a count past summaryLimit. Empty selections show the placeholder.
func (m *Multiselect) SummaryText() string {
	selected := m.sel.Values()
	if len(selected) == 0 {
		return m.placeholder
	}
	if len(selected) > summaryLimit {
		return fmt.Sprintf("%d selected", len(selected))
	}
	texts := make([]string, len(selected))
	for i, e := range selected {
		texts[i] = e.Text
	}
	return strings.Join(texts, ", ")
}
