package widget

import (
	"github.com/grovetools/selectkit/events"
	"github.com/grovetools/selectkit/pkg/entry"
	"github.com/grovetools/selectkit/selection"
	"github.com/grovetools/selectkit/store"
)

// Combobox is the filterable single-select widget. Live typing narrows
// the visible collection through the debouncer; selecting an entry
// clears the filter, restores the full collection, and closes the
// popover.
type Combobox struct {
	*base
	sel *selection.Single
}

// NewCombobox builds a combobox from o. It fails fast with a
// construction fault when Root is missing or both Items and Source
// are given.
func NewCombobox(o Options) (*Combobox, error) {
	if err := o.validate("combobox"); err != nil {
		return nil, err
	}

	b := newBase("combobox", o, true)
	c := &Combobox{base: b, sel: selection.NewSingle(b.st, b.bus, true, b.fopts)}

	b.setItems = c.sel.SetItems
	b.selected = func(e entry.Entry) bool {
		v := c.sel.Value()
		return v != nil && e.Is(v.Value)
	}
	b.activate = func(e entry.Entry) {
		if c.sel.Select(e) {
			b.ctrl.Close()
		}
	}

	b.wire(o)

	if o.Value != nil {
		c.sel.SetValue(o.Value)
	}

	// The root echoes the live filter text, falling back to the
	// selection summary when the filter is empty.
	refreshRoot := func(any) {
		if t := c.FilterText(); t != "" {
			b.root.SetContent(t)
			return
		}
		b.root.SetContent(c.SummaryText())
	}
	b.unsubs = append(b.unsubs,
		b.st.Subscribe(selection.KeyFilterText, refreshRoot, store.EmitImmediately()),
		b.st.Subscribe(selection.KeySelectedItem, refreshRoot),
	)

	return c, nil
}

// Value returns the selected entry, nil when nothing is selected.
func (c *Combobox) Value() *entry.Entry {
	return c.sel.Value()
}

// SetValue selects the entry whose value equals raw. Unknown and
// disabled values are ignored.
func (c *Combobox) SetValue(raw any) {
	c.sel.SetValue(raw)
}

// OnChange fires with the newly selected entry.
func (c *Combobox) OnChange(fn func(entry.Entry)) func() {
	return events.On(c.bus, EventChange, fn)
}

// SummaryText is the selected entry's text, or the placeholder.
func (c *Combobox) SummaryText() string {
	if v := c.sel.Value(); v != nil {
		return v.Text
	}
	return c.placeholder
}
