package widget

import (
	"github.com/grovetools/selectkit/events"
	"github.com/grovetools/selectkit/pkg/entry"
	"github.com/grovetools/selectkit/selection"
	"github.com/grovetools/selectkit/store"
)

// Dropdown is the plain single-select widget: no filter input, the
// root surface shows the selected entry's text, and selecting any
// entry closes the popover.
type Dropdown struct {
	*base
	sel *selection.Single
}

// NewDropdown builds a dropdown from o. It fails fast with a
// construction fault when Root is missing or both Items and Source
// are given.
func NewDropdown(o Options) (*Dropdown, error) {
	if err := o.validate("dropdown"); err != nil {
		return nil, err
	}

	b := newBase("dropdown", o, false)
	d := &Dropdown{base: b, sel: selection.NewSingle(b.st, b.bus, false, b.fopts)}

	b.setItems = d.sel.SetItems
	b.selected = func(e entry.Entry) bool {
		v := d.sel.Value()
		return v != nil && e.Is(v.Value)
	}
	b.activate = func(e entry.Entry) {
		if d.sel.Select(e) {
			b.ctrl.Close()
		}
	}

	b.wire(o)

	if o.Value != nil {
		d.sel.SetValue(o.Value)
	}
	b.unsubs = append(b.unsubs, b.st.Subscribe(selection.KeySelectedItem, func(any) {
		b.root.SetContent(d.SummaryText())
	}, store.EmitImmediately()))

	return d, nil
}

// Value returns the selected entry, nil when nothing is selected.
func (d *Dropdown) Value() *entry.Entry {
	return d.sel.Value()
}

// SetValue selects the entry whose value equals raw. Unknown and
// disabled values are ignored.
func (d *Dropdown) SetValue(raw any) {
	d.sel.SetValue(raw)
}

// OnChange fires with the newly selected entry.
func (d *Dropdown) OnChange(fn func(entry.Entry)) func() {
	return events.On(d.bus, EventChange, fn)
}

// SummaryText is the selected entry's text, or the placeholder.
func (d *Dropdown) SummaryText() string {
	if v := d.sel.Value(); v != nil {
		return v.Text
	}
	return d.placeholder
}
