package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/selectkit/events"
	"github.com/grovetools/selectkit/filter"
	"github.com/grovetools/selectkit/pkg/entry"
	"github.com/grovetools/selectkit/store"
)

func fruits() []entry.Entry {
	return []entry.Entry{
		entry.New(1, "Apple"),
		entry.New(2, "Orange"),
		entry.New(3, "Banana"),
	}
}

func newSingle(t *testing.T, items []entry.Entry, filterable bool) (*Single, *store.Store, *events.Bus) {
	t.Helper()
	st := store.New(map[string]any{
		KeyDataItems:     items,
		KeyFilteredItems: items,
		KeyFilterText:    "",
		KeyFocusedIndex:  -1,
		KeySelectedItem:  (*entry.Entry)(nil),
	})
	bus := events.NewBus()
	return NewSingle(st, bus, filterable, filter.Options{Strategy: filter.StrategyContains}), st, bus
}

func TestSetValueSelectsAndFiresChange(t *testing.T) {
	sel, _, bus := newSingle(t, fruits(), false)

	var changes []entry.Entry
	events.On(bus, EventChange, func(e entry.Entry) { changes = append(changes, e) })

	sel.SetValue(2)

	require.NotNil(t, sel.Value())
	assert.Equal(t, 2, sel.Value().Value)
	assert.Equal(t, "Orange", sel.Value().Text)
	require.Len(t, changes, 1)
	assert.Equal(t, "Orange", changes[0].Text)
}

func TestSetValueUnknownIsNoOp(t *testing.T) {
	sel, _, bus := newSingle(t, fruits(), false)

	fired := 0
	bus.Subscribe(EventChange, func(any) { fired++ })

	sel.SetValue(99)

	assert.Nil(t, sel.Value())
	assert.Zero(t, fired, "unknown value must not fire change")
}

func TestSelectDisabledIsNoOp(t *testing.T) {
	items := []entry.Entry{entry.New(1, "A"), entry.NewDisabled(2, "B")}
	sel, _, bus := newSingle(t, items, false)

	fired := 0
	bus.Subscribe(EventChange, func(any) { fired++ })

	sel.SetValue(2)
	assert.Nil(t, sel.Value())

	ok := sel.Select(items[1])
	assert.False(t, ok)
	assert.Zero(t, fired)
}

func TestSetItemsDropsStaleSelection(t *testing.T) {
	sel, _, _ := newSingle(t, fruits(), false)
	sel.SetValue(3)
	require.NotNil(t, sel.Value())

	// Banana survives the replacement.
	sel.SetItems([]entry.Entry{entry.New(3, "Banana"), entry.New(4, "Mango")})
	require.NotNil(t, sel.Value())
	assert.Equal(t, 3, sel.Value().Value)

	// Banana disappears: selection is dropped.
	sel.SetItems([]entry.Entry{entry.New(4, "Mango")})
	assert.Nil(t, sel.Value())
}

func TestFilterableSelectClearsFilter(t *testing.T) {
	sel, st, _ := newSingle(t, fruits(), true)
	st.Set(KeyFilterText, "ora")
	st.Set(KeyFilteredItems, []entry.Entry{entry.New(2, "Orange")})
	st.Set(KeyFocusedIndex, 0)

	sel.SetValue(2)

	assert.Equal(t, "", st.String(KeyFilterText))
	visible, _ := st.Get(KeyFilteredItems).([]entry.Entry)
	assert.Len(t, visible, 3, "selection must restore the unfiltered collection")
	assert.Equal(t, -1, st.Int(KeyFocusedIndex, 0))
}

func TestSetItemsResetsFocus(t *testing.T) {
	sel, st, _ := newSingle(t, fruits(), false)
	st.Set(KeyFocusedIndex, 1)

	sel.SetItems([]entry.Entry{entry.New(1, "Apple")})

	assert.Equal(t, -1, st.Int(KeyFocusedIndex, 0))
}
