package widget

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/selectkit/datasource"
	"github.com/grovetools/selectkit/pkg/entry"
)

func newMultiselect(t *testing.T, o Options) *Multiselect {
	t.Helper()
	if o.Root == nil {
		o.Root = NewNode()
	}
	if o.DebounceDelay == 0 {
		o.DebounceDelay = -1
	}
	m, err := NewMultiselect(o)
	require.NoError(t, err)
	t.Cleanup(m.Teardown)
	return m
}

func selectedValues(m *Multiselect) []any {
	return entry.Values(m.Values())
}

func TestMultiselectToggleKeepsOpen(t *testing.T) {
	m := newMultiselect(t, Options{Items: cityItems()})

	m.Open()
	m.ClickItem(0)
	assert.True(t, m.Opened(), "multi-select stays open across toggles")
	m.ClickItem(3)
	assert.True(t, m.Opened())

	assert.Equal(t, []any{1, 4}, selectedValues(m))

	// Toggling off preserves the order of the rest.
	m.ClickItem(0)
	assert.Equal(t, []any{4}, selectedValues(m))
}

func TestMultiselectSelectionOrder(t *testing.T) {
	m := newMultiselect(t, Options{Items: cityItems()})

	m.ToggleValue(4)
	m.ToggleValue(1)
	m.ToggleValue(3)
	assert.Equal(t, []any{4, 1, 3}, selectedValues(m), "selection order, not source order")
}

func TestMultiselectMaxSelected(t *testing.T) {
	m := newMultiselect(t, Options{Items: cityItems(), MaxSelectedItems: 2})

	assert.True(t, m.ToggleValue(1))
	assert.True(t, m.ToggleValue(3))
	assert.False(t, m.ToggleValue(4), "ceiling refuses further adds")
	assert.Equal(t, []any{1, 3}, selectedValues(m))

	// Removal is always allowed at the ceiling.
	assert.True(t, m.ToggleValue(1))
	assert.Equal(t, []any{3}, selectedValues(m))

	// The programmatic path ignores the ceiling.
	m.SetValues([]any{1, 3, 4})
	assert.Equal(t, []any{1, 3, 4}, selectedValues(m))
}

func TestMultiselectSetValues(t *testing.T) {
	m := newMultiselect(t, Options{Items: cityItems(), Values: []any{3, 1}})
	assert.Equal(t, []any{3, 1}, selectedValues(m))

	m.SetValues([]any{4, 2, 99, 4}) // disabled, unknown and duplicate values drop out
	assert.Equal(t, []any{4}, selectedValues(m))

	m.SetValues(nil)
	assert.Empty(t, m.Values())
}

func TestMultiselectSelectAll(t *testing.T) {
	m := newMultiselect(t, Options{Items: cityItems()})

	m.SetValues([]any{entry.SelectAllValue})
	assert.Equal(t, []any{1, 3, 4}, selectedValues(m), "disabled entries stay out")
	assert.True(t, m.AllSelected())

	m.ToggleSelectAll()
	assert.Empty(t, m.Values())
	assert.False(t, m.AllSelected())

	m.ToggleSelectAll()
	assert.True(t, m.AllSelected())

	// Removing one entry drops the derived flag.
	m.ToggleValue(3)
	assert.False(t, m.AllSelected())
}

func TestMultiselectBackspaceRemovesLast(t *testing.T) {
	m := newMultiselect(t, Options{Items: cityItems()})
	m.Open()
	m.SetValues([]any{1, 4})

	m.HandleKey(KeyBackspace)
	assert.Equal(t, []any{1}, selectedValues(m))

	// With filter text present the gesture is inert.
	m.Filter("mo")
	m.HandleKey(KeyBackspace)
	assert.Equal(t, []any{1}, selectedValues(m))

	m.Filter("")
	m.HandleKey(KeyBackspace)
	assert.Empty(t, m.Values())
	m.HandleKey(KeyBackspace) // empty selection, no-op
	assert.Empty(t, m.Values())
}

func TestMultiselectItemsReplacedPrunesSelection(t *testing.T) {
	src := datasource.NewFactory(rotatingLoader(
		cityItems(),
		[]entry.Entry{entry.New(1, "Moscow"), entry.New(5, "Perm")},
	))
	m := newMultiselect(t, Options{Source: src})
	require.NoError(t, m.Load(context.Background()))

	m.SetValues([]any{3, 1})
	require.NoError(t, m.Reload(context.Background()))

	assert.Equal(t, []any{1}, selectedValues(m), "values absent from the new set drop, order kept")
	assert.Len(t, m.Items(), 2)
	assert.False(t, m.AllSelected())
}

func TestMultiselectSummary(t *testing.T) {
	m := newMultiselect(t, Options{Items: cityItems(), Placeholder: "none"})
	assert.Equal(t, "none", m.SummaryText())

	m.SetValues([]any{3, 1})
	assert.Equal(t, "Murmansk, Moscow", m.SummaryText())

	m2 := newMultiselect(t, Options{Items: []entry.Entry{
		entry.New(1, "a"), entry.New(2, "b"), entry.New(3, "c"), entry.New(4, "d"),
	}})
	m2.SetValues([]any{1, 2, 3, 4})
	assert.Equal(t, "4 selected", m2.SummaryText())
}

func TestMultiselectChangeEvents(t *testing.T) {
	m := newMultiselect(t, Options{Items: cityItems()})

	var changes [][]any
	m.OnChange(func(sel []entry.Entry) { changes = append(changes, entry.Values(sel)) })

	m.ToggleValue(1)
	m.ToggleValue(3)
	m.ToggleValue(1)

	require.Len(t, changes, 3)
	assert.Equal(t, []any{1}, changes[0])
	assert.Equal(t, []any{1, 3}, changes[1])
	assert.Equal(t, []any{3}, changes[2])
}
