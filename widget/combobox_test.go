package widget

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/selectkit/filter"
)

func newCombobox(t *testing.T, o Options) *Combobox {
	t.Helper()
	if o.Root == nil {
		o.Root = NewNode()
	}
	if o.DebounceDelay == 0 {
		o.DebounceDelay = -1 // keep filtering synchronous unless a test opts in
	}
	c, err := NewCombobox(o)
	require.NoError(t, err)
	t.Cleanup(c.Teardown)
	return c
}

func texts(c *Combobox) []string {
	items := c.VisibleItems()
	out := make([]string, len(items))
	for i, e := range items {
		out[i] = e.Text
	}
	return out
}

func TestComboboxFilterNarrows(t *testing.T) {
	c := newCombobox(t, Options{Items: cityItems()})

	c.Filter("m")
	assert.Equal(t, []string{"Moscow", "Samara", "Murmansk"}, texts(c))

	c.Filter("mur")
	assert.Equal(t, []string{"Murmansk"}, texts(c))

	c.Filter("")
	assert.Len(t, c.VisibleItems(), 4)
}

func TestComboboxStartsWithStrategy(t *testing.T) {
	c := newCombobox(t, Options{Items: cityItems(), FilterStrategy: filter.StrategyStartsWith})

	c.Filter("m")
	assert.Equal(t, []string{"Moscow", "Murmansk"}, texts(c))
}

func TestComboboxFuzzyStrategy(t *testing.T) {
	c := newCombobox(t, Options{Items: cityItems(), FilterStrategy: filter.StrategyFuzzy})

	c.Filter("msk")
	assert.Equal(t, []string{"Murmansk"}, texts(c))
}

func TestComboboxMinFilterLength(t *testing.T) {
	c := newCombobox(t, Options{Items: cityItems(), MinFilterLength: 3})

	c.Filter("mu")
	assert.Len(t, c.VisibleItems(), 4, "below the threshold the filter stays inactive")

	c.Filter("mur")
	assert.Equal(t, []string{"Murmansk"}, texts(c))
}

func TestComboboxFilterResetsFocus(t *testing.T) {
	c := newCombobox(t, Options{Items: cityItems()})
	c.Open()
	c.HandleKey(KeyDown)
	require.Equal(t, 0, c.FocusedIndex())

	c.Filter("k")
	assert.Equal(t, -1, c.FocusedIndex())
}

func TestComboboxDebounce(t *testing.T) {
	c := newCombobox(t, Options{Items: cityItems(), DebounceDelay: 20 * time.Millisecond})

	var applied atomic.Int32
	c.OnFiltering(func(string) { applied.Add(1) })

	c.InputFilterText("m")
	c.InputFilterText("mu")
	c.InputFilterText("mur")

	// Text is visible immediately, matching waits out the window.
	assert.Equal(t, "mur", c.FilterText())
	assert.Len(t, c.VisibleItems(), 4)
	assert.Equal(t, int32(0), applied.Load())

	require.Eventually(t, func() bool { return applied.Load() == 1 },
		500*time.Millisecond, 5*time.Millisecond)
	assert.Equal(t, []string{"Murmansk"}, texts(c))
}

func TestComboboxSelectionClearsFilter(t *testing.T) {
	root := NewNode()
	c := newCombobox(t, Options{Root: root, Items: cityItems()})

	c.Open()
	c.Filter("mur")
	require.Equal(t, []string{"Murmansk"}, texts(c))

	c.ClickItem(0)

	require.NotNil(t, c.Value())
	assert.Equal(t, "Murmansk", c.Value().Text)
	assert.Empty(t, c.FilterText())
	assert.Len(t, c.VisibleItems(), 4, "full collection restored after selection")
	assert.False(t, c.Opened())
	assert.Equal(t, "Murmansk", root.Content())
}

func TestComboboxRootEchoesFilterText(t *testing.T) {
	root := NewNode()
	c := newCombobox(t, Options{Root: root, Items: cityItems(), Placeholder: "search"})

	assert.Equal(t, "search", root.Content())
	c.Filter("ka")
	assert.Equal(t, "ka", root.Content())
	c.Filter("")
	assert.Equal(t, "search", root.Content())
}

func TestComboboxBackspaceWithTextIsInert(t *testing.T) {
	c := newCombobox(t, Options{Items: cityItems()})
	c.Open()
	c.Filter("mur")

	// Backspace edits the host input; the widget must not treat it as
	// a gesture while filter text is present.
	c.HandleKey(KeyBackspace)
	assert.True(t, c.Opened())
	assert.Equal(t, "mur", c.FilterText())
}
