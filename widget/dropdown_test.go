package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/selectkit/errors"
	"github.com/grovetools/selectkit/pkg/entry"
	"github.com/grovetools/selectkit/testutil"
)

func cityItems() []entry.Entry {
	return testutil.Cities()
}

func newDropdown(t *testing.T, o Options) *Dropdown {
	t.Helper()
	if o.Root == nil {
		o.Root = NewNode()
	}
	d, err := NewDropdown(o)
	require.NoError(t, err)
	t.Cleanup(d.Teardown)
	return d
}

func TestNewDropdownValidation(t *testing.T) {
	_, err := NewDropdown(Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeMissingRoot))

	_, err = NewDropdown(Options{
		Root:   NewNode(),
		Items:  cityItems(),
		Source: staticSource(cityItems()),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeDataConflict))
}

func TestDropdownOpenClose(t *testing.T) {
	root := NewNode()
	d := newDropdown(t, Options{Root: root, Items: cityItems()})

	assert.False(t, d.Opened())

	d.Open()
	assert.True(t, d.Opened())
	assert.True(t, d.popover.Visible())
	assert.True(t, root.HasClass(ClassActive))
	assert.NotEmpty(t, d.popover.Content())

	d.Close()
	assert.False(t, d.Opened())
	assert.False(t, d.popover.Visible())
	assert.False(t, root.HasClass(ClassActive))
	assert.Empty(t, d.popover.Content())
}

func TestDropdownArrowOpensWithoutMovingFocus(t *testing.T) {
	d := newDropdown(t, Options{Items: cityItems()})

	d.HandleKey(KeyDown)
	assert.True(t, d.Opened())
	assert.Equal(t, -1, d.FocusedIndex())

	// The next press actually navigates.
	d.HandleKey(KeyDown)
	assert.Equal(t, 0, d.FocusedIndex())
}

func TestDropdownNavigationSkipsDisabledAndClamps(t *testing.T) {
	d := newDropdown(t, Options{Items: cityItems()})
	d.Open()

	d.HandleKey(KeyDown)
	assert.Equal(t, 0, d.FocusedIndex())
	d.HandleKey(KeyDown) // Samara is disabled
	assert.Equal(t, 2, d.FocusedIndex())
	d.HandleKey(KeyDown)
	assert.Equal(t, 3, d.FocusedIndex())
	d.HandleKey(KeyDown) // end of list, no wrap
	assert.Equal(t, 3, d.FocusedIndex())

	d.HandleKey(KeyHome)
	assert.Equal(t, 0, d.FocusedIndex())
	d.HandleKey(KeyUp) // start of list, no wrap
	assert.Equal(t, 0, d.FocusedIndex())
	d.HandleKey(KeyEnd)
	assert.Equal(t, 3, d.FocusedIndex())
}

func TestDropdownEnterSelectsAndCloses(t *testing.T) {
	root := NewNode()
	d := newDropdown(t, Options{Root: root, Items: cityItems(), Placeholder: "pick a city"})
	assert.Equal(t, "pick a city", root.Content())

	var changed []entry.Entry
	d.OnChange(func(e entry.Entry) { changed = append(changed, e) })

	d.Open()
	d.HandleKey(KeyDown)
	d.HandleKey(KeyEnter)

	require.NotNil(t, d.Value())
	assert.Equal(t, "Moscow", d.Value().Text)
	assert.False(t, d.Opened())
	assert.Equal(t, "Moscow", d.SummaryText())
	assert.Equal(t, "Moscow", root.Content())
	require.Len(t, changed, 1)
	assert.Equal(t, 1, changed[0].Value)
}

func TestDropdownClickItem(t *testing.T) {
	d := newDropdown(t, Options{Items: cityItems()})

	// Clicks are ignored while closed.
	d.ClickItem(0)
	assert.Nil(t, d.Value())

	d.Open()
	d.ClickItem(1) // disabled
	assert.Nil(t, d.Value())
	assert.True(t, d.Opened())

	d.ClickItem(2)
	require.NotNil(t, d.Value())
	assert.Equal(t, "Murmansk", d.Value().Text)
	assert.False(t, d.Opened())
}

func TestDropdownSetValue(t *testing.T) {
	d := newDropdown(t, Options{Items: cityItems()})

	d.SetValue(99) // unknown
	assert.Nil(t, d.Value())

	d.SetValue(2) // disabled
	assert.Nil(t, d.Value())

	d.SetValue(4)
	require.NotNil(t, d.Value())
	assert.Equal(t, "Kazan", d.Value().Text)
}

func TestDropdownInitialValue(t *testing.T) {
	d := newDropdown(t, Options{Items: cityItems(), Value: 3})
	require.NotNil(t, d.Value())
	assert.Equal(t, "Murmansk", d.Value().Text)
}

func TestDropdownDisable(t *testing.T) {
	d := newDropdown(t, Options{Items: cityItems()})

	d.Open()
	d.Disable()
	assert.False(t, d.Opened())
	assert.True(t, d.Disabled())

	d.Open()
	assert.False(t, d.Opened())
	d.HandleKey(KeyDown)
	assert.False(t, d.Opened())

	d.Enable()
	d.Open()
	assert.True(t, d.Opened())
}

func TestDropdownConstructedDisabled(t *testing.T) {
	d := newDropdown(t, Options{Items: cityItems(), Disabled: true})
	d.Open()
	assert.False(t, d.Opened())
}

func TestDropdownEscapeAndOutsideClick(t *testing.T) {
	d := newDropdown(t, Options{Items: cityItems()})

	d.Open()
	d.HandleKey(KeyEscape)
	assert.False(t, d.Opened())

	d.Open()
	d.HandleOutsideClick()
	assert.False(t, d.Opened())
}

func TestDropdownOpenCloseEvents(t *testing.T) {
	d := newDropdown(t, Options{Items: cityItems()})

	opens, closes := 0, 0
	offOpen := d.OnOpen(func() { opens++ })
	d.OnClose(func() { closes++ })

	d.Toggle()
	d.Toggle()
	assert.Equal(t, 1, opens)
	assert.Equal(t, 1, closes)

	offOpen()
	d.Toggle()
	assert.Equal(t, 1, opens)
}
