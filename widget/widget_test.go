package widget

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/selectkit/datasource"
	"github.com/grovetools/selectkit/errors"
	"github.com/grovetools/selectkit/overlay"
	"github.com/grovetools/selectkit/pkg/entry"
)

func staticSource(items []entry.Entry) *datasource.Source {
	return datasource.NewStatic(items)
}

// rotatingLoader yields the given collections in sequence, repeating
// the last one once exhausted.
func rotatingLoader(sets ...[]entry.Entry) datasource.Loader {
	var (
		mu sync.Mutex
		i  int
	)
	return func(context.Context) ([]entry.Entry, error) {
		mu.Lock()
		defer mu.Unlock()
		set := sets[i]
		if i < len(sets)-1 {
			i++
		}
		return entry.Clone(set), nil
	}
}

func TestWidgetStaticSourceResolvedAtConstruction(t *testing.T) {
	d := newDropdown(t, Options{Source: staticSource(cityItems())})

	assert.Len(t, d.Items(), 4, "static sources feed the widget synchronously")
	assert.False(t, d.root.HasClass(ClassLoading))
}

func TestWidgetSourceLoadingClass(t *testing.T) {
	gate := make(chan struct{})
	started := make(chan struct{})
	src := datasource.NewFuture(func(context.Context) ([]entry.Entry, error) {
		close(started)
		<-gate
		return cityItems(), nil
	})

	root := NewNode()
	d := newDropdown(t, Options{Root: root, Source: src})
	assert.Empty(t, d.Items())

	done := make(chan error, 1)
	go func() { done <- d.Load(context.Background()) }()

	<-started
	assert.True(t, root.HasClass(ClassLoading))

	close(gate)
	require.NoError(t, <-done)
	assert.False(t, root.HasClass(ClassLoading))
	assert.Len(t, d.Items(), 4)
}

func TestWidgetSourceError(t *testing.T) {
	src := datasource.NewFactory(func(context.Context) ([]entry.Entry, error) {
		return nil, fmt.Errorf("backend unavailable")
	})

	root := NewNode()
	d := newDropdown(t, Options{Root: root, Source: src})

	err := d.Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeDataFetch))
	assert.False(t, root.HasClass(ClassLoading))
	assert.Empty(t, d.Items())
}

func TestWidgetReloadReplacesItems(t *testing.T) {
	src := datasource.NewFactory(rotatingLoader(
		cityItems(),
		[]entry.Entry{entry.New(5, "Perm")},
	))
	d := newDropdown(t, Options{Source: src})

	require.NoError(t, d.Load(context.Background()))
	assert.Len(t, d.Items(), 4)

	// A plain Load hits the cache.
	require.NoError(t, d.Load(context.Background()))
	assert.Len(t, d.Items(), 4)

	require.NoError(t, d.Reload(context.Background()))
	require.Len(t, d.Items(), 1)
	assert.Equal(t, "Perm", d.Items()[0].Text)
}

func TestWidgetSourceSharedAcrossWidgets(t *testing.T) {
	src := datasource.NewFactory(rotatingLoader(cityItems()))

	a := newDropdown(t, Options{Source: src})
	b := newMultiselect(t, Options{Source: src})

	require.NoError(t, a.Load(context.Background()))
	assert.Len(t, a.Items(), 4)
	assert.Len(t, b.Items(), 4, "every subscribed widget sees the load")

	// Tearing one widget down leaves the other's subscriptions intact.
	a.Teardown()
	require.NoError(t, b.Reload(context.Background()))
	assert.Len(t, b.Items(), 4)
}

func TestWidgetOverlayHostShared(t *testing.T) {
	reg := overlay.NewRegistry[Surface]()

	a := newDropdown(t, Options{Items: cityItems(), Overlays: reg})
	b := newDropdown(t, Options{Items: cityItems(), Overlays: reg})
	assert.Equal(t, 2, reg.Refs(overlay.DefaultHostID))

	a.Teardown()
	assert.Equal(t, 1, reg.Refs(overlay.DefaultHostID))

	// The surviving widget still opens against the shared host.
	b.Open()
	assert.True(t, b.Opened())

	b.Teardown()
	assert.Equal(t, 0, reg.Refs(overlay.DefaultHostID))
}

func TestWidgetTeardownIdempotent(t *testing.T) {
	reg := overlay.NewRegistry[Surface]()
	d := newDropdown(t, Options{Items: cityItems(), Overlays: reg})

	d.Teardown()
	d.Teardown()
	assert.Equal(t, 0, reg.Refs(overlay.DefaultHostID))
}

func TestWidgetTeardownStopsUpdates(t *testing.T) {
	src := datasource.NewFactory(rotatingLoader(
		cityItems(),
		[]entry.Entry{entry.New(5, "Perm")},
	))
	d := newDropdown(t, Options{Source: src})
	require.NoError(t, d.Load(context.Background()))
	require.Len(t, d.Items(), 4)

	d.Teardown()

	// A later fetch on the shared source must not reach the torn-down
	// widget.
	_, err := src.Fetch(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, d.Items(), 4)
}

func TestDefaultRenderer(t *testing.T) {
	out := DefaultRenderer(cityItems(), 2, func(e entry.Entry) bool { return e.Is(1) })
	assert.Contains(t, out, "> [ ] Murmansk")
	assert.Contains(t, out, "[x] Moscow")
	assert.Contains(t, out, "Samara (disabled)")

	assert.Equal(t, "(no results)", DefaultRenderer(nil, -1, func(entry.Entry) bool { return false }))
}
