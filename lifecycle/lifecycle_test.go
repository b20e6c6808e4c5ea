package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/selectkit/events"
	"github.com/grovetools/selectkit/position"
	"github.com/grovetools/selectkit/store"
)

type harness struct {
	ctrl    *Controller
	bus     *events.Bus
	st      *store.Store
	log     []string
	visible bool
	placed  []position.Placement
}

func newHarness(t *testing.T, pos position.Positioner) *harness {
	t.Helper()
	h := &harness{
		st:  store.New(map[string]any{KeyOpened: false, KeyDisabled: false}),
		bus: events.NewBus(),
	}
	h.ctrl = New(Config{
		Store:      h.st,
		Bus:        h.bus,
		Positioner: pos,
		Anchor:     func() position.Rect { return position.Rect{Y: 2, Width: 20, Height: 1} },
		Floating:   func() position.Rect { return position.Rect{Width: 20, Height: 5} },
		Place:      func(p position.Placement) { h.placed = append(h.placed, p) },
		Reveal:     func(v bool) { h.visible = v },
		Hooks: Hooks{
			Mount:   func() { h.log = append(h.log, "mount") },
			Unmount: func() { h.log = append(h.log, "unmount") },
		},
	})
	h.bus.Subscribe(EventOpen, func(any) { h.log = append(h.log, "open") })
	h.bus.Subscribe(EventClose, func(any) { h.log = append(h.log, "close") })
	return h
}

func TestOpenCloseSequence(t *testing.T) {
	h := newHarness(t, nil)

	require.True(t, h.ctrl.Open())
	assert.True(t, h.ctrl.Opened())
	assert.True(t, h.visible)
	assert.Equal(t, []string{"mount", "open"}, h.log, "mount precedes the open event")
	assert.Len(t, h.placed, 1, "open requests one placement")

	require.True(t, h.ctrl.Close())
	assert.False(t, h.ctrl.Opened())
	assert.False(t, h.visible)
	assert.Equal(t, []string{"mount", "open", "unmount", "close"}, h.log)
}

func TestOpenWhileOpenedIsNoOp(t *testing.T) {
	h := newHarness(t, nil)
	h.ctrl.Open()
	assert.False(t, h.ctrl.Open())
	assert.Equal(t, []string{"mount", "open"}, h.log)
}

func TestOpenRefusedWhileDisabled(t *testing.T) {
	h := newHarness(t, nil)
	h.ctrl.Disable()

	assert.False(t, h.ctrl.Open())
	assert.False(t, h.ctrl.Opened())
	assert.Empty(t, h.log)
}

func TestDisableForcesClose(t *testing.T) {
	h := newHarness(t, nil)
	h.ctrl.Open()

	h.ctrl.Disable()

	assert.False(t, h.ctrl.Opened())
	assert.True(t, h.ctrl.Disabled())
	assert.Equal(t, []string{"mount", "open", "unmount", "close"}, h.log)

	h.ctrl.Enable()
	assert.True(t, h.ctrl.Open())
}

func TestToggle(t *testing.T) {
	h := newHarness(t, nil)
	h.ctrl.Toggle()
	assert.True(t, h.ctrl.Opened())
	h.ctrl.Toggle()
	assert.False(t, h.ctrl.Opened())
}

func TestEscapeCloses(t *testing.T) {
	h := newHarness(t, nil)
	h.ctrl.Open()
	h.ctrl.HandleEscape()
	assert.False(t, h.ctrl.Opened())
}

func TestClickContainment(t *testing.T) {
	h := newHarness(t, nil)

	h.ctrl.Open()
	h.ctrl.HandleClick(true, false) // inside control
	assert.True(t, h.ctrl.Opened())

	h.ctrl.HandleClick(false, true) // inside popover
	assert.True(t, h.ctrl.Opened())

	h.ctrl.HandleClick(false, false) // outside both
	assert.False(t, h.ctrl.Opened())
}

func TestAutoUpdateRepositionsWhileOpen(t *testing.T) {
	notifier := position.NewNotifier()
	h := newHarness(t, notifier)

	h.ctrl.Open()
	require.Len(t, h.placed, 1)

	notifier.Invalidate()
	assert.Len(t, h.placed, 2, "geometry change while open must reposition")

	h.ctrl.Close()
	notifier.Invalidate()
	assert.Len(t, h.placed, 2, "subscription must stop on close")
}
