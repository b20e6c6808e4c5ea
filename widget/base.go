package widget

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/grovetools/selectkit/datasource"
	"github.com/grovetools/selectkit/errors"
	"github.com/grovetools/selectkit/events"
	"github.com/grovetools/selectkit/filter"
	"github.com/grovetools/selectkit/keynav"
	"github.com/grovetools/selectkit/lifecycle"
	"github.com/grovetools/selectkit/logging"
	"github.com/grovetools/selectkit/overlay"
	"github.com/grovetools/selectkit/pkg/entry"
	"github.com/grovetools/selectkit/position"
	"github.com/grovetools/selectkit/selection"
	"github.com/grovetools/selectkit/store"
)

// base carries the machinery shared by the three widgets: surfaces,
// store, bus, lifecycle controller, filter plumbing, and data source
// wiring. The concrete widgets supply the selection behavior through
// the activate/selected/setItems callbacks.
type base struct {
	name string
	log  *logrus.Entry

	st  *store.Store
	bus *events.Bus

	root    Surface
	wrapper Surface
	popover Surface

	filterable bool
	fopts      filter.Options
	deb        *filter.Debouncer

	source *datasource.Source
	ctrl   *lifecycle.Controller

	overlays  *overlay.Registry[Surface]
	overlayID string
	host      Surface

	renderer    ItemRenderer
	placeholder string

	// Set by the concrete widget before wiring completes.
	activate    func(e entry.Entry)
	selected    func(e entry.Entry) bool
	setItems    func(items []entry.Entry)
	onBackspace func()

	unsubs []func()
	torn   bool
}

func newBase(name string, o Options, filterable bool) *base {
	b := &base{
		name:        name,
		log:         logging.NewLogger(name),
		bus:         events.NewBus(),
		root:        o.Root,
		wrapper:     o.Wrapper,
		popover:     o.Popover,
		filterable:  filterable,
		fopts:       o.filterOptions(filterable),
		source:      o.Source,
		renderer:    o.Renderer,
		placeholder: o.Placeholder,
	}
	if b.wrapper == nil {
		b.wrapper = NewNode()
	}
	if b.popover == nil {
		b.popover = NewNode()
	}
	if b.renderer == nil {
		b.renderer = DefaultRenderer
	}
	if delay := o.debounceDelay(); delay > 0 {
		b.deb = filter.NewDebouncer(delay)
	}

	b.st = store.New(map[string]any{
		selection.KeyDataItems:     []entry.Entry{},
		selection.KeyFilteredItems: []entry.Entry{},
		selection.KeyFocusedIndex:  -1,
		selection.KeyFilterText:    "",
		lifecycle.KeyOpened:        false,
		lifecycle.KeyDisabled:      o.Disabled,
	})

	if o.Overlays != nil {
		b.overlays = o.Overlays
		b.overlayID = o.OverlayID
		if b.overlayID == "" {
			b.overlayID = overlay.DefaultHostID
		}
		b.host = b.overlays.Acquire(b.overlayID, func() Surface {
			return NewNode()
		})
	}

	b.ctrl = lifecycle.New(lifecycle.Config{
		Store:      b.st,
		Bus:        b.bus,
		Positioner: o.Positioner,
		Anchor:     b.root.Bounds,
		Floating:   b.popover.Bounds,
		Place: func(p position.Placement) {
			r := b.popover.Bounds()
			r.X, r.Y = p.X, p.Y
			b.popover.SetBounds(r)
		},
		Reveal: func(visible bool) {
			b.popover.SetVisible(visible)
			if b.host != nil {
				b.host.SetVisible(visible)
			}
			if visible {
				b.root.AddClass(ClassActive)
			} else {
				b.root.RemoveClass(ClassActive)
			}
		},
		Options: o.Placement,
		Hooks: lifecycle.Hooks{
			Mount:   b.renderPopover,
			Unmount: func() { b.popover.SetContent("") },
		},
	})

	return b
}

// wire finishes construction once the concrete widget installed its
// callbacks: initial data, store subscriptions, source plumbing.
func (b *base) wire(o Options) {
	b.unsubs = append(b.unsubs,
		b.st.Subscribe(selection.KeyFilteredItems, b.rerender),
		b.st.Subscribe(selection.KeyFocusedIndex, b.rerender),
		b.st.Subscribe(selection.KeySelectedItem, b.rerender),
		b.st.Subscribe(selection.KeySelectedItems, b.rerender),
	)

	if o.Items != nil {
		b.setItems(entry.Clone(o.Items))
	}
	if b.source != nil {
		b.attachSource()
		if b.source.Resolved() {
			b.setItems(b.source.Data())
		}
	}
}

// attachSource registers exactly three source subscriptions: loading
// toggles the root class on, load and error toggle it off.
func (b *base) attachSource() {
	b.unsubs = append(b.unsubs,
		b.source.OnLoading(func() {
			b.root.AddClass(ClassLoading)
		}),
		b.source.OnLoad(func(items []entry.Entry) {
			b.root.RemoveClass(ClassLoading)
			b.setItems(items)
		}),
		b.source.OnError(func(err error) {
			b.root.RemoveClass(ClassLoading)
			b.log.WithError(err).Warn("data source fetch failed")
		}),
	)
}

// Load fetches from the attached source, honoring its cache. It is a
// no-op for widgets built from static items.
func (b *base) Load(ctx context.Context) error {
	if b.source == nil {
		return nil
	}
	if _, err := b.source.Fetch(ctx, false); err != nil {
		return errors.DataFetch(err)
	}
	return nil
}

// Reload forces a fresh fetch, bypassing the cache.
func (b *base) Reload(ctx context.Context) error {
	if b.source == nil {
		return nil
	}
	if _, err := b.source.Fetch(ctx, true); err != nil {
		return errors.DataFetch(err)
	}
	return nil
}

func (b *base) Open()        { b.ctrl.Open() }
func (b *base) Close()       { b.ctrl.Close() }
func (b *base) Toggle()      { b.ctrl.Toggle() }
func (b *base) Opened() bool { return b.ctrl.Opened() }

func (b *base) Disable()       { b.ctrl.Disable() }
func (b *base) Enable()        { b.ctrl.Enable() }
func (b *base) Disabled() bool { return b.ctrl.Disabled() }

// Items returns the full data collection.
func (b *base) Items() []entry.Entry {
	v, _ := b.st.Get(selection.KeyDataItems).([]entry.Entry)
	return v
}

// VisibleItems returns the filtered collection the popover displays.
func (b *base) VisibleItems() []entry.Entry {
	v, _ := b.st.Get(selection.KeyFilteredItems).([]entry.Entry)
	return v
}

// FocusedIndex returns the keyboard focus position within the visible
// collection, -1 when nothing has focus.
func (b *base) FocusedIndex() int {
	return b.st.Int(selection.KeyFocusedIndex, -1)
}

// IsSelected reports whether e is part of the current selection.
func (b *base) IsSelected(e entry.Entry) bool {
	return b.selected(e)
}

// FilterText returns the current filter text.
func (b *base) FilterText() string {
	return b.st.String(selection.KeyFilterText)
}

// Filter applies text immediately, bypassing the debouncer. This is
// the programmatic path.
func (b *base) Filter(text string) {
	if !b.filterable {
		return
	}
	if b.deb != nil {
		b.deb.Cancel()
	}
	b.st.Set(selection.KeyFilterText, text)
	b.applyFilter()
}

// InputFilterText is the live-typing path: the text lands in state
// right away, but the collection refresh waits out the debounce
// window so only the last keystroke in a burst triggers matching.
func (b *base) InputFilterText(text string) {
	if !b.filterable {
		return
	}
	b.st.Set(selection.KeyFilterText, text)
	if b.deb == nil {
		b.applyFilter()
		return
	}
	b.deb.Call(b.applyFilter)
}

func (b *base) applyFilter() {
	text := b.st.String(selection.KeyFilterText)
	b.st.Set(selection.KeyFilteredItems, b.fopts.Apply(b.Items(), text))
	b.st.Set(selection.KeyFocusedIndex, -1)
	b.bus.Publish(EventFiltering, text)
}

// HandleKey routes an abstract key action. A disabled widget ignores
// everything. While closed, any activation or arrow key opens the
// popover without moving focus.
func (b *base) HandleKey(k Key) {
	if b.ctrl.Disabled() {
		return
	}
	if k == KeyEscape {
		b.ctrl.HandleEscape()
		return
	}

	if !b.ctrl.Opened() {
		switch k {
		case KeyUp, KeyDown, KeyEnter, KeySpace:
			b.ctrl.Open()
		case KeyBackspace:
			b.backspace()
		}
		return
	}

	items := b.VisibleItems()
	switch k {
	case KeyUp:
		b.moveFocus(keynav.Up, items)
	case KeyDown:
		b.moveFocus(keynav.Down, items)
	case KeyHome:
		if idx := keynav.FirstEnabled(items); idx != -1 {
			b.st.Set(selection.KeyFocusedIndex, idx)
		}
	case KeyEnd:
		if idx := keynav.LastEnabled(items); idx != -1 {
			b.st.Set(selection.KeyFocusedIndex, idx)
		}
	case KeyEnter, KeySpace:
		idx := b.FocusedIndex()
		if idx >= 0 && idx < len(items) {
			b.activate(items[idx])
		}
	case KeyBackspace:
		b.backspace()
	}
}

func (b *base) backspace() {
	if b.filterable && b.FilterText() != "" {
		// Text editing belongs to the host input; the widget gesture
		// only fires on an empty filter.
		return
	}
	if b.onBackspace != nil {
		b.onBackspace()
	}
}

func (b *base) moveFocus(dir keynav.Direction, items []entry.Entry) {
	current := b.FocusedIndex()
	next := keynav.NextEnabled(current, dir, items)
	if next != current {
		b.st.Set(selection.KeyFocusedIndex, next)
	}
}

// ClickItem activates the visible item at index, as a pointer click
// would. Out-of-range and disabled items are ignored.
func (b *base) ClickItem(index int) {
	if b.ctrl.Disabled() || !b.ctrl.Opened() {
		return
	}
	items := b.VisibleItems()
	if index < 0 || index >= len(items) || items[index].Disabled {
		return
	}
	b.st.Set(selection.KeyFocusedIndex, index)
	b.activate(items[index])
}

// HandleOutsideClick closes the popover for a click that landed
// outside both the control and the popover.
func (b *base) HandleOutsideClick() {
	b.ctrl.HandleClick(false, false)
}

// HandleClickAt resolves screen coordinates against the control and
// popover bounds before deciding whether to close.
func (b *base) HandleClickAt(x, y int) {
	inControl := b.root.Bounds().Contains(x, y)
	inPopover := b.popover.Visible() && b.popover.Bounds().Contains(x, y)
	b.ctrl.HandleClick(inControl, inPopover)
}

func (b *base) OnOpen(fn func()) func() {
	return b.bus.Subscribe(EventOpen, func(any) { fn() })
}

func (b *base) OnClose(fn func()) func() {
	return b.bus.Subscribe(EventClose, func(any) { fn() })
}

// OnFiltering fires after every visible-collection refresh with the
// filter text that produced it.
func (b *base) OnFiltering(fn func(text string)) func() {
	return events.On(b.bus, EventFiltering, fn)
}

// Teardown closes the popover, cancels pending filter work, detaches
// every subscription, and releases the shared overlay host. The
// widget must not be used afterwards.
func (b *base) Teardown() {
	if b.torn {
		return
	}
	b.torn = true

	b.ctrl.Close()
	if b.deb != nil {
		b.deb.Cancel()
	}
	for _, u := range b.unsubs {
		u()
	}
	b.unsubs = nil
	if b.overlays != nil {
		b.overlays.Release(b.overlayID)
	}
}

func (b *base) rerender(any) {
	if b.ctrl.Opened() {
		b.renderPopover()
	}
}

func (b *base) renderPopover() {
	b.popover.SetContent(b.renderer(b.VisibleItems(), b.FocusedIndex(), b.selected))
}
