// Package widget composes the selectkit engines (event bus, reactive
// store, data source, filter, selection, keyboard navigation,
// lifecycle) into the three selection-list behaviors: Dropdown for
// single-select, Combobox for filterable single-select, and
// Multiselect.
//
// Widgets are deliberately host-agnostic. They manipulate three opaque
// surfaces (root input, wrapper, popover) and receive input as
// abstract key and click actions; the tui package provides a
// bubbletea host, and any other host can implement Surface.
package widget

import (
	"github.com/grovetools/selectkit/lifecycle"
	"github.com/grovetools/selectkit/pkg/entry"
	"github.com/grovetools/selectkit/selection"
)

// Public event topics re-exported for subscribers. The internal bus is
// never handed out; widgets expose only their declared event surface
// through the On* methods.
const (
	EventOpen      = lifecycle.EventOpen
	EventClose     = lifecycle.EventClose
	EventChange    = selection.EventChange
	EventFiltering = "filtering"
)

// ClassLoading is toggled on the root surface while an attached data
// source resolves.
const ClassLoading = "selectkit-loading"

// ClassActive is toggled on the root surface while the popover is open.
const ClassActive = "selectkit-active"

// Widget is the behavior shared by all three orchestrators, sufficient
// for a host to drive any of them interchangeably.
type Widget interface {
	Open()
	Close()
	Toggle()
	Opened() bool

	Disable()
	Enable()
	Disabled() bool

	HandleKey(k Key)
	ClickItem(index int)
	HandleOutsideClick()

	Items() []entry.Entry
	VisibleItems() []entry.Entry
	FocusedIndex() int
	IsSelected(e entry.Entry) bool
	SummaryText() string

	OnOpen(fn func()) func()
	OnClose(fn func()) func()

	Teardown()
}

var (
	_ Widget = (*Dropdown)(nil)
	_ Widget = (*Combobox)(nil)
	_ Widget = (*Multiselect)(nil)
)
