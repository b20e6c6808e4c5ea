package widget

import (
	"time"

	"github.com/grovetools/selectkit/datasource"
	"github.com/grovetools/selectkit/errors"
	"github.com/grovetools/selectkit/filter"
	"github.com/grovetools/selectkit/overlay"
	"github.com/grovetools/selectkit/pkg/entry"
	"github.com/grovetools/selectkit/position"
)

// Options configures any of the three widget constructors. Root is the
// only required field. Items and Source are mutually exclusive.
type Options struct {
	// Root is the input surface the widget anchors to. Required.
	Root Surface
	// Wrapper hosts the root and receives state classes. Defaults to a
	// fresh in-memory node.
	Wrapper Surface
	// Popover displays the selectable list. Defaults to a fresh
	// in-memory node.
	Popover Surface

	// Items is a static entry collection. Mutually exclusive with
	// Source.
	Items []entry.Entry
	// Source supplies entries asynchronously. Mutually exclusive with
	// Items.
	Source *datasource.Source

	// Value preselects a single-select widget; Values preselects a
	// multiselect. Unknown and disabled values are dropped silently.
	Value  any
	Values []any

	// Placeholder is shown as the summary while nothing is selected.
	Placeholder string

	// Disabled constructs the widget in the disabled state.
	Disabled bool

	// FilterStrategy applies to filterable widgets only; empty means
	// contains matching.
	FilterStrategy filter.Strategy
	// MinFilterLength is the text length below which filtering stays
	// inactive.
	MinFilterLength int
	// DebounceDelay throttles live filter input. Zero means the
	// default 150ms; negative disables debouncing.
	DebounceDelay time.Duration

	// MaxSelectedItems caps interactive multi-select toggling. Zero
	// means no ceiling.
	MaxSelectedItems int

	// Positioner computes popover placement. Defaults to the static
	// flip-and-shift positioner.
	Positioner position.Positioner
	// Placement holds preferred side, offset, and viewport.
	Placement position.Options

	// Overlays shares one popover host among sibling widgets. The host
	// is created lazily and refcounted; Teardown releases it.
	Overlays *overlay.Registry[Surface]
	// OverlayID names the shared host. Defaults to
	// overlay.DefaultHostID.
	OverlayID string

	// Renderer formats the visible items into popover content.
	// Defaults to DefaultRenderer.
	Renderer ItemRenderer
}

// validate enforces the construction contract shared by all widgets.
func (o Options) validate(widget string) error {
	if o.Root == nil {
		return errors.MissingRoot(widget)
	}
	if o.Items != nil && o.Source != nil {
		return errors.DataConflict(widget)
	}
	return nil
}

func (o Options) filterOptions(filterable bool) filter.Options {
	strategy := o.FilterStrategy
	if strategy == "" {
		if filterable {
			strategy = filter.StrategyContains
		} else {
			strategy = filter.StrategyNone
		}
	}
	return filter.Options{Strategy: strategy, MinLength: o.MinFilterLength}
}

func (o Options) debounceDelay() time.Duration {
	switch {
	case o.DebounceDelay < 0:
		return 0
	case o.DebounceDelay == 0:
		return filter.DefaultDebounce
	default:
		return o.DebounceDelay
	}
}
