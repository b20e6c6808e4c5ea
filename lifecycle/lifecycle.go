// Package lifecycle implements the open/closed state machine governing
// when a widget's popover content is materialized. Mount and unmount
// hooks exist so large entry collections are not resident in the
// render tree while the popover is hidden: background data changes
// update state only, and rendering waits for the next mount.
package lifecycle

import (
	"github.com/grovetools/selectkit/events"
	"github.com/grovetools/selectkit/position"
	"github.com/grovetools/selectkit/store"
)

// State store keys owned by the controller.
const (
	KeyOpened   = "opened"
	KeyDisabled = "disabled"
)

// Event topics published by the controller. Both carry nil payloads.
const (
	EventOpen  = "open"
	EventClose = "close"
)

// Hooks are invoked around the open/close transitions: Mount before
// the popover is revealed, Unmount before it is hidden.
type Hooks struct {
	Mount   func()
	Unmount func()
}

// Config wires a controller to its widget. The surface callbacks keep
// this package free of any concrete host dependency.
type Config struct {
	Store      *store.Store
	Bus        *events.Bus
	Positioner position.Positioner

	// Anchor and Floating report current geometry for placement.
	Anchor   func() position.Rect
	Floating func() position.Rect
	// Place applies a computed placement to the popover surface.
	Place func(position.Placement)
	// Reveal shows or hides the popover surface.
	Reveal func(visible bool)

	// Placement options passed through to the positioner.
	Options position.Options

	Hooks Hooks
}

// Controller drives the Closed ⇄ Opened transitions.
type Controller struct {
	cfg        Config
	stopUpdate func()
}

// New creates a controller. Store and Bus are required; everything
// else may be nil and is skipped.
func New(cfg Config) *Controller {
	if cfg.Positioner == nil {
		cfg.Positioner = position.Static{}
	}
	return &Controller{cfg: cfg}
}

// Opened reports the current lifecycle state.
func (c *Controller) Opened() bool {
	return c.cfg.Store.Bool(KeyOpened)
}

// Disabled reports the disabled flag.
func (c *Controller) Disabled() bool {
	return c.cfg.Store.Bool(KeyDisabled)
}

// Open transitions Closed → Opened: mount hook, reveal, reposition,
// auto-update subscription, then the open event. It is refused while
// disabled and a no-op while already opened.
func (c *Controller) Open() bool {
	if c.Disabled() || c.Opened() {
		return false
	}

	if c.cfg.Hooks.Mount != nil {
		c.cfg.Hooks.Mount()
	}
	if c.cfg.Reveal != nil {
		c.cfg.Reveal(true)
	}
	c.Reposition()

	if c.cfg.Anchor != nil && c.cfg.Floating != nil {
		c.stopUpdate = c.cfg.Positioner.AutoUpdate(c.cfg.Anchor, c.cfg.Floating, c.Reposition)
	}

	c.cfg.Store.Set(KeyOpened, true)
	c.cfg.Bus.Publish(EventOpen, nil)
	return true
}

// Close transitions Opened → Closed: unmount hook, stop repositioning,
// hide, then the close event. It is a no-op while closed.
func (c *Controller) Close() bool {
	if !c.Opened() {
		return false
	}

	if c.cfg.Hooks.Unmount != nil {
		c.cfg.Hooks.Unmount()
	}
	if c.stopUpdate != nil {
		c.stopUpdate()
		c.stopUpdate = nil
	}
	if c.cfg.Reveal != nil {
		c.cfg.Reveal(false)
	}

	c.cfg.Store.Set(KeyOpened, false)
	c.cfg.Bus.Publish(EventClose, nil)
	return true
}

// Toggle opens a closed controller and closes an opened one.
func (c *Controller) Toggle() {
	if c.Opened() {
		c.Close()
	} else {
		c.Open()
	}
}

// Disable marks the widget disabled, forcing Opened → Closed first
// when necessary.
func (c *Controller) Disable() {
	c.Close()
	c.cfg.Store.Set(KeyDisabled, true)
}

// Enable clears the disabled flag.
func (c *Controller) Enable() {
	c.cfg.Store.Set(KeyDisabled, false)
}

// Reposition computes and applies a fresh placement. Called on every
// open and by the positioner's auto-update feed while open.
func (c *Controller) Reposition() {
	if c.cfg.Anchor == nil || c.cfg.Floating == nil || c.cfg.Place == nil {
		return
	}
	p := c.cfg.Positioner.Compute(c.cfg.Anchor(), c.cfg.Floating(), c.cfg.Options)
	c.cfg.Place(p)
}

// HandleEscape drives Opened → Closed on the Escape key.
func (c *Controller) HandleEscape() {
	c.Close()
}

// HandleClick closes the popover only when the click landed outside
// both the control surface and the popover surface.
func (c *Controller) HandleClick(inControl, inPopover bool) {
	if inControl || inPopover {
		return
	}
	c.Close()
}
