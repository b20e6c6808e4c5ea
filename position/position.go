// Package position defines the positioning-service contract the
// lifecycle controller depends on, plus a default pure-computation
// implementation that places a floating rectangle against an anchor,
// flipping and shifting to stay inside a viewport.
package position

// Rect is an axis-aligned rectangle in host coordinates.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Right returns the first x coordinate past the rectangle.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the first y coordinate past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Empty reports a zero-area rectangle.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Side is the edge of the anchor the floating rect attaches to.
type Side string

const (
	SideBottom Side = "bottom"
	SideTop    Side = "top"
)

// Placement is a computed floating position.
type Placement struct {
	X, Y int
	Side Side
}

// Options tunes a Compute call.
type Options struct {
	// Preferred is the side tried first; SideBottom when empty.
	Preferred Side
	// Offset is the gap between anchor and floating rect.
	Offset int
	// Viewport bounds the placement. A zero viewport disables flipping
	// and shifting.
	Viewport Rect
}

// Positioner is the positioning service consumed by the lifecycle
// controller: one placement computation per open, plus a subscription
// invoked whenever relative geometry changes while open.
type Positioner interface {
	Compute(anchor, floating Rect, opts Options) Placement
	// AutoUpdate arranges for fn to run on geometry changes and
	// returns a stop function. Implementations that cannot observe
	// geometry return a no-op stop.
	AutoUpdate(anchor, floating func() Rect, fn func()) (stop func())
}

// Static is the default positioner: pure computation, no geometry
// feed. Hosts that can observe layout changes call the controller's
// Reposition directly (see NewNotifier for a push-style feed).
type Static struct{}

// Compute places floating against anchor on the preferred side,
// flipping to the opposite side when the viewport lacks room, and
// shifting horizontally to keep the floating rect inside the viewport.
func (Static) Compute(anchor, floating Rect, opts Options) Placement {
	side := opts.Preferred
	if side == "" {
		side = SideBottom
	}

	x := anchor.X
	y := yFor(side, anchor, floating, opts.Offset)

	if !opts.Viewport.Empty() {
		if overflows(side, y, floating, opts.Viewport) {
			flipped := flip(side)
			fy := yFor(flipped, anchor, floating, opts.Offset)
			if !overflows(flipped, fy, floating, opts.Viewport) {
				side, y = flipped, fy
			}
		}
		if x+floating.Width > opts.Viewport.Right() {
			x = opts.Viewport.Right() - floating.Width
		}
		if x < opts.Viewport.X {
			x = opts.Viewport.X
		}
	}

	return Placement{X: x, Y: y, Side: side}
}

// AutoUpdate on Static is a no-op subscription.
func (Static) AutoUpdate(anchor, floating func() Rect, fn func()) func() {
	return func() {}
}

func yFor(side Side, anchor, floating Rect, offset int) int {
	if side == SideTop {
		return anchor.Y - offset - floating.Height
	}
	return anchor.Bottom() + offset
}

func overflows(side Side, y int, floating, viewport Rect) bool {
	if side == SideTop {
		return y < viewport.Y
	}
	return y+floating.Height > viewport.Bottom()
}

func flip(side Side) Side {
	if side == SideTop {
		return SideBottom
	}
	return SideTop
}
