// Package keynav computes keyboard focus movement over an entry
// collection, skipping disabled entries. The policy is clamp, not
// cycle: when a move would run off either end, focus stays put.
package keynav

import "github.com/grovetools/selectkit/pkg/entry"

// Direction is a single focus step.
type Direction int

const (
	Up   Direction = -1
	Down Direction = 1
)

// NextEnabled steps from current by direction until it finds an enabled
// index within bounds. When the range is exhausted it returns current
// unchanged: no wraparound and never an out-of-bounds result. A
// current of -1 (nothing focused) moving Down starts at the first
// entry.
func NextEnabled(current int, dir Direction, items []entry.Entry) int {
	for i := current + int(dir); i >= 0 && i < len(items); i += int(dir) {
		if !items[i].Disabled {
			return i
		}
	}
	return current
}

// FirstEnabled returns the index of the first enabled entry, or -1.
func FirstEnabled(items []entry.Entry) int {
	return NextEnabled(-1, Down, items)
}

// LastEnabled returns the index of the last enabled entry, or -1 when
// none are enabled.
func LastEnabled(items []entry.Entry) int {
	if idx := NextEnabled(len(items), Up, items); idx < len(items) {
		return idx
	}
	return -1
}
