package widget

import (
	"strings"

	"github.com/grovetools/selectkit/pkg/entry"
)

// ItemRenderer turns the visible item collection into popover content.
// focused is -1 when no item has keyboard focus; selected reports
// whether an entry is part of the current selection.
type ItemRenderer func(items []entry.Entry, focused int, selected func(entry.Entry) bool) string

// DefaultRenderer is a plain-text renderer used when Options.Renderer
// is nil. Hosts that care about styling supply their own (see
// tui.NewListRenderer).
func DefaultRenderer(items []entry.Entry, focused int, selected func(entry.Entry) bool) string {
	if len(items) == 0 {
		return "(no results)"
	}
	var b strings.Builder
	for i, it := range items {
		cursor := "  "
		if i == focused {
			cursor = "> "
		}
		mark := "[ ] "
		if selected(it) {
			mark = "[x] "
		}
		b.WriteString(cursor)
		b.WriteString(mark)
		if it.Disabled {
			b.WriteString(it.Text + " (disabled)")
		} else {
			b.WriteString(it.Text)
		}
		if i < len(items)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
