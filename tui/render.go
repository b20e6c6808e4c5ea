package tui

import (
	"fmt"
	"strings"

	"github.com/grovetools/selectkit/pkg/entry"
	"github.com/grovetools/selectkit/tui/theme"
	"github.com/grovetools/selectkit/widget"
)

// NewListRenderer builds the styled popover renderer used by the TUI
// host. showMarks adds the multi-select checkbox column.
func NewListRenderer(th *theme.Theme, showMarks bool) widget.ItemRenderer {
	return func(items []entry.Entry, focused int, selected func(entry.Entry) bool) string {
		if len(items) == 0 {
			return th.Muted.Render("no results")
		}

		var b strings.Builder
		for i, it := range items {
			cursor := "  "
			if i == focused {
				cursor = th.Cursor.Render(theme.IconCursor) + " "
			}

			mark := ""
			if showMarks {
				if selected(it) {
					mark = th.SelectedItem.Render(theme.IconChecked) + " "
				} else {
					mark = th.Muted.Render(theme.IconUnchecked) + " "
				}
			}

			var text string
			switch {
			case it.Disabled:
				text = th.DisabledItem.Render(it.Text)
			case i == focused:
				text = th.Focused.Render(it.Text)
			case !showMarks && selected(it):
				text = th.SelectedItem.Render(fmt.Sprintf("%s %s", it.Text, theme.IconSuccess))
			default:
				text = th.Normal.Render(it.Text)
			}

			b.WriteString(cursor)
			b.WriteString(mark)
			b.WriteString(text)
			if i < len(items)-1 {
				b.WriteByte('\n')
			}
		}
		return b.String()
	}
}
