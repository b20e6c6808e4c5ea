// Package filter implements the pure entry-matching engine used by the
// filterable widgets, plus the debouncer that throttles live text
// input. Programmatic filtering bypasses the debouncer entirely.
package filter

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/grovetools/selectkit/pkg/entry"
)

// Strategy selects how filter text is matched against display text.
type Strategy string

const (
	// StrategyContains matches entries whose text contains the filter
	// text anywhere, case-insensitively.
	StrategyContains Strategy = "contains"
	// StrategyStartsWith matches entries whose text begins with the
	// filter text, case-insensitively.
	StrategyStartsWith Strategy = "startswith"
	// StrategyNone disables filtering; the full collection always
	// passes through.
	StrategyNone Strategy = "none"
	// StrategyFuzzy ranks entries with subsequence matching, best
	// matches first.
	StrategyFuzzy Strategy = "fuzzy"
)

// Options configures a filter application.
type Options struct {
	Strategy Strategy
	// MinLength is the threshold below which the filter is considered
	// inactive and the full collection is returned.
	MinLength int
}

type entryTexts []entry.Entry

func (s entryTexts) String(i int) string { return s[i].Text }
func (s entryTexts) Len() int            { return len(s) }

// Apply returns the subset of items matching text under the given
// options. The input slice is never mutated; a fresh slice is returned
// whenever any filtering happens.
func (o Options) Apply(items []entry.Entry, text string) []entry.Entry {
	if o.Strategy == StrategyNone || o.Strategy == "" {
		return items
	}
	if len(text) < o.MinLength || text == "" {
		return items
	}

	if o.Strategy == StrategyFuzzy {
		matches := fuzzy.FindFrom(text, entryTexts(items))
		out := make([]entry.Entry, 0, len(matches))
		for _, m := range matches {
			out = append(out, items[m.Index])
		}
		return out
	}

	needle := strings.ToLower(text)
	out := make([]entry.Entry, 0, len(items))
	for _, e := range items {
		hay := strings.ToLower(e.Text)
		switch o.Strategy {
		case StrategyStartsWith:
			if strings.HasPrefix(hay, needle) {
				out = append(out, e)
			}
		default: // StrategyContains
			if strings.Contains(hay, needle) {
				out = append(out, e)
			}
		}
	}
	return out
}

// ParseStrategy maps a config string to a Strategy, defaulting to
// contains for unknown values.
func ParseStrategy(s string) Strategy {
	switch Strategy(strings.ToLower(s)) {
	case StrategyStartsWith:
		return StrategyStartsWith
	case StrategyNone:
		return StrategyNone
	case StrategyFuzzy:
		return StrategyFuzzy
	default:
		return StrategyContains
	}
}
