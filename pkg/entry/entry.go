// Package entry defines the data model shared by every selectkit widget:
// a flat, immutable list entry identified by its value.
package entry

// SelectAllValue is the reserved sentinel accepted by the multiselect
// programmatic API to mean "every enabled entry". It must never collide
// with a legitimate entry value; this is a documented constraint on the
// caller, not something the widgets enforce.
const SelectAllValue = -1

// Entry is one selectable unit of data. Value must be a comparable
// primitive (string or a numeric type); two entries are considered the
// same entry when their values compare equal. Entries are never mutated
// in place; widgets always replace collections wholesale.
type Entry struct {
	Value    any    `json:"value" yaml:"value"`
	Text     string `json:"text" yaml:"text"`
	Disabled bool   `json:"disabled,omitempty" yaml:"disabled,omitempty"`
}

// New returns an enabled entry.
func New(value any, text string) Entry {
	return Entry{Value: value, Text: text}
}

// NewDisabled returns a disabled entry.
func NewDisabled(value any, text string) Entry {
	return Entry{Value: value, Text: text, Disabled: true}
}

// Is reports whether the entry carries the given value.
func (e Entry) Is(value any) bool {
	return e.Value == value
}

// IndexOf returns the index of the entry with the given value, or -1.
func IndexOf(items []Entry, value any) int {
	for i, e := range items {
		if e.Value == value {
			return i
		}
	}
	return -1
}

// Contains reports whether any entry carries the given value.
func Contains(items []Entry, value any) bool {
	return IndexOf(items, value) != -1
}

// Enabled returns the enabled subset of items, preserving order.
func Enabled(items []Entry) []Entry {
	out := make([]Entry, 0, len(items))
	for _, e := range items {
		if !e.Disabled {
			out = append(out, e)
		}
	}
	return out
}

// Values returns the values of items in order.
func Values(items []Entry) []any {
	out := make([]any, len(items))
	for i, e := range items {
		out[i] = e.Value
	}
	return out
}

// Clone returns a shallow copy of items so callers can hold a stable
// snapshot across wholesale replacements.
func Clone(items []Entry) []Entry {
	if items == nil {
		return nil
	}
	out := make([]Entry, len(items))
	copy(out, items)
	return out
}
