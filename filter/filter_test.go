package filter

import (
	"testing"
	"time"

	"github.com/grovetools/selectkit/pkg/entry"
)

func cities() []entry.Entry {
	return []entry.Entry{
		entry.New(1, "Moscow"),
		entry.New(2, "Minsk"),
		entry.New(3, "Samara"),
	}
}

func texts(items []entry.Entry) []string {
	out := make([]string, len(items))
	for i, e := range items {
		out[i] = e.Text
	}
	return out
}

func TestContainsCaseInsensitive(t *testing.T) {
	opts := Options{Strategy: StrategyContains}

	got := opts.Apply(cities(), "m")
	if len(got) != 3 {
		t.Errorf("Expected all three cities for 'm', got %v", texts(got))
	}

	got = opts.Apply(cities(), "mo")
	if len(got) != 1 || got[0].Text != "Moscow" {
		t.Errorf("Expected only Moscow for 'mo', got %v", texts(got))
	}
}

func TestStartsWith(t *testing.T) {
	opts := Options{Strategy: StrategyStartsWith}

	got := opts.Apply(cities(), "mi")
	if len(got) != 1 || got[0].Text != "Minsk" {
		t.Errorf("Expected only Minsk for 'mi', got %v", texts(got))
	}

	// "sk" appears inside Minsk but not at the start.
	got = opts.Apply(cities(), "sk")
	if len(got) != 0 {
		t.Errorf("Expected no matches for 'sk', got %v", texts(got))
	}
}

func TestNoneIgnoresText(t *testing.T) {
	opts := Options{Strategy: StrategyNone}
	got := opts.Apply(cities(), "zzz")
	if len(got) != 3 {
		t.Errorf("StrategyNone must return the full collection, got %v", texts(got))
	}
}

func TestMinLengthThreshold(t *testing.T) {
	opts := Options{Strategy: StrategyContains, MinLength: 3}

	if got := opts.Apply(cities(), "mo"); len(got) != 3 {
		t.Errorf("Text below threshold should deactivate the filter, got %v", texts(got))
	}
	if got := opts.Apply(cities(), "mos"); len(got) != 1 {
		t.Errorf("Text at threshold should filter, got %v", texts(got))
	}
}

func TestEmptyTextReturnsAll(t *testing.T) {
	opts := Options{Strategy: StrategyContains}
	if got := opts.Apply(cities(), ""); len(got) != 3 {
		t.Errorf("Empty text should return everything, got %v", texts(got))
	}
}

func TestFuzzyRanksMatches(t *testing.T) {
	opts := Options{Strategy: StrategyFuzzy}
	items := []entry.Entry{
		entry.New(1, "Samara"),
		entry.New(2, "Moscow"),
		entry.New(3, "Murmansk"),
	}

	got := opts.Apply(items, "msk")
	if len(got) == 0 {
		t.Fatal("Expected fuzzy matches for 'msk'")
	}
	for _, e := range got {
		if e.Text == "Moscow" {
			t.Errorf("Moscow has no 'msk' subsequence, got %v", texts(got))
		}
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in   string
		want Strategy
	}{
		{"contains", StrategyContains},
		{"STARTSWITH", StrategyStartsWith},
		{"none", StrategyNone},
		{"fuzzy", StrategyFuzzy},
		{"bogus", StrategyContains},
		{"", StrategyContains},
	}
	for _, tt := range tests {
		if got := ParseStrategy(tt.in); got != tt.want {
			t.Errorf("ParseStrategy(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDebouncerLatestCallWins(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	done := make(chan string, 2)

	d.Call(func() { done <- "first" })
	d.Call(func() { done <- "second" })

	select {
	case got := <-done:
		if got != "second" {
			t.Errorf("Expected the later call to win, got %q", got)
		}
	case <-time.After(time.Second):
		t.Fatal("Debounced callback never fired")
	}

	select {
	case got := <-done:
		t.Errorf("Cancelled callback fired: %q", got)
	case <-time.After(60 * time.Millisecond):
	}
}

func TestDebouncerCancel(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	fired := make(chan struct{}, 1)

	d.Call(func() { fired <- struct{}{} })
	d.Cancel()

	select {
	case <-fired:
		t.Error("Cancelled callback fired")
	case <-time.After(60 * time.Millisecond):
	}
}
