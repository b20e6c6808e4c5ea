package entry

import "testing"

func TestIndexOf(t *testing.T) {
	items := []Entry{New(1, "Apple"), New(2, "Orange"), New(3, "Banana")}

	if idx := IndexOf(items, 2); idx != 1 {
		t.Errorf("Expected index 1 for value 2, got %d", idx)
	}
	if idx := IndexOf(items, 99); idx != -1 {
		t.Errorf("Expected -1 for missing value, got %d", idx)
	}
	if idx := IndexOf(items, "2"); idx != -1 {
		t.Errorf("Expected -1 for type-mismatched value, got %d", idx)
	}
}

func TestEnabled(t *testing.T) {
	items := []Entry{New("a", "A"), NewDisabled("b", "B"), New("c", "C")}

	enabled := Enabled(items)
	if len(enabled) != 2 {
		t.Fatalf("Expected 2 enabled entries, got %d", len(enabled))
	}
	if enabled[0].Value != "a" || enabled[1].Value != "c" {
		t.Errorf("Enabled did not preserve order: %v", enabled)
	}
}

func TestClone(t *testing.T) {
	items := []Entry{New(1, "one")}
	cloned := Clone(items)

	cloned[0] = New(2, "two")
	if items[0].Value != 1 {
		t.Error("Clone should not share backing array with source")
	}

	if Clone(nil) != nil {
		t.Error("Clone(nil) should be nil")
	}
}

func TestValues(t *testing.T) {
	items := []Entry{New(1, "one"), New(2, "two")}
	vals := Values(items)
	if len(vals) != 2 || vals[0] != 1 || vals[1] != 2 {
		t.Errorf("Unexpected values: %v", vals)
	}
}
