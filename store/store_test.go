package store

import "testing"

func TestGetSet(t *testing.T) {
	s := New(map[string]any{"count": 1})

	if got := s.Int("count", 0); got != 1 {
		t.Errorf("Expected initial value 1, got %d", got)
	}

	s.Set("count", 2)
	if got := s.Int("count", 0); got != 2 {
		t.Errorf("Expected 2 after Set, got %d", got)
	}

	if got := s.Get("missing"); got != nil {
		t.Errorf("Expected nil for unset key, got %v", got)
	}
}

func TestSubscribeNotifiesInOrder(t *testing.T) {
	s := New(nil)
	var got []int

	s.Subscribe("k", func(any) { got = append(got, 1) })
	s.Subscribe("k", func(any) { got = append(got, 2) })

	s.Set("k", "x")

	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("Expected subscription-order notification, got %v", got)
	}
}

func TestEmitImmediately(t *testing.T) {
	s := New(map[string]any{"k": "initial"})
	var got []string

	s.Subscribe("k", func(v any) { got = append(got, v.(string)) }, EmitImmediately())
	s.Set("k", "next")

	if len(got) != 2 || got[0] != "initial" || got[1] != "next" {
		t.Errorf("Expected immediate emit then update, got %v", got)
	}
}

func TestUnsubscribe(t *testing.T) {
	s := New(nil)
	var calls int

	unsub := s.Subscribe("k", func(any) { calls++ })
	s.Set("k", 1)
	unsub()
	unsub() // idempotent
	s.Set("k", 2)

	if calls != 1 {
		t.Errorf("Expected 1 call after unsubscribe, got %d", calls)
	}
}

func TestReentrantSetIsDepthFirst(t *testing.T) {
	s := New(nil)
	var got []string

	s.Subscribe("a", func(v any) {
		got = append(got, "a-start")
		if v.(int) == 1 {
			s.Set("b", "x")
		}
		got = append(got, "a-end")
	})
	s.Subscribe("b", func(any) { got = append(got, "b") })

	s.Set("a", 1)

	want := []string{"a-start", "b", "a-end"}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, got)
		}
	}
}

func TestNestedSetSameKeyCompletes(t *testing.T) {
	s := New(nil)
	var depth, maxDepth int

	s.Subscribe("k", func(v any) {
		depth++
		if depth > maxDepth {
			maxDepth = depth
		}
		if v.(int) < 2 {
			s.Set("k", v.(int)+1)
		}
		depth--
	})

	s.Set("k", 0)

	if maxDepth != 3 {
		t.Errorf("Expected depth-first nesting to reach depth 3, got %d", maxDepth)
	}
	if got := s.Int("k", -1); got != 2 {
		t.Errorf("Expected final value 2, got %d", got)
	}
}

func TestTypedAccessors(t *testing.T) {
	s := New(map[string]any{"b": true, "s": "text", "i": 7})

	if !s.Bool("b") {
		t.Error("Expected Bool to read true")
	}
	if s.String("s") != "text" {
		t.Error("Expected String to read value")
	}
	if s.Int("i", 0) != 7 {
		t.Error("Expected Int to read value")
	}
	if s.Int("missing", 42) != 42 {
		t.Error("Expected fallback for missing int")
	}
}
