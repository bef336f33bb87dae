package optional

import "testing"

// =============================================================================
// Constructors
// =============================================================================

func TestNone(t *testing.T) {
	o := None[int]()
	if o.HasValue() {
		t.Error("None() should be absent")
	}
	if v, ok := o.Get(); ok || v != 0 {
		t.Errorf("Get() = %d, %v; want 0, false", v, ok)
	}
}

func TestSome(t *testing.T) {
	o := Some(42)
	if !o.HasValue() {
		t.Error("Some() should be present")
	}
	if v, ok := o.Get(); !ok || v != 42 {
		t.Errorf("Get() = %d, %v; want 42, true", v, ok)
	}
}

func TestZeroValueIsAbsent(t *testing.T) {
	var o Value[string]
	if o.HasValue() {
		t.Error("zero Value should be absent")
	}
}

// =============================================================================
// Method: Set() / Replace()
// =============================================================================

func TestSet(t *testing.T) {
	var o Value[int]
	o.Set(7)
	if v, ok := o.Get(); !ok || v != 7 {
		t.Errorf("Get() = %d, %v; want 7, true", v, ok)
	}
	o.Set(8)
	if v, _ := o.Get(); v != 8 {
		t.Errorf("Get() after second Set = %d; want 8", v)
	}
}

func TestReplace(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		var o Value[int]
		old, had := o.Replace(1)
		if had {
			t.Errorf("Replace() on absent displaced %d; want nothing", old)
		}
		if v, _ := o.Get(); v != 1 {
			t.Errorf("Get() = %d; want 1", v)
		}
	})

	t.Run("present_displaces_exactly_once", func(t *testing.T) {
		o := Some("a")
		displaced := 0

		old, had := o.Replace("b")
		if had {
			displaced++
		}
		if old != "a" {
			t.Errorf("Replace() displaced %q; want %q", old, "a")
		}
		if displaced != 1 {
			t.Errorf("displaced count = %d; want 1", displaced)
		}
		if v, _ := o.Get(); v != "b" {
			t.Errorf("Get() = %q; want %q", v, "b")
		}
	})
}

// =============================================================================
// Method: Assign()
// =============================================================================

func TestAssign(t *testing.T) {
	tests := []struct {
		name     string
		dst, src Value[int]
		wantVal  int
		wantHas  bool
	}{
		{"absent_to_absent", None[int](), None[int](), 0, false},
		{"present_to_absent", None[int](), Some(5), 5, true},
		{"absent_to_present", Some(5), None[int](), 0, false},
		{"present_to_present", Some(5), Some(9), 9, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.dst.Assign(tt.src)
			if tt.dst.HasValue() != tt.wantHas {
				t.Errorf("HasValue() = %v; want %v", tt.dst.HasValue(), tt.wantHas)
			}
			if v, _ := tt.dst.Get(); v != tt.wantVal {
				t.Errorf("Get() = %d; want %d", v, tt.wantVal)
			}
		})
	}
}

func TestAssign_Self(t *testing.T) {
	o := Some(3)
	o.Assign(o)
	if v, ok := o.Get(); !ok || v != 3 {
		t.Errorf("self-assign Get() = %d, %v; want 3, true", v, ok)
	}
}

// =============================================================================
// Method: Clear() / Take()
// =============================================================================

func TestClear_ReleasesStorage(t *testing.T) {
	p := new(int)
	o := Some(p)
	o.Clear()
	if o.HasValue() {
		t.Error("Clear() should leave Value absent")
	}
	// Storage must be zeroed so the pointer is released.
	if v, _ := o.Get(); v != nil {
		t.Error("Clear() should zero the stored pointer")
	}
}

func TestTake(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		o := Some(11)
		v, ok := o.Take()
		if !ok || v != 11 {
			t.Errorf("Take() = %d, %v; want 11, true", v, ok)
		}
		if o.HasValue() {
			t.Error("Take() should leave Value absent")
		}
	})

	t.Run("absent", func(t *testing.T) {
		var o Value[int]
		v, ok := o.Take()
		if ok || v != 0 {
			t.Errorf("Take() = %d, %v; want 0, false", v, ok)
		}
	})

	t.Run("second_take_misses", func(t *testing.T) {
		o := Some(1)
		o.Take()
		if _, ok := o.Take(); ok {
			t.Error("second Take() should miss")
		}
	})
}

// =============================================================================
// Method: ValueOr() / ValueOrAssign()
// =============================================================================

func TestValueOr(t *testing.T) {
	o := Some(10)
	if got := o.ValueOr(99); got != 10 {
		t.Errorf("ValueOr() = %d; want 10", got)
	}

	var empty Value[int]
	if got := empty.ValueOr(99); got != 99 {
		t.Errorf("ValueOr() = %d; want fallback 99", got)
	}
	if empty.HasValue() {
		t.Error("ValueOr() must not mutate an absent Value")
	}
}

func TestValueOrAssign(t *testing.T) {
	t.Run("present_returns_held", func(t *testing.T) {
		o := Some(10)
		if got := o.ValueOrAssign(99); got != 10 {
			t.Errorf("ValueOrAssign() = %d; want 10", got)
		}
		if v, _ := o.Get(); v != 10 {
			t.Errorf("held value changed to %d; want 10", v)
		}
	})

	t.Run("absent_stores_fallback", func(t *testing.T) {
		var o Value[int]
		if got := o.ValueOrAssign(99); got != 99 {
			t.Errorf("ValueOrAssign() = %d; want 99", got)
		}
		if !o.HasValue() {
			t.Error("miss should have stored the fallback")
		}
		if v, _ := o.Get(); v != 99 {
			t.Errorf("Get() after miss = %d; want 99", v)
		}
	})
}
