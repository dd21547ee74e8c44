package lattice

import "testing"

func TestIntervalJoin(t *testing.T) {
	lat := Create().Lattice().Interval(8)
	itv := func(lo, hi int64) Element {
		return Create().Element().Interval(8, lo, hi)
	}

	tests := []struct {
		a, b, expected Element
	}{
		{lat.Bot(), lat.Bot(), lat.Bot()},
		{lat.Bot(), lat.Top(), lat.Top()},
		{lat.Top(), lat.Bot(), lat.Top()},
		{lat.Top(), lat.Top(), lat.Top()},
		{lat.Bot(), itv(0, 0), itv(0, 0)},
		{itv(0, 0), lat.Bot(), itv(0, 0)},
		{itv(0, 0), itv(1, 1), itv(0, 1)},
		{itv(1, 1), itv(0, 0), itv(0, 1)},
		{itv(1, 2), itv(3, 4), itv(1, 4)},
		{itv(-1, 0), itv(0, 1), itv(-1, 1)},
		{itv(1, 2), itv(100, 110), itv(1, 110)},
		{itv(-128, 0), itv(0, 127), lat.Top()},
		// A signed-wrapped operand has no hull in signed order.
		{itv(120, -120), itv(0, 0), lat.Top()},
		{itv(0, 0), itv(120, -120), lat.Top()},
	}

	for _, test := range tests {
		res := test.a.Join(test.b)
		if !res.Eq(test.expected) {
			t.Errorf("%s ⊔ %s = %s, expected %s\n", test.a, test.b, res, test.expected)
		} else {
			t.Logf("%s ⊔ %s = %s\n", test.a, test.b, res)
		}
	}
}

func TestIntervalMeet(t *testing.T) {
	lat := Create().Lattice().Interval(8)
	itv := func(lo, hi int64) Element {
		return Create().Element().Interval(8, lo, hi)
	}

	tests := []struct {
		a, b, expected Element
	}{
		{lat.Bot(), lat.Top(), lat.Bot()},
		{lat.Top(), lat.Bot(), lat.Bot()},
		{lat.Top(), itv(0, 10), itv(0, 10)},
		{itv(0, 10), lat.Top(), itv(0, 10)},
		{itv(0, 10), itv(5, 20), itv(5, 10)},
		{itv(5, 20), itv(0, 10), itv(5, 10)},
		{itv(0, 4), itv(5, 9), lat.Bot()},
		{itv(-10, -1), itv(0, 10), lat.Bot()},
		{itv(0, 10), itv(0, 10), itv(0, 10)},
		{itv(-5, 5), itv(0, 100), itv(0, 5)},
	}

	for _, test := range tests {
		res := test.a.Meet(test.b)
		if !res.Eq(test.expected) {
			t.Errorf("%s ⊓ %s = %s, expected %s\n", test.a, test.b, res, test.expected)
		} else {
			t.Logf("%s ⊓ %s = %s\n", test.a, test.b, res)
		}
	}
}

func TestIntervalMeetWrapped(t *testing.T) {
	itv := func(lo, hi int64) Interval {
		return Create().Element().Interval(8, lo, hi)
	}

	// The exact intersection with a signed-wrapped operand may not be an
	// interval; the meet must still over-approximate it with an operand.
	straight, wrapped := itv(0, 10), itv(100, -100)
	if res := straight.Meet(wrapped); !res.Interval().IsIdentical(straight) {
		t.Errorf("%s ⊓ %s = %s, expected %s", straight, wrapped, res, straight)
	}
	if res := wrapped.Meet(straight); !res.Interval().IsIdentical(straight) {
		t.Errorf("%s ⊓ %s = %s, expected %s", wrapped, straight, res, straight)
	}
}

func TestIntervalLeq(t *testing.T) {
	lat := Create().Lattice().Interval(8)
	itv := func(lo, hi int64) Element {
		return Create().Element().Interval(8, lo, hi)
	}

	tests := []struct {
		a, b     Element
		expected bool
	}{
		{lat.Bot(), lat.Bot(), true},
		{lat.Bot(), itv(3, 3), true},
		{itv(3, 3), lat.Bot(), false},
		{itv(3, 3), lat.Top(), true},
		{lat.Top(), itv(3, 3), false},
		{itv(1, 2), itv(0, 5), true},
		{itv(0, 5), itv(1, 2), false},
		{itv(0, 5), itv(0, 5), true},
		// [MIN, MAX] concretizes like ⊤.
		{lat.Top(), itv(-128, 127), true},
		{itv(-128, 127), lat.Top(), true},
		// Fitting inside one arm of a signed-wrapped interval.
		{itv(110, 120), itv(100, -100), true},
		{itv(-120, -110), itv(100, -100), true},
		{itv(0, 10), itv(100, -100), false},
		{itv(100, -100), itv(0, 10), false},
		{itv(100, -100), itv(100, -100), true},
		{itv(110, -110), itv(100, -100), true},
		{itv(100, -100), itv(110, -110), false},
	}

	for _, test := range tests {
		if got := test.a.Leq(test.b); got != test.expected {
			t.Errorf("%s ⊑ %s = %v, expected %v", test.a, test.b, got, test.expected)
		}
	}
}

func TestIntervalNormalize(t *testing.T) {
	itv := func(lo, hi int64) Interval {
		return Create().Element().Interval(8, lo, hi)
	}

	full := itv(-128, 127)
	if full.IsTop() {
		t.Errorf("%s must be distinguished from ⊤ before normalization", full)
	}
	if !full.Normalize().IsTop() {
		t.Errorf("normalizing %s should yield ⊤", full)
	}
	if bounded := itv(-128, 126).Normalize(); bounded.IsTop() {
		t.Errorf("normalizing %s should not yield ⊤", bounded)
	}
}

func TestIntervalHeight(t *testing.T) {
	lat := Create().Lattice().Interval(8)
	itv := func(lo, hi int64) Interval {
		return Create().Element().Interval(8, lo, hi)
	}

	tests := []struct {
		e        Element
		expected int
	}{
		{lat.Bot(), 0},
		{lat.Top(), 256},
		{itv(3, 3), 1},
		{itv(0, 9), 10},
		// The wrapped interval covers both arms.
		{itv(120, -120), 256 - 240 + 1},
	}

	for _, test := range tests {
		if got := test.e.Height(); got != test.expected {
			t.Errorf("Height(%s) = %d, expected %d", test.e, got, test.expected)
		}
	}

	if Create().Lattice().Interval(64).Top().Height() != -1 {
		t.Error("the 64-bit concretization size should not be reported")
	}
}

func TestIntervalIsIdentical(t *testing.T) {
	lat := Create().Lattice().Interval(8)
	full := Create().Element().Interval(8, -128, 127)

	if !full.Eq(lat.Top()) {
		t.Errorf("%s and ⊤ should be semantically equal", full)
	}
	if full.IsIdentical(lat.Top().Interval()) {
		t.Errorf("%s and ⊤ should not be identical", full)
	}
	if !full.IsIdentical(full) {
		t.Errorf("%s should be identical to itself", full)
	}
}

func TestIntervalSingleton(t *testing.T) {
	itv := Create().Element().IntervalConst(16, 42)

	if !itv.IsSingleton() {
		t.Errorf("%s should be a singleton", itv)
	}
	if itv.Low().Int64() != 42 || itv.High().Int64() != 42 {
		t.Errorf("%s should have both bounds at 42", itv)
	}
	if Create().Lattice().Interval(16).Top().Interval().IsSingleton() {
		t.Error("⊤ is not a singleton")
	}
}
