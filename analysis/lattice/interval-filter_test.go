package lattice

import "testing"

func TestFilterSigned(t *testing.T) {
	lat := Create().Lattice().Interval(8)
	itv := func(lo, hi int64) Interval {
		return Create().Element().Interval(8, lo, hi)
	}

	tests := []struct {
		pred         Predicate
		x, y         Interval
		wantX, wantY Interval
	}{
		// Both operands of x < y shed the values that cannot satisfy it.
		{PredSLT, itv(0, 50), itv(0, 50), itv(0, 49), itv(1, 50)},
		{PredSLE, itv(0, 100), itv(0, 10), itv(0, 10), itv(0, 10)},
		{PredSLE, itv(0, 10), itv(20, 30), itv(0, 10), itv(20, 30)},
		{PredSLT, itv(-10, 10), itv(0, 0), itv(-10, -1), itv(0, 0)},
		// An unconstrained operand narrows against the other's bound.
		{PredSLT, lat.Top().Interval(), itv(0, 10), itv(-128, 9), itv(0, 10)},
		{PredSLE, itv(0, 10), lat.Top().Interval(), itv(0, 10), itv(0, 127)},
		// Nothing is below the smallest value.
		{PredSLT, itv(0, 10), itv(-128, -128), lat.Bot().Interval(), lat.Bot().Interval()},
		// The mirrored forms reuse the less-than machinery.
		{PredSGT, itv(0, 50), itv(0, 50), itv(1, 50), itv(0, 49)},
		{PredSGE, itv(0, 10), itv(5, 100), itv(5, 10), itv(5, 10)},
	}

	for _, test := range tests {
		gotX, gotY := Filter(test.pred, test.x, test.y)
		if !gotX.eq(test.wantX) || !gotY.eq(test.wantY) {
			t.Errorf("σ(%s %s %s) = (%s, %s), expected (%s, %s)",
				test.x, test.pred, test.y, gotX, gotY, test.wantX, test.wantY)
		} else {
			t.Logf("σ(%s %s %s) = (%s, %s)\n", test.x, test.pred, test.y, gotX, gotY)
		}
	}
}

func TestFilterUnsigned(t *testing.T) {
	lat := Create().Lattice().Interval(8)
	itv := func(lo, hi int64) Interval {
		return Create().Element().Interval(8, lo, hi)
	}

	tests := []struct {
		pred         Predicate
		x, y         Interval
		wantX, wantY Interval
	}{
		{PredULT, itv(10, 20), itv(5, 15), itv(10, 14), itv(11, 15)},
		{PredULE, itv(0, 100), itv(0, 10), itv(0, 10), itv(0, 10)},
		// Unsigned order runs 0 to 255; negative patterns sit at the high end.
		{PredULE, itv(-10, -1), itv(-5, -1), itv(-10, -1), itv(-5, -1)},
		{PredUGT, itv(0, 20), itv(5, 15), itv(6, 20), itv(5, 15)},
		// ⊤ materializes as the full unsigned range before narrowing.
		{PredULT, lat.Top().Interval(), itv(0, 10), itv(0, 9), itv(1, 10)},
		// Nothing is below unsigned zero.
		{PredULT, itv(0, 10), itv(0, 0), lat.Bot().Interval(), lat.Bot().Interval()},
	}

	for _, test := range tests {
		gotX, gotY := Filter(test.pred, test.x, test.y)
		if !gotX.eq(test.wantX) || !gotY.eq(test.wantY) {
			t.Errorf("σ(%s %s %s) = (%s, %s), expected (%s, %s)",
				test.x, test.pred, test.y, gotX, gotY, test.wantX, test.wantY)
		} else {
			t.Logf("σ(%s %s %s) = (%s, %s)\n", test.x, test.pred, test.y, gotX, gotY)
		}
	}
}

func TestFilterAmbiguousShapes(t *testing.T) {
	itv := func(lo, hi int64) Interval {
		return Create().Element().Interval(8, lo, hi)
	}

	// A signed-wrapped operand cannot be narrowed by a signed guard; both
	// operands pass through untouched.
	wrapped, straight := itv(100, -100), itv(0, 10)
	gotX, gotY := Filter(PredSLT, wrapped, straight)
	if !gotX.IsIdentical(wrapped) || !gotY.IsIdentical(straight) {
		t.Errorf("σ(%s <s %s) = (%s, %s), expected operands unchanged",
			wrapped, straight, gotX, gotY)
	}

	// Likewise for an unsigned-wrapped operand under an unsigned guard.
	uwrapped := itv(-1, 1)
	gotX, gotY = Filter(PredULT, uwrapped, straight)
	if !gotX.IsIdentical(uwrapped) || !gotY.IsIdentical(straight) {
		t.Errorf("σ(%s <u %s) = (%s, %s), expected operands unchanged",
			uwrapped, straight, gotX, gotY)
	}

	// ⊥ swallows the whole guard.
	bot := Create().Lattice().Interval(8).Bot().Interval()
	gotX, gotY = Filter(PredSLE, bot, straight)
	if !gotX.IsBot() || !gotY.IsBot() {
		t.Errorf("σ(⊥ ≤s %s) = (%s, %s), expected (⊥, ⊥)", straight, gotX, gotY)
	}
}

func TestMayComparisons(t *testing.T) {
	lat := Create().Lattice().Interval(8)
	itv := func(lo, hi int64) Interval {
		return Create().Element().Interval(8, lo, hi)
	}

	tests := []struct {
		op       string
		f        func(e1, e2 Interval) bool
		a, b     Interval
		expected bool
	}{
		{"≤s", Interval.MaySle, itv(0, 5), itv(5, 10), true},
		{"≤s", Interval.MaySle, itv(6, 10), itv(0, 5), false},
		{"≤s", Interval.MaySle, itv(5, 5), itv(5, 5), true},
		{"<s", Interval.MaySlt, itv(0, 5), itv(0, 5), true},
		{"<s", Interval.MaySlt, itv(5, 5), itv(0, 5), false},
		{"<s", Interval.MaySlt, itv(-10, -5), itv(0, 0), true},
		{"<s", Interval.MaySlt, itv(100, -100), itv(0, 0), true},
		{"≤u", Interval.MayUle, itv(0, 5), itv(5, 10), true},
		// Negative patterns are large unsigned values.
		{"≤u", Interval.MayUle, itv(-5, -1), itv(0, 100), false},
		{"<u", Interval.MayUlt, itv(0, 100), itv(-5, -1), true},
		{"<u", Interval.MayUlt, itv(5, 5), itv(0, 5), false},
		{"<u", Interval.MayUlt, lat.Top().Interval(), itv(0, 0), true},
		{"<u", Interval.MayUlt, lat.Bot().Interval(), itv(0, 0), false},
	}

	for _, test := range tests {
		if got := test.f(test.a, test.b); got != test.expected {
			t.Errorf("%s %s %s = %v, expected %v",
				test.a, test.op, test.b, got, test.expected)
		}
	}
}
