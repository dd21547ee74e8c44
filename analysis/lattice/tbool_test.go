package lattice

import "testing"

func TestTBoolJoinMeet(t *testing.T) {
	lat := Create().Lattice().TBool()
	tr := Create().Element().TBool(true)
	fa := Create().Element().TBool(false)

	tests := []struct {
		a, b, joined, met Element
	}{
		{lat.Bot(), lat.Bot(), lat.Bot(), lat.Bot()},
		{lat.Bot(), tr, tr, lat.Bot()},
		{tr, tr, tr, tr},
		{fa, fa, fa, fa},
		{tr, fa, lat.Top(), lat.Bot()},
		{fa, tr, lat.Top(), lat.Bot()},
		{tr, lat.Top(), lat.Top(), tr},
		{lat.Top(), fa, lat.Top(), fa},
		{lat.Top(), lat.Top(), lat.Top(), lat.Top()},
	}

	for _, test := range tests {
		if res := test.a.Join(test.b); !res.Eq(test.joined) {
			t.Errorf("%s ⊔ %s = %s, expected %s", test.a, test.b, res, test.joined)
		}
		if res := test.a.Meet(test.b); !res.Eq(test.met) {
			t.Errorf("%s ⊓ %s = %s, expected %s", test.a, test.b, res, test.met)
		}
	}
}

func TestTBoolLeq(t *testing.T) {
	lat := Create().Lattice().TBool()
	tr := Create().Element().TBool(true)
	fa := Create().Element().TBool(false)

	tests := []struct {
		a, b     Element
		expected bool
	}{
		{lat.Bot(), tr, true},
		{tr, lat.Top(), true},
		{tr, tr, true},
		{tr, fa, false},
		{fa, tr, false},
		{lat.Top(), tr, false},
		{tr, lat.Bot(), false},
	}

	for _, test := range tests {
		if got := test.a.Leq(test.b); got != test.expected {
			t.Errorf("%s ⊑ %s = %v, expected %v", test.a, test.b, got, test.expected)
		}
	}
}

func TestTBoolHeight(t *testing.T) {
	lat := Create().Lattice().TBool()

	tests := []struct {
		e        Element
		expected int
	}{
		{lat.Bot(), 0},
		{Create().Element().TBool(true), 1},
		{Create().Element().TBool(false), 1},
		{lat.Top(), 2},
	}

	for _, test := range tests {
		if got := test.e.Height(); got != test.expected {
			t.Errorf("Height(%s) = %d, expected %d", test.e, got, test.expected)
		}
	}
}

func TestIntervalTBool(t *testing.T) {
	lat := Create().Lattice().Interval(8)
	el := Create().Element()

	tests := []struct {
		b        TBool
		expected Element
	}{
		{el.TBool(true), el.IntervalConst(8, 1)},
		{el.TBool(false), el.IntervalConst(8, 0)},
		// The unknown boolean deliberately seeds ⊤ rather than [0, 1].
		{Create().Lattice().TBool().Top().TBool(), lat.Top()},
		{Create().Lattice().TBool().Bot().TBool(), lat.Bot()},
	}

	for _, test := range tests {
		if res := el.IntervalTBool(8, test.b); !res.Eq(test.expected) {
			t.Errorf("interval(%s) = %s, expected %s", test.b, res, test.expected)
		}
	}
}
