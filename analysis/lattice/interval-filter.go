package lattice

import (
	"github.com/sav-project/wrapped-intervals/analysis/apint"
)

// Guard filtering. Given a comparison predicate known to hold on a
// control-flow edge, Filter narrows both operand intervals to the tightest
// intervals consistent with the predicate and their own prior bounds.
// Narrowing always intersects with the prior bound, so a range can only
// shrink; operand shapes that make sound narrowing ambiguous are left
// unchanged.

// Predicate identifies a comparison known to hold on a branch edge.
type Predicate uint8

const (
	PredSLE Predicate = iota
	PredSLT
	PredULE
	PredULT
	PredSGE
	PredSGT
	PredUGE
	PredUGT
)

func (p Predicate) String() string {
	switch p {
	case PredSLE:
		return "≤s"
	case PredSLT:
		return "<s"
	case PredULE:
		return "≤u"
	case PredULT:
		return "<u"
	case PredSGE:
		return "≥s"
	case PredSGT:
		return ">s"
	case PredUGE:
		return "≥u"
	case PredUGT:
		return ">u"
	}
	panic(errPatternMatch(p))
}

// mirror maps the strictly-greater forms onto their less-than duals.
func (p Predicate) mirror() (Predicate, bool) {
	switch p {
	case PredSGE:
		return PredSLE, true
	case PredSGT:
		return PredSLT, true
	case PredUGE:
		return PredULE, true
	case PredUGT:
		return PredULT, true
	}
	return p, false
}

func (p Predicate) signed() bool {
	return p == PredSLE || p == PredSLT
}

// fullRange materializes ⊤ as the bounded interval covering every value, so
// that an unconstrained operand can still be narrowed by a guard. The bounds
// are chosen contiguous in the order of the requested signedness.
func (e Interval) fullRange(signed bool) Interval {
	if !e.top {
		return e
	}
	w := e.width()
	if signed {
		return e.mk(apint.SignedMin(w), apint.SignedMax(w))
	}
	return e.mk(apint.Zero(w), apint.UnsignedMax(w))
}

// meetU intersects two intervals that are contiguous in unsigned order.
func (e1 Interval) meetU(e2 Interval) Interval {
	if e1.hi.Ult(e2.lo) || e2.hi.Ult(e1.lo) {
		return e1.lattice.Bot().Interval()
	}
	lo := e1.lo
	if e2.lo.Ugt(lo) {
		lo = e2.lo
	}
	hi := e1.hi
	if e2.hi.Ult(hi) {
		hi = e2.hi
	}
	return e1.mk(lo, hi)
}

// Filter narrows x and y along the edge where `x pred y` is known true.
// Performs lattice dynamic type checking.
func Filter(pred Predicate, x, y Interval) (Interval, Interval) {
	checkLatticeMatch(x.Lattice(), y.Lattice(), "σ("+pred.String()+")")
	if mirrored, swap := pred.mirror(); swap {
		ny, nx := Filter(mirrored, y, x)
		return nx, ny
	}
	if x.bot || y.bot {
		bot := x.lattice.Bot().Interval()
		return bot, bot
	}
	signed := pred.signed()
	x, y = x.fullRange(signed), y.fullRange(signed)
	if signed && (x.crossesNorthPole() || y.crossesNorthPole()) {
		return x, y
	}
	if !signed && (x.crossesSouthPole() || y.crossesSouthPole()) {
		return x, y
	}
	w := x.width()
	one := apint.One(w)
	switch pred {
	case PredSLE:
		nx := x.meet(elFact.IntervalBounds(apint.SignedMin(w), y.hi)).Interval()
		ny := y.meet(elFact.IntervalBounds(x.lo, apint.SignedMax(w))).Interval()
		return nx, ny
	case PredSLT:
		nx, ny := x.lattice.Bot().Interval(), x.lattice.Bot().Interval()
		if !y.hi.Eq(apint.SignedMin(w)) {
			nx = x.meet(elFact.IntervalBounds(apint.SignedMin(w), y.hi.Sub(one))).Interval()
		}
		if !x.lo.Eq(apint.SignedMax(w)) {
			ny = y.meet(elFact.IntervalBounds(x.lo.Add(one), apint.SignedMax(w))).Interval()
		}
		return nx, ny
	case PredULE:
		nx := x.meetU(elFact.IntervalBounds(apint.Zero(w), y.hi))
		ny := y.meetU(elFact.IntervalBounds(x.lo, apint.UnsignedMax(w)))
		return nx, ny
	case PredULT:
		nx, ny := x.lattice.Bot().Interval(), x.lattice.Bot().Interval()
		if !y.hi.IsZero() {
			nx = x.meetU(elFact.IntervalBounds(apint.Zero(w), y.hi.Sub(one)))
		}
		if !x.lo.Eq(apint.UnsignedMax(w)) {
			ny = y.meetU(elFact.IntervalBounds(x.lo.Add(one), apint.UnsignedMax(w)))
		}
		return nx, ny
	}
	panic(errPatternMatch(pred))
}

// Comparison helpers used to evaluate guards. Each reports whether the
// comparison can hold for some pair of concrete values drawn from the
// operands. The common case, where neither operand crosses the pole of the
// requested signedness, short-circuits to a single bound comparison; the
// remaining shapes conservatively answer true.

// MaySle reports whether a ≤ b can hold under signed interpretation for
// some a ∈ γ(m), b ∈ γ(o).
func (e1 Interval) MaySle(e2 Interval) bool {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "≤s")
	switch {
	case e1.bot || e2.bot:
		return false
	case e1.top || e2.top:
		return true
	case e1.crossesNorthPole() || e2.crossesNorthPole():
		return true
	}
	// [a, b] ≤ [c, d] can hold iff a ≤ d.
	return e1.lo.Sle(e2.hi)
}

// MaySlt reports whether a < b can hold under signed interpretation for
// some a ∈ γ(m), b ∈ γ(o).
func (e1 Interval) MaySlt(e2 Interval) bool {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "<s")
	switch {
	case e1.bot || e2.bot:
		return false
	case e1.top || e2.top:
		return true
	case e1.crossesNorthPole() || e2.crossesNorthPole():
		return true
	}
	return e1.lo.Slt(e2.hi)
}

// MayUle reports whether a ≤ b can hold under unsigned interpretation for
// some a ∈ γ(m), b ∈ γ(o).
func (e1 Interval) MayUle(e2 Interval) bool {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "≤u")
	switch {
	case e1.bot || e2.bot:
		return false
	case e1.top || e2.top:
		return true
	case e1.crossesSouthPole() || e2.crossesSouthPole():
		return true
	}
	return e1.lo.Ule(e2.hi)
}

// MayUlt reports whether a < b can hold under unsigned interpretation for
// some a ∈ γ(m), b ∈ γ(o).
func (e1 Interval) MayUlt(e2 Interval) bool {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "<u")
	switch {
	case e1.bot || e2.bot:
		return false
	case e1.top || e2.top:
		return true
	case e1.crossesSouthPole() || e2.crossesSouthPole():
		return true
	}
	return e1.lo.Ult(e2.hi)
}
