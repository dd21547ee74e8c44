package lattice

import (
	"log"
	"math"

	"github.com/sav-project/wrapped-intervals/analysis/apint"
)

// Interval is a member of a fixed-width signed interval lattice.
//
// A bounded interval consists of two width-bit bounds, lo and hi. The bounds
// are not required to satisfy lo ≤ hi: a "wrapped" interval whose stored
// bounds straddle a pole of the representation is a legal, more conservative
// representation of a value set that wraps around.
//
// The ⊤ member is distinguished from the bounded interval [MIN, MAX]. Any
// transfer function on ⊤ returns ⊤ directly, whereas [MIN, MAX] still
// participates in exact arithmetic (and may legitimately narrow again);
// Normalize collapses the latter into the former for presentation.
type Interval struct {
	element
	lo, hi apint.Value
	bot    bool
	top    bool
}

// Interval creates the interval [lo, hi] in the signed interval lattice of
// the given bit width. The bounds are taken modulo the width, so a
// numerically reversed pair denotes a wrapped interval.
func (elementFactory) Interval(width uint, lo, hi int64) Interval {
	lat := latFact.Interval(width)
	return Interval{
		element: element{lat},
		lo:      apint.FromInt64(width, lo),
		hi:      apint.FromInt64(width, hi),
	}
}

// IntervalConst creates the exact singleton [c, c] for an integer literal.
func (elementFactory) IntervalConst(width uint, c int64) Interval {
	return elFact.Interval(width, c, c)
}

// IntervalBounds creates an interval from two already-sized bound values.
func (elementFactory) IntervalBounds(lo, hi apint.Value) Interval {
	if lo.Width() != hi.Width() {
		log.Fatalf("Lattice error - interval bounds of mismatched widths %d and %d",
			lo.Width(), hi.Width())
	}
	lat := latFact.Interval(lo.Width())
	return Interval{element: element{lat}, lo: lo, hi: hi}
}

// IntervalTBool seeds a width-bit interval from a tri-state boolean:
// true becomes [1, 1], false becomes [0, 0] and the unknown boolean the
// unconstrained interval. The unknown case deliberately yields ⊤ rather
// than the tighter [0, 1]; the imprecision is documented behavior that
// fixed-point drivers were tuned against.
func (elementFactory) IntervalTBool(width uint, b TBool) Interval {
	lat := latFact.Interval(width)
	switch {
	case b.IsBot():
		return lat.Bot().Interval()
	case b.IsTrue():
		return elFact.IntervalConst(width, 1)
	case b.IsFalse():
		return elFact.IntervalConst(width, 0)
	}
	return lat.Top().Interval()
}

// Lattice retrieves the fixed-width interval lattice the interval belongs to.
func (e Interval) Lattice() Lattice {
	return e.lattice
}

// Interval safely converts an interval.
func (e Interval) Interval() Interval {
	return e
}

// Width returns the bit width of the interval bounds.
func (e Interval) Width() uint {
	return e.lattice.Interval().Width()
}

func (e Interval) width() uint {
	return e.lattice.Interval().width
}

// mk derives a bounded interval with the same lattice as the receiver.
func (e Interval) mk(lo, hi apint.Value) Interval {
	return Interval{element: e.element, lo: lo, hi: hi}
}

// IsBot checks whether the interval is the empty value set.
func (e Interval) IsBot() bool {
	return e.bot
}

// IsTop checks whether the interval is the unconstrained ⊤ member.
// Note that the bounded interval [MIN, MAX] is not ⊤ until normalized.
func (e Interval) IsTop() bool {
	return e.top
}

// IsSingleton checks whether the concretization is a single value.
func (e Interval) IsSingleton() bool {
	return !e.bot && !e.top && e.lo.Eq(e.hi)
}

// Low returns the lower bound. Panics for ⊥ and ⊤.
func (e Interval) Low() apint.Value {
	if e.bot || e.top {
		panic(errUnsupportedOperation)
	}
	return e.lo
}

// High returns the upper bound. Panics for ⊥ and ⊤.
func (e Interval) High() apint.Value {
	if e.bot || e.top {
		panic(errUnsupportedOperation)
	}
	return e.hi
}

// isFullRange checks for the bounded interval covering every representable
// value, [MIN, MAX]. It concretizes like ⊤ but still undergoes arithmetic.
func (e Interval) isFullRange() bool {
	return !e.bot && !e.top &&
		e.lo.Eq(apint.SignedMin(e.width())) &&
		e.hi.Eq(apint.SignedMax(e.width()))
}

// Normalize collapses [MIN, MAX] into ⊤. Used for presentation and before
// comparing analysis results, so that a bound that merely grew to cover the
// whole range carries no spurious information.
func (e Interval) Normalize() Interval {
	if e.isFullRange() {
		return e.lattice.Top().Interval()
	}
	return e
}

// crossesSouthPole checks whether the interval, read as an unsigned range,
// wraps through the max/zero discontinuity of the representation.
func (e Interval) crossesSouthPole() bool {
	return !e.bot && !e.top && e.lo.Ugt(e.hi)
}

// crossesNorthPole checks whether the interval, read as a signed range,
// wraps through the two's complement sign-flip discontinuity.
func (e Interval) crossesNorthPole() bool {
	return !e.bot && !e.top && e.lo.Sgt(e.hi)
}

func (e Interval) String() string {
	switch {
	case e.bot:
		return colorize.Element("⊥")
	case e.top:
		return colorize.Element("⊤")
	}
	return "[" + colorize.Element(e.lo.String()) +
		", " + colorize.Element(e.hi.String()) + "]"
}

// Height returns the size of the concretization, or -1 when it does not fit
// in an int.
func (e Interval) Height() int {
	switch {
	case e.bot:
		return 0
	case e.top:
		if e.width() >= 63 {
			return -1
		}
		return 1 << e.width()
	}
	// The unsigned span is wraparound-correct for wrapped intervals too.
	span := e.hi.Sub(e.lo).Uint64()
	if span >= uint64(math.MaxInt) {
		return -1
	}
	return int(span) + 1
}

// IsIdentical checks whether two intervals have syntactically identical
// representations. Stricter than Eq: a wrapped and a normalized
// representation of the same value set are equal but not identical.
func (e1 Interval) IsIdentical(e2 Interval) bool {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "≡")
	if e1.bot != e2.bot || e1.top != e2.top {
		return false
	}
	return e1.bot || e1.top || (e1.lo.Eq(e2.lo) && e1.hi.Eq(e2.hi))
}

// Leq computes m ⊑ o. Performs lattice dynamic type checking.
func (e1 Interval) Leq(e2 Element) bool {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊑")
	return e1.leq(e2)
}

// leq computes m ⊑ o as concretization inclusion, accounting for wraparound.
func (e1 Interval) leq(e2 Element) bool {
	switch e2 := e2.(type) {
	case Interval:
		switch {
		case e1.bot:
			return true
		case e2.bot:
			return false
		case e2.top || e2.isFullRange():
			return true
		case e1.top:
			return false
		}
		switch w1, w2 := e1.crossesNorthPole(), e2.crossesNorthPole(); {
		case !w1 && !w2:
			return e2.lo.Sle(e1.lo) && e1.hi.Sle(e2.hi)
		case !w1 && w2:
			// γ(e2) = [lo2, MAX] ∪ [MIN, hi2]; e1 must fit in one arm.
			return e2.lo.Sle(e1.lo) || e1.hi.Sle(e2.hi)
		case w1 && !w2:
			// A wrapped set only fits in the full range, handled above.
			return false
		default:
			return e2.lo.Sle(e1.lo) && e1.hi.Sle(e2.hi)
		}
	}
	panic(errInternal)
}

// Geq computes m ⊒ o. Performs lattice dynamic type checking.
func (e1 Interval) Geq(e2 Element) bool {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊒")
	return e1.geq(e2)
}

// geq computes m ⊒ o.
func (e1 Interval) geq(e2 Element) bool {
	switch e2 := e2.(type) {
	case Interval:
		return e2.leq(e1)
	}
	panic(errInternal)
}

// Eq computes m = o. Performs lattice dynamic type checking.
func (e1 Interval) Eq(e2 Element) bool {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "=")
	return e1.eq(e2)
}

// eq computes semantic equality, m = o under concretization.
func (e1 Interval) eq(e2 Element) bool {
	return e1.leq(e2) && e1.geq(e2)
}

// Join computes m ⊔ o. Performs lattice dynamic type checking.
func (e1 Interval) Join(e2 Element) Element {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊔")
	return e1.join(e2)
}

// join computes m ⊔ o. ⊥ is the identity and ⊤ the absorbing element.
// Bounded non-wrapped operands take the numeric hull; a wrapped operand has
// no hull in signed order, so the join falls back to the conservative
// superset rather than computing a wider but wrong bound.
func (e1 Interval) join(e2 Element) Element {
	switch e2 := e2.(type) {
	case Interval:
		switch {
		case e1.bot:
			return e2
		case e2.bot:
			return e1
		case e1.top || e2.top:
			return e1.lattice.Top()
		case e1.crossesNorthPole() || e2.crossesNorthPole():
			return e1.lattice.Top()
		}
		lo := e1.lo
		if e2.lo.Slt(lo) {
			lo = e2.lo
		}
		hi := e1.hi
		if e2.hi.Sgt(hi) {
			hi = e2.hi
		}
		return e1.mk(lo, hi)
	}
	panic(errInternal)
}

// Meet computes m ⊓ o. Performs lattice dynamic type checking.
func (e1 Interval) Meet(e2 Element) Element {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊓")
	return e1.meet(e2)
}

// meet computes m ⊓ o: the intersection of concretizations, ⊥ when the
// operands do not overlap. Wrapped shapes where the exact intersection is
// ambiguous fall back to an operand, which always over-approximates it.
func (e1 Interval) meet(e2 Element) Element {
	switch e2 := e2.(type) {
	case Interval:
		switch {
		case e1.bot || e2.bot:
			return e1.lattice.Bot()
		case e1.top:
			return e2
		case e2.top:
			return e1
		}
		switch w1, w2 := e1.crossesNorthPole(), e2.crossesNorthPole(); {
		case !w1 && !w2:
			if e1.hi.Slt(e2.lo) || e2.hi.Slt(e1.lo) {
				return e1.lattice.Bot()
			}
			lo := e1.lo
			if e2.lo.Sgt(lo) {
				lo = e2.lo
			}
			hi := e1.hi
			if e2.hi.Slt(hi) {
				hi = e2.hi
			}
			return e1.mk(lo, hi)
		case w1 && !w2:
			return e2
		case !w1 && w2:
			return e1
		default:
			if e1.leq(e2) {
				return e1
			}
			if e2.leq(e1) {
				return e2
			}
			return e1
		}
	}
	panic(errInternal)
}
