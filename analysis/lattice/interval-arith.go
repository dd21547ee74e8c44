package lattice

import (
	"github.com/sav-project/wrapped-intervals/analysis/apint"
)

// Arithmetic transfer functions. Each takes the receiver and argument as
// operand intervals and computes a freshly allocated result; operands are
// never mutated. The boolean result reports arithmetic overflow: the exact
// mathematical result did not fit the lattice width and the returned
// interval was conservatively widened instead of silently wrapping.
//
// ⊥ operands propagate ⊥ and ⊤ operands propagate ⊤; the bounded interval
// [MIN, MAX] deliberately does not shortcut and undergoes exact arithmetic.

// binShortcut handles the ⊥/⊤ operand cases shared by all binary transfer
// functions.
func (e1 Interval) binShortcut(e2 Interval) (Interval, bool) {
	switch {
	case e1.bot:
		return e1, true
	case e2.bot:
		return e2, true
	case e1.top:
		return e1, true
	case e2.top:
		return e2, true
	}
	return Interval{}, false
}

// Add computes the interval of sums x + y for x ∈ m, y ∈ o.
func (e1 Interval) Add(e2 Interval) (Interval, bool) {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "+")
	if r, done := e1.binShortcut(e2); done {
		return r, false
	}
	if e1.crossesNorthPole() || e2.crossesNorthPole() {
		return e1.lattice.Top().Interval(), false
	}
	w := e1.width()
	lo, ok1 := apint.AddInt64(e1.lo.Int64(), e2.lo.Int64())
	hi, ok2 := apint.AddInt64(e1.hi.Int64(), e2.hi.Int64())
	if !ok1 || !ok2 || !apint.FitsSigned(w, lo) || !apint.FitsSigned(w, hi) {
		return e1.lattice.Top().Interval(), true
	}
	return e1.mk(apint.FromInt64(w, lo), apint.FromInt64(w, hi)), false
}

// Sub computes the interval of differences x - y for x ∈ m, y ∈ o.
func (e1 Interval) Sub(e2 Interval) (Interval, bool) {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "-")
	if r, done := e1.binShortcut(e2); done {
		return r, false
	}
	if e1.crossesNorthPole() || e2.crossesNorthPole() {
		return e1.lattice.Top().Interval(), false
	}
	w := e1.width()
	lo, ok1 := apint.SubInt64(e1.lo.Int64(), e2.hi.Int64())
	hi, ok2 := apint.SubInt64(e1.hi.Int64(), e2.lo.Int64())
	if !ok1 || !ok2 || !apint.FitsSigned(w, lo) || !apint.FitsSigned(w, hi) {
		return e1.lattice.Top().Interval(), true
	}
	return e1.mk(apint.FromInt64(w, lo), apint.FromInt64(w, hi)), false
}

// Mul computes the interval of products x * y for x ∈ m, y ∈ o by corner
// evaluation in 64-bit precision.
func (e1 Interval) Mul(e2 Interval) (Interval, bool) {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "*")
	if r, done := e1.binShortcut(e2); done {
		return r, false
	}
	if e1.crossesNorthPole() || e2.crossesNorthPole() {
		return e1.lattice.Top().Interval(), false
	}
	w := e1.width()
	a, b := e1.lo.Int64(), e1.hi.Int64()
	c, d := e2.lo.Int64(), e2.hi.Int64()
	lo, hi := int64(0), int64(0)
	for i, operands := range [4][2]int64{{a, c}, {a, d}, {b, c}, {b, d}} {
		p, ok := apint.MulInt64(operands[0], operands[1])
		if !ok {
			return e1.lattice.Top().Interval(), true
		}
		if i == 0 {
			lo, hi = p, p
		} else {
			lo, hi = apint.Min(lo, p), apint.Max(hi, p)
		}
	}
	if !apint.FitsSigned(w, lo) || !apint.FitsSigned(w, hi) {
		return e1.lattice.Top().Interval(), true
	}
	return e1.mk(apint.FromInt64(w, lo), apint.FromInt64(w, hi)), false
}

// SDiv computes the interval of quotients x / y under signed interpretation.
// A divisor whose concretization contains zero yields the sound ⊤ fallback
// rather than a runtime fault.
func (e1 Interval) SDiv(e2 Interval) (Interval, bool) {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "/s")
	if r, done := e1.binShortcut(e2); done {
		return r, false
	}
	if e1.crossesNorthPole() || e2.crossesNorthPole() {
		return e1.lattice.Top().Interval(), false
	}
	c, d := e2.lo.Int64(), e2.hi.Int64()
	if c <= 0 && 0 <= d {
		return e1.lattice.Top().Interval(), false
	}
	w := e1.width()
	a, b := e1.lo.Int64(), e1.hi.Int64()
	lo, hi := int64(0), int64(0)
	for i, operands := range [4][2]int64{{a, c}, {a, d}, {b, c}, {b, d}} {
		q, ok := apint.DivInt64(operands[0], operands[1])
		if !ok {
			return e1.lattice.Top().Interval(), true
		}
		if i == 0 {
			lo, hi = q, q
		} else {
			lo, hi = apint.Min(lo, q), apint.Max(hi, q)
		}
	}
	if !apint.FitsSigned(w, lo) || !apint.FitsSigned(w, hi) {
		// MIN / -1 is the only overflowing quotient.
		return e1.lattice.Top().Interval(), true
	}
	return e1.mk(apint.FromInt64(w, lo), apint.FromInt64(w, hi)), false
}

// UDiv computes the interval of quotients x / y under unsigned
// interpretation. Unsigned division of bounds cannot overflow.
func (e1 Interval) UDiv(e2 Interval) (Interval, bool) {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "/u")
	if r, done := e1.binShortcut(e2); done {
		return r, false
	}
	if e1.crossesSouthPole() || e2.crossesSouthPole() {
		return e1.lattice.Top().Interval(), false
	}
	if e2.lo.IsZero() {
		return e1.lattice.Top().Interval(), false
	}
	w := e1.width()
	a, b := e1.lo.Uint64(), e1.hi.Uint64()
	c, d := e2.lo.Uint64(), e2.hi.Uint64()
	// Unsigned division is monotone in both operands.
	return e1.mk(apint.FromUint64(w, a/d), apint.FromUint64(w, b/c)), false
}

// SRem computes the interval of remainders x % y under signed
// interpretation, with the sign of the result following the dividend.
// Mirrors SDiv's zero-divisor handling.
func (e1 Interval) SRem(e2 Interval) (Interval, bool) {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "%s")
	if r, done := e1.binShortcut(e2); done {
		return r, false
	}
	if e1.crossesNorthPole() || e2.crossesNorthPole() {
		return e1.lattice.Top().Interval(), false
	}
	c, d := e2.lo.Int64(), e2.hi.Int64()
	if c <= 0 && 0 <= d {
		return e1.lattice.Top().Interval(), false
	}
	w := e1.width()
	a, b := e1.lo.Int64(), e1.hi.Int64()
	// The remainder magnitude is strictly bounded by the divisor magnitude.
	m := int64(apint.Max(apint.AbsUint64(c), apint.AbsUint64(d)) - 1)
	var lo, hi int64
	switch {
	case a >= 0:
		lo, hi = 0, apint.Min(b, m)
	case b <= 0:
		lo, hi = apint.Max(a, -m), 0
	default:
		lo, hi = apint.Max(a, -m), apint.Min(b, m)
	}
	return e1.mk(apint.FromInt64(w, lo), apint.FromInt64(w, hi)), false
}

// URem computes the interval of remainders x % y under unsigned
// interpretation. Mirrors UDiv's zero-divisor handling.
func (e1 Interval) URem(e2 Interval) (Interval, bool) {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "%u")
	if r, done := e1.binShortcut(e2); done {
		return r, false
	}
	if e1.crossesSouthPole() || e2.crossesSouthPole() {
		return e1.lattice.Top().Interval(), false
	}
	if e2.lo.IsZero() {
		return e1.lattice.Top().Interval(), false
	}
	// Dividend entirely below the smallest divisor passes through unchanged.
	if e1.hi.Ult(e2.lo) {
		return e1, false
	}
	w := e1.width()
	hi := apint.Min(e1.hi.Uint64(), e2.hi.Uint64()-1)
	return e1.mk(apint.FromUint64(w, 0), apint.FromUint64(w, hi)), false
}
