package lattice

import (
	"github.com/sav-project/wrapped-intervals/analysis/apint"
)

// Bitwise transfer functions. Naive bound extension is unsound for bitwise
// operators, so And/Or/Xor reason about the bit patterns of the bound
// extremes: each operand is split at the sign discontinuity into spans that
// are contiguous in unsigned order, the unsigned bit-bound algorithms
// (Hacker's Delight, ch. 4-3) run per span pair, and the span results are
// joined. Unanalyzable operand shapes fall back to ⊤.

// uspan is a span of bit patterns contiguous in unsigned order.
type uspan struct {
	lo, hi uint64
}

// signSplit splits a bounded, non-north-crossing interval into at most two
// unsigned-contiguous spans: the negative patterns and the non-negative ones.
func (e Interval) signSplit() []uspan {
	if e.lo.Negative() && !e.hi.Negative() {
		return []uspan{
			{e.lo.Uint64(), apint.UnsignedMax(e.width()).Uint64()},
			{0, e.hi.Uint64()},
		}
	}
	return []uspan{{e.lo.Uint64(), e.hi.Uint64()}}
}

// logicalBitwise evaluates a logical bitwise operator through its unsigned
// minimum and maximum bit-bound functions.
func (e1 Interval) logicalBitwise(e2 Interval, minf, maxf func(a, b, c, d, m uint64) uint64) Interval {
	if r, done := e1.binShortcut(e2); done {
		return r
	}
	if e1.crossesNorthPole() || e2.crossesNorthPole() {
		return e1.lattice.Top().Interval()
	}
	w := e1.width()
	msb := uint64(1) << (w - 1)
	res := e1.lattice.Bot().Interval()
	for _, p1 := range e1.signSplit() {
		for _, p2 := range e2.signSplit() {
			lo := minf(p1.lo, p1.hi, p2.lo, p2.hi, msb)
			hi := maxf(p1.lo, p1.hi, p2.lo, p2.hi, msb)
			part := e1.mk(apint.FromUint64(w, lo), apint.FromUint64(w, hi))
			res = res.join(part).Interval()
		}
	}
	return res
}

// And computes the interval of conjunctions x & y for x ∈ m, y ∈ o.
func (e1 Interval) And(e2 Interval) Interval {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "&")
	return e1.logicalBitwise(e2, minAnd, maxAnd)
}

// Or computes the interval of disjunctions x | y for x ∈ m, y ∈ o.
func (e1 Interval) Or(e2 Interval) Interval {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "|")
	return e1.logicalBitwise(e2, minOr, maxOr)
}

// Xor computes the interval of exclusive disjunctions x ^ y for x ∈ m, y ∈ o.
func (e1 Interval) Xor(e2 Interval) Interval {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "^")
	return e1.logicalBitwise(e2, minXor, maxXor)
}

// shiftAmount validates that the shift operand denotes in-range shift
// amounts and unpacks them.
func (e Interval) shiftAmount() (lo, hi uint, ok bool) {
	if e.crossesSouthPole() || e.hi.Uint64() >= uint64(e.width()) {
		return 0, 0, false
	}
	return uint(e.lo.Uint64()), uint(e.hi.Uint64()), true
}

// Shl computes the interval of shifts x << y for x ∈ m, y ∈ o. A shifted-out
// sign change is an overflow and widens the result.
func (e1 Interval) Shl(e2 Interval) (Interval, bool) {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "<<")
	if r, done := e1.binShortcut(e2); done {
		return r, false
	}
	c, d, ok := e2.shiftAmount()
	if !ok || e1.crossesNorthPole() {
		return e1.lattice.Top().Interval(), false
	}
	w := e1.width()
	a, b := e1.lo.Int64(), e1.hi.Int64()
	lo, hi := int64(0), int64(0)
	for i, operands := range [4]struct {
		v int64
		k uint
	}{{a, c}, {a, d}, {b, c}, {b, d}} {
		s, ok := apint.ShlInt64(operands.v, operands.k)
		if !ok || !apint.FitsSigned(w, s) {
			return e1.lattice.Top().Interval(), true
		}
		if i == 0 {
			lo, hi = s, s
		} else {
			lo, hi = apint.Min(lo, s), apint.Max(hi, s)
		}
	}
	return e1.mk(apint.FromInt64(w, lo), apint.FromInt64(w, hi)), false
}

// LShr computes the interval of logical right shifts x >> y for x ∈ m,
// y ∈ o, shifting in zero bits. Cannot overflow.
func (e1 Interval) LShr(e2 Interval) (Interval, bool) {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), ">>u")
	if r, done := e1.binShortcut(e2); done {
		return r, false
	}
	c, d, ok := e2.shiftAmount()
	if !ok || e1.crossesSouthPole() {
		return e1.lattice.Top().Interval(), false
	}
	w := e1.width()
	// Logical right shift is antitone in the shift amount.
	return e1.mk(
		apint.FromUint64(w, e1.lo.Uint64()>>d),
		apint.FromUint64(w, e1.hi.Uint64()>>c),
	), false
}

// AShr computes the interval of arithmetic right shifts x >> y for x ∈ m,
// y ∈ o, replicating the sign bit. Cannot overflow.
func (e1 Interval) AShr(e2 Interval) (Interval, bool) {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), ">>s")
	if r, done := e1.binShortcut(e2); done {
		return r, false
	}
	c, d, ok := e2.shiftAmount()
	if !ok || e1.crossesNorthPole() {
		return e1.lattice.Top().Interval(), false
	}
	w := e1.width()
	a, b := e1.lo.Int64(), e1.hi.Int64()
	// Arithmetic shifting moves negative values up and positive values down.
	lo, hi := a>>d, b>>c
	if a < 0 {
		lo = a >> c
	}
	if b < 0 {
		hi = b >> d
	}
	return e1.mk(apint.FromInt64(w, lo), apint.FromInt64(w, hi)), false
}

// Unsigned bit-bound algorithms over width-masked values; m is the mask of
// the most significant bit of the width.

func minOr(a, b, c, d, m uint64) uint64 {
	for ; m != 0; m >>= 1 {
		if ^a&c&m != 0 {
			if temp := (a | m) &^ (m - 1); temp <= b {
				a = temp
				break
			}
		} else if a&^c&m != 0 {
			if temp := (c | m) &^ (m - 1); temp <= d {
				c = temp
				break
			}
		}
	}
	return a | c
}

func maxOr(a, b, c, d, m uint64) uint64 {
	for ; m != 0; m >>= 1 {
		if b&d&m != 0 {
			if temp := (b - m) | (m - 1); temp >= a {
				b = temp
				break
			}
			if temp := (d - m) | (m - 1); temp >= c {
				d = temp
				break
			}
		}
	}
	return b | d
}

func minAnd(a, b, c, d, m uint64) uint64 {
	for ; m != 0; m >>= 1 {
		if ^a&^c&m != 0 {
			if temp := (a | m) &^ (m - 1); temp <= b {
				a = temp
				break
			}
			if temp := (c | m) &^ (m - 1); temp <= d {
				c = temp
				break
			}
		}
	}
	return a & c
}

func maxAnd(a, b, c, d, m uint64) uint64 {
	for ; m != 0; m >>= 1 {
		if b&^d&m != 0 {
			if temp := (b &^ m) | (m - 1); temp >= a {
				b = temp
				break
			}
		} else if ^b&d&m != 0 {
			if temp := (d &^ m) | (m - 1); temp >= c {
				d = temp
				break
			}
		}
	}
	return b & d
}

func minXor(a, b, c, d, m uint64) uint64 {
	for ; m != 0; m >>= 1 {
		if ^a&c&m != 0 {
			if temp := (a | m) &^ (m - 1); temp <= b {
				a = temp
			}
		} else if a&^c&m != 0 {
			if temp := (c | m) &^ (m - 1); temp <= d {
				c = temp
			}
		}
	}
	return a ^ c
}

func maxXor(a, b, c, d, m uint64) uint64 {
	for ; m != 0; m >>= 1 {
		if b&d&m != 0 {
			if temp := (b - m) | (m - 1); temp >= a {
				b = temp
			} else if temp := (d - m) | (m - 1); temp >= c {
				d = temp
			}
		}
	}
	return b ^ d
}
