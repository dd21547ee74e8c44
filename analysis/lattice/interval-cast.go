package lattice

import (
	"log"

	"github.com/sav-project/wrapped-intervals/analysis/apint"
)

// Cast transfer functions. Casts never mutate the operand; they produce a
// member of the interval lattice of the target width.

// isTruncateOverflow checks whether the concretization exceeds the
// representable range of the narrower target width. Truncating such an
// interval can reorder and alias values unpredictably, so the result must
// not claim a tight range.
func (e Interval) isTruncateOverflow(width uint) bool {
	if e.crossesNorthPole() {
		return true
	}
	return e.lo.Slt(apint.SignedMin(width).SExt(e.width())) ||
		e.hi.Sgt(apint.SignedMax(width).SExt(e.width()))
}

// Trunc reinterprets the interval in a narrower width. On truncation
// overflow the result is the sound ⊤ of the target width and the flag is
// set.
func (e Interval) Trunc(width uint) (Interval, bool) {
	if width > e.width() {
		log.Fatalf("Lattice error - truncation of %d bits to %d bits", e.width(), width)
	}
	target := latFact.Interval(width)
	switch {
	case e.bot:
		return target.Bot().Interval(), false
	case e.top:
		return target.Top().Interval(), false
	case e.isTruncateOverflow(width):
		return target.Top().Interval(), true
	}
	return elFact.IntervalBounds(e.lo.Trunc(width), e.hi.Trunc(width)), false
}

// SExt reinterprets the interval in a wider width under the signed
// extension rule. Exact for non-wrapped operands; this direction cannot
// overflow.
func (e Interval) SExt(width uint) Interval {
	if width < e.width() {
		log.Fatalf("Lattice error - sign extension of %d bits to %d bits", e.width(), width)
	}
	target := latFact.Interval(width)
	switch {
	case e.bot:
		return target.Bot().Interval()
	case e.top:
		return target.Top().Interval()
	case e.crossesNorthPole():
		return target.Top().Interval()
	}
	return elFact.IntervalBounds(e.lo.SExt(width), e.hi.SExt(width))
}

// ZExt reinterprets the interval in a wider width under the zero extension
// rule. Exact for operands that do not cross the south pole; this direction
// cannot overflow.
func (e Interval) ZExt(width uint) Interval {
	if width < e.width() {
		log.Fatalf("Lattice error - zero extension of %d bits to %d bits", e.width(), width)
	}
	target := latFact.Interval(width)
	switch {
	case e.bot:
		return target.Bot().Interval()
	case e.top:
		return target.Top().Interval()
	case e.crossesSouthPole():
		// Every source pattern may occur; zero extension keeps them
		// within the unsigned range of the source width.
		return elFact.IntervalBounds(
			apint.Zero(width),
			apint.UnsignedMax(e.width()).ZExt(width),
		)
	}
	return elFact.IntervalBounds(e.lo.ZExt(width), e.hi.ZExt(width))
}
