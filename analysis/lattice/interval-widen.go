package lattice

import (
	"github.com/benbjohnson/immutable"

	"github.com/sav-project/wrapped-intervals/analysis/apint"
)

// WideningStrategy selects how Widen extrapolates an unstable bound.
type WideningStrategy int

const (
	// NoWiden computes the plain join. It does not guarantee termination on
	// unbounded loops and is intended for bounded analyses and testing.
	NoWiden WideningStrategy = iota
	// Cousot76 jumps an unstable bound straight to the representable
	// extreme of its direction.
	Cousot76
	// JumpSet jumps an unstable bound to the nearest qualifying threshold
	// from a precollected candidate set, falling back to the representable
	// extreme when no threshold qualifies.
	JumpSet
)

// Widening is the widening configuration of the domain, fixed at
// construction time. The threshold set is immutable and may be shared
// between analyses.
type Widening struct {
	strategy   WideningStrategy
	thresholds *immutable.SortedMap[int64, struct{}]
}

// NewWidening creates a widening configuration. Thresholds are only
// consulted by the JumpSet strategy; they are typically mined from the
// constants of the analyzed program by an external collector.
func NewWidening(strategy WideningStrategy, thresholds ...int64) Widening {
	m := immutable.NewSortedMap[int64, struct{}](nil)
	for _, t := range thresholds {
		m = m.Set(t, struct{}{})
	}
	return Widening{strategy: strategy, thresholds: m}
}

// floor returns the greatest threshold ≤ v representable in width bits.
func (w Widening) floor(v int64, width uint) (int64, bool) {
	found, best := false, int64(0)
	for it := w.thresholds.Iterator(); !it.Done(); {
		t, _, _ := it.Next()
		if t > v {
			break
		}
		if !apint.FitsSigned(width, t) {
			continue
		}
		found, best = true, t
	}
	return best, found
}

// ceiling returns the least threshold ≥ v representable in width bits.
func (w Widening) ceiling(v int64, width uint) (int64, bool) {
	for it := w.thresholds.Iterator(); !it.Done(); {
		t, _, _ := it.Next()
		if !apint.FitsSigned(width, t) {
			continue
		}
		if t >= v {
			return t, true
		}
	}
	return 0, false
}

// Widen extrapolates the growth from the previous iterate old to the new
// iterate new, guaranteeing that a monotonically growing interval sequence
// stabilizes in finitely many steps. Invoked at loop heads by the
// fixed-point driver, never inside transfer functions. Performs lattice
// dynamic type checking.
func (w Widening) Widen(old, new Interval) Interval {
	checkLatticeMatch(old.Lattice(), new.Lattice(), "∇")
	switch {
	case old.bot:
		return new
	case new.leq(old):
		return old
	}
	joined := old.join(new).Interval()
	if w.strategy == NoWiden {
		return joined
	}
	if joined.top || old.top ||
		old.crossesNorthPole() || joined.crossesNorthPole() {
		return old.lattice.Top().Interval()
	}
	width := old.width()
	lo := old.lo
	if joined.lo.Slt(old.lo) {
		lo = apint.SignedMin(width)
		if w.strategy == JumpSet {
			if t, ok := w.floor(joined.lo.Int64(), width); ok {
				lo = apint.FromInt64(width, t)
			}
		}
	}
	hi := old.hi
	if joined.hi.Sgt(old.hi) {
		hi = apint.SignedMax(width)
		if w.strategy == JumpSet {
			if t, ok := w.ceiling(joined.hi.Int64(), width); ok {
				hi = apint.FromInt64(width, t)
			}
		}
	}
	return old.mk(lo, hi).Normalize()
}
