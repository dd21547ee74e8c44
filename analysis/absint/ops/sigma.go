package ops

import (
	"go/token"

	L "github.com/sav-project/wrapped-intervals/analysis/lattice"
)

// PredicateForToken maps a comparison operator token and the signedness of
// its operand type to a guard predicate. The ok result is false for
// non-ordering operators.
func PredicateForToken(op token.Token, signed bool) (L.Predicate, bool) {
	switch op {
	case token.LSS:
		if signed {
			return L.PredSLT, true
		}
		return L.PredULT, true
	case token.LEQ:
		if signed {
			return L.PredSLE, true
		}
		return L.PredULE, true
	case token.GTR:
		if signed {
			return L.PredSGT, true
		}
		return L.PredUGT, true
	case token.GEQ:
		if signed {
			return L.PredSGE, true
		}
		return L.PredUGE, true
	}
	return 0, false
}

// NegateComparison maps a comparison operator to the operator holding on
// the opposite branch edge.
func NegateComparison(op token.Token) (token.Token, bool) {
	switch op {
	case token.LSS:
		return token.GEQ, true
	case token.LEQ:
		return token.GTR, true
	case token.GTR:
		return token.LEQ, true
	case token.GEQ:
		return token.LSS, true
	}
	return op, false
}

// FilterComparison narrows both operands of a comparison along the branch
// edge where it is known to hold. Operands whose shape precludes sound
// narrowing, and operators without a guard predicate, pass through
// unchanged.
func FilterComparison(op token.Token, signed bool, x, y L.Element) (L.Element, L.Element) {
	pred, ok := PredicateForToken(op, signed)
	if !ok {
		return x, y
	}
	xi, okX := ToInterval(x)
	yi, okY := ToInterval(y)
	if !okX || !okY {
		return x, y
	}
	nx, ny := L.Filter(pred, xi, yi)
	return nx, ny
}
