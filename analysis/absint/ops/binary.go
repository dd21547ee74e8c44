package ops

import (
	"go/token"
	"go/types"
	"log"

	L "github.com/sav-project/wrapped-intervals/analysis/lattice"
)

// BinOp applies the interval transfer function for the binary operator op
// at the given operand type. The boolean result reports arithmetic
// overflow: the exact result did not fit the operand width and the returned
// interval was conservatively widened. Signedness of the type selects the
// division, remainder and right-shift variants.
//
// Operands that are not intervals default to the unconstrained interval of
// the operand type.
func BinOp(x, y L.Element, op token.Token, typ types.Type) (L.Element, bool) {
	width, signed, ok := TypeWidth(typ)
	if !ok {
		log.Fatalf("BinOp on non-integer type %v", typ)
	}
	lat := L.Create().Lattice().Interval(width)
	xi, okX := ToInterval(x)
	yi, okY := ToInterval(y)
	if !okX || !okY {
		return lat.Top(), false
	}

	switch op {
	case token.ADD:
		return xi.Add(yi)
	case token.SUB:
		return xi.Sub(yi)
	case token.MUL:
		return xi.Mul(yi)
	case token.QUO:
		if signed {
			return xi.SDiv(yi)
		}
		return xi.UDiv(yi)
	case token.REM:
		if signed {
			return xi.SRem(yi)
		}
		return xi.URem(yi)
	case token.AND:
		return xi.And(yi), false
	case token.OR:
		return xi.Or(yi), false
	case token.XOR:
		return xi.Xor(yi), false
	case token.AND_NOT:
		// No bit-bound helper for the combined operation; over-approximate.
		return lat.Top(), false
	case token.SHL:
		return xi.Shl(yi)
	case token.SHR:
		if signed {
			return xi.AShr(yi)
		}
		return xi.LShr(yi)
	}
	log.Fatalf("BinOp on non-arithmetic operator %v", op)
	return nil, false
}
