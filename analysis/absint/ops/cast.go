package ops

import (
	"go/types"
	"log"

	L "github.com/sav-project/wrapped-intervals/analysis/lattice"
)

// Convert applies the interval transfer function for a conversion between
// two integer types: truncation toward a narrower width, sign or zero
// extension toward a wider one. The boolean result reports truncation
// overflow.
func Convert(x L.Element, from, to types.Type) (L.Element, bool) {
	fromWidth, fromSigned, okFrom := TypeWidth(from)
	toWidth, _, okTo := TypeWidth(to)
	if !okFrom || !okTo {
		log.Fatalf("Convert between non-integer types %v and %v", from, to)
	}
	xi, ok := ToInterval(x)
	if !ok {
		return L.Create().Lattice().Interval(toWidth).Top(), false
	}
	switch {
	case toWidth < fromWidth:
		return xi.Trunc(toWidth)
	case fromSigned:
		return xi.SExt(toWidth), false
	default:
		return xi.ZExt(toWidth), false
	}
}
