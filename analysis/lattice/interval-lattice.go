package lattice

import (
	"fmt"
	"log"

	"github.com/sav-project/wrapped-intervals/analysis/apint"
)

// IntervalLattice is the lattice of signed fixed-width intervals of one
// particular bit width. Intervals of different widths belong to different
// lattices, so mixing them in a lattice operation is caught by the dynamic
// lattice check.
type IntervalLattice struct {
	lattice
	width  uint
	signed bool
}

// intervalLattices caches one lattice instantiation per bit width.
var intervalLattices = map[uint]*IntervalLattice{}

// Interval yields the signed interval lattice for the given bit width.
func (latticeFactory) Interval(width uint) *IntervalLattice {
	if width == 0 || width > apint.MaxWidth {
		log.Fatalf("Lattice error - invalid interval bit width %d", width)
	}
	if lat, ok := intervalLattices[width]; ok {
		return lat
	}
	lat := &IntervalLattice{width: width, signed: true}
	intervalLattices[width] = lat
	return lat
}

// IntervalUnsigned is a documented extension point. The storage layer is
// unsigned-capable, but the transfer functions assume signed semantics
// throughout, so constructing an unsigned interval lattice is rejected.
func (latticeFactory) IntervalUnsigned(width uint) *IntervalLattice {
	log.Fatal("Lattice error - unsigned interval lattices are not supported")
	return nil
}

// Width returns the bit width of the lattice members.
func (l *IntervalLattice) Width() uint {
	return l.width
}

// Top yields the unconstrained interval of the lattice width.
func (l *IntervalLattice) Top() Element {
	return Interval{element: element{l}, top: true}
}

// Bot yields the empty interval of the lattice width.
func (l *IntervalLattice) Bot() Element {
	return Interval{element: element{l}, bot: true}
}

func (l *IntervalLattice) String() string {
	return "[" + colorize.Lattice(fmt.Sprintf("i%d", l.width)) +
		", " + colorize.Lattice(fmt.Sprintf("i%d", l.width)) + "]"
}

// Eq checks for equality with another lattice. Two interval lattices are
// equal exactly when their widths agree.
func (l1 *IntervalLattice) Eq(l2 Lattice) bool {
	switch l2 := l2.(type) {
	case *IntervalLattice:
		return l1.width == l2.width
	default:
		return false
	}
}

// Interval safely converts the interval lattice to IntervalLattice.
func (l1 *IntervalLattice) Interval() *IntervalLattice {
	return l1
}
