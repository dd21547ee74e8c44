package lattice

// TBoolLattice is the flat lattice of tri-state booleans:
//
//	    ⊤
//	  /   \
//	false true
//	  \   /
//	    ⊥
//
// The ⊤ member is read as "unknown". It seeds unconstrained boolean-valued
// intervals.
type TBoolLattice struct {
	lattice
}

// tBoolLattice is a singleton instantiation of the tri-state boolean lattice.
var tBoolLattice = &TBoolLattice{}

// TBool yields the tri-state boolean lattice.
func (latticeFactory) TBool() *TBoolLattice {
	return tBoolLattice
}

// Top yields the unknown boolean.
func (*TBoolLattice) Top() Element {
	return TBool{kind: tbTop}
}

// Bot yields the unreachable boolean.
func (*TBoolLattice) Bot() Element {
	return TBool{kind: tbBot}
}

func (*TBoolLattice) String() string {
	return colorize.Lattice("TBool")
}

// Eq checks for equality with another lattice.
func (l1 *TBoolLattice) Eq(l2 Lattice) bool {
	_, ok := l2.(*TBoolLattice)
	return ok
}

// TBool safely converts the tri-state boolean lattice to TBoolLattice.
func (l1 *TBoolLattice) TBool() *TBoolLattice {
	return l1
}
