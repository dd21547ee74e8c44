package lattice

const (
	tbBot = iota
	tbFalse
	tbTrue
	tbTop
)

// TBool is a member of the tri-state boolean lattice.
type TBool struct {
	element
	kind uint8
}

// TBool creates a known member of the tri-state boolean lattice.
func (elementFactory) TBool(b bool) TBool {
	if b {
		return TBool{kind: tbTrue}
	}
	return TBool{kind: tbFalse}
}

// Lattice retrieves the tri-state boolean lattice for any tri-state boolean.
func (TBool) Lattice() Lattice {
	return tBoolLattice
}

// TBool safely converts a tri-state boolean.
func (e TBool) TBool() TBool {
	return e
}

// IsBot is true for the unreachable boolean.
func (e TBool) IsBot() bool {
	return e.kind == tbBot
}

// IsTop is true for the unknown boolean.
func (e TBool) IsTop() bool {
	return e.kind == tbTop
}

// IsTrue is true for the known true member only.
func (e TBool) IsTrue() bool {
	return e.kind == tbTrue
}

// IsFalse is true for the known false member only.
func (e TBool) IsFalse() bool {
	return e.kind == tbFalse
}

func (e TBool) String() string {
	switch e.kind {
	case tbBot:
		return colorize.Element("⊥")
	case tbFalse:
		return colorize.Element("false")
	case tbTrue:
		return colorize.Element("true")
	case tbTop:
		return colorize.Element("⊤")
	}
	panic(errInternal)
}

// Height is 0 for ⊥, 1 for the known members and 2 for ⊤.
func (e TBool) Height() int {
	switch e.kind {
	case tbBot:
		return 0
	case tbTop:
		return 2
	}
	return 1
}

// Leq computes m ⊑ o. Performs lattice dynamic type checking.
func (e1 TBool) Leq(e2 Element) bool {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊑")
	return e1.leq(e2)
}

// leq computes m ⊑ o.
func (e1 TBool) leq(e2 Element) bool {
	switch e2 := e2.(type) {
	case TBool:
		return e1.kind == tbBot || e2.kind == tbTop || e1.kind == e2.kind
	}
	panic(errInternal)
}

// Geq computes m ⊒ o. Performs lattice dynamic type checking.
func (e1 TBool) Geq(e2 Element) bool {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊒")
	return e1.geq(e2)
}

// geq computes m ⊒ o.
func (e1 TBool) geq(e2 Element) bool {
	switch e2 := e2.(type) {
	case TBool:
		return e2.leq(e1)
	}
	panic(errInternal)
}

// Eq computes m = o. Performs lattice dynamic type checking.
func (e1 TBool) Eq(e2 Element) bool {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "=")
	return e1.eq(e2)
}

// eq computes m = o.
func (e1 TBool) eq(e2 Element) bool {
	return e1.leq(e2) && e1.geq(e2)
}

// Join computes m ⊔ o. Performs lattice dynamic type checking.
func (e1 TBool) Join(e2 Element) Element {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊔")
	return e1.join(e2)
}

// join computes m ⊔ o.
func (e1 TBool) join(e2 Element) Element {
	switch e2 := e2.(type) {
	case TBool:
		switch {
		case e1.kind == tbBot:
			return e2
		case e2.kind == tbBot:
			return e1
		case e1.kind == e2.kind:
			return e1
		}
		return tBoolLattice.Top()
	}
	panic(errInternal)
}

// Meet computes m ⊓ o. Performs lattice dynamic type checking.
func (e1 TBool) Meet(e2 Element) Element {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊓")
	return e1.meet(e2)
}

// meet computes m ⊓ o.
func (e1 TBool) meet(e2 Element) Element {
	switch e2 := e2.(type) {
	case TBool:
		switch {
		case e1.kind == tbTop:
			return e2
		case e2.kind == tbTop:
			return e1
		case e1.kind == e2.kind:
			return e1
		}
		return tBoolLattice.Bot()
	}
	panic(errInternal)
}
