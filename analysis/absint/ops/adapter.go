// Package ops connects the interval lattice to the program entities of a
// go/ssa based fixed-point driver: it constructs lattice elements from SSA
// values and types, and dispatches binary, comparison and conversion
// transfer functions keyed on go/token opcodes.
package ops

import (
	"go/types"

	L "github.com/sav-project/wrapped-intervals/analysis/lattice"

	"golang.org/x/tools/go/ssa"
)

// TypeWidth maps a basic integer type to the bit width and signedness of
// its values. The ok result is false for non-integer types.
func TypeWidth(t types.Type) (width uint, signed bool, ok bool) {
	basic, isBasic := t.Underlying().(*types.Basic)
	if !isBasic {
		return 0, false, false
	}
	switch basic.Kind() {
	case types.Int, types.Int64, types.UntypedInt:
		return 64, true, true
	case types.Int32, types.UntypedRune:
		return 32, true, true
	case types.Int16:
		return 16, true, true
	case types.Int8:
		return 8, true, true
	case types.Uint, types.Uint64, types.Uintptr:
		return 64, false, true
	case types.Uint32:
		return 32, false, true
	case types.Uint16:
		return 16, false, true
	case types.Uint8:
		return 8, false, true
	}
	return 0, false, false
}

// TopForType constructs the unconstrained interval for a symbolic,
// not-yet-bounded quantity of the given type. Unsigned integer types share
// the signed interval lattice of their width; signedness only selects
// operation variants at dispatch points.
func TopForType(t types.Type) (L.Element, bool) {
	width, _, ok := TypeWidth(t)
	if !ok {
		return nil, false
	}
	return L.Create().Lattice().Interval(width).Top(), true
}

// ConstInterval constructs the exact singleton interval for an SSA integer
// constant.
func ConstInterval(c *ssa.Const) (L.Element, bool) {
	width, signed, ok := TypeWidth(c.Type())
	if !ok {
		return nil, false
	}
	v := c.Int64()
	if !signed {
		v = int64(c.Uint64())
	}
	return L.Create().Element().IntervalConst(width, v), true
}

// ValueForSSA constructs the interval abstraction of an SSA value: a
// singleton for constants and the unconstrained interval otherwise.
func ValueForSSA(v ssa.Value) (L.Element, bool) {
	if c, isConst := v.(*ssa.Const); isConst {
		return ConstInterval(c)
	}
	return TopForType(v.Type())
}

// TBoolInterval seeds a width-bit interval from a tri-state boolean
// abstraction of a boolean-valued expression.
func TBoolInterval(width uint, b L.TBool) L.Element {
	return L.Create().Element().IntervalTBool(width, b)
}

// ToInterval performs the capability query for a generic abstract value
// handle: it reports whether the handle is an interval without panicking.
func ToInterval(e L.Element) (L.Interval, bool) {
	i, ok := e.(L.Interval)
	return i, ok
}

// ToTBool performs the capability query for the tri-state boolean domain.
func ToTBool(e L.Element) (L.TBool, bool) {
	b, ok := e.(L.TBool)
	return b, ok
}
