package lattice

import (
	"errors"
	"fmt"

	"github.com/sav-project/wrapped-intervals/utils"

	"github.com/fatih/color"
)

var opts = utils.Opts()

var colorize = struct {
	Lattice func(...interface{}) string
	Element func(...interface{}) string
	Const   func(...interface{}) string
}{
	Lattice: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgHiBlue).SprintFunc())(is...)
	},
	Element: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgCyan).SprintFunc())(is...)
	},
	Const: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgHiWhite).SprintFunc())(is...)
	},
}

var (
	errUnsupportedTypeConversion = errors.New("UnsupportedTypeConversion")
	errUnsupportedOperation      = errors.New("UnsupportedOperationError")
	errInternal                  = errors.New("internal error")
	errPatternMatch              = func(v interface{}) error {
		return fmt.Errorf("invalid pattern match: %v %T", v, v)
	}
)

// Element is the interface of all lattice members.
//
// The lattice operations come in two flavors: the exported methods
// dynamically check that both operands belong to the same lattice
// (aborting on driver bugs such as mixing intervals of different widths),
// while the unexported ones skip the check and may only be used under the
// assumption of lattice type safety.
//
// There is deliberately no n-ary join on this surface. The interval domain
// is a plain lattice, so binary join is complete, and making a generalized
// join unrepresentable beats asserting against it at run time.
type Element interface {
	// Type conversion API. Conversion to an inhabited type other than the
	// element's own fails loudly; use the checked queries in absint/ops to
	// test capabilities without panicking.
	Interval() Interval
	TBool() TBool

	Lattice() Lattice

	// External API for lattice element operations.
	// They dynamically perform lattice type checking.
	Leq(Element) bool
	Geq(Element) bool
	Eq(Element) bool
	Join(Element) Element
	Meet(Element) Element

	// Internal lattice element operations, skipping lattice type checking.
	leq(Element) bool
	geq(Element) bool
	eq(Element) bool
	join(Element) Element
	meet(Element) Element

	// Representational components
	String() string
	// Encodes the distance from the bottom of the lattice
	// to the element that calls this method.
	Height() int
}

type element struct {
	lattice Lattice
}

func (e element) Lattice() Lattice {
	return e.lattice
}

func (element) Interval() Interval {
	panic(errUnsupportedTypeConversion)
}

func (element) TBool() TBool {
	panic(errUnsupportedTypeConversion)
}

func (element) Height() int {
	panic(errUnsupportedOperation)
}
