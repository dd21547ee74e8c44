// Package apint implements fixed-width two's complement integer values of
// arbitrary bit widths between 1 and 64. Values carry their width, and all
// arithmetic wraps around the representable range of that width. The package
// is the numeric substrate of the interval lattice; interpretation of a bit
// pattern as signed or unsigned is chosen per operation, not per value.
package apint

import (
	"fmt"
	"strconv"
)

// MaxWidth is the largest supported bit width.
const MaxWidth = 64

// Value is a fixed-width two's complement integer. The raw bits are kept
// masked to the width at all times. The zero Value is invalid; construct
// values through the From* constructors.
type Value struct {
	width uint
	bits  uint64
}

func mask(width uint) uint64 {
	return ^uint64(0) >> (64 - width)
}

func checkWidth(width uint) {
	if width == 0 || width > MaxWidth {
		panic(fmt.Sprintf("invalid bit width %d", width))
	}
}

func checkSameWidth(v1, v2 Value) {
	if v1.width != v2.width {
		panic(fmt.Sprintf("width mismatch: %d and %d bits", v1.width, v2.width))
	}
}

// FromUint64 creates a width-bit value from the low width bits of v.
func FromUint64(width uint, v uint64) Value {
	checkWidth(width)
	return Value{width, v & mask(width)}
}

// FromInt64 creates a width-bit value from the low width bits of v.
func FromInt64(width uint, v int64) Value {
	return FromUint64(width, uint64(v))
}

// Zero is the width-bit value 0.
func Zero(width uint) Value {
	return FromUint64(width, 0)
}

// One is the width-bit value 1.
func One(width uint) Value {
	return FromUint64(width, 1)
}

// SignedMin is the smallest width-bit value under signed interpretation,
// i.e. the bit pattern 10...0.
func SignedMin(width uint) Value {
	checkWidth(width)
	return Value{width, uint64(1) << (width - 1)}
}

// SignedMax is the largest width-bit value under signed interpretation,
// i.e. the bit pattern 01...1.
func SignedMax(width uint) Value {
	checkWidth(width)
	return Value{width, mask(width) >> 1}
}

// UnsignedMax is the largest width-bit value under unsigned interpretation,
// i.e. the bit pattern 1...1.
func UnsignedMax(width uint) Value {
	checkWidth(width)
	return Value{width, mask(width)}
}

// Width returns the bit width of the value.
func (v Value) Width() uint {
	return v.width
}

// Uint64 returns the bit pattern zero-extended to 64 bits.
func (v Value) Uint64() uint64 {
	return v.bits
}

// Int64 returns the bit pattern sign-extended to 64 bits.
func (v Value) Int64() int64 {
	if v.width < 64 && v.bits&(uint64(1)<<(v.width-1)) != 0 {
		return int64(v.bits | ^mask(v.width))
	}
	return int64(v.bits)
}

// Negative reports whether the sign bit is set.
func (v Value) Negative() bool {
	return v.bits&(uint64(1)<<(v.width-1)) != 0
}

// IsZero reports whether the value is 0.
func (v Value) IsZero() bool {
	return v.bits == 0
}

func (v Value) String() string {
	return strconv.FormatInt(v.Int64(), 10)
}

// Eq reports bit pattern equality. Values of different widths are never equal.
func (v1 Value) Eq(v2 Value) bool {
	return v1 == v2
}

// Unsigned comparisons.

func (v1 Value) Ult(v2 Value) bool { checkSameWidth(v1, v2); return v1.bits < v2.bits }
func (v1 Value) Ule(v2 Value) bool { checkSameWidth(v1, v2); return v1.bits <= v2.bits }
func (v1 Value) Ugt(v2 Value) bool { checkSameWidth(v1, v2); return v1.bits > v2.bits }
func (v1 Value) Uge(v2 Value) bool { checkSameWidth(v1, v2); return v1.bits >= v2.bits }

// Signed comparisons.

func (v1 Value) Slt(v2 Value) bool { checkSameWidth(v1, v2); return v1.Int64() < v2.Int64() }
func (v1 Value) Sle(v2 Value) bool { checkSameWidth(v1, v2); return v1.Int64() <= v2.Int64() }
func (v1 Value) Sgt(v2 Value) bool { checkSameWidth(v1, v2); return v1.Int64() > v2.Int64() }
func (v1 Value) Sge(v2 Value) bool { checkSameWidth(v1, v2); return v1.Int64() >= v2.Int64() }

// Add computes v1 + v2 with wraparound.
func (v1 Value) Add(v2 Value) Value {
	checkSameWidth(v1, v2)
	return Value{v1.width, (v1.bits + v2.bits) & mask(v1.width)}
}

// Sub computes v1 - v2 with wraparound.
func (v1 Value) Sub(v2 Value) Value {
	checkSameWidth(v1, v2)
	return Value{v1.width, (v1.bits - v2.bits) & mask(v1.width)}
}

// Mul computes v1 * v2 with wraparound.
func (v1 Value) Mul(v2 Value) Value {
	checkSameWidth(v1, v2)
	return Value{v1.width, (v1.bits * v2.bits) & mask(v1.width)}
}

// SDiv computes v1 / v2 under signed interpretation, truncating toward zero.
// Division by zero panics; the caller guards against zero-containing
// divisors. SignedMin / -1 wraps to SignedMin.
func (v1 Value) SDiv(v2 Value) Value {
	checkSameWidth(v1, v2)
	a, b := v1.Int64(), v2.Int64()
	if q, ok := DivInt64(a, b); ok {
		return FromInt64(v1.width, q)
	}
	return SignedMin(v1.width)
}

// UDiv computes v1 / v2 under unsigned interpretation.
// Division by zero panics; the caller guards against zero-containing divisors.
func (v1 Value) UDiv(v2 Value) Value {
	checkSameWidth(v1, v2)
	return Value{v1.width, v1.bits / v2.bits}
}

// SRem computes v1 % v2 under signed interpretation. The sign of the result
// follows the dividend.
func (v1 Value) SRem(v2 Value) Value {
	checkSameWidth(v1, v2)
	a, b := v1.Int64(), v2.Int64()
	if a == int64(-1<<63) && b == -1 {
		return Zero(v1.width)
	}
	return FromInt64(v1.width, a%b)
}

// URem computes v1 % v2 under unsigned interpretation.
func (v1 Value) URem(v2 Value) Value {
	checkSameWidth(v1, v2)
	return Value{v1.width, v1.bits % v2.bits}
}

// And computes the bitwise conjunction of v1 and v2.
func (v1 Value) And(v2 Value) Value {
	checkSameWidth(v1, v2)
	return Value{v1.width, v1.bits & v2.bits}
}

// Or computes the bitwise disjunction of v1 and v2.
func (v1 Value) Or(v2 Value) Value {
	checkSameWidth(v1, v2)
	return Value{v1.width, v1.bits | v2.bits}
}

// Xor computes the bitwise exclusive disjunction of v1 and v2.
func (v1 Value) Xor(v2 Value) Value {
	checkSameWidth(v1, v2)
	return Value{v1.width, v1.bits ^ v2.bits}
}

// Not computes the bitwise complement of v.
func (v Value) Not() Value {
	return Value{v.width, ^v.bits & mask(v.width)}
}

// Shl computes v << k with wraparound. Shifts of at least the width yield 0.
func (v Value) Shl(k uint) Value {
	if k >= v.width {
		return Zero(v.width)
	}
	return Value{v.width, (v.bits << k) & mask(v.width)}
}

// LShr computes v >> k, shifting in zero bits.
func (v Value) LShr(k uint) Value {
	if k >= v.width {
		return Zero(v.width)
	}
	return Value{v.width, v.bits >> k}
}

// AShr computes v >> k, replicating the sign bit.
func (v Value) AShr(k uint) Value {
	if k >= v.width {
		k = v.width - 1
	}
	return FromInt64(v.width, v.Int64()>>k)
}

// Trunc reinterprets the low width bits of v in a narrower width.
func (v Value) Trunc(width uint) Value {
	if width > v.width {
		panic(fmt.Sprintf("truncation of %d bits to %d bits", v.width, width))
	}
	return FromUint64(width, v.bits)
}

// SExt sign-extends v to a wider width.
func (v Value) SExt(width uint) Value {
	if width < v.width {
		panic(fmt.Sprintf("sign extension of %d bits to %d bits", v.width, width))
	}
	return FromInt64(width, v.Int64())
}

// ZExt zero-extends v to a wider width.
func (v Value) ZExt(width uint) Value {
	if width < v.width {
		panic(fmt.Sprintf("zero extension of %d bits to %d bits", v.width, width))
	}
	return FromUint64(width, v.bits)
}
