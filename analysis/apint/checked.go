package apint

import "math"

// Checked 64-bit arithmetic. The interval transfer functions evaluate bound
// candidates in 64-bit precision and then ask whether the exact result fits
// the width of the lattice; the ok flag reports whether the 64-bit
// computation itself was exact.

// AddInt64 returns a + b and reports whether the exact sum is representable
// in 64 bits.
func AddInt64(a, b int64) (sum int64, ok bool) {
	if (b > 0 && a > math.MaxInt64-b) ||
		(b < 0 && a < math.MinInt64-b) {
		return 0, false
	}
	return a + b, true
}

// SubInt64 returns a - b and reports whether the exact difference is
// representable in 64 bits.
func SubInt64(a, b int64) (diff int64, ok bool) {
	if (b > 0 && a < math.MinInt64+b) ||
		(b < 0 && a > math.MaxInt64+b) {
		return 0, false
	}
	return a - b, true
}

// MulInt64 returns a * b and reports whether the exact product is
// representable in 64 bits.
func MulInt64(a, b int64) (product int64, ok bool) {
	if (a > 0 && b > 0 && a > math.MaxInt64/b) ||
		(a > 0 && b <= 0 && b < math.MinInt64/a) ||
		(a <= 0 && b > 0 && a < math.MinInt64/b) ||
		(a < 0 && b <= 0 && b < math.MaxInt64/a) {
		return 0, false
	}
	return a * b, true
}

// DivInt64 returns a / b, truncating toward zero, and reports whether the
// exact quotient is representable in 64 bits. The only inexact case is
// MinInt64 / -1. Division by zero panics.
func DivInt64(a, b int64) (quotient int64, ok bool) {
	if a == math.MinInt64 && b == -1 {
		return 0, false
	}
	return a / b, true
}

// ShlInt64 returns a << k and reports whether the exact result is
// representable in 64 bits.
func ShlInt64(a int64, k uint) (shifted int64, ok bool) {
	if k >= 64 {
		return 0, a == 0
	}
	r := a << k
	if r>>k != a {
		return 0, false
	}
	return r, true
}

// FitsSigned reports whether v is representable as a width-bit signed value.
func FitsSigned(width uint, v int64) bool {
	checkWidth(width)
	return SignedMin(width).Int64() <= v && v <= SignedMax(width).Int64()
}

// FitsUnsigned reports whether v is representable as a width-bit unsigned
// value.
func FitsUnsigned(width uint, v uint64) bool {
	checkWidth(width)
	return v <= UnsignedMax(width).Uint64()
}
