// Package generic provides the scalar reference kernels.
//
// Every other backend is checked against these functions. They are generic
// over any element type, so the kernel package also calls them directly for
// integer and named element types that no SIMD backend accelerates.
//
// Products are wrapped in an explicit T(...) conversion. The conversion
// forces rounding to T and keeps the compiler from contracting a*b+c into a
// fused multiply-add, which would change results per architecture.
package generic

import "github.com/cwbudde/algo-geom/geom/core"

// Mul4 returns the lane-wise product a[i] * b[i].
func Mul4[T core.Number](a, b [4]T) [4]T {
	return [4]T{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}

// Div4 returns the lane-wise quotient a[i] / b[i].
// Division-by-zero policy lives in the caller; lanes of b must be non-zero.
func Div4[T core.Number](a, b [4]T) [4]T {
	return [4]T{a[0] / b[0], a[1] / b[1], a[2] / b[2], a[3] / b[3]}
}

// Scale4 returns v[i] * s.
func Scale4[T core.Number](v [4]T, s T) [4]T {
	return [4]T{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

// DivScale4 returns v[i] / s. s must be non-zero.
func DivScale4[T core.Number](v [4]T, s T) [4]T {
	return [4]T{v[0] / s, v[1] / s, v[2] / s, v[3] / s}
}

// Dot4 returns ((a0*b0 + a1*b1) + a2*b2) + a3*b3, summed left to right.
func Dot4[T core.Number](a, b [4]T) T {
	sum := T(a[0] * b[0])
	sum += T(a[1] * b[1])
	sum += T(a[2] * b[2])
	sum += T(a[3] * b[3])
	return sum
}
