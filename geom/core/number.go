package core

import "golang.org/x/exp/constraints"

// Number is the set of element types vectors, matrices and quaternions accept.
type Number interface {
	constraints.Integer | constraints.Float
}

// Float is the subset of Number with a fractional part. Trigonometric
// builders (rotations, quaternion constructors) require it.
type Float interface {
	constraints.Float
}

// Abs returns |x|. Unsigned values are returned unchanged.
func Abs[T Number](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// ApproxEqual reports whether |a - b| <= eps. Exact comparison is the default
// everywhere else in this module; this is for callers that need tolerance.
func ApproxEqual[T Number](a, b, eps T) bool {
	if a == b {
		return true
	}
	if a > b {
		return a-b <= eps
	}
	return b-a <= eps
}
