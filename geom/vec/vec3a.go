package vec

import (
	"fmt"

	"github.com/cwbudde/algo-geom/geom/core"
	"github.com/cwbudde/algo-geom/internal/assert"
	"github.com/cwbudde/algo-geom/internal/kernel"
)

// Vec3A is a 3-component vector stored as one 4-lane register image.
type Vec3A[T core.Number] struct {
	l [4]T
}

// NewA3 returns (x, y, z) in aligned storage.
func NewA3[T core.Number](x, y, z T) Vec3A[T] {
	return Vec3A[T]{l: [4]T{x, y, z}}
}

// SplatA3 broadcasts s to every component.
func SplatA3[T core.Number](s T) Vec3A[T] {
	return Vec3A[T]{l: mask([4]T{s, s, s, s}, 3)}
}

// FromLanesA3 builds a vector from a register image. Lanes past 3 are
// discarded.
func FromLanesA3[T core.Number](l [4]T) Vec3A[T] {
	return Vec3A[T]{l: mask(l, 3)}
}

// Lanes returns a copy of the register image, padding included.
func (v Vec3A[T]) Lanes() [4]T { return v.l }

func (v Vec3A[T]) X() T { return v.l[0] }
func (v Vec3A[T]) Y() T { return v.l[1] }
func (v Vec3A[T]) Z() T { return v.l[2] }

// At returns component i. Release builds read the zero padding lane for
// index 3.
func (v Vec3A[T]) At(i int) T {
	assert.Index("vec", i, 3)
	return v.l[i]
}

// Set assigns component i.
func (v *Vec3A[T]) Set(i int, s T) {
	assert.Index("vec", i, 3)
	if i < 3 {
		v.l[i] = s
	}
}

func (v Vec3A[T]) Neg() Vec3A[T]           { return Vec3A[T]{l: negLanes(v.l, 3)} }
func (v Vec3A[T]) Add(o Vec3A[T]) Vec3A[T] { return Vec3A[T]{l: addLanes(v.l, o.l)} }
func (v Vec3A[T]) Sub(o Vec3A[T]) Vec3A[T] { return Vec3A[T]{l: subLanes(v.l, o.l)} }

// Mul multiplies component-wise.
func (v Vec3A[T]) Mul(o Vec3A[T]) Vec3A[T] {
	return Vec3A[T]{l: kernel.Mul4(v.l, o.l)}
}

// Div divides component-wise. A zero component in o yields the zero vector.
func (v Vec3A[T]) Div(o Vec3A[T]) Vec3A[T] {
	return Vec3A[T]{l: divLanes(v.l, o.l, 3)}
}

// Scale multiplies every component by s.
func (v Vec3A[T]) Scale(s T) Vec3A[T] {
	return Vec3A[T]{l: scaleLanes(v.l, s, 3)}
}

// DivScalar divides every component by s. s == 0 yields the zero vector.
func (v Vec3A[T]) DivScalar(s T) Vec3A[T] {
	return Vec3A[T]{l: mask(divScalarLanes(v.l, s), 3)}
}

func (v Vec3A[T]) AddScalar(s T) Vec3A[T] { return Vec3A[T]{l: addScalarLanes(v.l, s, 3)} }
func (v Vec3A[T]) SubScalar(s T) Vec3A[T] { return Vec3A[T]{l: subScalarLanes(v.l, s, 3)} }

// Dot returns the sum of the component products.
func (v Vec3A[T]) Dot(o Vec3A[T]) T {
	return kernel.Dot4(v.l, o.l)
}

func (v Vec3A[T]) LengthSquared() T { return v.Dot(v) }
func (v Vec3A[T]) Length() T        { return core.Sqrt(v.LengthSquared()) }

// InverseLengthFast approximates 1/Length with the fast inverse square root.
func (v Vec3A[T]) InverseLengthFast() T { return invSqrtFast(v.LengthSquared()) }

// Normalized returns v scaled to unit length, or v itself when it has zero
// length.
func (v Vec3A[T]) Normalized() Vec3A[T] {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.DivScalar(l)
}

// Normalize scales v to unit length in place.
func (v *Vec3A[T]) Normalize() { *v = v.Normalized() }

// Equal compares the live components exactly.
func (v Vec3A[T]) Equal(o Vec3A[T]) bool    { return equalLanes(v.l, o.l, 3) }
func (v Vec3A[T]) NotEqual(o Vec3A[T]) bool { return !v.Equal(o) }

// ApproxEqual reports whether every component differs by at most eps.
func (v Vec3A[T]) ApproxEqual(o Vec3A[T], eps T) bool {
	return approxEqualLanes(v.l, o.l, eps, 3)
}

func (v Vec3A[T]) String() string {
	return fmt.Sprintf("Vec3A(%v, %v, %v)", v.l[0], v.l[1], v.l[2])
}

// Cross returns the right-handed cross product v x o.
func (v Vec3A[T]) Cross(o Vec3A[T]) Vec3A[T] {
	return Vec3A[T]{l: cross3(v.l, o.l)}
}

// Extend returns (x, y, z, w).
func (v Vec3A[T]) Extend(w T) Vec4A[T] {
	l := v.l
	l[3] = w
	return Vec4A[T]{l: l}
}

// ToVec4A promotes v to a homogeneous point (x, y, z, 1).
func (v Vec3A[T]) ToVec4A() Vec4A[T] { return v.Extend(1) }

// Packed returns v in packed storage.
func (v Vec3A[T]) Packed() Vec3[T] { return Vec3[T]{v.l[0], v.l[1], v.l[2]} }
