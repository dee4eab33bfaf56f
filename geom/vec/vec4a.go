package vec

import (
	"fmt"

	"github.com/cwbudde/algo-geom/geom/core"
	"github.com/cwbudde/algo-geom/internal/assert"
	"github.com/cwbudde/algo-geom/internal/kernel"
)

// Vec4A is a 4-component vector stored as one 4-lane register image.
type Vec4A[T core.Number] struct {
	l [4]T
}

// NewA4 returns (x, y, z, w) in aligned storage.
func NewA4[T core.Number](x, y, z, w T) Vec4A[T] {
	return Vec4A[T]{l: [4]T{x, y, z, w}}
}

// SplatA4 broadcasts s to every component.
func SplatA4[T core.Number](s T) Vec4A[T] {
	return Vec4A[T]{l: mask([4]T{s, s, s, s}, 4)}
}

// FromLanesA4 builds a vector from a register image. Lanes past 4 are
// discarded.
func FromLanesA4[T core.Number](l [4]T) Vec4A[T] {
	return Vec4A[T]{l: mask(l, 4)}
}

// Lanes returns a copy of the register image, padding included.
func (v Vec4A[T]) Lanes() [4]T { return v.l }

func (v Vec4A[T]) X() T { return v.l[0] }
func (v Vec4A[T]) Y() T { return v.l[1] }
func (v Vec4A[T]) Z() T { return v.l[2] }
func (v Vec4A[T]) W() T { return v.l[3] }

// At returns component i.
func (v Vec4A[T]) At(i int) T {
	assert.Index("vec", i, 4)
	return v.l[i]
}

// Set assigns component i.
func (v *Vec4A[T]) Set(i int, s T) {
	assert.Index("vec", i, 4)
	if i < 4 {
		v.l[i] = s
	}
}

func (v Vec4A[T]) Neg() Vec4A[T]           { return Vec4A[T]{l: negLanes(v.l, 4)} }
func (v Vec4A[T]) Add(o Vec4A[T]) Vec4A[T] { return Vec4A[T]{l: addLanes(v.l, o.l)} }
func (v Vec4A[T]) Sub(o Vec4A[T]) Vec4A[T] { return Vec4A[T]{l: subLanes(v.l, o.l)} }

// Mul multiplies component-wise.
func (v Vec4A[T]) Mul(o Vec4A[T]) Vec4A[T] {
	return Vec4A[T]{l: kernel.Mul4(v.l, o.l)}
}

// Div divides component-wise. A zero component in o yields the zero vector.
func (v Vec4A[T]) Div(o Vec4A[T]) Vec4A[T] {
	return Vec4A[T]{l: divLanes(v.l, o.l, 4)}
}

// Scale multiplies every component by s.
func (v Vec4A[T]) Scale(s T) Vec4A[T] {
	return Vec4A[T]{l: scaleLanes(v.l, s, 4)}
}

// DivScalar divides every component by s. s == 0 yields the zero vector.
func (v Vec4A[T]) DivScalar(s T) Vec4A[T] {
	return Vec4A[T]{l: mask(divScalarLanes(v.l, s), 4)}
}

func (v Vec4A[T]) AddScalar(s T) Vec4A[T] { return Vec4A[T]{l: addScalarLanes(v.l, s, 4)} }
func (v Vec4A[T]) SubScalar(s T) Vec4A[T] { return Vec4A[T]{l: subScalarLanes(v.l, s, 4)} }

// Dot returns the sum of the component products.
func (v Vec4A[T]) Dot(o Vec4A[T]) T {
	return kernel.Dot4(v.l, o.l)
}

func (v Vec4A[T]) LengthSquared() T { return v.Dot(v) }
func (v Vec4A[T]) Length() T        { return core.Sqrt(v.LengthSquared()) }

// InverseLengthFast approximates 1/Length with the fast inverse square root.
func (v Vec4A[T]) InverseLengthFast() T { return invSqrtFast(v.LengthSquared()) }

// Normalized returns v scaled to unit length, or v itself when it has zero
// length.
func (v Vec4A[T]) Normalized() Vec4A[T] {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.DivScalar(l)
}

// Normalize scales v to unit length in place.
func (v *Vec4A[T]) Normalize() { *v = v.Normalized() }

// Equal compares the live components exactly.
func (v Vec4A[T]) Equal(o Vec4A[T]) bool    { return equalLanes(v.l, o.l, 4) }
func (v Vec4A[T]) NotEqual(o Vec4A[T]) bool { return !v.Equal(o) }

// ApproxEqual reports whether every component differs by at most eps.
func (v Vec4A[T]) ApproxEqual(o Vec4A[T], eps T) bool {
	return approxEqualLanes(v.l, o.l, eps, 4)
}

func (v Vec4A[T]) String() string {
	return fmt.Sprintf("Vec4A(%v, %v, %v, %v)", v.l[0], v.l[1], v.l[2], v.l[3])
}

// PointA4 returns the homogeneous point (x, y, z, 1) in aligned storage.
func PointA4[T core.Number](x, y, z T) Vec4A[T] {
	return Vec4A[T]{l: [4]T{x, y, z, 1}}
}

// DirA4 returns the homogeneous direction (x, y, z, 0) in aligned storage.
func DirA4[T core.Number](x, y, z T) Vec4A[T] {
	return Vec4A[T]{l: [4]T{x, y, z, 0}}
}

// Cross3D returns the cross product of the xyz parts with w = 0.
func (v Vec4A[T]) Cross3D(o Vec4A[T]) Vec4A[T] {
	return Vec4A[T]{l: cross3(v.l, o.l)}
}

// XYZ drops the w component.
func (v Vec4A[T]) XYZ() Vec3A[T] { return Vec3A[T]{l: mask(v.l, 3)} }

// Packed returns v in packed storage.
func (v Vec4A[T]) Packed() Vec4[T] { return fromLanes4(v.l) }
