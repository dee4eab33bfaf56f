package vec

import (
	"fmt"

	"github.com/cwbudde/algo-geom/geom/core"
	"github.com/cwbudde/algo-geom/internal/assert"
	"github.com/cwbudde/algo-geom/internal/kernel"
)

// Vec2A is a 2-component vector stored as one 4-lane register image.
type Vec2A[T core.Number] struct {
	l [4]T
}

// NewA2 returns (x, y) in aligned storage.
func NewA2[T core.Number](x, y T) Vec2A[T] {
	return Vec2A[T]{l: [4]T{x, y}}
}

// SplatA2 broadcasts s to every component.
func SplatA2[T core.Number](s T) Vec2A[T] {
	return Vec2A[T]{l: mask([4]T{s, s, s, s}, 2)}
}

// FromLanesA2 builds a vector from a register image. Lanes past 2 are
// discarded.
func FromLanesA2[T core.Number](l [4]T) Vec2A[T] {
	return Vec2A[T]{l: mask(l, 2)}
}

// Lanes returns a copy of the register image, padding included.
func (v Vec2A[T]) Lanes() [4]T { return v.l }

func (v Vec2A[T]) X() T { return v.l[0] }
func (v Vec2A[T]) Y() T { return v.l[1] }

// At returns component i. Release builds read the zero padding lanes for
// indexes 2 and 3.
func (v Vec2A[T]) At(i int) T {
	assert.Index("vec", i, 2)
	return v.l[i]
}

// Set assigns component i.
func (v *Vec2A[T]) Set(i int, s T) {
	assert.Index("vec", i, 2)
	if i < 2 {
		v.l[i] = s
	}
}

func (v Vec2A[T]) Neg() Vec2A[T]           { return Vec2A[T]{l: negLanes(v.l, 2)} }
func (v Vec2A[T]) Add(o Vec2A[T]) Vec2A[T] { return Vec2A[T]{l: addLanes(v.l, o.l)} }
func (v Vec2A[T]) Sub(o Vec2A[T]) Vec2A[T] { return Vec2A[T]{l: subLanes(v.l, o.l)} }

// Mul multiplies component-wise.
func (v Vec2A[T]) Mul(o Vec2A[T]) Vec2A[T] {
	return Vec2A[T]{l: kernel.Mul4(v.l, o.l)}
}

// Div divides component-wise. A zero component in o yields the zero vector.
func (v Vec2A[T]) Div(o Vec2A[T]) Vec2A[T] {
	return Vec2A[T]{l: divLanes(v.l, o.l, 2)}
}

// Scale multiplies every component by s.
func (v Vec2A[T]) Scale(s T) Vec2A[T] {
	return Vec2A[T]{l: scaleLanes(v.l, s, 2)}
}

// DivScalar divides every component by s. s == 0 yields the zero vector.
func (v Vec2A[T]) DivScalar(s T) Vec2A[T] {
	return Vec2A[T]{l: mask(divScalarLanes(v.l, s), 2)}
}

func (v Vec2A[T]) AddScalar(s T) Vec2A[T] { return Vec2A[T]{l: addScalarLanes(v.l, s, 2)} }
func (v Vec2A[T]) SubScalar(s T) Vec2A[T] { return Vec2A[T]{l: subScalarLanes(v.l, s, 2)} }

// Dot returns the sum of the component products.
func (v Vec2A[T]) Dot(o Vec2A[T]) T {
	return kernel.Dot4(v.l, o.l)
}

func (v Vec2A[T]) LengthSquared() T { return v.Dot(v) }
func (v Vec2A[T]) Length() T        { return core.Sqrt(v.LengthSquared()) }

// InverseLengthFast approximates 1/Length with the fast inverse square root.
func (v Vec2A[T]) InverseLengthFast() T { return invSqrtFast(v.LengthSquared()) }

// Normalized returns v scaled to unit length, or v itself when it has zero
// length.
func (v Vec2A[T]) Normalized() Vec2A[T] {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.DivScalar(l)
}

// Normalize scales v to unit length in place.
func (v *Vec2A[T]) Normalize() { *v = v.Normalized() }

// Equal compares the live components exactly.
func (v Vec2A[T]) Equal(o Vec2A[T]) bool    { return equalLanes(v.l, o.l, 2) }
func (v Vec2A[T]) NotEqual(o Vec2A[T]) bool { return !v.Equal(o) }

// ApproxEqual reports whether every component differs by at most eps.
func (v Vec2A[T]) ApproxEqual(o Vec2A[T], eps T) bool {
	return approxEqualLanes(v.l, o.l, eps, 2)
}

func (v Vec2A[T]) String() string {
	return fmt.Sprintf("Vec2A(%v, %v)", v.l[0], v.l[1])
}

// Packed returns v in packed storage.
func (v Vec2A[T]) Packed() Vec2[T] { return Vec2[T]{v.l[0], v.l[1]} }

// Extend returns (x, y, z).
func (v Vec2A[T]) Extend(z T) Vec3A[T] {
	l := v.l
	l[2] = z
	return Vec3A[T]{l: l}
}
