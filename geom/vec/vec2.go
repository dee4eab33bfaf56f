package vec

import (
	"fmt"

	"github.com/cwbudde/algo-geom/geom/core"
	"github.com/cwbudde/algo-geom/internal/assert"
)

// Vec2 is a packed two-component vector.
type Vec2[T core.Number] struct {
	X, Y T
}

// New2 returns (x, y).
func New2[T core.Number](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// Splat2 returns (s, s).
func Splat2[T core.Number](s T) Vec2[T] {
	return Vec2[T]{X: s, Y: s}
}

// At returns component i (0 = X, 1 = Y).
func (v Vec2[T]) At(i int) T {
	assert.Index("vec", i, 2)
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	var zero T
	return zero
}

// Set assigns component i.
func (v *Vec2[T]) Set(i int, s T) {
	assert.Index("vec", i, 2)
	switch i {
	case 0:
		v.X = s
	case 1:
		v.Y = s
	}
}

func (v Vec2[T]) Neg() Vec2[T]          { return Vec2[T]{-v.X, -v.Y} }
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X + o.X, v.Y + o.Y} }
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X - o.X, v.Y - o.Y} }
func (v Vec2[T]) Mul(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X * o.X, v.Y * o.Y} }
func (v Vec2[T]) Scale(s T) Vec2[T]     { return Vec2[T]{v.X * s, v.Y * s} }
func (v Vec2[T]) AddScalar(s T) Vec2[T] { return Vec2[T]{v.X + s, v.Y + s} }
func (v Vec2[T]) SubScalar(s T) Vec2[T] { return Vec2[T]{v.X - s, v.Y - s} }

// Div divides component-wise. A zero component in o yields the zero vector.
func (v Vec2[T]) Div(o Vec2[T]) Vec2[T] {
	if o.X == 0 || o.Y == 0 {
		return Vec2[T]{}
	}
	return Vec2[T]{v.X / o.X, v.Y / o.Y}
}

// DivScalar divides every component by s. s == 0 yields the zero vector.
func (v Vec2[T]) DivScalar(s T) Vec2[T] {
	if s == 0 {
		return Vec2[T]{}
	}
	return Vec2[T]{v.X / s, v.Y / s}
}

// Dot returns v.X*o.X + v.Y*o.Y.
func (v Vec2[T]) Dot(o Vec2[T]) T {
	sum := T(v.X * o.X)
	sum += T(v.Y * o.Y)
	return sum
}

func (v Vec2[T]) LengthSquared() T { return v.Dot(v) }
func (v Vec2[T]) Length() T        { return core.Sqrt(v.LengthSquared()) }

// InverseLengthFast approximates 1/Length with the fast inverse square root.
func (v Vec2[T]) InverseLengthFast() T { return invSqrtFast(v.LengthSquared()) }

// Normalized returns v scaled to unit length, or v itself when it has zero
// length.
func (v Vec2[T]) Normalized() Vec2[T] {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.DivScalar(l)
}

// Normalize scales v to unit length in place.
func (v *Vec2[T]) Normalize() { *v = v.Normalized() }

func (v Vec2[T]) Equal(o Vec2[T]) bool    { return v == o }
func (v Vec2[T]) NotEqual(o Vec2[T]) bool { return v != o }

// ApproxEqual reports whether every component differs by at most eps.
func (v Vec2[T]) ApproxEqual(o Vec2[T], eps T) bool {
	return core.ApproxEqual(v.X, o.X, eps) && core.ApproxEqual(v.Y, o.Y, eps)
}

// Extend returns (x, y, z).
func (v Vec2[T]) Extend(z T) Vec3[T] { return Vec3[T]{v.X, v.Y, z} }

// ToVec4 promotes v to a homogeneous point (x, y, 0, 1).
func (v Vec2[T]) ToVec4() Vec4[T] { return Vec4[T]{v.X, v.Y, 0, 1} }

// Aligned returns v in register-image storage.
func (v Vec2[T]) Aligned() Vec2A[T] { return Vec2A[T]{l: [4]T{v.X, v.Y}} }

func (v Vec2[T]) String() string {
	return fmt.Sprintf("Vec2(%v, %v)", v.X, v.Y)
}
