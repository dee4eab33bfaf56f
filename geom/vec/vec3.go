package vec

import (
	"fmt"

	"github.com/cwbudde/algo-geom/geom/core"
	"github.com/cwbudde/algo-geom/internal/assert"
)

// Vec3 is a packed three-component vector.
type Vec3[T core.Number] struct {
	X, Y, Z T
}

// New3 returns (x, y, z).
func New3[T core.Number](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// Splat3 returns (s, s, s).
func Splat3[T core.Number](s T) Vec3[T] {
	return Vec3[T]{X: s, Y: s, Z: s}
}

// At returns component i (0 = X, 1 = Y, 2 = Z).
func (v Vec3[T]) At(i int) T {
	assert.Index("vec", i, 3)
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	var zero T
	return zero
}

// Set assigns component i.
func (v *Vec3[T]) Set(i int, s T) {
	assert.Index("vec", i, 3)
	switch i {
	case 0:
		v.X = s
	case 1:
		v.Y = s
	case 2:
		v.Z = s
	}
}

func (v Vec3[T]) Neg() Vec3[T]          { return Vec3[T]{-v.X, -v.Y, -v.Z} }
func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3[T]) Mul(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }
func (v Vec3[T]) Scale(s T) Vec3[T]     { return Vec3[T]{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3[T]) AddScalar(s T) Vec3[T] { return Vec3[T]{v.X + s, v.Y + s, v.Z + s} }
func (v Vec3[T]) SubScalar(s T) Vec3[T] { return Vec3[T]{v.X - s, v.Y - s, v.Z - s} }

// Div divides component-wise. A zero component in o yields the zero vector.
func (v Vec3[T]) Div(o Vec3[T]) Vec3[T] {
	if o.X == 0 || o.Y == 0 || o.Z == 0 {
		return Vec3[T]{}
	}
	return Vec3[T]{v.X / o.X, v.Y / o.Y, v.Z / o.Z}
}

// DivScalar divides every component by s. s == 0 yields the zero vector.
func (v Vec3[T]) DivScalar(s T) Vec3[T] {
	if s == 0 {
		return Vec3[T]{}
	}
	return Vec3[T]{v.X / s, v.Y / s, v.Z / s}
}

// Dot returns the sum of the component products, accumulated x, y, z.
func (v Vec3[T]) Dot(o Vec3[T]) T {
	sum := T(v.X * o.X)
	sum += T(v.Y * o.Y)
	sum += T(v.Z * o.Z)
	return sum
}

// Cross returns the right-handed cross product v x o.
func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	c := cross3([4]T{v.X, v.Y, v.Z}, [4]T{o.X, o.Y, o.Z})
	return Vec3[T]{c[0], c[1], c[2]}
}

func (v Vec3[T]) LengthSquared() T { return v.Dot(v) }
func (v Vec3[T]) Length() T        { return core.Sqrt(v.LengthSquared()) }

// InverseLengthFast approximates 1/Length with the fast inverse square root.
func (v Vec3[T]) InverseLengthFast() T { return invSqrtFast(v.LengthSquared()) }

// Normalized returns v scaled to unit length, or v itself when it has zero
// length.
func (v Vec3[T]) Normalized() Vec3[T] {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.DivScalar(l)
}

// Normalize scales v to unit length in place.
func (v *Vec3[T]) Normalize() { *v = v.Normalized() }

func (v Vec3[T]) Equal(o Vec3[T]) bool    { return v == o }
func (v Vec3[T]) NotEqual(o Vec3[T]) bool { return v != o }

// ApproxEqual reports whether every component differs by at most eps.
func (v Vec3[T]) ApproxEqual(o Vec3[T], eps T) bool {
	return core.ApproxEqual(v.X, o.X, eps) &&
		core.ApproxEqual(v.Y, o.Y, eps) &&
		core.ApproxEqual(v.Z, o.Z, eps)
}

// XY drops the z component.
func (v Vec3[T]) XY() Vec2[T] { return Vec2[T]{v.X, v.Y} }

// Extend returns (x, y, z, w).
func (v Vec3[T]) Extend(w T) Vec4[T] { return Vec4[T]{v.X, v.Y, v.Z, w} }

// ToVec4 promotes v to a homogeneous point (x, y, z, 1).
func (v Vec3[T]) ToVec4() Vec4[T] { return v.Extend(1) }

// Aligned returns v in register-image storage.
func (v Vec3[T]) Aligned() Vec3A[T] { return Vec3A[T]{l: [4]T{v.X, v.Y, v.Z}} }

func (v Vec3[T]) String() string {
	return fmt.Sprintf("Vec3(%v, %v, %v)", v.X, v.Y, v.Z)
}
