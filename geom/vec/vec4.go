package vec

import (
	"fmt"

	"github.com/cwbudde/algo-geom/geom/core"
	"github.com/cwbudde/algo-geom/internal/assert"
	"github.com/cwbudde/algo-geom/internal/kernel"
)

// Vec4 is a packed four-component vector. For float32 and float64 its
// products, quotients and dot product run on the selected SIMD backend.
//
// The zero value is the zero vector; use Point4 for homogeneous points.
type Vec4[T core.Number] struct {
	X, Y, Z, W T
}

// New4 returns (x, y, z, w).
func New4[T core.Number](x, y, z, w T) Vec4[T] {
	return Vec4[T]{X: x, Y: y, Z: z, W: w}
}

// Splat4 returns (s, s, s, s).
func Splat4[T core.Number](s T) Vec4[T] {
	return Vec4[T]{X: s, Y: s, Z: s, W: s}
}

// Point4 returns the homogeneous point (x, y, z, 1).
func Point4[T core.Number](x, y, z T) Vec4[T] {
	return Vec4[T]{X: x, Y: y, Z: z, W: 1}
}

// Dir4 returns the homogeneous direction (x, y, z, 0).
func Dir4[T core.Number](x, y, z T) Vec4[T] {
	return Vec4[T]{X: x, Y: y, Z: z}
}

func (v Vec4[T]) lanes() [4]T { return [4]T{v.X, v.Y, v.Z, v.W} }

func fromLanes4[T core.Number](l [4]T) Vec4[T] {
	return Vec4[T]{X: l[0], Y: l[1], Z: l[2], W: l[3]}
}

// At returns component i (0 = X, 1 = Y, 2 = Z, 3 = W).
func (v Vec4[T]) At(i int) T {
	assert.Index("vec", i, 4)
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	}
	var zero T
	return zero
}

// Set assigns component i.
func (v *Vec4[T]) Set(i int, s T) {
	assert.Index("vec", i, 4)
	switch i {
	case 0:
		v.X = s
	case 1:
		v.Y = s
	case 2:
		v.Z = s
	case 3:
		v.W = s
	}
}

func (v Vec4[T]) Neg() Vec4[T] { return Vec4[T]{-v.X, -v.Y, -v.Z, -v.W} }

func (v Vec4[T]) Add(o Vec4[T]) Vec4[T] {
	return fromLanes4(addLanes(v.lanes(), o.lanes()))
}

func (v Vec4[T]) Sub(o Vec4[T]) Vec4[T] {
	return fromLanes4(subLanes(v.lanes(), o.lanes()))
}

// Mul multiplies component-wise.
func (v Vec4[T]) Mul(o Vec4[T]) Vec4[T] {
	return fromLanes4(kernel.Mul4(v.lanes(), o.lanes()))
}

// Div divides component-wise. A zero component in o yields the zero vector.
func (v Vec4[T]) Div(o Vec4[T]) Vec4[T] {
	return fromLanes4(divLanes(v.lanes(), o.lanes(), 4))
}

// Scale multiplies every component by s.
func (v Vec4[T]) Scale(s T) Vec4[T] {
	return fromLanes4(kernel.Scale4(v.lanes(), s))
}

// DivScalar divides every component by s. s == 0 yields the zero vector.
func (v Vec4[T]) DivScalar(s T) Vec4[T] {
	return fromLanes4(divScalarLanes(v.lanes(), s))
}

func (v Vec4[T]) AddScalar(s T) Vec4[T] { return Vec4[T]{v.X + s, v.Y + s, v.Z + s, v.W + s} }
func (v Vec4[T]) SubScalar(s T) Vec4[T] { return Vec4[T]{v.X - s, v.Y - s, v.Z - s, v.W - s} }

// Dot returns the sum of the component products.
func (v Vec4[T]) Dot(o Vec4[T]) T {
	return kernel.Dot4(v.lanes(), o.lanes())
}

// Cross3D returns the cross product of the xyz parts with w = 0.
func (v Vec4[T]) Cross3D(o Vec4[T]) Vec4[T] {
	return fromLanes4(cross3(v.lanes(), o.lanes()))
}

func (v Vec4[T]) LengthSquared() T { return v.Dot(v) }
func (v Vec4[T]) Length() T        { return core.Sqrt(v.LengthSquared()) }

// InverseLengthFast approximates 1/Length with the fast inverse square root.
func (v Vec4[T]) InverseLengthFast() T { return invSqrtFast(v.LengthSquared()) }

// Normalized returns v scaled to unit length, or v itself when it has zero
// length.
func (v Vec4[T]) Normalized() Vec4[T] {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.DivScalar(l)
}

// Normalize scales v to unit length in place.
func (v *Vec4[T]) Normalize() { *v = v.Normalized() }

func (v Vec4[T]) Equal(o Vec4[T]) bool    { return v == o }
func (v Vec4[T]) NotEqual(o Vec4[T]) bool { return v != o }

// ApproxEqual reports whether every component differs by at most eps.
func (v Vec4[T]) ApproxEqual(o Vec4[T], eps T) bool {
	return approxEqualLanes(v.lanes(), o.lanes(), eps, 4)
}

// XYZ drops the w component.
func (v Vec4[T]) XYZ() Vec3[T] { return Vec3[T]{v.X, v.Y, v.Z} }

// Aligned returns v in register-image storage.
func (v Vec4[T]) Aligned() Vec4A[T] { return Vec4A[T]{l: v.lanes()} }

func (v Vec4[T]) String() string {
	return fmt.Sprintf("Vec4(%v, %v, %v, %v)", v.X, v.Y, v.Z, v.W)
}
