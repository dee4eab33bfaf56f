// Package quat provides quaternions for 3D rotation.
//
// A Quat stores the imaginary part in X, Y, Z and the real part in W, the
// same lane order as vec.Vec4. New takes the real part first.
//
// Quaternions with zero norm are not special-cased: Inverse, Normalized and
// Div of a zero quaternion divide by zero like the underlying element type
// does (Inf/NaN for floats, a runtime panic for integers).
package quat

import (
	"fmt"

	"github.com/cwbudde/algo-geom/geom/core"
	"github.com/cwbudde/algo-geom/geom/mat"
	"github.com/cwbudde/algo-geom/geom/vec"
	"github.com/cwbudde/algo-geom/internal/kernel"
)

// Quat is the quaternion W + Xi + Yj + Zk.
type Quat[T core.Number] struct {
	X, Y, Z, W T
}

// New returns w + xi + yj + zk.
func New[T core.Number](w, x, y, z T) Quat[T] {
	return Quat[T]{X: x, Y: y, Z: z, W: w}
}

// Identity returns the rotation identity (0, 0, 0, 1).
func Identity[T core.Number]() Quat[T] {
	return Quat[T]{W: 1}
}

// FromVec4 reinterprets v: xyz is the imaginary part, w the real part.
func FromVec4[T core.Number](v vec.Vec4[T]) Quat[T] {
	return Quat[T]{X: v.X, Y: v.Y, Z: v.Z, W: v.W}
}

// Vec4 returns q as (x, y, z, w).
func (q Quat[T]) Vec4() vec.Vec4[T] { return vec.New4(q.X, q.Y, q.Z, q.W) }

func (q Quat[T]) lanes() [4]T { return [4]T{q.X, q.Y, q.Z, q.W} }

func fromLanes[T core.Number](l [4]T) Quat[T] {
	return Quat[T]{X: l[0], Y: l[1], Z: l[2], W: l[3]}
}

// SetIdentity overwrites q with the identity.
func (q *Quat[T]) SetIdentity() { *q = Identity[T]() }

// AddScalar adds s to the real part only.
func (q Quat[T]) AddScalar(s T) Quat[T] {
	q.W += s
	return q
}

// SubScalar subtracts s from the real part only.
func (q Quat[T]) SubScalar(s T) Quat[T] {
	q.W -= s
	return q
}

// Scale multiplies all four components by s.
func (q Quat[T]) Scale(s T) Quat[T] {
	return fromLanes(kernel.Scale4(q.lanes(), s))
}

// DivScalar divides all four components by s.
func (q Quat[T]) DivScalar(s T) Quat[T] {
	return fromLanes(kernel.DivScale4(q.lanes(), s))
}

func (q Quat[T]) Add(o Quat[T]) Quat[T] {
	return Quat[T]{q.X + o.X, q.Y + o.Y, q.Z + o.Z, q.W + o.W}
}

func (q Quat[T]) Sub(o Quat[T]) Quat[T] {
	return Quat[T]{q.X - o.X, q.Y - o.Y, q.Z - o.Z, q.W - o.W}
}

// Mul returns the Hamilton product q * o. Composed as rotations, o is
// applied first.
func (q Quat[T]) Mul(o Quat[T]) Quat[T] {
	return Quat[T]{
		W: T(q.W*o.W) - T(q.X*o.X) - T(q.Y*o.Y) - T(q.Z*o.Z),
		X: T(q.W*o.X) + T(q.X*o.W) + T(q.Y*o.Z) - T(q.Z*o.Y),
		Y: T(q.W*o.Y) - T(q.X*o.Z) + T(q.Y*o.W) + T(q.Z*o.X),
		Z: T(q.W*o.Z) + T(q.X*o.Y) - T(q.Y*o.X) + T(q.Z*o.W),
	}
}

// Div returns q * o.Inverse().
func (q Quat[T]) Div(o Quat[T]) Quat[T] {
	return q.Mul(o.Inverse())
}

// Norm returns sqrt(w² + x² + y² + z²).
func (q Quat[T]) Norm() T {
	return core.Sqrt(kernel.Dot4(q.lanes(), q.lanes()))
}

// Conjugate negates the imaginary part.
func (q Quat[T]) Conjugate() Quat[T] {
	return Quat[T]{-q.X, -q.Y, -q.Z, q.W}
}

// Inverse returns Conjugate() / Norm(). This is the true inverse for unit
// quaternions, the rotation use case.
func (q Quat[T]) Inverse() Quat[T] {
	return q.Conjugate().DivScalar(q.Norm())
}

// Normalized returns q scaled to unit norm.
func (q Quat[T]) Normalized() Quat[T] {
	return q.DivScalar(q.Norm())
}

// Normalize scales q to unit norm in place.
func (q *Quat[T]) Normalize() { *q = q.Normalized() }

func (q Quat[T]) Equal(o Quat[T]) bool { return q == o }

// ApproxEqual reports whether every component differs by at most eps.
func (q Quat[T]) ApproxEqual(o Quat[T], eps T) bool {
	return q.Vec4().ApproxEqual(o.Vec4(), eps)
}

// ToMatrix returns the rotation matrix of a unit quaternion.
func (q Quat[T]) ToMatrix() mat.Mat4[T] {
	x2, y2, z2 := T(q.X*q.X), T(q.Y*q.Y), T(q.Z*q.Z)
	xy, xz, yz := T(q.X*q.Y), T(q.X*q.Z), T(q.Y*q.Z)
	wx, wy, wz := T(q.W*q.X), T(q.W*q.Y), T(q.W*q.Z)

	return mat.New(
		1-2*(y2+z2), 2*(xy-wz), 2*(xz+wy), 0,
		2*(xy+wz), 1-2*(x2+z2), 2*(yz-wx), 0,
		2*(xz-wy), 2*(yz+wx), 1-2*(x2+y2), 0,
		0, 0, 0, 1,
	)
}

// Rotate applies the rotation of the unit quaternion q to v.
func (q Quat[T]) Rotate(v vec.Vec3[T]) vec.Vec3[T] {
	u := vec.New3(q.X, q.Y, q.Z)
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

func (q Quat[T]) String() string {
	return fmt.Sprintf("Quat(w=%v, x=%v, y=%v, z=%v)", q.W, q.X, q.Y, q.Z)
}
