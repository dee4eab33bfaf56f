package quat

import (
	"github.com/cwbudde/algo-geom/geom/core"
	"github.com/cwbudde/algo-geom/geom/vec"
)

// FromEuler returns the rotation for the Euler angles (x, y, z) in radians.
func FromEuler[T core.Float](angles vec.Vec3[T]) Quat[T] {
	sx, cx := core.SinCos(angles.X / 2)
	sy, cy := core.SinCos(angles.Y / 2)
	sz, cz := core.SinCos(angles.Z / 2)

	return New(
		cx*cy*cz+sx*sy*sz,
		sx*cy*cz-cx*sy*sz,
		cx*sy*cz+sx*cy*sz,
		cx*cy*sz-sx*sy*cz,
	)
}

// FromEulerDegrees is FromEuler for angles in degrees.
func FromEulerDegrees[T core.Float](angles vec.Vec3[T]) Quat[T] {
	return FromEuler(vec.New3(
		core.DegreesToRadians(angles.X),
		core.DegreesToRadians(angles.Y),
		core.DegreesToRadians(angles.Z),
	))
}

// FromAxisAngle returns the rotation by angle radians about axis. The axis
// does not need to be normalized; a zero axis yields the identity.
func FromAxisAngle[T core.Float](axis vec.Vec3[T], angle T) Quat[T] {
	if axis == (vec.Vec3[T]{}) {
		return Identity[T]()
	}
	s, c := core.SinCos(angle / 2)
	a := axis.Normalized().Scale(s)
	return New(c, a.X, a.Y, a.Z)
}
