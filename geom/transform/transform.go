// Package transform builds the homogeneous 4x4 matrices for translation,
// scaling and rotation.
//
// Each builder has a compose variant taking a base matrix and returning
// base.Mul(built): applied to a vector, the new transform runs first and
// the base after it. Rotations are right-handed, angles in radians.
package transform

import (
	"github.com/cwbudde/algo-geom/geom/core"
	"github.com/cwbudde/algo-geom/geom/mat"
	"github.com/cwbudde/algo-geom/geom/vec"
)

// AxisX returns the unit x axis.
func AxisX[T core.Number]() vec.Vec3[T] { return vec.New3[T](1, 0, 0) }

// AxisY returns the unit y axis.
func AxisY[T core.Number]() vec.Vec3[T] { return vec.New3[T](0, 1, 0) }

// AxisZ returns the unit z axis.
func AxisZ[T core.Number]() vec.Vec3[T] { return vec.New3[T](0, 0, 1) }

// Translation returns the matrix that moves points by v.
func Translation[T core.Number](v vec.Vec3[T]) mat.Mat4[T] {
	return mat.New(
		1, 0, 0, v.X,
		0, 1, 0, v.Y,
		0, 0, 1, v.Z,
		0, 0, 0, 1,
	)
}

// Scaling returns the matrix that scales each axis by the matching
// component of v.
func Scaling[T core.Number](v vec.Vec3[T]) mat.Mat4[T] {
	return mat.New(
		v.X, 0, 0, 0,
		0, v.Y, 0, 0,
		0, 0, v.Z, 0,
		0, 0, 0, 1,
	)
}

// RotationX returns the rotation by angle about the x axis.
func RotationX[T core.Float](angle T) mat.Mat4[T] {
	s, c := core.SinCos(angle)
	return mat.New(
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	)
}

// RotationY returns the rotation by angle about the y axis.
func RotationY[T core.Float](angle T) mat.Mat4[T] {
	s, c := core.SinCos(angle)
	return mat.New(
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	)
}

// RotationZ returns the rotation by angle about the z axis.
func RotationZ[T core.Float](angle T) mat.Mat4[T] {
	s, c := core.SinCos(angle)
	return mat.New(
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// RotationAxis returns the rotation by angle about axis (Rodrigues'
// formula). The axis is normalized first and must not be zero.
func RotationAxis[T core.Float](angle T, axis vec.Vec3[T]) mat.Mat4[T] {
	s, c := core.SinCos(angle)
	t := 1 - c
	a := axis.Normalized()
	x, y, z := a.X, a.Y, a.Z

	return mat.New(
		c+x*x*t, x*y*t-z*s, x*z*t+y*s, 0,
		y*x*t+z*s, c+y*y*t, y*z*t-x*s, 0,
		z*x*t-y*s, z*y*t+x*s, c+z*z*t, 0,
		0, 0, 0, 1,
	)
}

// Translate returns base * Translation(v).
func Translate[T core.Number](base mat.Mat4[T], v vec.Vec3[T]) mat.Mat4[T] {
	return base.Mul(Translation(v))
}

// Scale returns base * Scaling(v).
func Scale[T core.Number](base mat.Mat4[T], v vec.Vec3[T]) mat.Mat4[T] {
	return base.Mul(Scaling(v))
}

// RotateX returns base * RotationX(angle).
func RotateX[T core.Float](base mat.Mat4[T], angle T) mat.Mat4[T] {
	return base.Mul(RotationX(angle))
}

// RotateY returns base * RotationY(angle).
func RotateY[T core.Float](base mat.Mat4[T], angle T) mat.Mat4[T] {
	return base.Mul(RotationY(angle))
}

// RotateZ returns base * RotationZ(angle).
func RotateZ[T core.Float](base mat.Mat4[T], angle T) mat.Mat4[T] {
	return base.Mul(RotationZ(angle))
}

// RotateAxis returns base * RotationAxis(angle, axis).
func RotateAxis[T core.Float](base mat.Mat4[T], angle T, axis vec.Vec3[T]) mat.Mat4[T] {
	return base.Mul(RotationAxis(angle, axis))
}
