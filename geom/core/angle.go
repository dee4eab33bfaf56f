package core

import "math"

// Pi in the precision of T.
func Pi[T Float]() T { return T(math.Pi) }

// DegreesToRadians converts degrees to radians.
func DegreesToRadians[T Float](deg T) T {
	return deg * T(math.Pi/180)
}

// RadiansToDegrees converts radians to degrees.
func RadiansToDegrees[T Float](rad T) T {
	return rad * T(180/math.Pi)
}

// RadiansToTurns converts radians to full turns (1 turn = 2*Pi).
func RadiansToTurns[T Float](rad T) T {
	return rad * T(1/(2*math.Pi))
}

// TurnsToRadians converts full turns to radians.
func TurnsToRadians[T Float](turns T) T {
	return turns * T(2*math.Pi)
}
