package core

import (
	"math"

	"github.com/chewxy/math32"
)

// Sqrt returns the square root of x in the precision of T.
// Integer types are rounded toward zero.
func Sqrt[T Number](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Sqrt(f))
	}
	return T(math.Sqrt(float64(x)))
}

// Sin returns the sine of the radian argument x.
func Sin[T Float](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Sin(f))
	}
	return T(math.Sin(float64(x)))
}

// Cos returns the cosine of the radian argument x.
func Cos[T Float](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Cos(f))
	}
	return T(math.Cos(float64(x)))
}

// Tan returns the tangent of the radian argument x.
func Tan[T Float](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Tan(f))
	}
	return T(math.Tan(float64(x)))
}

// SinCos returns Sin(x), Cos(x).
func SinCos[T Float](x T) (sin, cos T) {
	return Sin(x), Cos(x)
}

// InverseSqrtFast approximates 1/sqrt(x) with one Newton step of the classic
// bit-level estimate. Relative error stays below 0.2% for positive normal
// inputs; x <= 0 returns +Inf for x == 0 and NaN otherwise, like 1/Sqrt.
func InverseSqrtFast[T Float](x T) T {
	if x <= 0 {
		return T(1 / math.Sqrt(float64(x)))
	}
	if f, ok := any(x).(float32); ok {
		half := 0.5 * f
		i := math.Float32bits(f)
		i = 0x5f3759df - i>>1
		y := math.Float32frombits(i)
		return T(y * (1.5 - half*y*y))
	}
	f := float64(x)
	half := 0.5 * f
	i := math.Float64bits(f)
	i = 0x5fe6eb50c7b537a9 - i>>1
	y := math.Float64frombits(i)
	return T(y * (1.5 - half*y*y))
}
