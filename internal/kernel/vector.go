package kernel

import (
	"github.com/cwbudde/algo-geom/geom/core"
	"github.com/cwbudde/algo-geom/internal/kernel/arch/generic"
)

// Mul4 returns the lane-wise product a[i] * b[i].
func Mul4[T core.Number](a, b [4]T) [4]T {
	switch x := any(a).(type) {
	case [4]float32:
		return any(backend().F32.Mul4(x, any(b).([4]float32))).([4]T)
	case [4]float64:
		return any(backend().F64.Mul4(x, any(b).([4]float64))).([4]T)
	}
	return generic.Mul4(a, b)
}

// Div4 returns the lane-wise quotient a[i] / b[i]. No lane of b may be zero;
// the saturating division policy is applied by the callers.
func Div4[T core.Number](a, b [4]T) [4]T {
	switch x := any(a).(type) {
	case [4]float32:
		return any(backend().F32.Div4(x, any(b).([4]float32))).([4]T)
	case [4]float64:
		return any(backend().F64.Div4(x, any(b).([4]float64))).([4]T)
	}
	return generic.Div4(a, b)
}

// Scale4 returns v[i] * s.
func Scale4[T core.Number](v [4]T, s T) [4]T {
	switch x := any(v).(type) {
	case [4]float32:
		return any(backend().F32.Scale4(x, any(s).(float32))).([4]T)
	case [4]float64:
		return any(backend().F64.Scale4(x, any(s).(float64))).([4]T)
	}
	return generic.Scale4(v, s)
}

// DivScale4 returns v[i] / s for s != 0.
func DivScale4[T core.Number](v [4]T, s T) [4]T {
	switch x := any(v).(type) {
	case [4]float32:
		return any(backend().F32.DivScale4(x, any(s).(float32))).([4]T)
	case [4]float64:
		return any(backend().F64.DivScale4(x, any(s).(float64))).([4]T)
	}
	return generic.DivScale4(v, s)
}

// Dot4 returns sum(a[i] * b[i]).
func Dot4[T core.Number](a, b [4]T) T {
	switch x := any(a).(type) {
	case [4]float32:
		return any(backend().F32.Dot4(x, any(b).([4]float32))).(T)
	case [4]float64:
		return any(backend().F64.Dot4(x, any(b).([4]float64))).(T)
	}
	return generic.Dot4(a, b)
}
