package kernel

import (
	"github.com/cwbudde/algo-geom/geom/core"
	"github.com/cwbudde/algo-geom/internal/kernel/arch/generic"
)

// MatMul returns l * r for column-major ([col][row]) matrices.
func MatMul[T core.Number](l, r [4][4]T) [4][4]T {
	switch x := any(l).(type) {
	case [4][4]float32:
		return any(backend().F32.MatMul(x, any(r).([4][4]float32))).([4][4]T)
	case [4][4]float64:
		return any(backend().F64.MatMul(x, any(r).([4][4]float64))).([4][4]T)
	}
	return generic.MatMul(l, r)
}

// MatVec returns m * v.
func MatVec[T core.Number](m [4][4]T, v [4]T) [4]T {
	switch x := any(m).(type) {
	case [4][4]float32:
		return any(backend().F32.MatVec(x, any(v).([4]float32))).([4]T)
	case [4][4]float64:
		return any(backend().F64.MatVec(x, any(v).([4]float64))).([4]T)
	}
	return generic.MatVec(m, v)
}

// Transpose returns the transpose of m.
func Transpose[T core.Number](m [4][4]T) [4][4]T {
	switch x := any(m).(type) {
	case [4][4]float32:
		return any(backend().F32.Transpose(x)).([4][4]T)
	case [4][4]float64:
		return any(backend().F64.Transpose(x)).([4][4]T)
	}
	return generic.Transpose(m)
}
