package avx2

import (
	vecmath "github.com/cwbudde/algo-vecmath"
	"github.com/viterin/vek"

	"github.com/cwbudde/algo-geom/internal/kernel/arch/lanes"
)

// Mul4F64 multiplies lane-wise.
func Mul4F64(a, b [4]float64) [4]float64 {
	var out [4]float64
	vecmath.MulBlock(out[:], a[:], b[:])
	return out
}

// Div4F64 divides lane-wise.
func Div4F64(a, b [4]float64) [4]float64 {
	var out [4]float64
	vek.Div_Into(out[:], a[:], b[:])
	return out
}

// Scale4F64 multiplies by s.
func Scale4F64(v [4]float64, s float64) [4]float64 {
	var out [4]float64
	vecmath.ScaleBlock(out[:], v[:], s)
	return out
}

// DivScale4F64 divides by a broadcast s, rounding the same way as Div4F64.
func DivScale4F64(v [4]float64, s float64) [4]float64 {
	var out [4]float64
	d := [4]float64{s, s, s, s}
	vek.Div_Into(out[:], v[:], d[:])
	return out
}

// Dot4F64 returns the dot product.
func Dot4F64(a, b [4]float64) float64 {
	return vek.Dot(a[:], b[:])
}

// MatMulF64 builds each result column as scaled left columns accumulated in
// k order; one float64 column is one ymm register.
func MatMulF64(l, r [4][4]float64) [4][4]float64 {
	var out [4][4]float64
	for j := 0; j < 4; j++ {
		out[j] = MatVecF64(l, r[j])
	}
	return out
}

// MatVecF64 accumulates the matrix columns scaled by the vector elements.
func MatVecF64(m [4][4]float64, v [4]float64) [4]float64 {
	var acc, prod [4]float64
	vecmath.ScaleBlock(acc[:], m[0][:], v[0])
	for k := 1; k < 4; k++ {
		vecmath.ScaleBlock(prod[:], m[k][:], v[k])
		vecmath.AddBlockInPlace(acc[:], prod[:])
	}
	return acc
}

// TransposeF64 reuses the 128-bit 2x2 block transpose.
func TransposeF64(m [4][4]float64) [4][4]float64 {
	return lanes.TransposeF64(m)
}
