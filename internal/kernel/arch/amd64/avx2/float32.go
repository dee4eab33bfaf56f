package avx2

import (
	"github.com/viterin/vek/vek32"

	"github.com/cwbudde/algo-geom/internal/kernel/arch/lanes"
)

// Mul4F32 multiplies lane-wise.
func Mul4F32(a, b [4]float32) [4]float32 {
	var out [4]float32
	vek32.Mul_Into(out[:], a[:], b[:])
	return out
}

// Div4F32 divides lane-wise.
func Div4F32(a, b [4]float32) [4]float32 {
	var out [4]float32
	vek32.Div_Into(out[:], a[:], b[:])
	return out
}

// Scale4F32 multiplies by s.
func Scale4F32(v [4]float32, s float32) [4]float32 {
	var out [4]float32
	vek32.MulNumber_Into(out[:], v[:], s)
	return out
}

// DivScale4F32 divides by a broadcast s. vek32.DivNumber_Into multiplies by
// the reciprocal, which rounds differently and overflows on subnormal s.
func DivScale4F32(v [4]float32, s float32) [4]float32 {
	var out [4]float32
	d := [4]float32{s, s, s, s}
	vek32.Div_Into(out[:], v[:], d[:])
	return out
}

// Dot4F32 returns the dot product. vek32 may reduce in a different order than
// the scalar reference; results agree to float32 rounding.
func Dot4F32(a, b [4]float32) float32 {
	return vek32.Dot(a[:], b[:])
}

// MatMulF32 computes two result columns per 8-lane register: the left column
// k is duplicated into both halves and multiplied by the broadcast elements
// r[j][k] and r[j+1][k].
func MatMulF32(l, r [4][4]float32) [4][4]float32 {
	var dup [4][8]float32
	for k := 0; k < 4; k++ {
		copy(dup[k][:4], l[k][:])
		copy(dup[k][4:], l[k][:])
	}

	var out [4][4]float32
	for j := 0; j < 4; j += 2 {
		var acc, prod, bcast [8]float32
		for k := 0; k < 4; k++ {
			for i := 0; i < 4; i++ {
				bcast[i] = r[j][k]
				bcast[4+i] = r[j+1][k]
			}
			if k == 0 {
				vek32.Mul_Into(acc[:], dup[k][:], bcast[:])
				continue
			}
			vek32.Mul_Into(prod[:], dup[k][:], bcast[:])
			vek32.Add_Inplace(acc[:], prod[:])
		}
		copy(out[j][:], acc[:4])
		copy(out[j+1][:], acc[4:])
	}
	return out
}

// MatVecF32 accumulates the matrix columns scaled by the vector elements.
func MatVecF32(m [4][4]float32, v [4]float32) [4]float32 {
	var acc, prod [4]float32
	vek32.MulNumber_Into(acc[:], m[0][:], v[0])
	for k := 1; k < 4; k++ {
		vek32.MulNumber_Into(prod[:], m[k][:], v[k])
		vek32.Add_Inplace(acc[:], prod[:])
	}
	return acc
}

// TransposeF32 reuses the 128-bit shuffle network; a 4x4 float32 tile fits in
// four xmm registers and gains nothing from ymm lanes.
func TransposeF32(m [4][4]float32) [4][4]float32 {
	return lanes.TransposeF32(m)
}
