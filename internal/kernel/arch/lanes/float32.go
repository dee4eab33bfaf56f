package lanes

// Mul4F32 multiplies lane-wise with one mulps.
func Mul4F32(a, b [4]float32) [4]float32 {
	return mulps(a, b)
}

// Div4F32 divides lane-wise with one divps.
func Div4F32(a, b [4]float32) [4]float32 {
	return divps(a, b)
}

// Scale4F32 multiplies by a broadcast scalar.
func Scale4F32(v [4]float32, s float32) [4]float32 {
	return mulps(v, set1ps(s))
}

// DivScale4F32 divides by a broadcast scalar.
func DivScale4F32(v [4]float32, s float32) [4]float32 {
	return divps(v, set1ps(s))
}

// Dot4F32 multiplies in one register and reduces the lanes in order.
func Dot4F32(a, b [4]float32) float32 {
	return hsumps(mulps(a, b))
}

// MatMulF32 computes each result column as the left columns scaled by the
// broadcast elements of the matching right column.
func MatMulF32(l, r [4][4]float32) [4][4]float32 {
	var out [4][4]float32
	for j := 0; j < 4; j++ {
		out[j] = combineF32(l, r[j])
	}
	return out
}

// MatVecF32 is MatMulF32 for a single right column.
func MatVecF32(m [4][4]float32, v [4]float32) [4]float32 {
	return combineF32(m, v)
}

func combineF32(m [4][4]float32, e [4]float32) [4]float32 {
	acc := mulps(m[0], set1ps(e[0]))
	acc = addps(acc, mulps(m[1], set1ps(e[1])))
	acc = addps(acc, mulps(m[2], set1ps(e[2])))
	acc = addps(acc, mulps(m[3], set1ps(e[3])))
	return acc
}

// TransposeF32 is the unpack/move sequence of _MM_TRANSPOSE4_PS.
func TransposeF32(m [4][4]float32) [4][4]float32 {
	t0 := unpcklps(m[0], m[1])
	t2 := unpcklps(m[2], m[3])
	t1 := unpckhps(m[0], m[1])
	t3 := unpckhps(m[2], m[3])
	return [4][4]float32{
		movlhps(t0, t2),
		movhlps(t2, t0),
		movlhps(t1, t3),
		movhlps(t3, t1),
	}
}
