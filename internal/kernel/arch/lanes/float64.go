package lanes

// Mul4F64 multiplies a register pair lane-wise.
func Mul4F64(a, b [4]float64) [4]float64 {
	alo, ahi := loadpd(a)
	blo, bhi := loadpd(b)
	return storepd(mulpd(alo, blo), mulpd(ahi, bhi))
}

// Div4F64 divides a register pair lane-wise.
func Div4F64(a, b [4]float64) [4]float64 {
	alo, ahi := loadpd(a)
	blo, bhi := loadpd(b)
	return storepd(divpd(alo, blo), divpd(ahi, bhi))
}

// Scale4F64 multiplies by a broadcast scalar.
func Scale4F64(v [4]float64, s float64) [4]float64 {
	lo, hi := loadpd(v)
	k := set1pd(s)
	return storepd(mulpd(lo, k), mulpd(hi, k))
}

// DivScale4F64 divides by a broadcast scalar.
func DivScale4F64(v [4]float64, s float64) [4]float64 {
	lo, hi := loadpd(v)
	k := set1pd(s)
	return storepd(divpd(lo, k), divpd(hi, k))
}

// Dot4F64 multiplies both halves and reduces the four lanes in order.
func Dot4F64(a, b [4]float64) float64 {
	alo, ahi := loadpd(a)
	blo, bhi := loadpd(b)
	plo := mulpd(alo, blo)
	phi := mulpd(ahi, bhi)
	sum := plo[0]
	sum += plo[1]
	sum += phi[0]
	sum += phi[1]
	return sum
}

// MatMulF64 is MatMulF32 on register pairs.
func MatMulF64(l, r [4][4]float64) [4][4]float64 {
	var out [4][4]float64
	for j := 0; j < 4; j++ {
		out[j] = combineF64(l, r[j])
	}
	return out
}

// MatVecF64 is MatMulF64 for a single right column.
func MatVecF64(m [4][4]float64, v [4]float64) [4]float64 {
	return combineF64(m, v)
}

func combineF64(m [4][4]float64, e [4]float64) [4]float64 {
	lo0, hi0 := loadpd(m[0])
	k := set1pd(e[0])
	accLo, accHi := mulpd(lo0, k), mulpd(hi0, k)
	for c := 1; c < 4; c++ {
		lo, hi := loadpd(m[c])
		k = set1pd(e[c])
		accLo = addpd(accLo, mulpd(lo, k))
		accHi = addpd(accHi, mulpd(hi, k))
	}
	return storepd(accLo, accHi)
}

// TransposeF64 transposes 2x2 blocks with unpcklpd/unpckhpd; the off-diagonal
// blocks swap places.
func TransposeF64(m [4][4]float64) [4][4]float64 {
	var lo, hi [4]f64x2
	for c := 0; c < 4; c++ {
		lo[c], hi[c] = loadpd(m[c])
	}
	return [4][4]float64{
		storepd(unpcklpd(lo[0], lo[1]), unpcklpd(lo[2], lo[3])),
		storepd(unpckhpd(lo[0], lo[1]), unpckhpd(lo[2], lo[3])),
		storepd(unpcklpd(hi[0], hi[1]), unpcklpd(hi[2], hi[3])),
		storepd(unpckhpd(hi[0], hi[1]), unpckhpd(hi[2], hi[3])),
	}
}
