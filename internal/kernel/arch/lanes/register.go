package lanes

// f32x4 is one 128-bit register of float32 lanes.
type f32x4 [4]float32

// f64x2 is one 128-bit register of float64 lanes.
type f64x2 [2]float64

func set1ps(s float32) f32x4 { return f32x4{s, s, s, s} }

func mulps(a, b f32x4) f32x4 {
	return f32x4{float32(a[0] * b[0]), float32(a[1] * b[1]), float32(a[2] * b[2]), float32(a[3] * b[3])}
}

func divps(a, b f32x4) f32x4 {
	return f32x4{a[0] / b[0], a[1] / b[1], a[2] / b[2], a[3] / b[3]}
}

func addps(a, b f32x4) f32x4 {
	return f32x4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

// unpcklps interleaves the low halves: {a0, b0, a1, b1}.
func unpcklps(a, b f32x4) f32x4 { return f32x4{a[0], b[0], a[1], b[1]} }

// unpckhps interleaves the high halves: {a2, b2, a3, b3}.
func unpckhps(a, b f32x4) f32x4 { return f32x4{a[2], b[2], a[3], b[3]} }

// movlhps joins the low halves: {a0, a1, b0, b1}.
func movlhps(a, b f32x4) f32x4 { return f32x4{a[0], a[1], b[0], b[1]} }

// movhlps joins the high halves with b first: {b2, b3, a2, a3}.
func movhlps(a, b f32x4) f32x4 { return f32x4{b[2], b[3], a[2], a[3]} }

// hsumps reduces lanes left to right.
func hsumps(a f32x4) float32 {
	sum := a[0]
	sum += a[1]
	sum += a[2]
	sum += a[3]
	return sum
}

func set1pd(s float64) f64x2 { return f64x2{s, s} }

func mulpd(a, b f64x2) f64x2 { return f64x2{float64(a[0] * b[0]), float64(a[1] * b[1])} }

func divpd(a, b f64x2) f64x2 { return f64x2{a[0] / b[0], a[1] / b[1]} }

func addpd(a, b f64x2) f64x2 { return f64x2{a[0] + b[0], a[1] + b[1]} }

// unpcklpd returns {a0, b0}.
func unpcklpd(a, b f64x2) f64x2 { return f64x2{a[0], b[0]} }

// unpckhpd returns {a1, b1}.
func unpckhpd(a, b f64x2) f64x2 { return f64x2{a[1], b[1]} }

// loadpd splits a float64 4-vector into its low and high register.
func loadpd(v [4]float64) (lo, hi f64x2) {
	return f64x2{v[0], v[1]}, f64x2{v[2], v[3]}
}

func storepd(lo, hi f64x2) [4]float64 {
	return [4]float64{lo[0], lo[1], hi[0], hi[1]}
}
