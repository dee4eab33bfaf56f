package lanes

import "github.com/cwbudde/algo-geom/internal/kernel/registry"

// F32 returns the float32 operation table.
func F32() registry.Ops[float32] {
	return registry.Ops[float32]{
		Mul4:      Mul4F32,
		Div4:      Div4F32,
		Scale4:    Scale4F32,
		DivScale4: DivScale4F32,
		Dot4:      Dot4F32,
		MatMul:    MatMulF32,
		MatVec:    MatVecF32,
		Transpose: TransposeF32,
	}
}

// F64 returns the float64 operation table.
func F64() registry.Ops[float64] {
	return registry.Ops[float64]{
		Mul4:      Mul4F64,
		Div4:      Div4F64,
		Scale4:    Scale4F64,
		DivScale4: DivScale4F64,
		Dot4:      Dot4F64,
		MatMul:    MatMulF64,
		MatVec:    MatVecF64,
		Transpose: TransposeF64,
	}
}
