package generic

import (
	"github.com/cwbudde/algo-geom/internal/cpu"
	"github.com/cwbudde/algo-geom/internal/kernel/registry"
)

// init registers the scalar kernels with the backend registry.
//
// They are the fallback when no SIMD backend is compiled in or supported and
// when ForceGeneric is set.
//
// Priority: 0 (lowest - used only when no SIMD alternatives are available)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		F32:       Ops[float32](),
		F64:       Ops[float64](),
	})
}

// Ops returns the scalar operation table for T.
func Ops[T registry.Element]() registry.Ops[T] {
	return registry.Ops[T]{
		Mul4:      Mul4[T],
		Div4:      Div4[T],
		Scale4:    Scale4[T],
		DivScale4: DivScale4[T],
		Dot4:      Dot4[T],
		MatMul:    MatMul[T],
		MatVec:    MatVec[T],
		Transpose: Transpose[T],
	}
}
