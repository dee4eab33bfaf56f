//go:build amd64 && !purego

package sse2

import (
	"github.com/cwbudde/algo-geom/internal/cpu"
	"github.com/cwbudde/algo-geom/internal/kernel/arch/lanes"
	"github.com/cwbudde/algo-geom/internal/kernel/registry"
)

// init registers the SSE2 backend.
//
// float32 4-vectors fill one register; float64 4-vectors use a register pair,
// the same split the 128-bit tier has always used for double precision.
//
// Priority: 10 (medium - preferred over generic, but lower than AVX2)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "sse2",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,
		F32:       lanes.F32(),
		F64:       lanes.F64(),
	})
}
