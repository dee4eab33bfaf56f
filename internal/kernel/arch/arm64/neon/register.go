//go:build arm64 && !purego

package neon

import (
	"github.com/cwbudde/algo-geom/internal/cpu"
	"github.com/cwbudde/algo-geom/internal/kernel/arch/lanes"
	"github.com/cwbudde/algo-geom/internal/kernel/registry"
)

// init registers the NEON backend.
//
// NEON (ARM Advanced SIMD) is mandatory on ARMv8, so it's available on all
// arm64 CPUs. Its register shape matches SSE2, so it shares the lane kernels.
//
// Priority: 15 (ARM's preferred backend)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "neon",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  15,
		F32:       lanes.F32(),
		F64:       lanes.F64(),
	})
}
