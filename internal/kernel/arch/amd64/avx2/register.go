//go:build amd64 && !purego && !noavx2

package avx2

import (
	"github.com/cwbudde/algo-geom/internal/cpu"
	"github.com/cwbudde/algo-geom/internal/kernel/registry"
)

// init registers the AVX2 backend.
//
// Aligned storage needs 32-byte register images when this backend is
// selected. Build with -tags noavx2 to cap amd64 at the 128-bit tier.
//
// Priority: 20 (highest on amd64)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx2",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,
		F32:       F32(),
		F64:       F64(),
	})
}
