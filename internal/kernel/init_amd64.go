//go:build amd64 && !purego

package kernel

// This file imports the amd64 backend packages to trigger their init()
// functions, which register them with the global registry.

import (
	_ "github.com/cwbudde/algo-geom/internal/kernel/arch/amd64/avx2" // register AVX2 backend (unless noavx2)
	_ "github.com/cwbudde/algo-geom/internal/kernel/arch/amd64/sse2" // register SSE2 backend
	_ "github.com/cwbudde/algo-geom/internal/kernel/arch/generic"    // register scalar backend
)
