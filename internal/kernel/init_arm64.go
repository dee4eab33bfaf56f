//go:build arm64 && !purego

package kernel

import (
	_ "github.com/cwbudde/algo-geom/internal/kernel/arch/arm64/neon" // register NEON backend
	_ "github.com/cwbudde/algo-geom/internal/kernel/arch/generic"    // register scalar backend
)
