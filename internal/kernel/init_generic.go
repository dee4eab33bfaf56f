//go:build (!amd64 && !arm64) || purego

package kernel

import (
	_ "github.com/cwbudde/algo-geom/internal/kernel/arch/generic" // register scalar backend
)
