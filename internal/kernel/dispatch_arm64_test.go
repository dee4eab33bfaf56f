//go:build arm64 && !purego

package kernel

import (
	"testing"

	"github.com/cwbudde/algo-geom/internal/cpu"
)

func TestDispatch_ARM64Modes(t *testing.T) {
	tests := []struct {
		name     string
		features cpu.Features
		wantImpl string
	}{
		{"generic-forced", cpu.Features{ForceGeneric: true, Architecture: "arm64"}, "generic"},
		{"neon", cpu.Features{HasNEON: true, Architecture: "arm64"}, "neon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu.SetForcedFeatures(tt.features)
			defer func() {
				cpu.ResetDetection()
				Reselect()
			}()
			Reselect()

			if got := Selected().Name; got != tt.wantImpl {
				t.Fatalf("expected %q, got %q", tt.wantImpl, got)
			}
		})
	}
}
