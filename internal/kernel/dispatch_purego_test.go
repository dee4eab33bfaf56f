//go:build purego

package kernel

import (
	"testing"

	"github.com/cwbudde/algo-geom/internal/cpu"
)

func TestDispatch_PuregoUsesGeneric(t *testing.T) {
	cpu.SetForcedFeatures(cpu.Features{HasSSE2: true, HasAVX2: true, HasNEON: true})
	defer func() {
		cpu.ResetDetection()
		Reselect()
	}()
	Reselect()

	if got := Selected().Name; got != "generic" {
		t.Fatalf("expected generic implementation in purego, got %q", got)
	}
}
