//go:build amd64 && !purego && !noavx2

package kernel

import (
	"testing"

	"github.com/cwbudde/algo-geom/internal/cpu"
)

func TestDispatch_AMD64Modes(t *testing.T) {
	tests := []struct {
		name          string
		features      cpu.Features
		wantImpl      string
		wantAlignment int
	}{
		{
			name:          "generic-forced",
			features:      cpu.Features{ForceGeneric: true, Architecture: "amd64"},
			wantImpl:      "generic",
			wantAlignment: 8,
		},
		{
			name:          "sse2",
			features:      cpu.Features{HasSSE2: true, Architecture: "amd64"},
			wantImpl:      "sse2",
			wantAlignment: 16,
		},
		{
			name:          "avx2",
			features:      cpu.Features{HasSSE2: true, HasAVX2: true, Architecture: "amd64"},
			wantImpl:      "avx2",
			wantAlignment: 32,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu.SetForcedFeatures(tt.features)
			defer func() {
				cpu.ResetDetection()
				Reselect()
			}()
			Reselect()

			b := Selected()
			if b.Name != tt.wantImpl {
				t.Fatalf("expected %q, got %q", tt.wantImpl, b.Name)
			}
			if b.Alignment != tt.wantAlignment {
				t.Fatalf("alignment = %d, want %d", b.Alignment, tt.wantAlignment)
			}

			a := [4]float32{1, 2, 3, 4}
			if got := Dot4(a, a); got != 30 {
				t.Fatalf("Dot4 = %v, want 30", got)
			}
		})
	}
}

func BenchmarkMatMul_Dispatch_AMD64(b *testing.B) {
	modes := []struct {
		name     string
		features cpu.Features
	}{
		{"Generic", cpu.Features{ForceGeneric: true, Architecture: "amd64"}},
		{"SSE2", cpu.Features{HasSSE2: true, Architecture: "amd64"}},
		{"AVX2", cpu.Features{HasSSE2: true, HasAVX2: true, Architecture: "amd64"}},
	}

	l := [4][4]float32{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}, {13, 14, 15, 16}}
	r := l

	for _, mode := range modes {
		b.Run(mode.name, func(b *testing.B) {
			cpu.SetForcedFeatures(mode.features)
			defer func() {
				cpu.ResetDetection()
				Reselect()
			}()
			Reselect()

			b.ReportAllocs()
			b.ResetTimer()

			var sink [4][4]float32
			for i := 0; i < b.N; i++ {
				sink = MatMul(l, r)
			}
			_ = sink
		})
	}
}
