package vec

import (
	"testing"

	"github.com/cwbudde/algo-geom/internal/cpu"
	"github.com/cwbudde/algo-geom/internal/kernel"
	"github.com/cwbudde/algo-geom/internal/testutil"
)

type vecResults struct {
	mul, div, scale, divScalar [4]float64
	dot                        float64
	mul32, divScalar32         [4]float32
	dot32                      float32
}

func runVecOps(rnd *testutil.Rand, n int) []vecResults {
	out := make([]vecResults, n)
	for i := range out {
		a, b, d := rnd.Vec4F64(), rnd.Vec4F64(), rnd.NonZeroVec4F64()
		s := rnd.NonZero()
		va, vb, vd := FromLanesA4(a), FromLanesA4(b), FromLanesA4(d)
		a32 := FromLanesA4(rnd.Vec4F32())
		b32 := FromLanesA4(rnd.Vec4F32())
		s32 := float32(rnd.NonZero())

		out[i] = vecResults{
			mul:         va.Mul(vb).Lanes(),
			div:         va.Div(vd).Lanes(),
			scale:       va.Scale(s).Lanes(),
			divScalar:   va.DivScalar(s).Lanes(),
			dot:         va.Dot(vb),
			mul32:       a32.Mul(b32).Lanes(),
			divScalar32: a32.DivScalar(s32).Lanes(),
			dot32:       a32.Dot(b32),
		}
	}
	return out
}

// TestSelectedBackendMatchesScalar runs the same inputs once on the selected
// backend and once with SIMD disabled.
func TestSelectedBackendMatchesScalar(t *testing.T) {
	const rounds = 200

	simd := runVecOps(testutil.NewRand(7, 100), rounds)

	cpu.SetForcedFeatures(cpu.Features{ForceGeneric: true})
	kernel.Reselect()
	scalar := runVecOps(testutil.NewRand(7, 100), rounds)
	cpu.ResetDetection()
	kernel.Reselect()

	t.Logf("backend: %s", kernel.Selected().Name)

	for i := range simd {
		s, r := simd[i], scalar[i]
		testutil.RequireSliceNearlyEqual(t, s.mul[:], r.mul[:], 1e-12)
		testutil.RequireSliceNearlyEqual(t, s.div[:], r.div[:], 1e-12)
		testutil.RequireSliceNearlyEqual(t, s.scale[:], r.scale[:], 1e-12)
		testutil.RequireSliceNearlyEqual(t, s.divScalar[:], r.divScalar[:], 1e-12)
		testutil.RequireSliceNearlyEqual(t, []float64{s.dot}, []float64{r.dot}, 1e-9)
		testutil.RequireSliceNearlyEqual(t, s.mul32[:], r.mul32[:], 0)
		testutil.RequireSliceNearlyEqual(t, s.divScalar32[:], r.divScalar32[:], 0)
		testutil.RequireSliceNearlyEqual(t, []float32{s.dot32}, []float32{r.dot32}, 0.05)
	}
}

func TestDivScalarMatchesScalarFloat32(t *testing.T) {
	inputs := []struct {
		v Vec4[float32]
		s float32
	}{
		{Vec4[float32]{X: -1.1289759, Y: 7, Z: 3, W: 0.3}, 3},
		{Vec4[float32]{X: 1e-5, Y: -2e-6, Z: 3e-7, W: 0}, 1e-40},
	}

	run := func() []Vec4[float32] {
		out := make([]Vec4[float32], len(inputs))
		for i, in := range inputs {
			out[i] = in.v.DivScalar(in.s)
		}
		return out
	}

	simd := run()
	cpu.SetForcedFeatures(cpu.Features{ForceGeneric: true})
	kernel.Reselect()
	scalar := run()
	cpu.ResetDetection()
	kernel.Reselect()

	for i := range simd {
		if simd[i] != scalar[i] {
			t.Errorf("%v.DivScalar(%v) on %s = %v, scalar %v",
				inputs[i].v, inputs[i].s, kernel.Selected().Name, simd[i], scalar[i])
		}
		got := simd[i]
		testutil.RequireFinite(t, []float32{got.X, got.Y, got.Z, got.W})
	}
	if scalar[0].Y != 7.0/3 {
		t.Errorf("7/3 = %v, want %v", scalar[0].Y, float32(7.0/3))
	}
}
