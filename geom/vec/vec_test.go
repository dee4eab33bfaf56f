package vec

import (
	"math"
	"testing"
)

func TestNegIsAdditiveInverse(t *testing.T) {
	t.Run("float32", func(t *testing.T) { checkNegInverse(t, float32(1.5), float32(-2.25), float32(3), float32(7)) })
	t.Run("float64", func(t *testing.T) { checkNegInverse(t, 1.5, -2.25, 3.0, 7.0) })
	t.Run("int32", func(t *testing.T) { checkNegInverse(t, int32(1), int32(-2), int32(3), int32(-4)) })
	t.Run("uint8", func(t *testing.T) { checkNegInverse(t, uint8(1), uint8(200), uint8(3), uint8(255)) })
}

func checkNegInverse[T float32 | float64 | int32 | uint8](t *testing.T, x, y, z, w T) {
	t.Helper()

	if got := New2(x, y).Add(New2(x, y).Neg()); got != (Vec2[T]{}) {
		t.Errorf("Vec2: v + (-v) = %v", got)
	}
	if got := New3(x, y, z).Add(New3(x, y, z).Neg()); got != (Vec3[T]{}) {
		t.Errorf("Vec3: v + (-v) = %v", got)
	}
	if got := New4(x, y, z, w).Add(New4(x, y, z, w).Neg()); got != (Vec4[T]{}) {
		t.Errorf("Vec4: v + (-v) = %v", got)
	}
	if got := NewA2(x, y).Add(NewA2(x, y).Neg()); got.Lanes() != ([4]T{}) {
		t.Errorf("Vec2A: v + (-v) = %v", got)
	}
	if got := NewA3(x, y, z).Add(NewA3(x, y, z).Neg()); got.Lanes() != ([4]T{}) {
		t.Errorf("Vec3A: v + (-v) = %v", got)
	}
	if got := NewA4(x, y, z, w).Add(NewA4(x, y, z, w).Neg()); got.Lanes() != ([4]T{}) {
		t.Errorf("Vec4A: v + (-v) = %v", got)
	}
}

func TestDivisionSaturates(t *testing.T) {
	tests := []struct {
		name string
		got  any
		want any
	}{
		{"Vec2/0", New2(1.0, 2.0).DivScalar(0), Vec2[float64]{}},
		{"Vec3/0", New3(1.0, 2.0, 3.0).DivScalar(0), Vec3[float64]{}},
		{"Vec4/0", New4[float32](1, 2, 3, 4).DivScalar(0), Vec4[float32]{}},
		{"Vec4 int/0", New4(1, 2, 3, 4).DivScalar(0), Vec4[int]{}},
		{"Vec2A/0", NewA2(1.0, 2.0).DivScalar(0).Lanes(), [4]float64{}},
		{"Vec3A/0", NewA3[float32](1, 2, 3).DivScalar(0).Lanes(), [4]float32{}},
		{"Vec4A/0", NewA4(1.0, 2.0, 3.0, 4.0).DivScalar(0).Lanes(), [4]float64{}},
		{"Vec2 zero lane", New2(1.0, 2.0).Div(New2(1.0, 0.0)), Vec2[float64]{}},
		{"Vec3 zero lane", New3(1.0, 2.0, 3.0).Div(New3(0.0, 1.0, 1.0)), Vec3[float64]{}},
		{"Vec4 zero lane", New4(1.0, 2.0, 3.0, 4.0).Div(New4(1.0, 1.0, 1.0, 0.0)), Vec4[float64]{}},
		{"Vec3A zero lane", NewA3(1.0, 2.0, 3.0).Div(NewA3(1.0, 0.0, 1.0)).Lanes(), [4]float64{}},
		{"Vec4A zero lane", NewA4[float32](1, 2, 3, 4).Div(NewA4[float32](1, 1, 0, 1)).Lanes(), [4]float32{}},
		{"Vec4 int zero lane", New4(8, 6, 4, 2).Div(New4(2, 0, 2, 2)), Vec4[int]{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestAlignedDivIgnoresPadding(t *testing.T) {
	// Padding divisor lanes are zero; only live lanes decide saturation.
	got := NewA3(2.0, 6.0, 12.0).Div(NewA3(1.0, 2.0, 3.0))
	if want := NewA3(2.0, 3.0, 4.0); !got.Equal(want) {
		t.Fatalf("Vec3A.Div = %v, want %v", got, want)
	}
	if l := got.Lanes(); l[3] != 0 {
		t.Fatalf("padding lane = %v, want 0", l[3])
	}

	got2 := NewA2[float32](3, 8).Div(NewA2[float32](3, 2))
	if want := NewA2[float32](1, 4); !got2.Equal(want) {
		t.Fatalf("Vec2A.Div = %v, want %v", got2, want)
	}
}

func TestComponentWise(t *testing.T) {
	a := New4(1.0, 2.0, 3.0, 4.0)
	b := New4(2.0, 4.0, 6.0, 8.0)

	if got := a.Mul(b); got != New4(2.0, 8.0, 18.0, 32.0) {
		t.Errorf("Mul = %v", got)
	}
	if got := b.Div(a); got != Splat4(2.0) {
		t.Errorf("Div = %v", got)
	}
	if got := a.Scale(0.5); got != New4(0.5, 1.0, 1.5, 2.0) {
		t.Errorf("Scale = %v", got)
	}
	if got := b.DivScalar(2); got != a {
		t.Errorf("DivScalar = %v", got)
	}
	if got := a.AddScalar(1); got != New4(2.0, 3.0, 4.0, 5.0) {
		t.Errorf("AddScalar = %v", got)
	}
	if got := a.SubScalar(1); got != New4(0.0, 1.0, 2.0, 3.0) {
		t.Errorf("SubScalar = %v", got)
	}
	if got := b.Sub(a); got != a {
		t.Errorf("Sub = %v", got)
	}

	v3 := New3[int32](1, 2, 3)
	if got := v3.Mul(New3[int32](4, 5, 6)); got != New3[int32](4, 10, 18) {
		t.Errorf("Vec3 Mul = %v", got)
	}
	if got := New3[int32](8, 10, 18).Div(New3[int32](4, 5, 6)); got != New3[int32](2, 2, 3) {
		t.Errorf("Vec3 Div = %v", got)
	}
	if got := New2[uint16](3, 4).Scale(2); got != New2[uint16](6, 8) {
		t.Errorf("Vec2 Scale = %v", got)
	}
}

func TestDotAndCrossScenario(t *testing.T) {
	a, b := New3(1.0, 2.0, 3.0), New3(4.0, 5.0, 6.0)
	wantCross := New3(-3.0, 6.0, -3.0)

	if got := a.Dot(b); got != 32 {
		t.Errorf("Vec3 Dot = %v, want 32", got)
	}
	if got := a.Cross(b); got != wantCross {
		t.Errorf("Vec3 Cross = %v, want %v", got, wantCross)
	}

	aa, ba := a.Aligned(), b.Aligned()
	if got := aa.Dot(ba); got != 32 {
		t.Errorf("Vec3A Dot = %v, want 32", got)
	}
	if got := aa.Cross(ba); !got.Equal(wantCross.Aligned()) {
		t.Errorf("Vec3A Cross = %v, want %v", got, wantCross)
	}

	a4, b4 := Dir4[float32](1, 2, 3), Dir4[float32](4, 5, 6)
	if got := a4.Dot(b4); got != 32 {
		t.Errorf("Vec4 Dot = %v, want 32", got)
	}
	if got := Point4[float32](1, 2, 3).Cross3D(Point4[float32](4, 5, 6)); got != Dir4[float32](-3, 6, -3) {
		t.Errorf("Vec4 Cross3D = %v", got)
	}
	if got := PointA4(1.0, 2.0, 3.0).Cross3D(PointA4(4.0, 5.0, 6.0)); !got.Equal(DirA4(-3.0, 6.0, -3.0)) {
		t.Errorf("Vec4A Cross3D = %v", got)
	}

	if got := New3(1, 2, 3).Cross(New3(4, 5, 6)); got != New3(-3, 6, -3) {
		t.Errorf("int Vec3 Cross = %v", got)
	}
}

func TestCrossIsRightHanded(t *testing.T) {
	x, y, z := New3(1.0, 0.0, 0.0), New3(0.0, 1.0, 0.0), New3(0.0, 0.0, 1.0)
	if got := x.Cross(y); got != z {
		t.Errorf("x cross y = %v, want z", got)
	}
	if got := y.Cross(z); got != x {
		t.Errorf("y cross z = %v, want x", got)
	}
	if got := z.Cross(x); got != y {
		t.Errorf("z cross x = %v, want y", got)
	}
}

func TestLengthAndNormalize(t *testing.T) {
	v := New3(3.0, 0.0, 4.0)
	if got := v.Length(); got != 5 {
		t.Fatalf("Length = %v, want 5", got)
	}
	if got := v.LengthSquared(); got != 25 {
		t.Fatalf("LengthSquared = %v, want 25", got)
	}
	if got := v.Normalized(); got != New3(0.6, 0.0, 0.8) {
		t.Fatalf("Normalized = %v", got)
	}

	v4 := New4[float32](1, 1, 1, 1)
	v4.Normalize()
	if got := v4; !got.ApproxEqual(Splat4[float32](0.5), 1e-7) {
		t.Fatalf("Normalize = %v", got)
	}

	a := NewA2(0.0, -2.0)
	a.Normalize()
	if !a.Equal(NewA2(0.0, -1.0)) {
		t.Fatalf("Vec2A Normalize = %v", a)
	}
}

func TestNormalizeZeroIsUnchanged(t *testing.T) {
	if got := (Vec2[float64]{}).Normalized(); got != (Vec2[float64]{}) {
		t.Errorf("Vec2 zero normalized = %v", got)
	}
	if got := (Vec3[float32]{}).Normalized(); got != (Vec3[float32]{}) {
		t.Errorf("Vec3 zero normalized = %v", got)
	}
	v := Vec4[float64]{}
	v.Normalize()
	if v != (Vec4[float64]{}) {
		t.Errorf("Vec4 zero normalize = %v", v)
	}
	a := Vec3A[float64]{}
	a.Normalize()
	if a.Lanes() != ([4]float64{}) {
		t.Errorf("Vec3A zero normalize = %v", a)
	}
	for _, f := range []float64{a.Length(), v.Length()} {
		if math.IsNaN(f) {
			t.Fatal("zero length is NaN")
		}
	}
}

func TestInverseLengthFast(t *testing.T) {
	v := New3(3.0, 0.0, 4.0)
	if got := v.InverseLengthFast(); math.Abs(got-0.2) > 0.2*2e-3 {
		t.Errorf("Vec3 InverseLengthFast = %v, want ~0.2", got)
	}
	a := NewA4[float32](1, 1, 1, 1)
	if got := a.InverseLengthFast(); math.Abs(float64(got)-0.5) > 0.5*2e-3 {
		t.Errorf("Vec4A InverseLengthFast = %v, want ~0.5", got)
	}
	if got := New2(0, 0).InverseLengthFast(); got != 0 {
		t.Errorf("int zero InverseLengthFast = %v, want 0", got)
	}
}

func TestEquality(t *testing.T) {
	a := New4(1.0, 2.0, 3.0, 4.0)
	if !a.Equal(New4(1.0, 2.0, 3.0, 4.0)) || a.NotEqual(New4(1.0, 2.0, 3.0, 4.0)) {
		t.Error("equal vectors compare unequal")
	}
	if a.Equal(New4(1.0, 2.0, 3.0, 4.000001)) {
		t.Error("Equal must be exact")
	}
	if !a.ApproxEqual(New4(1.0, 2.0, 3.0, 4.000001), 1e-5) {
		t.Error("ApproxEqual rejected values within eps")
	}
	if !NewA3(1, 2, 3).NotEqual(NewA3(1, 2, 4)) {
		t.Error("Vec3A NotEqual")
	}
}

func TestAtSet(t *testing.T) {
	v := New4(1, 2, 3, 4)
	for i := 0; i < 4; i++ {
		if got := v.At(i); got != i+1 {
			t.Errorf("At(%d) = %d", i, got)
		}
		v.Set(i, 10*i)
	}
	if v != New4(0, 10, 20, 30) {
		t.Errorf("after Set: %v", v)
	}

	var p Vec3[float32]
	p.Set(2, 7)
	if p.Z != 7 || p.At(2) != 7 {
		t.Errorf("Vec3 Set/At = %v", p)
	}

	a := NewA3(1.0, 2.0, 3.0)
	a.Set(1, 5)
	if a.Y() != 5 || a.At(1) != 5 {
		t.Errorf("Vec3A Set/At = %v", a)
	}
}

func TestAlignedPaddingStaysZero(t *testing.T) {
	a := NewA3(1.0, 2.0, 3.0)

	checks := map[string]Vec3A[float64]{
		"AddScalar":  a.AddScalar(5),
		"SubScalar":  a.SubScalar(5),
		"Scale(Inf)": a.Scale(math.Inf(1)),
		"Splat":      SplatA3(9.0),
		"FromLanes":  FromLanesA3([4]float64{1, 2, 3, 4}),
		"Neg":        a.Neg(),
		"Normalized": a.Normalized(),
	}
	for name, v := range checks {
		if l := v.Lanes(); l[3] != 0 || math.Signbit(l[3]) {
			t.Errorf("%s: padding lane = %v", name, l[3])
		}
	}

	b := NewA2[float32](1, 2).AddScalar(1)
	if l := b.Lanes(); l[2] != 0 || l[3] != 0 {
		t.Errorf("Vec2A padding = %v", l)
	}
}

func TestConversions(t *testing.T) {
	if got := New3(1.0, 2.0, 3.0).ToVec4(); got != New4(1.0, 2.0, 3.0, 1.0) {
		t.Errorf("Vec3.ToVec4 = %v", got)
	}
	if got := New2(1, 2).ToVec4(); got != New4(1, 2, 0, 1) {
		t.Errorf("Vec2.ToVec4 = %v", got)
	}
	if got := New2(1, 2).Extend(3); got != New3(1, 2, 3) {
		t.Errorf("Vec2.Extend = %v", got)
	}
	if got := New3(1, 2, 3).Extend(0); got != Dir4(1, 2, 3) {
		t.Errorf("Vec3.Extend = %v", got)
	}
	if got := New4(1, 2, 3, 4).XYZ().XY(); got != New2(1, 2) {
		t.Errorf("XYZ().XY() = %v", got)
	}
	if got := New4(1, 2, 3, 4).Aligned().Packed(); got != New4(1, 2, 3, 4) {
		t.Errorf("Vec4 round trip = %v", got)
	}
	if got := NewA3(1, 2, 3).ToVec4A(); !got.Equal(PointA4(1, 2, 3)) {
		t.Errorf("Vec3A.ToVec4A = %v", got)
	}
	if got := NewA4(1, 2, 3, 4).XYZ(); !got.Equal(NewA3(1, 2, 3)) || got.Lanes()[3] != 0 {
		t.Errorf("Vec4A.XYZ = %v", got.Lanes())
	}
	if got := NewA2(1, 2).Extend(3).Packed(); got != New3(1, 2, 3) {
		t.Errorf("Vec2A.Extend = %v", got)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{New2(1, 2).String(), "Vec2(1, 2)"},
		{New3(1.5, 2.0, -3.0).String(), "Vec3(1.5, 2, -3)"},
		{New4[float32](0, 0, 0, 1).String(), "Vec4(0, 0, 0, 1)"},
		{NewA3(1, 2, 3).String(), "Vec3A(1, 2, 3)"},
		{NewA4(1, 2, 3, 4).String(), "Vec4A(1, 2, 3, 4)"},
		{NewA2(0.5, 1.0).String(), "Vec2A(0.5, 1)"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}
