package testutil

import "testing"

func TestRandDeterministic(t *testing.T) {
	a := NewRand(42, 10)
	b := NewRand(42, 10)
	for i := 0; i < 16; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("draw %d differs for the same seed", i)
		}
	}
}

func TestRandRange(t *testing.T) {
	r := NewRand(7, 2)
	for i := 0; i < 1000; i++ {
		v := r.Float64()
		if v < -2 || v >= 2 {
			t.Fatalf("value %v outside [-2, 2)", v)
		}
	}
}

func TestNonZero(t *testing.T) {
	r := NewRand(1, 1)
	for i := 0; i < 1000; i++ {
		for _, v := range r.NonZeroVec4F32() {
			if v == 0 {
				t.Fatal("NonZeroVec4F32 produced a zero lane")
			}
		}
		for _, v := range r.NonZeroVec4F64() {
			if v > -1e-3 && v < 1e-3 {
				t.Fatalf("NonZeroVec4F64 produced %v", v)
			}
		}
	}
}
