package vec

import "testing"

var (
	sinkF32 float32
	sinkF64 float64
)

func BenchmarkDot(b *testing.B) {
	b.Run("Vec3/float64", func(b *testing.B) {
		u, v := New3(1.0, 2.0, 3.0), New3(4.0, 5.0, 6.0)
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			sinkF64 = u.Dot(v)
		}
	})
	b.Run("Vec3A/float64", func(b *testing.B) {
		u, v := NewA3(1.0, 2.0, 3.0), NewA3(4.0, 5.0, 6.0)
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			sinkF64 = u.Dot(v)
		}
	})
	b.Run("Vec4A/float32", func(b *testing.B) {
		u, v := NewA4[float32](1, 2, 3, 4), NewA4[float32](5, 6, 7, 8)
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			sinkF32 = u.Dot(v)
		}
	})
}

func BenchmarkNormalized(b *testing.B) {
	b.Run("Vec4/float32", func(b *testing.B) {
		v := New4[float32](1, 2, 3, 4)
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			sinkF32 = v.Normalized().X
		}
	})
	b.Run("Vec4A/float64", func(b *testing.B) {
		v := NewA4(1.0, 2.0, 3.0, 4.0)
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			sinkF64 = v.Normalized().X()
		}
	})
}
