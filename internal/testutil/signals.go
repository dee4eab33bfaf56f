package testutil

import "math/rand"

// Rand is a seeded source of register images and matrices. Values are drawn
// uniformly from [-amplitude, amplitude).
type Rand struct {
	rng       *rand.Rand
	amplitude float64
}

// NewRand returns a deterministic generator for the given seed.
func NewRand(seed int64, amplitude float64) *Rand {
	return &Rand{rng: rand.New(rand.NewSource(seed)), amplitude: amplitude}
}

// Float64 returns one value.
func (r *Rand) Float64() float64 {
	return (r.rng.Float64()*2 - 1) * r.amplitude
}

// NonZero returns a value whose magnitude is at least 1e-3 * amplitude, safe
// as a divisor.
func (r *Rand) NonZero() float64 {
	for {
		v := r.Float64()
		if v > 1e-3*r.amplitude || v < -1e-3*r.amplitude {
			return v
		}
	}
}

// Vec4F64 returns a random float64 register image.
func (r *Rand) Vec4F64() [4]float64 {
	return [4]float64{r.Float64(), r.Float64(), r.Float64(), r.Float64()}
}

// Vec4F32 returns a random float32 register image.
func (r *Rand) Vec4F32() [4]float32 {
	return [4]float32{float32(r.Float64()), float32(r.Float64()), float32(r.Float64()), float32(r.Float64())}
}

// NonZeroVec4F64 returns a register image safe as a lane-wise divisor.
func (r *Rand) NonZeroVec4F64() [4]float64 {
	return [4]float64{r.NonZero(), r.NonZero(), r.NonZero(), r.NonZero()}
}

// NonZeroVec4F32 returns a float32 register image safe as a lane-wise divisor.
func (r *Rand) NonZeroVec4F32() [4]float32 {
	return [4]float32{float32(r.NonZero()), float32(r.NonZero()), float32(r.NonZero()), float32(r.NonZero())}
}

// Mat4F64 returns a random column-major float64 matrix image.
func (r *Rand) Mat4F64() [4][4]float64 {
	return [4][4]float64{r.Vec4F64(), r.Vec4F64(), r.Vec4F64(), r.Vec4F64()}
}

// Mat4F32 returns a random column-major float32 matrix image.
func (r *Rand) Mat4F32() [4][4]float32 {
	return [4][4]float32{r.Vec4F32(), r.Vec4F32(), r.Vec4F32(), r.Vec4F32()}
}
