// Package vec provides fixed-size 2, 3 and 4 component vectors.
//
// Every dimension comes in two storage flavours:
//
//   - Packed (Vec2, Vec3, Vec4): exactly N named fields with the natural
//     alignment of T. Use these inside structs, slices and anything that is
//     laid out for memory rather than arithmetic.
//   - Aligned (Vec2A, Vec3A, Vec4A): one full 4-lane register image whatever
//     N is. Lanes past N are padding and are kept zero. Components are read
//     and written by value only.
//
// For float32 and float64 elements, Vec4 and all aligned vectors route their
// lane-wise products, quotients and dot products through the SIMD backend
// selected at startup (see the internal kernel package). The backends agree
// with the scalar code to floating-point tolerance, the 128-bit backend to
// the bit. Packed Vec2 and Vec3, and all integer element types, use plain
// scalar code.
//
// Division saturates instead of producing Inf or NaN: dividing by a zero
// scalar, or by a vector with any zero live component, yields the zero
// vector. Normalizing a zero vector leaves it unchanged. Equality is exact;
// use ApproxEqual for tolerance comparisons.
package vec
