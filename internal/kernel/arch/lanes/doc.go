// Package lanes implements the 128-bit backend body shared by the SSE2 and
// NEON registrations.
//
// The kernels are written against a register model instead of assembly: an
// f32x4 is one 128-bit register holding four float32 lanes and an f64x2 holds
// two float64 lanes, so a float64 4-vector occupies a register pair. Each
// helper mirrors one instruction (mulps, addps, unpcklps, movhlps, ...) so
// that the data flow matches the hand-written SSE kernels lane for lane.
//
// Reductions and multiply-add chains run in the same order as the scalar
// reference in arch/generic, so results are bit-identical to it.
package lanes
