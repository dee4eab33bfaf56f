// Package core holds the element type constraints and the scalar math
// provider shared by the vec, mat, quat and transform packages.
//
// Element types form a closed set: any integer or floating-point type
// ([Number]). Operations that need a square root or trigonometry use the
// helpers here, which route float32 through github.com/chewxy/math32 so that
// single-precision code never widens to float64 and back.
package core
