// Package mat provides the 4x4 matrix used for homogeneous transforms.
//
// Storage is column-major: four aligned column vectors, element (row, col)
// living in column col, lane row. Get and Set take (row, col) whatever the
// storage order, and New always reads its sixteen arguments row by row.
// FromArray reads a flat array in the build's InputOrder, row-major unless
// the module is built with -tags colmajor.
//
// For float32 and float64 elements, Mul, MulVec4 and Transpose run on the
// SIMD backend selected at startup and agree with the scalar loops to
// floating-point tolerance.
//
// The zero value is the zero matrix, not the identity. Start from Identity.
package mat
