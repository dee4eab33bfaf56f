// Package avx2 provides the 256-bit backend.
//
// float32 kernels run on github.com/viterin/vek/vek32 and float64 kernels on
// github.com/cwbudde/algo-vecmath (multiply, scale, accumulate) and
// github.com/viterin/vek (divide, dot). Both libraries select their AVX2
// paths at runtime and fall back to pure Go elsewhere, so the kernels in this
// package are correct on any CPU; only the registration is amd64-specific.
//
// A float64 4-vector fills one 256-bit register. float32 matrix products
// pair two result columns per 8-lane register.
package avx2
