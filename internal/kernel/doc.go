// Package kernel is the dispatch front for the vector and matrix kernels.
//
// Each function is generic over the element type. float32 and float64 calls
// are routed to the operation table of the backend selected for this CPU;
// every other element type (integers, named float types) runs the scalar
// reference in arch/generic. Backends are compiled in per GOARCH by the
// init_*.go files and resolved once, on first use:
//
//   - amd64: generic, sse2 (128-bit), avx2 (256-bit, omitted with -tags noavx2)
//   - arm64: generic, neon (128-bit)
//   - other architectures or -tags purego: generic only
//
// The front never sees caller pointers: register images travel by value, so
// a packed vector can be "loaded" by copying it into a [4]T first.
package kernel
