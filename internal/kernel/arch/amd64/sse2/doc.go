// Package sse2 registers the 128-bit lane kernels for x86-64.
//
// SSE2 is part of the x86-64 baseline, so this backend is eligible on every
// amd64 CPU and aligned storage needs 16-byte register images.
package sse2
