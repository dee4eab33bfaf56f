// Package neon registers the 128-bit lane kernels for arm64.
package neon
