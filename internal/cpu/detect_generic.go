//go:build !amd64 && !arm64

package cpu

import "runtime"

// detectFeaturesImpl reports no SIMD support on other architectures; only the
// scalar backend is registered there.
func detectFeaturesImpl() Features {
	return Features{Architecture: runtime.GOARCH}
}
