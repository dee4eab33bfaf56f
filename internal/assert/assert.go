package assert

import "fmt"

// Index panics when i is outside [0, n) and assertions are enabled.
func Index(pkg string, i, n int) {
	if Enabled && (i < 0 || i >= n) {
		panic(fmt.Sprintf("%s: index %d out of range [0,%d)", pkg, i, n))
	}
}
