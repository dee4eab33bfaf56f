// Package assert provides the debug-build assertions used for index checks.
//
// Assertions are compiled in with -tags mathdebug. In release builds Enabled
// is a false constant and every check folds away, so out-of-range component
// access is unchecked there (it falls through to whatever the storage holds,
// or to the runtime's own array bounds check past the last lane).
package assert
