//go:build colmajor

package mat

// InputOrder is the order FromArray reads its argument in.
const InputOrder = ColMajor
