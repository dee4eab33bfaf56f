package vec

import (
	"github.com/cwbudde/algo-geom/geom/core"
	"github.com/cwbudde/algo-geom/internal/kernel"
)

// mask zeroes the padding lanes past n.
func mask[T core.Number](l [4]T, n int) [4]T {
	for i := n; i < 4; i++ {
		l[i] = 0
	}
	return l
}

// divLanes divides the first n lanes of a by b. Any zero divisor among them
// saturates the whole result to zero. Padding divisors are replaced by one so
// the backend never divides by zero.
func divLanes[T core.Number](a, b [4]T, n int) [4]T {
	for i := 0; i < n; i++ {
		if b[i] == 0 {
			return [4]T{}
		}
	}
	for i := n; i < 4; i++ {
		b[i] = 1
	}
	return mask(kernel.Div4(a, b), n)
}

// divScalarLanes divides every lane by s; s == 0 yields zero.
func divScalarLanes[T core.Number](a [4]T, s T) [4]T {
	if s == 0 {
		return [4]T{}
	}
	return kernel.DivScale4(a, s)
}

func scaleLanes[T core.Number](a [4]T, s T, n int) [4]T {
	return mask(kernel.Scale4(a, s), n)
}

func addLanes[T core.Number](a, b [4]T) [4]T {
	return [4]T{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func subLanes[T core.Number](a, b [4]T) [4]T {
	return [4]T{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

func addScalarLanes[T core.Number](a [4]T, s T, n int) [4]T {
	for i := 0; i < n; i++ {
		a[i] += s
	}
	return a
}

func negLanes[T core.Number](a [4]T, n int) [4]T {
	for i := 0; i < n; i++ {
		a[i] = -a[i]
	}
	return a
}

func equalLanes[T core.Number](a, b [4]T, n int) bool {
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func approxEqualLanes[T core.Number](a, b [4]T, eps T, n int) bool {
	for i := 0; i < n; i++ {
		if !core.ApproxEqual(a[i], b[i], eps) {
			return false
		}
	}
	return true
}

// invSqrtFast keeps float32 in single precision. Integer zero maps to zero.
func invSqrtFast[T core.Number](x T) T {
	switch f := any(x).(type) {
	case float32:
		return T(core.InverseSqrtFast(f))
	case float64:
		return T(core.InverseSqrtFast(f))
	}
	if x == 0 {
		return 0
	}
	return T(core.InverseSqrtFast(float64(x)))
}

// cross3 returns the right-handed cross product of the xyz lanes; the w lane
// of the result is zero.
func cross3[T core.Number](a, b [4]T) [4]T {
	return [4]T{
		T(a[1]*b[2]) - T(a[2]*b[1]),
		T(a[2]*b[0]) - T(a[0]*b[2]),
		T(a[0]*b[1]) - T(a[1]*b[0]),
		0,
	}
}

func subScalarLanes[T core.Number](a [4]T, s T, n int) [4]T {
	for i := 0; i < n; i++ {
		a[i] -= s
	}
	return a
}
