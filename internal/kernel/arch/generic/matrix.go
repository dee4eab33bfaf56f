package generic

import "github.com/cwbudde/algo-geom/geom/core"

// MatMul returns l * r for column-major matrices ([col][row]):
// result(i,j) = sum_k l(i,k) * r(k,j), accumulated in k order.
func MatMul[T core.Number](l, r [4][4]T) [4][4]T {
	var out [4][4]T
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			sum := T(l[0][i] * r[j][0])
			for k := 1; k < 4; k++ {
				sum += T(l[k][i] * r[j][k])
			}
			out[j][i] = sum
		}
	}
	return out
}

// MatVec returns m * v: result(i) = sum_k m(i,k) * v(k).
func MatVec[T core.Number](m [4][4]T, v [4]T) [4]T {
	var out [4]T
	for i := 0; i < 4; i++ {
		sum := T(m[0][i] * v[0])
		for k := 1; k < 4; k++ {
			sum += T(m[k][i] * v[k])
		}
		out[i] = sum
	}
	return out
}

// Transpose swaps (i,j) and (j,i) for every i != j.
func Transpose[T core.Number](m [4][4]T) [4][4]T {
	for i := 0; i < 4; i++ {
		for j := 0; j < i; j++ {
			m[i][j], m[j][i] = m[j][i], m[i][j]
		}
	}
	return m
}
