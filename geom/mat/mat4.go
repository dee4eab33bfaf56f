package mat

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-geom/geom/core"
	"github.com/cwbudde/algo-geom/geom/vec"
	"github.com/cwbudde/algo-geom/internal/assert"
	"github.com/cwbudde/algo-geom/internal/kernel"
)

// Mat4 is a 4x4 matrix stored as four aligned columns.
type Mat4[T core.Number] struct {
	cols [4]vec.Vec4A[T]
}

// Identity returns the identity matrix.
func Identity[T core.Number]() Mat4[T] {
	return FromCols(
		vec.NewA4[T](1, 0, 0, 0),
		vec.NewA4[T](0, 1, 0, 0),
		vec.NewA4[T](0, 0, 1, 0),
		vec.NewA4[T](0, 0, 0, 1),
	)
}

// New returns the matrix whose rows are read left to right, top to bottom.
func New[T core.Number](
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23,
	m30, m31, m32, m33 T,
) Mat4[T] {
	return FromCols(
		vec.NewA4(m00, m10, m20, m30),
		vec.NewA4(m01, m11, m21, m31),
		vec.NewA4(m02, m12, m22, m32),
		vec.NewA4(m03, m13, m23, m33),
	)
}

// FromArray reads a flat array in InputOrder.
func FromArray[T core.Number](a [16]T) Mat4[T] {
	return FromArrayOrder(a, InputOrder)
}

// FromArrayOrder reads a flat array in the given order.
func FromArrayOrder[T core.Number](a [16]T, order Order) Mat4[T] {
	var img [4][4]T
	for i, v := range a {
		if order == ColMajor {
			img[i/4][i%4] = v
		} else {
			img[i%4][i/4] = v
		}
	}
	return fromImage(img)
}

// FromCols builds a matrix from its columns.
func FromCols[T core.Number](c0, c1, c2, c3 vec.Vec4A[T]) Mat4[T] {
	return Mat4[T]{cols: [4]vec.Vec4A[T]{c0, c1, c2, c3}}
}

// FromRows builds a matrix from its rows.
func FromRows[T core.Number](r0, r1, r2, r3 vec.Vec4A[T]) Mat4[T] {
	return FromCols(r0, r1, r2, r3).Transpose()
}

func fromImage[T core.Number](img [4][4]T) Mat4[T] {
	return Mat4[T]{cols: [4]vec.Vec4A[T]{
		vec.FromLanesA4(img[0]),
		vec.FromLanesA4(img[1]),
		vec.FromLanesA4(img[2]),
		vec.FromLanesA4(img[3]),
	}}
}

// image returns the column-major register images the kernels consume.
func (m Mat4[T]) image() [4][4]T {
	return [4][4]T{m.cols[0].Lanes(), m.cols[1].Lanes(), m.cols[2].Lanes(), m.cols[3].Lanes()}
}

// Array returns the sixteen elements in storage (column-major) order.
func (m Mat4[T]) Array() [16]T {
	var a [16]T
	for c := 0; c < 4; c++ {
		l := m.cols[c].Lanes()
		copy(a[c*4:], l[:])
	}
	return a
}

// SetIdentity overwrites m with the identity matrix.
func (m *Mat4[T]) SetIdentity() { *m = Identity[T]() }

// Get returns element (row, col).
func (m Mat4[T]) Get(row, col int) T {
	assert.Index("mat", row, 4)
	assert.Index("mat", col, 4)
	return m.cols[col].At(row)
}

// Set assigns element (row, col).
func (m *Mat4[T]) Set(row, col int, v T) {
	assert.Index("mat", row, 4)
	assert.Index("mat", col, 4)
	m.cols[col].Set(row, v)
}

// Col returns column j.
func (m Mat4[T]) Col(j int) vec.Vec4A[T] {
	assert.Index("mat", j, 4)
	return m.cols[j]
}

// Row returns row i.
func (m Mat4[T]) Row(i int) vec.Vec4A[T] {
	assert.Index("mat", i, 4)
	return vec.NewA4(m.cols[0].At(i), m.cols[1].At(i), m.cols[2].At(i), m.cols[3].At(i))
}

// Transpose returns the transpose of m.
func (m Mat4[T]) Transpose() Mat4[T] {
	return fromImage(kernel.Transpose(m.image()))
}

// TransposeInPlace transposes m.
func (m *Mat4[T]) TransposeInPlace() { *m = m.Transpose() }

// Add returns the element-wise sum.
func (m Mat4[T]) Add(o Mat4[T]) Mat4[T] {
	for c := range m.cols {
		m.cols[c] = m.cols[c].Add(o.cols[c])
	}
	return m
}

// Sub returns the element-wise difference.
func (m Mat4[T]) Sub(o Mat4[T]) Mat4[T] {
	for c := range m.cols {
		m.cols[c] = m.cols[c].Sub(o.cols[c])
	}
	return m
}

// Scale multiplies every element by s.
func (m Mat4[T]) Scale(s T) Mat4[T] {
	for c := range m.cols {
		m.cols[c] = m.cols[c].Scale(s)
	}
	return m
}

// Mul returns the matrix product m * o. Applied to a vector, the product
// transforms by o first, then by m.
func (m Mat4[T]) Mul(o Mat4[T]) Mat4[T] {
	return fromImage(kernel.MatMul(m.image(), o.image()))
}

// MulVec4 returns m * v.
func (m Mat4[T]) MulVec4(v vec.Vec4[T]) vec.Vec4[T] {
	return m.MulVec4A(v.Aligned()).Packed()
}

// MulVec4A returns m * v.
func (m Mat4[T]) MulVec4A(v vec.Vec4A[T]) vec.Vec4A[T] {
	return vec.FromLanesA4(kernel.MatVec(m.image(), v.Lanes()))
}

// Trace returns the sum of the diagonal.
func (m Mat4[T]) Trace() T {
	return m.Get(0, 0) + m.Get(1, 1) + m.Get(2, 2) + m.Get(3, 3)
}

// Determinant expands along the first two rows using 2x2 minors.
func (m Mat4[T]) Determinant() T {
	a := m.image() // a[col][row]
	e := func(r, c int) T { return a[c][r] }
	minor := func(c0, c1, r0, r1 int) T {
		return T(e(r0, c0)*e(r1, c1)) - T(e(r0, c1)*e(r1, c0))
	}

	s0 := minor(0, 1, 0, 1)
	s1 := minor(0, 2, 0, 1)
	s2 := minor(0, 3, 0, 1)
	s3 := minor(1, 2, 0, 1)
	s4 := minor(1, 3, 0, 1)
	s5 := minor(2, 3, 0, 1)

	c5 := minor(2, 3, 2, 3)
	c4 := minor(1, 3, 2, 3)
	c3 := minor(1, 2, 2, 3)
	c2 := minor(0, 3, 2, 3)
	c1 := minor(0, 2, 2, 3)
	c0 := minor(0, 1, 2, 3)

	return T(s0*c5) - T(s1*c4) + T(s2*c3) + T(s3*c2) - T(s4*c1) + T(s5*c0)
}

// Equal compares every element exactly.
func (m Mat4[T]) Equal(o Mat4[T]) bool {
	return m.image() == o.image()
}

// ApproxEqual reports whether every element differs by at most eps.
func (m Mat4[T]) ApproxEqual(o Mat4[T], eps T) bool {
	for c := range m.cols {
		if !m.cols[c].ApproxEqual(o.cols[c], eps) {
			return false
		}
	}
	return true
}

// String prints the matrix row by row.
func (m Mat4[T]) String() string {
	var b strings.Builder
	b.WriteString("Mat4(")
	for r := 0; r < 4; r++ {
		if r > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "(%v, %v, %v, %v)", m.Get(r, 0), m.Get(r, 1), m.Get(r, 2), m.Get(r, 3))
	}
	b.WriteString(")")
	return b.String()
}
