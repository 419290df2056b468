package dense

import (
	"fmt"
	"strings"

	"github.com/gogpu/linalg"
)

// Matrix is a rows×cols matrix stored in row-major order.
type Matrix[T linalg.Scalar] struct {
	rows, cols int
	data       []T
}

// NewMatrix returns a rows×cols matrix holding a copy of data in
// row-major order. A nil data slice yields the zero matrix.
func NewMatrix[T linalg.Scalar](rows, cols int, data []T) (*Matrix[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: invalid shape %dx%d", linalg.ErrDimensionMismatch, rows, cols)
	}
	m := Zeros[T](rows, cols)
	if data == nil {
		return m, nil
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%w: %dx%d matrix needs %d elements, have %d",
			linalg.ErrDimensionMismatch, rows, cols, rows*cols, len(data))
	}
	copy(m.data, data)
	return m, nil
}

// Zeros returns the rows×cols zero matrix. It panics if the shape is negative.
func Zeros[T linalg.Scalar](rows, cols int) *Matrix[T] {
	return &Matrix[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}
}

// Identity returns the n×n identity matrix. It panics if n is negative.
func Identity[T linalg.Scalar](n int) *Matrix[T] {
	m := Zeros[T](n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

// Clone returns a deep copy of m.
func (m *Matrix[T]) Clone() *Matrix[T] {
	out := Zeros[T](m.rows, m.cols)
	copy(out.data, m.data)
	return out
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.cols }

// IsSquare reports whether m has as many rows as columns.
func (m *Matrix[T]) IsSquare() bool { return m.rows == m.cols }

// Elements returns a copy of the row-major elements.
func (m *Matrix[T]) Elements() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)
	return out
}

// At returns the element at row, col.
func (m *Matrix[T]) At(row, col int) (T, error) {
	if !m.inBounds(row, col) {
		return 0, m.cellError(row, col)
	}
	return m.data[row*m.cols+col], nil
}

// Set assigns the element at row, col.
func (m *Matrix[T]) Set(row, col int, v T) error {
	if !m.inBounds(row, col) {
		return m.cellError(row, col)
	}
	m.data[row*m.cols+col] = v
	return nil
}

// Row returns a copy of row r as a vector.
func (m *Matrix[T]) Row(r int) (*Vector[T], error) {
	if r < 0 || r >= m.rows {
		return nil, outOfRange(r, m.rows)
	}
	return VectorOf(m.data[r*m.cols : (r+1)*m.cols]...), nil
}

// Minor returns the (rows-1)×(cols-1) matrix left after deleting row and col.
func (m *Matrix[T]) Minor(row, col int) (*Matrix[T], error) {
	if !m.inBounds(row, col) {
		return nil, m.cellError(row, col)
	}
	if m.rows < 2 || m.cols < 2 {
		return nil, fmt.Errorf("%w: no minor of a %dx%d matrix", linalg.ErrDimensionMismatch, m.rows, m.cols)
	}
	return m.minor(row, col), nil
}

func (m *Matrix[T]) minor(row, col int) *Matrix[T] {
	out := Zeros[T](m.rows-1, m.cols-1)
	i := 0
	for r := 0; r < m.rows; r++ {
		if r == row {
			continue
		}
		for c := 0; c < m.cols; c++ {
			if c == col {
				continue
			}
			out.data[i] = m.data[r*m.cols+c]
			i++
		}
	}
	return out
}

// Det returns the determinant by Laplace expansion along the first row.
// A non-square matrix has determinant 0 and the empty 0x0 matrix has
// determinant 1.
func (m *Matrix[T]) Det() T {
	if !m.IsSquare() {
		return 0
	}
	switch m.rows {
	case 0:
		return 1
	case 1:
		return m.data[0]
	case 2:
		return m.data[0]*m.data[3] - m.data[1]*m.data[2]
	}
	var det T
	for c := 0; c < m.cols; c++ {
		term := m.data[c] * m.minor(0, c).Det()
		if c%2 == 0 {
			det += term
		} else {
			det -= term
		}
	}
	return det
}

// Cofactor returns (-1)^(row+col) times the determinant of Minor(row, col).
func (m *Matrix[T]) Cofactor(row, col int) (T, error) {
	if !m.IsSquare() {
		return 0, fmt.Errorf("%w: %dx%d", linalg.ErrNotSquare, m.rows, m.cols)
	}
	minor, err := m.Minor(row, col)
	if err != nil {
		return 0, err
	}
	d := minor.Det()
	if (row+col)%2 != 0 {
		d = -d
	}
	return d, nil
}

// Inverse returns the inverse computed as adjugate / determinant.
// It returns ErrNotSquare for a non-square matrix and ErrSingular when the
// determinant is zero. Integer matrices truncate each element.
func (m *Matrix[T]) Inverse() (*Matrix[T], error) {
	if !m.IsSquare() {
		return nil, fmt.Errorf("%w: %dx%d", linalg.ErrNotSquare, m.rows, m.cols)
	}
	det := m.Det()
	if det == 0 {
		return nil, linalg.ErrSingular
	}
	n := m.rows
	inv := Zeros[T](n, n)
	if n == 1 {
		inv.data[0] = T(1 / float64(det))
		return inv, nil
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			cof, _ := m.Cofactor(r, c)
			// Transposed write: the adjugate is the cofactor matrix transposed.
			inv.data[c*n+r] = T(float64(cof) / float64(det))
		}
	}
	return inv, nil
}

// Transpose returns the cols×rows transpose of m.
func (m *Matrix[T]) Transpose() *Matrix[T] {
	out := Zeros[T](m.cols, m.rows)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			out.data[c*m.rows+r] = m.data[r*m.cols+c]
		}
	}
	return out
}

// Mul returns the matrix product m·n. If m.Cols() != n.Rows() it returns
// the m.Rows()×n.Cols() zero matrix and an error.
func (m *Matrix[T]) Mul(n *Matrix[T]) (*Matrix[T], error) {
	out := Zeros[T](m.rows, n.cols)
	if m.cols != n.rows {
		return out, m.shapeMismatch("times", n)
	}
	for i := 0; i < m.rows; i++ {
		for k := 0; k < m.cols; k++ {
			a := m.data[i*m.cols+k]
			for j := 0; j < n.cols; j++ {
				out.data[i*n.cols+j] += a * n.data[k*n.cols+j]
			}
		}
	}
	return out, nil
}

// MulVec returns the column-vector product m·v. v must have m.Cols()
// components; otherwise a zero vector of m.Rows() components is returned
// with an error.
func (m *Matrix[T]) MulVec(v *Vector[T]) (*Vector[T], error) {
	out := NewVector[T](m.rows)
	if len(v.data) != m.cols {
		return out, fmt.Errorf("%w: %dx%d matrix times %d-vector",
			linalg.ErrDimensionMismatch, m.rows, m.cols, len(v.data))
	}
	for r := 0; r < m.rows; r++ {
		var s T
		row := m.data[r*m.cols : (r+1)*m.cols]
		for c, x := range row {
			s += x * v.data[c]
		}
		out.data[r] = s
	}
	return out, nil
}

// Add returns m + n. On a shape mismatch it returns a zero matrix of m's
// shape and an error.
func (m *Matrix[T]) Add(n *Matrix[T]) (*Matrix[T], error) {
	out := Zeros[T](m.rows, m.cols)
	if m.rows != n.rows || m.cols != n.cols {
		return out, m.shapeMismatch("plus", n)
	}
	for i := range out.data {
		out.data[i] = m.data[i] + n.data[i]
	}
	return out, nil
}

// Sub returns m - n. On a shape mismatch it returns a zero matrix of m's
// shape and an error.
func (m *Matrix[T]) Sub(n *Matrix[T]) (*Matrix[T], error) {
	out := Zeros[T](m.rows, m.cols)
	if m.rows != n.rows || m.cols != n.cols {
		return out, m.shapeMismatch("minus", n)
	}
	for i := range out.data {
		out.data[i] = m.data[i] - n.data[i]
	}
	return out, nil
}

// Scale returns m with every element multiplied by f.
func (m *Matrix[T]) Scale(f float64) *Matrix[T] {
	out := Zeros[T](m.rows, m.cols)
	for i, x := range m.data {
		out.data[i] = T(float64(x) * f)
	}
	return out
}

// Equal reports whether m and n have the same shape and every pair of
// elements differs by at most eps.
func (m *Matrix[T]) Equal(n *Matrix[T], eps float64) bool {
	return m.rows == n.rows && m.cols == n.cols && equalElems(m.data, n.data, eps)
}

// String formats m one bracketed row per line.
func (m *Matrix[T]) String() string {
	rows := make([]string, m.rows)
	for r := range rows {
		rows[r] = formatRow(m.data[r*m.cols : (r+1)*m.cols])
	}
	return strings.Join(rows, "\n")
}

func (m *Matrix[T]) inBounds(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}

func (m *Matrix[T]) cellError(row, col int) error {
	return fmt.Errorf("%w: cell (%d, %d) of %dx%d matrix", linalg.ErrIndexOutOfRange, row, col, m.rows, m.cols)
}

func (m *Matrix[T]) shapeMismatch(op string, n *Matrix[T]) error {
	return fmt.Errorf("%w: %dx%d %s %dx%d", linalg.ErrDimensionMismatch, m.rows, m.cols, op, n.rows, n.cols)
}
