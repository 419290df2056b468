package linalg

import "math"

// Matrix2 is a 2x2 matrix stored in row-major order:
//
//	| a  b |
//	| c  d |
//
// The zero value is the zero matrix; use Identity2 for the identity.
type Matrix2[T Scalar] struct {
	data [4]T
}

// NewMatrix2 returns the matrix with rows (a, b) and (c, d).
func NewMatrix2[T Scalar](a, b, c, d T) Matrix2[T] {
	return Matrix2[T]{data: [4]T{a, b, c, d}}
}

// Identity2 returns the 2x2 identity matrix.
func Identity2[T Scalar]() Matrix2[T] {
	return Matrix2[T]{data: [4]T{1, 0, 0, 1}}
}

// Rotation2 returns the counter-clockwise rotation by theta radians.
func Rotation2[T Scalar](theta float64) Matrix2[T] {
	s, c := math.Sincos(theta)
	return Matrix2[T]{data: [4]T{
		T(c), T(-s),
		T(s), T(c),
	}}
}

// At returns the element at row, col.
func (m Matrix2[T]) At(row, col int) (T, error) {
	if !inSquare(row, col, 2) {
		return 0, cellError(row, col, 2)
	}
	return m.data[row*2+col], nil
}

// Set assigns the element at row, col.
func (m *Matrix2[T]) Set(row, col int, v T) error {
	if !inSquare(row, col, 2) {
		return cellError(row, col, 2)
	}
	m.data[row*2+col] = v
	return nil
}

// Row returns row n.
func (m Matrix2[T]) Row(n int) ([2]T, error) {
	if n < 0 || n > 1 {
		return [2]T{}, indexError(n, 2)
	}
	return [2]T{m.data[n*2], m.data[n*2+1]}, nil
}

// Elements returns the row-major elements.
func (m Matrix2[T]) Elements() [4]T { return m.data }

// Det returns the determinant a·d − b·c.
func (m Matrix2[T]) Det() T {
	return m.data[0]*m.data[3] - m.data[1]*m.data[2]
}

// Invert returns the inverse, computed as adjugate / determinant.
// It returns ErrSingular if the determinant is zero.
func (m Matrix2[T]) Invert() (Matrix2[T], error) {
	det := m.Det()
	if det == 0 {
		return Matrix2[T]{}, ErrSingular
	}
	adj := Matrix2[T]{data: [4]T{
		m.data[3], -m.data[1],
		-m.data[2], m.data[0],
	}}
	return adj.Div(float64(det)), nil
}

// Transpose returns the transpose of m.
func (m Matrix2[T]) Transpose() Matrix2[T] {
	return Matrix2[T]{data: [4]T{
		m.data[0], m.data[2],
		m.data[1], m.data[3],
	}}
}

// Add returns m + n.
func (m Matrix2[T]) Add(n Matrix2[T]) Matrix2[T] {
	var out Matrix2[T]
	addInto(out.data[:], m.data[:], n.data[:])
	return out
}

// Sub returns m - n.
func (m Matrix2[T]) Sub(n Matrix2[T]) Matrix2[T] {
	var out Matrix2[T]
	subInto(out.data[:], m.data[:], n.data[:])
	return out
}

// Mul returns the matrix product m·n.
func (m Matrix2[T]) Mul(n Matrix2[T]) Matrix2[T] {
	var out Matrix2[T]
	mulInto(out.data[:], m.data[:], n.data[:], 2)
	return out
}

// Scale returns m with every element multiplied by f.
func (m Matrix2[T]) Scale(f float64) Matrix2[T] {
	var out Matrix2[T]
	scaleInto(out.data[:], m.data[:], f)
	return out
}

// Div returns m with every element divided by f.
func (m Matrix2[T]) Div(f float64) Matrix2[T] {
	var out Matrix2[T]
	divInto(out.data[:], m.data[:], f)
	return out
}

// MulVec returns the column-vector product m·v.
// See Vector2.MulMat for the row form v·m; the two agree only when m is symmetric.
func (m Matrix2[T]) MulVec(v Vector2[T]) Vector2[T] {
	return Vector2[T]{
		x: m.data[0]*v.x + m.data[1]*v.y,
		y: m.data[2]*v.x + m.data[3]*v.y,
	}
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix2[T]) IsIdentity() bool {
	return m == Identity2[T]()
}

// Equal reports whether every element of m and n differs by at most eps.
func (m Matrix2[T]) Equal(n Matrix2[T], eps float64) bool {
	return equalElems(m.data[:], n.data[:], eps)
}

// String formats m as two bracketed rows separated by a newline.
func (m Matrix2[T]) String() string {
	return formatRows(m.data[:], 2)
}
