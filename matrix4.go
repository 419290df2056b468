package linalg

// Matrix4 is a 4x4 matrix stored in row-major order for transforming
// 3D points with an implicit homogeneous w=1.
//
// The convention is column vectors: MulVec computes m·v and the
// translation occupies the last column (indices 3, 7 and 11):
//
//	| r00 r01 r02 tx |
//	| r10 r11 r12 ty |
//	| r20 r21 r22 tz |
//	|  0   0   0   1 |
type Matrix4[T Scalar] struct {
	data [16]T
}

// NewMatrix4 returns the matrix with the given rows.
func NewMatrix4[T Scalar](
	a1, a2, a3, a4,
	a5, a6, a7, a8,
	a9, a10, a11, a12,
	a13, a14, a15, a16 T,
) Matrix4[T] {
	return Matrix4[T]{data: [16]T{
		a1, a2, a3, a4,
		a5, a6, a7, a8,
		a9, a10, a11, a12,
		a13, a14, a15, a16,
	}}
}

// Identity4 returns the 4x4 identity matrix.
func Identity4[T Scalar]() Matrix4[T] {
	return Matrix4[T]{data: [16]T{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}}
}

// Translation4 returns the identity with p written to the translation column.
func Translation4[T Scalar](p Vector3[T]) Matrix4[T] {
	m := Identity4[T]()
	m.data[3] = p.x
	m.data[7] = p.y
	m.data[11] = p.z
	return m
}

// FromMatrix3 embeds m in the upper-left block of an identity Matrix4.
func FromMatrix3[T Scalar](m Matrix3[T]) Matrix4[T] {
	out := Identity4[T]()
	for r := 0; r < 3; r++ {
		copy(out.data[r*4:r*4+3], m.data[r*3:r*3+3])
	}
	return out
}

// Rotation4X returns the rotation by theta radians about the x axis.
func Rotation4X[T Scalar](theta float64) Matrix4[T] {
	return FromMatrix3(RotationX[T](theta))
}

// Rotation4Y returns the rotation by theta radians about the y axis.
func Rotation4Y[T Scalar](theta float64) Matrix4[T] {
	return FromMatrix3(RotationY[T](theta))
}

// Rotation4Z returns the rotation by theta radians about the z axis.
func Rotation4Z[T Scalar](theta float64) Matrix4[T] {
	return FromMatrix3(RotationZ[T](theta))
}

// Rotation4AxisAngle is the homogeneous form of RotationAxisAngle.
func Rotation4AxisAngle[T Scalar](axis Vector3[T], theta float64) (Matrix4[T], error) {
	r, err := RotationAxisAngle(axis, theta)
	if err != nil {
		return Matrix4[T]{}, err
	}
	return FromMatrix3(r), nil
}

// At returns the element at row, col.
func (m Matrix4[T]) At(row, col int) (T, error) {
	if !inSquare(row, col, 4) {
		return 0, cellError(row, col, 4)
	}
	return m.data[row*4+col], nil
}

// Set assigns the element at row, col.
func (m *Matrix4[T]) Set(row, col int, v T) error {
	if !inSquare(row, col, 4) {
		return cellError(row, col, 4)
	}
	m.data[row*4+col] = v
	return nil
}

// Row returns row n.
func (m Matrix4[T]) Row(n int) ([4]T, error) {
	if n < 0 || n > 3 {
		return [4]T{}, indexError(n, 4)
	}
	return [4]T(m.data[n*4 : n*4+4]), nil
}

// Elements returns the row-major elements.
func (m Matrix4[T]) Elements() [16]T { return m.data }

// Upper3 returns the upper-left 3x3 block (rotation and scale).
func (m Matrix4[T]) Upper3() Matrix3[T] {
	var out Matrix3[T]
	for r := 0; r < 3; r++ {
		copy(out.data[r*3:r*3+3], m.data[r*4:r*4+3])
	}
	return out
}

// Minor3 returns the 3x3 matrix left after deleting row and col.
func (m Matrix4[T]) Minor3(row, col int) (Matrix3[T], error) {
	if !inSquare(row, col, 4) {
		return Matrix3[T]{}, cellError(row, col, 4)
	}
	var out Matrix3[T]
	i := 0
	for r := 0; r < 4; r++ {
		if r == row {
			continue
		}
		for c := 0; c < 4; c++ {
			if c == col {
				continue
			}
			out.data[i] = m.data[r*4+c]
			i++
		}
	}
	return out, nil
}

// Det returns the determinant by cofactor expansion along the first row:
// each element of row 0 times the determinant of the minor built from
// rows 1-3 without that element's column, with alternating signs.
func (m Matrix4[T]) Det() T {
	var det T
	for c := 0; c < 4; c++ {
		minor, _ := m.Minor3(0, c)
		term := m.data[c] * minor.Det()
		if c%2 == 0 {
			det += term
		} else {
			det -= term
		}
	}
	return det
}

// Transpose returns the transpose of m.
func (m Matrix4[T]) Transpose() Matrix4[T] {
	var out Matrix4[T]
	transposeInto(out.data[:], m.data[:], 4)
	return out
}

// Add returns m + n.
func (m Matrix4[T]) Add(n Matrix4[T]) Matrix4[T] {
	var out Matrix4[T]
	addInto(out.data[:], m.data[:], n.data[:])
	return out
}

// Sub returns m - n.
func (m Matrix4[T]) Sub(n Matrix4[T]) Matrix4[T] {
	var out Matrix4[T]
	subInto(out.data[:], m.data[:], n.data[:])
	return out
}

// Mul returns the matrix product m·n. Applied to a point, the result
// transforms by n first and then by m.
func (m Matrix4[T]) Mul(n Matrix4[T]) Matrix4[T] {
	var out Matrix4[T]
	mulInto(out.data[:], m.data[:], n.data[:], 4)
	return out
}

// Scale returns m with every element multiplied by f.
func (m Matrix4[T]) Scale(f float64) Matrix4[T] {
	var out Matrix4[T]
	scaleInto(out.data[:], m.data[:], f)
	return out
}

// Div returns m with every element divided by f.
func (m Matrix4[T]) Div(f float64) Matrix4[T] {
	var out Matrix4[T]
	divInto(out.data[:], m.data[:], f)
	return out
}

// MulVec transforms the point v: the upper 3x3 block is applied and the
// translation column added. The bottom row is ignored.
func (m Matrix4[T]) MulVec(v Vector3[T]) Vector3[T] {
	d := &m.data
	return Vector3[T]{
		x: d[0]*v.x + d[1]*v.y + d[2]*v.z + d[3],
		y: d[4]*v.x + d[5]*v.y + d[6]*v.z + d[7],
		z: d[8]*v.x + d[9]*v.y + d[10]*v.z + d[11],
	}
}

// MulDir transforms the direction v (no translation).
func (m Matrix4[T]) MulDir(v Vector3[T]) Vector3[T] {
	d := &m.data
	return Vector3[T]{
		x: d[0]*v.x + d[1]*v.y + d[2]*v.z,
		y: d[4]*v.x + d[5]*v.y + d[6]*v.z,
		z: d[8]*v.x + d[9]*v.y + d[10]*v.z,
	}
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix4[T]) IsIdentity() bool {
	return m == Identity4[T]()
}

// IsTranslation returns true if the matrix is only a translation.
func (m Matrix4[T]) IsTranslation() bool {
	d := m.data
	d[3], d[7], d[11] = 0, 0, 0
	return d == Identity4[T]().data
}

// Equal reports whether every element of m and n differs by at most eps.
func (m Matrix4[T]) Equal(n Matrix4[T], eps float64) bool {
	return equalElems(m.data[:], n.data[:], eps)
}

// String formats m as four bracketed rows separated by newlines.
func (m Matrix4[T]) String() string {
	return formatRows(m.data[:], 4)
}
