package linalg

import "math"

// Matrix3 is a 3x3 matrix stored in row-major order:
// element (r, c) lives at index 3*r + c.
//
// Matrix3 has no general inverse; convert it with Elements and use
// dense.Matrix.Inverse when one is needed.
type Matrix3[T Scalar] struct {
	data [9]T
}

// NewMatrix3 returns the matrix with the given rows.
func NewMatrix3[T Scalar](
	a1, a2, a3,
	a4, a5, a6,
	a7, a8, a9 T,
) Matrix3[T] {
	return Matrix3[T]{data: [9]T{
		a1, a2, a3,
		a4, a5, a6,
		a7, a8, a9,
	}}
}

// Identity3 returns the 3x3 identity matrix.
func Identity3[T Scalar]() Matrix3[T] {
	return Matrix3[T]{data: [9]T{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}}
}

// RotationX returns the rotation by theta radians about the x axis.
func RotationX[T Scalar](theta float64) Matrix3[T] {
	s, c := math.Sincos(theta)
	return Matrix3[T]{data: [9]T{
		1, 0, 0,
		0, T(c), T(-s),
		0, T(s), T(c),
	}}
}

// RotationY returns the rotation by theta radians about the y axis.
func RotationY[T Scalar](theta float64) Matrix3[T] {
	s, c := math.Sincos(theta)
	return Matrix3[T]{data: [9]T{
		T(c), 0, T(s),
		0, 1, 0,
		T(-s), 0, T(c),
	}}
}

// RotationZ returns the rotation by theta radians about the z axis.
func RotationZ[T Scalar](theta float64) Matrix3[T] {
	s, c := math.Sincos(theta)
	return Matrix3[T]{data: [9]T{
		T(c), T(-s), 0,
		T(s), T(c), 0,
		0, 0, 1,
	}}
}

// RotationSpherical returns the two-angle rotation RotationX(phi)·RotationZ(theta):
//
//	| cosθ       -sinθ       0     |
//	| sinθ·cosφ   cosθ·cosφ  -sinφ |
//	| sinθ·sinφ   cosθ·sinφ   cosφ |
func RotationSpherical[T Scalar](theta, phi float64) Matrix3[T] {
	st, ct := math.Sincos(theta)
	sp, cp := math.Sincos(phi)
	return Matrix3[T]{data: [9]T{
		T(ct), T(-st), 0,
		T(st * cp), T(ct * cp), T(-sp),
		T(st * sp), T(ct * sp), T(cp),
	}}
}

// RotationAxisAngle returns the rotation by theta radians about axis,
// built with Rodrigues' formula I + K·sinθ + K²·(1−cosθ), where K is the
// cross-product matrix of the normalized axis. The axis need not be unit
// length. A zero axis returns ErrDegenerate.
func RotationAxisAngle[T Scalar](axis Vector3[T], theta float64) (Matrix3[T], error) {
	r, err := rodrigues(float64(axis.x), float64(axis.y), float64(axis.z), theta)
	if err != nil {
		return Matrix3[T]{}, err
	}
	var out Matrix3[T]
	for i, v := range r {
		out.data[i] = T(v)
	}
	return out, nil
}

// rodrigues evaluates the rotation in float64 so integer element types
// only round once.
func rodrigues(x, y, z, theta float64) ([9]float64, error) {
	l := norm3(x, y, z)
	if l == 0 {
		return [9]float64{}, ErrDegenerate
	}
	x, y, z = x/l, y/l, z/l
	k := [9]float64{
		0, -z, y,
		z, 0, -x,
		-y, x, 0,
	}
	var k2 [9]float64
	mulInto(k2[:], k[:], k[:], 3)

	s, c := math.Sincos(theta)
	r := [9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}
	for i := range r {
		r[i] += k[i]*s + k2[i]*(1-c)
	}
	return r, nil
}

// At returns the element at row, col.
func (m Matrix3[T]) At(row, col int) (T, error) {
	if !inSquare(row, col, 3) {
		return 0, cellError(row, col, 3)
	}
	return m.data[row*3+col], nil
}

// Set assigns the element at row, col.
func (m *Matrix3[T]) Set(row, col int, v T) error {
	if !inSquare(row, col, 3) {
		return cellError(row, col, 3)
	}
	m.data[row*3+col] = v
	return nil
}

// Row returns row n.
func (m Matrix3[T]) Row(n int) ([3]T, error) {
	if n < 0 || n > 2 {
		return [3]T{}, indexError(n, 3)
	}
	return [3]T(m.data[n*3 : n*3+3]), nil
}

// Elements returns the row-major elements.
func (m Matrix3[T]) Elements() [9]T { return m.data }

// Det returns the determinant by cofactor expansion along the first row.
func (m Matrix3[T]) Det() T {
	d := &m.data
	return d[0]*(d[4]*d[8]-d[5]*d[7]) -
		d[1]*(d[3]*d[8]-d[5]*d[6]) +
		d[2]*(d[3]*d[7]-d[4]*d[6])
}

// Transpose returns the transpose of m.
func (m Matrix3[T]) Transpose() Matrix3[T] {
	var out Matrix3[T]
	transposeInto(out.data[:], m.data[:], 3)
	return out
}

// Add returns m + n.
func (m Matrix3[T]) Add(n Matrix3[T]) Matrix3[T] {
	var out Matrix3[T]
	addInto(out.data[:], m.data[:], n.data[:])
	return out
}

// Sub returns m - n.
func (m Matrix3[T]) Sub(n Matrix3[T]) Matrix3[T] {
	var out Matrix3[T]
	subInto(out.data[:], m.data[:], n.data[:])
	return out
}

// Mul returns the matrix product m·n.
func (m Matrix3[T]) Mul(n Matrix3[T]) Matrix3[T] {
	var out Matrix3[T]
	mulInto(out.data[:], m.data[:], n.data[:], 3)
	return out
}

// Scale returns m with every element multiplied by f.
func (m Matrix3[T]) Scale(f float64) Matrix3[T] {
	var out Matrix3[T]
	scaleInto(out.data[:], m.data[:], f)
	return out
}

// Div returns m with every element divided by f.
func (m Matrix3[T]) Div(f float64) Matrix3[T] {
	var out Matrix3[T]
	divInto(out.data[:], m.data[:], f)
	return out
}

// MulVec returns the column-vector product m·v.
func (m Matrix3[T]) MulVec(v Vector3[T]) Vector3[T] {
	d := &m.data
	return Vector3[T]{
		x: d[0]*v.x + d[1]*v.y + d[2]*v.z,
		y: d[3]*v.x + d[4]*v.y + d[5]*v.z,
		z: d[6]*v.x + d[7]*v.y + d[8]*v.z,
	}
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix3[T]) IsIdentity() bool {
	return m == Identity3[T]()
}

// Equal reports whether every element of m and n differs by at most eps.
func (m Matrix3[T]) Equal(n Matrix3[T], eps float64) bool {
	return equalElems(m.data[:], n.data[:], eps)
}

// String formats m as three bracketed rows separated by newlines.
func (m Matrix3[T]) String() string {
	return formatRows(m.data[:], 3)
}
