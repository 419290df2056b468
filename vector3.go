package linalg

import "math"

// Vector3 is a 3-component vector with a lazily cached length.
// The caching rules match Vector2.
type Vector3[T Scalar] struct {
	x, y, z T

	length   float64
	lengthOK bool
}

// Point3 is a position in space. It shares the representation of Vector3.
type Point3[T Scalar] = Vector3[T]

// NewVector3 returns the vector (x, y, z).
func NewVector3[T Scalar](x, y, z T) Vector3[T] {
	return Vector3[T]{x: x, y: y, z: z}
}

// Pt3 is a convenience function to create a Point3.
func Pt3[T Scalar](x, y, z T) Point3[T] {
	return Vector3[T]{x: x, y: y, z: z}
}

// X returns the first component.
func (v Vector3[T]) X() T { return v.x }

// Y returns the second component.
func (v Vector3[T]) Y() T { return v.y }

// Z returns the third component.
func (v Vector3[T]) Z() T { return v.z }

// At returns component i.
func (v Vector3[T]) At(i int) (T, error) {
	switch i {
	case 0:
		return v.x, nil
	case 1:
		return v.y, nil
	case 2:
		return v.z, nil
	}
	return 0, indexError(i, 3)
}

// Set assigns component i and invalidates the cached length.
func (v *Vector3[T]) Set(i int, val T) error {
	switch i {
	case 0:
		v.x = val
	case 1:
		v.y = val
	case 2:
		v.z = val
	default:
		return indexError(i, 3)
	}
	v.lengthOK = false
	return nil
}

// Length returns the Euclidean length, cached until the next mutation.
func (v *Vector3[T]) Length() float64 {
	if !v.lengthOK {
		v.length = norm3(float64(v.x), float64(v.y), float64(v.z))
		v.lengthOK = true
	}
	return v.length
}

// Normalize scales v in place to unit length.
// A zero vector is left unchanged and ErrDegenerate is returned.
func (v *Vector3[T]) Normalize() error {
	if v.lengthOK && v.length == 1 {
		return nil
	}
	l := v.Length()
	if l == 0 {
		return ErrDegenerate
	}
	v.x = T(float64(v.x) / l)
	v.y = T(float64(v.y) / l)
	v.z = T(float64(v.z) / l)
	v.lengthOK = false
	return nil
}

// Add returns v + w.
func (v Vector3[T]) Add(w Vector3[T]) Vector3[T] {
	return Vector3[T]{x: v.x + w.x, y: v.y + w.y, z: v.z + w.z}
}

// Sub returns v - w.
func (v Vector3[T]) Sub(w Vector3[T]) Vector3[T] {
	return Vector3[T]{x: v.x - w.x, y: v.y - w.y, z: v.z - w.z}
}

// Neg returns -v.
func (v Vector3[T]) Neg() Vector3[T] {
	return Vector3[T]{x: -v.x, y: -v.y, z: -v.z}
}

// Scale returns v multiplied by f.
func (v Vector3[T]) Scale(f float64) Vector3[T] {
	return Vector3[T]{
		x: T(float64(v.x) * f),
		y: T(float64(v.y) * f),
		z: T(float64(v.z) * f),
	}
}

// Div returns v divided by f.
func (v Vector3[T]) Div(f float64) Vector3[T] {
	return Vector3[T]{
		x: T(float64(v.x) / f),
		y: T(float64(v.y) / f),
		z: T(float64(v.z) / f),
	}
}

// Dot returns the dot product of v and w.
func (v Vector3[T]) Dot(w Vector3[T]) T {
	return v.x*w.x + v.y*w.y + v.z*w.z
}

// Cross returns the cross product v × w.
func (v Vector3[T]) Cross(w Vector3[T]) Vector3[T] {
	return Vector3[T]{
		x: v.y*w.z - v.z*w.y,
		y: v.z*w.x - v.x*w.z,
		z: v.x*w.y - v.y*w.x,
	}
}

// MulMat returns the row-vector product v·m.
func (v Vector3[T]) MulMat(m Matrix3[T]) Vector3[T] {
	d := &m.data
	return Vector3[T]{
		x: v.x*d[0] + v.y*d[3] + v.z*d[6],
		y: v.x*d[1] + v.y*d[4] + v.z*d[7],
		z: v.x*d[2] + v.y*d[5] + v.z*d[8],
	}
}

// MulMat4 returns the row-vector product v·m with an implicit w=1.
// Translation is read from row 3, so v.MulMat4(m.Transpose()) equals
// m.MulVec(v).
func (v Vector3[T]) MulMat4(m Matrix4[T]) Vector3[T] {
	d := &m.data
	return Vector3[T]{
		x: v.x*d[0] + v.y*d[4] + v.z*d[8] + d[12],
		y: v.x*d[1] + v.y*d[5] + v.z*d[9] + d[13],
		z: v.x*d[2] + v.y*d[6] + v.z*d[10] + d[14],
	}
}

// Equal reports whether every component of v and w differs by at most eps.
func (v Vector3[T]) Equal(w Vector3[T], eps float64) bool {
	return nearly(v.x, w.x, eps) && nearly(v.y, w.y, eps) && nearly(v.z, w.z, eps)
}

// String formats v as "[x, y, z]".
func (v Vector3[T]) String() string {
	return joinComponents(v.x, v.y, v.z)
}

func norm3(x, y, z float64) float64 {
	return math.Sqrt(x*x + y*y + z*z)
}
