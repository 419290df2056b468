package linalg

import "math"

// Vector2 is a 2-component vector.
//
// Its length is computed lazily and cached; every mutation through Set or
// Normalize drops the cache. The zero value is the zero vector.
//
// A Vector2 is not safe for concurrent mutation: Length writes the cache,
// so calling it on the same value from several goroutines is a data race.
type Vector2[T Scalar] struct {
	x, y T

	length   float64
	lengthOK bool
}

// Point2 is a position in the plane. It shares the representation of Vector2.
type Point2[T Scalar] = Vector2[T]

// NewVector2 returns the vector (x, y).
func NewVector2[T Scalar](x, y T) Vector2[T] {
	return Vector2[T]{x: x, y: y}
}

// Pt2 is a convenience function to create a Point2.
func Pt2[T Scalar](x, y T) Point2[T] {
	return Vector2[T]{x: x, y: y}
}

// X returns the first component.
func (v Vector2[T]) X() T { return v.x }

// Y returns the second component.
func (v Vector2[T]) Y() T { return v.y }

// At returns component i (0 for x, 1 for y).
func (v Vector2[T]) At(i int) (T, error) {
	switch i {
	case 0:
		return v.x, nil
	case 1:
		return v.y, nil
	}
	return 0, indexError(i, 2)
}

// Set assigns component i and invalidates the cached length.
func (v *Vector2[T]) Set(i int, val T) error {
	switch i {
	case 0:
		v.x = val
	case 1:
		v.y = val
	default:
		return indexError(i, 2)
	}
	v.lengthOK = false
	return nil
}

// Length returns the Euclidean length. The result is cached until the
// next mutation.
func (v *Vector2[T]) Length() float64 {
	if !v.lengthOK {
		x, y := float64(v.x), float64(v.y)
		v.length = math.Sqrt(x*x + y*y)
		v.lengthOK = true
	}
	return v.length
}

// Normalize scales v in place to unit length.
// A zero vector is left unchanged and ErrDegenerate is returned.
// Integer vectors are truncated component-wise.
func (v *Vector2[T]) Normalize() error {
	if v.lengthOK && v.length == 1 {
		return nil
	}
	l := v.Length()
	if l == 0 {
		return ErrDegenerate
	}
	v.x = T(float64(v.x) / l)
	v.y = T(float64(v.y) / l)
	v.lengthOK = false
	return nil
}

// Add returns v + w.
func (v Vector2[T]) Add(w Vector2[T]) Vector2[T] {
	return Vector2[T]{x: v.x + w.x, y: v.y + w.y}
}

// Sub returns v - w.
func (v Vector2[T]) Sub(w Vector2[T]) Vector2[T] {
	return Vector2[T]{x: v.x - w.x, y: v.y - w.y}
}

// Neg returns -v.
func (v Vector2[T]) Neg() Vector2[T] {
	return Vector2[T]{x: -v.x, y: -v.y}
}

// Scale returns v multiplied by f. Components are converted back to T.
func (v Vector2[T]) Scale(f float64) Vector2[T] {
	return Vector2[T]{x: T(float64(v.x) * f), y: T(float64(v.y) * f)}
}

// Div returns v divided by f. Dividing a float vector by zero yields
// infinite components.
func (v Vector2[T]) Div(f float64) Vector2[T] {
	return Vector2[T]{x: T(float64(v.x) / f), y: T(float64(v.y) / f)}
}

// Dot returns the dot product of v and w.
func (v Vector2[T]) Dot(w Vector2[T]) T {
	return v.x*w.x + v.y*w.y
}

// Cross returns the 2D cross product.
// This is the z-component of the 3D cross product with z=0.
func (v Vector2[T]) Cross(w Vector2[T]) T {
	return v.x*w.y - v.y*w.x
}

// MulMat returns the row-vector product v·m.
// See Matrix2.MulVec for the column form m·v.
func (v Vector2[T]) MulMat(m Matrix2[T]) Vector2[T] {
	return Vector2[T]{
		x: v.x*m.data[0] + v.y*m.data[2],
		y: v.x*m.data[1] + v.y*m.data[3],
	}
}

// Equal reports whether every component of v and w differs by at most eps.
func (v Vector2[T]) Equal(w Vector2[T], eps float64) bool {
	return nearly(v.x, w.x, eps) && nearly(v.y, w.y, eps)
}

// String formats v as "[x, y]".
func (v Vector2[T]) String() string {
	return joinComponents(v.x, v.y)
}
