package dense

import (
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/linalg"
)

// Vector is a vector of fixed run-time length.
type Vector[T linalg.Scalar] struct {
	data []T
}

// NewVector returns a zero vector of length n. It panics if n is negative.
func NewVector[T linalg.Scalar](n int) *Vector[T] {
	return &Vector[T]{data: make([]T, n)}
}

// NewVectorFrom returns a vector holding a copy of the first n elements of src.
func NewVectorFrom[T linalg.Scalar](n int, src []T) (*Vector[T], error) {
	if n < 0 || len(src) < n {
		return nil, fmt.Errorf("%w: need %d elements, have %d", linalg.ErrDimensionMismatch, n, len(src))
	}
	v := NewVector[T](n)
	copy(v.data, src)
	return v, nil
}

// VectorOf returns a vector holding a copy of vals.
func VectorOf[T linalg.Scalar](vals ...T) *Vector[T] {
	v := NewVector[T](len(vals))
	copy(v.data, vals)
	return v
}

// Clone returns a deep copy of v.
func (v *Vector[T]) Clone() *Vector[T] {
	return VectorOf(v.data...)
}

// Len returns the number of components.
func (v *Vector[T]) Len() int { return len(v.data) }

// Elements returns a copy of the components.
func (v *Vector[T]) Elements() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)
	return out
}

// At returns component i.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.data) {
		return 0, outOfRange(i, len(v.data))
	}
	return v.data[i], nil
}

// Set assigns component i.
func (v *Vector[T]) Set(i int, val T) error {
	if i < 0 || i >= len(v.data) {
		return outOfRange(i, len(v.data))
	}
	v.data[i] = val
	return nil
}

// Add returns v + w. On a length mismatch it returns a zero vector of
// v's length and an error.
func (v *Vector[T]) Add(w *Vector[T]) (*Vector[T], error) {
	out := NewVector[T](len(v.data))
	if len(w.data) != len(v.data) {
		return out, lengthMismatch(len(v.data), len(w.data))
	}
	for i := range out.data {
		out.data[i] = v.data[i] + w.data[i]
	}
	return out, nil
}

// Sub returns v - w. On a length mismatch it returns a zero vector of
// v's length and an error.
func (v *Vector[T]) Sub(w *Vector[T]) (*Vector[T], error) {
	out := NewVector[T](len(v.data))
	if len(w.data) != len(v.data) {
		return out, lengthMismatch(len(v.data), len(w.data))
	}
	for i := range out.data {
		out.data[i] = v.data[i] - w.data[i]
	}
	return out, nil
}

// Dot returns the dot product of v and w, or 0 and an error on a length
// mismatch.
func (v *Vector[T]) Dot(w *Vector[T]) (T, error) {
	if len(w.data) != len(v.data) {
		return 0, lengthMismatch(len(v.data), len(w.data))
	}
	var s T
	for i, x := range v.data {
		s += x * w.data[i]
	}
	return s, nil
}

// Scale returns v multiplied by f.
func (v *Vector[T]) Scale(f float64) *Vector[T] {
	out := NewVector[T](len(v.data))
	for i, x := range v.data {
		out.data[i] = T(float64(x) * f)
	}
	return out
}

// Length returns the Euclidean length of v.
func (v *Vector[T]) Length() float64 {
	var s float64
	for _, x := range v.data {
		s += float64(x) * float64(x)
	}
	return math.Sqrt(s)
}

// MulMat returns the row-vector product v·m. v must have m.Rows()
// components; otherwise a zero vector of m.Cols() components is returned
// with an error.
func (v *Vector[T]) MulMat(m *Matrix[T]) (*Vector[T], error) {
	out := NewVector[T](m.cols)
	if len(v.data) != m.rows {
		return out, fmt.Errorf("%w: %d-vector times %dx%d matrix",
			linalg.ErrDimensionMismatch, len(v.data), m.rows, m.cols)
	}
	for c := 0; c < m.cols; c++ {
		var s T
		for r, x := range v.data {
			s += x * m.data[r*m.cols+c]
		}
		out.data[c] = s
	}
	return out, nil
}

// Equal reports whether v and w have the same length and every pair of
// components differs by at most eps.
func (v *Vector[T]) Equal(w *Vector[T], eps float64) bool {
	return len(v.data) == len(w.data) && equalElems(v.data, w.data, eps)
}

// String formats v as "[a, b, ...]".
func (v *Vector[T]) String() string {
	return formatRow(v.data)
}

func formatRow[T linalg.Scalar](vals []T) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range vals {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, x)
	}
	sb.WriteByte(']')
	return sb.String()
}

func equalElems[T linalg.Scalar](a, b []T, eps float64) bool {
	for i := range a {
		if math.Abs(float64(a[i])-float64(b[i])) > eps {
			return false
		}
	}
	return true
}

func outOfRange(i, n int) error {
	return fmt.Errorf("%w: index %d, length %d", linalg.ErrIndexOutOfRange, i, n)
}

func lengthMismatch(want, got int) error {
	return fmt.Errorf("%w: lengths %d and %d", linalg.ErrDimensionMismatch, want, got)
}
