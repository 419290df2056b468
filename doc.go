// Package linalg provides small fixed-size vector and matrix types for Go.
//
// # Overview
//
// linalg covers the linear algebra a 2D/3D renderer or simulation needs
// without pulling in a numeric framework: 2-, 3- and 4-dimensional
// matrices, 2- and 3-component vectors, and a handful of scalar helpers.
// Arbitrary-size matrices live in the dense sub-package.
//
// # Quick Start
//
//	import "github.com/gogpu/linalg"
//
//	axis := linalg.NewVector3(0.0, 0.0, 1.0)
//	rot, err := linalg.RotationAxisAngle(axis, math.Pi/2)
//	if err != nil {
//	    return err
//	}
//	p := rot.MulVec(linalg.NewVector3(1.0, 0.0, 0.0)) // [0, 1, 0] within rounding
//
// # Element Types
//
// Every type is generic over [Scalar], which admits all integer and
// floating-point types. Trigonometric constructors and scaling by a
// float64 convert back to the element type, so integer matrices truncate.
//
// # Conventions
//
//   - Matrices are row-major: element (r, c) of an NxN matrix is at N*r + c.
//   - MulVec on a matrix is the column-vector product M·v; MulMat on a
//     vector is the row-vector product v·M. They agree only for symmetric M.
//   - Matrix4 transforms 3D points with an implicit w=1 and keeps the
//     translation in its last column.
//   - Angles are in radians.
//
// # Errors
//
// Index violations return [ErrIndexOutOfRange]. Numeric degeneracies that
// would silently produce Inf or NaN (normalizing a zero vector, inverting a
// singular matrix, rotating about a zero axis) return [ErrDegenerate] or
// [ErrSingular] instead.
//
// # Concurrency
//
// Values may be shared read-only between goroutines. Vector2 and Vector3
// cache their length on first use, so Length must not race with itself or
// with a mutation of the same value.
package linalg

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
