// Package dense provides vectors and matrices whose dimensions are chosen
// at run time.
//
// Each value owns a single row-major buffer allocated at construction.
// Clone makes a deep copy; no two values ever share storage.
//
// Determinants use recursive Laplace expansion along the first row and
// inverses use the adjugate, both O(n!) and intended for the small sizes
// where the fixed-size types in the parent package run out.
//
// Operations on operands of incompatible shape return a zero-filled result
// of the shape the caller asked for together with an error wrapping
// [linalg.ErrDimensionMismatch].
package dense
