package linalg

import (
	"errors"
	"fmt"
)

// Mode selects a construction for the NewMatrixNMode constructors.
type Mode int

// Construction modes. Which modes and argument counts apply depends on the
// matrix dimension; see NewMatrix2Mode, NewMatrix3Mode and NewMatrix4Mode.
const (
	ModeIdentity Mode = iota
	ModeRotation
	ModeTranslation
	ModeRotationX
	ModeRotationY
	ModeRotationZ
)

var modeNames = [...]string{
	ModeIdentity:    "identity",
	ModeRotation:    "rotation",
	ModeTranslation: "translation",
	ModeRotationX:   "rotation-x",
	ModeRotationY:   "rotation-y",
	ModeRotationZ:   "rotation-z",
}

// String returns the mode name.
func (m Mode) String() string {
	if m >= 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

func modeError(dim int, m Mode, nargs int) error {
	return fmt.Errorf("%w: %s with %d argument(s) for %dx%d matrix", ErrUnknownMode, m, nargs, dim, dim)
}

// NewMatrix2Mode builds a Matrix2 from a mode tag:
//
//	ModeIdentity              no arguments
//	ModeRotation   θ          Rotation2
func NewMatrix2Mode[T Scalar](mode Mode, args ...float64) (Matrix2[T], error) {
	switch {
	case mode == ModeIdentity && len(args) == 0:
		return Identity2[T](), nil
	case mode == ModeRotation && len(args) == 1:
		return Rotation2[T](args[0]), nil
	}
	return Matrix2[T]{}, modeError(2, mode, len(args))
}

// NewMatrix3Mode builds a Matrix3 from a mode tag:
//
//	ModeIdentity                  no arguments
//	ModeRotation   θ              RotationX
//	ModeRotation   θ, φ           RotationSpherical
//	ModeRotation   x, y, z, θ     RotationAxisAngle
//	ModeRotationX  θ              RotationX (likewise Y and Z)
func NewMatrix3Mode[T Scalar](mode Mode, args ...float64) (Matrix3[T], error) {
	switch mode {
	case ModeIdentity:
		if len(args) == 0 {
			return Identity3[T](), nil
		}
	case ModeRotation:
		switch len(args) {
		case 1:
			return RotationX[T](args[0]), nil
		case 2:
			return RotationSpherical[T](args[0], args[1]), nil
		case 4:
			axis := NewVector3(T(args[0]), T(args[1]), T(args[2]))
			return RotationAxisAngle(axis, args[3])
		}
	case ModeRotationX, ModeRotationY, ModeRotationZ:
		if len(args) == 1 {
			return axisRotation[T](mode, args[0]), nil
		}
	}
	return Matrix3[T]{}, modeError(3, mode, len(args))
}

// NewMatrix4Mode builds a Matrix4 from a mode tag. It accepts every
// Matrix3 mode, embedded in the upper-left block, plus:
//
//	ModeTranslation  x, y, z      Translation4
func NewMatrix4Mode[T Scalar](mode Mode, args ...float64) (Matrix4[T], error) {
	switch {
	case mode == ModeIdentity && len(args) == 0:
		return Identity4[T](), nil
	case mode == ModeTranslation && len(args) == 3:
		return Translation4(NewVector3(T(args[0]), T(args[1]), T(args[2]))), nil
	case mode == ModeTranslation:
		return Matrix4[T]{}, modeError(4, mode, len(args))
	}
	m3, err := NewMatrix3Mode[T](mode, args...)
	if err != nil {
		if errors.Is(err, ErrUnknownMode) {
			return Matrix4[T]{}, modeError(4, mode, len(args))
		}
		return Matrix4[T]{}, err
	}
	return FromMatrix3(m3), nil
}

func axisRotation[T Scalar](mode Mode, theta float64) Matrix3[T] {
	switch mode {
	case ModeRotationY:
		return RotationY[T](theta)
	case ModeRotationZ:
		return RotationZ[T](theta)
	}
	return RotationX[T](theta)
}
