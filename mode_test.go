package linalg

import (
	"errors"
	"testing"
)

func TestNewMatrix2Mode(t *testing.T) {
	m, err := NewMatrix2Mode[float64](ModeIdentity)
	if err != nil || !m.IsIdentity() {
		t.Errorf("ModeIdentity = %v, %v", m, err)
	}
	m, err = NewMatrix2Mode[float64](ModeRotation, 0.5)
	if err != nil || m != Rotation2[float64](0.5) {
		t.Errorf("ModeRotation = %v, %v", m, err)
	}

	bad := []struct {
		mode Mode
		args []float64
	}{
		{ModeTranslation, []float64{1, 2}},
		{ModeRotationX, []float64{1}},
		{ModeRotation, nil},
		{ModeIdentity, []float64{1}},
		{Mode(42), nil},
	}
	for _, tt := range bad {
		if _, err := NewMatrix2Mode[float64](tt.mode, tt.args...); !errors.Is(err, ErrUnknownMode) {
			t.Errorf("NewMatrix2Mode(%v, %v) error = %v, want ErrUnknownMode", tt.mode, tt.args, err)
		}
	}
}

func TestNewMatrix3Mode(t *testing.T) {
	axisAngle, err := RotationAxisAngle(NewVector3(0.0, 1, 1), 0.7)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		mode Mode
		args []float64
		want Matrix3[float64]
	}{
		{"identity", ModeIdentity, nil, Identity3[float64]()},
		{"rotation one angle", ModeRotation, []float64{0.2}, RotationX[float64](0.2)},
		{"rotation two angles", ModeRotation, []float64{0.2, 0.3}, RotationSpherical[float64](0.2, 0.3)},
		{"rotation axis angle", ModeRotation, []float64{0, 1, 1, 0.7}, axisAngle},
		{"rotation x", ModeRotationX, []float64{1.1}, RotationX[float64](1.1)},
		{"rotation y", ModeRotationY, []float64{1.1}, RotationY[float64](1.1)},
		{"rotation z", ModeRotationZ, []float64{1.1}, RotationZ[float64](1.1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewMatrix3Mode[float64](tt.mode, tt.args...)
			if err != nil {
				t.Fatalf("error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got\n%v\nwant\n%v", got, tt.want)
			}
		})
	}

	if _, err := NewMatrix3Mode[float64](ModeTranslation, 1, 2, 3); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("ModeTranslation error = %v, want ErrUnknownMode", err)
	}
	if _, err := NewMatrix3Mode[float64](ModeRotation, 1, 2, 3); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("ModeRotation with 3 args error = %v, want ErrUnknownMode", err)
	}
	if _, err := NewMatrix3Mode[float64](ModeRotation, 0, 0, 0, 1); !errors.Is(err, ErrDegenerate) {
		t.Errorf("zero axis error = %v, want ErrDegenerate", err)
	}
}

func TestNewMatrix4Mode(t *testing.T) {
	m, err := NewMatrix4Mode[float64](ModeTranslation, 1, 2, 3)
	if err != nil || m != Translation4(NewVector3(1.0, 2, 3)) {
		t.Errorf("ModeTranslation = %v, %v", m, err)
	}
	m, err = NewMatrix4Mode[float64](ModeRotationZ, 0.4)
	if err != nil || m != Rotation4Z[float64](0.4) {
		t.Errorf("ModeRotationZ = %v, %v", m, err)
	}
	m, err = NewMatrix4Mode[float64](ModeIdentity)
	if err != nil || !m.IsIdentity() {
		t.Errorf("ModeIdentity = %v, %v", m, err)
	}

	if _, err := NewMatrix4Mode[float64](ModeTranslation, 1); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("short translation error = %v, want ErrUnknownMode", err)
	}
	if _, err := NewMatrix4Mode[float64](Mode(-1)); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("Mode(-1) error = %v, want ErrUnknownMode", err)
	}
}

func TestModeString(t *testing.T) {
	if got := ModeRotationY.String(); got != "rotation-y" {
		t.Errorf("String() = %q", got)
	}
	if got := Mode(99).String(); got != "Mode(99)" {
		t.Errorf("String() = %q", got)
	}
}
