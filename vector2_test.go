package linalg

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestVector2Accessors(t *testing.T) {
	v := NewVector2(3.0, -4.0)
	if v.X() != 3 || v.Y() != -4 {
		t.Fatalf("NewVector2(3, -4) = (%v, %v)", v.X(), v.Y())
	}
	for i, want := range []float64{3, -4} {
		got, err := v.At(i)
		if err != nil {
			t.Fatalf("At(%d) error: %v", i, err)
		}
		if got != want {
			t.Errorf("At(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestVector2IndexOutOfRange(t *testing.T) {
	v := NewVector2(1, 2)
	for _, i := range []int{-1, 2, 100} {
		if _, err := v.At(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("At(%d) error = %v, want ErrIndexOutOfRange", i, err)
		}
		if err := v.Set(i, 7); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Set(%d) error = %v, want ErrIndexOutOfRange", i, err)
		}
	}
	if v.X() != 1 || v.Y() != 2 {
		t.Errorf("failed Set modified vector: %v", v)
	}
}

func TestVector2LengthCache(t *testing.T) {
	v := NewVector2(3.0, 4.0)
	first := v.Length()
	second := v.Length()
	if first != 5 || second != first {
		t.Fatalf("Length() = %v then %v, want 5 twice", first, second)
	}

	if err := v.Set(1, 0); err != nil {
		t.Fatal(err)
	}
	if got := v.Length(); got != 3 {
		t.Errorf("Length() after Set = %v, want 3 (stale cache?)", got)
	}
}

func TestVector2ZeroValue(t *testing.T) {
	var v Vector2[float64]
	if v.Length() != 0 {
		t.Errorf("zero value Length() = %v, want 0", v.Length())
	}
	if v.String() != "[0, 0]" {
		t.Errorf("zero value String() = %q", v.String())
	}
}

func TestVector2Normalize(t *testing.T) {
	v := NewVector2(3.0, 4.0)
	if err := v.Normalize(); err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}
	if !v.Equal(NewVector2(0.6, 0.8), epsilon) {
		t.Errorf("Normalize() = %v, want [0.6, 0.8]", v)
	}
	if !almostEqual(v.Length(), 1, epsilon) {
		t.Errorf("Length() after Normalize = %v, want 1", v.Length())
	}

	var zero Vector2[float64]
	if err := zero.Normalize(); !errors.Is(err, ErrDegenerate) {
		t.Errorf("Normalize() of zero vector error = %v, want ErrDegenerate", err)
	}
	if zero.X() != 0 || zero.Y() != 0 {
		t.Errorf("zero vector changed to %v", zero)
	}
}

func TestVector2Arithmetic(t *testing.T) {
	v := NewVector2(1.5, -2.0)
	w := NewVector2(0.25, 4.0)

	tests := []struct {
		name string
		got  Vector2[float64]
		want Vector2[float64]
	}{
		{"add", v.Add(w), NewVector2(1.75, 2.0)},
		{"sub", v.Sub(w), NewVector2(1.25, -6.0)},
		{"neg", v.Neg(), NewVector2(-1.5, 2.0)},
		{"scale", v.Scale(2), NewVector2(3.0, -4.0)},
		{"div", v.Div(2), NewVector2(0.75, -1.0)},
		{"add then sub", v.Add(w).Sub(w), v},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equal(tt.want, epsilon) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	if got := v.Dot(w); got != 1.5*0.25-8 {
		t.Errorf("Dot = %v", got)
	}
}

func TestVector2Cross(t *testing.T) {
	x := NewVector2(1, 0)
	y := NewVector2(0, 1)
	if got := x.Cross(y); got != 1 {
		t.Errorf("x.Cross(y) = %v, want 1", got)
	}
	if got := y.Cross(x); got != -1 {
		t.Errorf("y.Cross(x) = %v, want -1", got)
	}
	if got := x.Cross(x); got != 0 {
		t.Errorf("x.Cross(x) = %v, want 0", got)
	}
}

func TestVector2IntegerElements(t *testing.T) {
	v := NewVector2(7, 9)
	if got := v.Div(2); got.X() != 3 || got.Y() != 4 {
		t.Errorf("integer Div(2) = %v, want [3, 4]", got)
	}
	if got := v.Scale(0.5); got.String() != "[3, 4]" {
		t.Errorf("integer Scale(0.5) = %v, want [3, 4]", got)
	}
}

func TestVector2String(t *testing.T) {
	tests := []struct {
		v    Vector2[float64]
		want string
	}{
		{NewVector2(1.0, 2.0), "[1, 2]"},
		{NewVector2(0.5, -3.25), "[0.5, -3.25]"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
	if got := Pt2[int32](4, -1).String(); got != "[4, -1]" {
		t.Errorf("Pt2 String() = %q", got)
	}
}
