package linalg

import (
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
)

// Conversions to and from the array types of golang.org/x/image/math.
// Both packages use the same row-major layout as this one, so matrices
// convert element by element.

func convertElems[D, S Scalar](dst []D, src []S) {
	for i, v := range src {
		dst[i] = D(v)
	}
}

// ToF64 returns v as an f64.Vec2.
func (v Vector2[T]) ToF64() f64.Vec2 {
	return f64.Vec2{float64(v.x), float64(v.y)}
}

// ToF32 returns v as an f32.Vec2.
func (v Vector2[T]) ToF32() f32.Vec2 {
	return f32.Vec2{float32(v.x), float32(v.y)}
}

// Vector2FromF64 converts an f64.Vec2.
func Vector2FromF64[T Scalar](v f64.Vec2) Vector2[T] {
	return Vector2[T]{x: T(v[0]), y: T(v[1])}
}

// ToF64 returns v as an f64.Vec3.
func (v Vector3[T]) ToF64() f64.Vec3 {
	return f64.Vec3{float64(v.x), float64(v.y), float64(v.z)}
}

// ToF32 returns v as an f32.Vec3.
func (v Vector3[T]) ToF32() f32.Vec3 {
	return f32.Vec3{float32(v.x), float32(v.y), float32(v.z)}
}

// Vector3FromF64 converts an f64.Vec3.
func Vector3FromF64[T Scalar](v f64.Vec3) Vector3[T] {
	return Vector3[T]{x: T(v[0]), y: T(v[1]), z: T(v[2])}
}

// ToAff3 returns m as the linear part of an f64.Aff3 with zero translation.
func (m Matrix2[T]) ToAff3() f64.Aff3 {
	d := m.data
	return f64.Aff3{
		float64(d[0]), float64(d[1]), 0,
		float64(d[2]), float64(d[3]), 0,
	}
}

// ToF64 returns m as an f64.Mat3.
func (m Matrix3[T]) ToF64() f64.Mat3 {
	var out f64.Mat3
	convertElems(out[:], m.data[:])
	return out
}

// ToF32 returns m as an f32.Mat3.
func (m Matrix3[T]) ToF32() f32.Mat3 {
	var out f32.Mat3
	convertElems(out[:], m.data[:])
	return out
}

// Matrix3FromF64 converts an f64.Mat3.
func Matrix3FromF64[T Scalar](m f64.Mat3) Matrix3[T] {
	var out Matrix3[T]
	convertElems(out.data[:], m[:])
	return out
}

// ToF64 returns m as an f64.Mat4.
func (m Matrix4[T]) ToF64() f64.Mat4 {
	var out f64.Mat4
	convertElems(out[:], m.data[:])
	return out
}

// ToF32 returns m as an f32.Mat4.
func (m Matrix4[T]) ToF32() f32.Mat4 {
	var out f32.Mat4
	convertElems(out[:], m.data[:])
	return out
}

// Matrix4FromF64 converts an f64.Mat4.
func Matrix4FromF64[T Scalar](m f64.Mat4) Matrix4[T] {
	var out Matrix4[T]
	convertElems(out.data[:], m[:])
	return out
}
