package gpu

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/linalg"
)

// Buffer layout constants.
const (
	// Matrix4Size is the size of a packed mat4x4<f32> in bytes.
	Matrix4Size = 64

	// Vertex2Stride is the byte stride of a packed vec2<f32> position.
	Vertex2Stride = 8

	// Vertex3Stride is the byte stride of a packed vec3<f32> position.
	Vertex3Stride = 12

	// TransformUniformSize is the size of the transform shader's uniform
	// block: mat4x4<f32> transform followed by vec4<f32> color.
	TransformUniformSize = Matrix4Size + 16
)

// UniformUsage is the buffer usage for a transform uniform that is
// rewritten from the CPU every frame.
var UniformUsage = gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst

// VertexUsage is the buffer usage for packed vertex positions.
var VertexUsage = gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst

// PackMatrix4 returns m as a WGSL mat4x4<f32>: 16 little-endian float32
// values written column by column. WGSL matrices are column-major and
// multiply column vectors, so in the shader
//
//	transform * vec4<f32>(p, 1.0)
//
// yields m.MulVec(p) for every point p.
func PackMatrix4[T linalg.Scalar](m linalg.Matrix4[T]) []byte {
	buf := make([]byte, Matrix4Size)
	PutMatrix4(buf, m)
	return buf
}

// PutMatrix4 writes m into buf in the PackMatrix4 layout.
// It panics if buf is shorter than Matrix4Size.
func PutMatrix4[T linalg.Scalar](buf []byte, m linalg.Matrix4[T]) {
	_ = buf[Matrix4Size-1]
	f := m.ToF32()
	off := 0
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			putFloat32(buf[off:], f[r*4+c])
			off += 4
		}
	}
}

// PackTransformUniform returns the uniform block read by the transform
// shader: the packed transform followed by an RGBA color.
func PackTransformUniform[T linalg.Scalar](m linalg.Matrix4[T], color [4]float32) []byte {
	buf := make([]byte, TransformUniformSize)
	PutMatrix4(buf, m)
	for i, c := range color {
		putFloat32(buf[Matrix4Size+i*4:], c)
	}
	return buf
}

// PackVertices2 returns the points as consecutive vec2<f32> values.
func PackVertices2[T linalg.Scalar](points []linalg.Vector2[T]) []byte {
	buf := make([]byte, len(points)*Vertex2Stride)
	for i, p := range points {
		v := p.ToF32()
		off := i * Vertex2Stride
		putFloat32(buf[off:], v[0])
		putFloat32(buf[off+4:], v[1])
	}
	return buf
}

// PackVertices3 returns the points as consecutive vec3<f32> values.
func PackVertices3[T linalg.Scalar](points []linalg.Vector3[T]) []byte {
	buf := make([]byte, len(points)*Vertex3Stride)
	for i, p := range points {
		v := p.ToF32()
		off := i * Vertex3Stride
		putFloat32(buf[off:], v[0])
		putFloat32(buf[off+4:], v[1])
		putFloat32(buf[off+8:], v[2])
	}
	return buf
}

// VertexLayout2 returns the vertex buffer layout for PackVertices2 data:
// float32x2 position at location(0).
func VertexLayout2() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: Vertex2Stride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
		},
	}
}

// VertexLayout3 returns the vertex buffer layout for PackVertices3 data:
// float32x3 position at location(0), as read by the transform shader.
func VertexLayout3() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: Vertex3Stride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
		},
	}
}

func putFloat32(buf []byte, v float32) {
	binary.LittleEndian.PutUint32(buf, math.Float32bits(v))
}
