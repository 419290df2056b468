package gpu

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/linalg"
)

func readFloats(b []byte) []float32 {
	out := make([]float32, len(b)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return out
}

func TestPackMatrix4ColumnMajor(t *testing.T) {
	m := linalg.NewMatrix4[float32](
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	)
	buf := PackMatrix4(m)
	if len(buf) != Matrix4Size {
		t.Fatalf("len = %d, want %d", len(buf), Matrix4Size)
	}
	got := readFloats(buf)
	want := []float32{1, 5, 9, 13, 2, 6, 10, 14, 3, 7, 11, 15, 4, 8, 12, 16}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("float %d = %v, want %v (all: %v)", i, got[i], want[i], got)
		}
	}
}

// TestPackMatrix4ShaderProduct evaluates transform * vec4(p, 1) the way WGSL
// does on the packed columns and compares it with MulVec.
func TestPackMatrix4ShaderProduct(t *testing.T) {
	rot, err := linalg.Rotation4AxisAngle(linalg.NewVector3(1.0, 2, -1), 0.6)
	if err != nil {
		t.Fatal(err)
	}
	m := linalg.Translation4(linalg.NewVector3(3.0, -1, 0.5)).Mul(rot)
	cols := readFloats(PackMatrix4(m))

	p := linalg.NewVector3(0.25, -2.0, 4)
	in := [4]float32{float32(p.X()), float32(p.Y()), float32(p.Z()), 1}
	var out [4]float32
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[r] += cols[c*4+r] * in[c]
		}
	}

	want := m.MulVec(p)
	got := linalg.NewVector3(float64(out[0]), float64(out[1]), float64(out[2]))
	if !got.Equal(want, 1e-5) || out[3] != 1 {
		t.Errorf("shader product = %v (w=%v), want %v", got, out[3], want)
	}
}

func TestPackTransformUniform(t *testing.T) {
	color := [4]float32{0.1, 0.2, 0.3, 1}
	buf := PackTransformUniform(linalg.Identity4[float64](), color)
	if len(buf) != TransformUniformSize {
		t.Fatalf("len = %d, want %d", len(buf), TransformUniformSize)
	}
	f := readFloats(buf)
	for i, c := range color {
		if f[16+i] != c {
			t.Errorf("color[%d] = %v, want %v", i, f[16+i], c)
		}
	}
	if f[0] != 1 || f[5] != 1 || f[10] != 1 || f[15] != 1 || f[1] != 0 {
		t.Errorf("identity not packed on the diagonal: %v", f[:16])
	}
}

func TestPutMatrix4ShortBufferPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("PutMatrix4 with a short buffer did not panic")
		}
	}()
	PutMatrix4(make([]byte, Matrix4Size-1), linalg.Identity4[float32]())
}

func TestPackVertices(t *testing.T) {
	pts2 := []linalg.Vector2[int]{linalg.NewVector2(1, 2), linalg.NewVector2(-3, 4)}
	buf := PackVertices2(pts2)
	if len(buf) != 2*Vertex2Stride {
		t.Fatalf("PackVertices2 len = %d", len(buf))
	}
	if f := readFloats(buf); f[2] != -3 || f[3] != 4 {
		t.Errorf("PackVertices2 = %v", f)
	}

	pts3 := []linalg.Vector3[float64]{linalg.NewVector3(0.5, 1, 2)}
	buf = PackVertices3(pts3)
	if len(buf) != Vertex3Stride {
		t.Fatalf("PackVertices3 len = %d", len(buf))
	}
	if f := readFloats(buf); f[0] != 0.5 || f[1] != 1 || f[2] != 2 {
		t.Errorf("PackVertices3 = %v", f)
	}

	if got := PackVertices3[float32](nil); len(got) != 0 {
		t.Errorf("PackVertices3(nil) len = %d", len(got))
	}
}

func TestVertexLayouts(t *testing.T) {
	tests := []struct {
		name   string
		layout gputypes.VertexBufferLayout
		stride uint64
		format gputypes.VertexFormat
	}{
		{"vec2", VertexLayout2(), Vertex2Stride, gputypes.VertexFormatFloat32x2},
		{"vec3", VertexLayout3(), Vertex3Stride, gputypes.VertexFormatFloat32x3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if uint64(tt.layout.ArrayStride) != tt.stride {
				t.Errorf("ArrayStride = %d, want %d", tt.layout.ArrayStride, tt.stride)
			}
			if tt.layout.StepMode != gputypes.VertexStepModeVertex {
				t.Errorf("StepMode = %v", tt.layout.StepMode)
			}
			if len(tt.layout.Attributes) != 1 || tt.layout.Attributes[0].Format != tt.format {
				t.Errorf("Attributes = %+v", tt.layout.Attributes)
			}
		})
	}
}

func TestBufferUsage(t *testing.T) {
	if UniformUsage&gputypes.BufferUsageUniform == 0 || UniformUsage&gputypes.BufferUsageCopyDst == 0 {
		t.Errorf("UniformUsage = %v", UniformUsage)
	}
	if VertexUsage&gputypes.BufferUsageVertex == 0 || VertexUsage&gputypes.BufferUsageUniform != 0 {
		t.Errorf("VertexUsage = %v", VertexUsage)
	}
}
