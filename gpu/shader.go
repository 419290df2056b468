package gpu

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/gogpu/naga"
)

//go:embed transform.wgsl
var transformShaderWGSL string

// spirvMagic is the first word of every SPIR-V module.
const spirvMagic = 0x07230203

// ErrInvalidSPIRV is returned when the compiler output is not a SPIR-V module.
var ErrInvalidSPIRV = errors.New("gpu: compiler output is not SPIR-V")

// TransformShaderSource returns the bundled WGSL transform shader.
func TransformShaderSource() string {
	return transformShaderWGSL
}

// CompileTransformShader compiles the transform shader to SPIR-V words
// ready for a shader module descriptor.
func CompileTransformShader(opts ...Option) ([]uint32, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	spirvBytes, err := naga.Compile(o.source)
	if err != nil {
		return nil, fmt.Errorf("gpu: failed to compile transform shader: %w", err)
	}

	words, err := spirvWords(spirvBytes)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("compiled transform shader",
		"wgsl_bytes", len(o.source),
		"spirv_words", len(words))
	return words, nil
}

// spirvWords converts little-endian SPIR-V bytes to words and checks the
// magic number.
func spirvWords(b []byte) ([]uint32, error) {
	if len(b) < 4 || len(b)%4 != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidSPIRV, len(b))
	}
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = uint32(b[i*4]) |
			uint32(b[i*4+1])<<8 |
			uint32(b[i*4+2])<<16 |
			uint32(b[i*4+3])<<24
	}
	if words[0] != spirvMagic {
		return nil, fmt.Errorf("%w: magic %#08x", ErrInvalidSPIRV, words[0])
	}
	return words, nil
}
