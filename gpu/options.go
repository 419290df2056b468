package gpu

import (
	"context"
	"log/slog"
)

// Option configures CompileTransformShader.
//
// Example:
//
//	// Compile with debug logging to stderr
//	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	}))
//	spirv, err := gpu.CompileTransformShader(gpu.WithLogger(logger))
type Option func(*options)

// options holds optional configuration for shader compilation.
type options struct {
	logger *slog.Logger
	source string
}

// defaultOptions returns the default options: silent logging and the
// bundled transform shader.
func defaultOptions() options {
	return options{
		logger: slog.New(discardHandler{}),
		source: transformShaderWGSL,
	}
}

// discardHandler drops every record. Enabled reports false so slog skips
// building the record at all.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h discardHandler) WithGroup(string) slog.Handler           { return h }

// WithLogger sets the logger used for compilation diagnostics.
// Passing nil keeps logging disabled.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithSource replaces the bundled WGSL source. The shader must declare the
// same bindings and vertex inputs as transform.wgsl to work with
// PackMatrix4 and VertexLayout3.
func WithSource(wgsl string) Option {
	return func(o *options) {
		o.source = wgsl
	}
}
