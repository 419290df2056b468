// Command linalgdemo demonstrates the linalg library.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/linalg"
	"github.com/gogpu/linalg/dense"
	"github.com/gogpu/linalg/gpu"
)

func main() {
	var (
		angle   = flag.Float64("angle", 90, "rotation angle in degrees")
		axis    = flag.String("axis", "0,0,1", "rotation axis as x,y,z")
		n       = flag.Uint64("n", 52, "combination: set size")
		k       = flag.Uint64("k", 5, "combination: subset size")
		lang    = flag.String("lang", "en", "BCP 47 language tag for number grouping")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	tag, err := language.Parse(*lang)
	if err != nil {
		logger.Warn("unknown language, using English", "lang", *lang, "err", err)
		tag = language.English
	}
	p := message.NewPrinter(tag)

	if err := run(p, logger, *angle, *axis, *n, *k); err != nil {
		logger.Error("demo failed", "err", err)
		os.Exit(1)
	}
}

func run(p *message.Printer, logger *slog.Logger, angleDeg float64, axisFlag string, n, k uint64) error {
	axis, err := parseAxis(axisFlag)
	if err != nil {
		return err
	}

	rot, err := linalg.RotationAxisAngle(axis, linalg.Radians(angleDeg))
	if err != nil {
		return fmt.Errorf("rotation about %v: %w", axis, err)
	}
	p.Printf("rotation by %.1f° about %v:\n%v\n", angleDeg, axis, rot)
	p.Printf("det = %.6f\n", rot.Det())
	p.Printf("x axis maps to %v\n\n", rot.MulVec(linalg.NewVector3(1.0, 0, 0)))

	// The fixed-size types have no general inverse; go through dense.
	model := linalg.Translation4(linalg.NewVector3(1.0, 2, 3)).Mul(linalg.FromMatrix3(rot))
	elems := model.Elements()
	dm, err := dense.NewMatrix(4, 4, elems[:])
	if err != nil {
		return err
	}
	inv, err := dm.Inverse()
	if err != nil {
		return fmt.Errorf("invert model matrix: %w", err)
	}
	p.Printf("model matrix:\n%v\ninverse:\n%v\n\n", model, inv)

	p.Printf("C(%d, %d) = %d\n", n, k, linalg.Combination(n, k))
	p.Printf("20! = %d\n", linalg.Factorial(20))
	x1, x2 := linalg.SolveQuadratic(1, 0, 1)
	p.Printf("x^2 + 1 = 0: %v, %v\n", x1, x2)

	uniform := gpu.PackTransformUniform(model, [4]float32{1, 1, 1, 1})
	logger.Debug("packed transform uniform", "bytes", len(uniform))

	spirv, err := gpu.CompileTransformShader(gpu.WithLogger(logger))
	if err != nil {
		// Shader compilation is optional for the demo output.
		logger.Warn("transform shader not compiled", "err", err)
		return nil
	}
	p.Printf("transform shader: %d SPIR-V words\n", len(spirv))
	return nil
}

func parseAxis(s string) (linalg.Vector3[float64], error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return linalg.Vector3[float64]{}, fmt.Errorf("axis %q: want x,y,z", s)
	}
	var c [3]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return linalg.Vector3[float64]{}, fmt.Errorf("axis %q: %w", s, err)
		}
		c[i] = v
	}
	return linalg.NewVector3(c[0], c[1], c[2]), nil
}
