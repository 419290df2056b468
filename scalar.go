package linalg

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/constraints"
)

// Scalar is the set of component types accepted by the vector and matrix
// types: every built-in integer and floating-point type.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// joinComponents renders values as "[a, b, ...]".
func joinComponents[T Scalar](vals ...T) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range vals {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')
	return sb.String()
}

// formatRows renders a row-major n×n buffer one bracketed row per line.
func formatRows[T Scalar](data []T, n int) string {
	rows := make([]string, 0, n)
	for r := 0; r < n; r++ {
		rows = append(rows, joinComponents(data[r*n:(r+1)*n]...))
	}
	return strings.Join(rows, "\n")
}

// nearly reports whether two components differ by at most eps.
func nearly[T Scalar](a, b T, eps float64) bool {
	return math.Abs(float64(a)-float64(b)) <= eps
}
