package linalg

// Row-major helpers shared by the fixed-size matrices. All slices hold
// n*n elements and dst never aliases the operands.

func inSquare(row, col, n int) bool {
	return row >= 0 && row < n && col >= 0 && col < n
}

func addInto[T Scalar](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func subInto[T Scalar](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

func scaleInto[T Scalar](dst, a []T, f float64) {
	for i := range dst {
		dst[i] = T(float64(a[i]) * f)
	}
}

func divInto[T Scalar](dst, a []T, f float64) {
	for i := range dst {
		dst[i] = T(float64(a[i]) / f)
	}
}

func mulInto[T Scalar](dst, a, b []T, n int) {
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			var s T
			for k := 0; k < n; k++ {
				s += a[r*n+k] * b[k*n+c]
			}
			dst[r*n+c] = s
		}
	}
}

func transposeInto[T Scalar](dst, a []T, n int) {
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			dst[c*n+r] = a[r*n+c]
		}
	}
}

func equalElems[T Scalar](a, b []T, eps float64) bool {
	for i := range a {
		if !nearly(a[i], b[i], eps) {
			return false
		}
	}
	return true
}
