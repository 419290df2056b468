package linalg

import "math"

// SolveQuadratic finds both roots of ax^2 + bx + c = 0 over the complex
// numbers. x1 is the root taken with +sqrt(discriminant), x2 the one with
// -sqrt, so a negative discriminant yields the conjugate pair (p+qi, p-qi)
// with q > 0 for a > 0.
//
// Real roots use the cancellation-free form (see
// https://math.stackexchange.com/questions/866331). If a is zero the
// equation is treated as linear and both roots equal -c/b.
func SolveQuadratic(a, b, c float64) (x1, x2 complex128) {
	if a == 0 {
		r := complex(-c/b, 0)
		return r, r
	}

	disc := b*b - 4*a*c
	if !isFinite(disc) {
		// The discriminant overflowed. Dividing every coefficient by the
		// largest one keeps the roots and brings the terms back in range.
		if m := max(math.Abs(a), math.Abs(b), math.Abs(c)); isFinite(m) && m > 1 {
			return SolveQuadratic(a/m, b/m, c/m)
		}
	}

	switch {
	case disc > 0:
		q := -0.5 * (b + math.Copysign(math.Sqrt(disc), b))
		if b >= 0 {
			return complex(c/q, 0), complex(q/a, 0)
		}
		return complex(q/a, 0), complex(c/q, 0)
	case disc == 0:
		r := complex(-b/(2*a), 0)
		return r, r
	default:
		re := -b / (2 * a)
		im := math.Sqrt(-disc) / (2 * a)
		return complex(re, im), complex(re, -im)
	}
}
