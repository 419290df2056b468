package linalg

import "math"

// Tolerances for Equal.
const (
	LargeEpsilon = 1e-2
	Epsilon      = 1e-4
	TinyEpsilon  = 1e-5
)

// DefaultTrigPrecision is the number of series terms Sin and Cos add
// after the leading one when the caller has no preference.
const DefaultTrigPrecision = 4

// Sin approximates sin(rad) with a Taylor series of precision terms after
// the leading one (at least one is always added). rad is first wrapped
// into [-π, π], where the series converges quickly.
//
// Sin is meant for targets where the platform's trigonometry is not
// trusted; elsewhere prefer math.Sin.
func Sin(rad float64, precision int) float64 {
	rad = math.Remainder(rad, 2*math.Pi)
	return taylor(rad, rad, rad*rad, 2, precision)
}

// Cos approximates cos(rad); see Sin.
func Cos(rad float64, precision int) float64 {
	rad = math.Remainder(rad, 2*math.Pi)
	return taylor(1, 1, rad*rad, 1, precision)
}

// taylor sums the alternating series shared by sine and cosine. Each step
// multiplies the running power by -x² and the factorial by the next two
// integers starting at k.
func taylor(sum, pow, x2 float64, k, terms int) float64 {
	terms = max(terms, 1)
	fact := 1.0
	for range terms {
		pow *= -x2
		fact *= float64(k) * float64(k+1)
		k += 2
		sum += pow / fact
	}
	return sum
}

// Equal reports whether a and b differ by at most eps.
func Equal(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 { return rad * 180 / math.Pi }

// Factorial returns n!. It returns 1 for n <= 0 and overflows silently
// past 20! on 64-bit platforms.
func Factorial(n int) int {
	res := 1
	for i := 2; i <= n; i++ {
		res *= i
	}
	return res
}

// DigitSum returns the sum of the decimal digits of n.
// Negative inputs yield the negated digit sum.
func DigitSum(n int) int {
	sum := 0
	for n != 0 {
		sum += n % 10
		n /= 10
	}
	return sum
}

// Combination returns the binomial coefficient C(n, k), or 0 when k > n.
//
// The multiplicative formula keeps every intermediate an exact binomial
// coefficient, and k is replaced by n-k when that is smaller so fewer
// multiplications can overflow.
func Combination(n, k uint64) uint64 {
	if k > n {
		return 0
	}
	if k > n/2 {
		k = n - k
	}
	r := uint64(1)
	for d := uint64(0); d < k; d++ {
		r *= n - d
		r /= d + 1
	}
	return r
}

// Gaussian evaluates the bump a·exp(−(x−b)²/(2c²)) with peak height a,
// center b and width c.
func Gaussian(x, a, b, c float64) float64 {
	d := x - b
	return a * math.Exp(-(d*d)/(2*c*c))
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
