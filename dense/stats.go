package dense

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/gogpu/linalg"
)

// Sum returns the sum of the components.
func (v *Vector[T]) Sum() T {
	var s T
	for _, x := range v.data {
		s += x
	}
	return s
}

// Mean returns the arithmetic mean of the components.
// An empty vector returns ErrDegenerate.
func (v *Vector[T]) Mean() (float64, error) {
	if len(v.data) == 0 {
		return 0, fmt.Errorf("%w: mean of empty vector", linalg.ErrDegenerate)
	}
	var s float64
	for _, x := range v.data {
		s += float64(x)
	}
	return s / float64(len(v.data)), nil
}

// Variance returns the population variance of the components.
// An empty vector returns ErrDegenerate.
func (v *Vector[T]) Variance() (float64, error) {
	mean, err := v.Mean()
	if err != nil {
		return 0, err
	}
	var s float64
	for _, x := range v.data {
		d := float64(x) - mean
		s += d * d
	}
	return s / float64(len(v.data)), nil
}

// Standardize returns the z-scores (x - mean) / stddev of the components.
// It returns ErrDegenerate for an empty vector or one whose components are
// all equal. Integer vectors truncate each score.
func (v *Vector[T]) Standardize() (*Vector[T], error) {
	variance, err := v.Variance()
	if err != nil {
		return nil, err
	}
	std := math.Sqrt(variance)
	if std == 0 {
		return nil, fmt.Errorf("%w: zero standard deviation", linalg.ErrDegenerate)
	}
	mean, _ := v.Mean()
	out := NewVector[T](len(v.data))
	for i, x := range v.data {
		out.data[i] = T((float64(x) - mean) / std)
	}
	return out, nil
}

// ArgMax returns the index of the largest component, the first one on
// ties, or -1 for an empty vector.
func (v *Vector[T]) ArgMax() int {
	if len(v.data) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(v.data); i++ {
		if v.data[i] > v.data[best] {
			best = i
		}
	}
	return best
}

// Shuffle permutes the components in place with a Fisher-Yates shuffle
// drawing from r.
func (v *Vector[T]) Shuffle(r *rand.Rand) {
	for i := len(v.data) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		v.data[i], v.data[j] = v.data[j], v.data[i]
	}
}
