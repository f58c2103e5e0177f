package signature

import (
	"fmt"
	"math"
)

// Similarity returns the cosine of the angle between two signature vectors:
// dot product over the product of Euclidean norms, in roughly [-1, 1].
// Vectors of differing length were produced with different tuning and are
// never comparable; that is ErrLengthMismatch. If either vector has zero
// norm (a flat image quantizes to all zeros) the result is 0 rather
// than NaN.
func Similarity(a, b []int8) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("vectors of length %d and %d: %w", len(a), len(b), ErrLengthMismatch)
	}

	var dot float64
	for i := range a {
		dot += float64(int(a[i]) * int(b[i]))
	}

	na, nb := norm(a), norm(b)
	if na == 0 || nb == 0 {
		return 0, nil
	}
	return dot / (na * nb), nil
}

func norm(v []int8) float64 {
	var sum float64
	for _, e := range v {
		sum += float64(int(e) * int(e))
	}
	return math.Sqrt(sum)
}
