package ranking

import "math"

// Normalize returns an L2-normalized copy of v. A zero-norm vector is
// returned as-is rather than dividing by zero; it will simply score near
// zero against everything.
func Normalize(v []float64) []float64 {
	out := make([]float64, len(v))
	var sumSquares float64
	for _, x := range v {
		sumSquares += x * x
	}
	norm := math.Sqrt(sumSquares)
	if norm == 0 {
		copy(out, v)
		return out
	}
	for i, x := range v {
		out[i] = x / norm
	}
	return out
}

// Dot returns the inner product of two equal-length vectors. For
// unit-normalized vectors this equals their cosine similarity.
func Dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
