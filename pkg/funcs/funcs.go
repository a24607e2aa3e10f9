// Package funcs holds the opening lessons of the course: plain functions,
// arguments, return values, and functions as values.
package funcs

import "math"

// Square returns x multiplied by itself. The classic first function:
// one argument in, one value out.
func Square(x float64) float64 {
	return x * x
}

// Hypot returns the length of the hypotenuse of a right triangle with
// legs x and y.
func Hypot(x, y float64) float64 {
	return math.Sqrt(Square(x) + Square(y))
}

// SumDiff returns both the sum and the difference of a and b.
// Go functions return multiple values directly; no tuple wrapper needed.
func SumDiff(a, b float64) (sum, diff float64) {
	return a + b, a - b
}

// Apply maps f over xs and returns the results. Functions are ordinary
// values in Go: they can be passed as arguments like any other.
func Apply(f func(float64) float64, xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return out
}
