// Package vector is the course's error-handling chapter: a numeric vector
// type whose normalization is undefined for zero magnitude, reported the
// Go way as an explicit error return rather than a panic.
package vector

import (
	"errors"
	"math"
)

// Common errors.
var (
	ErrZeroVector        = errors.New("cannot normalize a zero-magnitude vector")
	ErrDimensionMismatch = errors.New("vectors have different dimensions")
)

// Vector is a sequence of float64 components.
type Vector []float64

// Norm returns the Euclidean norm of v. The norm of an empty vector is 0.
func Norm(v Vector) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Normalize returns the unit vector pointing in the direction of v.
// It returns ErrZeroVector when v has zero magnitude, since dividing by
// a zero norm is undefined.
func Normalize(v Vector) (Vector, error) {
	n := Norm(v)
	if n == 0 {
		return nil, ErrZeroVector
	}
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = x / n
	}
	return out, nil
}

// Scale returns v multiplied component-wise by k.
func Scale(v Vector, k float64) Vector {
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = x * k
	}
	return out
}

// Dot returns the dot product of a and b.
func Dot(a, b Vector) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum, nil
}
