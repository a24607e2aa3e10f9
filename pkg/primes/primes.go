// Package primes closes the functions chapter with a deliberately
// hard-coded return value, then a real (if naive) computation on top.
package primes

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/aretw0/primer/pkg/lesson"
)

// FirstFive returns the first five prime numbers. The list is hard-coded:
// the lesson is about returning a slice, not about finding primes.
func FirstFive() []int {
	return []int{2, 3, 5, 7, 11}
}

// IsPrime reports whether n is prime, by trial division up to √n.
func IsPrime(n int) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for i := 3; i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// Below returns every prime strictly less than limit, ascending.
func Below(limit int) []int {
	var out []int
	for n := 2; n < limit; n++ {
		if IsPrime(n) {
			out = append(out, n)
		}
	}
	return out
}

// Lessons returns the worked examples of this topic.
func Lessons() []lesson.Lesson {
	return []lesson.Lesson{
		{
			Slug:    "primes/first-five",
			Topic:   "primes",
			Title:   "Returning a slice",
			Summary: "A function whose whole body is its return statement.",
			Run:     runFirstFive,
		},
	}
}

func runFirstFive(ctx context.Context, w io.Writer, args []string) error {
	fmt.Fprintf(w, "the first five primes are %v\n", FirstFive())
	if len(args) > 0 {
		limit, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("limit %q is not an integer: %w", args[0], err)
		}
		fmt.Fprintf(w, "primes below %d: %v\n", limit, Below(limit))
	}
	return nil
}
