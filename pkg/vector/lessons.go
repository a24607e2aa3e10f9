package vector

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/aretw0/primer/pkg/lesson"
)

// Lessons returns the worked examples of this topic.
func Lessons() []lesson.Lesson {
	return []lesson.Lesson{
		{
			Slug:    "vector/norm",
			Topic:   "vector",
			Title:   "Euclidean norm of a vector",
			Summary: "Summing squares and taking the root.",
			Run:     runNorm,
		},
		{
			Slug:    "vector/normalize",
			Topic:   "vector",
			Title:   "Normalization and the zero vector",
			Summary: "A function that can fail returns an error alongside its result.",
			Run:     runNormalize,
		},
	}
}

func parseVector(args, defaults []string) (Vector, error) {
	if len(args) == 0 {
		args = defaults
	}
	v := make(Vector, len(args))
	for i, a := range args {
		x, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("component %q is not a number: %w", a, err)
		}
		v[i] = x
	}
	return v, nil
}

func format(v Vector) string {
	s := "("
	for i, x := range v {
		if i > 0 {
			s += ", "
		}
		s += strconv.FormatFloat(x, 'g', -1, 64)
	}
	return s + ")"
}

func runNorm(ctx context.Context, w io.Writer, args []string) error {
	v, err := parseVector(args, []string{"0", "1", "2"})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "norm%s = %.4f\n", format(v), Norm(v))
	return nil
}

func runNormalize(ctx context.Context, w io.Writer, args []string) error {
	v, err := parseVector(args, []string{"3", "4"})
	if err != nil {
		return err
	}
	u, err := Normalize(v)
	if err != nil {
		// The failure is the lesson: report it and finish cleanly.
		fmt.Fprintf(w, "normalize%s: %v\n", format(v), err)
		return nil
	}
	fmt.Fprintf(w, "normalize%s = %s\n", format(v), format(u))
	return nil
}
