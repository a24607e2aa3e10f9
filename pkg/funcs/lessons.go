package funcs

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/aretw0/primer/pkg/lesson"
)

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func parseFloats(args, defaults []string) ([]float64, error) {
	if len(args) == 0 {
		args = defaults
	}
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %q is not a number: %w", a, err)
		}
		out[i] = v
	}
	return out, nil
}

// Lessons returns the worked examples of this topic, in course order.
func Lessons() []lesson.Lesson {
	return []lesson.Lesson{
		{
			Slug:    "funcs/square",
			Topic:   "funcs",
			Title:   "A first function: square",
			Summary: "One argument in, one return value out.",
			Run:     runSquare,
		},
		{
			Slug:    "funcs/hypot",
			Topic:   "funcs",
			Title:   "Composing functions: hypot",
			Summary: "hypot is built from square and math.Sqrt.",
			Run:     runHypot,
		},
		{
			Slug:    "funcs/apply",
			Topic:   "funcs",
			Title:   "Functions as values",
			Summary: "Passing square into apply, like any other argument.",
			Run:     runApply,
		},
	}
}

func runSquare(ctx context.Context, w io.Writer, args []string) error {
	xs, err := parseFloats(args, []string{"3"})
	if err != nil {
		return err
	}
	for _, x := range xs {
		fmt.Fprintf(w, "square(%s) = %s\n", ftoa(x), ftoa(Square(x)))
	}
	return nil
}

func runHypot(ctx context.Context, w io.Writer, args []string) error {
	xs, err := parseFloats(args, []string{"3", "4"})
	if err != nil {
		return err
	}
	if len(xs) != 2 {
		return fmt.Errorf("hypot takes exactly two arguments, got %d", len(xs))
	}
	fmt.Fprintf(w, "hypot(%s, %s) = %s\n", ftoa(xs[0]), ftoa(xs[1]), ftoa(Hypot(xs[0], xs[1])))
	return nil
}

func runApply(ctx context.Context, w io.Writer, args []string) error {
	xs, err := parseFloats(args, []string{"1", "2", "3"})
	if err != nil {
		return err
	}
	squared := Apply(Square, xs)
	fmt.Fprintf(w, "apply(square, %s) = %s\n", formatVec(xs), formatVec(squared))
	return nil
}

func formatVec(xs []float64) string {
	s := "["
	for i, x := range xs {
		if i > 0 {
			s += " "
		}
		s += ftoa(x)
	}
	return s + "]"
}
