package vector_test

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/aretw0/primer/pkg/vector"
)

const eps = 1e-12

func TestNorm(t *testing.T) {
	tests := []struct {
		name string
		in   vector.Vector
		want float64
	}{
		{name: "Worked Example", in: vector.Vector{0, 1, 2}, want: math.Sqrt(5)},
		{name: "Pythagorean", in: vector.Vector{3, 4}, want: 5},
		{name: "Zero", in: vector.Vector{0, 0, 0}, want: 0},
		{name: "Empty", in: vector.Vector{}, want: 0},
		{name: "Negative Components", in: vector.Vector{-3, -4}, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := vector.Norm(tt.in); math.Abs(got-tt.want) > eps {
				t.Errorf("Norm(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	u, err := vector.Normalize(vector.Vector{3, 4})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	want := vector.Vector{0.6, 0.8}
	for i := range want {
		if math.Abs(u[i]-want[i]) > eps {
			t.Errorf("Normalize[%d] = %v, want %v", i, u[i], want[i])
		}
	}
	if n := vector.Norm(u); math.Abs(n-1) > eps {
		t.Errorf("unit vector norm = %v, want 1", n)
	}
}

func TestNormalize_ZeroVector(t *testing.T) {
	for _, in := range []vector.Vector{{}, {0}, {0, 0, 0}} {
		if _, err := vector.Normalize(in); !errors.Is(err, vector.ErrZeroVector) {
			t.Errorf("Normalize(%v): got %v, want ErrZeroVector", in, err)
		}
	}
}

func TestDot(t *testing.T) {
	got, err := vector.Dot(vector.Vector{1, 2, 3}, vector.Vector{4, 5, 6})
	if err != nil {
		t.Fatal(err)
	}
	if got != 32 {
		t.Errorf("Dot = %v, want 32", got)
	}

	_, err = vector.Dot(vector.Vector{1}, vector.Vector{1, 2})
	if !errors.Is(err, vector.ErrDimensionMismatch) {
		t.Errorf("mismatched dims: got %v, want ErrDimensionMismatch", err)
	}
}

func TestScale(t *testing.T) {
	got := vector.Scale(vector.Vector{1, -2}, 3)
	if got[0] != 3 || got[1] != -6 {
		t.Errorf("Scale = %v, want [3 -6]", got)
	}
}

func TestLesson_NormalizeReportsZeroVector(t *testing.T) {
	var run func(context.Context, *strings.Builder) error
	for _, l := range vector.Lessons() {
		if l.Slug == "vector/normalize" {
			lr := l.Run
			run = func(ctx context.Context, buf *strings.Builder) error {
				return lr(ctx, buf, []string{"0", "0"})
			}
		}
	}
	if run == nil {
		t.Fatal("vector/normalize lesson missing")
	}

	var buf strings.Builder
	if err := run(context.Background(), &buf); err != nil {
		t.Fatalf("lesson should report the error in its output, not return it: %v", err)
	}
	if !strings.Contains(buf.String(), "zero-magnitude") {
		t.Errorf("output = %q, want zero-vector message", buf.String())
	}
}
