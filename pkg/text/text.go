// Package text holds small string lessons built on strings.Repeat.
package text

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/primer/pkg/lesson"
)

// Center pads s on both sides with pad until it is width runes wide.
// When the leftover padding is odd the extra rune goes on the right.
// Strings already at least width wide are returned unchanged.
func Center(s string, width int, pad rune) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	total := width - n
	left := total / 2
	return strings.Repeat(string(pad), left) + s + strings.Repeat(string(pad), total-left)
}

// Banner returns s centered between two rules of '=' characters.
func Banner(s string, width int) string {
	rule := strings.Repeat("=", width)
	return rule + "\n" + Center(s, width, ' ') + "\n" + rule
}

// Lessons returns the worked examples of this topic.
func Lessons() []lesson.Lesson {
	return []lesson.Lesson{
		{
			Slug:    "text/center",
			Topic:   "text",
			Title:   "Centering with repeated characters",
			Summary: "Building padding from strings.Repeat.",
			Run:     runCenter,
		},
	}
}

func runCenter(ctx context.Context, w io.Writer, args []string) error {
	s := "primer"
	if len(args) > 0 {
		s = args[0]
	}
	fmt.Fprintln(w, Center(s, 20, '-'))
	fmt.Fprintln(w, Banner(s, 20))
	return nil
}
