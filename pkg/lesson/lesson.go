// Package lesson defines the domain model of the course: a Lesson is a small,
// self-contained worked example, and a Registry is the ordered catalog that
// topic packages register their lessons into.
//
// The package is kept pure: no I/O beyond the writer a caller hands to Run,
// no knowledge of the CLI or of workbook files.
package lesson

import (
	"context"
	"fmt"
	"io"

	"github.com/bmatcuk/doublestar/v4"
)

// RunFunc executes a lesson, writing its worked output to w.
// args carries optional caller-provided inputs; a lesson must supply
// sensible defaults when args is empty so every lesson runs bare.
type RunFunc func(ctx context.Context, w io.Writer, args []string) error

// Lesson is a single worked example.
type Lesson struct {
	// Slug identifies the lesson, namespaced by topic ("vector/norm").
	Slug string
	// Topic groups related lessons ("vector").
	Topic string
	// Title is a one-line human description.
	Title string
	// Summary explains what the example teaches, a sentence or two.
	Summary string
	// Run produces the worked output.
	Run RunFunc
}

// Registry is an ordered catalog of lessons. Registration order is
// preserved so listings are deterministic.
//
// A Registry is not safe for concurrent registration; build it once at
// startup and treat it as read-only afterwards.
type Registry struct {
	order   []string
	lessons map[string]Lesson
}

// NewRegistry returns an empty catalog.
func NewRegistry() *Registry {
	return &Registry{
		lessons: make(map[string]Lesson),
	}
}

// Register adds a lesson to the catalog.
func (r *Registry) Register(l Lesson) error {
	if l.Slug == "" {
		return fmt.Errorf("register: empty slug")
	}
	if l.Run == nil {
		return fmt.Errorf("register %q: nil run func", l.Slug)
	}
	if _, ok := r.lessons[l.Slug]; ok {
		return fmt.Errorf("register %q: %w", l.Slug, ErrDuplicate)
	}
	r.lessons[l.Slug] = l
	r.order = append(r.order, l.Slug)
	return nil
}

// MustRegister is Register for static catalogs built at startup,
// where a failure is a programming error.
func (r *Registry) MustRegister(lessons ...Lesson) {
	for _, l := range lessons {
		if err := r.Register(l); err != nil {
			panic(err)
		}
	}
}

// Get returns the lesson with the given slug.
func (r *Registry) Get(slug string) (Lesson, error) {
	l, ok := r.lessons[slug]
	if !ok {
		return Lesson{}, fmt.Errorf("%q: %w", slug, ErrNotFound)
	}
	return l, nil
}

// List returns every lesson in registration order.
func (r *Registry) List() []Lesson {
	out := make([]Lesson, 0, len(r.order))
	for _, slug := range r.order {
		out = append(out, r.lessons[slug])
	}
	return out
}

// Len reports the number of registered lessons.
func (r *Registry) Len() int {
	return len(r.order)
}

// Match returns the lessons whose slug matches the glob pattern, in
// registration order. Patterns follow doublestar syntax, so "vector/*"
// selects a topic and "**" selects everything.
func (r *Registry) Match(pattern string) ([]Lesson, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%q: %w", pattern, ErrBadPattern)
	}
	var out []Lesson
	for _, slug := range r.order {
		ok, err := doublestar.Match(pattern, slug)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", pattern, ErrBadPattern)
		}
		if ok {
			out = append(out, r.lessons[slug])
		}
	}
	return out, nil
}

// Run executes the lesson with the given slug against w.
func (r *Registry) Run(ctx context.Context, slug string, w io.Writer, args []string) error {
	l, err := r.Get(slug)
	if err != nil {
		return err
	}
	return l.Run(ctx, w, args)
}
