// Package greet teaches the Go answer to default parameters.
//
// Go functions have no defaults in the signature. The idiom is functional
// options: the zero-argument call uses sensible defaults, and callers
// override only what they care about.
package greet

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/primer/pkg/lesson"
)

type options struct {
	salutation  string
	punctuation string
}

func defaultOptions() *options {
	return &options{
		salutation:  "Hello",
		punctuation: "!",
	}
}

// Option overrides one of Greeting's defaults.
type Option func(*options)

// WithSalutation replaces the default "Hello".
func WithSalutation(s string) Option {
	return func(o *options) { o.salutation = s }
}

// WithPunctuation replaces the default "!".
func WithPunctuation(p string) Option {
	return func(o *options) { o.punctuation = p }
}

// Greeting builds a greeting for name. With no options it behaves like a
// function whose extra parameters all have defaults: Greeting("Ana")
// yields "Hello, Ana!". An empty name falls back to "there".
func Greeting(name string, opts ...Option) string {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if name == "" {
		name = "there"
	}
	return fmt.Sprintf("%s, %s%s", o.salutation, name, o.punctuation)
}

// All greets every name with the same options.
func All(names []string, opts ...Option) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = Greeting(n, opts...)
	}
	return out
}

// Lessons returns the worked examples of this topic.
func Lessons() []lesson.Lesson {
	return []lesson.Lesson{
		{
			Slug:    "greet/hello",
			Topic:   "greet",
			Title:   "Default parameters, Go style",
			Summary: "Functional options stand in for default argument values.",
			Run:     runHello,
		},
	}
}

func runHello(ctx context.Context, w io.Writer, args []string) error {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	fmt.Fprintln(w, Greeting(name))
	fmt.Fprintln(w, Greeting(name, WithSalutation("Good day")))
	fmt.Fprintln(w, Greeting(name, WithSalutation("Hi"), WithPunctuation(".")))
	return nil
}
