// Package course is the composition root: it assembles the full lesson
// catalog from the topic packages and resolves runtime options.
package course

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/aretw0/primer/pkg/funcs"
	"github.com/aretw0/primer/pkg/greet"
	"github.com/aretw0/primer/pkg/lesson"
	"github.com/aretw0/primer/pkg/primes"
	"github.com/aretw0/primer/pkg/text"
	"github.com/aretw0/primer/pkg/vector"
)

// topicOrder fixes the curriculum sequence.
var topicOrder = []string{"funcs", "greet", "vector", "primes", "text"}

type options struct {
	logger *slog.Logger
	topics []string
}

// Option defines a functional option for building the course.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		logger: slog.Default(),
		topics: topicOrder,
	}
}

// WithLogger sets the logger used while assembling the catalog.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithTopics restricts the catalog to the named topics, keeping the
// curriculum order.
func WithTopics(topics ...string) Option {
	return func(o *options) {
		o.topics = topics
	}
}

// Build registers every selected topic's lessons into a fresh registry.
func Build(opts ...Option) (*lesson.Registry, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	sources := map[string]func() []lesson.Lesson{
		"funcs":  funcs.Lessons,
		"greet":  greet.Lessons,
		"vector": vector.Lessons,
		"primes": primes.Lessons,
		"text":   text.Lessons,
	}

	for _, topic := range o.topics {
		if _, ok := sources[topic]; !ok {
			return nil, fmt.Errorf("unknown topic %q", topic)
		}
	}

	reg := lesson.NewRegistry()
	for _, topic := range topicOrder {
		if !slices.Contains(o.topics, topic) {
			continue
		}
		for _, l := range sources[topic]() {
			if err := reg.Register(l); err != nil {
				return nil, fmt.Errorf("topic %s: %w", topic, err)
			}
		}
		o.logger.Debug("topic registered", "topic", topic)
	}

	return reg, nil
}
