package primer

import (
	"context"
	"io"
	"log/slog"

	"github.com/aretw0/primer/internal/course"
	"github.com/aretw0/primer/pkg/lesson"
	"github.com/aretw0/primer/pkg/workbook"
)

// Version exposes the version of the library.
const Version = "0.1.0"

// --- Types ---

// Lesson is a public alias for the catalog's lesson type.
type Lesson = lesson.Lesson

// Registry is a public alias for the lesson catalog.
type Registry = lesson.Registry

// Workbook is a public alias for a parsed exercise file.
type Workbook = workbook.Workbook

// Result is a public alias for a checked exercise outcome.
type Result = workbook.Result

// --- Configuration ---

// Option defines a functional option for building the course.
type Option = course.Option

// WithLogger sets the logger used while assembling the catalog.
func WithLogger(logger *slog.Logger) Option {
	return course.WithLogger(logger)
}

// WithTopics restricts the catalog to the named topics.
func WithTopics(topics ...string) Option {
	return course.WithTopics(topics...)
}

// --- Factory ---

// New builds the full course catalog.
func New(opts ...Option) (*Registry, error) {
	return course.Build(opts...)
}

// --- Operations ---

// Run executes one lesson from the full course against w.
func Run(ctx context.Context, slug string, w io.Writer, args ...string) error {
	reg, err := course.Build()
	if err != nil {
		return err
	}
	return reg.Run(ctx, slug, w, args)
}

// CheckWorkbook loads the workbook at path and checks it against the
// full course.
func CheckWorkbook(ctx context.Context, path string) ([]Result, error) {
	reg, err := course.Build()
	if err != nil {
		return nil, err
	}
	wb, err := workbook.Load(path)
	if err != nil {
		return nil, err
	}
	return wb.Check(ctx, reg), nil
}
