// Package workbook loads exercise files and checks them against the
// lesson catalog. A workbook is a small YAML document pairing lesson
// slugs with arguments and expected output, so learners can verify their
// understanding of each worked example.
package workbook

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/primer/pkg/lesson"
)

// CurrentVersion is the only workbook format this build understands.
const CurrentVersion = 1

// ErrUnknownVersion is returned when a workbook declares a format
// version this build does not support.
var ErrUnknownVersion = errors.New("unsupported workbook version")

// Exercise is one checkable entry: run a lesson with args, expect want.
type Exercise struct {
	Lesson string   `yaml:"lesson"`
	Args   []string `yaml:"args,omitempty"`
	// Want holds the expected output lines, compared after trimming
	// trailing whitespace on each side.
	Want []string `yaml:"want"`
}

// Workbook is a parsed exercise file.
type Workbook struct {
	Version   int        `yaml:"version"`
	Title     string     `yaml:"title"`
	Exercises []Exercise `yaml:"exercises"`
}

// Result is the outcome of checking one exercise.
type Result struct {
	Exercise Exercise
	Got      []string
	Passed   bool
	// Err is set when the lesson could not run at all (unknown slug,
	// bad arguments). A plain output mismatch leaves Err nil.
	Err error
}

// Load reads and parses a workbook file.
func Load(path string) (*Workbook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read workbook: %w", err)
	}
	return Parse(data)
}

// Parse decodes workbook YAML.
func Parse(data []byte) (*Workbook, error) {
	var wb Workbook
	if err := yaml.Unmarshal(data, &wb); err != nil {
		return nil, fmt.Errorf("parse workbook: %w", err)
	}
	if wb.Version != CurrentVersion {
		return nil, fmt.Errorf("version %d: %w", wb.Version, ErrUnknownVersion)
	}
	return &wb, nil
}

// Check runs every exercise against the catalog and reports per-exercise
// results. A failing or unrunnable exercise does not stop the rest.
func (wb *Workbook) Check(ctx context.Context, reg *lesson.Registry) []Result {
	results := make([]Result, 0, len(wb.Exercises))
	for _, ex := range wb.Exercises {
		results = append(results, check(ctx, reg, ex))
	}
	return results
}

// Passed reports whether every result passed.
func Passed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return false
		}
	}
	return true
}

func check(ctx context.Context, reg *lesson.Registry, ex Exercise) Result {
	var buf bytes.Buffer
	if err := reg.Run(ctx, ex.Lesson, &buf, ex.Args); err != nil {
		return Result{Exercise: ex, Err: err}
	}
	got := splitLines(buf.String())
	return Result{
		Exercise: ex,
		Got:      got,
		Passed:   equalLines(got, ex.Want),
	}
}

func splitLines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return lines
}

func equalLines(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != strings.TrimSpace(want[i]) {
			return false
		}
	}
	return true
}
