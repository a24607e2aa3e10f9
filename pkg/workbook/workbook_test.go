package workbook_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/primer/pkg/lesson"
	"github.com/aretw0/primer/pkg/workbook"
)

func testRegistry(t *testing.T) *lesson.Registry {
	t.Helper()
	r := lesson.NewRegistry()
	r.MustRegister(lesson.Lesson{
		Slug:  "echo/args",
		Topic: "echo",
		Title: "echo",
		Run: func(ctx context.Context, w io.Writer, args []string) error {
			for _, a := range args {
				fmt.Fprintln(w, a)
			}
			return nil
		},
	})
	return r
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		wantLen int
	}{
		{
			name: "Basic Workbook",
			input: `version: 1
title: Functions
exercises:
  - lesson: echo/args
    args: ["hi"]
    want: ["hi"]`,
			wantLen: 1,
		},
		{
			name:    "Missing Version",
			input:   `title: Empty`,
			wantErr: workbook.ErrUnknownVersion,
		},
		{
			name:    "Future Version",
			input:   "version: 99\ntitle: Future",
			wantErr: workbook.ErrUnknownVersion,
		},
		{
			name:    "Invalid YAML",
			input:   "version: : 1",
			wantErr: nil, // any parse error is fine, just not nil
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wb, err := workbook.Parse([]byte(tt.input))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			if tt.name == "Invalid YAML" {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, wb.Exercises, tt.wantLen)
		})
	}
}

func TestCheck_PassAndFail(t *testing.T) {
	reg := testRegistry(t)
	wb := &workbook.Workbook{
		Version: workbook.CurrentVersion,
		Title:   "Echo drills",
		Exercises: []workbook.Exercise{
			{Lesson: "echo/args", Args: []string{"a", "b"}, Want: []string{"a", "b"}},
			{Lesson: "echo/args", Args: []string{"a"}, Want: []string{"wrong"}},
		},
	}

	results := wb.Check(context.Background(), reg)
	require.Len(t, results, 2)

	assert.True(t, results[0].Passed)
	assert.NoError(t, results[0].Err)

	assert.False(t, results[1].Passed)
	assert.NoError(t, results[1].Err, "a mismatch is not a run error")
	assert.Equal(t, []string{"a"}, results[1].Got)

	assert.False(t, workbook.Passed(results))
}

func TestCheck_UnknownLessonIsNotFatal(t *testing.T) {
	reg := testRegistry(t)
	wb := &workbook.Workbook{
		Version: workbook.CurrentVersion,
		Exercises: []workbook.Exercise{
			{Lesson: "no/such", Want: []string{"x"}},
			{Lesson: "echo/args", Args: []string{"ok"}, Want: []string{"ok"}},
		},
	}

	results := wb.Check(context.Background(), reg)
	require.Len(t, results, 2)

	assert.False(t, results[0].Passed)
	assert.True(t, errors.Is(results[0].Err, lesson.ErrNotFound))

	assert.True(t, results[1].Passed, "later exercises still run")
}

func TestCheck_TrimsWhitespace(t *testing.T) {
	reg := testRegistry(t)
	wb := &workbook.Workbook{
		Version: workbook.CurrentVersion,
		Exercises: []workbook.Exercise{
			{Lesson: "echo/args", Args: []string{"hi"}, Want: []string{"  hi  "}},
		},
	}

	results := wb.Check(context.Background(), reg)
	require.Len(t, results, 1)
	assert.True(t, results[0].Passed)
}
