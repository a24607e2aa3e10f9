package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/aretw0/primer/internal/course"
	"github.com/aretw0/primer/pkg/lesson"
	"github.com/aretw0/primer/pkg/workbook"
)

var checkCmd = &cobra.Command{
	Use:   "check <workbook.yaml>",
	Short: "Check an exercise workbook against the course",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		reg, err := course.Build()
		if err != nil {
			fatal("Error building course", err)
		}

		wb, err := workbook.Load(args[0])
		if err != nil {
			fatal("Error loading workbook", err)
		}

		results := wb.Check(context.Background(), reg)
		renderResults(wb, results)

		if !workbook.Passed(results) {
			os.Exit(1)
		}
	},
}

func renderResults(wb *workbook.Workbook, results []workbook.Result) {
	if wb.Title != "" {
		fmt.Println(wb.Title)
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Lesson", "Status", "Detail"})

	passed := 0
	for _, r := range results {
		status := "PASS"
		detail := ""
		switch {
		case r.Err != nil:
			status = "ERROR"
			detail = r.Err.Error()
		case !r.Passed:
			status = "FAIL"
			detail = fmt.Sprintf("got %q, want %q",
				strings.Join(r.Got, " / "), strings.Join(r.Exercise.Want, " / "))
		default:
			passed++
		}
		t.AppendRow(table.Row{r.Exercise.Lesson, status, detail})
	}
	t.Render()
	fmt.Printf("%d/%d exercise(s) passed\n", passed, len(results))
}

// checkOnce re-reads the workbook and checks it against reg; shared with watch.
func checkOnce(ctx context.Context, reg *lesson.Registry, path string) (bool, error) {
	wb, err := workbook.Load(path)
	if err != nil {
		return false, err
	}
	results := wb.Check(ctx, reg)
	renderResults(wb, results)
	return workbook.Passed(results), nil
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
