package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/aretw0/primer/internal/course"
)

var (
	listJSON bool
)

var listCmd = &cobra.Command{
	Use:   "list [pattern]",
	Short: "List the lessons of the course",
	Long:  `List lessons, optionally filtered by a glob over slugs (e.g. "vector/*").`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		reg, err := course.Build()
		if err != nil {
			fatal("Error building course", err)
		}

		pattern := "**"
		if len(args) == 1 {
			pattern = args[0]
		}
		lessons, err := reg.Match(pattern)
		if err != nil {
			fatal("Error matching lessons", err)
		}

		if listJSON {
			type entry struct {
				Slug    string `json:"slug"`
				Topic   string `json:"topic"`
				Title   string `json:"title"`
				Summary string `json:"summary,omitempty"`
			}
			entries := make([]entry, 0, len(lessons))
			for _, l := range lessons {
				entries = append(entries, entry{Slug: l.Slug, Topic: l.Topic, Title: l.Title, Summary: l.Summary})
			}
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(entries); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Slug", "Topic", "Title"})
		for _, l := range lessons {
			t.AppendRow(table.Row{l.Slug, l.Topic, l.Title})
		}
		t.Render()
		fmt.Printf("%d lesson(s)\n", len(lessons))
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
}
