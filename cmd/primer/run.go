package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/primer/internal/course"
)

var runCmd = &cobra.Command{
	Use:   "run <pattern> [-- args...]",
	Short: "Run matching lessons",
	Long: `Run every lesson whose slug matches the glob pattern, in course order.
Arguments after -- are passed to each lesson; without them lessons use
their built-in defaults.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		reg, err := course.Build()
		if err != nil {
			fatal("Error building course", err)
		}

		lessons, err := reg.Match(args[0])
		if err != nil {
			fatal("Error matching lessons", err)
		}
		if len(lessons) == 0 {
			fmt.Fprintf(os.Stderr, "no lesson matches %q\n", args[0])
			os.Exit(1)
		}

		ctx := context.Background()
		for _, l := range lessons {
			fmt.Printf("== %s: %s\n", l.Slug, l.Title)
			if err := l.Run(ctx, os.Stdout, args[1:]); err != nil {
				fatal("Error running "+l.Slug, err)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
