package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/primer/internal/course"
	"github.com/aretw0/primer/pkg/workbook"
)

var watchCmd = &cobra.Command{
	Use:   "watch <workbook.yaml>",
	Short: "Re-check a workbook every time it is saved",
	Long: `Watch a workbook file and re-run the check whenever it changes.
Stops on Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		reg, err := course.Build()
		if err != nil {
			fatal("Error building course", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		path := args[0]
		events, err := workbook.Watch(ctx, path, slog.Default())
		if err != nil {
			fatal("Error watching workbook", err)
		}

		// Initial check, then one per save.
		if _, err := checkOnce(ctx, reg, path); err != nil {
			fmt.Fprintf(os.Stderr, "check failed: %v\n", err)
		}
		for range events {
			fmt.Println()
			if _, err := checkOnce(ctx, reg, path); err != nil {
				fmt.Fprintf(os.Stderr, "check failed: %v\n", err)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
