package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	rootCmd := &cobra.Command{ //nolint:exhaustruct // this is better for readability
		Use:   "lightfingers",
		Short: "Plan and validate theft mystery campaigns",
	}

	rootCmd.AddCommand(newPlanCommand(logger))
	rootCmd.AddCommand(newValidateCommand(logger))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
