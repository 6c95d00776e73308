package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// newRootCmd builds the full command tree. Flag state lives in the tree, so
// every call starts clean.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "shelter",
		Short: "shelter: clean beneficiary rosters and print the daily report",
		Long: `shelter reads a raw beneficiary roster (csv, jsonl, xlsx or parquet),
normalizes names, ages, statuses and entry dates, keeps the records whose
status is allowed for the daily report and renders the report as PDF or text.

Usage:
  shelter report [flags]
  shelter sample [flags]`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// A missing .env is normal; a broken one is not.
			if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("load .env: %w", err)
			}
			return nil
		},
	}
	root.AddCommand(newReportCmd(), newSampleCmd(), newVersionCmd())
	return root
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the shelter version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "shelter %s\n", version)
		},
	}
}
