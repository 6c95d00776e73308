package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wdm0006/shelter/pkg/io/csvio"
	iox "github.com/wdm0006/shelter/pkg/io/ioutils"
	"github.com/wdm0006/shelter/pkg/sample"
)

func newSampleCmd() *cobra.Command {
	var (
		rows   int
		output string
	)
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Write a messy sample roster as csv",
		Long: `Sample writes a deterministic roster with the inconsistencies seen in field
exports: padded and mixed-case names, ages such as "34 years" or "unknown",
mixed-case statuses and several date formats.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSample(cmd, rows, output)
		},
	}
	cmd.Flags().IntVarP(&rows, "rows", "n", sample.DefaultRows, "Number of rows")
	cmd.Flags().StringVarP(&output, "output", "o", "raw_shelter_data.csv", "Output path ('-' for stdout, .gz compresses)")
	return cmd
}

func runSample(cmd *cobra.Command, rows int, output string) error {
	if rows < 0 {
		return fmt.Errorf("sample: --rows must be >= 0, got %d", rows)
	}
	w, err := iox.CreateMaybeCompressed(output)
	if err != nil {
		return fmt.Errorf("sample: %w", err)
	}
	if err := csvio.WriteRaw(w, sample.Generate(rows)); err != nil {
		_ = w.Close()
		return fmt.Errorf("sample: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("sample: %w", err)
	}
	if output != iox.Stdio {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d rows to %s\n", rows, output)
	}
	return nil
}
