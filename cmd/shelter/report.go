package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wdm0006/shelter/internal/app"
	"github.com/wdm0006/shelter/internal/config"
	"github.com/wdm0006/shelter/internal/logger"
)

// reportOptions holds the report command's flag values.
type reportOptions struct {
	config       string
	input        string
	inputFormat  string
	sheet        string
	strict       bool
	output       string
	format       string
	status       []string
	title        string
	export       string
	exportFormat string
	logLevel     string
}

func newReportCmd() *cobra.Command {
	opts := &reportOptions{}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Clean a roster and render the daily shelter report",
		Long: `Report loads the roster, normalizes every record, filters by status and
writes the report with the total count and average age of the kept records.

Settings come from defaults, then the --config file, then SHELTER_* environment
variables (a .env file in the working directory is honoured), then flags.

Examples:
  shelter report --input raw_shelter_data.csv
  shelter report --config shelter.yaml --format text --output -
  shelter report --status active --status arrived --status departed
  shelter report --export clean.parquet`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.config, "config", "c", "", "Config file (.json, .yaml, .yml, .toml)")

	// Input.
	f.StringVarP(&opts.input, "input", "i", "", "Raw roster path ('-' for stdin)")
	f.StringVar(&opts.inputFormat, "input-format", "", "Input format: csv, jsonl, xlsx, parquet (default: from extension)")
	f.StringVar(&opts.sheet, "sheet", "", "Worksheet to read from xlsx input (default: first)")
	f.BoolVar(&opts.strict, "strict", false, "Fail on csv rows with the wrong number of fields")

	// Report.
	f.StringVarP(&opts.output, "output", "o", "", "Report path ('-' for stdout)")
	f.StringVarP(&opts.format, "format", "f", "", "Report format: pdf or text")
	f.StringSliceVarP(&opts.status, "status", "s", nil, "Statuses kept in the report (repeatable)")
	f.StringVar(&opts.title, "title", "", "Report title")

	// Export.
	f.StringVar(&opts.export, "export", "", "Also write the full cleaned table here")
	f.StringVar(&opts.exportFormat, "export-format", "", "Export format: csv, jsonl, parquet (default: from extension)")

	f.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	return cmd
}

func runReport(cmd *cobra.Command, opts *reportOptions) error {
	cfg, err := config.Load(opts.config)
	if err != nil {
		return err
	}
	opts.apply(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.NewWithWriter(cmd.ErrOrStderr(), cfg.Logging.Level)
	res, err := app.Run(cmd.Context(), cfg, log, time.Now())
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	if cfg.Output.Path != "-" {
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s (%s)\n", cfg.Output.Path, res.Report.Summary)
	}
	return nil
}

// apply overlays explicitly set flags, the last layer of precedence.
func (o *reportOptions) apply(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("input") {
		cfg.Input.Path = o.input
	}
	if f.Changed("input-format") {
		cfg.Input.Format = o.inputFormat
	}
	if f.Changed("sheet") {
		cfg.Input.Sheet = o.sheet
	}
	if f.Changed("strict") {
		cfg.Input.Strict = o.strict
	}
	if f.Changed("output") {
		cfg.Output.Path = o.output
	}
	if f.Changed("format") {
		cfg.Output.Format = o.format
	}
	if f.Changed("status") {
		cfg.Report.AllowedStatuses = o.status
	}
	if f.Changed("title") {
		cfg.Report.Title = o.title
	}
	if f.Changed("export") {
		cfg.Export.Path = o.export
	}
	if f.Changed("export-format") {
		cfg.Export.Format = o.exportFormat
	}
	if f.Changed("log-level") {
		cfg.Logging.Level = o.logLevel
	}
}
