// Package app runs one end-to-end clean and report pass.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wdm0006/shelter/internal/config"
	"github.com/wdm0006/shelter/internal/logger"
	iox "github.com/wdm0006/shelter/pkg/io/ioutils"
	"github.com/wdm0006/shelter/pkg/io/rosterio"
	"github.com/wdm0006/shelter/pkg/pipeline"
	"github.com/wdm0006/shelter/pkg/render"
	"github.com/wdm0006/shelter/pkg/report"
	"github.com/wdm0006/shelter/pkg/roster"
)

// Result describes a finished run.
type Result struct {
	RunID    string
	RawCount int
	Repairs  []roster.Repair
	Report   report.Report
}

// Run reads the configured roster, cleans it, filters it for the report and
// renders the report to the configured output. now stamps the report and
// resolves relative entry dates.
func Run(ctx context.Context, cfg *config.Config, log *logger.Logger, now time.Time) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	res := &Result{RunID: uuid.NewString()}
	log = log.With("run_id", res.RunID)

	raws, warn, err := rosterio.Read(rosterio.Source{
		Path:      cfg.Input.Path,
		Format:    cfg.Input.Format,
		Delimiter: cfg.Input.Delimiter,
		Sheet:     cfg.Input.Sheet,
		Strict:    cfg.Input.Strict,
	})
	if err != nil {
		return nil, err
	}
	res.RawCount = len(raws)
	if warn != "" {
		log.Warn("malformed rows repaired on read", "path", cfg.Input.Path, "warnings", warn)
	}
	log.Info("roster loaded", "path", cfg.Input.Path, "rows", len(raws))

	recs, repairs, err := pipeline.NormalizeAll(ctx, raws, now)
	if err != nil {
		return nil, err
	}
	res.Repairs = repairs
	for _, r := range repairs {
		log.Debug("field repaired", "row", r.RowID, "column", r.Column, "original", r.Original, "reason", r.Reason)
	}
	log.Info("roster normalized", "records", len(recs), "repairs", len(repairs))

	if cfg.Export.Path != "" {
		if err := rosterio.Export(cfg.Export.Path, cfg.Export.Format, recs); err != nil {
			return nil, fmt.Errorf("export %s: %w", cfg.Export.Path, err)
		}
		log.Info("cleaned table exported", "path", cfg.Export.Path, "records", len(recs))
	}

	allowed := pipeline.ParseStatusSet(cfg.Report.AllowedStatuses)
	p := pipeline.NewPipeline().Add(pipeline.NewStatusFilter(allowed))
	filtered, err := p.Run(ctx, recs)
	if err != nil {
		return nil, err
	}
	res.Report = report.Build(cfg.Report.Title, now, filtered)
	log.Info("report prepared", "allowed", allowed.Sorted(), "summary", res.Report.Summary.String())

	if err := writeReport(cfg.Output, res.Report); err != nil {
		return nil, err
	}
	log.Info("report written", "path", cfg.Output.Path, "format", cfg.Output.Format)
	return res, nil
}

func writeReport(out config.OutputConfig, rep report.Report) error {
	r, err := render.ForFormat(out.Format)
	if err != nil {
		return err
	}
	w, err := iox.CreateMaybeCompressed(out.Path)
	if err != nil {
		return fmt.Errorf("write report %s: %w", out.Path, err)
	}
	if err := r.Render(w, rep); err != nil {
		_ = w.Close()
		return fmt.Errorf("write report %s: %w", out.Path, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("write report %s: %w", out.Path, err)
	}
	return nil
}
