package report

import (
	"time"

	"github.com/wdm0006/shelter/pkg/roster"
)

// DefaultTitle heads every page of the daily report.
const DefaultTitle = "UNHCR Simulation - Daily Shelter Report"

// Report is the plain data contract handed to renderers.
type Report struct {
	Title   string
	Date    time.Time
	Rows    []roster.CanonicalRecord
	Summary Summary
}

// Build summarizes records and keeps them, in order, as the report rows.
func Build(title string, date time.Time, records []roster.CanonicalRecord) Report {
	if title == "" {
		title = DefaultTitle
	}
	rows := make([]roster.CanonicalRecord, len(records))
	copy(rows, records)
	return Report{Title: title, Date: date, Rows: rows, Summary: Summarize(rows)}
}
