// Package pipeline turns raw roster rows into the canonical table and selects
// the subset a report covers.
package pipeline

import (
	"context"
	"time"

	"github.com/wdm0006/shelter/pkg/normalize"
	"github.com/wdm0006/shelter/pkg/roster"
)

// NormalizeAll maps every raw record to exactly one canonical record, in
// input order. now resolves relative entry dates.
func NormalizeAll(ctx context.Context, raws []roster.RawRecord, now time.Time) ([]roster.CanonicalRecord, []roster.Repair, error) {
	out := make([]roster.CanonicalRecord, len(raws))
	var repairs []roster.Repair
	for i, raw := range raws {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, nil, err
			}
		}
		rec, rs := normalize.Record(raw, now)
		out[i] = rec
		repairs = append(repairs, rs...)
	}
	return out, repairs, nil
}
