package normalize

import (
	"strconv"
	"strings"
	"time"

	"github.com/wdm0006/shelter/pkg/roster"
)

// Repair reasons.
const (
	ReasonMissingAge        = "missing_age"
	ReasonUnparseableAge    = "unparseable_age"
	ReasonMissingEntryDate  = "missing_entry_date"
	ReasonUnresolvedEntryDt = "unresolved_entry_date"
)

// Record applies every field normalizer to raw and returns the repairs made
// along the way. The ID is passed through unchanged.
func Record(raw roster.RawRecord, now time.Time) (roster.CanonicalRecord, []roster.Repair) {
	var repairs []roster.Repair
	age, ok := Age(raw.Age)
	if !ok {
		reason := ReasonUnparseableAge
		if strings.TrimSpace(raw.Age) == "" {
			reason = ReasonMissingAge
		}
		repairs = append(repairs, roster.Repair{RowID: raw.ID, Column: roster.ColAge, Original: raw.Age, Value: strconv.Itoa(age), Reason: reason})
	}
	date := EntryDate(raw.EntryDate, now)
	if !date.Resolved {
		reason := ReasonUnresolvedEntryDt
		if strings.TrimSpace(raw.EntryDate) == "" {
			reason = ReasonMissingEntryDate
		}
		repairs = append(repairs, roster.Repair{RowID: raw.ID, Column: roster.ColEntryDate, Original: raw.EntryDate, Reason: reason})
	}
	return roster.CanonicalRecord{
		ID:        raw.ID,
		Name:      Name(raw.Name),
		Age:       age,
		Status:    Status(raw.Status),
		EntryDate: date,
	}, repairs
}
