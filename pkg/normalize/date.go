package normalize

import (
	"strings"
	"time"

	"github.com/wdm0006/shelter/pkg/roster"
)

// TodayKeyword resolves to the processing day.
const TodayKeyword = "today"

// dateLayouts are tried in order. Slash dates with the year last are read
// day-first.
var dateLayouts = []string{
	"2006-1-2",
	"2006/1/2",
	"2/1/2006",
	"2-1-2006",
}

// EntryDate parses raw into a calendar day in now's location. Unrecognized
// text yields an unresolved date carrying the raw value.
func EntryDate(raw string, now time.Time) roster.EntryDate {
	s := strings.TrimSpace(raw)
	if strings.EqualFold(s, TodayKeyword) {
		y, m, d := now.Date()
		return roster.EntryDate{Time: time.Date(y, m, d, 0, 0, 0, 0, now.Location()), Resolved: true, Raw: raw}
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, now.Location()); err == nil {
			return roster.EntryDate{Time: t, Resolved: true, Raw: raw}
		}
	}
	return roster.EntryDate{Raw: raw}
}
