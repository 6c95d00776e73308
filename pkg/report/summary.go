// Package report aggregates a filtered roster into the data a renderer needs.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/wdm0006/shelter/pkg/roster"
)

// NoData is printed in place of statistics over an empty table.
const NoData = "N/A"

// Summary holds the aggregate figures of one report.
type Summary struct {
	TotalCount int
	// AverageAge is the mean over all rows, sentinel zeros included.
	// It is 0 when TotalCount is 0.
	AverageAge  float64
	UnknownAges int
	ByStatus    map[roster.Status]int
}

// Summarize computes count and mean age over records.
func Summarize(records []roster.CanonicalRecord) Summary {
	s := Summary{TotalCount: len(records), ByStatus: make(map[roster.Status]int)}
	// float64 so that very large ages cannot wrap the sum negative
	var sum float64
	for _, r := range records {
		sum += float64(r.Age)
		if r.Age == roster.UnknownAge {
			s.UnknownAges++
		}
		s.ByStatus[r.Status]++
	}
	if s.TotalCount > 0 {
		s.AverageAge = sum / float64(s.TotalCount)
	}
	return s
}

func (s Summary) HasData() bool { return s.TotalCount > 0 }

// AverageText formats the mean age to one decimal place.
func (s Summary) AverageText() string {
	if !s.HasData() {
		return NoData
	}
	return fmt.Sprintf("%.1f", s.AverageAge)
}

// String renders a one-line summary suitable for logs and consoles.
func (s Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "total=%d average_age=%s unknown_ages=%d", s.TotalCount, s.AverageText(), s.UnknownAges)
	keys := make([]string, 0, len(s.ByStatus))
	for k := range s.ByStatus {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%d", strings.ToLower(k), s.ByStatus[roster.Status(k)])
	}
	return b.String()
}
