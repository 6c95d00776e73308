// Package sample builds deliberately messy rosters for demos and tests.
package sample

import (
	"fmt"

	"github.com/wdm0006/shelter/pkg/roster"
)

var (
	names    = []string{"  juan perez ", "MARIA gomez", "Carlos   SILVA", "Ana  rodriguez", "LUIS diaz"}
	ages     = []string{"25", "34 years", "19", "unknown", "42"}
	statuses = []string{"Active", "active", "Departed", "Active", "Arrived"}
	dates    = []string{"2025-01-10", "12/01/2025", "2025-01-11", "2025/01/09", "today"}
)

// DefaultRows matches the size of a typical field export.
const DefaultRows = 20

// Generate returns n raw records cycling through the known messy patterns.
// The output is deterministic.
func Generate(n int) []roster.RawRecord {
	out := make([]roster.RawRecord, n)
	for i := range out {
		k := i % len(names)
		out[i] = roster.RawRecord{
			ID:        fmt.Sprintf("REF-%03d", i+1),
			Name:      names[k],
			Age:       ages[k],
			Status:    statuses[k],
			EntryDate: dates[k],
		}
	}
	return out
}
