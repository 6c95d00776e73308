package normalize

import (
	"regexp"
	"strconv"

	"github.com/wdm0006/shelter/pkg/roster"
)

var digitRun = regexp.MustCompile(`[0-9]+`)

// Age extracts the first run of decimal digits in raw. The second result is
// false when no usable run exists, in which case the age is roster.UnknownAge.
func Age(raw string) (int, bool) {
	m := digitRun.FindString(raw)
	if m == "" {
		return roster.UnknownAge, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return roster.UnknownAge, false
	}
	return n, true
}
