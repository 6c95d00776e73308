package normalize

import (
	"strings"

	"github.com/wdm0006/shelter/pkg/roster"
)

// Status uppercases raw. Unknown codes pass through.
func Status(raw string) roster.Status {
	return roster.Status(strings.ToUpper(raw))
}
