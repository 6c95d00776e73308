package roster

import (
	"fmt"
	"strings"
)

// Column names of the roster contract.
const (
	ColID        = "Refugee_ID"
	ColName      = "Full_Name"
	ColAge       = "Age"
	ColStatus    = "Status"
	ColEntryDate = "Entry_Date"
)

// Columns lists the required columns in contract order.
var Columns = []string{ColID, ColName, ColAge, ColStatus, ColEntryDate}

// SchemaError reports an input that cannot be read as a roster table.
type SchemaError struct {
	Path    string
	Missing []string
	Err     error
}

func (e *SchemaError) Error() string {
	switch {
	case len(e.Missing) > 0:
		return fmt.Sprintf("schema: %s: missing required column(s) %s", e.Path, strings.Join(e.Missing, ", "))
	case e.Err != nil:
		return fmt.Sprintf("schema: %s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("schema: %s: unreadable input", e.Path)
	}
}

func (e *SchemaError) Unwrap() error { return e.Err }

// Header maps required column names to their position in a source header.
type Header map[string]int

// ResolveHeader locates every required column in names. Leading BOMs and
// surrounding whitespace are ignored; extra columns are allowed.
func ResolveHeader(path string, names []string) (Header, error) {
	h := make(Header, len(Columns))
	for i, n := range names {
		n = strings.TrimSpace(strings.TrimPrefix(n, "\ufeff"))
		if _, seen := h[n]; !seen {
			h[n] = i
		}
	}
	var missing []string
	for _, c := range Columns {
		if _, ok := h[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Path: path, Missing: missing}
	}
	return h, nil
}

// Record builds a RawRecord from one source row. Cells past the end of a
// short row read as empty.
func (h Header) Record(row []string) RawRecord {
	cell := func(name string) string {
		i := h[name]
		if i >= len(row) {
			return ""
		}
		return row[i]
	}
	return RawRecord{
		ID:        cell(ColID),
		Name:      cell(ColName),
		Age:       cell(ColAge),
		Status:    cell(ColStatus),
		EntryDate: cell(ColEntryDate),
	}
}
