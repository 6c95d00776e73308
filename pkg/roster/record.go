package roster

import (
	"strconv"
	"time"
)

// RawRecord is one roster row exactly as read from the source.
type RawRecord struct {
	ID        string
	Name      string
	Age       string
	Status    string
	EntryDate string
}

// Status is an uppercase status code. Values outside the known set are kept
// as-is and excluded later by the report filter.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusArrived  Status = "ARRIVED"
	StatusDeparted Status = "DEPARTED"
)

// EntryDate is either a resolved calendar day or the unresolved raw text.
type EntryDate struct {
	Time     time.Time
	Resolved bool
	Raw      string
}

func (d EntryDate) String() string {
	if !d.Resolved {
		return d.Raw
	}
	return d.Time.Format("2006-01-02")
}

// UnknownAge marks an age that could not be parsed. It is not a real age.
const UnknownAge = 0

// CanonicalRecord is the typed, cleaned projection of a RawRecord.
type CanonicalRecord struct {
	ID        string
	Name      string
	Age       int
	Status    Status
	EntryDate EntryDate
}

// Repair records one field that degraded to a sentinel during cleaning.
type Repair struct {
	RowID    string
	Column   string
	Original string
	Value    string
	Reason   string
}

// Cells returns the record's values in Columns order, formatted for tabular
// output.
func (r CanonicalRecord) Cells() []string {
	return []string{r.ID, r.Name, strconv.Itoa(r.Age), string(r.Status), r.EntryDate.String()}
}
