package csvio

import (
	"encoding/csv"
	"io"

	iox "github.com/wdm0006/shelter/pkg/io/ioutils"
	"github.com/wdm0006/shelter/pkg/roster"
)

type WriterOptions struct {
	Delimiter rune // default ','
}

// WriteAll writes canonical records to a CSV file (gzip for .gz) with a
// header row.
func WriteAll(path string, records []roster.CanonicalRecord, opt WriterOptions) error {
	out, err := iox.CreateMaybeCompressed(path)
	if err != nil {
		return err
	}
	if err := Write(out, records, opt); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// Write encodes canonical records as CSV onto w.
func Write(w io.Writer, records []roster.CanonicalRecord, opt WriterOptions) error {
	cw := csv.NewWriter(w)
	if opt.Delimiter != 0 {
		cw.Comma = opt.Delimiter
	}
	if err := cw.Write(roster.Columns); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write(r.Cells()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteRaw writes raw records with the roster header, as a source file would
// carry them.
func WriteRaw(w io.Writer, records []roster.RawRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(roster.Columns); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write([]string{r.ID, r.Name, r.Age, r.Status, r.EntryDate}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
