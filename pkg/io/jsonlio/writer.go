package jsonlio

import (
	"encoding/json"
	"io"

	iox "github.com/wdm0006/shelter/pkg/io/ioutils"
	"github.com/wdm0006/shelter/pkg/roster"
)

type row struct {
	ID            string `json:"Refugee_ID"`
	Name          string `json:"Full_Name"`
	Age           int    `json:"Age"`
	Status        string `json:"Status"`
	EntryDate     string `json:"Entry_Date"`
	EntryResolved bool   `json:"entry_date_resolved"`
}

// WriteAll writes canonical records to a JSONL file (gzip for .gz).
func WriteAll(path string, records []roster.CanonicalRecord) error {
	out, err := iox.CreateMaybeCompressed(path)
	if err != nil {
		return err
	}
	if err := Write(out, records); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// Write encodes one JSON object per canonical record onto w.
func Write(w io.Writer, records []roster.CanonicalRecord) error {
	enc := json.NewEncoder(w)
	for _, r := range records {
		if err := enc.Encode(row{
			ID:            r.ID,
			Name:          r.Name,
			Age:           r.Age,
			Status:        string(r.Status),
			EntryDate:     r.EntryDate.String(),
			EntryResolved: r.EntryDate.Resolved,
		}); err != nil {
			return err
		}
	}
	return nil
}
