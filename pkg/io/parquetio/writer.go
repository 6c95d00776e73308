package parquetio

import (
	"encoding/json"
	"fmt"
	"os"

	local "github.com/xitongsys/parquet-go-source/local"
	pw "github.com/xitongsys/parquet-go/writer"

	"github.com/wdm0006/shelter/pkg/roster"
)

type field struct {
	Tag string `json:"Tag"`
}

type schema struct {
	Tag    string  `json:"Tag"`
	Fields []field `json:"Fields"`
}

// schemaJSON describes the canonical table for the parquet-go JSONWriter.
func schemaJSON() string {
	sc := schema{Tag: "name=roster, repetitiontype=REQUIRED"}
	for _, name := range roster.Columns {
		tag := "name=" + name + ", repetitiontype=REQUIRED, type="
		switch name {
		case roster.ColAge:
			tag += "INT64"
		default:
			tag += "UTF8"
		}
		sc.Fields = append(sc.Fields, field{Tag: tag})
	}
	sc.Fields = append(sc.Fields, field{Tag: "name=Entry_Date_Resolved, repetitiontype=REQUIRED, type=BOOLEAN"})
	b, _ := json.Marshal(sc)
	return string(b)
}

func rowJSON(r roster.CanonicalRecord) (string, error) {
	b, err := json.Marshal(map[string]any{
		roster.ColID:          r.ID,
		roster.ColName:        r.Name,
		roster.ColAge:         r.Age,
		roster.ColStatus:      string(r.Status),
		roster.ColEntryDate:   r.EntryDate.String(),
		"Entry_Date_Resolved": r.EntryDate.Resolved,
	})
	return string(b), err
}

// WriteAll writes canonical records to a Parquet file.
func WriteAll(path string, records []roster.CanonicalRecord) error {
	return writeAll(path, schemaJSON(), records)
}

// writeAll leaves no file behind when the schema is rejected.
func writeAll(path, sc string, records []roster.CanonicalRecord) (err error) {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return err
	}
	writer, err := pw.NewJSONWriter(sc, fw, 4)
	if err != nil {
		_ = fw.Close()
		_ = os.Remove(path)
		return fmt.Errorf("parquet writer init: %w", err)
	}
	defer func() {
		if serr := writer.WriteStop(); serr != nil && err == nil {
			err = fmt.Errorf("parquet write stop: %w", serr)
		}
		if cerr := fw.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	for _, r := range records {
		rec, err := rowJSON(r)
		if err != nil {
			return err
		}
		if err := writer.Write(rec); err != nil {
			return fmt.Errorf("parquet write row %s: %w", r.ID, err)
		}
	}
	return nil
}
