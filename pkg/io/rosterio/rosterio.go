// Package rosterio selects a reader or writer by file format.
package rosterio

import (
	"fmt"
	"strings"

	csvio "github.com/wdm0006/shelter/pkg/io/csvio"
	iox "github.com/wdm0006/shelter/pkg/io/ioutils"
	jsonlio "github.com/wdm0006/shelter/pkg/io/jsonlio"
	parquetio "github.com/wdm0006/shelter/pkg/io/parquetio"
	xlsxio "github.com/wdm0006/shelter/pkg/io/xlsxio"
	"github.com/wdm0006/shelter/pkg/roster"
)

// Supported formats.
const (
	FormatCSV     = "csv"
	FormatJSONL   = "jsonl"
	FormatXLSX    = "xlsx"
	FormatParquet = "parquet"
)

// Source describes where raw roster rows come from.
type Source struct {
	Path      string
	Format    string // empty = from extension, default csv
	Delimiter string // csv only; empty = sniff
	Sheet     string // xlsx only
	Strict    bool   // csv only
}

// DetectFormat maps a path's extension to a format, defaulting to csv.
func DetectFormat(path string) string {
	switch iox.BaseExt(path) {
	case ".jsonl", ".ndjson", ".json":
		return FormatJSONL
	case ".xlsx", ".xlsm":
		return FormatXLSX
	case ".parquet":
		return FormatParquet
	default:
		return FormatCSV
	}
}

func resolveFormat(format, path string) string {
	if format == "" {
		return DetectFormat(path)
	}
	return strings.ToLower(format)
}

// Read loads every raw record of src. The warnings string is non-empty when
// the reader padded or truncated malformed rows.
func Read(src Source) ([]roster.RawRecord, string, error) {
	switch resolveFormat(src.Format, src.Path) {
	case FormatCSV:
		var delim rune
		if src.Delimiter != "" {
			delim = []rune(src.Delimiter)[0]
		}
		return csvio.ReadFile(src.Path, csvio.ReaderOptions{Delimiter: delim, Strict: src.Strict})
	case FormatJSONL:
		recs, err := jsonlio.ReadFile(src.Path)
		return recs, "", err
	case FormatXLSX:
		recs, err := xlsxio.ReadFile(src.Path, xlsxio.ReaderOptions{Sheet: src.Sheet})
		return recs, "", err
	case FormatParquet:
		recs, err := parquetio.ReadFile(src.Path)
		return recs, "", err
	default:
		return nil, "", &roster.SchemaError{Path: src.Path, Err: fmt.Errorf("unsupported input format %q", src.Format)}
	}
}

// Export writes the canonical table to path in the given format.
func Export(path, format string, records []roster.CanonicalRecord) error {
	switch f := resolveFormat(format, path); f {
	case FormatCSV:
		return csvio.WriteAll(path, records, csvio.WriterOptions{})
	case FormatJSONL:
		return jsonlio.WriteAll(path, records)
	case FormatParquet:
		return parquetio.WriteAll(path, records)
	default:
		return fmt.Errorf("unsupported export format %q", f)
	}
}
