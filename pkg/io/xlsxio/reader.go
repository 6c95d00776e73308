// Package xlsxio reads roster rows from Excel workbooks, the format field
// teams usually hand over.
package xlsxio

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/wdm0006/shelter/pkg/roster"
)

type ReaderOptions struct {
	// Sheet selects a worksheet by name. Empty means the first sheet.
	Sheet string
}

// ReadFile reads the roster from one worksheet. The first non-empty row is
// the header; fully empty rows are skipped.
func ReadFile(path string, opt ReaderOptions) ([]roster.RawRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &roster.SchemaError{Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	sheet := opt.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, &roster.SchemaError{Path: path, Err: errors.New("workbook has no sheets")}
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, &roster.SchemaError{Path: path, Err: fmt.Errorf("sheet %q: %w", sheet, err)}
	}
	return recordsFromRows(path, rows)
}

func recordsFromRows(path string, rows [][]string) ([]roster.RawRecord, error) {
	start := -1
	for i, row := range rows {
		if !isBlank(row) {
			start = i
			break
		}
	}
	if start < 0 {
		return nil, &roster.SchemaError{Path: path, Err: errors.New("empty sheet, no header row")}
	}
	h, err := roster.ResolveHeader(path, rows[start])
	if err != nil {
		return nil, err
	}
	var out []roster.RawRecord
	for _, row := range rows[start+1:] {
		if isBlank(row) {
			continue
		}
		out = append(out, h.Record(row))
	}
	return out, nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if c != "" {
			return false
		}
	}
	return true
}
