// Package parquetio reads roster rows from Parquet files and exports cleaned
// tables as Parquet.
package parquetio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	parquet "github.com/segmentio/parquet-go"

	"github.com/wdm0006/shelter/pkg/roster"
)

// ReadFile reads every row of a flat Parquet roster. Column values of any
// primitive type are rendered as text.
func ReadFile(path string) ([]roster.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &roster.SchemaError{Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()
	st, err := f.Stat()
	if err != nil {
		return nil, &roster.SchemaError{Path: path, Err: err}
	}
	pf, err := parquet.OpenFile(f, st.Size())
	if err != nil {
		return nil, &roster.SchemaError{Path: path, Err: err}
	}

	// Value.Column indexes leaf columns; a flat roster has one leaf per field.
	var names []string
	for _, col := range pf.Schema().Columns() {
		names = append(names, col[len(col)-1])
	}
	var rows []map[string]any
	buf := make([]parquet.Row, 256)
	for _, rg := range pf.RowGroups() {
		rr := rg.Rows()
		for {
			n, err := rr.ReadRows(buf)
			for _, row := range buf[:n] {
				m := make(map[string]any, len(names))
				for _, v := range row {
					if c := v.Column(); c >= 0 && c < len(names) {
						m[names[c]] = valueOf(v)
					}
				}
				rows = append(rows, m)
			}
			if err != nil {
				if errors.Is(err, io.EOF) {
					break
				}
				_ = rr.Close()
				return nil, &roster.SchemaError{Path: path, Err: err}
			}
			if n == 0 {
				break
			}
		}
		_ = rr.Close()
	}
	return recordsFromRows(path, rows)
}

func valueOf(v parquet.Value) any {
	if v.IsNull() {
		return nil
	}
	switch v.Kind() {
	case parquet.Boolean:
		return v.Boolean()
	case parquet.Int32:
		return v.Int32()
	case parquet.Int64:
		return v.Int64()
	case parquet.Float:
		return v.Float()
	case parquet.Double:
		return v.Double()
	case parquet.ByteArray, parquet.FixedLenByteArray:
		return string(v.ByteArray())
	default:
		return nil
	}
}

func recordsFromRows(path string, rows []map[string]any) ([]roster.RawRecord, error) {
	if len(rows) == 0 {
		return nil, &roster.SchemaError{Path: path, Err: errors.New("empty input, no rows")}
	}
	keysSet := map[string]struct{}{}
	for _, m := range rows {
		for k := range m {
			keysSet[k] = struct{}{}
		}
	}
	keys := make([]string, 0, len(keysSet))
	for k := range keysSet {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if _, err := roster.ResolveHeader(path, keys); err != nil {
		return nil, err
	}
	out := make([]roster.RawRecord, len(rows))
	for i, m := range rows {
		out[i] = roster.RawRecord{
			ID:        cellString(m[roster.ColID]),
			Name:      cellString(m[roster.ColName]),
			Age:       cellString(m[roster.ColAge]),
			Status:    cellString(m[roster.ColStatus]),
			EntryDate: cellString(m[roster.ColEntryDate]),
		}
	}
	return out, nil
}

func cellString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case int:
		return strconv.Itoa(t)
	case float32:
		return strconv.FormatFloat(float64(t), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}
