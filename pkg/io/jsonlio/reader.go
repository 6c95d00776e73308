// Package jsonlio reads roster rows from JSON Lines and writes cleaned rows
// back as JSON Lines.
package jsonlio

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	iox "github.com/wdm0006/shelter/pkg/io/ioutils"
	"github.com/wdm0006/shelter/pkg/roster"
)

type Reader struct {
	dec  *json.Decoder
	path string
}

// Open opens a (possibly gzip compressed) JSONL file or stdin ("-").
func Open(path string) (*Reader, io.Closer, error) {
	rc, err := iox.OpenMaybeCompressed(path)
	if err != nil {
		return nil, nil, &roster.SchemaError{Path: path, Err: err}
	}
	return NewReaderFrom(rc, path), rc, nil
}

func NewReaderFrom(r io.Reader, path string) *Reader {
	dec := json.NewDecoder(bufio.NewReader(r))
	dec.UseNumber()
	return &Reader{dec: dec, path: path}
}

// ReadAll decodes every object. The union of keys across all objects must
// contain the roster columns; objects lacking a key read it as empty.
func (r *Reader) ReadAll() ([]roster.RawRecord, error) {
	var rows []map[string]any
	keysSet := map[string]struct{}{}
	for {
		var m map[string]any
		if err := r.dec.Decode(&m); err != nil {
			if err == io.EOF {
				break
			}
			return nil, &roster.SchemaError{Path: r.path, Err: fmt.Errorf("object %d: %w", len(rows)+1, err)}
		}
		if m == nil {
			continue
		}
		rows = append(rows, m)
		for k := range m {
			keysSet[k] = struct{}{}
		}
	}
	if len(rows) == 0 {
		return nil, &roster.SchemaError{Path: r.path, Err: errors.New("empty input, no objects")}
	}
	keys := make([]string, 0, len(keysSet))
	for k := range keysSet {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if _, err := roster.ResolveHeader(r.path, keys); err != nil {
		return nil, err
	}
	out := make([]roster.RawRecord, len(rows))
	for i, m := range rows {
		out[i] = rawFromMap(m)
	}
	return out, nil
}

// ReadFile reads a whole JSONL roster file.
func ReadFile(path string) ([]roster.RawRecord, error) {
	r, c, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = c.Close() }()
	return r.ReadAll()
}

func rawFromMap(m map[string]any) roster.RawRecord {
	return roster.RawRecord{
		ID:        cellString(m[roster.ColID]),
		Name:      cellString(m[roster.ColName]),
		Age:       cellString(m[roster.ColAge]),
		Status:    cellString(m[roster.ColStatus]),
		EntryDate: cellString(m[roster.ColEntryDate]),
	}
}

func cellString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.ToValidUTF8(t, "?")
	case json.Number:
		return t.String()
	default:
		// fallback to JSON encoding
		b, _ := json.Marshal(t)
		return string(b)
	}
}
