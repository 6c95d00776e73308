// Package csvio reads roster tables from delimited text and writes cleaned
// tables back out.
package csvio

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	iox "github.com/wdm0006/shelter/pkg/io/ioutils"
	"github.com/wdm0006/shelter/pkg/roster"
)

type ReaderOptions struct {
	Delimiter rune // 0 = sniff, default ','
	Strict    bool // if true, error on short records
}

type Reader struct {
	r      *csv.Reader
	path   string
	opt    ReaderOptions
	header roster.Header
	// repair/warning counters
	shortRecords int
	longRecords  int
	line         int
}

// Open opens a (possibly gzip compressed) CSV file or stdin ("-").
func Open(path string, opt ReaderOptions) (*Reader, io.Closer, error) {
	rc, err := iox.OpenMaybeCompressed(path)
	if err != nil {
		return nil, nil, &roster.SchemaError{Path: path, Err: err}
	}
	return NewReaderFrom(rc, path, opt), rc, nil
}

// NewReaderFrom constructs a Reader from an arbitrary io.Reader. path is only
// used in error messages.
func NewReaderFrom(r io.Reader, path string, opt ReaderOptions) *Reader {
	br := bufio.NewReader(r)
	rr := csv.NewReader(br)
	rr.FieldsPerRecord = -1
	if opt.Delimiter == 0 {
		d, lazy := sniffDelimiterAndQuotes(br)
		rr.Comma = d
		rr.LazyQuotes = lazy
	} else {
		rr.Comma = opt.Delimiter
	}
	return &Reader{r: rr, path: path, opt: opt}
}

// ReadHeader reads the header row and checks it against the roster columns.
func (r *Reader) ReadHeader() (roster.Header, error) {
	if r.header != nil {
		return r.header, nil
	}
	rec, err := r.r.Read()
	if err == io.EOF {
		return nil, &roster.SchemaError{Path: r.path, Err: errors.New("empty input, no header row")}
	}
	if err != nil {
		return nil, &roster.SchemaError{Path: r.path, Err: err}
	}
	r.line++
	names := make([]string, len(rec))
	for i := range rec {
		names[i] = strings.ToValidUTF8(rec[i], "?")
	}
	h, err := roster.ResolveHeader(r.path, names)
	if err != nil {
		return nil, err
	}
	r.header = h
	return h, nil
}

// ReadAll reads the header if needed and then every remaining row.
func (r *Reader) ReadAll() ([]roster.RawRecord, error) {
	h, err := r.ReadHeader()
	if err != nil {
		return nil, err
	}
	width := len(roster.Columns)
	for _, i := range h {
		if i+1 > width {
			width = i + 1
		}
	}
	var out []roster.RawRecord
	for {
		rec, err := r.r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &roster.SchemaError{Path: r.path, Err: err}
		}
		r.line++
		if isBlank(rec) {
			continue
		}
		switch {
		case len(rec) < width:
			r.shortRecords++
			if r.opt.Strict {
				return nil, &roster.SchemaError{Path: r.path, Err: fmt.Errorf("short record at line %d: need %d fields, got %d", r.line, width, len(rec))}
			}
		case len(rec) > width:
			r.longRecords++
		}
		for i := range rec {
			rec[i] = strings.ToValidUTF8(rec[i], "?")
		}
		out = append(out, h.Record(rec))
	}
	return out, nil
}

// ReadFile reads a whole roster file. The returned string summarizes any
// repaired records.
func ReadFile(path string, opt ReaderOptions) ([]roster.RawRecord, string, error) {
	r, c, err := Open(path, opt)
	if err != nil {
		return nil, "", err
	}
	defer func() { _ = c.Close() }()
	recs, err := r.ReadAll()
	if err != nil {
		return nil, "", err
	}
	return recs, r.Warnings(), nil
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// sniffDelimiterAndQuotes picks the most frequent candidate delimiter in the
// first line and enables LazyQuotes when quotes look unbalanced.
func sniffDelimiterAndQuotes(br *bufio.Reader) (rune, bool) {
	sample, _ := br.Peek(4096)
	if len(sample) == 0 {
		return ',', false
	}
	first := sample
	if i := bytes.IndexByte(sample, '\n'); i >= 0 {
		first = sample[:i]
	}
	candidates := []byte{',', '\t', ';', '|'}
	best := byte(',')
	bestCount := 0
	for _, c := range candidates {
		if cnt := bytes.Count(first, []byte{c}); cnt > bestCount {
			bestCount = cnt
			best = c
		}
	}
	lazy := bytes.Count(sample, []byte{'"'})%2 != 0
	return rune(best), lazy
}

// Warnings returns a summary string of any repairs/mismatches encountered.
func (r *Reader) Warnings() string {
	if r.shortRecords == 0 && r.longRecords == 0 {
		return ""
	}
	parts := []string{}
	if r.shortRecords > 0 {
		parts = append(parts, fmt.Sprintf("short_records=%d", r.shortRecords))
	}
	if r.longRecords > 0 {
		parts = append(parts, fmt.Sprintf("long_records=%d", r.longRecords))
	}
	return strings.Join(parts, ", ")
}
