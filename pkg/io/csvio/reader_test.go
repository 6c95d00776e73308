package csvio

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wdm0006/shelter/pkg/roster"
	"github.com/wdm0006/shelter/pkg/sample"
)

const messy = "Refugee_ID,Full_Name,Age,Status,Entry_Date\n" +
	"REF-001,  juan perez ,25,Active,2025-01-10\n" +
	"REF-002,MARIA gomez,34 years,active,12/01/2025\n" +
	"REF-003,Carlos   SILVA,19,Departed\n"

func TestReadAll(t *testing.T) {
	r := NewReaderFrom(strings.NewReader(messy), "mem", ReaderOptions{})
	recs, err := r.ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 records, got %d", len(recs))
	}
	if recs[0].Name != "  juan perez " {
		t.Fatalf("reader must not clean values, got %q", recs[0].Name)
	}
	if recs[1].Age != "34 years" {
		t.Fatalf("unexpected age %q", recs[1].Age)
	}
	if recs[2].EntryDate != "" {
		t.Fatalf("short record should leave entry date empty, got %q", recs[2].EntryDate)
	}
	if w := r.Warnings(); w != "short_records=1" {
		t.Fatalf("unexpected warnings %q", w)
	}
}

func TestReadAllStrict(t *testing.T) {
	r := NewReaderFrom(strings.NewReader(messy), "mem", ReaderOptions{Strict: true})
	_, err := r.ReadAll()
	var se *roster.SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
}

func TestSniffSemicolon(t *testing.T) {
	in := "Refugee_ID;Full_Name;Age;Status;Entry_Date\nREF-001;Ana, maria;19;Arrived;today\n"
	recs, err := NewReaderFrom(strings.NewReader(in), "mem", ReaderOptions{}).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 || recs[0].Name != "Ana, maria" {
		t.Fatalf("unexpected records %+v", recs)
	}
}

func TestMissingColumn(t *testing.T) {
	in := "Refugee_ID,Full_Name,Status,Entry_Date\nREF-001,x,Active,today\n"
	_, err := NewReaderFrom(strings.NewReader(in), "roster.csv", ReaderOptions{}).ReadAll()
	var se *roster.SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
	if len(se.Missing) != 1 || se.Missing[0] != roster.ColAge {
		t.Fatalf("unexpected missing %v", se.Missing)
	}
}

func TestEmptyInput(t *testing.T) {
	_, err := NewReaderFrom(strings.NewReader(""), "empty.csv", ReaderOptions{}).ReadAll()
	var se *roster.SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, _, err := ReadFile(filepath.Join(t.TempDir(), "nope.csv"), ReaderOptions{})
	var se *roster.SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist cause, got %v", err)
	}
}

func TestWriteAllAndReadBack(t *testing.T) {
	p := filepath.Join(t.TempDir(), "clean.csv.gz")
	recs := []roster.CanonicalRecord{{ID: "REF-001", Name: "Juan Perez", Age: 25, Status: roster.StatusActive, EntryDate: roster.EntryDate{Raw: "?"}}}
	if err := WriteAll(p, recs, WriterOptions{}); err != nil {
		t.Fatal(err)
	}
	raws, warn, err := ReadFile(p, ReaderOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if warn != "" || len(raws) != 1 || raws[0].Name != "Juan Perez" || raws[0].Age != "25" || raws[0].EntryDate != "?" {
		t.Fatalf("unexpected read back %+v (%s)", raws, warn)
	}
}

func TestWriteRaw(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRaw(&buf, []roster.RawRecord{{ID: "REF-001", Name: "  juan perez ", Age: "25", Status: "Active", EntryDate: "today"}}); err != nil {
		t.Fatal(err)
	}
	want := "Refugee_ID,Full_Name,Age,Status,Entry_Date\nREF-001,\"  juan perez \",25,Active,today\n"
	if buf.String() != want {
		t.Fatalf("got %q", buf.String())
	}
}

func TestWriteRawReadBack(t *testing.T) {
	raws := sample.Generate(5)
	p := filepath.Join(t.TempDir(), "raw.csv")
	var buf bytes.Buffer
	if err := WriteRaw(&buf, raws); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	back, warn, err := ReadFile(p, ReaderOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if warn != "" || len(back) != len(raws) {
		t.Fatalf("got %d rows (%s), want %d", len(back), warn, len(raws))
	}
	for i := range raws {
		if back[i] != raws[i] {
			t.Fatalf("row %d: got %+v, want %+v", i, back[i], raws[i])
		}
	}
	if back[0].Name != "  juan perez " {
		t.Fatalf("padded name not preserved: %q", back[0].Name)
	}
}
