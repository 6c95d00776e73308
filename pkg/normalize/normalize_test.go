package normalize

import (
	"testing"
	"time"

	"github.com/wdm0006/shelter/pkg/roster"
)

func TestName(t *testing.T) {
	cases := map[string]string{
		"  juan perez ":     "Juan Perez",
		"MARIA gomez":       "Maria Gomez",
		"Carlos   SILVA":    "Carlos Silva",
		"\tana\n rodriguez": "Ana Rodriguez",
		"":                  "",
		"   ":               "",
		"josé  ÁLVAREZ":     "José Álvarez",
	}
	for in, want := range cases {
		if got := Name(in); got != want {
			t.Fatalf("Name(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNameIdempotent(t *testing.T) {
	for _, in := range []string{"  juan perez ", "MARIA gomez", "o'BRIEN  mc-donald", "x", "ÉMILE zola", "  "} {
		once := Name(in)
		if twice := Name(once); twice != once {
			t.Fatalf("Name not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestAge(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"25", 25, true},
		{"34 years", 34, true},
		{"approx. 40-45", 40, true},
		{"unknown", 0, false},
		{"", 0, false},
		{"-7", 7, true},
		{"99999999999999999999999", 0, false},
	}
	for _, c := range cases {
		got, ok := Age(c.in)
		if got != c.want || ok != c.ok {
			t.Fatalf("Age(%q) = (%d, %v), want (%d, %v)", c.in, got, ok, c.want, c.ok)
		}
		if got < 0 {
			t.Fatalf("Age(%q) negative", c.in)
		}
	}
}

func TestStatus(t *testing.T) {
	if Status("active") != Status("ACTIVE") || Status("Active") != roster.StatusActive {
		t.Fatal("status should be case-insensitive")
	}
	if got := Status(" departed"); got != " DEPARTED" {
		t.Fatalf("status must not trim, got %q", got)
	}
}

func TestEntryDate(t *testing.T) {
	now := time.Date(2025, 1, 15, 13, 45, 0, 0, time.UTC)
	want := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{"2025-01-10", "2025/01/10", "10/01/2025", "10-01-2025", " 2025-1-10 "} {
		d := EntryDate(in, now)
		if !d.Resolved || !d.Time.Equal(want) {
			t.Fatalf("EntryDate(%q) = %+v, want %v", in, d, want)
		}
	}
	d := EntryDate("Today", now)
	if !d.Resolved || d.String() != "2025-01-15" {
		t.Fatalf("today keyword resolved to %+v", d)
	}
	d = EntryDate("last week", now)
	if d.Resolved || d.String() != "last week" {
		t.Fatalf("expected unresolved date, got %+v", d)
	}
}

func TestRecord(t *testing.T) {
	now := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	raw := roster.RawRecord{ID: "REF-002", Name: "MARIA gomez", Age: "unknown", Status: "Departed", EntryDate: "someday"}
	rec, repairs := Record(raw, now)
	if rec.ID != "REF-002" || rec.Name != "Maria Gomez" || rec.Age != roster.UnknownAge || rec.Status != roster.StatusDeparted {
		t.Fatalf("unexpected record %+v", rec)
	}
	if len(repairs) != 2 {
		t.Fatalf("expected 2 repairs, got %d", len(repairs))
	}
	if repairs[0].Reason != ReasonUnparseableAge || repairs[1].Reason != ReasonUnresolvedEntryDt {
		t.Fatalf("unexpected repair reasons %+v", repairs)
	}

	_, repairs = Record(roster.RawRecord{ID: "REF-003", Age: "30", EntryDate: "2025-01-01"}, now)
	if len(repairs) != 0 {
		t.Fatalf("clean record should not report repairs, got %+v", repairs)
	}
}
