package pipeline

import (
	"context"
	"sort"
	"strings"

	"github.com/wdm0006/shelter/pkg/normalize"
	"github.com/wdm0006/shelter/pkg/roster"
)

// StatusSet is the set of statuses a report includes.
type StatusSet map[roster.Status]struct{}

func NewStatusSet(vals ...roster.Status) StatusSet {
	m := make(StatusSet, len(vals))
	for _, v := range vals {
		m[v] = struct{}{}
	}
	return m
}

// ParseStatusSet builds a set from configuration strings, normalizing case.
func ParseStatusSet(vals []string) StatusSet {
	m := make(StatusSet, len(vals))
	for _, v := range vals {
		m[normalize.Status(strings.TrimSpace(v))] = struct{}{}
	}
	return m
}

func (s StatusSet) Contains(st roster.Status) bool {
	_, ok := s[st]
	return ok
}

// Sorted returns the members in lexical order.
func (s StatusSet) Sorted() []roster.Status {
	out := make([]roster.Status, 0, len(s))
	for st := range s {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// DailyReportStatuses selects beneficiaries currently in the shelter.
func DailyReportStatuses() StatusSet {
	return NewStatusSet(roster.StatusActive, roster.StatusArrived)
}

// FilterForReport keeps records whose status is allowed, preserving order.
func FilterForReport(records []roster.CanonicalRecord, allowed StatusSet) []roster.CanonicalRecord {
	out := make([]roster.CanonicalRecord, 0, len(records))
	for _, r := range records {
		if allowed.Contains(r.Status) {
			out = append(out, r)
		}
	}
	return out
}

// StatusFilter is the Stage form of FilterForReport.
type StatusFilter struct {
	Allowed StatusSet
}

func NewStatusFilter(allowed StatusSet) *StatusFilter { return &StatusFilter{Allowed: allowed} }

func (t *StatusFilter) Name() string { return "filter_status" }

func (t *StatusFilter) Apply(ctx context.Context, records []roster.CanonicalRecord) ([]roster.CanonicalRecord, error) {
	return FilterForReport(records, t.Allowed), nil
}
