package journal

import (
	"slices"
	"sort"
	"time"
)

// Snapshot is an immutable materialization of the remote table at one read
// point. Every operation of the package consumes an explicit Snapshot value
// and mutations return a fresh one; nothing reads ambient state.
//
// An empty Snapshot is a perfectly valid "no trades yet" state; it is never
// used to stand in for a failed load, which is reported as an error instead.
type Snapshot struct {
	records []Record
	issues  []ParseIssue
	readAt  time.Time
}

// FromTable parses every row of the table into a Snapshot. Fully blank rows
// are discarded silently; any other row becomes a Record, with coercion
// problems collected as Issues rather than dropping data.
func FromTable(t Table) *Snapshot {
	s := &Snapshot{readAt: time.Now()}
	idx := t.columnIndex()
	for i, row := range t.Rows {
		if isBlank(row) {
			continue
		}
		// sheet row number: 1-based, after the header row.
		n := i + 2
		cell := func(name string) string {
			j, ok := idx[name]
			if !ok || j >= len(row) {
				return ""
			}
			return row[j]
		}
		rec, issues := parseRecord(n, cell)
		s.records = append(s.records, rec)
		s.issues = append(s.issues, issues...)
	}
	return s
}

// All returns the records in insertion order, as read from the sheet.
func (s *Snapshot) All() []Record {
	return slices.Clone(s.records)
}

// Len returns the number of records, which is also the number of non-blank
// data rows of the remote table at read time.
func (s *Snapshot) Len() int { return len(s.records) }

// ReadAt returns the time the remote table was materialized.
func (s *Snapshot) ReadAt() time.Time { return s.readAt }

// Issues returns the coercion warnings collected while parsing the table.
func (s *Snapshot) Issues() []ParseIssue {
	return slices.Clone(s.issues)
}

// ByID returns the record with the given numeric id.
func (s *Snapshot) ByID(id int) (Record, bool) {
	for _, r := range s.records {
		if r.ID == id && r.RawID != "" {
			return r, true
		}
	}
	return Record{}, false
}

// WithoutID returns a new Snapshot with the record of the given id filtered
// out. It is a pure function: s is left untouched, and filtering an absent
// id returns an equal Snapshot.
func (s *Snapshot) WithoutID(id int) *Snapshot {
	next := &Snapshot{readAt: s.readAt, issues: slices.Clone(s.issues)}
	for _, r := range s.records {
		if r.ID == id && r.RawID != "" {
			continue
		}
		next.records = append(next.records, r)
	}
	return next
}

// withRecord returns a new Snapshot with the record appended, leaving s
// untouched.
func (s *Snapshot) withRecord(r Record) *Snapshot {
	next := &Snapshot{readAt: s.readAt, issues: slices.Clone(s.issues)}
	next.records = append(slices.Clone(s.records), r)
	return next
}

// Chronological returns the records ordered by ascending time, ties broken
// by id so the order is deterministic. Records whose time cell did not parse
// are excluded: they exist in storage but cannot be placed on a time series.
func (s *Snapshot) Chronological() []Record {
	ordered := make([]Record, 0, len(s.records))
	for _, r := range s.records {
		if r.InvalidTime {
			continue
		}
		ordered = append(ordered, r)
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].Time.Equal(ordered[j].Time) {
			return ordered[i].Time.Before(ordered[j].Time)
		}
		return ordered[i].ID < ordered[j].ID
	})
	return ordered
}

// Table materializes the snapshot back into raw sheet rows, with the
// canonical header, ready for a full-table replace write.
func (s *Snapshot) Table() Table {
	t := Table{Header: slices.Clone(Columns)}
	for _, r := range s.records {
		t.Rows = append(t.Rows, r.row())
	}
	return t
}
