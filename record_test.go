package journal

import (
	"testing"
	"time"
)

// table returns a sheet table with the canonical header and the given rows.
func table(rows ...[]string) Table {
	return Table{Header: append([]string(nil), Columns...), Rows: rows}
}

// row builds a full sheet row in canonical column order.
func row(id, when, direction, tf, targetRR, actualRR, profit, outcome, setup, screenshot, notes string) []string {
	return []string{id, when, direction, tf, targetRR, actualRR, profit, outcome, setup, screenshot, notes}
}

func TestFromTable_Coercion(t *testing.T) {
	s := FromTable(table(
		row("1", "2024-03-01 09:30:00", "Buy", "H1", "2", "1.5", "120.50", "win", "london breakout", "", "clean entry"),
	))
	if s.Len() != 1 {
		t.Fatalf("got %d records, want 1", s.Len())
	}
	r := s.All()[0]
	if r.ID != 1 || r.RawID != "1" {
		t.Errorf("id = %d (%q), want 1", r.ID, r.RawID)
	}
	want := time.Date(2024, 3, 1, 9, 30, 0, 0, time.Local)
	if r.InvalidTime || !r.Time.Equal(want) {
		t.Errorf("time = %v (invalid=%v), want %v", r.Time, r.InvalidTime, want)
	}
	if r.Direction != Buy || r.Timeframe != H1 {
		t.Errorf("direction/timeframe = %v/%v", r.Direction, r.Timeframe)
	}
	if !r.TargetRR.Valid || r.TargetRR.Decimal.String() != "2" {
		t.Errorf("target_rr = %+v, want 2", r.TargetRR)
	}
	if !r.Profit.Valid() || r.Profit.Decimal().String() != "120.5" {
		t.Errorf("profit = %v, want 120.5", r.Profit.Decimal())
	}
	if r.Outcome != Win {
		t.Errorf("outcome = %q, want win", r.Outcome)
	}
	if len(s.Issues()) != 0 {
		t.Errorf("unexpected issues: %v", s.Issues())
	}
}

func TestFromTable_NonNumericFallsBackToZero(t *testing.T) {
	// a present but non-numeric cell coerces to 0 and is reported; an empty
	// cell stays absent, because "no data" and "recorded zero" differ.
	s := FromTable(table(
		row("1", "2024-03-01 09:30:00", "Buy", "H1", "oops", "", "abc", "win", "", "", ""),
	))
	r := s.All()[0]
	if !r.TargetRR.Valid || !r.TargetRR.Decimal.IsZero() {
		t.Errorf("target_rr = %+v, want recorded 0", r.TargetRR)
	}
	if r.ActualRR.Valid {
		t.Errorf("actual_rr = %+v, want absent", r.ActualRR)
	}
	if !r.Profit.Valid() || !r.Profit.IsZero() {
		t.Errorf("profit = %v, want recorded 0", r.Profit)
	}
	if len(s.Issues()) != 2 {
		t.Errorf("got %d issues %v, want 2", len(s.Issues()), s.Issues())
	}
}

func TestFromTable_InvalidTimeIsFlaggedNotDropped(t *testing.T) {
	s := FromTable(table(
		row("1", "not a time", "Sell", "M5", "", "", "-10", "loss", "", "", ""),
	))
	if s.Len() != 1 {
		t.Fatalf("record with a bad time must stay in storage")
	}
	r := s.All()[0]
	if !r.InvalidTime {
		t.Errorf("InvalidTime = false, want true")
	}
	if r.RawTime != "not a time" {
		t.Errorf("RawTime = %q, the cell must be kept verbatim", r.RawTime)
	}
}

func TestFromTable_LegacyOutcomeLabels(t *testing.T) {
	s := FromTable(table(
		row("1", "2024-03-01 09:30:00", "Buy", "H1", "", "", "50", "勝", "", "", ""),
		row("2", "2024-03-02 09:30:00", "Sell", "H1", "", "", "-50", "敗", "", "", ""),
	))
	all := s.All()
	if all[0].Outcome != Win || all[1].Outcome != Loss {
		t.Errorf("outcomes = %q/%q, want win/loss", all[0].Outcome, all[1].Outcome)
	}
}

func TestParseTime_AcceptedLayouts(t *testing.T) {
	testCases := []struct {
		in   string
		want time.Time
	}{
		{"2024-03-01 09:30:00", time.Date(2024, 3, 1, 9, 30, 0, 0, time.Local)},
		{"2024-03-01 09:30", time.Date(2024, 3, 1, 9, 30, 0, 0, time.Local)},
		{"2024-3-1 09:30:00", time.Date(2024, 3, 1, 9, 30, 0, 0, time.Local)},
	}
	for _, tc := range testCases {
		got, err := parseTime(tc.in)
		if err != nil {
			t.Errorf("parseTime(%q): %v", tc.in, err)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("parseTime(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if _, err := parseTime("2024/03/01"); err == nil {
		t.Errorf("parseTime must reject an unknown layout")
	}
}

func TestFromTable_HeaderOrderInsensitive(t *testing.T) {
	s := FromTable(Table{
		Header: []string{"profit", "id", "time"},
		Rows:   [][]string{{"42", "7", "2024-03-01 09:30:00"}},
	})
	r := s.All()[0]
	if r.ID != 7 {
		t.Errorf("id = %d, want 7", r.ID)
	}
	if r.Profit.Decimal().String() != "42" {
		t.Errorf("profit = %v, want 42", r.Profit.Decimal())
	}
}
