package journal

import (
	"testing"
)

func TestFromTable_SkipsBlankRows(t *testing.T) {
	s := FromTable(table(
		row("1", "2024-03-01 09:30:00", "Buy", "H1", "", "", "10", "win", "", "", ""),
		[]string{"", "", "", "", "", "", "", "", "", "", ""},
		[]string{"   ", " ", "", "", "", "", "", "", "", "", ""},
		row("2", "2024-03-02 09:30:00", "Sell", "M15", "", "", "-5", "loss", "", "", ""),
	))
	if s.Len() != 2 {
		t.Fatalf("got %d records, want 2 (blank rows must be discarded silently)", s.Len())
	}
	seen := map[int]bool{}
	for _, r := range s.All() {
		if seen[r.ID] {
			t.Errorf("duplicate id %d", r.ID)
		}
		seen[r.ID] = true
	}
}

func TestSnapshot_ByID(t *testing.T) {
	s := FromTable(table(
		row("1", "2024-03-01 09:30:00", "Buy", "H1", "", "", "10", "win", "", "", ""),
		row("3", "2024-03-02 09:30:00", "Sell", "M15", "", "", "-5", "loss", "", "", ""),
	))
	if r, ok := s.ByID(3); !ok || r.Direction != Sell {
		t.Errorf("ByID(3) = %+v, %v", r, ok)
	}
	if _, ok := s.ByID(2); ok {
		t.Errorf("ByID(2) must not find anything")
	}
}

func TestSnapshot_WithoutIDIsPure(t *testing.T) {
	s := FromTable(table(
		row("1", "2024-03-01 09:30:00", "Buy", "H1", "", "", "10", "win", "", "", ""),
		row("2", "2024-03-02 09:30:00", "Sell", "M15", "", "", "-5", "loss", "", "", ""),
	))

	filtered := s.WithoutID(1)
	if filtered.Len() != 1 {
		t.Errorf("filtered length = %d, want 1", filtered.Len())
	}
	if s.Len() != 2 {
		t.Errorf("the receiver must be left untouched, length = %d", s.Len())
	}

	// filtering an absent id returns an equal snapshot.
	same := s.WithoutID(99)
	if same.Len() != s.Len() {
		t.Fatalf("WithoutID(absent) length = %d, want %d", same.Len(), s.Len())
	}
	for i, r := range same.All() {
		if !r.Equal(s.All()[i]) {
			t.Errorf("record %d changed: %+v", i, r)
		}
	}
}

func TestSnapshot_Chronological(t *testing.T) {
	// out of order rows, one unparseable time, one exact tie on time.
	s := FromTable(table(
		row("3", "2024-03-05 10:00:00", "Buy", "H1", "", "", "1", "win", "", "", ""),
		row("1", "2024-03-01 10:00:00", "Buy", "H1", "", "", "1", "win", "", "", ""),
		row("4", "garbage", "Buy", "H1", "", "", "1", "win", "", "", ""),
		row("2", "2024-03-05 10:00:00", "Buy", "H1", "", "", "1", "win", "", "", ""),
	))

	got := s.Chronological()
	wantIDs := []int{1, 2, 3}
	if len(got) != len(wantIDs) {
		t.Fatalf("got %d chronological records, want %d (invalid time excluded)", len(got), len(wantIDs))
	}
	for i, want := range wantIDs {
		if got[i].ID != want {
			t.Errorf("position %d: id = %d, want %d", i, got[i].ID, want)
		}
	}
}

func TestSnapshot_TableRoundTrip(t *testing.T) {
	s := FromTable(table(
		row("1", "2024-03-01 09:30:00", "Buy", "H1", "2", "1.5", "120.50", "win", "breakout", "shot.png", "好交易"),
		row("x", "garbage", "hold", "W1", "n/a", "", "abc", "?", "", "", ""),
	))

	back := FromTable(s.Table())
	if back.Len() != s.Len() {
		t.Fatalf("round trip changed the record count: %d != %d", back.Len(), s.Len())
	}
	for i, r := range back.All() {
		if !r.Equal(s.All()[i]) {
			t.Errorf("record %d changed through materialization:\n got %+v\nwant %+v", i, r, s.All()[i])
		}
	}
}
