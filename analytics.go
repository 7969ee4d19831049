package journal

import "time"

// EquityPoint is one step of the equity curve: a chronologically placed
// trade and the running total of profit up to and including it.
type EquityPoint struct {
	Time       time.Time
	ID         int
	Profit     Amount
	Cumulative Amount
}

// Analytics is the derived performance state of one Snapshot. It is
// immutable and stamped with the snapshot's read time; it is recomputed
// whole from a fresh Snapshot, never patched.
type Analytics struct {
	SnapshotAt time.Time

	// Curve is the equity curve: cumulative profit over the chronological
	// sequence. Records with an unparseable time are not on the curve.
	Curve []EquityPoint

	// TotalTrades counts every stored record, including the ones excluded
	// from the curve: the count is over storage, not over the time series.
	TotalTrades int
	Wins        int
	WinRate     Percent // 0 when the snapshot is empty
	TotalProfit Amount  // over all records, exact decimal arithmetic
}

// Derive computes the analytics of a snapshot.
func Derive(s *Snapshot) *Analytics {
	a := &Analytics{
		SnapshotAt:  s.ReadAt(),
		TotalTrades: s.Len(),
	}

	var running Amount
	for _, r := range s.Chronological() {
		running = running.Add(r.Profit)
		a.Curve = append(a.Curve, EquityPoint{
			Time:       r.Time,
			ID:         r.ID,
			Profit:     r.Profit,
			Cumulative: running,
		})
	}

	var total Amount
	for _, r := range s.All() {
		total = total.Add(r.Profit)
		if r.Outcome == Win {
			a.Wins++
		}
	}
	a.TotalProfit = total

	if a.TotalTrades > 0 {
		a.WinRate = Percent(float64(a.Wins) / float64(a.TotalTrades) * 100)
	}
	return a
}
