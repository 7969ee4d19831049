package journal

// NextID computes the next unique record id for a snapshot: one past the
// highest numerically-coercible id, or 1 when no id coerces at all. Stray
// non-numeric ids left by hand-edits are ignored, never fatal.
//
// The id is only locally unique: two sessions loading the same sheet
// concurrently will both allocate it, and the second replace write wins.
// The Synchronizer's conflict check narrows that window, it does not close it.
func NextID(s *Snapshot) int {
	max := 0
	found := false
	for _, r := range s.records {
		if r.RawID == "" {
			continue
		}
		if !found || r.ID > max {
			max = r.ID
			found = true
		}
	}
	if !found || max < 1 {
		return 1
	}
	return max + 1
}
