// Package journal maintains a ledger of discrete trading events stored in a
// shared remote spreadsheet, and derives running performance analytics from
// it. The remote sheet is the sole source of truth: there is no local cache,
// and every mutation is a fresh read-modify-replace cycle.
//
// The core functionalities include:
//   - Record parsing: coercing the raw, text-only sheet rows into typed
//     trading events, tolerating hand-edited cells without ever dropping a
//     stored row.
//   - Snapshots: an immutable, in-memory materialization of the remote table
//     at one read point, the value every other operation consumes.
//   - Identity allocation: computing the next unique record id from a
//     snapshot, tolerant of stray non-numeric ids in the sheet.
//   - Analytics: the equity curve (running cumulative profit over
//     chronologically ordered trades), win rate and profit totals, computed
//     with exact decimal arithmetic.
//   - Synchronization: read-modify-replace cycles against a store that only
//     offers whole-table overwrite. Two concurrent sessions can silently
//     overwrite each other on such a store; the Synchronizer narrows that
//     window by re-reading immediately before each write and reporting a
//     WriteConflict when the table changed under it.
//   - Export: a lossless JSON dump of the table and a deterministic markdown
//     performance report.
//
// A known quirk inherited from the sheet format: a record's outcome is
// computed from its profit once, when the record is appended, and is stored
// in the sheet. Editing the profit cell by hand later does not update the
// outcome; corrections are modeled as delete plus re-append.
//
// This package serves as the foundational logic for the `tj` command-line
// tool.
package journal
