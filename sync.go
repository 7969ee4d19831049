package journal

import (
	"context"
	"fmt"
	"time"
)

// Store is the capability the remote sheet exposes: one whole-table read and
// one whole-table overwrite. A spreadsheet API has no row-level operation
// and no compare-and-swap, which is why every mutation here is a full
// read-modify-replace cycle.
type Store interface {
	Read(ctx context.Context) (Table, error)
	ReplaceAll(ctx context.Context, t Table) error
}

// Synchronizer orchestrates read-modify-replace cycles against the remote
// store. Operations are strictly sequential within one Synchronizer; the
// remote sheet itself may still be written by other sessions, see the
// conflict note on Append and Delete.
type Synchronizer struct {
	store Store
}

// NewSynchronizer returns a Synchronizer over the given store.
func NewSynchronizer(store Store) *Synchronizer {
	return &Synchronizer{store: store}
}

// Load performs one remote read and materializes it into a Snapshot.
//
// On failure the error wraps ErrRemoteUnavailable and no Snapshot is
// returned: a failed load must never be mistaken for an empty journal, and
// any Snapshot the caller still holds must be treated as stale.
func (y *Synchronizer) Load(ctx context.Context) (*Snapshot, error) {
	t, err := y.store.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading journal: %w", err)
	}
	return FromTable(t), nil
}

// Append creates a new record from the fields, assigns it the next unique
// id, and replaces the whole remote table with the extended set. The new
// Snapshot and the stored record are returned only after the write
// succeeded; on any error the append is not persisted and the caller must
// redo the whole load-append cycle.
func (y *Synchronizer) Append(ctx context.Context, s *Snapshot, f Fields) (*Snapshot, Record, error) {
	if err := f.Validate(); err != nil {
		return nil, Record{}, err
	}
	rec := f.record(NextID(s))
	next := s.withRecord(rec)
	if err := y.replace(ctx, s, next); err != nil {
		return nil, Record{}, fmt.Errorf("appending record %d: %w", rec.ID, err)
	}
	return next, rec, nil
}

// Delete removes the record with the given id and replaces the whole remote
// table with the filtered set. Deleting an absent id is a no-op that still
// performs the (identical) write and succeeds.
func (y *Synchronizer) Delete(ctx context.Context, s *Snapshot, id int) (*Snapshot, error) {
	next := s.WithoutID(id)
	if err := y.replace(ctx, s, next); err != nil {
		return nil, fmt.Errorf("deleting record %d: %w", id, err)
	}
	return next, nil
}

// replace performs the full-table replace write carrying s to next.
//
// A replace-only store cannot prevent two sessions from overwriting each
// other: the second writer would silently discard the first one's change.
// To turn that silent lost update into a reported conflict, the table is
// re-read immediately before the write and the operation fails with
// ErrWriteConflict when the row count no longer matches the snapshot.
// The window between that check and the write remains open.
func (y *Synchronizer) replace(ctx context.Context, s, next *Snapshot) error {
	current, err := y.store.Read(ctx)
	if err != nil {
		return err
	}
	if n := FromTable(current).Len(); n != s.Len() {
		return fmt.Errorf("%w: %d rows remote, snapshot had %d", ErrWriteConflict, n, s.Len())
	}
	if err := y.store.ReplaceAll(ctx, next.Table()); err != nil {
		return err
	}
	next.readAt = time.Now()
	return nil
}
