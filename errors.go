package journal

import (
	"errors"
	"fmt"
)

// Sentinel errors of the synchronization layer. Callers match them with
// errors.Is; the wrapped message carries the operation detail.
var (
	// ErrRemoteUnavailable is returned when the remote store cannot be
	// reached (network, auth, or missing sheet) on a read or a write. The
	// operation was aborted and no partial state was applied. There is no
	// cache fallback: on a failed load the safe state is "no data", never
	// "last known data".
	ErrRemoteUnavailable = errors.New("remote store unavailable")

	// ErrWriteConflict is returned when the remote table changed between
	// the snapshot read and the replace write. The caller must reload and
	// redo the whole read-modify-write cycle.
	ErrWriteConflict = errors.New("remote table changed since snapshot was taken")

	// ErrInvalidInput is returned when caller-supplied fields fail
	// validation; it is reported before any remote call is attempted.
	ErrInvalidInput = errors.New("invalid input")
)

// ParseIssue describes one cell that could not be coerced while reading the
// remote table. Issues are warnings: the row is always kept in storage, and
// a load never aborts because of them.
type ParseIssue struct {
	Row   int    // 1-based sheet row
	Field string // column name
	Msg   string
}

func (i ParseIssue) String() string {
	return fmt.Sprintf("row %d, %s: %s", i.Row, i.Field, i.Msg)
}
