package journal

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Fields is the validated input for a new record, as supplied by the
// front-end after its own form handling.
type Fields struct {
	Time       time.Time
	Direction  Direction
	Timeframe  Timeframe
	TargetRR   decimal.Decimal // zero means unset
	ActualRR   decimal.Decimal
	Profit     decimal.Decimal
	Setup      string
	Screenshot string
	Notes      string
}

// Validate checks the fields for basic type and range correctness. It is
// called before any remote call so that bad input never costs a network
// round-trip. All failures wrap ErrInvalidInput.
func (f Fields) Validate() error {
	if f.Time.IsZero() {
		return fmt.Errorf("%w: a trade time is required", ErrInvalidInput)
	}
	if _, err := ParseDirection(string(f.Direction)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, err := ParseTimeframe(string(f.Timeframe)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if f.TargetRR.IsNegative() {
		return fmt.Errorf("%w: target risk-reward cannot be negative", ErrInvalidInput)
	}
	if f.ActualRR.IsNegative() {
		return fmt.Errorf("%w: actual risk-reward cannot be negative", ErrInvalidInput)
	}
	return nil
}

// record builds the Record stored for these fields. The outcome is computed
// here, once, from the profit; it is never revisited afterwards.
func (f Fields) record(id int) Record {
	return Record{
		ID:         id,
		RawID:      strconv.Itoa(id),
		Time:       f.Time,
		RawTime:    f.Time.Format(TimeFormat),
		Direction:  f.Direction,
		Timeframe:  f.Timeframe,
		TargetRR:   decimal.NullDecimal{Decimal: f.TargetRR, Valid: true},
		ActualRR:   decimal.NullDecimal{Decimal: f.ActualRR, Valid: true},
		Profit:     USD(f.Profit),
		Outcome:    outcomeOf(f.Profit),
		Setup:      f.Setup,
		Screenshot: f.Screenshot,
		Notes:      f.Notes,
	}
}
