package journal

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TimeFormat is the layout of the "time" cell as written to the sheet.
const TimeFormat = "2006-01-02 15:04:05"

// readTimeFormats are the layouts accepted when reading a time cell.
// Hand-entered cells frequently omit the seconds.
var readTimeFormats = []string{
	TimeFormat,
	"2006-01-02 15:04",
	"2006-1-2 15:04:05",
	"2006-1-2 15:04",
}

// Columns is the canonical column order of the remote sheet. Reads are
// order-insensitive (cells are matched by header name), writes always use
// this order.
var Columns = []string{
	"id", "time", "direction", "timeframe",
	"target_rr", "actual_rr", "profit", "outcome",
	"setup", "screenshot_path", "notes",
}

// Direction of a trade.
type Direction string

const (
	Buy  Direction = "Buy"
	Sell Direction = "Sell"
)

// ParseDirection parses a direction cell, case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy":
		return Buy, nil
	case "sell":
		return Sell, nil
	default:
		return Direction(s), fmt.Errorf("unknown direction %q", s)
	}
}

// Timeframe is the chart interval a trade was taken on.
type Timeframe string

const (
	M5  Timeframe = "M5"
	M15 Timeframe = "M15"
	M30 Timeframe = "M30"
	H1  Timeframe = "H1"
	H4  Timeframe = "H4"
	D1  Timeframe = "D1"
)

// Timeframes lists the valid chart intervals, shortest first.
var Timeframes = []Timeframe{M5, M15, M30, H1, H4, D1}

// ParseTimeframe parses a timeframe cell, case-insensitively.
func ParseTimeframe(s string) (Timeframe, error) {
	q := strings.ToUpper(strings.TrimSpace(s))
	for _, tf := range Timeframes {
		if q == string(tf) {
			return tf, nil
		}
	}
	return Timeframe(s), fmt.Errorf("unknown timeframe %q", s)
}

// Outcome of a trade, computed from its profit when the record is created
// and stored as-is from then on.
type Outcome string

const (
	Win  Outcome = "win"
	Loss Outcome = "loss"
)

// outcomeOf computes the outcome stored with a new record: a trade is a win
// iff its profit is strictly positive.
func outcomeOf(profit decimal.Decimal) Outcome {
	if profit.IsPositive() {
		return Win
	}
	return Loss
}

// parseOutcome normalizes an outcome cell. Sheets written by the legacy
// journal carry 勝/敗 labels; any other text is kept verbatim so a reread
// never rewrites what the sheet says.
func parseOutcome(s string) Outcome {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "win", "勝":
		return Win
	case "loss", "敗":
		return Loss
	default:
		return Outcome(s)
	}
}

// Record is a single trading event as stored in one row of the remote sheet.
//
// A Record is immutable once stored: it is created by Synchronizer.Append,
// destroyed by Synchronizer.Delete, and never updated in place. Cells that
// fail coercion keep their raw text so that writing a snapshot back never
// loses what a hand-editor typed.
type Record struct {
	ID          int    // numeric id; 0 when the stored id cell is not numeric
	RawID       string // the id cell verbatim, authoritative for writes
	Time        time.Time
	InvalidTime bool   // the time cell did not parse; excluded from chronological views
	RawTime     string // the time cell verbatim, authoritative for writes
	Direction   Direction
	Timeframe   Timeframe
	TargetRR    decimal.NullDecimal // absent when the cell is empty
	ActualRR    decimal.NullDecimal
	Profit      Amount
	Outcome     Outcome
	Setup       string
	Screenshot  string
	Notes       string
}

// Equal reports whether two records are semantically identical.
func (r Record) Equal(o Record) bool {
	return r.RawID == o.RawID &&
		r.RawTime == o.RawTime &&
		r.InvalidTime == o.InvalidTime &&
		(r.InvalidTime || r.Time.Equal(o.Time)) &&
		r.Direction == o.Direction &&
		r.Timeframe == o.Timeframe &&
		nullEqual(r.TargetRR, o.TargetRR) &&
		nullEqual(r.ActualRR, o.ActualRR) &&
		r.Profit.Equal(o.Profit) &&
		r.Outcome == o.Outcome &&
		r.Setup == o.Setup &&
		r.Screenshot == o.Screenshot &&
		r.Notes == o.Notes
}

func nullEqual(a, b decimal.NullDecimal) bool {
	if a.Valid != b.Valid {
		return false
	}
	return !a.Valid || a.Decimal.Equal(b.Decimal)
}

// row materializes the record back into sheet cells, in Columns order.
func (r Record) row() []string {
	return []string{
		r.RawID,
		r.RawTime,
		string(r.Direction),
		string(r.Timeframe),
		nullText(r.TargetRR),
		nullText(r.ActualRR),
		r.Profit.text(),
		string(r.Outcome),
		r.Setup,
		r.Screenshot,
		r.Notes,
	}
}

func nullText(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.String()
}

// parseRecord coerces one non-blank sheet row into a Record. The row number
// is the 1-based sheet row, used only to label issues. Coercion never fails
// a row: malformed cells are flagged as issues and the raw text is kept.
func parseRecord(row int, cell func(name string) string) (Record, []ParseIssue) {
	var r Record
	var issues []ParseIssue
	warn := func(field, format string, args ...any) {
		issues = append(issues, ParseIssue{Row: row, Field: field, Msg: fmt.Sprintf(format, args...)})
	}

	r.RawID = strings.TrimSpace(cell("id"))
	if id, err := strconv.Atoi(r.RawID); err == nil {
		r.ID = id
	} else if r.RawID != "" {
		warn("id", "not numeric: %q", r.RawID)
	}

	r.RawTime = strings.TrimSpace(cell("time"))
	t, err := parseTime(r.RawTime)
	if err != nil {
		r.InvalidTime = true
		warn("time", "unparseable: %q", r.RawTime)
	} else {
		r.Time = t
	}

	if r.Direction, err = ParseDirection(cell("direction")); err != nil {
		warn("direction", "%v", err)
	}
	if r.Timeframe, err = ParseTimeframe(cell("timeframe")); err != nil {
		warn("timeframe", "%v", err)
	}

	coerce := func(field string) decimal.NullDecimal {
		s := strings.TrimSpace(cell(field))
		if s == "" {
			// An empty cell means "no data", which is distinct from a
			// recorded zero.
			return decimal.NullDecimal{}
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			warn(field, "not numeric: %q, using 0", s)
			return decimal.NullDecimal{Valid: true}
		}
		return decimal.NullDecimal{Decimal: d, Valid: true}
	}
	r.TargetRR = coerce("target_rr")
	r.ActualRR = coerce("actual_rr")
	r.Profit = amountOf(coerce("profit"))

	r.Outcome = parseOutcome(cell("outcome"))
	r.Setup = cell("setup")
	r.Screenshot = cell("screenshot_path")
	r.Notes = cell("notes")
	return r, issues
}

// parseTime parses a time cell against the accepted layouts.
func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty time cell")
	}
	var err error
	for _, layout := range readTimeFormats {
		var t time.Time
		if t, err = time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
