package journal

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// journalCurrency is the currency every profit cell is denominated in.
const journalCurrency = "USD"

// Amount is a monetary value in the journal's currency.
//
// The zero Amount is "absent": a profit cell that was never filled in, which
// is distinct from a recorded zero. Arithmetic treats absent as zero so that
// running totals over hand-edited sheets never fail.
type Amount struct {
	value decimal.Decimal
	valid bool
}

// USD builds a valid Amount from a numeric value.
func USD[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value), valid: true}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case decimal.Decimal:
		return v
	}
	return decimal.Zero
}

// amountOf converts a coerced sheet cell into an Amount.
func amountOf(d decimal.NullDecimal) Amount {
	return Amount{value: d.Decimal, valid: d.Valid}
}

// Valid reports whether the amount was actually recorded.
func (a Amount) Valid() bool { return a.valid }

// Decimal returns the exact value, zero when absent.
func (a Amount) Decimal() decimal.Decimal { return a.value }

func (a Amount) IsZero() bool     { return a.value.IsZero() }
func (a Amount) IsPositive() bool { return a.value.IsPositive() }
func (a Amount) IsNegative() bool { return a.value.IsNegative() }

// Add returns a+b. The result is valid as soon as either operand is, so a
// running total over a sheet with gaps stays meaningful.
func (a Amount) Add(b Amount) Amount {
	return Amount{value: a.value.Add(b.value), valid: a.valid || b.valid}
}

func (a Amount) Neg() Amount { return Amount{value: a.value.Neg(), valid: a.valid} }

// Equal reports whether two amounts carry the same value and presence.
func (a Amount) Equal(b Amount) bool {
	return a.valid == b.valid && a.value.Equal(b.value)
}

// currency returns the full currency definition for formatting.
func (a Amount) currency() money.Currency {
	// the Money constructor is the only way to get a never-nil currency.
	return *money.New(0, journalCurrency).Currency()
}

// String formats the amount with the currency formatter, e.g. "$1,234.50".
// An absent amount formats as "-".
func (a Amount) String() string {
	if !a.valid {
		return "-"
	}
	cur := a.currency()
	dec := a.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString is like String but with an explicit sign on gains.
func (a Amount) SignedString() string {
	if a.valid && a.value.IsPositive() {
		return "+" + a.String()
	}
	return a.String()
}

// InexactFloat64 returns a float approximation, for chart scaling only.
func (a Amount) InexactFloat64() float64 { return a.value.InexactFloat64() }

// text returns the sheet cell representation: the plain decimal value, or an
// empty cell when absent.
func (a Amount) text() string {
	if !a.valid {
		return ""
	}
	return a.value.String()
}
