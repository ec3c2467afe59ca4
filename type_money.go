package tracker

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// currency is the single currency all amounts are tracked in. Only its
// fraction (number of decimal digits) is used, for rounding and persistence.
var currency = money.GetCurrency(money.INR)

// currencyMarker is appended to every rendered amount.
const currencyMarker = "rs"

// Money represents a monetary value with exact decimal arithmetic.
type Money struct {
	value decimal.Decimal
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
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
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic(fmt.Sprintf("unsupported numeric type %T", value))
	}
}

// ParseAmount parses a user-supplied amount, rounded to the currency
// fraction so that in-memory amounts match what persistence stores. It
// rejects anything that does not parse as a decimal number, and negative
// values (amounts in this ledger are magnitudes, the book they belong to
// gives them their sign).
func ParseAmount(s string) (Money, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: not a number", s)
	}
	if v.IsNegative() {
		return Money{}, fmt.Errorf("invalid amount %q: must not be negative", s)
	}
	return Money{value: v}.Round(), nil
}

func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) }
func (m Money) IsZero() bool       { return m.value.IsZero() }
func (m Money) Add(n Money) Money  { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money  { return Money{value: m.value.Sub(n.value)} }

// Round rounds to the currency's fraction (2 digits for INR) using
// round-half-up (ties round away from zero): 2.345 rounds to 2.35.
func (m Money) Round() Money {
	return Money{value: m.value.Round(int32(currency.Fraction))}
}

// String renders the amount rounded to the currency fraction, with thousands
// separators and the currency marker: 1234567.5 renders as "1,234,567.50rs".
func (m Money) String() string {
	s := m.value.Round(int32(currency.Fraction)).StringFixed(int32(currency.Fraction))
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	b.WriteString(currencyMarker)
	return b.String()
}

// MarshalJSON persists the amount as a bare JSON number, rounded to the
// currency fraction.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.value.Round(int32(currency.Fraction)).String()), nil
}

// UnmarshalJSON accepts a JSON number, or a quoted number for robustness.
// The value is rounded to the currency fraction, so legacy amounts with
// extra digits read back at the same scale new amounts are written at.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	v, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("invalid amount %s: %w", data, err)
	}
	m.value = v.Round(int32(currency.Fraction))
	return nil
}
