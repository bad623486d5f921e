package tracker

import (
	"encoding/json"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when nothing else is configured.
const DefaultCurrency = "USD"

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// M creates money from a numeric value and a currency code.
func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// ParseAmount reads a currency string like "$1,234.50" into money.
//
// Currency symbols, thousand separators and spaces are stripped. Blank input is
// zero. ok is false when what remains is not a number, in which case the amount
// is zero.
func ParseAmount(s, currency string) (m Money, ok bool) {
	clean := strings.NewReplacer("$", "", ",", "", " ", "", "\u00a0", "").Replace(strings.TrimSpace(s))
	if clean == "" {
		return M(0, currency), true
	}
	v, err := decimal.NewFromString(clean)
	if err != nil {
		return M(0, currency), false
	}
	return M(v, currency), true
}

// String returns the string representation of the money value, e.g. "$1,234.56".
func (m Money) String() string {
	cur := money.GetCurrency(m.cur)
	if cur == nil {
		return m.value.StringFixed(2)
	}
	dec := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}

// Simple wrapper around decimal.Decimal

func (m Money) Currency() string             { return m.cur }
func (m Money) Equal(n Money) bool           { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                 { return m.value.IsZero() }
func (m Money) IsPositive() bool             { return m.value.IsPositive() }
func (m Money) IsNegative() bool             { return m.value.IsNegative() }
func (m Money) GreaterThan(n Money) bool     { return m.value.GreaterThan(n.value) }
func (m Money) Decimal() decimal.Decimal     { return m.value }
func (m Money) Div(n int64) Money            { return Money{value: m.value.Div(decimal.NewFromInt(n)), cur: m.cur} }
func (m Money) Ratio(n Money) float64        { return m.value.Div(n.value).InexactFloat64() }
func (m Money) Cmp(n Money) int              { return m.value.Cmp(n.value) }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch" + A.cur + "!=" + B.cur)
	}
	return A.cur
}

// AsFloat is for ratios and logarithms only, sums stay exact.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// Plain returns the amount without currency formatting, as persisted in CSV.
func (m Money) Plain() string { return m.value.String() }

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Currency string      `json:"currency,omitempty"`
		Amount   json.Number `json:"amount"`
	}{m.cur, json.Number(m.value.String())})
}
