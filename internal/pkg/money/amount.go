package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a monetary value that never rejects malformed input.
// Numbers, numeric strings, null, and garbage all decode; anything
// unparsable becomes zero. Monetary totals must stay stable in the
// face of sloppy client payloads, so decoding an Amount cannot fail.
type Amount struct {
	decimal.Decimal
}

func Zero() Amount {
	return Amount{decimal.Zero}
}

func FromDecimal(d decimal.Decimal) Amount {
	return Amount{d}
}

func FromInt(n int64) Amount {
	return Amount{decimal.NewFromInt(n)}
}

// UnmarshalJSON implements coerce-or-zero decoding.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		a.Decimal = decimal.Zero
		return nil
	}
	s = strings.Trim(s, `"`)
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		a.Decimal = decimal.Zero
		return nil
	}
	a.Decimal = d
	return nil
}

// MarshalJSON renders a bare JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}
