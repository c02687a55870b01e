package flexpay

import (
	"github.com/shopspring/decimal"
)

// Amount is a money value in minor currency units, 1000 is $10.00 in USD.
// It is sent and received as a bare JSON number.
type Amount struct {
	decimal.Decimal
}

// NewAmount creates an Amount from minor units
func NewAmount(minor int64) Amount {
	return Amount{Decimal: decimal.NewFromInt(minor)}
}

// AmountFromMajor converts a major unit value using the currency exponent,
// AmountFromMajor(decimal.RequireFromString("10.00"), 2) is 1000.
func AmountFromMajor(major decimal.Decimal, exponent int32) Amount {
	return Amount{Decimal: major.Shift(exponent).Round(0)}
}

// MinorUnits returns the integer amount
func (a Amount) MinorUnits() int64 {
	return a.IntPart()
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	return a.Decimal.UnmarshalJSON(data)
}
