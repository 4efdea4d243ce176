// Package calc derives the display values of the dashboard from stored data.
//
// All functions are pure. Divisions check their divisor and yield zero
// instead of a non-finite result.
package calc

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Value returns the decimal of an optional value, zero when it is absent.
func Value(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}

	return d.Decimal
}

// percentage returns part/whole*100 rounded to two places, zero for a
// whole that is not positive.
func percentage(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}

	return part.Div(whole).Mul(hundred).Round(2)
}
