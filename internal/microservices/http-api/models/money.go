package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money columns are numeric(12,2).
const AmountScale = 2

// MaxAmount is the first value a numeric(12,2) column cannot hold.
var MaxAmount = decimal.New(1, 10)

// CheckAmount reports whether d fits a money column without rounding.
func CheckAmount(field string, d decimal.Decimal) error {
	if !d.Equal(d.Round(AmountScale)) {
		return fmt.Errorf("%s must have at most %d decimal places", field, AmountScale)
	}
	if d.Abs().GreaterThanOrEqual(MaxAmount) {
		return fmt.Errorf("%s must be less than %s", field, MaxAmount.String())
	}
	return nil
}
