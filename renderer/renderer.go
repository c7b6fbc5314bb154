// Package renderer turns ledger data into markdown reports for the terminal.
//
// The ledger stores plain decimals; every function here takes the display
// currency and formats amounts through expense.Money.
package renderer

import (
	"github.com/shopspring/decimal"

	"github.com/etnz/expense"
)

var hundred = decimal.NewFromInt(100)

// amount formats a decimal in the display currency.
func amount(v decimal.Decimal, currency string) string {
	return expense.M(v, currency).String()
}

// signed formats a decimal with an explicit sign, "-" when zero.
func signed(v decimal.Decimal, currency string) string {
	return expense.M(v, currency).SignedString()
}
