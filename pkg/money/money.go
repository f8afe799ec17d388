// Package money formats monetary amounts and percentages for reports.
//
// Currency rendering goes through an English-locale printer from
// golang.org/x/text so large amounts pick up thousands separators:
//
//	money.FormatCurrency(1234.56) // "$1,234.56"
//	money.FormatPercentage(42.5)  // "42.50%"
//
// Both functions reject NaN and infinities; everything else renders with
// two-decimal precision.
package money

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ErrNotFinite is returned for NaN or infinite input
var ErrNotFinite = errors.New("amount must be a finite number")

var printer = message.NewPrinter(language.English)

// FormatCurrency renders an amount as a dollar string with two-decimal
// precision and thousands separators.
func FormatCurrency(amount float64) (string, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "", ErrNotFinite
	}
	return printer.Sprintf("$%v", number.Decimal(amount, number.Scale(2))), nil
}

// FormatPercentage renders a value as a percentage string with two-decimal
// precision. The value is already a percentage; no scaling is applied.
func FormatPercentage(value float64) (string, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "", ErrNotFinite
	}
	return fmt.Sprintf("%.2f%%", value), nil
}
