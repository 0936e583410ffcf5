// pkg/money/money.go

// Package money holds the rounding and display rules shared by every
// monetary value on an invoice.
package money

import "github.com/shopspring/decimal"

// Places is the number of fractional digits kept for prices and totals.
const Places = 1

// Currency is printed right after every amount, without a space.
const Currency = "€"

// Round1 rounds x to one fractional digit, ties away from zero.
func Round1(x decimal.Decimal) decimal.Decimal {
	return x.Round(Places)
}

// Format prints x with exactly one fractional digit and no currency glyph.
func Format(x decimal.Decimal) string {
	return x.StringFixed(Places)
}

// FormatWithCurrency prints x like Format followed by the euro glyph.
func FormatWithCurrency(x decimal.Decimal) string {
	return Format(x) + Currency
}
