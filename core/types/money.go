// Package types defines the data model shared by the pricing engine.
package types

import "github.com/shopspring/decimal"

// Currency represents a currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// RoundPrice rounds a customer-facing amount to the nearest whole
// currency unit. Prices are rounded only at the point of producing a
// line item, never inside intermediate cost math.
func RoundPrice(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(0)
}

// CeilPrice rounds an amount up to the next whole currency unit.
// Used where rounding must favor the contractor (recommended prices).
func CeilPrice(amount decimal.Decimal) decimal.Decimal {
	return amount.Ceil()
}

// percentDivisor converts percent values to fractions.
var percentDivisor = decimal.NewFromInt(100)

// PercentToFraction returns percent/100.
func PercentToFraction(percent decimal.Decimal) decimal.Decimal {
	return percent.Div(percentDivisor)
}

// OnePlusPercent returns 1 + percent/100.
func OnePlusPercent(percent decimal.Decimal) decimal.Decimal {
	return decimal.New(1, 0).Add(PercentToFraction(percent))
}

// FullPricePercent is the percent meaning "billed in full".
func FullPricePercent() decimal.Decimal {
	return percentDivisor
}
