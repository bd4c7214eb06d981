// Package pricing turns contractor costs into customer prices.
//
// Two price formulas are live across categories and both are kept as an
// explicit caller-selected policy rather than silently unified: markup
// (profit as a percent of cost) and margin (profit as a fraction of
// price). Unifying them would change real customer-facing prices.
package pricing

import (
	"github.com/shopspring/decimal"

	"contractor-quote/core/types"
)

// PricedResult is the outcome of a pricing call. Amounts are exact;
// rounding to whole currency units happens only when a line item is
// produced.
type PricedResult struct {
	// CustomerPrice is the price charged to the customer
	CustomerPrice decimal.Decimal `json:"customer_price"`

	// Profit is CustomerPrice - TotalCost
	Profit decimal.Decimal `json:"profit"`

	// ProfitPercent is realized profit as a percent of cost
	// (0 when cost is not positive)
	ProfitPercent decimal.Decimal `json:"profit_percent"`
}

var (
	hundred = decimal.NewFromInt(100)
	two     = decimal.NewFromInt(2)
)

// Price derives a customer price from a total cost and a target profit
// percent under the selected formula.
//
// Markup: price = cost * (1 + profit%/100).
// Margin: price = cost / (1 - profit%/100); a profit percent at or
// above 100 falls back to price = cost * 2 to avoid the division
// blowing up.
func Price(totalCost, profitPercent decimal.Decimal, formula types.PricingFormula) PricedResult {
	var price decimal.Decimal
	switch formula {
	case types.FormulaMargin:
		if profitPercent.GreaterThanOrEqual(hundred) {
			price = totalCost.Mul(two)
		} else {
			price = totalCost.Div(decimal.New(1, 0).Sub(types.PercentToFraction(profitPercent)))
		}
	default:
		price = totalCost.Mul(types.OnePlusPercent(profitPercent))
	}

	return resultFor(price, totalCost)
}

// ResultFor recomputes profit figures for a price that was adjusted
// after the formula ran (complexity, manual override).
func ResultFor(price, totalCost decimal.Decimal) PricedResult {
	return resultFor(price, totalCost)
}

func resultFor(price, totalCost decimal.Decimal) PricedResult {
	profit := price.Sub(totalCost)
	profitPercent := decimal.Zero
	if totalCost.IsPositive() {
		profitPercent = profit.Div(totalCost).Mul(hundred)
	}
	return PricedResult{
		CustomerPrice: price,
		Profit:        profit,
		ProfitPercent: profitPercent,
	}
}
