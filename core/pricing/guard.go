// Package pricing - Profit floor guard
package pricing

import (
	"github.com/shopspring/decimal"

	"contractor-quote/core/types"
)

// GuardResult reports whether a quote's realized profit meets the
// configured floor. The caller owns the accept/keep/cancel workflow
// around it; all three outcomes are valid terminal states.
type GuardResult struct {
	// CurrentProfitPercent is the realized profit percent
	CurrentProfitPercent decimal.Decimal `json:"current_profit_percent"`

	// NeedsAdjustment is true when the floor is not met
	NeedsAdjustment bool `json:"needs_adjustment"`

	// RecommendedPrice is the smallest whole-unit price meeting the
	// floor; set only when adjustment is needed. Rounded up, favoring
	// the contractor.
	RecommendedPrice decimal.Decimal `json:"recommended_price,omitempty"`
}

// CheckProfit evaluates an aggregate (price, cost) pair against a
// minimum profit percent. Returns nil when cost is not positive, since
// a profit percentage cannot be evaluated.
func CheckProfit(totalPrice, totalCost, minimumProfitPercent decimal.Decimal) *GuardResult {
	if totalCost.LessThanOrEqual(decimal.Zero) {
		return nil
	}

	current := totalPrice.Sub(totalCost).Div(totalCost).Mul(hundred)
	result := &GuardResult{
		CurrentProfitPercent: current,
		NeedsAdjustment:      current.LessThan(minimumProfitPercent),
	}
	if result.NeedsAdjustment {
		result.RecommendedPrice = types.CeilPrice(totalCost.Mul(types.OnePlusPercent(minimumProfitPercent)))
	}
	return result
}
