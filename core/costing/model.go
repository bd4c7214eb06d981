// Package costing computes contractor-side costs for catalog items.
//
// All functions are pure: a cost is a function of the item, the
// quantity, and explicit modifiers. Missing input (nil item, zero or
// negative quantity) yields a zero-valued breakdown rather than an
// error so that half-filled forms aggregate safely; a malformed item
// configuration yields a typed error.
package costing

import (
	"github.com/shopspring/decimal"

	"contractor-quote/core/types"
	apperrors "contractor-quote/internal/errors"
)

// Breakdown is the contractor-side cost of one line of work
type Breakdown struct {
	// MaterialCost includes wastage
	MaterialCost decimal.Decimal `json:"material_cost"`

	// LaborCost is billed labor
	LaborCost decimal.Decimal `json:"labor_cost"`

	// AdditionalCost covers per-unit consumables
	AdditionalCost decimal.Decimal `json:"additional_cost"`

	// FixedCost is the quantity-independent share
	FixedCost decimal.Decimal `json:"fixed_cost"`

	// TotalCost is the sum of all cost components
	TotalCost decimal.Decimal `json:"total_cost"`

	// QuantityWithWastage is the effective quantity after wastage
	QuantityWithWastage decimal.Decimal `json:"quantity_with_wastage"`

	// WorkDays is billed days under per_day_output, informational
	// fractional days under per_unit_rate
	WorkDays decimal.Decimal `json:"work_days"`

	// UnitsToPurchase is the material purchase quantity (layered work)
	UnitsToPurchase decimal.Decimal `json:"units_to_purchase,omitempty"`
}

// IsZero reports whether the breakdown carries no cost at all
func (b Breakdown) IsZero() bool {
	return b.TotalCost.IsZero()
}

// Compute calculates the cost breakdown for one catalog item at a
// given quantity.
//
// The effective quantity is quantity * (1 + wastage%/100). Under
// per_day_output mode, work days are always rounded up: a partial day
// is billed as a full day. That is a business rule, not display
// rounding.
func Compute(item *types.CatalogItem, quantity decimal.Decimal) (Breakdown, error) {
	if item == nil || quantity.LessThanOrEqual(decimal.Zero) {
		return Breakdown{}, nil
	}

	qty := quantity.Mul(types.OnePlusPercent(item.WastagePercent))

	materialCost := qty.Mul(item.MaterialCostPerUnit)
	additionalCost := qty.Mul(item.AdditionalCostPerUnit)

	var laborCost, workDays decimal.Decimal
	switch item.LaborCostingMode {
	case types.LaborPerUnitRate:
		laborCost = qty.Mul(item.LaborCostPerUnit)
		if item.DailyOutput.IsPositive() {
			workDays = qty.Div(item.DailyOutput)
		}
	default:
		// per_day_output is the historical default mode
		if !item.DailyOutput.IsPositive() {
			return Breakdown{}, apperrors.Costing("daily output must be positive under per-day labor costing").
				WithContext("item_id", item.ID).
				WithContext("daily_output", item.DailyOutput.String())
		}
		workDays = qty.Div(item.DailyOutput).Ceil()
		laborCost = workDays.Mul(item.LaborCostPerDay)
	}

	totalCost := materialCost.Add(laborCost).Add(additionalCost).Add(item.FixedCost)

	return Breakdown{
		MaterialCost:        materialCost,
		LaborCost:           laborCost,
		AdditionalCost:      additionalCost,
		FixedCost:           item.FixedCost,
		TotalCost:           totalCost,
		QuantityWithWastage: qty,
		WorkDays:            workDays,
	}, nil
}
