// Package costing - Multi-pass (layered) cost accumulation
package costing

import (
	"github.com/shopspring/decimal"

	"contractor-quote/core/types"
)

// LayerPlan configures multi-pass work: paint coats, successive tiling
// areas sharing one base item.
type LayerPlan struct {
	// LayerCount is the number of passes
	LayerCount int `json:"layer_count"`

	// Overrides supplies per-layer rates; missing entries or fields
	// fall back to the item's base coverage and daily output
	Overrides []types.LayerOverride `json:"overrides,omitempty"`

	// RoundUpPurchase buys whole material units (full buckets)
	RoundUpPurchase bool `json:"round_up_purchase"`
}

// PriceScale returns the price-side multiplier the plan applies to a
// layered customer price. Each layer owns an equal share of the base
// price; a layer billed at pricePercentOfBase scales its share, and an
// absent percent bills the share in full. All layers at 100% yield a
// scale of exactly 1.
func (p LayerPlan) PriceScale() decimal.Decimal {
	if p.LayerCount <= 0 {
		return decimal.New(1, 0)
	}

	var pctSum decimal.Decimal
	for i := 0; i < p.LayerCount; i++ {
		pct := types.FullPricePercent()
		if i < len(p.Overrides) && p.Overrides[i].PricePercentOfBase != nil {
			pct = *p.Overrides[i].PricePercentOfBase
		}
		pctSum = pctSum.Add(pct)
	}

	return types.PercentToFraction(pctSum).Div(decimal.NewFromInt(int64(p.LayerCount)))
}

// ComputeLayered accumulates material and labor needs across the
// passes of a layer plan.
//
// Each layer contributes quantity/coverage material units and
// quantity/dailyOutput raw work days. A layer whose effective coverage
// or output is not positive is skipped rather than failing the whole
// calculation: an unconfigured layer contributes nothing. Work days are
// rounded up across the accumulated total, and material units are
// rounded up only when the plan requests whole-unit purchasing.
func ComputeLayered(item *types.CatalogItem, quantity decimal.Decimal, plan LayerPlan) Breakdown {
	if item == nil || quantity.LessThanOrEqual(decimal.Zero) || plan.LayerCount <= 0 {
		return Breakdown{}
	}

	var unitsNeeded, workDaysRaw decimal.Decimal
	for i := 0; i < plan.LayerCount; i++ {
		coverage := item.Coverage
		dailyOutput := item.DailyOutput
		if i < len(plan.Overrides) {
			if o := plan.Overrides[i].Coverage; o != nil {
				coverage = *o
			}
			if o := plan.Overrides[i].DailyOutput; o != nil {
				dailyOutput = *o
			}
		}

		if coverage.IsPositive() {
			unitsNeeded = unitsNeeded.Add(quantity.Div(coverage))
		}
		if dailyOutput.IsPositive() {
			workDaysRaw = workDaysRaw.Add(quantity.Div(dailyOutput))
		}
	}

	unitsToPurchase := unitsNeeded
	if plan.RoundUpPurchase {
		unitsToPurchase = unitsNeeded.Ceil()
	}
	materialCost := unitsToPurchase.Mul(item.MaterialCostPerUnit)

	workDays := workDaysRaw.Ceil()
	laborCost := workDays.Mul(item.LaborCostPerDay)

	totalCost := materialCost.Add(laborCost).Add(item.FixedCost)

	return Breakdown{
		MaterialCost:        materialCost,
		LaborCost:           laborCost,
		FixedCost:           item.FixedCost,
		TotalCost:           totalCost,
		QuantityWithWastage: quantity,
		WorkDays:            workDays,
		UnitsToPurchase:     unitsToPurchase,
	}
}
