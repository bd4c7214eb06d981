// Package aggregate folds priced line items into a per-category
// breakdown and a grand total.
//
// Aggregation is re-derived on every call over the full line item list;
// expected list sizes are tens, not thousands, so there is no
// incremental model.
package aggregate

import (
	"github.com/shopspring/decimal"

	"contractor-quote/core/types"
)

// AdditionalCost is a quote-level contractor cost outside any line item
// (permits, disposal fees, site setup).
type AdditionalCost struct {
	// Label describes the cost
	Label string `json:"label,omitempty"`

	// ContractorCost is the amount added to the grand total
	ContractorCost decimal.Decimal `json:"contractor_cost"`
}

// Aggregate builds the per-category breakdown for a list of line items
// plus quote-level additional costs.
//
// A line item with a non-positive total cost is treated as
// not-yet-priced and skipped entirely: it contributes nothing to the
// grand total and its category does not appear on its account. How a
// category reports (labor/material split, labor only, lump sum) comes
// from the policy table; unknown categories report lump sums.
func Aggregate(items []types.LineItem, extras []AdditionalCost, policies types.PolicyTable) types.Breakdown {
	breakdown := types.Breakdown{
		Categories: make(map[string]types.CategorySubtotal),
	}

	for _, li := range items {
		if li.TotalCost.LessThanOrEqual(decimal.Zero) {
			continue
		}

		sub := breakdown.Categories[li.CategoryID]
		sub.TotalCost = sub.TotalCost.Add(li.TotalCost)

		switch policies.For(li.CategoryID).Aggregation {
		case types.ClassLaborMaterial:
			sub.LaborCost = sub.LaborCost.Add(li.LaborCost)
			sub.MaterialCost = sub.MaterialCost.Add(li.MaterialCost)
		case types.ClassLaborOnly:
			// Legacy items may lack an explicit split; fall back to
			// the item total as its labor cost.
			labor := li.LaborCost
			if !labor.IsPositive() {
				labor = li.TotalCost
			}
			sub.LaborCost = sub.LaborCost.Add(labor)
		case types.ClassLump:
			// Total only; the split is opaque to this system.
		}

		breakdown.Categories[li.CategoryID] = sub
		breakdown.GrandTotal = breakdown.GrandTotal.Add(li.TotalCost)
	}

	for _, extra := range extras {
		breakdown.GrandTotal = breakdown.GrandTotal.Add(extra.ContractorCost)
	}

	return breakdown
}
