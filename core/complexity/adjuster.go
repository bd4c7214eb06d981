// Package complexity applies difficulty adjustments to prices.
//
// Two live adjustment variants exist and both are kept deliberately:
// a multiplicative factor on the computed price, and a percentage
// surcharge on labor cost added to the price. Which variant applies is
// a per-category policy passed in by the caller, never inferred from
// the item; picking the wrong variant for a category changes customer
// prices.
package complexity

import (
	"github.com/shopspring/decimal"

	"contractor-quote/core/types"
)

// ApplyFactor multiplies an amount by the level's factor
func ApplyFactor(amount decimal.Decimal, level types.ComplexityLevel) decimal.Decimal {
	if level.Factor.IsZero() {
		return amount
	}
	return amount.Mul(level.Factor)
}

// LaborSurcharge returns the surcharge the level adds on top of a
// price: laborCost * surcharge%/100
func LaborSurcharge(laborCost decimal.Decimal, level types.ComplexityLevel) decimal.Decimal {
	return laborCost.Mul(types.PercentToFraction(level.LaborSurchargePercent))
}

// Adjust applies the level to a computed customer price under the
// given basis. laborCost is consulted only for the labor-cost basis.
func Adjust(price, laborCost decimal.Decimal, level types.ComplexityLevel, basis types.ComplexityBasis) decimal.Decimal {
	switch basis {
	case types.BasisLaborCost:
		return price.Add(LaborSurcharge(laborCost, level))
	default:
		return ApplyFactor(price, level)
	}
}
