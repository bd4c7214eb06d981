// Package types - Complexity level table
package types

import "github.com/shopspring/decimal"

// ComplexityLevel is a named difficulty modifier. It carries both a
// multiplicative factor and a labor surcharge percent; which one applies
// is a per-category policy, not a property of the level itself.
type ComplexityLevel struct {
	// ID identifies the level
	ID string `json:"id"`

	// Label is a human-readable name
	Label string `json:"label"`

	// Factor multiplies a computed price (1.0 .. 1.5 in the standard table)
	Factor decimal.Decimal `json:"factor"`

	// LaborSurchargePercent adds a percentage of labor cost to the price
	LaborSurchargePercent decimal.Decimal `json:"labor_surcharge_percent"`
}

// Standard complexity level IDs
const (
	ComplexitySimple      = "simple"
	ComplexityStandard    = "standard"
	ComplexityComplex     = "complex"
	ComplexityVeryComplex = "very_complex"
)

// StandardComplexityLevels returns the immutable standard level table.
// Callers receive a fresh map on every call; the engine never keeps a
// mutable copy.
func StandardComplexityLevels() map[string]ComplexityLevel {
	return map[string]ComplexityLevel{
		ComplexitySimple: {
			ID:                    ComplexitySimple,
			Label:                 "Simple",
			Factor:                decimal.NewFromFloat(1.0),
			LaborSurchargePercent: decimal.NewFromInt(0),
		},
		ComplexityStandard: {
			ID:                    ComplexityStandard,
			Label:                 "Standard",
			Factor:                decimal.NewFromFloat(1.15),
			LaborSurchargePercent: decimal.NewFromInt(15),
		},
		ComplexityComplex: {
			ID:                    ComplexityComplex,
			Label:                 "Complex",
			Factor:                decimal.NewFromFloat(1.3),
			LaborSurchargePercent: decimal.NewFromInt(30),
		},
		ComplexityVeryComplex: {
			ID:                    ComplexityVeryComplex,
			Label:                 "Very complex",
			Factor:                decimal.NewFromFloat(1.5),
			LaborSurchargePercent: decimal.NewFromInt(50),
		},
	}
}

// NoComplexity is the neutral level applied when no selection was made.
func NoComplexity() ComplexityLevel {
	return ComplexityLevel{
		ID:                    ComplexitySimple,
		Label:                 "Simple",
		Factor:                decimal.NewFromFloat(1.0),
		LaborSurchargePercent: decimal.NewFromInt(0),
	}
}
