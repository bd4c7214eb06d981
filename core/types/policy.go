// Package types - Category policy table
//
// Category-specific behavior (pricing formula, complexity basis,
// aggregation class) is resolved once from a closed table and passed
// explicitly into the engine, never inferred from category strings
// inside cost math.
package types

// PricingFormula selects how a customer price is derived from cost
type PricingFormula string

const (
	// FormulaMarkup prices as cost * (1 + profit%/100)
	FormulaMarkup PricingFormula = "markup"

	// FormulaMargin prices as cost / (1 - profit%/100); the profit
	// percent is a fraction of price, not of cost
	FormulaMargin PricingFormula = "margin"
)

// ComplexityBasis selects how a complexity level adjusts a price
type ComplexityBasis string

const (
	// BasisUnitPrice multiplies the computed price by the level factor
	BasisUnitPrice ComplexityBasis = "unit_price"

	// BasisLaborCost adds a percentage of labor cost to the price
	BasisLaborCost ComplexityBasis = "labor_cost"
)

// AggregationClass selects how a category reports in the breakdown
type AggregationClass string

const (
	// ClassLaborMaterial reports labor and material subtotals
	ClassLaborMaterial AggregationClass = "labor_material"

	// ClassLaborOnly reports a labor subtotal only
	ClassLaborOnly AggregationClass = "labor_only"

	// ClassLump reports only the category total; the split is opaque
	// (subcontracted work)
	ClassLump AggregationClass = "lump"
)

// CategoryPolicy bundles the per-category behavior switches
type CategoryPolicy struct {
	// Formula is the pricing formula for the category
	Formula PricingFormula `json:"formula"`

	// ComplexityBasis is how complexity adjusts prices
	ComplexityBasis ComplexityBasis `json:"complexity_basis"`

	// Aggregation is the breakdown reporting class
	Aggregation AggregationClass `json:"aggregation"`
}

// PolicyTable resolves category IDs to their policy
type PolicyTable map[string]CategoryPolicy

// DefaultPolicy is applied to category IDs absent from the table:
// lump-sum reporting, markup pricing, price-factor complexity.
func DefaultPolicy() CategoryPolicy {
	return CategoryPolicy{
		Formula:         FormulaMarkup,
		ComplexityBasis: BasisUnitPrice,
		Aggregation:     ClassLump,
	}
}

// For resolves the policy for a category ID
func (t PolicyTable) For(categoryID string) CategoryPolicy {
	if p, ok := t[categoryID]; ok {
		return p
	}
	return DefaultPolicy()
}

// Standard category IDs
const (
	CategoryPainting    = "painting"
	CategoryTiling      = "tiling"
	CategoryFlooring    = "flooring"
	CategoryCarpentry   = "carpentry"
	CategoryElectrical  = "electrical"
	CategoryPlumbing    = "plumbing"
	CategoryDemolition  = "demolition"
	CategorySubcontract = "subcontract"
)

// StandardPolicies returns the closed policy table for the standard
// category set. Painting and tiling price per area with a separate
// labor/material split and surcharge-style complexity; carpentry is the
// one category priced with the margin formula.
func StandardPolicies() PolicyTable {
	return PolicyTable{
		CategoryPainting: {
			Formula:         FormulaMarkup,
			ComplexityBasis: BasisLaborCost,
			Aggregation:     ClassLaborMaterial,
		},
		CategoryTiling: {
			Formula:         FormulaMarkup,
			ComplexityBasis: BasisLaborCost,
			Aggregation:     ClassLaborMaterial,
		},
		CategoryFlooring: {
			Formula:         FormulaMarkup,
			ComplexityBasis: BasisUnitPrice,
			Aggregation:     ClassLaborMaterial,
		},
		CategoryCarpentry: {
			Formula:         FormulaMargin,
			ComplexityBasis: BasisUnitPrice,
			Aggregation:     ClassLaborMaterial,
		},
		CategoryElectrical: {
			Formula:         FormulaMarkup,
			ComplexityBasis: BasisUnitPrice,
			Aggregation:     ClassLaborOnly,
		},
		CategoryPlumbing: {
			Formula:         FormulaMarkup,
			ComplexityBasis: BasisUnitPrice,
			Aggregation:     ClassLaborOnly,
		},
		CategoryDemolition: {
			Formula:         FormulaMarkup,
			ComplexityBasis: BasisUnitPrice,
			Aggregation:     ClassLaborOnly,
		},
		CategorySubcontract: {
			Formula:         FormulaMarkup,
			ComplexityBasis: BasisUnitPrice,
			Aggregation:     ClassLump,
		},
	}
}
