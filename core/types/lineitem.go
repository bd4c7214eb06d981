// Package types - Quote output model
package types

import "github.com/shopspring/decimal"

// LineItem is one priced row of a quote. Immutable once produced;
// all aggregation folds over finished line items.
type LineItem struct {
	// ItemID links back to the catalog item
	ItemID string `json:"item_id"`

	// CategoryID tags the work category
	CategoryID string `json:"category_id"`

	// Description is a human-readable label
	Description string `json:"description,omitempty"`

	// Quantity is the billed quantity
	Quantity decimal.Decimal `json:"quantity"`

	// Unit is the measurement unit
	Unit string `json:"unit"`

	// MaterialCost is the contractor-side material cost
	MaterialCost decimal.Decimal `json:"material_cost"`

	// LaborCost is the contractor-side labor cost
	LaborCost decimal.Decimal `json:"labor_cost"`

	// AdditionalCost covers per-unit consumables
	AdditionalCost decimal.Decimal `json:"additional_cost"`

	// FixedCost is the quantity-independent cost share
	FixedCost decimal.Decimal `json:"fixed_cost"`

	// TotalCost is the full contractor-side cost
	TotalCost decimal.Decimal `json:"total_cost"`

	// UnitPrice is the customer price per unit, whole currency units
	UnitPrice decimal.Decimal `json:"unit_price"`

	// TotalPrice is the customer price, whole currency units
	TotalPrice decimal.Decimal `json:"total_price"`

	// Profit is TotalPrice - TotalCost (may be negative)
	Profit decimal.Decimal `json:"profit"`

	// ProfitPercent is the realized profit as a percent of cost
	ProfitPercent decimal.Decimal `json:"profit_percent"`

	// WorkDays is the billed or estimated work duration in days
	WorkDays decimal.Decimal `json:"work_days"`
}

// CategorySubtotal is the per-category slice of a breakdown.
// Which fields are populated depends on the category's aggregation class.
type CategorySubtotal struct {
	// LaborCost is the category labor subtotal
	LaborCost decimal.Decimal `json:"labor_cost"`

	// MaterialCost is the category material subtotal
	MaterialCost decimal.Decimal `json:"material_cost"`

	// TotalCost is the category total
	TotalCost decimal.Decimal `json:"total_cost"`
}

// Breakdown is the per-category view of a quote, re-derived on every
// aggregation call and never stored independently of its line items.
type Breakdown struct {
	// Categories maps category ID to its subtotal
	Categories map[string]CategorySubtotal `json:"categories"`

	// GrandTotal is the sum of line item costs plus additional
	// contractor costs
	GrandTotal decimal.Decimal `json:"grand_total"`
}
