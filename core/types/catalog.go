// Package types - Catalog item model
package types

import "github.com/shopspring/decimal"

// LaborCostingMode selects how labor cost is derived for an item
type LaborCostingMode string

const (
	// LaborPerDayOutput bills whole work days from a daily output rate.
	// A partial day is always billed as a full day.
	LaborPerDayOutput LaborCostingMode = "per_day_output"

	// LaborPerUnitRate bills labor per unit of work
	LaborPerUnitRate LaborCostingMode = "per_unit_rate"
)

// PriceTier is a quantity breakpoint past which a different unit price applies
type PriceTier struct {
	// MinQuantity is the quantity threshold for this tier
	MinQuantity decimal.Decimal `json:"min_quantity"`

	// UnitPrice is the customer unit price at or above the threshold
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// LayerOverride overrides base item rates for one pass of multi-pass work
// (a paint coat, a tiling area). Absent fields fall back to the item's
// base values.
type LayerOverride struct {
	// Coverage is the quantity one material unit covers on this layer
	Coverage *decimal.Decimal `json:"coverage,omitempty"`

	// DailyOutput is the crew output on this layer
	DailyOutput *decimal.Decimal `json:"daily_output,omitempty"`

	// PricePercentOfBase scales the layer's share of the base price
	PricePercentOfBase *decimal.Decimal `json:"price_percent_of_base,omitempty"`
}

// CatalogItem is a priceable unit of work
type CatalogItem struct {
	// ID uniquely identifies the item
	ID string `json:"id"`

	// CategoryID tags the item with its work category
	CategoryID string `json:"category_id"`

	// Name is a human-readable label
	Name string `json:"name"`

	// Unit is the measurement unit (e.g. "m2", "m", "pcs")
	Unit string `json:"unit"`

	// MaterialCostPerUnit is the contractor's material cost per unit
	MaterialCostPerUnit decimal.Decimal `json:"material_cost_per_unit"`

	// LaborCostingMode selects the labor costing formula
	LaborCostingMode LaborCostingMode `json:"labor_costing_mode"`

	// DailyOutput is units of work completed per day.
	// Required (and must be positive) under per_day_output.
	DailyOutput decimal.Decimal `json:"daily_output"`

	// LaborCostPerDay is the crew cost per work day
	LaborCostPerDay decimal.Decimal `json:"labor_cost_per_day"`

	// LaborCostPerUnit is the labor cost per unit under per_unit_rate
	LaborCostPerUnit decimal.Decimal `json:"labor_cost_per_unit"`

	// AdditionalCostPerUnit covers consumables billed per unit
	AdditionalCostPerUnit decimal.Decimal `json:"additional_cost_per_unit"`

	// FixedCost is a one-off cost independent of quantity
	FixedCost decimal.Decimal `json:"fixed_cost"`

	// WastagePercent inflates the effective quantity (>= 0)
	WastagePercent decimal.Decimal `json:"wastage_percent"`

	// DesiredProfitPercent is the target profit for this item
	DesiredProfitPercent decimal.Decimal `json:"desired_profit_percent"`

	// Coverage is the base quantity one material unit covers
	// (layered work only)
	Coverage decimal.Decimal `json:"coverage,omitempty"`

	// PriceTiers optionally prices the item from a quantity tier table
	PriceTiers []PriceTier `json:"price_tiers,omitempty"`

	// Layers optionally configures per-layer rate overrides
	Layers []LayerOverride `json:"layers,omitempty"`
}
