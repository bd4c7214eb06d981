// Package quote orchestrates per-item pricing and quote assembly.
//
// The pricer resolves each category's policy (pricing formula,
// complexity basis, aggregation class) once from a closed table and
// drives the cost model, complexity adjuster, and pricing strategy with
// explicit parameters. No category string branching happens below this
// layer.
package quote

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"contractor-quote/core/aggregate"
	"contractor-quote/core/complexity"
	"contractor-quote/core/costing"
	"contractor-quote/core/pricing"
	"contractor-quote/core/tier"
	"contractor-quote/core/types"
)

// ItemRequest prices one catalog item at a quantity with modifiers
type ItemRequest struct {
	// Item is the catalog item to price
	Item types.CatalogItem `json:"item"`

	// Quantity is the requested quantity
	Quantity decimal.Decimal `json:"quantity"`

	// Complexity is a complexity level ID; empty means simple
	Complexity string `json:"complexity,omitempty"`

	// Layers configures multi-pass work; nil means single-pass
	Layers *costing.LayerPlan `json:"layers,omitempty"`
}

// Request prices a whole quote
type Request struct {
	// Items are the line item requests
	Items []ItemRequest `json:"items"`

	// AdditionalCosts are quote-level contractor costs
	AdditionalCosts []aggregate.AdditionalCost `json:"additional_costs,omitempty"`

	// MinimumProfitPercent is the profit floor for the guard
	MinimumProfitPercent decimal.Decimal `json:"minimum_profit_percent"`
}

// Result is a fully priced quote
type Result struct {
	// ID uniquely identifies this pricing run
	ID string `json:"id"`

	// LineItems are the priced rows, one per request item.
	// An item that could not be priced appears as a zero-valued row.
	LineItems []types.LineItem `json:"line_items"`

	// Breakdown is the per-category cost view
	Breakdown types.Breakdown `json:"breakdown"`

	// TotalCost is the contractor-side total across line items
	TotalCost decimal.Decimal `json:"total_cost"`

	// TotalPrice is the customer total across line items
	TotalPrice decimal.Decimal `json:"total_price"`

	// Guard is the profit floor check over the quote totals;
	// nil when it cannot be evaluated
	Guard *pricing.GuardResult `json:"guard,omitempty"`

	// Warnings lists items that were priced as zero/pending
	Warnings []string `json:"warnings,omitempty"`
}

// Pricer prices items and quotes under a fixed policy and level table
type Pricer struct {
	policies      types.PolicyTable
	levels        map[string]types.ComplexityLevel
	defaultProfit decimal.Decimal
}

// NewPricer creates a pricer with explicit policy and complexity tables
func NewPricer(policies types.PolicyTable, levels map[string]types.ComplexityLevel) *Pricer {
	return &Pricer{policies: policies, levels: levels}
}

// WithDefaultProfit sets the profit percent applied to items that
// carry no profit target of their own
func (p *Pricer) WithDefaultProfit(percent decimal.Decimal) *Pricer {
	p.defaultProfit = percent
	return p
}

// NewStandardPricer creates a pricer with the standard category and
// complexity tables
func NewStandardPricer() *Pricer {
	return NewPricer(types.StandardPolicies(), types.StandardComplexityLevels())
}

// PriceItem produces one line item.
//
// Flow: cost model (single or layered) -> pricing formula or tier
// table -> complexity adjustment -> rounded line item. A zero or
// negative quantity yields a zero line item and no error; a malformed
// item configuration yields a zero line item and a typed error.
func (p *Pricer) PriceItem(req ItemRequest) (types.LineItem, error) {
	item := req.Item
	policy := p.policies.For(item.CategoryID)
	level := p.levelFor(req.Complexity)

	li := types.LineItem{
		ItemID:      item.ID,
		CategoryID:  item.CategoryID,
		Description: item.Name,
		Quantity:    req.Quantity,
		Unit:        item.Unit,
	}

	var cost costing.Breakdown
	if req.Layers != nil {
		cost = costing.ComputeLayered(&item, req.Quantity, *req.Layers)
	} else {
		var err error
		cost, err = costing.Compute(&item, req.Quantity)
		if err != nil {
			return li, err
		}
	}

	li.MaterialCost = cost.MaterialCost
	li.LaborCost = cost.LaborCost
	li.AdditionalCost = cost.AdditionalCost
	li.FixedCost = cost.FixedCost
	li.TotalCost = cost.TotalCost
	li.WorkDays = cost.WorkDays

	if req.Quantity.LessThanOrEqual(decimal.Zero) {
		return li, nil
	}

	// Base customer price: tier table when the item has one, otherwise
	// the category's pricing formula over cost.
	var basePrice decimal.Decimal
	if len(item.PriceTiers) > 0 {
		resolution, err := tier.Resolve(item.PriceTiers, req.Quantity)
		if err != nil {
			return li, err
		}
		basePrice = resolution.UnitPrice.Mul(req.Quantity)
	} else {
		profitTarget := item.DesiredProfitPercent
		if profitTarget.IsZero() {
			profitTarget = p.defaultProfit
		}
		basePrice = pricing.Price(cost.TotalCost, profitTarget, policy.Formula).CustomerPrice
	}

	// Layers billed below 100% of base scale the price, never the cost.
	if req.Layers != nil {
		basePrice = basePrice.Mul(req.Layers.PriceScale())
	}

	adjusted := complexity.Adjust(basePrice, cost.LaborCost, level, policy.ComplexityBasis)

	// Round only here, at line item creation, to avoid compounding
	// rounding error across quantity multiplication.
	li.TotalPrice = types.RoundPrice(adjusted)
	li.UnitPrice = types.RoundPrice(adjusted.Div(req.Quantity))

	priced := pricing.ResultFor(li.TotalPrice, li.TotalCost)
	li.Profit = priced.Profit
	li.ProfitPercent = priced.ProfitPercent

	return li, nil
}

// PriceQuote prices every item, aggregates the breakdown, and runs the
// profit guard over the quote totals.
//
// A malformed item never aborts the quote: it is reported as a warning
// and carried as a zero line item, which aggregation then skips.
func (p *Pricer) PriceQuote(req Request) *Result {
	result := &Result{
		ID:        uuid.NewString(),
		LineItems: make([]types.LineItem, 0, len(req.Items)),
	}

	for _, ir := range req.Items {
		li, err := p.PriceItem(ir)
		if err != nil {
			result.Warnings = append(result.Warnings, err.Error())
		}
		result.LineItems = append(result.LineItems, li)
		result.TotalCost = result.TotalCost.Add(li.TotalCost)
		result.TotalPrice = result.TotalPrice.Add(li.TotalPrice)
	}

	result.Breakdown = aggregate.Aggregate(result.LineItems, req.AdditionalCosts, p.policies)
	result.Guard = pricing.CheckProfit(result.TotalPrice, result.Breakdown.GrandTotal, req.MinimumProfitPercent)

	return result
}

func (p *Pricer) levelFor(id string) types.ComplexityLevel {
	if id == "" {
		return types.NoComplexity()
	}
	if level, ok := p.levels[id]; ok {
		return level
	}
	return types.NoComplexity()
}
