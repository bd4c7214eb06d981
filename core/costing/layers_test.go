package costing

import (
	"testing"

	"github.com/shopspring/decimal"

	"contractor-quote/core/types"
)

func layeredItem() *types.CatalogItem {
	return &types.CatalogItem{
		ID:                  "paint-coat",
		CategoryID:          types.CategoryPainting,
		MaterialCostPerUnit: d("40"), // per bucket
		Coverage:            d("10"), // one bucket covers 10 units
		DailyOutput:         d("50"),
		LaborCostPerDay:     d("1200"),
	}
}

func dp(v string) *decimal.Decimal {
	val := decimal.RequireFromString(v)
	return &val
}

// Two coats, second coat covers less per bucket:
// 100/10 + 100/8 = 22.5 buckets, purchased whole = 23.
func TestComputeLayeredAccumulation(t *testing.T) {
	plan := LayerPlan{
		LayerCount: 2,
		Overrides: []types.LayerOverride{
			{},
			{Coverage: dp("8")},
		},
		RoundUpPurchase: true,
	}

	cost := ComputeLayered(layeredItem(), d("100"), plan)

	if !cost.UnitsToPurchase.Equal(d("23")) {
		t.Errorf("expected 23 purchased units, got %s", cost.UnitsToPurchase)
	}
	if !cost.MaterialCost.Equal(d("920")) {
		t.Errorf("expected material cost 920, got %s", cost.MaterialCost)
	}
}

func TestComputeLayeredFractionalPurchase(t *testing.T) {
	plan := LayerPlan{
		LayerCount: 2,
		Overrides: []types.LayerOverride{
			{},
			{Coverage: dp("8")},
		},
	}

	cost := ComputeLayered(layeredItem(), d("100"), plan)

	if !cost.UnitsToPurchase.Equal(d("22.5")) {
		t.Errorf("expected 22.5 units without rounding, got %s", cost.UnitsToPurchase)
	}
	if !cost.MaterialCost.Equal(d("900")) {
		t.Errorf("expected material cost 900, got %s", cost.MaterialCost)
	}
}

func TestComputeLayeredWorkDays(t *testing.T) {
	plan := LayerPlan{
		LayerCount: 2,
		Overrides: []types.LayerOverride{
			{},
			{DailyOutput: dp("40")},
		},
	}

	cost := ComputeLayered(layeredItem(), d("100"), plan)

	// 100/50 + 100/40 = 4.5 raw days, billed as 5
	if !cost.WorkDays.Equal(d("5")) {
		t.Errorf("expected 5 billed days, got %s", cost.WorkDays)
	}
	if !cost.LaborCost.Equal(d("6000")) {
		t.Errorf("expected labor cost 6000, got %s", cost.LaborCost)
	}
}

// A layer without a usable rate contributes nothing instead of
// failing the whole calculation.
func TestComputeLayeredSkipsUnconfiguredLayers(t *testing.T) {
	item := layeredItem()
	plan := LayerPlan{
		LayerCount: 3,
		Overrides: []types.LayerOverride{
			{},
			{Coverage: dp("0"), DailyOutput: dp("0")},
			{},
		},
	}

	cost := ComputeLayered(item, d("100"), plan)

	// Only layers 1 and 3 contribute: 2 * 100/10 = 20 buckets
	if !cost.UnitsToPurchase.Equal(d("20")) {
		t.Errorf("expected 20 units with dead layer skipped, got %s", cost.UnitsToPurchase)
	}
}

func TestPriceScale(t *testing.T) {
	tests := []struct {
		name string
		plan LayerPlan
		want string
	}{
		{
			name: "no overrides bill in full",
			plan: LayerPlan{LayerCount: 2},
			want: "1",
		},
		{
			name: "second coat at half price",
			plan: LayerPlan{
				LayerCount: 2,
				Overrides:  []types.LayerOverride{{}, {PricePercentOfBase: dp("50")}},
			},
			want: "0.75",
		},
		{
			name: "zero layers is identity",
			plan: LayerPlan{},
			want: "1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.plan.PriceScale(); !got.Equal(d(tt.want)) {
				t.Errorf("expected scale %s, got %s", tt.want, got)
			}
		})
	}
}

func TestComputeLayeredEmptyInput(t *testing.T) {
	if got := ComputeLayered(nil, d("100"), LayerPlan{LayerCount: 2}); !got.IsZero() {
		t.Errorf("expected zero breakdown for nil item, got %s", got.TotalCost)
	}
	if got := ComputeLayered(layeredItem(), decimal.Zero, LayerPlan{LayerCount: 2}); !got.IsZero() {
		t.Errorf("expected zero breakdown for zero quantity, got %s", got.TotalCost)
	}
	if got := ComputeLayered(layeredItem(), d("100"), LayerPlan{}); !got.IsZero() {
		t.Errorf("expected zero breakdown for zero layers, got %s", got.TotalCost)
	}
}
