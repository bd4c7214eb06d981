package costing

import (
	"testing"

	"github.com/shopspring/decimal"

	"contractor-quote/core/types"
	apperrors "contractor-quote/internal/errors"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func perDayItem() *types.CatalogItem {
	return &types.CatalogItem{
		ID:                  "paint-wall",
		CategoryID:          types.CategoryPainting,
		LaborCostingMode:    types.LaborPerDayOutput,
		MaterialCostPerUnit: d("5"),
		DailyOutput:         d("10"),
		LaborCostPerDay:     d("1000"),
	}
}

// A partial work day is always billed as a full day.
func TestComputePerDayRounding(t *testing.T) {
	cost, err := Compute(perDayItem(), d("10.5"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !cost.WorkDays.Equal(d("2")) {
		t.Errorf("expected 2 billed days, got %s", cost.WorkDays)
	}
	if !cost.LaborCost.Equal(d("2000")) {
		t.Errorf("expected labor cost 2000, got %s", cost.LaborCost)
	}
}

func TestComputeWastage(t *testing.T) {
	item := perDayItem()
	item.WastagePercent = d("10")

	cost, err := Compute(item, d("100"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !cost.QuantityWithWastage.Equal(d("110")) {
		t.Errorf("expected effective quantity 110, got %s", cost.QuantityWithWastage)
	}
	if !cost.MaterialCost.Equal(d("550")) {
		t.Errorf("expected material cost 550, got %s", cost.MaterialCost)
	}
}

func TestComputePerUnitRate(t *testing.T) {
	item := &types.CatalogItem{
		ID:                  "tile-floor",
		LaborCostingMode:    types.LaborPerUnitRate,
		MaterialCostPerUnit: d("20"),
		LaborCostPerUnit:    d("15"),
		DailyOutput:         d("8"),
	}

	cost, err := Compute(item, d("40"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !cost.LaborCost.Equal(d("600")) {
		t.Errorf("expected labor cost 600, got %s", cost.LaborCost)
	}
	// Work days are informational under per-unit rate: 40/8 = 5, not
	// rounded.
	if !cost.WorkDays.Equal(d("5")) {
		t.Errorf("expected 5 work days, got %s", cost.WorkDays)
	}
}

func TestComputePerUnitRateWithoutDailyOutput(t *testing.T) {
	item := &types.CatalogItem{
		LaborCostingMode: types.LaborPerUnitRate,
		LaborCostPerUnit: d("15"),
	}

	cost, err := Compute(item, d("40"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cost.WorkDays.IsZero() {
		t.Errorf("expected zero work days without daily output, got %s", cost.WorkDays)
	}
}

func TestComputeTotalsTogether(t *testing.T) {
	item := perDayItem()
	item.AdditionalCostPerUnit = d("1")
	item.FixedCost = d("200")

	cost, err := Compute(item, d("10"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// material 50 + labor 1000 + additional 10 + fixed 200
	if !cost.TotalCost.Equal(d("1260")) {
		t.Errorf("expected total cost 1260, got %s", cost.TotalCost)
	}
}

// Zero or negative quantity and nil items yield zero-valued results,
// never an error, so empty forms aggregate safely.
func TestComputeZeroQuantity(t *testing.T) {
	tests := []struct {
		name     string
		item     *types.CatalogItem
		quantity decimal.Decimal
	}{
		{"zero quantity", perDayItem(), decimal.Zero},
		{"negative quantity", perDayItem(), d("-5")},
		{"nil item", nil, d("10")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cost, err := Compute(tt.item, tt.quantity)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !cost.IsZero() {
				t.Errorf("expected zero breakdown, got total %s", cost.TotalCost)
			}
		})
	}
}

func TestComputeInvalidDailyOutput(t *testing.T) {
	item := perDayItem()
	item.DailyOutput = decimal.Zero

	_, err := Compute(item, d("10"))
	if err == nil {
		t.Fatal("expected error for zero daily output under per-day mode")
	}
	if !apperrors.IsType(err, apperrors.TypeCosting) {
		t.Errorf("expected costing error, got %v", err)
	}
}
