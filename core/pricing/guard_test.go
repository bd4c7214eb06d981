package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCheckProfitTriggers(t *testing.T) {
	res := CheckProfit(d("1100"), d("1000"), d("30"))
	if res == nil {
		t.Fatal("expected a guard result")
	}

	if !res.CurrentProfitPercent.Equal(d("10")) {
		t.Errorf("expected current profit 10%%, got %s", res.CurrentProfitPercent)
	}
	if !res.NeedsAdjustment {
		t.Error("expected adjustment to be needed")
	}
	if !res.RecommendedPrice.Equal(d("1300")) {
		t.Errorf("expected recommended price 1300, got %s", res.RecommendedPrice)
	}
}

// The recommended price rounds up to the next whole currency unit,
// favoring the contractor.
func TestCheckProfitRecommendationRoundsUp(t *testing.T) {
	res := CheckProfit(d("1000"), d("995"), d("25"))
	if res == nil {
		t.Fatal("expected a guard result")
	}

	// 995 * 1.25 = 1243.75 -> 1244
	if !res.RecommendedPrice.Equal(d("1244")) {
		t.Errorf("expected recommended price 1244, got %s", res.RecommendedPrice)
	}
}

func TestCheckProfitMet(t *testing.T) {
	res := CheckProfit(d("1400"), d("1000"), d("30"))
	if res == nil {
		t.Fatal("expected a guard result")
	}

	if res.NeedsAdjustment {
		t.Error("expected no adjustment at 40% profit against a 30% floor")
	}
	if !res.RecommendedPrice.IsZero() {
		t.Errorf("expected no recommendation, got %s", res.RecommendedPrice)
	}
}

// A profit percentage cannot be evaluated against zero or negative
// cost.
func TestCheckProfitUnevaluable(t *testing.T) {
	if res := CheckProfit(d("1000"), decimal.Zero, d("30")); res != nil {
		t.Errorf("expected nil result for zero cost, got %+v", res)
	}
	if res := CheckProfit(d("1000"), d("-50"), d("30")); res != nil {
		t.Errorf("expected nil result for negative cost, got %+v", res)
	}
}
