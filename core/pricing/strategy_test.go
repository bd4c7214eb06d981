package pricing

import (
	"testing"

	"github.com/shopspring/decimal"

	"contractor-quote/core/types"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

// Recomputing profit/cost*100 from a markup result reproduces the
// input percent exactly for integral inputs.
func TestMarkupRoundTrip(t *testing.T) {
	res := Price(d("1000"), d("30"), types.FormulaMarkup)

	if !res.CustomerPrice.Equal(d("1300")) {
		t.Errorf("expected price 1300, got %s", res.CustomerPrice)
	}
	if !res.Profit.Equal(d("300")) {
		t.Errorf("expected profit 300, got %s", res.Profit)
	}
	if !res.ProfitPercent.Equal(d("30")) {
		t.Errorf("expected profit percent 30, got %s", res.ProfitPercent)
	}
}

// The two formulas genuinely diverge; merging them silently would
// change customer prices.
func TestMarginVsMarkupDivergence(t *testing.T) {
	markup := Price(d("1000"), d("30"), types.FormulaMarkup)
	margin := Price(d("1000"), d("30"), types.FormulaMargin)

	if markup.CustomerPrice.Equal(margin.CustomerPrice) {
		t.Fatal("markup and margin must not produce the same price")
	}

	// 1000 / 0.7 = 1428.571...
	diff := margin.CustomerPrice.Sub(d("1428.5714285714285714")).Abs()
	if diff.GreaterThan(d("0.0001")) {
		t.Errorf("expected margin price ~1428.57, got %s", margin.CustomerPrice)
	}
}

// A margin percent at or above 100 falls back to doubling cost
// instead of dividing by zero or a negative number.
func TestMarginHighPercentFallback(t *testing.T) {
	for _, pct := range []string{"100", "150"} {
		res := Price(d("1000"), d(pct), types.FormulaMargin)
		if !res.CustomerPrice.Equal(d("2000")) {
			t.Errorf("percent %s: expected fallback price 2000, got %s", pct, res.CustomerPrice)
		}
	}
}

func TestPriceZeroCost(t *testing.T) {
	res := Price(decimal.Zero, d("30"), types.FormulaMarkup)

	if !res.CustomerPrice.IsZero() {
		t.Errorf("expected zero price for zero cost, got %s", res.CustomerPrice)
	}
	if !res.ProfitPercent.IsZero() {
		t.Errorf("expected zero profit percent for zero cost, got %s", res.ProfitPercent)
	}
}

func TestResultForNegativeProfit(t *testing.T) {
	res := ResultFor(d("900"), d("1000"))

	if !res.Profit.Equal(d("-100")) {
		t.Errorf("expected profit -100, got %s", res.Profit)
	}
	if !res.ProfitPercent.Equal(d("-10")) {
		t.Errorf("expected profit percent -10, got %s", res.ProfitPercent)
	}
}
