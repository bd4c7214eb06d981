package complexity

import (
	"testing"

	"github.com/shopspring/decimal"

	"contractor-quote/core/types"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestApplyFactor(t *testing.T) {
	levels := types.StandardComplexityLevels()

	tests := []struct {
		level string
		want  string
	}{
		{types.ComplexitySimple, "1000"},
		{types.ComplexityStandard, "1150"},
		{types.ComplexityComplex, "1300"},
		{types.ComplexityVeryComplex, "1500"},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			got := ApplyFactor(d("1000"), levels[tt.level])
			if !got.Equal(d(tt.want)) {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestLaborSurcharge(t *testing.T) {
	level := types.StandardComplexityLevels()[types.ComplexityComplex]

	got := LaborSurcharge(d("2000"), level)
	if !got.Equal(d("600")) {
		t.Errorf("expected surcharge 600 (30%% of 2000), got %s", got)
	}
}

// The two variants diverge for the same inputs; the basis must be an
// explicit policy parameter, never guessed from the item.
func TestAdjustBasisDivergence(t *testing.T) {
	level := types.StandardComplexityLevels()[types.ComplexityComplex]
	price := d("5000")
	labor := d("2000")

	onPrice := Adjust(price, labor, level, types.BasisUnitPrice)
	onLabor := Adjust(price, labor, level, types.BasisLaborCost)

	if !onPrice.Equal(d("6500")) {
		t.Errorf("expected factor-adjusted price 6500, got %s", onPrice)
	}
	if !onLabor.Equal(d("5600")) {
		t.Errorf("expected surcharge-adjusted price 5600, got %s", onLabor)
	}
	if onPrice.Equal(onLabor) {
		t.Error("bases must not produce identical prices for these inputs")
	}
}

func TestAdjustZeroFactorLeavesPrice(t *testing.T) {
	got := Adjust(d("5000"), d("2000"), types.ComplexityLevel{}, types.BasisUnitPrice)
	if !got.Equal(d("5000")) {
		t.Errorf("expected unadjusted price for zero-valued level, got %s", got)
	}
}
