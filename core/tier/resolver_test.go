package tier

import (
	"testing"

	"github.com/shopspring/decimal"

	"contractor-quote/core/types"
	apperrors "contractor-quote/internal/errors"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func tiers(pairs ...string) []types.PriceTier {
	var out []types.PriceTier
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, types.PriceTier{
			MinQuantity: d(pairs[i]),
			UnitPrice:   d(pairs[i+1]),
		})
	}
	return out
}

func TestResolveEmptyTiers(t *testing.T) {
	_, err := Resolve(nil, d("10"))
	if err == nil {
		t.Fatal("expected error for empty tier table")
	}
	if !apperrors.IsType(err, apperrors.TypeTier) {
		t.Errorf("expected tier error, got %v", err)
	}
}

// A quantity below every threshold resolves to the lowest tier, not an
// error. Callers rely on always getting a price once tiers exist.
func TestResolveFallbackToLowestTier(t *testing.T) {
	// Intentionally unsorted input
	table := tiers("50", "100", "20", "80")

	res, err := Resolve(table, d("10"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.UnitPrice.Equal(d("80")) {
		t.Errorf("expected fallback unit price 80, got %s", res.UnitPrice)
	}
	if !res.MinQuantity.Equal(d("20")) {
		t.Errorf("expected fallback threshold 20, got %s", res.MinQuantity)
	}
}

func TestResolveSelection(t *testing.T) {
	table := tiers("0", "100", "50", "80", "100", "60")

	tests := []struct {
		name     string
		quantity string
		want     string
	}{
		{"below second threshold", "25", "100"},
		{"at second threshold", "50", "80"},
		{"between second and third", "75", "80"},
		{"at third threshold", "100", "60"},
		{"above all thresholds", "500", "60"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Resolve(table, d(tt.quantity))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !res.UnitPrice.Equal(d(tt.want)) {
				t.Errorf("quantity %s: expected unit price %s, got %s", tt.quantity, tt.want, res.UnitPrice)
			}
		})
	}
}

// Duplicate thresholds: the last matching tier in input order wins.
func TestResolveDuplicateThresholds(t *testing.T) {
	table := tiers("10", "90", "10", "85")

	res, err := Resolve(table, d("15"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.UnitPrice.Equal(d("85")) {
		t.Errorf("expected last duplicate tier to win (85), got %s", res.UnitPrice)
	}
}

func TestResolveDoesNotMutateInput(t *testing.T) {
	table := tiers("50", "100", "20", "80")

	if _, err := Resolve(table, d("60")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !table[0].MinQuantity.Equal(d("50")) || !table[1].MinQuantity.Equal(d("20")) {
		t.Error("input tier slice was reordered")
	}
}
