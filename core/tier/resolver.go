// Package tier resolves quantity-tiered unit prices.
//
// A tier table maps quantity breakpoints to unit prices. Resolution
// tolerates unsorted and overlapping input: tiers are sorted
// defensively by threshold and the last tier whose threshold is at or
// below the quantity wins.
package tier

import (
	"sort"

	"github.com/shopspring/decimal"

	"contractor-quote/core/types"
	apperrors "contractor-quote/internal/errors"
)

// ErrNoTiers is returned when resolution is attempted against an empty
// tier table.
var ErrNoTiers = apperrors.Tier("no price tiers available")

// Resolution is the outcome of a tier lookup
type Resolution struct {
	// UnitPrice is the resolved customer unit price
	UnitPrice decimal.Decimal `json:"unit_price"`

	// MinQuantity is the threshold of the selected tier
	MinQuantity decimal.Decimal `json:"min_quantity"`

	// Tier is the selected tier
	Tier types.PriceTier `json:"tier"`
}

// Resolve selects the unit price applicable to quantity.
//
// Tiers are copied and sorted ascending by threshold; the input is
// never mutated. Selection walks the sorted tiers and keeps the last
// tier whose threshold is <= quantity. A quantity below every threshold
// resolves to the lowest tier rather than failing: callers rely on
// always getting a price once a tier table exists.
func Resolve(tiers []types.PriceTier, quantity decimal.Decimal) (Resolution, error) {
	if len(tiers) == 0 {
		return Resolution{}, ErrNoTiers
	}

	sorted := make([]types.PriceTier, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MinQuantity.LessThan(sorted[j].MinQuantity)
	})

	// Fallback to the lowest tier when quantity is below all thresholds.
	selected := sorted[0]
	for _, t := range sorted {
		if t.MinQuantity.LessThanOrEqual(quantity) {
			selected = t
		}
	}

	return Resolution{
		UnitPrice:   selected.UnitPrice,
		MinQuantity: selected.MinQuantity,
		Tier:        selected,
	}, nil
}
