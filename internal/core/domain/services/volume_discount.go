package services

import (
	"sort"

	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/core/domain/model/quote"
	"shiprates/internal/pkg/errs"
)

// DiscountTier is one volume pricing bracket: shippers at or above the
// minimum monthly volume receive the tier's percentage off every quote.
type DiscountTier struct {
	Name             string
	MinMonthlyVolume int
	Percentage       float64
}

// IsZero reports whether this is the no-discount tier.
func (t DiscountTier) IsZero() bool {
	return t.Percentage == 0
}

// DefaultDiscountTiers returns the standard tier ladder.
func DefaultDiscountTiers() []DiscountTier {
	return []DiscountTier{
		{Name: "bronze", MinMonthlyVolume: 50, Percentage: 5},
		{Name: "silver", MinMonthlyVolume: 200, Percentage: 7},
		{Name: "gold", MinMonthlyVolume: 500, Percentage: 10},
		{Name: "platinum", MinMonthlyVolume: 1000, Percentage: 15},
	}
}

// VolumeDiscountEngine maps trailing monthly shipment volumes to discount
// tiers and applies tier discounts to quotes as pure transforms.
type VolumeDiscountEngine struct {
	tiers []DiscountTier // ascending by MinMonthlyVolume
}

// NewVolumeDiscountEngine creates an engine over the given tier ladder.
// Tiers must be monotonic: strictly increasing volume thresholds with
// non-decreasing percentages. A violated ladder is a configuration error.
func NewVolumeDiscountEngine(tiers []DiscountTier) (*VolumeDiscountEngine, error) {
	if len(tiers) == 0 {
		return nil, errs.NewValueIsRequiredError("discount tiers")
	}

	sorted := append([]DiscountTier(nil), tiers...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MinMonthlyVolume < sorted[j].MinMonthlyVolume
	})

	for i := 1; i < len(sorted); i++ {
		if sorted[i].MinMonthlyVolume <= sorted[i-1].MinMonthlyVolume {
			return nil, errs.NewValueIsInvalidError("discount tier volume thresholds")
		}
		if sorted[i].Percentage < sorted[i-1].Percentage {
			return nil, errs.NewValueIsInvalidError("discount tier percentages")
		}
	}

	return &VolumeDiscountEngine{tiers: sorted}, nil
}

// TierFor returns the highest tier whose threshold the volume meets, or the
// zero tier for volumes below every threshold.
func (e *VolumeDiscountEngine) TierFor(monthlyVolume int) DiscountTier {
	best := DiscountTier{Name: "none"}
	for _, tier := range e.tiers {
		if monthlyVolume >= tier.MinMonthlyVolume {
			best = tier
		}
	}
	return best
}

// NextTier returns the smallest tier strictly above the given volume, for
// upsell messaging. Returns nil when the volume already meets the top tier.
func (e *VolumeDiscountEngine) NextTier(monthlyVolume int) *DiscountTier {
	for _, tier := range e.tiers {
		if monthlyVolume < tier.MinMonthlyVolume {
			next := tier
			return &next
		}
	}
	return nil
}

// ApplyDiscount returns a new quote with the tier's percentage subtracted
// from the total, retaining the prior total and projecting monthly and
// annual savings at the supplied volume. The zero tier returns the quote
// unchanged.
func (e *VolumeDiscountEngine) ApplyDiscount(q quote.RateQuote, tier DiscountTier, monthlyVolume int) quote.RateQuote {
	if tier.IsZero() {
		return q
	}

	discount := q.Total().Percent(tier.Percentage)
	monthly := discount * kernel.Money(monthlyVolume)

	return q.WithDiscount(q.Total().Sub(discount), quote.DiscountDetails{
		TierName:       tier.Name,
		Percentage:     tier.Percentage,
		DiscountAmount: discount,
		MonthlySavings: monthly,
		AnnualSavings:  monthly * 12,
	})
}
