package services

import (
	"context"

	"shiprates/internal/core/domain/model/quote"

	"github.com/zoobzio/pipz"
)

// AdjustmentOptions selects the optional quote transforms applied during
// aggregation. A nil Pricing skips dynamic pricing; a non-positive
// MonthlyVolume skips volume discounts.
type AdjustmentOptions struct {
	Pricing       *PricingContext
	MonthlyVolume int
}

// IsEmpty reports whether no transform is enabled.
func (o AdjustmentOptions) IsEmpty() bool {
	return o.Pricing == nil && o.MonthlyVolume <= 0
}

// NewAdjustmentPipeline composes the enabled quote transforms into a pipz
// sequence. Each stage is a pure RateQuote -> RateQuote transform carrying
// the predecessor's total, so the pipeline is an explicit, auditable
// composition instead of in-place mutation: dynamic pricing first, then the
// volume discount on the surged total.
func NewAdjustmentPipeline(
	adjuster *DynamicPricingAdjuster,
	discounts *VolumeDiscountEngine,
	opts AdjustmentOptions,
) *pipz.Sequence[quote.RateQuote] {
	seq := pipz.NewSequence[quote.RateQuote]("rate-adjustments")

	if opts.Pricing != nil {
		pricing := *opts.Pricing
		seq.Register(pipz.Transform("dynamic-pricing",
			func(_ context.Context, q quote.RateQuote) quote.RateQuote {
				return adjuster.Adjust(q, pricing)
			}))
	}

	if opts.MonthlyVolume > 0 {
		tier := discounts.TierFor(opts.MonthlyVolume)
		volume := opts.MonthlyVolume
		seq.Register(pipz.Transform("volume-discount",
			func(_ context.Context, q quote.RateQuote) quote.RateQuote {
				return discounts.ApplyDiscount(q, tier, volume)
			}))
	}

	return seq
}
