package queries

import (
	"context"

	"shiprates/internal/core/domain/services"
)

// VolumeDiscountsQueryHandler aggregates with the volume discount transform
// enabled and reports the shipper's tier ladder position.
type VolumeDiscountsQueryHandler struct {
	aggregator *services.RateAggregator
	discounts  *services.VolumeDiscountEngine
}

// NewVolumeDiscountsQueryHandler creates a handler over the aggregator and
// discount engine.
func NewVolumeDiscountsQueryHandler(
	aggregator *services.RateAggregator,
	discounts *services.VolumeDiscountEngine,
) VolumeDiscountsQueryHandler {
	return VolumeDiscountsQueryHandler{
		aggregator: aggregator,
		discounts:  discounts,
	}
}

// Handle aggregates with the discount applied to every quote.
func (h VolumeDiscountsQueryHandler) Handle(
	ctx context.Context,
	query VolumeDiscountsQuery,
) (VolumeDiscountsView, error) {
	if err := query.Validate(); err != nil {
		return VolumeDiscountsView{}, err
	}

	result, err := h.aggregator.Aggregate(ctx, query.Request(), services.AdjustmentOptions{
		MonthlyVolume: query.MonthlyVolume(),
	})
	if err != nil {
		return VolumeDiscountsView{}, err
	}

	tier := h.discounts.TierFor(query.MonthlyVolume())
	view := VolumeDiscountsView{
		Aggregation:   newAggregationView(result),
		MonthlyVolume: query.MonthlyVolume(),
		CurrentTier: TierView{
			Name:             tier.Name,
			MinMonthlyVolume: tier.MinMonthlyVolume,
			Percentage:       tier.Percentage,
		},
	}

	if next := h.discounts.NextTier(query.MonthlyVolume()); next != nil {
		view.NextTier = &TierView{
			Name:             next.Name,
			MinMonthlyVolume: next.MinMonthlyVolume,
			Percentage:       next.Percentage,
		}
	}

	return view, nil
}
