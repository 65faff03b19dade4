package queries

import (
	"context"

	"shiprates/internal/core/domain/services"
)

// DynamicPricingQueryHandler aggregates with the surge transform enabled.
type DynamicPricingQueryHandler struct {
	aggregator *services.RateAggregator
	adjuster   *services.DynamicPricingAdjuster
}

// NewDynamicPricingQueryHandler creates a handler over the aggregator and
// adjuster. The adjuster is consulted directly for the festival flag.
func NewDynamicPricingQueryHandler(
	aggregator *services.RateAggregator,
	adjuster *services.DynamicPricingAdjuster,
) DynamicPricingQueryHandler {
	return DynamicPricingQueryHandler{
		aggregator: aggregator,
		adjuster:   adjuster,
	}
}

// Handle aggregates with dynamic pricing applied to every quote.
func (h DynamicPricingQueryHandler) Handle(
	ctx context.Context,
	query DynamicPricingQuery,
) (DynamicPricingView, error) {
	if err := query.Validate(); err != nil {
		return DynamicPricingView{}, err
	}

	pricing := query.Pricing()
	result, err := h.aggregator.Aggregate(ctx, query.Request(), services.AdjustmentOptions{
		Pricing: &pricing,
	})
	if err != nil {
		return DynamicPricingView{}, err
	}

	festival := h.adjuster.IsFestivalPeriod()
	if pricing.Festival != nil {
		festival = *pricing.Festival
	}

	return DynamicPricingView{
		Aggregation:    newAggregationView(result),
		FestivalPeriod: festival,
	}, nil
}
