package queries

import (
	"context"

	"shiprates/internal/core/domain/services"
)

// CalculateRatesQueryHandler runs one aggregation pass without optional
// adjustments. Dynamic pricing and volume discounts have their own queries.
type CalculateRatesQueryHandler struct {
	aggregator *services.RateAggregator
}

// NewCalculateRatesQueryHandler creates a handler over the rate aggregator.
func NewCalculateRatesQueryHandler(aggregator *services.RateAggregator) CalculateRatesQueryHandler {
	return CalculateRatesQueryHandler{aggregator: aggregator}
}

// Handle executes the aggregation and maps the result to the read model.
// An empty quote set is not an error; the view carries the diagnostic reason.
func (h CalculateRatesQueryHandler) Handle(
	ctx context.Context,
	query CalculateRatesQuery,
) (AggregationView, error) {
	if err := query.Validate(); err != nil {
		return AggregationView{}, err
	}

	result, err := h.aggregator.Aggregate(ctx, query.Request(), services.AdjustmentOptions{})
	if err != nil {
		return AggregationView{}, err
	}

	return newAggregationView(result), nil
}
