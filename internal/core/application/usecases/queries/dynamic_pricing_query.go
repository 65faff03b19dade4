package queries

import (
	"errors"

	"shiprates/internal/core/domain/model/shipment"
	"shiprates/internal/core/domain/services"
	"shiprates/internal/pkg/errs"
	"shiprates/internal/pkg/guard"
)

// ErrDynamicPricingQueryIsNotConstructed is returned when validating a query
// that was not created via NewDynamicPricingQuery.
var ErrDynamicPricingQueryIsNotConstructed = errors.New(
	"DynamicPricingQuery must be created via NewDynamicPricingQuery constructor",
)

// DynamicPricingQuery requests surge-adjusted quotes: a full aggregation pass
// with the dynamic pricing transform applied to every quote.
type DynamicPricingQuery struct { //nolint:recvcheck //using for validation
	request shipment.RateRequest
	pricing services.PricingContext

	guard guard.ConstructorGuard
}

// NewDynamicPricingQuery creates a surge pricing query. Demand and seasonal
// factors must not be negative; zero means neutral.
func NewDynamicPricingQuery(
	request shipment.RateRequest,
	pricing services.PricingContext,
) (DynamicPricingQuery, error) {
	if err := request.Validate(); err != nil {
		return DynamicPricingQuery{}, err
	}
	if pricing.DemandFactor < 0 {
		return DynamicPricingQuery{}, errs.NewValueIsInvalidError("demandFactor")
	}
	if pricing.SeasonalFactor < 0 {
		return DynamicPricingQuery{}, errs.NewValueIsInvalidError("seasonalFactor")
	}
	if pricing.Hour != nil && (*pricing.Hour < 0 || *pricing.Hour > 23) {
		return DynamicPricingQuery{}, errs.NewValueIsOutOfRangeError("hour", *pricing.Hour, 0, 23)
	}

	return DynamicPricingQuery{
		request: request,
		pricing: pricing,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q DynamicPricingQuery) Validate() error {
	return q.guard.Validate(ErrDynamicPricingQueryIsNotConstructed)
}

// Request returns the underlying rate request.
func (q DynamicPricingQuery) Request() shipment.RateRequest {
	return q.request
}

// Pricing returns the dynamic pricing inputs.
func (q DynamicPricingQuery) Pricing() services.PricingContext {
	return q.pricing
}

// DynamicPricingView is the surge-adjusted aggregation read model.
type DynamicPricingView struct {
	Aggregation    AggregationView
	FestivalPeriod bool
}
