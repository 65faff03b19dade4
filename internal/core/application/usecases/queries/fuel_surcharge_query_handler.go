package queries

import (
	"context"

	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/core/domain/services"
)

// FuelSurchargeQueryHandler computes fuel surcharge breakdowns using the
// engine's pricing constants. Pure computation, no collaborators.
type FuelSurchargeQueryHandler struct{}

// NewFuelSurchargeQueryHandler creates a fuel surcharge handler.
func NewFuelSurchargeQueryHandler() FuelSurchargeQueryHandler {
	return FuelSurchargeQueryHandler{}
}

// Handle computes the surcharge breakdown for the hypothetical shipment leg.
func (h FuelSurchargeQueryHandler) Handle(_ context.Context, query FuelSurchargeQuery) (FuelSurchargeView, error) {
	if err := query.Validate(); err != nil {
		return FuelSurchargeView{}, err
	}

	breakdown := services.EstimateFuelSurcharge(query.BaseCost(), query.DistanceKm())

	return FuelSurchargeView{
		BaseCost:        int64(breakdown.BaseCost),
		DistanceKm:      query.DistanceKm(),
		DistanceCharges: int64(breakdown.DistanceCharges),
		Surcharge:       int64(breakdown.Surcharge),
		Total:           int64(breakdown.Total),
		RatePercent:     breakdown.Rate * 100,
		Currency:        kernel.CurrencyBDT,
	}, nil
}
