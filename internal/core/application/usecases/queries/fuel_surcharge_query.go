package queries

import (
	"errors"

	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/pkg/errs"
	"shiprates/internal/pkg/guard"
)

// ErrFuelSurchargeQueryIsNotConstructed is returned when validating a query
// that was not created via NewFuelSurchargeQuery.
var ErrFuelSurchargeQueryIsNotConstructed = errors.New(
	"FuelSurchargeQuery must be created via NewFuelSurchargeQuery constructor",
)

// FuelSurchargeQuery requests the fuel surcharge breakdown for a hypothetical
// base cost and distance, without a courier context.
type FuelSurchargeQuery struct {
	baseCost   kernel.Money
	distanceKm float64

	guard guard.ConstructorGuard
}

// NewFuelSurchargeQuery creates a fuel surcharge query. Base cost must be
// strictly positive and distance must not be negative.
func NewFuelSurchargeQuery(baseCost kernel.Money, distanceKm float64) (FuelSurchargeQuery, error) {
	if baseCost <= 0 {
		return FuelSurchargeQuery{}, errs.NewValueIsInvalidError("baseCost")
	}
	if distanceKm < 0 {
		return FuelSurchargeQuery{}, errs.NewValueIsInvalidError("distanceKm")
	}

	return FuelSurchargeQuery{
		baseCost:   baseCost,
		distanceKm: distanceKm,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q FuelSurchargeQuery) Validate() error {
	return q.guard.Validate(ErrFuelSurchargeQueryIsNotConstructed)
}

// BaseCost returns the hypothetical base cost.
func (q FuelSurchargeQuery) BaseCost() kernel.Money {
	return q.baseCost
}

// DistanceKm returns the shipment distance in kilometers.
func (q FuelSurchargeQuery) DistanceKm() float64 {
	return q.distanceKm
}

// FuelSurchargeView is the fuel surcharge breakdown read model.
type FuelSurchargeView struct {
	BaseCost        int64
	DistanceKm      float64
	DistanceCharges int64
	Surcharge       int64
	Total           int64
	RatePercent     float64
	Currency        string
}
