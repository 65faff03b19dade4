package queries

import (
	"errors"

	"shiprates/internal/core/domain/model/courier"
	"shiprates/internal/core/domain/model/geo"
	"shiprates/internal/core/domain/model/shipment"
	"shiprates/internal/pkg/guard"
)

// ErrCompareCouriersQueryIsNotConstructed is returned when validating a query
// that was not created via NewCompareCouriersQuery.
var ErrCompareCouriersQueryIsNotConstructed = errors.New(
	"CompareCouriersQuery must be created via NewCompareCouriersQuery constructor",
)

// CompareCouriersQuery requests a scored courier comparison for a single
// service type: every eligible courier's quote ranked on value, speed and
// reliability.
type CompareCouriersQuery struct {
	pickup      geo.Address
	delivery    geo.Address
	pkg         shipment.PackageDetails
	serviceType courier.ServiceType

	guard guard.ConstructorGuard
}

// NewCompareCouriersQuery creates a comparison query for one service type.
func NewCompareCouriersQuery(
	pickup geo.Address,
	delivery geo.Address,
	pkg shipment.PackageDetails,
	serviceType courier.ServiceType,
) (CompareCouriersQuery, error) {
	if err := errors.Join(pickup.Validate(), delivery.Validate(), pkg.Validate()); err != nil {
		return CompareCouriersQuery{}, err
	}

	return CompareCouriersQuery{
		pickup:      pickup,
		delivery:    delivery,
		pkg:         pkg,
		serviceType: serviceType,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CompareCouriersQuery) Validate() error {
	return q.guard.Validate(ErrCompareCouriersQueryIsNotConstructed)
}

// Pickup returns the pickup address.
func (q CompareCouriersQuery) Pickup() geo.Address {
	return q.pickup
}

// Delivery returns the delivery address.
func (q CompareCouriersQuery) Delivery() geo.Address {
	return q.delivery
}

// Package returns the package details.
func (q CompareCouriersQuery) Package() shipment.PackageDetails {
	return q.pkg
}

// ServiceType returns the service type under comparison.
func (q CompareCouriersQuery) ServiceType() courier.ServiceType {
	return q.serviceType
}

// ScoredQuoteView is one comparison row: a quote plus its scores.
type ScoredQuoteView struct {
	Quote            QuoteView
	ValueScore       float64
	SpeedScore       float64
	ReliabilityScore float64
	OverallScore     float64
}

// ComparisonView is the ranked comparison read model.
type ComparisonView struct {
	Ranked         []ScoredQuoteView
	BestValue      *ScoredQuoteView
	Fastest        *ScoredQuoteView
	MostReliable   *ScoredQuoteView
	NoQuotesReason string
}
