package queries

import (
	"errors"
	"strings"

	"shiprates/internal/core/domain/model/courier"
	"shiprates/internal/core/domain/model/geo"
	"shiprates/internal/core/domain/model/shipment"
	"shiprates/internal/pkg/errs"
	"shiprates/internal/pkg/guard"
)

// ErrExpressRatesQueryIsNotConstructed is returned when validating a query
// that was not created via NewExpressRatesQuery.
var ErrExpressRatesQueryIsNotConstructed = errors.New(
	"ExpressRatesQuery must be created via NewExpressRatesQuery constructor",
)

// UrgencyLevel selects how aggressive the express tier fan-out is.
type UrgencyLevel string

const (
	// UrgencyHigh quotes next-day and express tiers.
	UrgencyHigh UrgencyLevel = "high"
	// UrgencyCritical quotes express and same-day tiers.
	UrgencyCritical UrgencyLevel = "critical"
)

// ParseUrgencyLevel converts a wire-level urgency name into the enum,
// defaulting to high.
func ParseUrgencyLevel(s string) (UrgencyLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high", "":
		return UrgencyHigh, nil
	case "critical":
		return UrgencyCritical, nil
	default:
		return "", errs.NewValueIsInvalidError("urgencyLevel")
	}
}

// ExpediteTiers returns the expedited service tiers quoted for this urgency.
func (u UrgencyLevel) ExpediteTiers() []courier.ServiceType {
	if u == UrgencyCritical {
		return []courier.ServiceType{courier.ServiceExpress, courier.ServiceSameDay}
	}
	return []courier.ServiceType{courier.ServiceNextDay, courier.ServiceExpress}
}

// ExpressRatesQuery requests expedited delivery options for a shipment, each
// with its premium over the cheapest standard quote.
type ExpressRatesQuery struct {
	pickup   geo.Address
	delivery geo.Address
	pkg      shipment.PackageDetails
	urgency  UrgencyLevel

	guard guard.ConstructorGuard
}

// NewExpressRatesQuery creates an express options query.
func NewExpressRatesQuery(
	pickup geo.Address,
	delivery geo.Address,
	pkg shipment.PackageDetails,
	urgency UrgencyLevel,
) (ExpressRatesQuery, error) {
	if err := errors.Join(pickup.Validate(), delivery.Validate(), pkg.Validate()); err != nil {
		return ExpressRatesQuery{}, err
	}
	if urgency != UrgencyHigh && urgency != UrgencyCritical {
		return ExpressRatesQuery{}, errs.NewValueIsInvalidError("urgencyLevel")
	}

	return ExpressRatesQuery{
		pickup:   pickup,
		delivery: delivery,
		pkg:      pkg,
		urgency:  urgency,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ExpressRatesQuery) Validate() error {
	return q.guard.Validate(ErrExpressRatesQueryIsNotConstructed)
}

// Pickup returns the pickup address.
func (q ExpressRatesQuery) Pickup() geo.Address {
	return q.pickup
}

// Delivery returns the delivery address.
func (q ExpressRatesQuery) Delivery() geo.Address {
	return q.delivery
}

// Package returns the package details.
func (q ExpressRatesQuery) Package() shipment.PackageDetails {
	return q.pkg
}

// Urgency returns the requested urgency level.
func (q ExpressRatesQuery) Urgency() UrgencyLevel {
	return q.urgency
}

// ExpressOptionView is one expedited quote with its premium over the cheapest
// standard quote and the hours saved against it.
type ExpressOptionView struct {
	Quote               QuoteView
	PremiumOverStandard int64
	HoursSaved          int
}

// ExpressRatesView is the expedited options read model, fastest option last.
type ExpressRatesView struct {
	Urgency        string
	StandardQuote  *QuoteView
	Options        []ExpressOptionView
	NoQuotesReason string
}
