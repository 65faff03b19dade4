package shipment

import (
	"errors"

	"shiprates/internal/core/domain/model/courier"
	"shiprates/internal/core/domain/model/geo"
	"shiprates/internal/pkg/guard"
)

// ErrRateRequestIsNotConstructed is returned when validating a RateRequest
// that was not created via NewRateRequest.
var ErrRateRequestIsNotConstructed = errors.New("RateRequest must be created via NewRateRequest constructor")

// RateRequest is the input of one rate aggregation pass: a pickup/delivery
// address pair, the package, the requested service types, and an optional
// courier allow-list. An empty service type list means "quote every tier".
type RateRequest struct { //nolint:recvcheck //using for validation
	pickup            geo.Address
	delivery          geo.Address
	pkg               PackageDetails
	serviceTypes      []courier.ServiceType
	preferredCouriers []courier.CourierID

	guard guard.ConstructorGuard
}

// NewRateRequest creates a RateRequest. Pickup, delivery and package details
// must themselves be properly constructed; structurally invalid input is
// rejected here, before any computation begins.
func NewRateRequest(
	pickup geo.Address,
	delivery geo.Address,
	pkg PackageDetails,
	serviceTypes []courier.ServiceType,
	preferredCouriers []courier.CourierID,
) (RateRequest, error) {
	if err := errors.Join(pickup.Validate(), delivery.Validate(), pkg.Validate()); err != nil {
		return RateRequest{}, err
	}

	if len(serviceTypes) == 0 {
		serviceTypes = courier.AllServiceTypes()
	}

	return RateRequest{
		pickup:            pickup,
		delivery:          delivery,
		pkg:               pkg,
		serviceTypes:      append([]courier.ServiceType(nil), serviceTypes...),
		preferredCouriers: append([]courier.CourierID(nil), preferredCouriers...),
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the request was created through the constructor.
func (r RateRequest) Validate() error {
	return r.guard.Validate(ErrRateRequestIsNotConstructed)
}

// Pickup returns the pickup address.
func (r RateRequest) Pickup() geo.Address {
	return r.pickup
}

// Delivery returns the delivery address.
func (r RateRequest) Delivery() geo.Address {
	return r.delivery
}

// Package returns the package details.
func (r RateRequest) Package() PackageDetails {
	return r.pkg
}

// ServiceTypes returns the requested service types, never empty.
func (r RateRequest) ServiceTypes() []courier.ServiceType {
	return append([]courier.ServiceType(nil), r.serviceTypes...)
}

// PreferredCouriers returns the optional courier allow-list, possibly empty.
func (r RateRequest) PreferredCouriers() []courier.CourierID {
	return append([]courier.CourierID(nil), r.preferredCouriers...)
}
