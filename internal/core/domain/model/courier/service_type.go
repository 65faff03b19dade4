package courier

import (
	"strings"

	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/pkg/errs"
)

// ServiceType is the closed enumeration of delivery speed tiers. Using a
// closed enum instead of raw strings lets the transit-hours and service-charge
// tables match exhaustively.
type ServiceType int

const (
	// ServiceStandard is the regular delivery tier.
	ServiceStandard ServiceType = iota
	// ServiceExpress is the accelerated tier.
	ServiceExpress
	// ServiceSameDay delivers within the same calendar day.
	ServiceSameDay
	// ServiceNextDay delivers by the next day.
	ServiceNextDay
	// ServiceEconomy is the slowest, cheapest tier.
	ServiceEconomy
)

// AllServiceTypes returns every service type in declaration order.
func AllServiceTypes() []ServiceType {
	return []ServiceType{ServiceStandard, ServiceExpress, ServiceSameDay, ServiceNextDay, ServiceEconomy}
}

// ParseServiceType converts a wire-level service type name into the enum.
// Returns a validation error for unknown names.
func ParseServiceType(s string) (ServiceType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard":
		return ServiceStandard, nil
	case "express":
		return ServiceExpress, nil
	case "same_day", "same-day", "sameday":
		return ServiceSameDay, nil
	case "next_day", "next-day", "nextday":
		return ServiceNextDay, nil
	case "economy":
		return ServiceEconomy, nil
	default:
		return ServiceStandard, errs.NewValueIsInvalidError("serviceType")
	}
}

// String returns the wire-level name of the service type.
func (s ServiceType) String() string {
	switch s {
	case ServiceStandard:
		return "standard"
	case ServiceExpress:
		return "express"
	case ServiceSameDay:
		return "same_day"
	case ServiceNextDay:
		return "next_day"
	case ServiceEconomy:
		return "economy"
	default:
		return "standard"
	}
}

// TransitHours returns the estimated delivery window of the service type in
// hours. Delivery ETAs are this value added to the quoting clock's now.
func (s ServiceType) TransitHours() int {
	switch s {
	case ServiceSameDay:
		return 8
	case ServiceExpress:
		return 24
	case ServiceNextDay:
		return 36
	case ServiceStandard:
		return 72
	case ServiceEconomy:
		return 120
	default:
		return 72
	}
}

// ServiceCharge returns the flat add-on charged for the service tier on top
// of the computed base, weight and distance charges.
func (s ServiceType) ServiceCharge() kernel.Money {
	switch s {
	case ServiceSameDay:
		return 100
	case ServiceExpress:
		return 50
	case ServiceNextDay:
		return 20
	case ServiceStandard, ServiceEconomy:
		return 0
	default:
		return 0
	}
}
