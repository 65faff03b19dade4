package queries

import (
	"errors"
	"strings"
	"time"

	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/core/domain/model/shipment"
	"shiprates/internal/core/domain/services"
	"shiprates/internal/pkg/errs"
	"shiprates/internal/pkg/guard"
)

// ErrInternationalRatesQueryIsNotConstructed is returned when validating a
// query that was not created via NewInternationalRatesQuery.
var ErrInternationalRatesQueryIsNotConstructed = errors.New(
	"InternationalRatesQuery must be created via NewInternationalRatesQuery constructor",
)

// InternationalRatesQuery requests one cross-border quote. Unsupported
// destination countries are a hard error, never a fallback quote.
type InternationalRatesQuery struct {
	country      string
	pkg          shipment.PackageDetails
	customsValue kernel.Money
	method       services.ShippingMethod

	guard guard.ConstructorGuard
}

// NewInternationalRatesQuery creates an international rate query. Customs
// value must not be negative.
func NewInternationalRatesQuery(
	country string,
	pkg shipment.PackageDetails,
	customsValue kernel.Money,
	method services.ShippingMethod,
) (InternationalRatesQuery, error) {
	if strings.TrimSpace(country) == "" {
		return InternationalRatesQuery{}, errs.NewValueIsRequiredError("destinationCountry")
	}
	if err := pkg.Validate(); err != nil {
		return InternationalRatesQuery{}, err
	}
	if customsValue < 0 {
		return InternationalRatesQuery{}, errs.NewValueIsInvalidError("customsValue")
	}

	return InternationalRatesQuery{
		country:      strings.TrimSpace(country),
		pkg:          pkg,
		customsValue: customsValue,
		method:       method,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q InternationalRatesQuery) Validate() error {
	return q.guard.Validate(ErrInternationalRatesQueryIsNotConstructed)
}

// Country returns the destination country.
func (q InternationalRatesQuery) Country() string {
	return q.country
}

// Package returns the package details.
func (q InternationalRatesQuery) Package() shipment.PackageDetails {
	return q.pkg
}

// CustomsValue returns the declared customs value.
func (q InternationalRatesQuery) CustomsValue() kernel.Money {
	return q.customsValue
}

// Method returns the requested shipping method.
func (q InternationalRatesQuery) Method() services.ShippingMethod {
	return q.method
}

// InternationalQuoteView is the cross-border quote read model.
type InternationalQuoteView struct {
	Country      string
	Method       string
	Base         int64
	Weight       int64
	Customs      int64
	Handling     int64
	Insurance    int64
	Total        int64
	Currency     string
	CustomsValue int64
	TransitDays  int
	ETA          time.Time
}
