package shipment

import (
	"errors"

	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/pkg/errs"
	"shiprates/internal/pkg/guard"
)

// ErrPackageDetailsIsNotConstructed is returned when validating PackageDetails
// that were not created via NewPackageDetails.
var ErrPackageDetailsIsNotConstructed = errors.New(
	"PackageDetails must be created via NewPackageDetails constructor")

// Dimensions are the package dimensions in centimeters. Purely descriptive
// today; volumetric weight is not part of the pricing model.
type Dimensions struct {
	LengthCm float64
	WidthCm  float64
	HeightCm float64
}

// PackageDetails describes the parcel being quoted. A positive CODAmount
// marks the shipment as cash-on-delivery and triggers the courier's COD
// handling charge.
type PackageDetails struct { //nolint:recvcheck //using for validation
	weightKg      float64
	dimensions    Dimensions
	declaredValue kernel.Money
	codAmount     kernel.Money

	guard guard.ConstructorGuard
}

// NewPackageDetails creates PackageDetails. Weight must be strictly positive;
// declared value and COD amount must not be negative.
func NewPackageDetails(
	weightKg float64,
	dimensions Dimensions,
	declaredValue kernel.Money,
	codAmount kernel.Money,
) (PackageDetails, error) {
	if weightKg <= 0 {
		return PackageDetails{}, errs.NewValueIsInvalidError("weightKg")
	}
	if declaredValue < 0 {
		return PackageDetails{}, errs.NewValueIsInvalidError("declaredValue")
	}
	if codAmount < 0 {
		return PackageDetails{}, errs.NewValueIsInvalidError("codAmount")
	}

	return PackageDetails{
		weightKg:      weightKg,
		dimensions:    dimensions,
		declaredValue: declaredValue,
		codAmount:     codAmount,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the package details were created through the constructor.
func (p PackageDetails) Validate() error {
	return p.guard.Validate(ErrPackageDetailsIsNotConstructed)
}

// WeightKg returns the package weight in kilograms.
func (p PackageDetails) WeightKg() float64 {
	return p.weightKg
}

// Dimensions returns the package dimensions.
func (p PackageDetails) Dimensions() Dimensions {
	return p.dimensions
}

// DeclaredValue returns the declared value of the package contents.
func (p PackageDetails) DeclaredValue() kernel.Money {
	return p.declaredValue
}

// CODAmount returns the cash amount to collect on delivery, zero for prepaid.
func (p PackageDetails) CODAmount() kernel.Money {
	return p.codAmount
}

// IsCOD reports whether the shipment is cash-on-delivery.
func (p PackageDetails) IsCOD() bool {
	return p.codAmount > 0
}
