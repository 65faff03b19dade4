// Package quote contains the rate quote model: one itemized delivery cost for
// a (courier, service type) pair. Quotes are immutable; dynamic pricing and
// volume discounts are pure transforms producing a new quote that carries its
// predecessor's total for audit.
package quote

import (
	"time"

	"shiprates/internal/core/domain/model/courier"
	"shiprates/internal/core/domain/model/kernel"
)

// Charges is the itemized breakdown of a quote. The quote total is always the
// exact sum of these parts; every part is already integer-rounded.
type Charges struct {
	Base          kernel.Money
	Weight        kernel.Money
	Distance      kernel.Money
	COD           kernel.Money
	FuelSurcharge kernel.Money
	Service       kernel.Money
}

// Total returns the sum of all itemized charges.
func (c Charges) Total() kernel.Money {
	return c.Base + c.Weight + c.Distance + c.COD + c.FuelSurcharge + c.Service
}

// DeliveryEstimate is the promised delivery window: a transit duration in
// hours and the absolute ETA derived from the quoting clock.
type DeliveryEstimate struct {
	Hours int
	ETA   time.Time
}

// DistanceConfidence records whether the distance feeding a quote came from
// the distance table or from the documented 100 km fallback.
type DistanceConfidence int

const (
	// DistanceResolved means the zone pair was present in the distance table.
	DistanceResolved DistanceConfidence = iota
	// DistanceDefaulted means the fallback default distance was used.
	DistanceDefaulted
)

// String returns "resolved" or "defaulted".
func (d DistanceConfidence) String() string {
	if d == DistanceResolved {
		return "resolved"
	}
	return "defaulted"
}

// PricingFactors is the decomposed surge multiplier applied by dynamic
// pricing, kept on the quote for transparency.
type PricingFactors struct {
	TimeOfDay float64
	Demand    float64
	Seasonal  float64
	Festival  float64
}

// Combined returns the product of all factors.
func (f PricingFactors) Combined() float64 {
	return f.TimeOfDay * f.Demand * f.Seasonal * f.Festival
}

// SurgeDetails records one dynamic pricing adjustment.
type SurgeDetails struct {
	Multiplier  float64
	SurgeAmount kernel.Money
	Factors     PricingFactors
}

// DiscountDetails records one volume discount adjustment, including the
// savings projection for the shipper's stated monthly volume.
type DiscountDetails struct {
	TierName       string
	Percentage     float64
	DiscountAmount kernel.Money
	MonthlySavings kernel.Money
	AnnualSavings  kernel.Money
}

// RateQuote is one itemized delivery cost quote. Created fresh per
// calculation and never mutated; adjustment steps return new values.
type RateQuote struct {
	courierID          courier.CourierID
	courierName        string
	serviceType        courier.ServiceType
	charges            Charges
	total              kernel.Money
	currency           string
	estimate           DeliveryEstimate
	coverageConfirmed  bool
	distanceConfidence DistanceConfidence
	contractedRate     bool
	features           []string

	originalTotal *kernel.Money
	surge         *SurgeDetails
	discount      *DiscountDetails
}

// NewRateQuote creates a quote from its itemized charges. The total is
// derived from the charges, which makes the total-equals-sum-of-parts
// invariant hold by construction.
func NewRateQuote(
	courierID courier.CourierID,
	courierName string,
	serviceType courier.ServiceType,
	charges Charges,
	currency string,
	estimate DeliveryEstimate,
	coverageConfirmed bool,
	distanceConfidence DistanceConfidence,
	contractedRate bool,
	features []string,
) RateQuote {
	if currency == "" {
		currency = kernel.CurrencyBDT
	}

	return RateQuote{
		courierID:          courierID,
		courierName:        courierName,
		serviceType:        serviceType,
		charges:            charges,
		total:              charges.Total(),
		currency:           currency,
		estimate:           estimate,
		coverageConfirmed:  coverageConfirmed,
		distanceConfidence: distanceConfidence,
		contractedRate:     contractedRate,
		features:           append([]string(nil), features...),
	}
}

// CourierID returns the quoted courier's identifier.
func (q RateQuote) CourierID() courier.CourierID {
	return q.courierID
}

// CourierName returns the quoted courier's display name.
func (q RateQuote) CourierName() string {
	return q.courierName
}

// ServiceType returns the quoted service tier.
func (q RateQuote) ServiceType() courier.ServiceType {
	return q.serviceType
}

// Charges returns the itemized charge breakdown.
func (q RateQuote) Charges() Charges {
	return q.charges
}

// Total returns the quote total after any adjustments.
func (q RateQuote) Total() kernel.Money {
	return q.total
}

// Currency returns the quote currency, BDT for domestic quotes.
func (q RateQuote) Currency() string {
	return q.currency
}

// Estimate returns the promised delivery window.
func (q RateQuote) Estimate() DeliveryEstimate {
	return q.estimate
}

// CoverageConfirmed reports whether the courier's coverage of the destination
// was positively confirmed rather than assumed.
func (q RateQuote) CoverageConfirmed() bool {
	return q.coverageConfirmed
}

// DistanceConfidence reports whether the underlying distance was resolved or
// defaulted.
func (q RateQuote) DistanceConfidence() DistanceConfidence {
	return q.distanceConfidence
}

// ContractedRate reports whether a contracted rate row priced this quote.
func (q RateQuote) ContractedRate() bool {
	return q.contractedRate
}

// Features returns the courier's feature tags carried on the quote.
func (q RateQuote) Features() []string {
	return append([]string(nil), q.features...)
}

// OriginalTotal returns the predecessor total of the most recent adjustment,
// or nil for an unadjusted quote.
func (q RateQuote) OriginalTotal() *kernel.Money {
	if q.originalTotal == nil {
		return nil
	}
	v := *q.originalTotal
	return &v
}

// Surge returns the dynamic pricing details, nil when not applied.
func (q RateQuote) Surge() *SurgeDetails {
	if q.surge == nil {
		return nil
	}
	v := *q.surge
	return &v
}

// Discount returns the volume discount details, nil when not applied.
func (q RateQuote) Discount() *DiscountDetails {
	if q.discount == nil {
		return nil
	}
	v := *q.discount
	return &v
}

// WithSurge returns a copy of the quote with dynamic pricing applied. The
// predecessor's total is preserved as the original total.
func (q RateQuote) WithSurge(newTotal kernel.Money, details SurgeDetails) RateQuote {
	prior := q.total
	adjusted := q
	adjusted.originalTotal = &prior
	adjusted.total = newTotal
	adjusted.surge = &details
	return adjusted
}

// WithDiscount returns a copy of the quote with a volume discount applied.
// The predecessor's total is preserved as the original total.
func (q RateQuote) WithDiscount(newTotal kernel.Money, details DiscountDetails) RateQuote {
	prior := q.total
	adjusted := q
	adjusted.originalTotal = &prior
	adjusted.total = newTotal
	adjusted.discount = &details
	return adjusted
}
