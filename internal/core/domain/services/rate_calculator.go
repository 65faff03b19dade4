package services

import (
	"context"
	"errors"
	"time"

	"shiprates/internal/core/domain/model/courier"
	"shiprates/internal/core/domain/model/geo"
	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/core/domain/model/quote"
	"shiprates/internal/core/domain/model/shipment"
	"shiprates/internal/core/ports"
	"shiprates/internal/pkg/metrics"

	"github.com/zoobzio/clockz"
)

var (
	// ErrNoCoverage is the soft signal that a courier does not serve the
	// delivery city. Aggregation skips such pairs silently; it is never
	// surfaced to callers as a failure.
	ErrNoCoverage = errors.New("courier does not cover delivery area")

	// ErrServiceNotOffered is the soft signal that a courier has no pricing
	// for the requested service type. Treated exactly like ErrNoCoverage.
	ErrServiceNotOffered = errors.New("courier does not offer service type")
)

const (
	// freeWeightKg is included in the base charge.
	freeWeightKg = 1.0
	// freeDistanceKm is included in the base charge.
	freeDistanceKm = 10.0
	// distancePerKmRate is charged per km beyond freeDistanceKm.
	distancePerKmRate = 2.0
	// fuelSurchargeRate applies to base + weight + distance charges.
	fuelSurchargeRate = 0.03
)

// RateLineCalculator produces one itemized quote for a (courier, service
// type) pair. Missing coverage or an unoffered service type yields a soft
// sentinel error, never a hard failure; missing contracted rate rows always
// fall back to the courier's defaults.
type RateLineCalculator struct {
	geography *GeographyResolver
	rates     ports.RateTableSource
	clock     clockz.Clock
	metrics   *metrics.EngineMetrics
}

// NewRateLineCalculator creates a calculator over the given geography
// resolver and rate table source. The clock anchors delivery ETAs.
func NewRateLineCalculator(
	geography *GeographyResolver,
	rates ports.RateTableSource,
	clock clockz.Clock,
	engineMetrics *metrics.EngineMetrics,
) *RateLineCalculator {
	return &RateLineCalculator{
		geography: geography,
		rates:     rates,
		clock:     clock,
		metrics:   engineMetrics,
	}
}

// Calculate produces the itemized quote for one (courier, service type)
// pair:
//
//  1. Resolve pickup/delivery zones and distance.
//  2. Resolve the rate row (contracted row, else courier default).
//  3. Weight charges: weight above the first kilogram at the per-kg rate.
//  4. Distance charges: distance above the first 10 km at 2 per km.
//  5. COD charge when the package is cash-on-delivery.
//  6. Fuel surcharge: 3% of base + weight + distance.
//  7. Flat service charge of the service tier.
//  8. ETA from the service tier's transit hours and the calculator clock.
//
// Returns ErrNoCoverage or ErrServiceNotOffered when no quote exists.
func (c *RateLineCalculator) Calculate(
	ctx context.Context,
	request shipment.RateRequest,
	partner *courier.Partner,
	serviceType courier.ServiceType,
) (quote.RateQuote, error) {
	if err := errors.Join(request.Validate(), partner.Validate()); err != nil {
		return quote.RateQuote{}, err
	}

	deliveryCity := request.Delivery().NormalizedCity()
	if !partner.CoversArea(deliveryCity) {
		c.metrics.CoverageSkips.Inc()
		return quote.RateQuote{}, ErrNoCoverage
	}

	pickupZone := c.geography.ResolveZone(request.Pickup())
	deliveryZone := c.geography.ResolveZone(request.Delivery())

	return c.compute(ctx, pickupZone, deliveryZone, request.Package(), partner, serviceType)
}

// CalculateForZones prices a (courier, service type) pair for an explicit zone
// pair, bypassing address resolution. Coverage is checked against the delivery
// zone identifier.
func (c *RateLineCalculator) CalculateForZones(
	ctx context.Context,
	pickupZone, deliveryZone geo.Zone,
	pkg shipment.PackageDetails,
	partner *courier.Partner,
	serviceType courier.ServiceType,
) (quote.RateQuote, error) {
	if err := errors.Join(pkg.Validate(), partner.Validate()); err != nil {
		return quote.RateQuote{}, err
	}

	if !partner.CoversArea(string(deliveryZone.ID())) {
		c.metrics.CoverageSkips.Inc()
		return quote.RateQuote{}, ErrNoCoverage
	}

	return c.compute(ctx, pickupZone, deliveryZone, pkg, partner, serviceType)
}

func (c *RateLineCalculator) compute(
	ctx context.Context,
	pickupZone, deliveryZone geo.Zone,
	pkg shipment.PackageDetails,
	partner *courier.Partner,
	serviceType courier.ServiceType,
) (quote.RateQuote, error) {
	distanceKm, distanceConfidence := c.geography.Distance(ctx, pickupZone, deliveryZone)

	rateTable, err := c.rates.RateTable(ctx)
	if err != nil {
		return quote.RateQuote{}, err
	}

	weightKg := pkg.WeightKg()
	resolved, ok := rateTable.Resolve(partner, pickupZone.ID(), deliveryZone.ID(), serviceType, weightKg)
	if !ok {
		c.metrics.CoverageSkips.Inc()
		return quote.RateQuote{}, ErrServiceNotOffered
	}

	charges := c.itemize(resolved, weightKg, distanceKm, pkg, partner, serviceType)

	now := c.clock.Now()
	estimate := quote.DeliveryEstimate{
		Hours: serviceType.TransitHours(),
		ETA:   now.Add(time.Duration(serviceType.TransitHours()) * time.Hour),
	}

	// Coverage is confirmed only when the partner explicitly lists the area;
	// an unrestricted partner is assumed, not confirmed.
	coverageConfirmed := len(partner.CoverageAreas()) > 0

	c.metrics.QuotesComputed.Inc()

	return quote.NewRateQuote(
		partner.ID(),
		partner.Name(),
		serviceType,
		charges,
		kernel.CurrencyBDT,
		estimate,
		coverageConfirmed,
		distanceConfidence,
		resolved.Contracted,
		partner.Features(),
	), nil
}

func (c *RateLineCalculator) itemize(
	resolved courier.ResolvedRate,
	weightKg float64,
	distanceKm float64,
	pkg shipment.PackageDetails,
	partner *courier.Partner,
	serviceType courier.ServiceType,
) quote.Charges {
	weightCharges := kernel.NewMoneyFromFloat(max(0, weightKg-freeWeightKg) * resolved.PerKg.Float64())
	distanceCharges := kernel.NewMoneyFromFloat(max(0, distanceKm-freeDistanceKm) * distancePerKmRate)

	var codCharges kernel.Money
	if pkg.IsCOD() {
		codCharges = partner.CODCharge()
	}

	transportable := resolved.Base + weightCharges + distanceCharges
	fuelSurcharge := kernel.NewMoneyFromFloat(fuelSurchargeRate * transportable.Float64())

	return quote.Charges{
		Base:          resolved.Base,
		Weight:        weightCharges,
		Distance:      distanceCharges,
		COD:           codCharges,
		FuelSurcharge: fuelSurcharge,
		Service:       serviceType.ServiceCharge(),
	}
}

// FuelBreakdown decomposes a fuel surcharge estimate for a hypothetical
// shipment leg.
type FuelBreakdown struct {
	BaseCost        kernel.Money
	DistanceCharges kernel.Money
	Surcharge       kernel.Money
	Total           kernel.Money
	Rate            float64
}

// EstimateFuelSurcharge computes the fuel surcharge for a base cost and
// distance using the engine's pricing constants, without a courier context.
func EstimateFuelSurcharge(baseCost kernel.Money, distanceKm float64) FuelBreakdown {
	distanceCharges := kernel.NewMoneyFromFloat(max(0, distanceKm-freeDistanceKm) * distancePerKmRate)
	surcharge := kernel.NewMoneyFromFloat(fuelSurchargeRate * (baseCost + distanceCharges).Float64())

	return FuelBreakdown{
		BaseCost:        baseCost,
		DistanceCharges: distanceCharges,
		Surcharge:       surcharge,
		Total:           baseCost + distanceCharges + surcharge,
		Rate:            fuelSurchargeRate,
	}
}
