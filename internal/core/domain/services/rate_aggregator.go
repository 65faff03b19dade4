package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"shiprates/internal/core/domain/model/courier"
	"shiprates/internal/core/domain/model/geo"
	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/core/domain/model/quote"
	"shiprates/internal/core/domain/model/shipment"
	"shiprates/internal/core/ports"
	"shiprates/internal/pkg/metrics"
)

// RecommendationKind names an advisory recommendation on an aggregation
// result.
type RecommendationKind string

const (
	// RecommendationCheapest marks the lowest-total quote overall.
	RecommendationCheapest RecommendationKind = "cheapest"
	// RecommendationFastest marks a strictly faster alternative to the
	// cheapest quote, with its cost premium.
	RecommendationFastest RecommendationKind = "fastest"
)

// Recommendation is one advisory pick emitted by aggregation.
type Recommendation struct {
	Kind                RecommendationKind
	CourierID           courier.CourierID
	ServiceType         courier.ServiceType
	Total               kernel.Money
	Hours               int
	PremiumOverCheapest kernel.Money
}

// AggregationResult is the outcome of one aggregation pass: resolved zone
// info, every surviving quote sorted ascending by total, the cheapest quote
// per service type, and advisory recommendations. When no courier covers the
// shipment, Quotes is empty and NoQuotesReason explains why.
type AggregationResult struct {
	PickupZone         geo.Zone
	DeliveryZone       geo.Zone
	DistanceKm         float64
	DistanceConfidence quote.DistanceConfidence
	Quotes             []quote.RateQuote
	BestPerServiceType map[courier.ServiceType]quote.RateQuote
	Recommendations    []Recommendation
	NoQuotesReason     string
}

// RateAggregator fans the rate calculator out across every eligible courier
// and requested service type, applies optional adjustments, and sorts the
// surviving quotes deterministically.
type RateAggregator struct {
	catalog    ports.CourierCatalog
	calculator *RateLineCalculator
	adjuster   *DynamicPricingAdjuster
	discounts  *VolumeDiscountEngine
	geography  *GeographyResolver
	metrics    *metrics.EngineMetrics
}

// NewRateAggregator creates an aggregator over the given collaborators.
func NewRateAggregator(
	catalog ports.CourierCatalog,
	calculator *RateLineCalculator,
	adjuster *DynamicPricingAdjuster,
	discounts *VolumeDiscountEngine,
	geography *GeographyResolver,
	engineMetrics *metrics.EngineMetrics,
) *RateAggregator {
	return &RateAggregator{
		catalog:    catalog,
		calculator: calculator,
		adjuster:   adjuster,
		discounts:  discounts,
		geography:  geography,
		metrics:    engineMetrics,
	}
}

// Aggregate runs one full aggregation pass for the request. Couriers without
// coverage and unoffered service types are skipped silently; hard errors
// (invalid request, rate table unavailable) abort the pass. The quote order
// is deterministic: ascending by total with ties broken by first-seen
// (catalog × requested-service) order.
func (a *RateAggregator) Aggregate(
	ctx context.Context,
	request shipment.RateRequest,
	opts AdjustmentOptions,
) (*AggregationResult, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	started := time.Now()
	defer func() {
		a.metrics.AggregationDuration.Observe(time.Since(started).Seconds())
	}()

	partners, err := a.catalog.EligibleCouriers(ctx, request.PreferredCouriers())
	if err != nil {
		return nil, err
	}

	pickupZone := a.geography.ResolveZone(request.Pickup())
	deliveryZone := a.geography.ResolveZone(request.Delivery())
	distanceKm, distanceConfidence := a.geography.Distance(ctx, pickupZone, deliveryZone)

	result := &AggregationResult{
		PickupZone:         pickupZone,
		DeliveryZone:       deliveryZone,
		DistanceKm:         distanceKm,
		DistanceConfidence: distanceConfidence,
		BestPerServiceType: make(map[courier.ServiceType]quote.RateQuote),
	}

	pipeline := NewAdjustmentPipeline(a.adjuster, a.discounts, opts)

	quotes := make([]quote.RateQuote, 0, len(partners)*len(request.ServiceTypes()))
	for _, partner := range partners {
		for _, serviceType := range request.ServiceTypes() {
			q, calcErr := a.calculator.Calculate(ctx, request, partner, serviceType)
			if errors.Is(calcErr, ErrNoCoverage) || errors.Is(calcErr, ErrServiceNotOffered) {
				continue
			}
			if calcErr != nil {
				return nil, calcErr
			}

			if !opts.IsEmpty() {
				q, calcErr = pipeline.Process(ctx, q)
				if calcErr != nil {
					return nil, calcErr
				}
			}

			quotes = append(quotes, q)
		}
	}

	if len(quotes) == 0 {
		result.NoQuotesReason = "no active courier covers " + request.Delivery().City()
		return result, nil
	}

	// Stable sort keeps first-seen order on equal totals, which makes
	// repeated calls with unchanged reference data byte-identical.
	sort.SliceStable(quotes, func(i, j int) bool {
		return quotes[i].Total() < quotes[j].Total()
	})
	result.Quotes = quotes

	for _, q := range quotes {
		if _, seen := result.BestPerServiceType[q.ServiceType()]; !seen {
			result.BestPerServiceType[q.ServiceType()] = q
		}
	}

	result.Recommendations = buildRecommendations(quotes)
	return result, nil
}

// buildRecommendations emits the cheapest quote and, when a strictly faster
// quote exists, the fastest alternative with its premium over cheapest.
func buildRecommendations(sorted []quote.RateQuote) []Recommendation {
	cheapest := sorted[0]
	recs := []Recommendation{{
		Kind:        RecommendationCheapest,
		CourierID:   cheapest.CourierID(),
		ServiceType: cheapest.ServiceType(),
		Total:       cheapest.Total(),
		Hours:       cheapest.Estimate().Hours,
	}}

	fastest := cheapest
	for _, q := range sorted[1:] {
		if q.Estimate().Hours < fastest.Estimate().Hours {
			fastest = q
		}
	}

	if fastest.Estimate().Hours < cheapest.Estimate().Hours {
		recs = append(recs, Recommendation{
			Kind:                RecommendationFastest,
			CourierID:           fastest.CourierID(),
			ServiceType:         fastest.ServiceType(),
			Total:               fastest.Total(),
			Hours:               fastest.Estimate().Hours,
			PremiumOverCheapest: fastest.Total().Sub(cheapest.Total()),
		})
	}

	return recs
}
