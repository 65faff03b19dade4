// Package queries contains the read operations of the rate engine. Implements
// the Query pattern of the CQRS architecture: each operation is a validated
// query object plus a handler that runs the engine services and returns an
// optimized read model.
package queries

import (
	"time"

	"shiprates/internal/core/domain/model/quote"
	"shiprates/internal/core/domain/services"
)

// ChargesView is the itemized charge breakdown of a quote read model.
type ChargesView struct {
	Base          int64
	Weight        int64
	Distance      int64
	COD           int64
	FuelSurcharge int64
	Service       int64
}

// SurgeView is the dynamic pricing provenance of an adjusted quote.
type SurgeView struct {
	Multiplier      float64
	SurgeAmount     int64
	TimeOfDayFactor float64
	DemandFactor    float64
	SeasonalFactor  float64
	FestivalFactor  float64
}

// DiscountView is the volume discount provenance of an adjusted quote.
type DiscountView struct {
	TierName       string
	Percentage     float64
	DiscountAmount int64
	MonthlySavings int64
	AnnualSavings  int64
}

// QuoteView is the read model of one rate quote.
type QuoteView struct {
	CourierID          string
	CourierName        string
	ServiceType        string
	Charges            ChargesView
	Total              int64
	Currency           string
	EstimatedHours     int
	EstimatedDelivery  time.Time
	CoverageConfirmed  bool
	DistanceConfidence string
	ContractedRate     bool
	Features           []string
	OriginalTotal      *int64
	Surge              *SurgeView
	Discount           *DiscountView
}

// RecommendationView is one advisory pick of an aggregation pass.
type RecommendationView struct {
	Kind                string
	CourierID           string
	ServiceType         string
	Total               int64
	Hours               int
	PremiumOverCheapest int64
}

// AggregationView is the read model of one aggregation pass.
type AggregationView struct {
	PickupZone         string
	PickupZoneClass    string
	DeliveryZone       string
	DeliveryZoneClass  string
	DistanceKm         float64
	DistanceConfidence string
	Quotes             []QuoteView
	BestPerServiceType map[string]QuoteView
	Recommendations    []RecommendationView
	NoQuotesReason     string
}

func newQuoteView(q quote.RateQuote) QuoteView {
	charges := q.Charges()
	view := QuoteView{
		CourierID:   string(q.CourierID()),
		CourierName: q.CourierName(),
		ServiceType: q.ServiceType().String(),
		Charges: ChargesView{
			Base:          int64(charges.Base),
			Weight:        int64(charges.Weight),
			Distance:      int64(charges.Distance),
			COD:           int64(charges.COD),
			FuelSurcharge: int64(charges.FuelSurcharge),
			Service:       int64(charges.Service),
		},
		Total:              int64(q.Total()),
		Currency:           q.Currency(),
		EstimatedHours:     q.Estimate().Hours,
		EstimatedDelivery:  q.Estimate().ETA,
		CoverageConfirmed:  q.CoverageConfirmed(),
		DistanceConfidence: q.DistanceConfidence().String(),
		ContractedRate:     q.ContractedRate(),
		Features:           q.Features(),
	}

	if original := q.OriginalTotal(); original != nil {
		v := int64(*original)
		view.OriginalTotal = &v
	}
	if surge := q.Surge(); surge != nil {
		view.Surge = &SurgeView{
			Multiplier:      surge.Multiplier,
			SurgeAmount:     int64(surge.SurgeAmount),
			TimeOfDayFactor: surge.Factors.TimeOfDay,
			DemandFactor:    surge.Factors.Demand,
			SeasonalFactor:  surge.Factors.Seasonal,
			FestivalFactor:  surge.Factors.Festival,
		}
	}
	if discount := q.Discount(); discount != nil {
		view.Discount = &DiscountView{
			TierName:       discount.TierName,
			Percentage:     discount.Percentage,
			DiscountAmount: int64(discount.DiscountAmount),
			MonthlySavings: int64(discount.MonthlySavings),
			AnnualSavings:  int64(discount.AnnualSavings),
		}
	}

	return view
}

func newAggregationView(result *services.AggregationResult) AggregationView {
	view := AggregationView{
		PickupZone:         string(result.PickupZone.ID()),
		PickupZoneClass:    result.PickupZone.Class().String(),
		DeliveryZone:       string(result.DeliveryZone.ID()),
		DeliveryZoneClass:  result.DeliveryZone.Class().String(),
		DistanceKm:         result.DistanceKm,
		DistanceConfidence: result.DistanceConfidence.String(),
		Quotes:             make([]QuoteView, 0, len(result.Quotes)),
		BestPerServiceType: make(map[string]QuoteView, len(result.BestPerServiceType)),
		NoQuotesReason:     result.NoQuotesReason,
	}

	for _, q := range result.Quotes {
		view.Quotes = append(view.Quotes, newQuoteView(q))
	}
	for serviceType, q := range result.BestPerServiceType {
		view.BestPerServiceType[serviceType.String()] = newQuoteView(q)
	}
	for _, rec := range result.Recommendations {
		view.Recommendations = append(view.Recommendations, RecommendationView{
			Kind:                string(rec.Kind),
			CourierID:           string(rec.CourierID),
			ServiceType:         rec.ServiceType.String(),
			Total:               int64(rec.Total),
			Hours:               rec.Hours,
			PremiumOverCheapest: int64(rec.PremiumOverCheapest),
		})
	}

	return view
}
