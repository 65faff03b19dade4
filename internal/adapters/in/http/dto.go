package http

import (
	"time"

	"shiprates/internal/core/application/usecases/commands"
	"shiprates/internal/core/application/usecases/queries"
)

// ErrorDTO is the uniform error payload of the API.
type ErrorDTO struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// AddressDTO is the wire form of a shipment address.
type AddressDTO struct {
	City     string `json:"city" validate:"required"`
	District string `json:"district,omitempty"`
	Line     string `json:"line,omitempty"`
}

// PackageDTO is the wire form of package details. Amounts are integer BDT.
type PackageDTO struct {
	WeightKg      float64 `json:"weight_kg" validate:"gt=0"`
	LengthCm      float64 `json:"length_cm,omitempty" validate:"gte=0"`
	WidthCm       float64 `json:"width_cm,omitempty" validate:"gte=0"`
	HeightCm      float64 `json:"height_cm,omitempty" validate:"gte=0"`
	DeclaredValue int64   `json:"declared_value,omitempty" validate:"gte=0"`
	CODAmount     int64   `json:"cod_amount,omitempty" validate:"gte=0"`
}

// CalculateRatesRequest is the body of POST /api/v1/rates/calculate.
type CalculateRatesRequest struct {
	Pickup            AddressDTO `json:"pickup" validate:"required"`
	Delivery          AddressDTO `json:"delivery" validate:"required"`
	Package           PackageDTO `json:"package" validate:"required"`
	ServiceTypes      []string   `json:"service_types,omitempty"`
	PreferredCouriers []string   `json:"preferred_couriers,omitempty"`
}

// CompareCouriersRequest is the body of POST /api/v1/rates/compare.
type CompareCouriersRequest struct {
	Pickup      AddressDTO `json:"pickup" validate:"required"`
	Delivery    AddressDTO `json:"delivery" validate:"required"`
	Package     PackageDTO `json:"package" validate:"required"`
	ServiceType string     `json:"service_type,omitempty"`
}

// DynamicPricingRequest is the body of POST /api/v1/rates/dynamic. The
// optional overrides pin pricing factors that otherwise derive from the
// quoting clock.
type DynamicPricingRequest struct {
	Pickup         AddressDTO `json:"pickup" validate:"required"`
	Delivery       AddressDTO `json:"delivery" validate:"required"`
	Package        PackageDTO `json:"package" validate:"required"`
	ServiceTypes   []string   `json:"service_types,omitempty"`
	Hour           *int       `json:"hour,omitempty"`
	Festival       *bool      `json:"festival,omitempty"`
	DemandFactor   float64    `json:"demand_factor,omitempty" validate:"gte=0"`
	SeasonalFactor float64    `json:"seasonal_factor,omitempty" validate:"gte=0"`
}

// VolumeDiscountsRequest is the body of POST /api/v1/rates/discounts.
type VolumeDiscountsRequest struct {
	Pickup        AddressDTO `json:"pickup" validate:"required"`
	Delivery      AddressDTO `json:"delivery" validate:"required"`
	Package       PackageDTO `json:"package" validate:"required"`
	ServiceTypes  []string   `json:"service_types,omitempty"`
	MonthlyVolume int        `json:"monthly_volume" validate:"gt=0"`
}

// ExpressRatesRequest is the body of POST /api/v1/rates/express.
type ExpressRatesRequest struct {
	Pickup   AddressDTO `json:"pickup" validate:"required"`
	Delivery AddressDTO `json:"delivery" validate:"required"`
	Package  PackageDTO `json:"package" validate:"required"`
	Urgency  string     `json:"urgency,omitempty"`
}

// InternationalRatesRequest is the body of POST /api/v1/rates/international.
type InternationalRatesRequest struct {
	DestinationCountry string     `json:"destination_country" validate:"required"`
	Package            PackageDTO `json:"package" validate:"required"`
	CustomsValue       int64      `json:"customs_value,omitempty" validate:"gte=0"`
	Method             string     `json:"method,omitempty"`
}

// BatchShipmentDTO is one raw shipment line of a batch request. Content is
// deliberately not validated here; malformed lines become per-line errors in
// the batch result.
type BatchShipmentDTO struct {
	Reference        string   `json:"reference"`
	PickupCity       string   `json:"pickup_city"`
	PickupDistrict   string   `json:"pickup_district,omitempty"`
	DeliveryCity     string   `json:"delivery_city"`
	DeliveryDistrict string   `json:"delivery_district,omitempty"`
	WeightKg         float64  `json:"weight_kg"`
	DeclaredValue    int64    `json:"declared_value,omitempty"`
	CODAmount        int64    `json:"cod_amount,omitempty"`
	ServiceTypes     []string `json:"service_types,omitempty"`
}

// RunBatchRequest is the body of POST /api/v1/rates/batch.
type RunBatchRequest struct {
	Shipments  []BatchShipmentDTO `json:"shipments" validate:"required,min=1"`
	MaxWorkers int                `json:"max_workers,omitempty" validate:"gte=0"`
}

// ChargesDTO is the itemized charge breakdown of a quote.
type ChargesDTO struct {
	Base          int64 `json:"base"`
	Weight        int64 `json:"weight"`
	Distance      int64 `json:"distance"`
	COD           int64 `json:"cod"`
	FuelSurcharge int64 `json:"fuel_surcharge"`
	Service       int64 `json:"service"`
}

// SurgeDTO is the dynamic pricing provenance of an adjusted quote.
type SurgeDTO struct {
	Multiplier      float64 `json:"multiplier"`
	SurgeAmount     int64   `json:"surge_amount"`
	TimeOfDayFactor float64 `json:"time_of_day_factor"`
	DemandFactor    float64 `json:"demand_factor"`
	SeasonalFactor  float64 `json:"seasonal_factor"`
	FestivalFactor  float64 `json:"festival_factor"`
}

// DiscountDTO is the volume discount provenance of an adjusted quote.
type DiscountDTO struct {
	TierName       string  `json:"tier_name"`
	Percentage     float64 `json:"percentage"`
	DiscountAmount int64   `json:"discount_amount"`
	MonthlySavings int64   `json:"monthly_savings"`
	AnnualSavings  int64   `json:"annual_savings"`
}

// QuoteDTO is the wire form of one rate quote.
type QuoteDTO struct {
	CourierID          string       `json:"courier_id"`
	CourierName        string       `json:"courier_name"`
	ServiceType        string       `json:"service_type"`
	Charges            ChargesDTO   `json:"charges"`
	Total              int64        `json:"total"`
	Currency           string       `json:"currency"`
	EstimatedHours     int          `json:"estimated_hours"`
	EstimatedDelivery  time.Time    `json:"estimated_delivery"`
	CoverageConfirmed  bool         `json:"coverage_confirmed"`
	DistanceConfidence string       `json:"distance_confidence"`
	ContractedRate     bool         `json:"contracted_rate"`
	Features           []string     `json:"features,omitempty"`
	OriginalTotal      *int64       `json:"original_total,omitempty"`
	Surge              *SurgeDTO    `json:"surge,omitempty"`
	Discount           *DiscountDTO `json:"discount,omitempty"`
}

// RecommendationDTO is one advisory pick of an aggregation pass.
type RecommendationDTO struct {
	Kind                string `json:"kind"`
	CourierID           string `json:"courier_id"`
	ServiceType         string `json:"service_type"`
	Total               int64  `json:"total"`
	Hours               int    `json:"hours"`
	PremiumOverCheapest int64  `json:"premium_over_cheapest"`
}

// AggregationDTO is the wire form of one aggregation pass.
type AggregationDTO struct {
	PickupZone         string              `json:"pickup_zone"`
	PickupZoneClass    string              `json:"pickup_zone_class"`
	DeliveryZone       string              `json:"delivery_zone"`
	DeliveryZoneClass  string              `json:"delivery_zone_class"`
	DistanceKm         float64             `json:"distance_km"`
	DistanceConfidence string              `json:"distance_confidence"`
	Quotes             []QuoteDTO          `json:"quotes"`
	BestPerServiceType map[string]QuoteDTO `json:"best_per_service_type,omitempty"`
	Recommendations    []RecommendationDTO `json:"recommendations,omitempty"`
	NoQuotesReason     string              `json:"no_quotes_reason,omitempty"`
}

// ScoredQuoteDTO is one comparison row: a quote plus its scores.
type ScoredQuoteDTO struct {
	Quote            QuoteDTO `json:"quote"`
	ValueScore       float64  `json:"value_score"`
	SpeedScore       float64  `json:"speed_score"`
	ReliabilityScore float64  `json:"reliability_score"`
	OverallScore     float64  `json:"overall_score"`
}

// ComparisonDTO is the response of POST /api/v1/rates/compare.
type ComparisonDTO struct {
	Ranked         []ScoredQuoteDTO `json:"ranked"`
	BestValue      *ScoredQuoteDTO  `json:"best_value,omitempty"`
	Fastest        *ScoredQuoteDTO  `json:"fastest,omitempty"`
	MostReliable   *ScoredQuoteDTO  `json:"most_reliable,omitempty"`
	NoQuotesReason string           `json:"no_quotes_reason,omitempty"`
}

// DynamicPricingDTO is the response of POST /api/v1/rates/dynamic.
type DynamicPricingDTO struct {
	Aggregation    AggregationDTO `json:"aggregation"`
	FestivalPeriod bool           `json:"festival_period"`
}

// TierDTO is one volume discount ladder position.
type TierDTO struct {
	Name             string  `json:"name"`
	MinMonthlyVolume int     `json:"min_monthly_volume"`
	Percentage       float64 `json:"percentage"`
}

// VolumeDiscountsDTO is the response of POST /api/v1/rates/discounts.
type VolumeDiscountsDTO struct {
	Aggregation   AggregationDTO `json:"aggregation"`
	MonthlyVolume int            `json:"monthly_volume"`
	CurrentTier   TierDTO        `json:"current_tier"`
	NextTier      *TierDTO       `json:"next_tier,omitempty"`
}

// ZoneRatesDTO is the response of GET /api/v1/rates/zones.
type ZoneRatesDTO struct {
	ZoneFrom   string     `json:"zone_from"`
	ZoneTo     string     `json:"zone_to"`
	DistanceKm float64    `json:"distance_km"`
	WeightKg   float64    `json:"weight_kg"`
	Quotes     []QuoteDTO `json:"quotes"`
}

// CODChargeDTO is one courier's cash-on-delivery pricing row.
type CODChargeDTO struct {
	CourierID      string `json:"courier_id"`
	CourierName    string `json:"courier_name"`
	HandlingCharge int64  `json:"handling_charge"`
	TotalPayable   int64  `json:"total_payable"`
}

// CODChargesDTO is the response of GET /api/v1/rates/cod.
type CODChargesDTO struct {
	Amount   int64          `json:"amount"`
	Currency string         `json:"currency"`
	Charges  []CODChargeDTO `json:"charges"`
}

// FuelSurchargeDTO is the response of GET /api/v1/rates/fuel.
type FuelSurchargeDTO struct {
	BaseCost        int64   `json:"base_cost"`
	DistanceKm      float64 `json:"distance_km"`
	DistanceCharges int64   `json:"distance_charges"`
	Surcharge       int64   `json:"surcharge"`
	Total           int64   `json:"total"`
	RatePercent     float64 `json:"rate_percent"`
	Currency        string  `json:"currency"`
}

// ExpressOptionDTO is one expedited alternative with its premium.
type ExpressOptionDTO struct {
	Quote               QuoteDTO `json:"quote"`
	PremiumOverStandard int64    `json:"premium_over_standard"`
	HoursSaved          int      `json:"hours_saved"`
}

// ExpressRatesDTO is the response of POST /api/v1/rates/express.
type ExpressRatesDTO struct {
	Urgency        string             `json:"urgency"`
	StandardQuote  *QuoteDTO          `json:"standard_quote,omitempty"`
	Options        []ExpressOptionDTO `json:"options"`
	NoQuotesReason string             `json:"no_quotes_reason,omitempty"`
}

// InternationalQuoteDTO is the response of POST /api/v1/rates/international.
type InternationalQuoteDTO struct {
	Country      string    `json:"country"`
	Method       string    `json:"method"`
	Base         int64     `json:"base"`
	Weight       int64     `json:"weight"`
	Customs      int64     `json:"customs"`
	Handling     int64     `json:"handling"`
	Insurance    int64     `json:"insurance"`
	Total        int64     `json:"total"`
	Currency     string    `json:"currency"`
	CustomsValue int64     `json:"customs_value"`
	TransitDays  int       `json:"transit_days"`
	ETA          time.Time `json:"eta"`
}

// BatchResultDTO is one shipment's outcome in a batch response.
type BatchResultDTO struct {
	Reference    string `json:"reference"`
	Succeeded    bool   `json:"succeeded"`
	QuoteCount   int    `json:"quote_count"`
	BestStandard int64  `json:"best_standard"`
	Error        string `json:"error,omitempty"`
}

// BatchSummaryDTO is the roll-up of one batch run.
type BatchSummaryDTO struct {
	Total              int   `json:"total"`
	Succeeded          int   `json:"succeeded"`
	Failed             int   `json:"failed"`
	TotalEstimatedCost int64 `json:"total_estimated_cost"`
}

// BatchDTO is the response of POST /api/v1/rates/batch.
type BatchDTO struct {
	JobID   string           `json:"job_id"`
	Summary BatchSummaryDTO  `json:"summary"`
	Results []BatchResultDTO `json:"results"`
}

func newChargesDTO(view queries.ChargesView) ChargesDTO {
	return ChargesDTO{
		Base:          view.Base,
		Weight:        view.Weight,
		Distance:      view.Distance,
		COD:           view.COD,
		FuelSurcharge: view.FuelSurcharge,
		Service:       view.Service,
	}
}

func newQuoteDTO(view queries.QuoteView) QuoteDTO {
	dto := QuoteDTO{
		CourierID:          view.CourierID,
		CourierName:        view.CourierName,
		ServiceType:        view.ServiceType,
		Charges:            newChargesDTO(view.Charges),
		Total:              view.Total,
		Currency:           view.Currency,
		EstimatedHours:     view.EstimatedHours,
		EstimatedDelivery:  view.EstimatedDelivery,
		CoverageConfirmed:  view.CoverageConfirmed,
		DistanceConfidence: view.DistanceConfidence,
		ContractedRate:     view.ContractedRate,
		Features:           view.Features,
		OriginalTotal:      view.OriginalTotal,
	}

	if view.Surge != nil {
		dto.Surge = &SurgeDTO{
			Multiplier:      view.Surge.Multiplier,
			SurgeAmount:     view.Surge.SurgeAmount,
			TimeOfDayFactor: view.Surge.TimeOfDayFactor,
			DemandFactor:    view.Surge.DemandFactor,
			SeasonalFactor:  view.Surge.SeasonalFactor,
			FestivalFactor:  view.Surge.FestivalFactor,
		}
	}
	if view.Discount != nil {
		dto.Discount = &DiscountDTO{
			TierName:       view.Discount.TierName,
			Percentage:     view.Discount.Percentage,
			DiscountAmount: view.Discount.DiscountAmount,
			MonthlySavings: view.Discount.MonthlySavings,
			AnnualSavings:  view.Discount.AnnualSavings,
		}
	}

	return dto
}

func newAggregationDTO(view queries.AggregationView) AggregationDTO {
	dto := AggregationDTO{
		PickupZone:         view.PickupZone,
		PickupZoneClass:    view.PickupZoneClass,
		DeliveryZone:       view.DeliveryZone,
		DeliveryZoneClass:  view.DeliveryZoneClass,
		DistanceKm:         view.DistanceKm,
		DistanceConfidence: view.DistanceConfidence,
		Quotes:             make([]QuoteDTO, 0, len(view.Quotes)),
		NoQuotesReason:     view.NoQuotesReason,
	}

	for _, q := range view.Quotes {
		dto.Quotes = append(dto.Quotes, newQuoteDTO(q))
	}
	if len(view.BestPerServiceType) > 0 {
		dto.BestPerServiceType = make(map[string]QuoteDTO, len(view.BestPerServiceType))
		for serviceType, q := range view.BestPerServiceType {
			dto.BestPerServiceType[serviceType] = newQuoteDTO(q)
		}
	}
	for _, rec := range view.Recommendations {
		dto.Recommendations = append(dto.Recommendations, RecommendationDTO{
			Kind:                rec.Kind,
			CourierID:           rec.CourierID,
			ServiceType:         rec.ServiceType,
			Total:               rec.Total,
			Hours:               rec.Hours,
			PremiumOverCheapest: rec.PremiumOverCheapest,
		})
	}

	return dto
}

func newScoredQuoteDTO(view queries.ScoredQuoteView) ScoredQuoteDTO {
	return ScoredQuoteDTO{
		Quote:            newQuoteDTO(view.Quote),
		ValueScore:       view.ValueScore,
		SpeedScore:       view.SpeedScore,
		ReliabilityScore: view.ReliabilityScore,
		OverallScore:     view.OverallScore,
	}
}

func scoredQuoteDTOPtr(view *queries.ScoredQuoteView) *ScoredQuoteDTO {
	if view == nil {
		return nil
	}
	dto := newScoredQuoteDTO(*view)
	return &dto
}

func quoteDTOPtr(view *queries.QuoteView) *QuoteDTO {
	if view == nil {
		return nil
	}
	dto := newQuoteDTO(*view)
	return &dto
}

func newBatchDTO(view commands.BatchView) BatchDTO {
	dto := BatchDTO{
		JobID: view.JobID,
		Summary: BatchSummaryDTO{
			Total:              view.Summary.Total,
			Succeeded:          view.Summary.Succeeded,
			Failed:             view.Summary.Failed,
			TotalEstimatedCost: view.Summary.TotalEstimatedCost,
		},
		Results: make([]BatchResultDTO, 0, len(view.Results)),
	}

	for _, result := range view.Results {
		dto.Results = append(dto.Results, BatchResultDTO{
			Reference:    result.Reference,
			Succeeded:    result.Succeeded,
			QuoteCount:   result.QuoteCount,
			BestStandard: result.BestStandard,
			Error:        result.Error,
		})
	}

	return dto
}
