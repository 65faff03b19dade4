// Package http is the inbound HTTP adapter of the rate engine. It binds and
// validates wire DTOs, constructs query/command objects and maps the read
// models back to JSON.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"shiprates/internal/core/application/usecases/commands"
	"shiprates/internal/core/application/usecases/queries"
	"shiprates/internal/core/domain/model/courier"
	"shiprates/internal/core/domain/model/geo"
	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/core/domain/model/shipment"
	"shiprates/internal/core/domain/services"
	"shiprates/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	calculateRatesHandler     queries.CalculateRatesQueryHandler
	compareCouriersHandler    queries.CompareCouriersQueryHandler
	zoneRatesHandler          queries.ZoneRatesQueryHandler
	dynamicPricingHandler     queries.DynamicPricingQueryHandler
	volumeDiscountsHandler    queries.VolumeDiscountsQueryHandler
	codChargesHandler         queries.CODChargesQueryHandler
	fuelSurchargeHandler      queries.FuelSurchargeQueryHandler
	expressRatesHandler       queries.ExpressRatesQueryHandler
	internationalRatesHandler queries.InternationalRatesQueryHandler
	runBatchHandler           commands.RunBatchCommandHandler

	validate *validator.Validate
}

// NewServer creates the HTTP server over the use case handlers.
func NewServer(
	calculateRatesHandler queries.CalculateRatesQueryHandler,
	compareCouriersHandler queries.CompareCouriersQueryHandler,
	zoneRatesHandler queries.ZoneRatesQueryHandler,
	dynamicPricingHandler queries.DynamicPricingQueryHandler,
	volumeDiscountsHandler queries.VolumeDiscountsQueryHandler,
	codChargesHandler queries.CODChargesQueryHandler,
	fuelSurchargeHandler queries.FuelSurchargeQueryHandler,
	expressRatesHandler queries.ExpressRatesQueryHandler,
	internationalRatesHandler queries.InternationalRatesQueryHandler,
	runBatchHandler commands.RunBatchCommandHandler,
) *Server {
	return &Server{
		calculateRatesHandler:     calculateRatesHandler,
		compareCouriersHandler:    compareCouriersHandler,
		zoneRatesHandler:          zoneRatesHandler,
		dynamicPricingHandler:     dynamicPricingHandler,
		volumeDiscountsHandler:    volumeDiscountsHandler,
		codChargesHandler:         codChargesHandler,
		fuelSurchargeHandler:      fuelSurchargeHandler,
		expressRatesHandler:       expressRatesHandler,
		internationalRatesHandler: internationalRatesHandler,
		runBatchHandler:           runBatchHandler,
		validate:                  validator.New(),
	}
}

// RegisterRoutes mounts the API, health and metrics routes on the echo
// instance.
func (s *Server) RegisterRoutes(e *echo.Echo, gatherer prometheus.Gatherer) {
	api := e.Group("/api/v1")

	api.POST("/rates/calculate", s.CalculateRates)
	api.POST("/rates/compare", s.CompareCouriers)
	api.GET("/rates/zones", s.ZoneRates)
	api.POST("/rates/dynamic", s.DynamicPricing)
	api.POST("/rates/discounts", s.VolumeDiscounts)
	api.POST("/rates/express", s.ExpressRates)
	api.POST("/rates/international", s.InternationalRates)
	api.GET("/rates/cod", s.CODCharges)
	api.GET("/rates/fuel", s.FuelSurcharge)
	api.POST("/rates/batch", s.RunBatch)

	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CalculateRates handles POST /api/v1/rates/calculate.
func (s *Server) CalculateRates(ctx echo.Context) error {
	var req CalculateRatesRequest
	if err := s.bind(ctx, &req); err != nil {
		return s.respondError(ctx, err)
	}

	request, err := s.toRateRequest(req.Pickup, req.Delivery, req.Package, req.ServiceTypes, req.PreferredCouriers)
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewCalculateRatesQuery(request)
	if err != nil {
		return s.respondError(ctx, err)
	}

	view, err := s.calculateRatesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newAggregationDTO(view))
}

// CompareCouriers handles POST /api/v1/rates/compare.
func (s *Server) CompareCouriers(ctx echo.Context) error {
	var req CompareCouriersRequest
	if err := s.bind(ctx, &req); err != nil {
		return s.respondError(ctx, err)
	}

	pickup, delivery, pkg, err := s.toShipmentParts(req.Pickup, req.Delivery, req.Package)
	if err != nil {
		return s.respondError(ctx, err)
	}

	serviceType := courier.ServiceStandard
	if req.ServiceType != "" {
		if serviceType, err = courier.ParseServiceType(req.ServiceType); err != nil {
			return s.respondError(ctx, err)
		}
	}

	query, err := queries.NewCompareCouriersQuery(pickup, delivery, pkg, serviceType)
	if err != nil {
		return s.respondError(ctx, err)
	}

	view, err := s.compareCouriersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	dto := ComparisonDTO{
		Ranked:         make([]ScoredQuoteDTO, 0, len(view.Ranked)),
		BestValue:      scoredQuoteDTOPtr(view.BestValue),
		Fastest:        scoredQuoteDTOPtr(view.Fastest),
		MostReliable:   scoredQuoteDTOPtr(view.MostReliable),
		NoQuotesReason: view.NoQuotesReason,
	}
	for _, scored := range view.Ranked {
		dto.Ranked = append(dto.Ranked, newScoredQuoteDTO(scored))
	}

	return ctx.JSON(http.StatusOK, dto)
}

// ZoneRates handles GET /api/v1/rates/zones.
func (s *Server) ZoneRates(ctx echo.Context) error {
	weightKg, err := parseFloatParam(ctx, "weight_kg", 1)
	if err != nil {
		return s.respondError(ctx, err)
	}

	serviceType := courier.ServiceStandard
	if raw := ctx.QueryParam("service_type"); raw != "" {
		if serviceType, err = courier.ParseServiceType(raw); err != nil {
			return s.respondError(ctx, err)
		}
	}

	query, err := queries.NewZoneRatesQuery(
		geo.ZoneID(ctx.QueryParam("from")),
		geo.ZoneID(ctx.QueryParam("to")),
		weightKg,
		serviceType,
	)
	if err != nil {
		return s.respondError(ctx, err)
	}

	view, err := s.zoneRatesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	dto := ZoneRatesDTO{
		ZoneFrom:   view.ZoneFrom,
		ZoneTo:     view.ZoneTo,
		DistanceKm: view.DistanceKm,
		WeightKg:   weightKg,
		Quotes:     make([]QuoteDTO, 0, len(view.Quotes)),
	}
	for _, q := range view.Quotes {
		dto.Quotes = append(dto.Quotes, newQuoteDTO(q))
	}

	return ctx.JSON(http.StatusOK, dto)
}

// DynamicPricing handles POST /api/v1/rates/dynamic.
func (s *Server) DynamicPricing(ctx echo.Context) error {
	var req DynamicPricingRequest
	if err := s.bind(ctx, &req); err != nil {
		return s.respondError(ctx, err)
	}

	request, err := s.toRateRequest(req.Pickup, req.Delivery, req.Package, req.ServiceTypes, nil)
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewDynamicPricingQuery(request, services.PricingContext{
		DemandFactor:   req.DemandFactor,
		SeasonalFactor: req.SeasonalFactor,
		Hour:           req.Hour,
		Festival:       req.Festival,
	})
	if err != nil {
		return s.respondError(ctx, err)
	}

	view, err := s.dynamicPricingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DynamicPricingDTO{
		Aggregation:    newAggregationDTO(view.Aggregation),
		FestivalPeriod: view.FestivalPeriod,
	})
}

// VolumeDiscounts handles POST /api/v1/rates/volume-discounts.
func (s *Server) VolumeDiscounts(ctx echo.Context) error {
	var req VolumeDiscountsRequest
	if err := s.bind(ctx, &req); err != nil {
		return s.respondError(ctx, err)
	}

	request, err := s.toRateRequest(req.Pickup, req.Delivery, req.Package, req.ServiceTypes, nil)
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewVolumeDiscountsQuery(request, req.MonthlyVolume)
	if err != nil {
		return s.respondError(ctx, err)
	}

	view, err := s.volumeDiscountsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	dto := VolumeDiscountsDTO{
		Aggregation:   newAggregationDTO(view.Aggregation),
		MonthlyVolume: view.MonthlyVolume,
		CurrentTier:   newTierDTO(view.CurrentTier),
	}
	if view.NextTier != nil {
		next := newTierDTO(*view.NextTier)
		dto.NextTier = &next
	}

	return ctx.JSON(http.StatusOK, dto)
}

// ExpressRates handles POST /api/v1/rates/express.
func (s *Server) ExpressRates(ctx echo.Context) error {
	var req ExpressRatesRequest
	if err := s.bind(ctx, &req); err != nil {
		return s.respondError(ctx, err)
	}

	pickup, delivery, pkg, err := s.toShipmentParts(req.Pickup, req.Delivery, req.Package)
	if err != nil {
		return s.respondError(ctx, err)
	}

	urgency, err := queries.ParseUrgencyLevel(req.Urgency)
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewExpressRatesQuery(pickup, delivery, pkg, urgency)
	if err != nil {
		return s.respondError(ctx, err)
	}

	view, err := s.expressRatesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	dto := ExpressRatesDTO{
		Urgency:        view.Urgency,
		StandardQuote:  quoteDTOPtr(view.StandardQuote),
		Options:        make([]ExpressOptionDTO, 0, len(view.Options)),
		NoQuotesReason: view.NoQuotesReason,
	}
	for _, option := range view.Options {
		dto.Options = append(dto.Options, ExpressOptionDTO{
			Quote:               newQuoteDTO(option.Quote),
			PremiumOverStandard: option.PremiumOverStandard,
			HoursSaved:          option.HoursSaved,
		})
	}

	return ctx.JSON(http.StatusOK, dto)
}

// InternationalRates handles POST /api/v1/rates/international.
func (s *Server) InternationalRates(ctx echo.Context) error {
	var req InternationalRatesRequest
	if err := s.bind(ctx, &req); err != nil {
		return s.respondError(ctx, err)
	}

	pkg, err := toPackage(req.Package)
	if err != nil {
		return s.respondError(ctx, err)
	}

	method, err := services.ParseShippingMethod(req.Method)
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewInternationalRatesQuery(
		req.DestinationCountry, pkg, kernel.Money(req.CustomsValue), method)
	if err != nil {
		return s.respondError(ctx, err)
	}

	view, err := s.internationalRatesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, InternationalQuoteDTO{
		Country:      view.Country,
		Method:       view.Method,
		Base:         view.Base,
		Weight:       view.Weight,
		Customs:      view.Customs,
		Handling:     view.Handling,
		Insurance:    view.Insurance,
		Total:        view.Total,
		Currency:     view.Currency,
		CustomsValue: view.CustomsValue,
		TransitDays:  view.TransitDays,
		ETA:          view.ETA,
	})
}

// CODCharges handles GET /api/v1/rates/cod.
func (s *Server) CODCharges(ctx echo.Context) error {
	amount, err := parseIntParam(ctx, "amount", 0)
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewCODChargesQuery(
		kernel.Money(amount), courier.CourierID(ctx.QueryParam("courier")))
	if err != nil {
		return s.respondError(ctx, err)
	}

	view, err := s.codChargesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	dto := CODChargesDTO{
		Amount:   view.Amount,
		Currency: view.Currency,
		Charges:  make([]CODChargeDTO, 0, len(view.Charges)),
	}
	for _, charge := range view.Charges {
		dto.Charges = append(dto.Charges, CODChargeDTO{
			CourierID:      charge.CourierID,
			CourierName:    charge.CourierName,
			HandlingCharge: charge.HandlingCharge,
			TotalPayable:   charge.TotalPayable,
		})
	}

	return ctx.JSON(http.StatusOK, dto)
}

// FuelSurcharge handles GET /api/v1/rates/fuel.
func (s *Server) FuelSurcharge(ctx echo.Context) error {
	baseCost, err := parseIntParam(ctx, "base_cost", 0)
	if err != nil {
		return s.respondError(ctx, err)
	}
	distanceKm, err := parseFloatParam(ctx, "distance_km", 0)
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewFuelSurchargeQuery(kernel.Money(baseCost), distanceKm)
	if err != nil {
		return s.respondError(ctx, err)
	}

	view, err := s.fuelSurchargeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, FuelSurchargeDTO{
		BaseCost:        view.BaseCost,
		DistanceKm:      view.DistanceKm,
		DistanceCharges: view.DistanceCharges,
		Surcharge:       view.Surcharge,
		Total:           view.Total,
		RatePercent:     view.RatePercent,
		Currency:        view.Currency,
	})
}

// RunBatch handles POST /api/v1/rates/batch.
func (s *Server) RunBatch(ctx echo.Context) error {
	var req RunBatchRequest
	if err := s.bind(ctx, &req); err != nil {
		return s.respondError(ctx, err)
	}

	shipments := make([]commands.BatchShipment, 0, len(req.Shipments))
	for _, line := range req.Shipments {
		// Service types stay raw here; an unparseable entry becomes that
		// shipment's error result instead of rejecting the batch.
		shipments = append(shipments, commands.BatchShipment{
			Reference:        line.Reference,
			PickupCity:       line.PickupCity,
			PickupDistrict:   line.PickupDistrict,
			DeliveryCity:     line.DeliveryCity,
			DeliveryDistrict: line.DeliveryDistrict,
			WeightKg:         line.WeightKg,
			DeclaredValue:    kernel.Money(line.DeclaredValue),
			CODAmount:        kernel.Money(line.CODAmount),
			ServiceTypes:     line.ServiceTypes,
		})
	}

	cmd, err := commands.NewRunBatchCommand(shipments, req.MaxWorkers)
	if err != nil {
		return s.respondError(ctx, err)
	}

	view, err := s.runBatchHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, newBatchDTO(view))
}

// bind decodes and validates the request body.
func (s *Server) bind(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}
	if err := s.validate.Struct(req); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}
	return nil
}

// respondError maps domain errors onto HTTP statuses.
func (s *Server) respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, services.ErrUnsupportedDestination):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, ErrorDTO{Code: status, Message: err.Error()})
}

func (s *Server) toShipmentParts(
	pickupDTO, deliveryDTO AddressDTO,
	packageDTO PackageDTO,
) (geo.Address, geo.Address, shipment.PackageDetails, error) {
	pickup, err := toAddress(pickupDTO)
	if err != nil {
		return geo.Address{}, geo.Address{}, shipment.PackageDetails{}, err
	}
	delivery, err := toAddress(deliveryDTO)
	if err != nil {
		return geo.Address{}, geo.Address{}, shipment.PackageDetails{}, err
	}
	pkg, err := toPackage(packageDTO)
	if err != nil {
		return geo.Address{}, geo.Address{}, shipment.PackageDetails{}, err
	}
	return pickup, delivery, pkg, nil
}

func (s *Server) toRateRequest(
	pickupDTO, deliveryDTO AddressDTO,
	packageDTO PackageDTO,
	serviceTypeNames []string,
	preferredCouriers []string,
) (shipment.RateRequest, error) {
	pickup, delivery, pkg, err := s.toShipmentParts(pickupDTO, deliveryDTO, packageDTO)
	if err != nil {
		return shipment.RateRequest{}, err
	}

	serviceTypes, err := toServiceTypes(serviceTypeNames)
	if err != nil {
		return shipment.RateRequest{}, err
	}

	preferred := make([]courier.CourierID, 0, len(preferredCouriers))
	for _, id := range preferredCouriers {
		preferred = append(preferred, courier.CourierID(id))
	}

	return shipment.NewRateRequest(pickup, delivery, pkg, serviceTypes, preferred)
}

func toAddress(dto AddressDTO) (geo.Address, error) {
	return geo.NewAddress(dto.City, dto.District, dto.Line)
}

func toPackage(dto PackageDTO) (shipment.PackageDetails, error) {
	return shipment.NewPackageDetails(
		dto.WeightKg,
		shipment.Dimensions{
			LengthCm: dto.LengthCm,
			WidthCm:  dto.WidthCm,
			HeightCm: dto.HeightCm,
		},
		kernel.Money(dto.DeclaredValue),
		kernel.Money(dto.CODAmount),
	)
}

func toServiceTypes(names []string) ([]courier.ServiceType, error) {
	serviceTypes := make([]courier.ServiceType, 0, len(names))
	for _, name := range names {
		serviceType, err := courier.ParseServiceType(name)
		if err != nil {
			return nil, err
		}
		serviceTypes = append(serviceTypes, serviceType)
	}
	return serviceTypes, nil
}

func newTierDTO(view queries.TierView) TierDTO {
	return TierDTO{
		Name:             view.Name,
		MinMonthlyVolume: view.MinMonthlyVolume,
		Percentage:       view.Percentage,
	}
}

func parseFloatParam(ctx echo.Context, name string, fallback float64) (float64, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return value, nil
}

func parseIntParam(ctx echo.Context, name string, fallback int64) (int64, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return value, nil
}
