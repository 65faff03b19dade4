package queries

import (
	"context"
	"errors"
	"sort"

	"shiprates/internal/core/domain/model/shipment"
	"shiprates/internal/core/domain/services"
	"shiprates/internal/core/ports"
	"shiprates/internal/pkg/errs"
)

// ZoneRatesQueryHandler prices an explicit zone pair across every active
// courier. Unknown zone identifiers are a validation error here, unlike
// address resolution which degrades to the sentinel zone.
type ZoneRatesQueryHandler struct {
	catalog    ports.CourierCatalog
	calculator *services.RateLineCalculator
	geography  *services.GeographyResolver
}

// NewZoneRatesQueryHandler creates a handler over the catalog, calculator and
// geography resolver.
func NewZoneRatesQueryHandler(
	catalog ports.CourierCatalog,
	calculator *services.RateLineCalculator,
	geography *services.GeographyResolver,
) ZoneRatesQueryHandler {
	return ZoneRatesQueryHandler{
		catalog:    catalog,
		calculator: calculator,
		geography:  geography,
	}
}

// Handle prices the zone pair for every active courier offering the service
// type, sorted ascending by total.
func (h ZoneRatesQueryHandler) Handle(ctx context.Context, query ZoneRatesQuery) (ZoneRatesView, error) {
	if err := query.Validate(); err != nil {
		return ZoneRatesView{}, err
	}

	zoneFrom, ok := h.geography.ZoneByID(query.ZoneFrom())
	if !ok {
		return ZoneRatesView{}, errs.NewObjectNotFoundError("zoneFrom", query.ZoneFrom())
	}
	zoneTo, ok := h.geography.ZoneByID(query.ZoneTo())
	if !ok {
		return ZoneRatesView{}, errs.NewObjectNotFoundError("zoneTo", query.ZoneTo())
	}

	pkg, err := shipment.NewPackageDetails(query.WeightKg(), shipment.Dimensions{}, 0, 0)
	if err != nil {
		return ZoneRatesView{}, err
	}

	partners, err := h.catalog.EligibleCouriers(ctx, nil)
	if err != nil {
		return ZoneRatesView{}, err
	}

	distanceKm, confidence := h.geography.Distance(ctx, zoneFrom, zoneTo)
	view := ZoneRatesView{
		ZoneFrom:           string(zoneFrom.ID()),
		ZoneTo:             string(zoneTo.ID()),
		DistanceKm:         distanceKm,
		DistanceConfidence: confidence.String(),
		Quotes:             make([]QuoteView, 0, len(partners)),
	}

	for _, partner := range partners {
		q, calcErr := h.calculator.CalculateForZones(ctx, zoneFrom, zoneTo, pkg, partner, query.ServiceType())
		if errors.Is(calcErr, services.ErrNoCoverage) || errors.Is(calcErr, services.ErrServiceNotOffered) {
			continue
		}
		if calcErr != nil {
			return ZoneRatesView{}, calcErr
		}
		view.Quotes = append(view.Quotes, newQuoteView(q))
	}

	sort.SliceStable(view.Quotes, func(i, j int) bool {
		return view.Quotes[i].Total < view.Quotes[j].Total
	})

	return view, nil
}
