package services_test

import (
	"context"
	"testing"

	"shiprates/internal/core/domain/model/courier"
	"shiprates/internal/core/domain/model/geo"
	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/core/domain/model/shipment"
	"shiprates/internal/core/domain/services"
	"shiprates/internal/pkg/errs"
	"shiprates/internal/pkg/metrics"

	"github.com/stretchr/testify/require"
	"github.com/zoobzio/clockz"
)

// mapDistanceSource is a DistanceSource backed by a plain map, with an
// optional forced error to simulate an unreachable cache.
type mapDistanceSource struct {
	distances map[string]float64
	err       error
}

func (s *mapDistanceSource) Distance(_ context.Context, from, to geo.ZoneID) (float64, bool, error) {
	if s.err != nil {
		return 0, false, s.err
	}
	if km, ok := s.distances[string(from)+"-"+string(to)]; ok {
		return km, true, nil
	}
	if km, ok := s.distances[string(to)+"-"+string(from)]; ok {
		return km, true, nil
	}
	return 0, false, nil
}

// stubRateSource serves a fixed rate table.
type stubRateSource struct {
	table *courier.RateTable
	err   error
}

func (s *stubRateSource) RateTable(_ context.Context) (*courier.RateTable, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.table, nil
}

// stubCatalog serves a fixed partner list, honoring the catalog contract:
// inactive partners are excluded and a non-empty preferred list restricts
// the result.
type stubCatalog struct {
	partners []*courier.Partner
}

func (c *stubCatalog) EligibleCouriers(_ context.Context, preferred []courier.CourierID) ([]*courier.Partner, error) {
	allowed := make(map[courier.CourierID]bool, len(preferred))
	for _, id := range preferred {
		allowed[id] = true
	}

	out := make([]*courier.Partner, 0, len(c.partners))
	for _, p := range c.partners {
		if !p.IsActive() {
			continue
		}
		if len(allowed) > 0 && !allowed[p.ID()] {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (c *stubCatalog) GetPartner(_ context.Context, id courier.CourierID) (*courier.Partner, error) {
	for _, p := range c.partners {
		if p.ID() == id {
			return p, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("courier", id)
}

func mustZone(t *testing.T, id geo.ZoneID, class geo.ZoneClass, tier int) geo.Zone {
	t.Helper()
	zone, err := geo.NewZone(id, class, tier)
	require.NoError(t, err)
	return zone
}

func testZoneTable(t *testing.T) *geo.ZoneTable {
	t.Helper()
	return geo.NewZoneTable([]geo.Zone{
		mustZone(t, "dhaka", geo.ZoneClassMetro, 1),
		mustZone(t, "chittagong", geo.ZoneClassCity, 2),
		mustZone(t, "sylhet", geo.ZoneClassCity, 2),
		mustZone(t, "gazipur", geo.ZoneClassTown, 3),
	})
}

func testDistanceSource() *mapDistanceSource {
	return &mapDistanceSource{distances: map[string]float64{
		"dhaka-dhaka":      8,
		"dhaka-gazipur":    5,
		"dhaka-chittagong": 250,
		"dhaka-sylhet":     240,
	}}
}

func testAddress(t *testing.T, city string) geo.Address {
	t.Helper()
	address, err := geo.NewAddress(city, "", "")
	require.NoError(t, err)
	return address
}

func testPackage(t *testing.T, weightKg float64, codAmount kernel.Money) shipment.PackageDetails {
	t.Helper()
	pkg, err := shipment.NewPackageDetails(
		weightKg,
		shipment.Dimensions{LengthCm: 20, WidthCm: 15, HeightCm: 10},
		kernel.Money(500),
		codAmount,
	)
	require.NoError(t, err)
	return pkg
}

func testRequest(
	t *testing.T,
	pickupCity, deliveryCity string,
	weightKg float64,
	codAmount kernel.Money,
	serviceTypes ...courier.ServiceType,
) shipment.RateRequest {
	t.Helper()
	request, err := shipment.NewRateRequest(
		testAddress(t, pickupCity),
		testAddress(t, deliveryCity),
		testPackage(t, weightKg, codAmount),
		serviceTypes,
		nil,
	)
	require.NoError(t, err)
	return request
}

func testPartner(
	t *testing.T,
	id courier.CourierID,
	coverage []string,
	baseRates map[courier.ServiceType]courier.BaseRate,
	codCharge kernel.Money,
) *courier.Partner {
	t.Helper()
	partner, err := courier.NewPartner(id, string(id)+" Courier", true, coverage, baseRates, codCharge, []string{"tracking"})
	require.NoError(t, err)
	return partner
}

func testCalculator(t *testing.T, clock clockz.Clock, rates *courier.RateTable) *services.RateLineCalculator {
	t.Helper()
	geography := services.NewGeographyResolver(testZoneTable(t), testDistanceSource())
	return services.NewRateLineCalculator(
		geography,
		&stubRateSource{table: rates},
		clock,
		metrics.NewNopEngineMetrics(),
	)
}
