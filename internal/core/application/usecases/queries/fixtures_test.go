package queries_test

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

// engineFixture wires a complete in-memory engine for handler tests.
type engineFixture struct {
	catalog    *stubCatalog
	geography  *services.GeographyResolver
	calculator *services.RateLineCalculator
	aggregator *services.RateAggregator
	adjuster   *services.DynamicPricingAdjuster
	discounts  *services.VolumeDiscountEngine
	advisor    *services.RankingAdvisor
	tariffs    *services.InternationalTariffCalculator
	clock      clockz.Clock
}

func newEngineFixture(t *testing.T, partners ...*courier.Partner) *engineFixture {
	t.Helper()

	clock := clockz.NewFakeClock()
	zones := geo.NewZoneTable([]geo.Zone{
		mustZone(t, "dhaka", geo.ZoneClassMetro, 1),
		mustZone(t, "chittagong", geo.ZoneClassCity, 2),
		mustZone(t, "gazipur", geo.ZoneClassTown, 3),
	})
	distances := &stubDistances{distances: map[string]float64{
		"dhaka-dhaka":      8,
		"dhaka-gazipur":    5,
		"dhaka-chittagong": 250,
	}}

	catalog := &stubCatalog{partners: partners}
	geography := services.NewGeographyResolver(zones, distances)
	nop := metrics.NewNopEngineMetrics()
	calculator := services.NewRateLineCalculator(geography, &stubRateSource{table: courier.NewRateTable(nil)}, clock, nop)
	adjuster := services.NewDynamicPricingAdjuster(clock)
	discounts, err := services.NewVolumeDiscountEngine(services.DefaultDiscountTiers())
	require.NoError(t, err)

	return &engineFixture{
		catalog:    catalog,
		geography:  geography,
		calculator: calculator,
		aggregator: services.NewRateAggregator(catalog, calculator, adjuster, discounts, geography, nop),
		adjuster:   adjuster,
		discounts:  discounts,
		advisor: services.NewRankingAdvisor(map[courier.CourierID]float64{
			"pathao":   95,
			"paperfly": 80,
		}),
		tariffs: services.NewInternationalTariffCalculator(services.NewTariffTable([]services.TariffRow{
			{Country: "India", Base: kernel.Money(500), PerKg: kernel.Money(200),
				CustomsFee: kernel.Money(150), Handling: kernel.Money(100)},
		}), clock),
		clock: clock,
	}
}

type stubDistances struct {
	distances map[string]float64
}

func (s *stubDistances) Distance(_ context.Context, from, to geo.ZoneID) (float64, bool, error) {
	if km, ok := s.distances[string(from)+"-"+string(to)]; ok {
		return km, true, nil
	}
	if km, ok := s.distances[string(to)+"-"+string(from)]; ok {
		return km, true, nil
	}
	return 0, false, nil
}

type stubRateSource struct {
	table *courier.RateTable
}

func (s *stubRateSource) RateTable(_ context.Context) (*courier.RateTable, error) {
	return s.table, nil
}

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

func testAddress(t *testing.T, city string) geo.Address {
	t.Helper()
	address, err := geo.NewAddress(city, "", "")
	require.NoError(t, err)
	return address
}

func testPackage(t *testing.T, weightKg float64, codAmount kernel.Money) shipment.PackageDetails {
	t.Helper()
	pkg, err := shipment.NewPackageDetails(weightKg, shipment.Dimensions{}, kernel.Money(500), codAmount)
	require.NoError(t, err)
	return pkg
}

func testRequest(t *testing.T, pickupCity, deliveryCity string, serviceTypes ...courier.ServiceType) shipment.RateRequest {
	t.Helper()
	request, err := shipment.NewRateRequest(
		testAddress(t, pickupCity),
		testAddress(t, deliveryCity),
		testPackage(t, 2, 0),
		serviceTypes,
		nil,
	)
	require.NoError(t, err)
	return request
}

func fullServicePartner(t *testing.T, id courier.CourierID, standardBase kernel.Money) *courier.Partner {
	t.Helper()
	partner, err := courier.NewPartner(id, string(id)+" Courier", true,
		[]string{courier.CoverageNationwide},
		map[courier.ServiceType]courier.BaseRate{
			courier.ServiceStandard: {Base: standardBase, PerKg: kernel.Money(20)},
			courier.ServiceNextDay:  {Base: standardBase + 20, PerKg: kernel.Money(22)},
			courier.ServiceExpress:  {Base: standardBase + 40, PerKg: kernel.Money(30)},
			courier.ServiceSameDay:  {Base: standardBase + 80, PerKg: kernel.Money(40)},
		},
		kernel.Money(10),
		[]string{"tracking"},
	)
	require.NoError(t, err)
	return partner
}
