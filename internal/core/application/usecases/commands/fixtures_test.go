package commands_test

import (
	"context"
	"testing"

	"shiprates/internal/core/application/usecases/commands"
	"shiprates/internal/core/domain/model/batch"
	"shiprates/internal/core/domain/model/courier"
	"shiprates/internal/core/domain/model/geo"
	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/core/domain/services"
	"shiprates/internal/core/ports"
	"shiprates/internal/pkg/errs"
	"shiprates/internal/pkg/metrics"

	"github.com/stretchr/testify/require"
	"github.com/zoobzio/clockz"
)

// batchFixture wires an in-memory engine plus a recording unit of work.
type batchFixture struct {
	aggregator *services.RateAggregator
	uowFactory *fakeBatchUoWFactory
	clock      clockz.Clock
	metrics    *metrics.EngineMetrics
}

func newBatchFixture(t *testing.T, partners ...*courier.Partner) *batchFixture {
	t.Helper()

	clock := clockz.NewFakeClock()
	zones := geo.NewZoneTable([]geo.Zone{
		mustZone(t, "dhaka", geo.ZoneClassMetro, 1),
		mustZone(t, "gazipur", geo.ZoneClassTown, 3),
	})
	distances := &stubDistances{distances: map[string]float64{
		"dhaka-dhaka":   8,
		"dhaka-gazipur": 5,
	}}

	geography := services.NewGeographyResolver(zones, distances)
	nop := metrics.NewNopEngineMetrics()
	calculator := services.NewRateLineCalculator(
		geography, &stubRateSource{table: courier.NewRateTable(nil)}, clock, nop)
	adjuster := services.NewDynamicPricingAdjuster(clock)
	discounts, err := services.NewVolumeDiscountEngine(services.DefaultDiscountTiers())
	require.NoError(t, err)

	return &batchFixture{
		aggregator: services.NewRateAggregator(
			&stubCatalog{partners: partners}, calculator, adjuster, discounts, geography, nop),
		uowFactory: &fakeBatchUoWFactory{uow: &fakeBatchUoW{repo: &fakeBatchLogRepository{}}},
		clock:      clock,
		metrics:    nop,
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

// fakeBatchLogRepository records added jobs in memory.
type fakeBatchLogRepository struct {
	jobs   []*batch.Job
	addErr error
}

func (r *fakeBatchLogRepository) Add(_ context.Context, job *batch.Job) error {
	if r.addErr != nil {
		return r.addErr
	}
	r.jobs = append(r.jobs, job)
	return nil
}

func (r *fakeBatchLogRepository) Get(_ context.Context, id kernel.UUID) (*batch.Job, error) {
	for _, job := range r.jobs {
		if job.ID() == id {
			return job, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("batch job", id)
}

// fakeBatchUoW records the transaction lifecycle around the repository.
type fakeBatchUoW struct {
	repo *fakeBatchLogRepository

	beginCalls    int
	commitCalls   int
	rollbackCalls int

	beginErr  error
	commitErr error
}

func (u *fakeBatchUoW) Begin(context.Context) error {
	u.beginCalls++
	return u.beginErr
}

func (u *fakeBatchUoW) Commit(context.Context) error {
	u.commitCalls++
	return u.commitErr
}

func (u *fakeBatchUoW) Rollback(context.Context) error {
	u.rollbackCalls++
	return nil
}

func (u *fakeBatchUoW) BatchLogRepository() ports.BatchLogRepository {
	return u.repo
}

type fakeBatchUoWFactory struct {
	uow *fakeBatchUoW
}

func (f *fakeBatchUoWFactory) Create() commands.BatchUoW {
	return f.uow
}

func mustZone(t *testing.T, id geo.ZoneID, class geo.ZoneClass, tier int) geo.Zone {
	t.Helper()
	zone, err := geo.NewZone(id, class, tier)
	require.NoError(t, err)
	return zone
}

func standardPartner(t *testing.T, id courier.CourierID, standardBase kernel.Money) *courier.Partner {
	t.Helper()
	partner, err := courier.NewPartner(id, string(id)+" Courier", true,
		[]string{courier.CoverageNationwide},
		map[courier.ServiceType]courier.BaseRate{
			courier.ServiceStandard: {Base: standardBase, PerKg: kernel.Money(20)},
			courier.ServiceExpress:  {Base: standardBase + 40, PerKg: kernel.Money(30)},
		},
		kernel.Money(10),
		[]string{"tracking"},
	)
	require.NoError(t, err)
	return partner
}
