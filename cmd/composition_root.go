package cmd

import (
	"log/slog"

	shiphttp "shiprates/internal/adapters/in/http"
	"shiprates/internal/adapters/out/memory"
	"shiprates/internal/adapters/out/postgres"
	"shiprates/internal/adapters/out/postgres/courierrepo"
	redisadapter "shiprates/internal/adapters/out/redis"
	"shiprates/internal/core/application/usecases/commands"
	"shiprates/internal/core/application/usecases/queries"
	"shiprates/internal/core/domain/model/geo"
	"shiprates/internal/core/domain/services"
	"shiprates/internal/core/ports"
	"shiprates/internal/jobs"
	"shiprates/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	"github.com/zoobzio/clockz"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB        *gorm.DB
	registry      *prometheus.Registry
	engineMetrics *metrics.EngineMetrics
	clock         clockz.Clock

	store      *memory.Store
	geography  *services.GeographyResolver
	calculator *services.RateLineCalculator
	adjuster   *services.DynamicPricingAdjuster
	discounts  *services.VolumeDiscountEngine
	aggregator *services.RateAggregator
	advisor    *services.RankingAdvisor
	tariffs    *services.InternationalTariffCalculator

	uowFactory  postgres.GormUnitOfWorkFactory
	courierRepo *courierrepo.GormCourierRepository
	jobManager  *jobs.JobManager
	refreshJob  *jobs.CatalogRefreshJob
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	redisClient *goredis.Client,
	logger *slog.Logger,
) (*CompositionRoot, error) {
	zones, err := memory.DefaultZones()
	if err != nil {
		return nil, err
	}

	// The store starts with distances only; the refresh job fills in partners
	// and contract rates from the database.
	store := memory.NewStore(memory.Dataset{Distances: memory.DefaultDistances()})

	var distances ports.DistanceSource = store
	if redisClient != nil {
		distances = redisadapter.NewDistanceCache(redisClient, store, 0)
	}

	registry := prometheus.NewRegistry()
	engineMetrics := metrics.NewEngineMetrics(registry)
	clock := clockz.RealClock

	geography := services.NewGeographyResolver(geo.NewZoneTable(zones), distances)
	calculator := services.NewRateLineCalculator(geography, store, clock, engineMetrics)
	adjuster := services.NewDynamicPricingAdjuster(clock)
	discounts, err := services.NewVolumeDiscountEngine(services.DefaultDiscountTiers())
	if err != nil {
		return nil, err
	}
	aggregator := services.NewRateAggregator(store, calculator, adjuster, discounts, geography, engineMetrics)

	courierRepo := courierrepo.NewGormCourierRepository(gormDB)
	refreshJob := jobs.NewCatalogRefreshJob(
		courierRepo, store, memory.DefaultDistances(), config.CatalogRefreshSchedule, logger)

	return &CompositionRoot{
		gormDB:        gormDB,
		registry:      registry,
		engineMetrics: engineMetrics,
		clock:         clock,
		store:         store,
		geography:     geography,
		calculator:    calculator,
		adjuster:      adjuster,
		discounts:     discounts,
		aggregator:    aggregator,
		advisor:       services.NewRankingAdvisor(memory.DefaultReliability()),
		tariffs: services.NewInternationalTariffCalculator(
			services.NewTariffTable(memory.DefaultTariffRows()), clock),
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		courierRepo: courierRepo,
		jobManager:  jobs.NewJobManager(refreshJob),
		refreshJob:  refreshJob,
	}, nil
}

func (c *CompositionRoot) CreateCalculateRatesQueryHandler() queries.CalculateRatesQueryHandler {
	return queries.NewCalculateRatesQueryHandler(c.aggregator)
}

func (c *CompositionRoot) CreateCompareCouriersQueryHandler() queries.CompareCouriersQueryHandler {
	return queries.NewCompareCouriersQueryHandler(c.aggregator, c.advisor)
}

func (c *CompositionRoot) CreateZoneRatesQueryHandler() queries.ZoneRatesQueryHandler {
	return queries.NewZoneRatesQueryHandler(c.store, c.calculator, c.geography)
}

func (c *CompositionRoot) CreateDynamicPricingQueryHandler() queries.DynamicPricingQueryHandler {
	return queries.NewDynamicPricingQueryHandler(c.aggregator, c.adjuster)
}

func (c *CompositionRoot) CreateVolumeDiscountsQueryHandler() queries.VolumeDiscountsQueryHandler {
	return queries.NewVolumeDiscountsQueryHandler(c.aggregator, c.discounts)
}

func (c *CompositionRoot) CreateCODChargesQueryHandler() queries.CODChargesQueryHandler {
	return queries.NewCODChargesQueryHandler(c.store)
}

func (c *CompositionRoot) CreateFuelSurchargeQueryHandler() queries.FuelSurchargeQueryHandler {
	return queries.NewFuelSurchargeQueryHandler()
}

func (c *CompositionRoot) CreateExpressRatesQueryHandler() queries.ExpressRatesQueryHandler {
	return queries.NewExpressRatesQueryHandler(c.aggregator)
}

func (c *CompositionRoot) CreateInternationalRatesQueryHandler() queries.InternationalRatesQueryHandler {
	return queries.NewInternationalRatesQueryHandler(c.tariffs)
}

func (c *CompositionRoot) CreateRunBatchCommandHandler() commands.RunBatchCommandHandler {
	var f commands.BatchUoWFactory = FuncBatchUoWFactory(func() commands.BatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRunBatchCommandHandler(c.aggregator, f, c.clock, c.engineMetrics)
}

func (c *CompositionRoot) CreateServer() *shiphttp.Server {
	return shiphttp.NewServer(
		c.CreateCalculateRatesQueryHandler(),
		c.CreateCompareCouriersQueryHandler(),
		c.CreateZoneRatesQueryHandler(),
		c.CreateDynamicPricingQueryHandler(),
		c.CreateVolumeDiscountsQueryHandler(),
		c.CreateCODChargesQueryHandler(),
		c.CreateFuelSurchargeQueryHandler(),
		c.CreateExpressRatesQueryHandler(),
		c.CreateInternationalRatesQueryHandler(),
		c.CreateRunBatchCommandHandler(),
	)
}

func (c *CompositionRoot) Registry() *prometheus.Registry {
	return c.registry
}

func (c *CompositionRoot) CourierRepository() *courierrepo.GormCourierRepository {
	return c.courierRepo
}

func (c *CompositionRoot) CatalogRefreshJob() *jobs.CatalogRefreshJob {
	return c.refreshJob
}

func (c *CompositionRoot) JobManager() *jobs.JobManager {
	return c.jobManager
}

type FuncBatchUoWFactory func() commands.BatchUoW

func (f FuncBatchUoWFactory) Create() commands.BatchUoW {
	return f()
}
