package jobs

import (
	"context"
	"log/slog"

	"shiprates/internal/adapters/out/memory"
	"shiprates/internal/core/domain/model/courier"
	"shiprates/internal/core/domain/model/geo"

	"github.com/robfig/cron/v3"
)

// CatalogSource is the persistence surface the refresh job reads: the full
// partner catalog and the contracted rate rows.
type CatalogSource interface {
	GetAll(ctx context.Context) ([]*courier.Partner, error)
	ContractRates(ctx context.Context) ([]courier.RateRow, error)
}

// CatalogRefreshJob periodically reloads courier partners and contract rates
// from the database into the in-memory snapshot. Distances are static
// reference data and are carried over unchanged on every refresh.
type CatalogRefreshJob struct {
	source    CatalogSource
	store     *memory.Store
	distances []geo.DistanceEntry
	schedule  string
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewCatalogRefreshJob creates a refresh job with the given cron schedule
// (six-field, with seconds).
func NewCatalogRefreshJob(
	source CatalogSource,
	store *memory.Store,
	distances []geo.DistanceEntry,
	schedule string,
	logger *slog.Logger,
) *CatalogRefreshJob {
	return &CatalogRefreshJob{
		source:    source,
		store:     store,
		distances: distances,
		schedule:  schedule,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "catalog_refresh_job"),
	}
}

// Start schedules the periodic refresh.
func (j *CatalogRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.Refresh(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Catalog refresh failed; keeping previous snapshot", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Catalog refresh job started", "schedule", j.schedule)
	return nil
}

// Stop stops the refresh job.
func (j *CatalogRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Catalog refresh job stopped")
}

// Refresh performs one reload. Exposed so startup can prime the snapshot
// before serving traffic.
func (j *CatalogRefreshJob) Refresh(ctx context.Context) error {
	partners, err := j.source.GetAll(ctx)
	if err != nil {
		return err
	}

	rows, err := j.source.ContractRates(ctx)
	if err != nil {
		return err
	}

	j.store.Refresh(memory.Dataset{
		Partners:  partners,
		RateRows:  rows,
		Distances: j.distances,
	})

	j.logger.InfoContext(ctx, "Catalog snapshot refreshed",
		"partners", len(partners), "contract_rates", len(rows))
	return nil
}
