package commands

import (
	"context"
	"fmt"

	"shiprates/internal/core/domain/model/batch"
	"shiprates/internal/core/domain/model/courier"
	"shiprates/internal/core/domain/model/geo"
	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/core/domain/model/shipment"
	"shiprates/internal/core/domain/services"
	"shiprates/internal/pkg/metrics"

	"github.com/zoobzio/clockz"
	"golang.org/x/sync/errgroup"
)

const (
	batchOutcomeSuccess = "success"
	batchOutcomeFailure = "failure"
)

// RunBatchCommandHandler runs the aggregation pipeline over every shipment of
// a batch with bounded concurrency. Shipments are independent: each worker
// writes only its own result slot, and any per-shipment failure is captured
// there instead of aborting the run. The completed job is persisted through
// the batch log before the view is returned.
type RunBatchCommandHandler struct {
	aggregator *services.RateAggregator
	uowFactory BatchUoWFactory
	clock      clockz.Clock
	metrics    *metrics.EngineMetrics
}

// NewRunBatchCommandHandler creates a batch handler.
func NewRunBatchCommandHandler(
	aggregator *services.RateAggregator,
	uowFactory BatchUoWFactory,
	clock clockz.Clock,
	engineMetrics *metrics.EngineMetrics,
) RunBatchCommandHandler {
	return RunBatchCommandHandler{
		aggregator: aggregator,
		uowFactory: uowFactory,
		clock:      clock,
		metrics:    engineMetrics,
	}
}

// Handle executes the batch and persists the job. The command itself fails
// only on persistence errors; shipment errors are contained in their slots.
func (h RunBatchCommandHandler) Handle(ctx context.Context, cmd RunBatchCommand) (BatchView, error) {
	if err := cmd.Validate(); err != nil {
		return BatchView{}, err
	}

	shipments := cmd.Shipments()
	results := make([]batch.Result, len(shipments))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(cmd.MaxWorkers())
	for i, line := range shipments {
		group.Go(func() error {
			results[i] = h.runShipment(groupCtx, line)
			return nil
		})
	}
	// Workers never return errors; Wait only joins them.
	_ = group.Wait()

	for _, result := range results {
		outcome := batchOutcomeSuccess
		if !result.Succeeded {
			outcome = batchOutcomeFailure
		}
		h.metrics.BatchShipments.WithLabelValues(outcome).Inc()
	}

	job, err := batch.NewJob(kernel.NewUUID(), h.clock.Now(), results)
	if err != nil {
		return BatchView{}, err
	}

	if err = h.persist(ctx, job); err != nil {
		return BatchView{}, err
	}

	return newBatchView(job), nil
}

// runShipment computes one shipment's outcome. Every failure path ends in an
// error result keyed by the shipment reference.
func (h RunBatchCommandHandler) runShipment(ctx context.Context, line BatchShipment) batch.Result {
	result := batch.Result{Reference: line.Reference}

	request, err := buildRequest(line)
	if err != nil {
		result.FailureReason = err.Error()
		return result
	}

	aggregation, err := h.aggregator.Aggregate(ctx, request, services.AdjustmentOptions{})
	if err != nil {
		result.FailureReason = err.Error()
		return result
	}
	if len(aggregation.Quotes) == 0 {
		result.FailureReason = aggregation.NoQuotesReason
		return result
	}

	result.Succeeded = true
	result.QuoteCount = len(aggregation.Quotes)
	if best, ok := aggregation.BestPerServiceType[courier.ServiceStandard]; ok {
		result.BestStandard = best.Total()
	} else {
		// No standard tier quoted; fall back to the cheapest overall.
		result.BestStandard = aggregation.Quotes[0].Total()
	}
	return result
}

func (h RunBatchCommandHandler) persist(ctx context.Context, job *batch.Job) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.BatchLogRepository().Add(ctx, job); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func buildRequest(line BatchShipment) (shipment.RateRequest, error) {
	pickup, err := geo.NewAddress(line.PickupCity, line.PickupDistrict, "")
	if err != nil {
		return shipment.RateRequest{}, fmt.Errorf("pickup: %w", err)
	}
	delivery, err := geo.NewAddress(line.DeliveryCity, line.DeliveryDistrict, "")
	if err != nil {
		return shipment.RateRequest{}, fmt.Errorf("delivery: %w", err)
	}
	pkg, err := shipment.NewPackageDetails(line.WeightKg, shipment.Dimensions{}, line.DeclaredValue, line.CODAmount)
	if err != nil {
		return shipment.RateRequest{}, fmt.Errorf("package: %w", err)
	}

	// An empty list means every tier; an unparseable entry fails the line.
	serviceTypes := make([]courier.ServiceType, 0, len(line.ServiceTypes))
	for _, raw := range line.ServiceTypes {
		serviceType, err := courier.ParseServiceType(raw)
		if err != nil {
			return shipment.RateRequest{}, fmt.Errorf("service types: %w", err)
		}
		serviceTypes = append(serviceTypes, serviceType)
	}

	return shipment.NewRateRequest(pickup, delivery, pkg, serviceTypes, nil)
}

func newBatchView(job *batch.Job) BatchView {
	summary := job.Summarize()
	view := BatchView{
		JobID: job.ID().String(),
		Summary: BatchSummaryView{
			Total:              summary.Total,
			Succeeded:          summary.Succeeded,
			Failed:             summary.Failed,
			TotalEstimatedCost: int64(summary.TotalEstimatedCost),
		},
		Results: make([]BatchResultView, 0, len(job.Results())),
	}

	for _, result := range job.Results() {
		view.Results = append(view.Results, BatchResultView{
			Reference:    result.Reference,
			Succeeded:    result.Succeeded,
			QuoteCount:   result.QuoteCount,
			BestStandard: int64(result.BestStandard),
			Error:        result.FailureReason,
		})
	}

	return view
}
