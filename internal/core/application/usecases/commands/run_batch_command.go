package commands

import (
	"errors"
	"strings"

	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/pkg/errs"
	"shiprates/internal/pkg/guard"
)

// ErrRunBatchCommandIsNotConstructed is returned when validating a command
// that was not created via NewRunBatchCommand.
var ErrRunBatchCommandIsNotConstructed = errors.New(
	"RunBatchCommand must be created via NewRunBatchCommand constructor",
)

// defaultBatchWorkers bounds concurrent shipment computations when the caller
// does not choose a limit.
const defaultBatchWorkers = 8

// BatchShipment is one raw shipment line of a batch. Fields are deliberately
// unvalidated input, service types included: a malformed shipment must become
// its own error result during the run, never reject the whole batch up front.
type BatchShipment struct {
	Reference        string
	PickupCity       string
	PickupDistrict   string
	DeliveryCity     string
	DeliveryDistrict string
	WeightKg         float64
	DeclaredValue    kernel.Money
	CODAmount        kernel.Money
	ServiceTypes     []string
}

// RunBatchCommand requests a bulk rate calculation run. Only the batch shape
// is validated here (non-empty, unique non-blank references); per-shipment
// content errors are contained in their result slots.
//
// Example:
//
//	cmd, err := NewRunBatchCommand(shipments, 0)
//	if err != nil {
//	    return err
//	}
//
//	view, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("batch %s: %d ok, %d failed\n", view.JobID, view.Summary.Succeeded, view.Summary.Failed)
type RunBatchCommand struct {
	shipments  []BatchShipment
	maxWorkers int

	guard guard.ConstructorGuard
}

// NewRunBatchCommand creates a batch command. A non-positive worker limit
// selects the default bound.
func NewRunBatchCommand(shipments []BatchShipment, maxWorkers int) (RunBatchCommand, error) {
	if len(shipments) == 0 {
		return RunBatchCommand{}, errs.NewValueIsRequiredError("shipments")
	}

	seen := make(map[string]bool, len(shipments))
	for _, s := range shipments {
		reference := strings.TrimSpace(s.Reference)
		if reference == "" {
			return RunBatchCommand{}, errs.NewValueIsRequiredError("shipment reference")
		}
		if seen[reference] {
			return RunBatchCommand{}, errs.NewValueIsInvalidError("shipment reference " + reference)
		}
		seen[reference] = true
	}

	if maxWorkers <= 0 {
		maxWorkers = defaultBatchWorkers
	}

	return RunBatchCommand{
		shipments:  append([]BatchShipment(nil), shipments...),
		maxWorkers: maxWorkers,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RunBatchCommand) Validate() error {
	return c.guard.Validate(ErrRunBatchCommandIsNotConstructed)
}

// Shipments returns the batch lines in submission order.
func (c RunBatchCommand) Shipments() []BatchShipment {
	return append([]BatchShipment(nil), c.shipments...)
}

// MaxWorkers returns the bounded worker count for the run.
func (c RunBatchCommand) MaxWorkers() int {
	return c.maxWorkers
}

// BatchResultView is one shipment's outcome in the read model.
type BatchResultView struct {
	Reference    string
	Succeeded    bool
	QuoteCount   int
	BestStandard int64
	Error        string
}

// BatchSummaryView is the derived roll-up of one batch run.
type BatchSummaryView struct {
	Total              int
	Succeeded          int
	Failed             int
	TotalEstimatedCost int64
}

// BatchView is the read model of one completed batch run.
type BatchView struct {
	JobID   string
	Summary BatchSummaryView
	Results []BatchResultView
}
