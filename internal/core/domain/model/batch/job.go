// Package batch contains the batch job aggregate: the persisted record of one
// bulk rate calculation run and its per-shipment outcomes. A job's summary is
// always derived from its results, never stored independently of them.
package batch

import (
	"errors"
	"time"

	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/pkg/errs"
	"shiprates/internal/pkg/guard"
)

// ErrJobIsNotConstructed is returned when validating a Job that was not
// created via NewJob.
var ErrJobIsNotConstructed = errors.New("Job must be created via NewJob constructor")

// Result is the outcome of one shipment within a batch, keyed by the
// caller-supplied reference. Either a best-standard quote total (success) or
// an error reason (failure); never both.
type Result struct {
	Reference     string
	Succeeded     bool
	QuoteCount    int
	BestStandard  kernel.Money
	FailureReason string
}

// Job is the aggregate root of one batch run.
type Job struct {
	id        kernel.UUID
	createdAt time.Time
	results   []Result

	guard guard.ConstructorGuard
}

// NewJob creates a batch job from its per-shipment results.
func NewJob(id kernel.UUID, createdAt time.Time, results []Result) (*Job, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, errs.NewValueIsRequiredError("results")
	}

	return &Job{
		id:        id,
		createdAt: createdAt,
		results:   append([]Result(nil), results...),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the job was created through the constructor.
func (j *Job) Validate() error {
	return j.guard.Validate(ErrJobIsNotConstructed)
}

// ID returns the job identifier.
func (j *Job) ID() kernel.UUID {
	return j.id
}

// CreatedAt returns the job creation time.
func (j *Job) CreatedAt() time.Time {
	return j.createdAt
}

// Results returns the per-shipment outcomes in submission order.
func (j *Job) Results() []Result {
	return append([]Result(nil), j.results...)
}

// Summary is the derived roll-up of a job.
type Summary struct {
	Total              int
	Succeeded          int
	Failed             int
	TotalEstimatedCost kernel.Money
}

// Summarize derives the job summary: success/failure counts and the total
// estimated cost across each successful shipment's best standard quote.
func (j *Job) Summarize() Summary {
	s := Summary{Total: len(j.results)}
	for _, r := range j.results {
		if r.Succeeded {
			s.Succeeded++
			s.TotalEstimatedCost += r.BestStandard
		} else {
			s.Failed++
		}
	}
	return s
}
