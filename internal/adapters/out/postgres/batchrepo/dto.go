// Package batchrepo persists batch jobs and their per-shipment results.
// Implements the repository pattern for the batch job aggregate, mapping
// between the domain aggregate and its relational representation.
package batchrepo

import (
	"time"

	"shiprates/internal/core/domain/model/batch"
	"shiprates/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// JobDTO represents the database structure for persisting batch jobs.
type JobDTO struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time   `gorm:"not null;index"`
	Results   []ResultDTO `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "batch_jobs".
func (JobDTO) TableName() string {
	return "batch_jobs"
}

// ResultDTO represents one shipment outcome row within a batch job.
type ResultDTO struct {
	ID            uint      `gorm:"primaryKey;autoIncrement"`
	JobID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Position      int       `gorm:"type:int;not null"`
	Reference     string    `gorm:"type:varchar(255);not null"`
	Succeeded     bool      `gorm:"not null"`
	QuoteCount    int       `gorm:"type:int;not null"`
	BestStandard  int64     `gorm:"type:bigint;not null"`
	FailureReason string    `gorm:"type:text"`
}

// TableName overrides GORM's default naming to use "batch_results".
func (ResultDTO) TableName() string {
	return "batch_results"
}

func fromDomain(job *batch.Job) JobDTO {
	jobID := job.ID().Bytes()
	domainResults := job.Results()

	results := make([]ResultDTO, 0, len(domainResults))
	for i, r := range domainResults {
		results = append(results, ResultDTO{
			JobID:         jobID,
			Position:      i,
			Reference:     r.Reference,
			Succeeded:     r.Succeeded,
			QuoteCount:    r.QuoteCount,
			BestStandard:  int64(r.BestStandard),
			FailureReason: r.FailureReason,
		})
	}

	return JobDTO{
		ID:        jobID,
		CreatedAt: job.CreatedAt(),
		Results:   results,
	}
}

func toDomain(dto JobDTO) (*batch.Job, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	results := make([]batch.Result, len(dto.Results))
	for _, r := range dto.Results {
		results[r.Position] = batch.Result{
			Reference:     r.Reference,
			Succeeded:     r.Succeeded,
			QuoteCount:    r.QuoteCount,
			BestStandard:  kernel.Money(r.BestStandard),
			FailureReason: r.FailureReason,
		}
	}

	return batch.NewJob(id, dto.CreatedAt, results)
}
