package batchrepo

import (
	"context"
	"errors"

	"shiprates/internal/core/domain/model/batch"
	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBatchLogRepository implements ports.BatchLogRepository using GORM.
type GormBatchLogRepository struct {
	db *gorm.DB
}

// NewGormBatchLogRepository creates a new GORM batch log repository.
func NewGormBatchLogRepository(db *gorm.DB) *GormBatchLogRepository {
	return &GormBatchLogRepository{db: db}
}

// Add saves a completed batch job and its result rows.
func (r *GormBatchLogRepository) Add(ctx context.Context, job *batch.Job) error {
	if err := job.Validate(); err != nil {
		return err
	}

	dto := fromDomain(job)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a batch job by identifier, with its results in submission
// order.
func (r *GormBatchLogRepository) Get(ctx context.Context, id kernel.UUID) (*batch.Job, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	jobID := id.Bytes()
	var dto JobDTO
	err := r.db.WithContext(ctx).
		Preload("Results", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&dto, "id = ?", jobID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("batch job", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
