package ports

import (
	"context"

	"shiprates/internal/core/domain/model/batch"
	"shiprates/internal/core/domain/model/kernel"
)

// BatchLogRepository persists batch jobs and their per-shipment outcomes.
type BatchLogRepository interface {
	Add(ctx context.Context, job *batch.Job) error
	Get(ctx context.Context, id kernel.UUID) (*batch.Job, error)
}
