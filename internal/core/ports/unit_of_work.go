package ports

import "context"

// UnitOfWorkFactory creates new UnitOfWork instances, one per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork coordinates transactional writes to the batch log. Each business
// operation gets a fresh instance; concurrent operations must not share one.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	BatchLogRepository() BatchLogRepository
}
