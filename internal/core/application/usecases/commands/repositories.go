// Package commands contains the write operations of the rate engine.
// Implements the Command pattern of the CQRS architecture: validated command
// objects, transaction management through the unit of work, persistence of
// the batch log.
package commands

import (
	"context"

	"shiprates/internal/core/ports"
)

// Unit of Work interfaces narrow the transaction surface a command handler
// sees to exactly the repositories it writes.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// BatchLogRepoFactory provides the batch log repository within a transaction.
	BatchLogRepoFactory interface {
		BatchLogRepository() ports.BatchLogRepository
	}

	// BatchUoW manages transactions for batch log writes.
	BatchUoW interface {
		TxManager
		BatchLogRepoFactory
	}

	// BatchUoWFactory creates new batch unit of work instances, one per command.
	BatchUoWFactory interface {
		Create() BatchUoW
	}
)
