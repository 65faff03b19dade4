// Package ports defines the outbound interfaces of the rate engine core.
// Adapters (postgres, redis, in-memory snapshot) implement them; the engine
// services depend only on these interfaces.
package ports

import (
	"context"

	"shiprates/internal/core/domain/model/courier"
)

// CourierCatalog exposes the courier-partner master data. Implementations
// must be safe for concurrent reads; the aggregation hot loop calls them for
// every request.
type CourierCatalog interface {
	// EligibleCouriers returns active partners, restricted to the preferred
	// allow-list when it is non-empty. Coverage of the delivery city is NOT
	// filtered here; the rate calculator performs the coverage check per
	// quote so the skip can be recorded.
	EligibleCouriers(ctx context.Context, preferred []courier.CourierID) ([]*courier.Partner, error)

	// GetPartner returns one partner by identifier, or an ObjectNotFoundError.
	GetPartner(ctx context.Context, id courier.CourierID) (*courier.Partner, error)
}

// RateTableSource supplies the contracted rate table for quote pricing.
type RateTableSource interface {
	RateTable(ctx context.Context) (*courier.RateTable, error)
}
