// Package memory provides the in-memory snapshot adapter serving the rate
// engine's read-mostly reference data: the courier catalog, the contracted
// rate table and the zone distance table. The whole dataset is swapped
// atomically on refresh, so the aggregation hot loop always reads one
// consistent snapshot.
package memory

import (
	"context"
	"sync"

	"shiprates/internal/core/domain/model/courier"
	"shiprates/internal/core/domain/model/geo"
	"shiprates/internal/pkg/errs"
)

// Dataset is one complete, consistent snapshot of the reference data.
type Dataset struct {
	Partners  []*courier.Partner
	RateRows  []courier.RateRow
	Distances []geo.DistanceEntry
}

// snapshot is the immutable compiled form of a Dataset. It is never mutated
// after build; Store swaps the whole pointer under the lock.
type snapshot struct {
	partners  []*courier.Partner
	index     map[courier.CourierID]*courier.Partner
	rateTable *courier.RateTable
	distances *geo.DistanceTable
}

func compile(data Dataset) *snapshot {
	index := make(map[courier.CourierID]*courier.Partner, len(data.Partners))
	for _, p := range data.Partners {
		index[p.ID()] = p
	}

	return &snapshot{
		partners:  append([]*courier.Partner(nil), data.Partners...),
		index:     index,
		rateTable: courier.NewRateTable(data.RateRows),
		distances: geo.NewDistanceTable(data.Distances),
	}
}

// Store is the snapshot holder. It implements ports.CourierCatalog,
// ports.RateTableSource and ports.DistanceSource and is safe for concurrent
// reads while a refresh swaps the dataset.
type Store struct {
	mu      sync.RWMutex
	current *snapshot
}

// NewStore creates a store holding the given dataset.
func NewStore(data Dataset) *Store {
	return &Store{current: compile(data)}
}

// Refresh replaces the whole dataset atomically. In-flight readers keep the
// snapshot they started with.
func (s *Store) Refresh(data Dataset) {
	compiled := compile(data)

	s.mu.Lock()
	s.current = compiled
	s.mu.Unlock()
}

func (s *Store) read() *snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// EligibleCouriers returns active partners, restricted to the preferred
// allow-list when it is non-empty.
func (s *Store) EligibleCouriers(
	_ context.Context,
	preferred []courier.CourierID,
) ([]*courier.Partner, error) {
	snap := s.read()

	allowed := make(map[courier.CourierID]bool, len(preferred))
	for _, id := range preferred {
		allowed[id] = true
	}

	out := make([]*courier.Partner, 0, len(snap.partners))
	for _, p := range snap.partners {
		if !p.IsActive() {
			continue
		}
		if len(allowed) > 0 && !allowed[p.ID()] {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// GetPartner returns one partner by identifier.
func (s *Store) GetPartner(_ context.Context, id courier.CourierID) (*courier.Partner, error) {
	snap := s.read()

	if p, ok := snap.index[id]; ok {
		return p, nil
	}
	return nil, errs.NewObjectNotFoundError("courier", id)
}

// RateTable returns the contracted rate table of the current snapshot.
func (s *Store) RateTable(_ context.Context) (*courier.RateTable, error) {
	return s.read().rateTable, nil
}

// Distance resolves a zone-pair distance from the current snapshot.
func (s *Store) Distance(_ context.Context, from, to geo.ZoneID) (float64, bool, error) {
	km, found := s.read().distances.Lookup(from, to)
	return km, found, nil
}
