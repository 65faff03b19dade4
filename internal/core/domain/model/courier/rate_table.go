package courier

import (
	"shiprates/internal/core/domain/model/geo"
	"shiprates/internal/core/domain/model/kernel"
)

// RateRow is one contracted rate: a negotiated (courier, zone pair, service
// type, weight band) price overriding the courier's default base rate.
type RateRow struct {
	Courier     CourierID
	From        geo.ZoneID
	To          geo.ZoneID
	Service     ServiceType
	MinWeightKg float64
	MaxWeightKg float64
	Base        kernel.Money
	PerKg       kernel.Money
}

func (r RateRow) matches(id CourierID, from, to geo.ZoneID, service ServiceType, weightKg float64) bool {
	if r.Courier != id || r.Service != service {
		return false
	}
	if r.From != from || r.To != to {
		return false
	}
	if weightKg < r.MinWeightKg {
		return false
	}
	if r.MaxWeightKg > 0 && weightKg > r.MaxWeightKg {
		return false
	}
	return true
}

// ResolvedRate is the pricing parameter pair picked for one quote, with its
// provenance.
type ResolvedRate struct {
	Base       kernel.Money
	PerKg      kernel.Money
	Contracted bool
}

// RateTable holds the contracted rate rows. It is immutable after
// construction and shared read-only across concurrent quote calculations.
type RateTable struct {
	rows []RateRow
}

// NewRateTable builds a RateTable from contracted rows.
func NewRateTable(rows []RateRow) *RateTable {
	return &RateTable{rows: append([]RateRow(nil), rows...)}
}

// Resolve picks the pricing parameters for a (courier, zone pair, service,
// weight) combination. The fallback order is fixed and is the only one in the
// engine: contracted row first, then the courier's default base rate for the
// service type. The second return is false only when the courier does not
// offer the service type at all; missing contracted rows are never an error.
func (t *RateTable) Resolve(
	partner *Partner,
	from, to geo.ZoneID,
	service ServiceType,
	weightKg float64,
) (ResolvedRate, bool) {
	for _, row := range t.rows {
		if row.matches(partner.ID(), from, to, service, weightKg) {
			return ResolvedRate{Base: row.Base, PerKg: row.PerKg, Contracted: true}, true
		}
	}

	base, ok := partner.BaseRateFor(service)
	if !ok {
		return ResolvedRate{}, false
	}
	return ResolvedRate{Base: base.Base, PerKg: base.PerKg, Contracted: false}, true
}
