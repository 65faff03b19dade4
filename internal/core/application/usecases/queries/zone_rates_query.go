package queries

import (
	"errors"
	"strings"

	"shiprates/internal/core/domain/model/courier"
	"shiprates/internal/core/domain/model/geo"
	"shiprates/internal/pkg/errs"
	"shiprates/internal/pkg/guard"
)

// ErrZoneRatesQueryIsNotConstructed is returned when validating a query that
// was not created via NewZoneRatesQuery.
var ErrZoneRatesQueryIsNotConstructed = errors.New(
	"ZoneRatesQuery must be created via NewZoneRatesQuery constructor",
)

// ZoneRatesQuery requests quotes for an explicit zone pair, bypassing address
// resolution. Used by pricing tables and zone rate cards.
type ZoneRatesQuery struct { //nolint:recvcheck //using for validation
	zoneFrom    geo.ZoneID
	zoneTo      geo.ZoneID
	weightKg    float64
	serviceType courier.ServiceType

	guard guard.ConstructorGuard
}

// NewZoneRatesQuery creates a zone-pair rate query. Zone identifiers are
// lowercased; weight must be strictly positive.
func NewZoneRatesQuery(
	zoneFrom, zoneTo geo.ZoneID,
	weightKg float64,
	serviceType courier.ServiceType,
) (ZoneRatesQuery, error) {
	query := ZoneRatesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setZones(zoneFrom, zoneTo),
		query.setWeight(weightKg),
	); err != nil {
		return ZoneRatesQuery{}, err
	}
	query.serviceType = serviceType

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ZoneRatesQuery) Validate() error {
	return q.guard.Validate(ErrZoneRatesQueryIsNotConstructed)
}

// ZoneFrom returns the pickup zone identifier.
func (q ZoneRatesQuery) ZoneFrom() geo.ZoneID {
	return q.zoneFrom
}

// ZoneTo returns the delivery zone identifier.
func (q ZoneRatesQuery) ZoneTo() geo.ZoneID {
	return q.zoneTo
}

// WeightKg returns the package weight in kilograms.
func (q ZoneRatesQuery) WeightKg() float64 {
	return q.weightKg
}

// ServiceType returns the requested service type.
func (q ZoneRatesQuery) ServiceType() courier.ServiceType {
	return q.serviceType
}

func (q *ZoneRatesQuery) setZones(from, to geo.ZoneID) error {
	if strings.TrimSpace(string(from)) == "" {
		return errs.NewValueIsRequiredError("zoneFrom")
	}
	if strings.TrimSpace(string(to)) == "" {
		return errs.NewValueIsRequiredError("zoneTo")
	}

	q.zoneFrom = geo.ZoneID(strings.ToLower(strings.TrimSpace(string(from))))
	q.zoneTo = geo.ZoneID(strings.ToLower(strings.TrimSpace(string(to))))
	return nil
}

func (q *ZoneRatesQuery) setWeight(weightKg float64) error {
	if weightKg <= 0 {
		return errs.NewValueIsInvalidError("weightKg")
	}

	q.weightKg = weightKg
	return nil
}

// ZoneRatesView is the zone-pair rate card read model.
type ZoneRatesView struct {
	ZoneFrom           string
	ZoneTo             string
	DistanceKm         float64
	DistanceConfidence string
	Quotes             []QuoteView
}
