package geo

import (
	"strings"

	"shiprates/internal/pkg/errs"
)

// ZoneID is the canonical lowercase identifier of a pricing zone, e.g. "dhaka".
type ZoneID string

// ZoneOther is the sentinel zone used when an address matches nothing in the
// zone table. Resolution never fails; it degrades to this zone instead.
const ZoneOther ZoneID = "other"

// ZoneClass is the closed classification of a zone.
type ZoneClass int

const (
	// ZoneClassMetro is a major metropolitan area, cheapest and fastest to serve.
	ZoneClassMetro ZoneClass = iota
	// ZoneClassCity is a divisional city.
	ZoneClassCity
	// ZoneClassTown is a district town.
	ZoneClassTown
	// ZoneClassOther is any area outside the known zone table.
	ZoneClassOther
)

// String returns the lowercase name of the zone class.
func (c ZoneClass) String() string {
	switch c {
	case ZoneClassMetro:
		return "metro"
	case ZoneClassCity:
		return "city"
	case ZoneClassTown:
		return "town"
	case ZoneClassOther:
		return "other"
	default:
		return "other"
	}
}

const (
	// ZoneTierMin is the lowest-cost, fastest tier.
	ZoneTierMin = 1
	// ZoneTierMax is the highest-cost, slowest tier.
	ZoneTierMax = 4
)

// Zone is a canonical pricing zone. Zones are externally supplied reference
// data; the engine looks them up and never creates new ones at request time.
type Zone struct {
	id    ZoneID
	class ZoneClass
	tier  int
}

// NewZone creates a Zone with the given identifier, classification and tier.
// The identifier is lowered; tier must be within [ZoneTierMin, ZoneTierMax].
func NewZone(id ZoneID, class ZoneClass, tier int) (Zone, error) {
	if strings.TrimSpace(string(id)) == "" {
		return Zone{}, errs.NewValueIsRequiredError("zone id")
	}
	if tier < ZoneTierMin || tier > ZoneTierMax {
		return Zone{}, errs.NewValueIsOutOfRangeError("zone tier", tier, ZoneTierMin, ZoneTierMax)
	}

	return Zone{
		id:    ZoneID(strings.ToLower(strings.TrimSpace(string(id)))),
		class: class,
		tier:  tier,
	}, nil
}

// OtherZone returns the sentinel fallback zone.
func OtherZone() Zone {
	return Zone{id: ZoneOther, class: ZoneClassOther, tier: ZoneTierMax}
}

// ID returns the canonical zone identifier.
func (z Zone) ID() ZoneID {
	return z.id
}

// Class returns the zone classification.
func (z Zone) Class() ZoneClass {
	return z.class
}

// Tier returns the zone cost tier (1 = lowest cost / fastest).
func (z Zone) Tier() int {
	return z.tier
}

// IsOther reports whether this is the sentinel fallback zone.
func (z Zone) IsOther() bool {
	return z.id == ZoneOther
}
