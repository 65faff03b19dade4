package geo

import "strings"

// DefaultDistanceKm is the distance assumed for zone pairs absent from the
// distance table. It is a known precision limit of the zone model; quotes
// built on it carry low distance confidence.
const DefaultDistanceKm = 100.0

// ZoneTable is an immutable lookup of canonical zones keyed by their
// identifier. It is built once from configuration and shared read-only across
// concurrent requests.
type ZoneTable struct {
	zones map[ZoneID]Zone
}

// NewZoneTable builds a ZoneTable from the given zones.
func NewZoneTable(zones []Zone) *ZoneTable {
	m := make(map[ZoneID]Zone, len(zones))
	for _, z := range zones {
		m[z.ID()] = z
	}
	return &ZoneTable{zones: m}
}

// Lookup returns the zone for a normalized city name.
func (t *ZoneTable) Lookup(city string) (Zone, bool) {
	z, ok := t.zones[ZoneID(strings.ToLower(strings.TrimSpace(city)))]
	return z, ok
}

// All returns every zone in the table, in unspecified order.
func (t *ZoneTable) All() []Zone {
	out := make([]Zone, 0, len(t.zones))
	for _, z := range t.zones {
		out = append(out, z)
	}
	return out
}

// DistanceTable is an immutable symmetric pairwise distance lookup between
// zones, in kilometers.
type DistanceTable struct {
	distances map[string]float64
}

// DistanceEntry is one symmetric zone-pair distance row.
type DistanceEntry struct {
	From ZoneID
	To   ZoneID
	Km   float64
}

// NewDistanceTable builds a DistanceTable from pairwise entries.
func NewDistanceTable(entries []DistanceEntry) *DistanceTable {
	m := make(map[string]float64, len(entries))
	for _, e := range entries {
		m[pairKey(e.From, e.To)] = e.Km
	}
	return &DistanceTable{distances: m}
}

// Lookup returns the distance between two zones, trying both pair orderings.
func (t *DistanceTable) Lookup(from, to ZoneID) (float64, bool) {
	if km, ok := t.distances[pairKey(from, to)]; ok {
		return km, true
	}
	if km, ok := t.distances[pairKey(to, from)]; ok {
		return km, true
	}
	return 0, false
}

func pairKey(from, to ZoneID) string {
	return string(from) + "-" + string(to)
}
