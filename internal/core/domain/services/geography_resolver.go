package services

import (
	"context"
	"strings"

	"shiprates/internal/core/domain/model/geo"
	"shiprates/internal/core/domain/model/quote"
	"shiprates/internal/core/ports"
)

// districtHeuristics are the zone identifiers tried as substring matches
// against the city and district when the zone table has no direct hit.
var districtHeuristics = []geo.ZoneID{"dhaka", "chittagong", "sylhet"}

// GeographyResolver maps free-form addresses to canonical zones and estimates
// inter-zone distances. It is an approximation layer over static tables, not
// a routing engine: unknown addresses degrade to the sentinel "other" zone
// and unknown zone pairs degrade to the default distance, both flagged with
// low confidence rather than failing.
type GeographyResolver struct {
	zones     *geo.ZoneTable
	distances ports.DistanceSource
}

// NewGeographyResolver creates a resolver over the given zone table and
// distance source.
func NewGeographyResolver(zones *geo.ZoneTable, distances ports.DistanceSource) *GeographyResolver {
	return &GeographyResolver{
		zones:     zones,
		distances: distances,
	}
}

// ResolveZone resolves an address to a canonical zone. Resolution never
// fails: the city is matched against the zone table first, then the city and
// district are scanned for well-known zone names, and finally the sentinel
// "other" zone is returned.
func (r *GeographyResolver) ResolveZone(address geo.Address) geo.Zone {
	if zone, ok := r.zones.Lookup(address.NormalizedCity()); ok {
		return zone
	}

	haystack := strings.ToLower(address.City() + " " + address.District())
	for _, id := range districtHeuristics {
		if !strings.Contains(haystack, string(id)) {
			continue
		}
		if zone, ok := r.zones.Lookup(string(id)); ok {
			return zone
		}
	}

	return geo.OtherZone()
}

// ZoneByID returns the canonical zone for an identifier.
func (r *GeographyResolver) ZoneByID(id geo.ZoneID) (geo.Zone, bool) {
	return r.zones.Lookup(string(id))
}

// Zones returns every canonical zone, in unspecified order.
func (r *GeographyResolver) Zones() []geo.Zone {
	return r.zones.All()
}

// Distance estimates the distance between two zones in kilometers. Unknown
// pairs, sentinel zones and distance-source failures all fall back to
// geo.DefaultDistanceKm with DistanceDefaulted confidence; the default is a
// known precision limit of the zone model.
func (r *GeographyResolver) Distance(ctx context.Context, pickup, delivery geo.Zone) (float64, quote.DistanceConfidence) {
	if pickup.IsOther() || delivery.IsOther() {
		return geo.DefaultDistanceKm, quote.DistanceDefaulted
	}

	km, found, err := r.distances.Distance(ctx, pickup.ID(), delivery.ID())
	if err != nil || !found {
		return geo.DefaultDistanceKm, quote.DistanceDefaulted
	}

	return km, quote.DistanceResolved
}
