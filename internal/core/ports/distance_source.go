package ports

import (
	"context"

	"shiprates/internal/core/domain/model/geo"
)

// DistanceSource resolves inter-zone distances in kilometers. The second
// return is false when the pair is unknown, in which case the geography
// resolver falls back to the documented default distance. Errors are
// reserved for infrastructure failures (e.g. an unreachable cache); callers
// treat them like an unknown pair rather than failing the quote.
type DistanceSource interface {
	Distance(ctx context.Context, from, to geo.ZoneID) (km float64, found bool, err error)
}
