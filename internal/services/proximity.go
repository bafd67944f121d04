package services

import (
	"campus-route-service/internal/apperr"
	"campus-route-service/internal/domain"
	"campus-route-service/internal/platform/obs"
	"campus-route-service/internal/ports"
	"context"
	"fmt"
	"slices"
	"sort"
)

// DefaultSampleStride is the polyline sampling interval used when no stride
// is configured.
const DefaultSampleStride = 10

// sampleIndices selects the representative polyline indices to query:
// always the first and last point, plus every strideth point in between.
// Returned indices are deduplicated and ascending.
func sampleIndices(n, stride int) []int {
	if n <= 0 {
		return nil
	}
	if stride <= 0 {
		stride = DefaultSampleStride
	}

	idx := []int{0}
	for i := stride; i < n; i += stride {
		idx = append(idx, i)
	}
	if n > 1 {
		idx = append(idx, n-1)
	}

	slices.Sort(idx)
	return slices.Compact(idx)
}

// FindNearbyVenues returns the venues within radiusMeters of the route
// polyline, each tagged with its minimum observed distance, ordered
// ascending by distance.
//
// One proximity query is issued per sampled point rather than per polyline
// point, bounding round trips on long routes. This trades recall for query
// count: a venue close to an un-sampled segment only can be missed. The
// stride is a tuning knob, not a correctness parameter.
func FindNearbyVenues(
	ctx context.Context,
	index ports.VenueIndex,
	polyline []domain.Coordinates,
	radiusMeters float64,
	stride int,
) (_ []domain.ProximityMatch, err error) {
	defer obs.Time(ctx, "services.FindNearbyVenues")(&err)

	if len(polyline) == 0 {
		return []domain.ProximityMatch{}, nil
	}

	seen := make(map[string]domain.ProximityMatch)

	for _, i := range sampleIndices(len(polyline), stride) {
		results, err := index.NearPoint(ctx, polyline[i], radiusMeters)
		if err != nil {
			// Index unavailability must surface as a request failure,
			// never as "no venues nearby".
			return nil, apperr.Wrap(
				apperr.KindInfrastructure,
				fmt.Errorf("find nearby venues: near point %d: %w", i, err),
			)
		}

		// A venue seen from several sampled points keeps its smallest
		// reported distance.
		for _, r := range results {
			prev, ok := seen[r.Venue.ID]
			if !ok || r.DistanceMeters < prev.DistanceMeters {
				seen[r.Venue.ID] = domain.ProximityMatch{
					Venue:          r.Venue,
					DistanceMeters: r.DistanceMeters,
				}
			}
		}
	}

	matches := make([]domain.ProximityMatch, 0, len(seen))
	for _, m := range seen {
		matches = append(matches, m)
	}

	sort.Slice(matches, func(a, b int) bool {
		if matches[a].DistanceMeters != matches[b].DistanceMeters {
			return matches[a].DistanceMeters < matches[b].DistanceMeters
		}
		return matches[a].Venue.ID < matches[b].Venue.ID
	})

	return matches, nil
}
