package services

import (
	"campus-route-service/internal/domain"
	"math"
	"time"
)

// ScoreRoute aggregates a route's crowdedness penalty from its nearby
// venues' critical classes.
//
// Each critical (venue, class) pair contributes
//
//	size * (radiusMeters / max(distance, 1))
//
// so crowd size trades off linearly and proximity inverse-linearly, scaled
// by the search radius: a venue exactly at the radius boundary contributes
// size * 1. The 1-meter floor keeps near-zero distances from producing an
// unbounded penalty. No venues or no critical classes yields exactly 0.
func ScoreRoute(
	matches []domain.ProximityMatch,
	classesByVenue map[string][]domain.Class,
	ref time.Time,
	radiusMeters float64,
	window time.Duration,
) float64 {
	total := 0.0

	for _, m := range matches {
		for _, c := range classesByVenue[m.Venue.ID] {
			if !IsCritical(c, ref, window) {
				continue
			}

			distanceFactor := radiusMeters / math.Max(m.DistanceMeters, 1)
			total += float64(c.Size) * distanceFactor
		}
	}

	return total
}
