package services

import (
	"campus-route-service/internal/apperr"
	"campus-route-service/internal/domain"
	"campus-route-service/internal/platform/obs"
	"campus-route-service/internal/ports"
	"context"
	"fmt"
	"slices"
	"time"
)

// ScoringConfig carries the tunables of one scoring pass.
type ScoringConfig struct {
	RadiusMeters   float64
	SampleStride   int
	CriticalWindow time.Duration
}

// ScoreAndRankRoutes runs the full scoring pipeline for a set of route
// candidates and returns them ordered ascending by penalty (lower = less
// crowded). The sort is stable: equal-penalty routes keep provider order,
// and the first element is the recommended route.
//
// Candidates are scored sequentially; each candidate's scoring is
// independent and touches no shared state, so this is a candidate for
// fan-out if provider alternatives ever grow beyond a handful.
func ScoreAndRankRoutes(
	ctx context.Context,
	candidates []domain.RouteCandidate,
	ref time.Time,
	index ports.VenueIndex,
	schedule ports.ScheduleRepository,
	cfg ScoringConfig,
) (_ []domain.ScoredRoute, err error) {
	defer obs.Time(ctx, "services.ScoreAndRankRoutes")(&err)

	scored := make([]domain.ScoredRoute, 0, len(candidates))
	day := ref.Weekday().String()

	for i, cand := range candidates {
		matches, err := FindNearbyVenues(ctx, index, cand.Geometry, cfg.RadiusMeters, cfg.SampleStride)
		if err != nil {
			return nil, fmt.Errorf("score routes: candidate %d: %w", i, err)
		}

		venueIDs := make([]string, 0, len(matches))
		for _, m := range matches {
			venueIDs = append(venueIDs, m.Venue.ID)
		}

		classesByVenue, err := schedule.ClassesForVenuesOnDay(ctx, venueIDs, day)
		if err != nil {
			return nil, apperr.Wrap(
				apperr.KindInfrastructure,
				fmt.Errorf("score routes: candidate %d: load classes: %w", i, err),
			)
		}

		scored = append(scored, domain.ScoredRoute{
			Candidate:      cand,
			NearbyVenues:   matches,
			CriticalVenues: criticalVenues(matches, classesByVenue, ref, cfg.CriticalWindow),
			Penalty:        ScoreRoute(matches, classesByVenue, ref, cfg.RadiusMeters, cfg.CriticalWindow),
		})
	}

	slices.SortStableFunc(scored, func(a, b domain.ScoredRoute) int {
		if a.Penalty < b.Penalty {
			return -1
		}
		if a.Penalty > b.Penalty {
			return 1
		}
		return 0
	})

	return scored, nil
}

// criticalVenues builds the per-route breakdown: each matched venue that has
// at least one critical class, with those classes attached. Venues keep the
// matcher's distance ordering.
func criticalVenues(
	matches []domain.ProximityMatch,
	classesByVenue map[string][]domain.Class,
	ref time.Time,
	window time.Duration,
) []domain.CriticalVenue {
	out := make([]domain.CriticalVenue, 0, len(matches))

	for _, m := range matches {
		critical := CriticalClasses(classesByVenue[m.Venue.ID], ref, window)
		if len(critical) == 0 {
			continue
		}

		out = append(out, domain.CriticalVenue{
			Venue:          m.Venue,
			DistanceMeters: m.DistanceMeters,
			Classes:        critical,
		})
	}

	return out
}
