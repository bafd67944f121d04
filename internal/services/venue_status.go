package services

import (
	"campus-route-service/internal/apperr"
	"campus-route-service/internal/domain"
	"campus-route-service/internal/platform/obs"
	"campus-route-service/internal/ports"
	"context"
	"fmt"
	"time"
)

// CriticalVenueStatus reports every venue on campus that has a temporally
// critical class at ref, independent of any route. It applies the same
// criticality filter as route scoring so the two endpoints can never
// disagree about what "busy right now" means.
//
// Only classes labeled with ref's weekday are loaded; a class scheduled
// under a different day label is excluded by construction, which also rules
// out cross-midnight arithmetic against yesterday's rows.
func CriticalVenueStatus(
	ctx context.Context,
	venues ports.VenueRepository,
	schedule ports.ScheduleRepository,
	ref time.Time,
	window time.Duration,
) (_ []domain.CriticalVenue, err error) {
	defer obs.Time(ctx, "services.CriticalVenueStatus")(&err)

	all, err := venues.ListVenues(ctx)
	if err != nil {
		return nil, apperr.Wrap(
			apperr.KindInfrastructure,
			fmt.Errorf("venue status: list venues: %w", err),
		)
	}

	if len(all) == 0 {
		return []domain.CriticalVenue{}, nil
	}

	ids := make([]string, 0, len(all))
	for _, v := range all {
		ids = append(ids, v.ID)
	}

	classesByVenue, err := schedule.ClassesForVenuesOnDay(ctx, ids, ref.Weekday().String())
	if err != nil {
		return nil, apperr.Wrap(
			apperr.KindInfrastructure,
			fmt.Errorf("venue status: load classes: %w", err),
		)
	}

	out := make([]domain.CriticalVenue, 0)
	for _, v := range all {
		critical := CriticalClasses(classesByVenue[v.ID], ref, window)
		if len(critical) == 0 {
			continue
		}

		out = append(out, domain.CriticalVenue{Venue: v, Classes: critical})
	}

	return out, nil
}
