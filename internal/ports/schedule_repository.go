package ports

import (
	"campus-route-service/internal/domain"
	"context"
)

// Port: bulk lookup of scheduled classes for a set of venues.
type ScheduleRepository interface {
	// Return all classes scheduled at the given venues on the given
	// day-of-week label ("Monday".."Sunday"), grouped by venue id.
	// Implementations issue one membership-filter query, never one query
	// per venue. An empty id set yields an empty map and no query.
	ClassesForVenuesOnDay(ctx context.Context, venueIDs []string, day string) (map[string][]domain.Class, error)
}
