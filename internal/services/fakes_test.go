package services

import (
	"campus-route-service/internal/domain"
	"campus-route-service/internal/ports"
	"context"
)

type fakeVenueIndex struct {
	calls int
	fn    func(p domain.Coordinates, radiusMeters float64) ([]ports.VenueDistance, error)
}

func (f *fakeVenueIndex) NearPoint(ctx context.Context, p domain.Coordinates, radiusMeters float64) ([]ports.VenueDistance, error) {
	f.calls++
	if f.fn == nil {
		return nil, nil
	}
	return f.fn(p, radiusMeters)
}

type fakeSchedule struct {
	calls   int
	byVenue map[string][]domain.Class
	err     error
}

func (f *fakeSchedule) ClassesForVenuesOnDay(ctx context.Context, venueIDs []string, day string) (map[string][]domain.Class, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}

	out := make(map[string][]domain.Class, len(venueIDs))
	for _, id := range venueIDs {
		if classes, ok := f.byVenue[id]; ok {
			out[id] = classes
		}
	}
	return out, nil
}

type fakeVenueRepo struct {
	venues []domain.Venue
	err    error
}

func (f *fakeVenueRepo) ListVenues(ctx context.Context) ([]domain.Venue, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.venues, nil
}

func ct(hour, minute int) *domain.ClockTime {
	return &domain.ClockTime{Hour: hour, Minute: minute}
}
