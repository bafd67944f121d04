package services

import (
	"campus-route-service/internal/domain"
	"context"
	"testing"
	"time"
)

func TestCriticalVenueStatus(t *testing.T) {
	ref := time.Date(2026, 3, 9, 13, 50, 0, 0, time.UTC)

	repo := &fakeVenueRepo{venues: []domain.Venue{
		{ID: "LT17", RoomName: "Lecture Theatre 17"},
		{ID: "GYM", RoomName: "Main Gym"},
	}}

	schedule := &fakeSchedule{byVenue: map[string][]domain.Class{
		"LT17": {{ClassID: "c1", VenueID: "LT17", Start: ct(14, 0), End: ct(15, 0), Size: 120}},
		"GYM":  {{ClassID: "c2", VenueID: "GYM", Start: ct(9, 0), End: ct(10, 0), Size: 80}},
	}}

	got, err := CriticalVenueStatus(context.Background(), repo, schedule, ref, DefaultCriticalWindow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("expected 1 critical venue, got %d", len(got))
	}
	if got[0].Venue.ID != "LT17" {
		t.Fatalf("critical venue = %s, want LT17", got[0].Venue.ID)
	}
	if len(got[0].Classes) != 1 || got[0].Classes[0].ClassID != "c1" {
		t.Fatalf("critical classes = %+v", got[0].Classes)
	}
}

func TestCriticalVenueStatusNoVenues(t *testing.T) {
	ref := time.Date(2026, 3, 9, 13, 50, 0, 0, time.UTC)
	schedule := &fakeSchedule{}

	got, err := CriticalVenueStatus(context.Background(), &fakeVenueRepo{}, schedule, ref, DefaultCriticalWindow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no critical venues, got %d", len(got))
	}
	if schedule.calls != 0 {
		t.Fatalf("expected no schedule query for empty campus, got %d", schedule.calls)
	}
}
