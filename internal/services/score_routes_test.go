package services

import (
	"campus-route-service/internal/domain"
	"campus-route-service/internal/ports"
	"context"
	"encoding/json"
	"testing"
	"time"
)

func testScoringConfig() ScoringConfig {
	return ScoringConfig{
		RadiusMeters:   50,
		SampleStride:   10,
		CriticalWindow: DefaultCriticalWindow,
	}
}

func TestScoreAndRankRoutesOrdersAscending(t *testing.T) {
	ref := time.Date(2026, 3, 9, 13, 50, 0, 0, time.UTC) // a Monday

	gym := domain.Venue{ID: "GYM", RoomName: "Main Gym"}

	// Candidate 0 passes the gym at 10m; candidate 1 sees no venues.
	index := &fakeVenueIndex{fn: func(p domain.Coordinates, _ float64) ([]ports.VenueDistance, error) {
		if p.Lon == 1 {
			return []ports.VenueDistance{{Venue: gym, DistanceMeters: 10}}, nil
		}
		return nil, nil
	}}

	schedule := &fakeSchedule{byVenue: map[string][]domain.Class{
		"GYM": {{ClassID: "c1", VenueID: "GYM", Day: "Monday", Name: "Spin", Start: ct(14, 0), End: ct(15, 0), Size: 80}},
	}}

	candidates := []domain.RouteCandidate{
		{Geometry: []domain.Coordinates{{Lon: 1, Lat: 1}}, Feature: json.RawMessage(`"busy"`)},
		{Geometry: []domain.Coordinates{{Lon: 2, Lat: 2}}, Feature: json.RawMessage(`"quiet"`)},
	}

	scored, err := ScoreAndRankRoutes(context.Background(), candidates, ref, index, schedule, testScoringConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(scored) != 2 {
		t.Fatalf("expected 2 scored routes, got %d", len(scored))
	}

	// The venue-free route ranks first with penalty 0.
	if string(scored[0].Candidate.Feature) != `"quiet"` {
		t.Fatalf("recommended route = %s, want quiet", scored[0].Candidate.Feature)
	}
	if scored[0].Penalty != 0 {
		t.Fatalf("recommended penalty = %v, want 0", scored[0].Penalty)
	}

	if scored[1].Penalty != 400 {
		t.Fatalf("busy route penalty = %v, want 400", scored[1].Penalty)
	}
	if len(scored[1].CriticalVenues) != 1 {
		t.Fatalf("expected 1 critical venue, got %d", len(scored[1].CriticalVenues))
	}

	cv := scored[1].CriticalVenues[0]
	if cv.Venue.ID != "GYM" || cv.DistanceMeters != 10 {
		t.Fatalf("critical venue = %+v", cv)
	}
	if len(cv.Classes) != 1 || cv.Classes[0].ClassID != "c1" {
		t.Fatalf("critical classes = %+v", cv.Classes)
	}
}

func TestScoreAndRankRoutesStableOnTies(t *testing.T) {
	ref := time.Date(2026, 3, 9, 13, 50, 0, 0, time.UTC)

	index := &fakeVenueIndex{}
	schedule := &fakeSchedule{}

	candidates := []domain.RouteCandidate{
		{Feature: json.RawMessage(`"first"`)},
		{Feature: json.RawMessage(`"second"`)},
		{Feature: json.RawMessage(`"third"`)},
	}

	scored, err := ScoreAndRankRoutes(context.Background(), candidates, ref, index, schedule, testScoringConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// All penalties are 0; provider order must survive the sort.
	for i, want := range []string{`"first"`, `"second"`, `"third"`} {
		if string(scored[i].Candidate.Feature) != want {
			t.Fatalf("position %d = %s, want %s", i, scored[i].Candidate.Feature, want)
		}
	}
}

func TestScoreAndRankRoutesEmptyCandidates(t *testing.T) {
	ref := time.Date(2026, 3, 9, 13, 50, 0, 0, time.UTC)

	scored, err := ScoreAndRankRoutes(context.Background(), nil, ref, &fakeVenueIndex{}, &fakeSchedule{}, testScoringConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scored) != 0 {
		t.Fatalf("expected empty result, got %d routes", len(scored))
	}
}

func TestScoreAndRankRoutesPenaltiesSorted(t *testing.T) {
	ref := time.Date(2026, 3, 9, 13, 50, 0, 0, time.UTC)

	venues := map[float64]ports.VenueDistance{
		1: {Venue: domain.Venue{ID: "A"}, DistanceMeters: 10},
		2: {Venue: domain.Venue{ID: "B"}, DistanceMeters: 25},
		3: {Venue: domain.Venue{ID: "C"}, DistanceMeters: 50},
	}

	index := &fakeVenueIndex{fn: func(p domain.Coordinates, _ float64) ([]ports.VenueDistance, error) {
		if v, ok := venues[p.Lon]; ok {
			return []ports.VenueDistance{v}, nil
		}
		return nil, nil
	}}

	size := 60
	schedule := &fakeSchedule{byVenue: map[string][]domain.Class{
		"A": {{ClassID: "a", VenueID: "A", Start: ct(14, 0), End: ct(15, 0), Size: size}},
		"B": {{ClassID: "b", VenueID: "B", Start: ct(14, 0), End: ct(15, 0), Size: size}},
		"C": {{ClassID: "c", VenueID: "C", Start: ct(14, 0), End: ct(15, 0), Size: size}},
	}}

	candidates := []domain.RouteCandidate{
		{Geometry: []domain.Coordinates{{Lon: 2}}},
		{Geometry: []domain.Coordinates{{Lon: 1}}},
		{Geometry: []domain.Coordinates{{Lon: 3}}},
	}

	scored, err := ScoreAndRankRoutes(context.Background(), candidates, ref, index, schedule, testScoringConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 1; i < len(scored); i++ {
		if scored[i-1].Penalty > scored[i].Penalty {
			t.Fatalf("penalties not ascending: %v then %v", scored[i-1].Penalty, scored[i].Penalty)
		}
	}

	// Closest venue means highest penalty, so the 50m route wins.
	if scored[0].NearbyVenues[0].Venue.ID != "C" {
		t.Fatalf("recommended route sees venue %s, want C", scored[0].NearbyVenues[0].Venue.ID)
	}
}
