package handlers

import (
	"campus-route-service/internal/adapters/routing"
	"campus-route-service/internal/api/dto"
	"campus-route-service/internal/apperr"
	"campus-route-service/internal/domain"
	"campus-route-service/internal/ports"
	"campus-route-service/internal/services"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
)

type stubIndex struct {
	results []ports.VenueDistance
	err     error
}

func (s *stubIndex) NearPoint(ctx context.Context, p domain.Coordinates, radiusMeters float64) ([]ports.VenueDistance, error) {
	return s.results, s.err
}

type stubSchedule struct {
	byVenue map[string][]domain.Class
}

func (s *stubSchedule) ClassesForVenuesOnDay(ctx context.Context, venueIDs []string, day string) (map[string][]domain.Class, error) {
	out := make(map[string][]domain.Class)
	for _, id := range venueIDs {
		if classes, ok := s.byVenue[id]; ok {
			out[id] = classes
		}
	}
	return out, nil
}

func newRouteHandler(provider ports.RouteProvider, index ports.VenueIndex, schedule ports.ScheduleRepository) *RouteHandler {
	return &RouteHandler{
		Provider: provider,
		Index:    index,
		Schedule: schedule,
		Scoring: services.ScoringConfig{
			RadiusMeters:   50,
			SampleStride:   10,
			CriticalWindow: 15 * time.Minute,
		},
		Validate: validator.New(),
	}
}

func postRoutes(t *testing.T, h *RouteHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/routes", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Routes(rec, req)
	return rec
}

const validBody = `{"start":{"longitude":103.774,"latitude":1.2936},"end":{"longitude":103.7751,"latitude":1.294},"currentDateTime":"2026-03-09T13:50:00"}`

func TestRoutesHappyPath(t *testing.T) {
	feature := json.RawMessage(`{"type":"Feature"}`)
	provider := &routing.MockRouteProvider{Set: &ports.RouteSet{
		Candidates: []domain.RouteCandidate{{
			Geometry: []domain.Coordinates{{Lon: 103.774, Lat: 1.2936}},
			Feature:  feature,
		}},
		Raw: json.RawMessage(`{"features":[]}`),
	}}

	gym := domain.Venue{ID: "GYM", RoomName: "Main Gym"}
	index := &stubIndex{results: []ports.VenueDistance{{Venue: gym, DistanceMeters: 10}}}
	start := domain.ClockTime{Hour: 14, Minute: 0}
	end := domain.ClockTime{Hour: 15, Minute: 0}
	schedule := &stubSchedule{byVenue: map[string][]domain.Class{
		"GYM": {{ClassID: "c1", VenueID: "GYM", Start: &start, End: &end, Size: 80}},
	}}

	rec := postRoutes(t, newRouteHandler(provider, index, schedule), validBody)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", rec.Code, rec.Body)
	}

	var res dto.RoutesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if len(res.Routes) != 1 {
		t.Fatalf("expected 1 route, got %d", len(res.Routes))
	}
	if res.Routes[0].PenaltyScore != 400 {
		t.Fatalf("penalty = %v, want 400", res.Routes[0].PenaltyScore)
	}
	if len(res.Routes[0].CriticalVenues) != 1 {
		t.Fatalf("critical venues = %d, want 1", len(res.Routes[0].CriticalVenues))
	}
	// No explainer wired: the placeholder must appear, not an error.
	if res.Routes[0].Explanation != ports.PlaceholderExplanation {
		t.Fatalf("explanation = %q", res.Routes[0].Explanation)
	}
}

func TestRoutesEmptyProviderResult(t *testing.T) {
	provider := &routing.MockRouteProvider{}
	rec := postRoutes(t, newRouteHandler(provider, &stubIndex{}, &stubSchedule{}), validBody)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var res dto.RoutesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(res.Routes) != 0 {
		t.Fatalf("expected empty route list, got %d", len(res.Routes))
	}
}

func TestRoutesMalformedDateTimeIsClientFault(t *testing.T) {
	body := `{"start":{"longitude":1,"latitude":1},"end":{"longitude":2,"latitude":2},"currentDateTime":"not-a-date"}`
	rec := postRoutes(t, newRouteHandler(&routing.MockRouteProvider{}, &stubIndex{}, &stubSchedule{}), body)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestRoutesMissingCoordinates(t *testing.T) {
	body := `{"start":{"longitude":103.774},"end":{"longitude":2,"latitude":2}}`
	rec := postRoutes(t, newRouteHandler(&routing.MockRouteProvider{}, &stubIndex{}, &stubSchedule{}), body)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestRoutesUpstreamFailureIsServerFault(t *testing.T) {
	provider := &routing.MockRouteProvider{
		Err: apperr.New(apperr.KindUpstreamProvider, "directions provider said no"),
	}
	rec := postRoutes(t, newRouteHandler(provider, &stubIndex{}, &stubSchedule{}), validBody)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
}

func TestRoutesIndexOutageIsServerFault(t *testing.T) {
	provider := &routing.MockRouteProvider{Set: &ports.RouteSet{
		Candidates: []domain.RouteCandidate{{Geometry: []domain.Coordinates{{Lon: 1, Lat: 1}}}},
	}}
	index := &stubIndex{err: context.DeadlineExceeded}

	rec := postRoutes(t, newRouteHandler(provider, index, &stubSchedule{}), validBody)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}
