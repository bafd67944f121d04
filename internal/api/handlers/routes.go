package handlers

import (
	"campus-route-service/internal/api/dto"
	"campus-route-service/internal/domain"
	"campus-route-service/internal/ports"
	"campus-route-service/internal/services"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// RouteHandler serves the route recommendation endpoint: fetch alternative
// walking routes from the directions provider, score each by crowdedness,
// rank ascending, and attach best-effort explanations.
type RouteHandler struct {
	Provider  ports.RouteProvider
	Index     ports.VenueIndex
	Schedule  ports.ScheduleRepository
	Explainer ports.Explainer
	Scoring   services.ScoringConfig
	Validate  *validator.Validate
}

func (h *RouteHandler) Routes(w http.ResponseWriter, r *http.Request) {
	var req dto.RouteRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeError(w, r, http.StatusBadRequest, "start and end must carry valid longitude and latitude")
		return
	}

	ref, err := parseCurrentDateTime(req.CurrentDateTime)
	if err != nil {
		writePipelineError(w, r, err)
		return
	}

	start := domain.Coordinates{Lon: *req.Start.Longitude, Lat: *req.Start.Latitude}
	end := domain.Coordinates{Lon: *req.End.Longitude, Lat: *req.End.Latitude}

	set, err := h.Provider.AlternativeRoutes(r.Context(), start, end)
	if err != nil {
		writePipelineError(w, r, err)
		return
	}

	scored, err := services.ScoreAndRankRoutes(r.Context(), set.Candidates, ref, h.Index, h.Schedule, h.Scoring)
	if err != nil {
		writePipelineError(w, r, err)
		return
	}

	explanations := h.explanations(r.Context(), scored)

	res := dto.RoutesResponse{
		Routes:              make([]dto.ScoredRouteResponse, 0, len(scored)),
		RawProviderResponse: set.Raw,
	}
	for i, s := range scored {
		nearby := make([]dto.NearbyVenueResponse, 0, len(s.NearbyVenues))
		for _, m := range s.NearbyVenues {
			nearby = append(nearby, nearbyVenueToDTO(m))
		}

		critical := make([]dto.CriticalVenueResponse, 0, len(s.CriticalVenues))
		for _, cv := range s.CriticalVenues {
			critical = append(critical, criticalVenueToDTO(cv))
		}

		res.Routes = append(res.Routes, dto.ScoredRouteResponse{
			Route:          s.Candidate.Feature,
			NearbyVenues:   nearby,
			CriticalVenues: critical,
			PenaltyScore:   s.Penalty,
			Explanation:    explanations[i],
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// explanations returns one line per scored route. Explanation generation is
// strictly best-effort: a missing explainer, an error, or a short reply all
// degrade to the fixed placeholder, and scoring results are returned
// regardless.
func (h *RouteHandler) explanations(ctx context.Context, scored []domain.ScoredRoute) []string {
	out := make([]string, len(scored))
	for i := range out {
		out[i] = ports.PlaceholderExplanation
	}

	if h.Explainer == nil || len(scored) == 0 {
		return out
	}

	texts, err := h.Explainer.ExplainRoutes(ctx, scored)
	if err != nil {
		log.Printf("explanations degraded: %v", err)
		return out
	}
	if len(texts) != len(scored) {
		log.Printf("explanations degraded: got %d texts for %d routes", len(texts), len(scored))
		return out
	}

	return texts
}
