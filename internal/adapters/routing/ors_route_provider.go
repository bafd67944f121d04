package routing

import (
	"bytes"
	"campus-route-service/internal/apperr"
	"campus-route-service/internal/domain"
	"campus-route-service/internal/platform/obs"
	"campus-route-service/internal/ports"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// AlternativesConfig tunes how many candidate routes the provider is asked
// for and how aggressively they may deviate from the optimum.
type AlternativesConfig struct {
	TargetCount  int
	WeightFactor float64
	ShareFactor  float64
}

// ORSRouteProvider implements RouteProvider using the OpenRouteService
// pedestrian directions endpoint.
//
// It requests alternative routes in one call, parses the GeoJSON features
// into route candidates, and retains the raw payload for the API response.
// The provider is safe for concurrent use.
type ORSRouteProvider struct {
	session      *http.Client
	apiKey       string
	baseURL      string
	profile      string
	alternatives AlternativesConfig
}

func NewORSRouteProvider(apiKey, baseURL, profile string, alternatives AlternativesConfig) (*ORSRouteProvider, error) {
	if apiKey == "" {
		return nil, apperr.New(apperr.KindConfiguration, "ORS api key is empty")
	}
	if baseURL == "" {
		baseURL = "https://api.openrouteservice.org"
	}
	if profile == "" {
		profile = "foot-walking"
	}

	if alternatives.TargetCount <= 0 {
		alternatives.TargetCount = 3
	}
	if alternatives.WeightFactor <= 0 {
		alternatives.WeightFactor = 1.5
	}
	if alternatives.ShareFactor <= 0 {
		alternatives.ShareFactor = 0.6
	}

	return &ORSRouteProvider{
		session:      &http.Client{Timeout: 30 * time.Second},
		apiKey:       apiKey,
		baseURL:      baseURL,
		profile:      profile,
		alternatives: alternatives,
	}, nil
}

type directionsRequest struct {
	Coordinates       [][]float64        `json:"coordinates"`
	AlternativeRoutes *alternativeRoutes `json:"alternative_routes,omitempty"`
}

type alternativeRoutes struct {
	TargetCount  int     `json:"target_count"`
	WeightFactor float64 `json:"weight_factor"`
	ShareFactor  float64 `json:"share_factor"`
}

type directionsResponse struct {
	Features []struct {
		Properties struct {
			Summary struct {
				Distance float64 `json:"distance"`
				Duration float64 `json:"duration"`
			} `json:"summary"`
		} `json:"properties"`
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// AlternativeRoutes fetches up to the configured number of walking routes
// from start to end. Provider order is preserved; any non-success after
// retries surfaces as an upstream-provider fault for the whole request.
func (o *ORSRouteProvider) AlternativeRoutes(
	ctx context.Context,
	start, end domain.Coordinates,
) (_ *ports.RouteSet, err error) {
	defer obs.Time(ctx, "ors.AlternativeRoutes")(&err)

	endpoint := fmt.Sprintf("%s/v2/directions/%s/geojson", o.baseURL, o.profile)

	payload, err := json.Marshal(directionsRequest{
		Coordinates: [][]float64{start.CoordsToList(), end.CoordsToList()},
		AlternativeRoutes: &alternativeRoutes{
			TargetCount:  o.alternatives.TargetCount,
			WeightFactor: o.alternatives.WeightFactor,
			ShareFactor:  o.alternatives.ShareFactor,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal directions request: %w", err)
	}

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		body := bytes.NewReader(payload)
		return o.newRequest(ctx, http.MethodPost, endpoint, body)
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUpstreamProvider,
			fmt.Errorf("directions request failed: %w", err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUpstreamProvider,
			fmt.Errorf("read directions response: %w", err))
	}

	var dr directionsResponse
	if err := json.Unmarshal(raw, &dr); err != nil {
		return nil, apperr.Wrap(apperr.KindUpstreamProvider,
			fmt.Errorf("decode directions response: %w", err))
	}

	// Each feature is re-extracted from the raw payload so the API can
	// echo the provider's geometry document untouched.
	features, err := rawFeatures(raw)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUpstreamProvider, err)
	}
	if len(features) != len(dr.Features) {
		return nil, apperr.New(apperr.KindUpstreamProvider,
			"directions response: %d parsed features but %d raw", len(dr.Features), len(features))
	}

	candidates := make([]domain.RouteCandidate, 0, len(dr.Features))
	for i, f := range dr.Features {
		geometry := make([]domain.Coordinates, 0, len(f.Geometry.Coordinates))
		for _, pt := range f.Geometry.Coordinates {
			if len(pt) < 2 {
				continue
			}
			geometry = append(geometry, domain.Coordinates{Lon: pt[0], Lat: pt[1]})
		}

		candidates = append(candidates, domain.RouteCandidate{
			Geometry:        geometry,
			DistanceMeters:  f.Properties.Summary.Distance,
			DurationSeconds: f.Properties.Summary.Duration,
			Feature:         features[i],
		})
	}

	return &ports.RouteSet{Candidates: candidates, Raw: raw}, nil
}

func rawFeatures(raw []byte) ([]json.RawMessage, error) {
	var envelope struct {
		Features []json.RawMessage `json:"features"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("extract raw features: %w", err)
	}
	return envelope.Features, nil
}
