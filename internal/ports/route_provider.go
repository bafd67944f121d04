package ports

import (
	"campus-route-service/internal/domain"
	"context"
	"encoding/json"
)

// RouteSet is a directions-provider response: parsed candidates plus the
// provider's raw payload, which the API echoes back untouched.
type RouteSet struct {
	Candidates []domain.RouteCandidate
	Raw        json.RawMessage
}

// Contract for retrieving alternative walking routes between two points.
type RouteProvider interface {
	// Return up to the configured number of candidate routes from start to
	// end, in provider order.
	AlternativeRoutes(ctx context.Context, start, end domain.Coordinates) (*RouteSet, error)
}
