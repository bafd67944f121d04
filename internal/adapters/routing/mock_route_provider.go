package routing

import (
	"campus-route-service/internal/domain"
	"campus-route-service/internal/ports"
	"context"
)

// MockRouteProvider serves a fixed route set, for tests and local runs
// without an ORS key.
type MockRouteProvider struct {
	Set *ports.RouteSet
	Err error
}

func (m *MockRouteProvider) AlternativeRoutes(ctx context.Context, start, end domain.Coordinates) (*ports.RouteSet, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Set == nil {
		return &ports.RouteSet{Candidates: []domain.RouteCandidate{}}, nil
	}
	return m.Set, nil
}
