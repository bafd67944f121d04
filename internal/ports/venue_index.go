package ports

import (
	"campus-route-service/internal/domain"
	"context"
)

// A venue paired with its distance in meters from a queried point.
type VenueDistance struct {
	Venue          domain.Venue
	DistanceMeters float64
}

// Port: a point-set lookup over venue locations with native proximity
// support ("find all venues within radius r of point p").
type VenueIndex interface {
	// Return venues within radiusMeters of p, ordered ascending by distance.
	NearPoint(ctx context.Context, p domain.Coordinates, radiusMeters float64) ([]VenueDistance, error)
}
