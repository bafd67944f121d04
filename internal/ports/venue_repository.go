package ports

import (
	"campus-route-service/internal/domain"
	"context"
)

// Port: read-only access to the full venue reference set.
type VenueRepository interface {
	// Retrieve every venue known to the system.
	ListVenues(ctx context.Context) ([]domain.Venue, error)
}
