package mongodb

import (
	"campus-route-service/internal/domain"
	"campus-route-service/internal/platform/obs"
	"campus-route-service/internal/ports"
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// NearPoint returns all venues within radiusMeters of p, closest first,
// using a spherical $geoNear aggregation over the 2dsphere index.
func (s *Store) NearPoint(
	ctx context.Context,
	p domain.Coordinates,
	radiusMeters float64,
) (_ []ports.VenueDistance, err error) {
	defer obs.Time(ctx, "mongodb.NearPoint")(&err)

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$geoNear", Value: bson.D{
			{Key: "near", Value: bson.D{
				{Key: "type", Value: "Point"},
				{Key: "coordinates", Value: p.CoordsToList()},
			}},
			{Key: "distanceField", Value: "distance"},
			{Key: "maxDistance", Value: radiusMeters},
			{Key: "spherical", Value: true},
		}}},
	}

	cursor, err := s.venues().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("near point (%f, %f): geoNear: %w", p.Lon, p.Lat, err)
	}

	var docs []venueDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("near point (%f, %f): decode results: %w", p.Lon, p.Lat, err)
	}

	out := make([]ports.VenueDistance, 0, len(docs))
	for _, d := range docs {
		out = append(out, ports.VenueDistance{
			Venue:          d.toDomain(),
			DistanceMeters: d.Distance,
		})
	}

	return out, nil
}
