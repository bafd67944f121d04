package mongodb

import (
	"campus-route-service/internal/domain"
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ListVenues returns the full venue reference set ordered by id.
func (s *Store) ListVenues(ctx context.Context) ([]domain.Venue, error) {
	cursor, err := s.venues().Find(ctx, bson.D{},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}

	var docs []venueDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list venues: decode results: %w", err)
	}

	out := make([]domain.Venue, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}

	return out, nil
}

// ReplaceVenues swaps the venue collection for the given set. Used by the
// offline loader only; the serving path never writes.
func (s *Store) ReplaceVenues(ctx context.Context, venues []domain.Venue) error {
	if _, err := s.venues().DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("replace venues: clear collection: %w", err)
	}

	if len(venues) == 0 {
		return nil
	}

	docs := make([]any, 0, len(venues))
	for _, v := range venues {
		docs = append(docs, venueDoc{
			ID:       v.ID,
			RoomName: v.RoomName,
			Floor:    v.Floor,
			Location: geoPointDoc{
				Type:        "Point",
				Coordinates: v.Location.CoordsToList(),
			},
		})
	}

	if _, err := s.venues().InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("replace venues: insert %d documents: %w", len(docs), err)
	}

	return nil
}
