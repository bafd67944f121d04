package mongodb

import (
	"campus-route-service/internal/domain"
	"campus-route-service/internal/platform/obs"
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ClassesForVenuesOnDay bulk-loads all classes scheduled at the given
// venues on the given day-of-week label, grouped by venue id with each
// venue's classes ordered by start time.
//
// One membership-filter query serves the whole venue set; issuing a query
// per venue would reintroduce the N+1 pattern the route scorer is built to
// avoid. Only rows whose day label matches are ever loaded, so classes from
// other days (including ones that crossed midnight) cannot reach scoring.
func (s *Store) ClassesForVenuesOnDay(
	ctx context.Context,
	venueIDs []string,
	day string,
) (_ map[string][]domain.Class, err error) {
	defer obs.Time(ctx, "mongodb.ClassesForVenuesOnDay")(&err)

	if len(venueIDs) == 0 {
		return map[string][]domain.Class{}, nil
	}

	filter := bson.M{
		"venueId": bson.M{"$in": venueIDs},
		"day":     day,
	}

	cursor, err := s.classes().Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "venueId", Value: 1}, {Key: "startTime", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("classes for %d venues on %s: %w", len(venueIDs), day, err)
	}

	var docs []classDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("classes for %d venues on %s: decode results: %w", len(venueIDs), day, err)
	}

	out := make(map[string][]domain.Class, len(venueIDs))
	for _, d := range docs {
		if d.VenueID == "" {
			continue
		}
		out[d.VenueID] = append(out[d.VenueID], d.toDomain())
	}

	return out, nil
}

// ReplaceClasses swaps the timetable collection for the given set. Used by
// the offline loader only.
func (s *Store) ReplaceClasses(ctx context.Context, classes []domain.Class) error {
	if _, err := s.classes().DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("replace classes: clear collection: %w", err)
	}

	if len(classes) == 0 {
		return nil
	}

	docs := make([]any, 0, len(classes))
	for _, c := range classes {
		d := classDoc{
			VenueID: c.VenueID,
			Day:     c.Day,
			Size:    c.Size,
			Name:    c.Name,
		}
		if c.Start != nil {
			d.StartTime = c.Start.String()
		}
		if c.End != nil {
			d.EndTime = c.End.String()
		}
		docs = append(docs, d)
	}

	if _, err := s.classes().InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("replace classes: insert %d documents: %w", len(docs), err)
	}

	return nil
}
