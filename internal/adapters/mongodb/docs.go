package mongodb

import (
	"campus-route-service/internal/domain"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// GeoJSON point as stored on venue documents ([lon, lat] order).
type geoPointDoc struct {
	Type        string    `bson:"type"`
	Coordinates []float64 `bson:"coordinates"`
}

type venueDoc struct {
	ID       string      `bson:"_id"`
	RoomName string      `bson:"roomName"`
	Floor    int         `bson:"floor"`
	Location geoPointDoc `bson:"location"`
	// Distance is only populated by $geoNear aggregations.
	Distance float64 `bson:"distance,omitempty"`
}

// toDomain maps a stored venue onto the typed record. Documents with a
// short or absent coordinate array keep zero coordinates rather than
// failing the whole query.
func (d venueDoc) toDomain() domain.Venue {
	v := domain.Venue{
		ID:       d.ID,
		RoomName: d.RoomName,
		Floor:    d.Floor,
	}

	if len(d.Location.Coordinates) >= 2 {
		v.Location = domain.Coordinates{
			Lon: d.Location.Coordinates[0],
			Lat: d.Location.Coordinates[1],
		}
	}

	return v
}

type classDoc struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	VenueID   string        `bson:"venueId"`
	Day       string        `bson:"day"`
	StartTime string        `bson:"startTime"`
	EndTime   string        `bson:"endTime"`
	Size      int           `bson:"size"`
	Name      string        `bson:"name"`
}

// toDomain maps a timetable row onto the typed record. Unparseable or
// missing times become nil (the class can then never be critical), and a
// missing name gets a display default; neither is an error.
func (d classDoc) toDomain() domain.Class {
	c := domain.Class{
		ClassID: d.ID.Hex(),
		VenueID: d.VenueID,
		Day:     d.Day,
		Name:    d.Name,
		Size:    d.Size,
	}

	if c.Name == "" {
		c.Name = "Unknown Class"
	}

	if start, err := domain.ParseClockTime(d.StartTime); err == nil {
		c.Start = &start
	}
	if end, err := domain.ParseClockTime(d.EndTime); err == nil {
		c.End = &end
	}

	return c
}
