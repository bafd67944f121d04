package handlers

import (
	"campus-route-service/internal/api/dto"
	"campus-route-service/internal/domain"
)

func nearbyVenueToDTO(m domain.ProximityMatch) dto.NearbyVenueResponse {
	return dto.NearbyVenueResponse{
		ID:             m.Venue.ID,
		RoomName:       m.Venue.RoomName,
		Floor:          m.Venue.Floor,
		Longitude:      m.Venue.Location.Lon,
		Latitude:       m.Venue.Location.Lat,
		DistanceMeters: m.DistanceMeters,
	}
}

func criticalVenueToDTO(cv domain.CriticalVenue) dto.CriticalVenueResponse {
	classes := make([]dto.CriticalClassResponse, 0, len(cv.Classes))
	for _, c := range cv.Classes {
		cc := dto.CriticalClassResponse{
			ClassID: c.ClassID,
			Size:    c.Size,
			Name:    c.Name,
		}
		if c.Start != nil {
			cc.StartTime = c.Start.String()
		}
		if c.End != nil {
			cc.EndTime = c.End.String()
		}
		classes = append(classes, cc)
	}

	return dto.CriticalVenueResponse{
		ID:       cv.Venue.ID,
		RoomName: cv.Venue.RoomName,
		Location: dto.LocationResponse{
			Type:        "Point",
			Coordinates: cv.Venue.Location.CoordsToList(),
		},
		Longitude:       cv.Venue.Location.Lon,
		Latitude:        cv.Venue.Location.Lat,
		DistanceMeters:  cv.DistanceMeters,
		CriticalClasses: classes,
	}
}
