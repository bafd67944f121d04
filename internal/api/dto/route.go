package dto

import "encoding/json"

// Request coordinates use pointer fields so a missing longitude/latitude is
// distinguishable from a legitimate zero value.
type CoordinatesRequest struct {
	Longitude *float64 `json:"longitude" validate:"required,min=-180,max=180"`
	Latitude  *float64 `json:"latitude" validate:"required,min=-90,max=90"`
}

type RouteRequest struct {
	Start *CoordinatesRequest `json:"start" validate:"required"`
	End   *CoordinatesRequest `json:"end" validate:"required"`
	// Optional ISO-8601 reference instant; wall-clock now when absent.
	CurrentDateTime string `json:"currentDateTime"`
}

type LocationResponse struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

type NearbyVenueResponse struct {
	ID             string  `json:"id"`
	RoomName       string  `json:"roomName"`
	Floor          int     `json:"floor"`
	Longitude      float64 `json:"longitude"`
	Latitude       float64 `json:"latitude"`
	DistanceMeters float64 `json:"distanceMeters"`
}

type CriticalClassResponse struct {
	ClassID   string `json:"classId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Size      int    `json:"size"`
	Name      string `json:"name"`
}

type CriticalVenueResponse struct {
	ID              string                  `json:"id"`
	RoomName        string                  `json:"roomName"`
	Location        LocationResponse        `json:"location"`
	Longitude       float64                 `json:"longitude"`
	Latitude        float64                 `json:"latitude"`
	DistanceMeters  float64                 `json:"distanceMeters"`
	CriticalClasses []CriticalClassResponse `json:"criticalClasses"`
}

type ScoredRouteResponse struct {
	// Route is the provider's GeoJSON feature, echoed back untouched.
	Route          json.RawMessage         `json:"route"`
	NearbyVenues   []NearbyVenueResponse   `json:"nearbyVenues"`
	CriticalVenues []CriticalVenueResponse `json:"criticalVenues"`
	PenaltyScore   float64                 `json:"penaltyScore"`
	Explanation    string                  `json:"explanation"`
}

type RoutesResponse struct {
	Routes              []ScoredRouteResponse `json:"routes"`
	RawProviderResponse json.RawMessage       `json:"rawProviderResponse"`
}
