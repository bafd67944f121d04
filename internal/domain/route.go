package domain

import "encoding/json"

// RouteCandidate is one walking route returned by the directions provider:
// an ordered polyline plus the provider's duration/distance summary.
// Feature retains the provider's raw GeoJSON feature so the API can echo the
// geometry back untouched. Candidates are produced externally per request and
// are read-only to the scoring pipeline.
type RouteCandidate struct {
	Geometry        []Coordinates
	DistanceMeters  float64
	DurationSeconds float64
	Feature         json.RawMessage
}

// ProximityMatch pairs a venue with its minimum observed distance to any
// sampled point of one route's polyline. It exists only for the duration of
// a single scoring pass.
type ProximityMatch struct {
	Venue          Venue
	DistanceMeters float64
}

// CriticalVenue is a venue on a route that has at least one time-critical
// class at the reference instant, carried into the response as the
// explanation for the route's penalty.
type CriticalVenue struct {
	Venue          Venue
	DistanceMeters float64
	Classes        []Class
}

// ScoredRoute is a route candidate annotated with its crowdedness evidence
// and scalar penalty (lower is better). Built once per request, ranked,
// discarded after the response is sent.
type ScoredRoute struct {
	Candidate      RouteCandidate
	NearbyVenues   []ProximityMatch
	CriticalVenues []CriticalVenue
	Penalty        float64
	Explanation    string
}
