package dto

type VenueStatusResponse struct {
	TotalCriticalVenues int                     `json:"totalCriticalVenues"`
	CurrentTime         string                  `json:"currentTime"`
	Day                 string                  `json:"day"`
	Venues              []CriticalVenueResponse `json:"venues"`
}
