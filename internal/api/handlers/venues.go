package handlers

import (
	"campus-route-service/internal/api/dto"
	"campus-route-service/internal/ports"
	"campus-route-service/internal/services"
	"net/http"
	"time"
)

// VenueStatusHandler exposes the campus-wide "which venues are busy right
// now" view, independent of any route.
type VenueStatusHandler struct {
	Venues   ports.VenueRepository
	Schedule ports.ScheduleRepository
	Window   time.Duration
}

func (h *VenueStatusHandler) Status(w http.ResponseWriter, r *http.Request) {
	ref, err := parseCurrentDateTime(r.URL.Query().Get("currentDateTime"))
	if err != nil {
		writePipelineError(w, r, err)
		return
	}

	critical, err := services.CriticalVenueStatus(r.Context(), h.Venues, h.Schedule, ref, h.Window)
	if err != nil {
		writePipelineError(w, r, err)
		return
	}

	res := dto.VenueStatusResponse{
		TotalCriticalVenues: len(critical),
		CurrentTime:         ref.Format(time.RFC3339),
		Day:                 ref.Weekday().String(),
		Venues:              make([]dto.CriticalVenueResponse, 0, len(critical)),
	}
	for _, cv := range critical {
		res.Venues = append(res.Venues, criticalVenueToDTO(cv))
	}

	writeJSON(w, r, http.StatusOK, res)
}
