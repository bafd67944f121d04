package handlers

import (
	"campus-route-service/internal/apperr"
	"encoding/json"
	"log"
	"net/http"
	"time"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// writePipelineError maps a scoring-pipeline failure onto the fault
// taxonomy. Client faults keep their message; server faults get a fixed
// body and the detail stays in the log.
func writePipelineError(w http.ResponseWriter, r *http.Request, err error) {
	log.Printf("request failed: method=%s path=%s kind=%s err=%v", r.Method, r.URL.Path, apperr.KindOf(err), err)

	switch apperr.KindOf(err) {
	case apperr.KindClientInput:
		writeError(w, r, http.StatusBadRequest, err.Error())
	case apperr.KindConfiguration:
		writeError(w, r, http.StatusInternalServerError, "service is not configured")
	case apperr.KindUpstreamProvider:
		writeError(w, r, http.StatusBadGateway, "directions provider error")
	case apperr.KindInfrastructure:
		writeError(w, r, http.StatusServiceUnavailable, "reference data unavailable")
	default:
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

// parseCurrentDateTime interprets the optional reference instant. Absent
// means wall-clock now; a malformed value is a client fault, never a
// silent default.
func parseCurrentDateTime(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", s, time.Local); err == nil {
		return t, nil
	}

	return time.Time{}, apperr.New(apperr.KindClientInput,
		"invalid currentDateTime %q: use ISO format YYYY-MM-DDTHH:MM:SS", s)
}
