package api

import (
	"campus-route-service/internal/api/handlers"
	"campus-route-service/internal/ports"
	"campus-route-service/internal/services"
	"net/http"

	"github.com/go-playground/validator/v10"
	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// Deps carries everything the HTTP surface needs; handlers stay unaware of
// concrete adapters.
type Deps struct {
	Provider  ports.RouteProvider
	Index     ports.VenueIndex
	Venues    ports.VenueRepository
	Schedule  ports.ScheduleRepository
	Explainer ports.Explainer
	Scoring   services.ScoringConfig

	AllowedOrigins []string
}

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root.
func NewRouter(d Deps) http.Handler {
	r := mux.NewRouter()

	routeHandler := &handlers.RouteHandler{
		Provider:  d.Provider,
		Index:     d.Index,
		Schedule:  d.Schedule,
		Explainer: d.Explainer,
		Scoring:   d.Scoring,
		Validate:  validator.New(),
	}
	statusHandler := &handlers.VenueStatusHandler{
		Venues:   d.Venues,
		Schedule: d.Schedule,
		Window:   d.Scoring.CriticalWindow,
	}

	r.HandleFunc("/health", handlers.Health).Methods(http.MethodGet)
	r.HandleFunc("/routes", routeHandler.Routes).Methods(http.MethodPost)
	r.HandleFunc("/venues/status", statusHandler.Status).Methods(http.MethodGet)

	cors := gorillahandlers.CORS(
		gorillahandlers.AllowedOrigins(d.AllowedOrigins),
		gorillahandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		gorillahandlers.AllowedHeaders([]string{"Content-Type"}),
		gorillahandlers.AllowCredentials(),
	)

	return loggingMiddleware(cors(r))
}
