package main

import (
	"campus-route-service/internal/adapters/explain"
	"campus-route-service/internal/adapters/mongodb"
	"campus-route-service/internal/adapters/routing"
	"campus-route-service/internal/api"
	"campus-route-service/internal/config"
	"campus-route-service/internal/ports"
	"campus-route-service/internal/services"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// main is the application composition root.
// It wires concrete adapters (MongoDB, OpenRouteService, Anthropic) behind
// ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load(getEnv("CONFIG_PATH", "config.yml"))
	if err != nil {
		log.Fatal(err)
	}

	orsKey := os.Getenv("ORS_API_KEY")
	if strings.TrimSpace(orsKey) == "" {
		log.Fatal("ORS_API_KEY is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	store, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		cancel()
		log.Fatal(err)
	}

	// The 2dsphere index is an idempotent startup action, never part of
	// per-request logic.
	if err := store.EnsureIndexes(ctx); err != nil {
		cancel()
		log.Fatal(err)
	}
	cancel()

	defer func() {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer closeCancel()
		if err := store.Close(closeCtx); err != nil {
			log.Printf("store close failed: %v", err)
		}
	}()

	provider, err := routing.NewORSRouteProvider(orsKey, cfg.Routing.BaseURL, cfg.Routing.Profile, routing.AlternativesConfig{
		TargetCount:  cfg.Routing.TargetCount,
		WeightFactor: cfg.Routing.WeightFactor,
		ShareFactor:  cfg.Routing.ShareFactor,
	})
	if err != nil {
		log.Fatal(err)
	}

	// Explanations are optional: without a key the service still returns
	// fully scored, ranked routes with placeholder text.
	var explainer ports.Explainer
	if key := os.Getenv("ANTHROPIC_API_KEY"); strings.TrimSpace(key) != "" {
		e, err := explain.NewAnthropicExplainer(key, cfg.Explain.Model,
			time.Duration(cfg.Explain.TimeoutSeconds)*time.Second)
		if err != nil {
			log.Fatal(err)
		}
		explainer = e
	} else {
		log.Println("ANTHROPIC_API_KEY not set; route explanations disabled")
	}

	router := api.NewRouter(api.Deps{
		Provider:  provider,
		Index:     store,
		Venues:    store,
		Schedule:  store,
		Explainer: explainer,
		Scoring: services.ScoringConfig{
			RadiusMeters:   cfg.Scoring.RadiusMeters,
			SampleStride:   cfg.Scoring.SampleStride,
			CriticalWindow: time.Duration(cfg.Scoring.CriticalWindowMinutes) * time.Minute,
		},
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	// Timeouts are tuned for directions calls plus explanation generation
	// (external API latency).
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server listening addr=%s", addr)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
