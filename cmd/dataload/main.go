// Command dataload transforms raw campus exports into store documents and
// replaces the venue and timetable collections. It is the offline loading
// step; the serving path never writes reference data.
//
// Raw venue export: {"LT17": {"roomName": "...", "floor": 1,
// "location": {"x": <lon>, "y": <lat>}}, ...}
// Raw timetable export: {"LT17": [{"day": "Monday", "classes": [...]}], ...}
package main

import (
	"campus-route-service/internal/adapters/mongodb"
	"campus-route-service/internal/config"
	"campus-route-service/internal/domain"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type rawVenue struct {
	RoomName string `json:"roomName"`
	Floor    int    `json:"floor"`
	Location struct {
		X float64 `json:"x"` // longitude
		Y float64 `json:"y"` // latitude
	} `json:"location"`
}

type rawDayEntry struct {
	Day     string     `json:"day"`
	Classes []rawClass `json:"classes"`
}

type rawClass struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Size      int    `json:"size"`
	Name      string `json:"name"`
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load(getEnv("CONFIG_PATH", "config.yml"))
	if err != nil {
		log.Fatal(err)
	}

	venuesPath := getEnv("VENUES_PATH", "data/venues.json")
	classesPath := getEnv("CLASSES_PATH", "data/classes.json")

	venues, err := loadVenues(venuesPath)
	if err != nil {
		log.Fatal(err)
	}

	classes, err := loadClasses(classesPath)
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	store, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := store.Close(ctx); err != nil {
			log.Printf("store close failed: %v", err)
		}
	}()

	log.Println("Replacing venue collection...")
	if err := store.ReplaceVenues(ctx, venues); err != nil {
		log.Fatal(err)
	}
	log.Printf("Loaded %d venues.", len(venues))

	log.Println("Replacing timetable collection...")
	if err := store.ReplaceClasses(ctx, classes); err != nil {
		log.Fatal(err)
	}
	log.Printf("Loaded %d classes.", len(classes))

	log.Println("Ensuring indexes...")
	if err := store.EnsureIndexes(ctx); err != nil {
		log.Fatal(err)
	}
	log.Println("Done.")
}

func loadVenues(path string) ([]domain.Venue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load venues: %w", err)
	}

	var raw map[string]rawVenue
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("load venues %q: %w", path, err)
	}

	venues := make([]domain.Venue, 0, len(raw))
	for id, v := range raw {
		venues = append(venues, domain.Venue{
			ID:       id,
			RoomName: v.RoomName,
			Floor:    v.Floor,
			Location: domain.Coordinates{Lon: v.Location.X, Lat: v.Location.Y},
		})
	}

	return venues, nil
}

// loadClasses flattens the per-venue, per-day nesting: each class becomes
// its own document carrying its venue id and day label.
func loadClasses(path string) ([]domain.Class, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load classes: %w", err)
	}

	var raw map[string][]rawDayEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("load classes %q: %w", path, err)
	}

	classes := make([]domain.Class, 0)
	for venueID, days := range raw {
		for _, d := range days {
			for _, rc := range d.Classes {
				c := domain.Class{
					VenueID: venueID,
					Day:     d.Day,
					Name:    rc.Name,
					Size:    rc.Size,
				}
				if start, err := domain.ParseClockTime(rc.StartTime); err == nil {
					c.Start = &start
				}
				if end, err := domain.ParseClockTime(rc.EndTime); err == nil {
					c.End = &end
				}
				classes = append(classes, c)
			}
		}
	}

	return classes, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
