package explain

import (
	"campus-route-service/internal/domain"
	"fmt"
	"math"
	"sort"
	"strings"
)

// Venues shown per route in the prompt; the busiest few carry the signal.
const maxVenuesPerRoute = 3

// formatRoutes renders the ranked routes into the single prompt block the
// model sees. Route 1 is always the recommended (lowest-penalty) route.
func formatRoutes(routes []domain.ScoredRoute) string {
	descriptions := make([]string, 0, len(routes))

	for i, r := range routes {
		var b strings.Builder

		fmt.Fprintf(&b, "Route %d:\n", i+1)
		fmt.Fprintf(&b, "  - Duration: %.1f minutes\n", r.Candidate.DurationSeconds/60)
		fmt.Fprintf(&b, "  - Distance: %.0f meters\n", r.Candidate.DistanceMeters)
		fmt.Fprintf(&b, "  - Crowdedness Score: %.0f\n", r.Penalty)
		fmt.Fprintf(&b, "  - Busy venues on route: %d", len(r.CriticalVenues))

		if details := venueDetails(r.CriticalVenues); len(details) > 0 {
			fmt.Fprintf(&b, "\n  Busy venues: %s", strings.Join(details, ", "))
		}

		descriptions = append(descriptions, b.String())
	}

	return strings.Join(descriptions, "\n\n")
}

// venueDetails summarizes the top busiest critical venues as
// "name (N people)" entries, ordered by total attendee count descending.
func venueDetails(venues []domain.CriticalVenue) []string {
	type venueLoad struct {
		name  string
		total int
	}

	loads := make([]venueLoad, 0, len(venues))
	for _, v := range venues {
		total := 0
		for _, c := range v.Classes {
			total += c.Size
		}
		name := v.Venue.RoomName
		if name == "" {
			name = "Unknown"
		}
		loads = append(loads, venueLoad{name: name, total: total})
	}

	sort.SliceStable(loads, func(a, b int) bool { return loads[a].total > loads[b].total })

	n := int(math.Min(float64(len(loads)), maxVenuesPerRoute))
	out := make([]string, 0, n)
	for _, l := range loads[:n] {
		out = append(out, fmt.Sprintf("%s (%d people)", l.name, l.total))
	}

	return out
}

func buildPrompt(routes []domain.ScoredRoute) string {
	return fmt.Sprintf(`You are helping a user choose between %d pedestrian route options.
The 'penalty_score' indicates crowdedness (lower is better - less crowded).

Here are ALL the route options:

%s

Please provide a very short, one-sentence explanation for EACH route in order.
Format your response EXACTLY as:
Route 1: [explanation]
Route 2: [explanation]
Route 3: [explanation]

Guidelines:
- Route 1 is ALWAYS the recommended route (lowest penalty score)
- For Route 1: Start with "Best choice:" and explain why (e.g., "Best choice: avoids 2 busy venues, only 1 min longer")
- For other routes: Explain the trade-off compared to Route 1 (e.g., "Faster but passes Main Gym with 80+ people")
- Mention specific venue names and crowd sizes when relevant
- Be encouraging and friendly
- ONE sentence per route maximum`,
		len(routes), formatRoutes(routes))
}

// parseExplanations extracts one explanation per route from the model's
// "Route N: ..." lines. Routes the model skipped get a generic fallback so
// the response always lines up with the ranked list.
func parseExplanations(text string, numRoutes int) []string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	out := make([]string, 0, numRoutes)

	for i := 1; i <= numRoutes; i++ {
		prefix := fmt.Sprintf("Route %d:", i)

		explanation := ""
		for _, line := range lines {
			if rest, ok := strings.CutPrefix(strings.TrimSpace(line), prefix); ok {
				explanation = strings.TrimSpace(rest)
				break
			}
		}

		if explanation == "" {
			if i == 1 {
				explanation = "Recommended route with lowest crowdedness."
			} else {
				explanation = "Alternative route option."
			}
		}

		out = append(out, explanation)
	}

	return out
}
