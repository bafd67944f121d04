package ports

import (
	"campus-route-service/internal/domain"
	"context"
)

// PlaceholderExplanation is substituted per route whenever explanation
// generation is unavailable, times out, or fails.
const PlaceholderExplanation = "Explanation not available."

// Optional port: one short natural-language sentence per ranked route, in
// the same order. Failures here must never fail a request; callers fall
// back to PlaceholderExplanation for every route.
type Explainer interface {
	ExplainRoutes(ctx context.Context, routes []domain.ScoredRoute) ([]string, error)
}
