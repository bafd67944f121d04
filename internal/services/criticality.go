package services

import (
	"campus-route-service/internal/domain"
	"time"
)

// DefaultCriticalWindow is the lookahead/lookback threshold around a class's
// start and end used to flag it as relevant to current crowding.
const DefaultCriticalWindow = 15 * time.Minute

// IsCritical reports whether the class is temporally critical at ref:
// it starts within the next window, ends within the next window, or started
// within the last window. The three conditions are non-exclusive and all
// bounds are inclusive.
//
// Times are combined with ref's calendar date, so the judgment is same-day
// wall-clock arithmetic. Classes with a missing start or end time are never
// critical.
func IsCritical(c domain.Class, ref time.Time, window time.Duration) bool {
	if c.Start == nil || c.End == nil {
		return false
	}

	start := c.Start.At(ref)
	end := c.End.At(ref)

	if d := start.Sub(ref); d >= 0 && d <= window {
		return true
	}
	if d := end.Sub(ref); d >= 0 && d <= window {
		return true
	}
	if d := ref.Sub(start); d >= 0 && d <= window {
		return true
	}

	return false
}

// CriticalClasses filters classes down to those critical at ref, preserving
// input order.
func CriticalClasses(classes []domain.Class, ref time.Time, window time.Duration) []domain.Class {
	out := make([]domain.Class, 0, len(classes))
	for _, c := range classes {
		if IsCritical(c, ref, window) {
			out = append(out, c)
		}
	}
	return out
}
