package domain

import (
	"fmt"
	"strconv"
	"time"
)

// ClockTime is a wall-clock time of day with minute granularity and no
// timezone, as stored in the timetable ("HHMM", e.g. "1430").
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClockTime parses the timetable's 4-digit "HHMM" representation.
func ParseClockTime(s string) (ClockTime, error) {
	if len(s) != 4 {
		return ClockTime{}, fmt.Errorf("parse clock time: want 4-digit HHMM, got %q", s)
	}

	h, err := strconv.Atoi(s[:2])
	if err != nil {
		return ClockTime{}, fmt.Errorf("parse clock time %q: %w", s, err)
	}
	m, err := strconv.Atoi(s[2:])
	if err != nil {
		return ClockTime{}, fmt.Errorf("parse clock time %q: %w", s, err)
	}

	if h < 0 || h > 23 || m < 0 || m > 59 {
		return ClockTime{}, fmt.Errorf("parse clock time: %q out of range", s)
	}

	return ClockTime{Hour: h, Minute: m}, nil
}

// At combines the time of day with the calendar date of ref, in ref's location.
func (c ClockTime) At(ref time.Time) time.Time {
	return time.Date(ref.Year(), ref.Month(), ref.Day(), c.Hour, c.Minute, 0, 0, ref.Location())
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d%02d", c.Hour, c.Minute)
}
