package domain

// Class is a scheduled occupancy event at a single venue: a time-bounded
// activity with an expected attendee count.
//
// Start and End are optional: timetable rows with missing or garbled times
// are kept but can never be judged time-critical. Within one Day label the
// invariant Start <= End holds for well-formed rows.
type Class struct {
	ClassID string
	VenueID string
	Day     string
	Name    string
	Start   *ClockTime
	End     *ClockTime
	Size    int
}
