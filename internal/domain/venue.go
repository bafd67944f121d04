package domain

// Venue is a physical room or space with a fixed geographic point and a
// stable identifier. Venues are immutable reference data created by the
// offline loader; the scoring pipeline never mutates them.
type Venue struct {
	ID       string
	RoomName string
	Floor    int
	Location Coordinates
}
