package scheduling

// ScheduleStore handles venue bookings for matches.
type ScheduleStore interface {
	// CreateSchedule books a venue for a match. It fails when the venue does
	// not exist, is unavailable, or is already booked for an overlapping
	// interval. The conflict check and the insert run as one serialized
	// transaction.
	CreateSchedule(schedule *Schedule) error

	// GetSchedule retrieves a booking by ID.
	GetSchedule(scheduleID string) (*Schedule, error)

	// ListSchedulesForVenue returns a venue's bookings ordered by start time.
	ListSchedulesForVenue(venueID string) ([]*Schedule, error)
}
