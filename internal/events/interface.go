package events

// EventStore handles events organized on campus.
type EventStore interface {
	// CreateEvent creates an event after checking the organizer college's
	// restricted hours for both the start and the end time.
	CreateEvent(event *Event, organizerCollegeID string) error

	// GetEvent retrieves an event by ID.
	GetEvent(eventID string) (*Event, error)

	// ListEvents returns all events ordered by start time.
	ListEvents() ([]*Event, error)

	// UpdateEventStatus transitions an event to a new lifecycle state.
	UpdateEventStatus(eventID string, status EventStatus) error
}
