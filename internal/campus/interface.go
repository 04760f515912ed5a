package campus

import "time"

// CampusStore defines the interface for colleges, restricted days, venues
// and equipment.
type CampusStore interface {
	CreateCollege(college *College) error
	GetCollege(id string) (*College, error)

	// AddRestrictedDay registers a blackout window for a college.
	AddRestrictedDay(day *RestrictedDay) error

	// GetRestrictedDay returns the restricted-day row for (collegeID, weekday)
	// where is_restricted is set, or nil when the day is unrestricted.
	GetRestrictedDay(collegeID string, dayOfWeek int) (*RestrictedDay, error)

	// IsTimeRestricted reports whether t falls inside the college's blackout
	// window. Pure read, no side effects.
	IsTimeRestricted(collegeID string, t time.Time) (bool, error)

	CreateVenue(venue *Venue) error
	GetVenue(id string) (*Venue, error)

	AddEquipment(eq *Equipment) error
	ListEquipment(collegeID string) ([]Equipment, error)
}
