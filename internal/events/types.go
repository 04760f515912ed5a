package events

import (
	"database/sql"
	"sync"
	"time"

	"github.com/campus-sports/arena/internal/apperr"
)

// store handles database operations for events.
type store struct {
	db           *sql.DB
	restrictions RestrictionChecker
	mu           sync.RWMutex
}

// EventStatus is the closed set of event lifecycle states.
type EventStatus string

const (
	EventPlanning  EventStatus = "planning"
	EventOngoing   EventStatus = "ongoing"
	EventCompleted EventStatus = "completed"
	EventCancelled EventStatus = "cancelled"
)

// ParseEventStatus validates a raw status string against the closed set.
func ParseEventStatus(raw string) (EventStatus, error) {
	switch EventStatus(raw) {
	case EventPlanning:
		return EventPlanning, nil
	case EventOngoing:
		return EventOngoing, nil
	case EventCompleted:
		return EventCompleted, nil
	case EventCancelled:
		return EventCancelled, nil
	}
	return "", apperr.Newf(apperr.KindInvalid, "unknown event status: %q", raw)
}

// Event is a multi-match happening organized by a user, such as a tournament
// or a sports day.
type Event struct {
	ID                   string      `json:"id"`
	Name                 string      `json:"name"`
	OrganizerID          string      `json:"organizer_id"`
	Description          *string     `json:"description,omitempty"`
	StartTime            int64       `json:"start_time"`
	EndTime              int64       `json:"end_time"`
	Status               EventStatus `json:"status"`
	MaxParticipants      *int        `json:"max_participants,omitempty"`
	RegistrationDeadline *int64      `json:"registration_deadline,omitempty"`
}

// RestrictionChecker is the slice of the campus store that events needs.
type RestrictionChecker interface {
	IsTimeRestricted(collegeID string, t time.Time) (bool, error)
}
