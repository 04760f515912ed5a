package events

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/campus-sports/arena/internal/apperr"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// New creates a new event store instance.
func New(db *sql.DB, restrictions RestrictionChecker) EventStore {
	return &store{db: db, restrictions: restrictions}
}

func (s *store) CreateEvent(event *Event, organizerCollegeID string) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.Status == "" {
		event.Status = EventPlanning
	}
	if _, err := ParseEventStatus(string(event.Status)); err != nil {
		return err
	}
	if event.StartTime >= event.EndTime {
		return apperr.New(apperr.KindInvalid, "event start time must be before end time")
	}

	for _, ts := range []int64{event.StartTime, event.EndTime} {
		restricted, err := s.restrictions.IsTimeRestricted(organizerCollegeID, time.Unix(ts, 0).UTC())
		if err != nil {
			return fmt.Errorf("failed to check restricted hours: %w", err)
		}
		if restricted {
			return apperr.New(apperr.KindConflict, "event cannot be scheduled during restricted college hours")
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO events (id, name, organizer_id, description, start_time, end_time, status, max_participants, registration_deadline)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, event.ID, event.Name, event.OrganizerID, event.Description, event.StartTime, event.EndTime,
		event.Status, event.MaxParticipants, event.RegistrationDeadline)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	log.Info("Event created", "eventID", event.ID, "name", event.Name)
	return nil
}

func (s *store) GetEvent(eventID string) (*Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`
		SELECT id, name, organizer_id, description, start_time, end_time, status, max_participants, registration_deadline
		FROM events WHERE id = ?
	`, eventID)
	return scanEvent(row)
}

func (s *store) ListEvents() ([]*Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, name, organizer_id, description, start_time, end_time, status, max_participants, registration_deadline
		FROM events ORDER BY start_time ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []*Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func (s *store) UpdateEventStatus(eventID string, status EventStatus) error {
	if _, err := ParseEventStatus(string(status)); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`UPDATE events SET status = ? WHERE id = ?`, status, eventID)
	if err != nil {
		return fmt.Errorf("failed to update event status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return apperr.New(apperr.KindNotFound, "event not found")
	}
	log.Info("Event status updated", "eventID", eventID, "status", status)
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*Event, error) {
	var event Event
	err := row.Scan(&event.ID, &event.Name, &event.OrganizerID, &event.Description,
		&event.StartTime, &event.EndTime, &event.Status, &event.MaxParticipants, &event.RegistrationDeadline)
	if err == sql.ErrNoRows {
		return nil, apperr.New(apperr.KindNotFound, "event not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan event: %w", err)
	}
	return &event, nil
}
