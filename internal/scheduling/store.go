package scheduling

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/campus-sports/arena/internal/apperr"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// NewStore creates a new schedule store instance.
func NewStore(db *sql.DB, clock clockwork.Clock) ScheduleStore {
	return &store{db: db, clock: clock}
}

func (s *store) CreateSchedule(schedule *Schedule) error {
	if schedule.ID == "" {
		schedule.ID = uuid.New().String()
	}
	if schedule.StartTime >= schedule.EndTime {
		return apperr.New(apperr.KindInvalid, "schedule start time must be before end time")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var available bool
	err = tx.QueryRow(`SELECT is_available FROM venues WHERE id = ?`, schedule.VenueID).Scan(&available)
	if err == sql.ErrNoRows {
		return apperr.New(apperr.KindNotFound, "venue not found")
	}
	if err != nil {
		return fmt.Errorf("failed to get venue: %w", err)
	}
	if !available {
		return apperr.New(apperr.KindConflict, "venue is not available for booking")
	}

	// Half-open intervals: a booking ending exactly when another starts is fine.
	var overlapping int
	err = tx.QueryRow(`
		SELECT COUNT(*)
		FROM schedules
		WHERE venue_id = ? AND start_time < ? AND end_time > ?
	`, schedule.VenueID, schedule.EndTime, schedule.StartTime).Scan(&overlapping)
	if err != nil {
		return fmt.Errorf("failed to check for overlapping schedules: %w", err)
	}
	if overlapping > 0 {
		return apperr.New(apperr.KindConflict, "venue is already booked for this time slot")
	}

	var equipmentJSON sql.NullString
	if len(schedule.Equipment) > 0 {
		raw, err := json.Marshal(schedule.Equipment)
		if err != nil {
			return fmt.Errorf("failed to marshal equipment list: %w", err)
		}
		equipmentJSON = sql.NullString{String: string(raw), Valid: true}
	}

	_, err = tx.Exec(`
		INSERT INTO schedules (id, match_id, venue_id, start_time, end_time, equipment_json)
		VALUES (?, ?, ?, ?, ?, ?)
	`, schedule.ID, schedule.MatchID, schedule.VenueID, schedule.StartTime, schedule.EndTime, equipmentJSON)
	if err != nil {
		return fmt.Errorf("failed to insert schedule: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	log.Info("Venue booked", "scheduleID", schedule.ID, "venueID", schedule.VenueID, "matchID", schedule.MatchID)
	return nil
}

func (s *store) GetSchedule(scheduleID string) (*Schedule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`
		SELECT id, match_id, venue_id, start_time, end_time, equipment_json
		FROM schedules WHERE id = ?
	`, scheduleID)
	return scanSchedule(row)
}

func (s *store) ListSchedulesForVenue(venueID string) ([]*Schedule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, match_id, venue_id, start_time, end_time, equipment_json
		FROM schedules WHERE venue_id = ? ORDER BY start_time ASC
	`, venueID)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	defer rows.Close()

	var schedules []*Schedule
	for rows.Next() {
		sched, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, sched)
	}
	return schedules, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSchedule(row rowScanner) (*Schedule, error) {
	var sched Schedule
	var equipmentJSON sql.NullString
	err := row.Scan(&sched.ID, &sched.MatchID, &sched.VenueID, &sched.StartTime, &sched.EndTime, &equipmentJSON)
	if err == sql.ErrNoRows {
		return nil, apperr.New(apperr.KindNotFound, "schedule not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan schedule: %w", err)
	}
	if equipmentJSON.Valid {
		if err := json.Unmarshal([]byte(equipmentJSON.String), &sched.Equipment); err != nil {
			return nil, fmt.Errorf("failed to unmarshal equipment list: %w", err)
		}
	}
	return &sched, nil
}
