package campus

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/campus-sports/arena/internal/apperr"
	"github.com/charmbracelet/log"
)

// New creates a new CampusStore.
func New(db *sql.DB) CampusStore {
	return &store{
		db: db,
	}
}

func (s *store) CreateCollege(college *College) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO colleges (id, name, location, contact_email)
		VALUES (?, ?, ?, ?)
	`, college.ID, college.Name, college.Location, college.ContactEmail)
	if err != nil {
		return fmt.Errorf("failed to create college: %w", err)
	}

	log.Info("Created college", "id", college.ID, "name", college.Name)
	return nil
}

func (s *store) GetCollege(id string) (*College, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var college College
	err := s.db.QueryRow(`
		SELECT id, name, location, contact_email FROM colleges WHERE id = ?
	`, id).Scan(&college.ID, &college.Name, &college.Location, &college.ContactEmail)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.New(apperr.KindNotFound, "college not found")
		}
		return nil, fmt.Errorf("failed to get college: %w", err)
	}
	return &college, nil
}

func (s *store) AddRestrictedDay(day *RestrictedDay) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if day.DayOfWeek < 0 || day.DayOfWeek > 6 {
		return apperr.New(apperr.KindInvalid, "day_of_week must be between 0 and 6")
	}

	_, err := s.db.Exec(`
		INSERT INTO restricted_days (id, college_id, day_of_week, is_restricted, start_time, end_time)
		VALUES (?, ?, ?, ?, ?, ?)
	`, day.ID, day.CollegeID, day.DayOfWeek, day.IsRestricted, day.StartTime, day.EndTime)
	if err != nil {
		return fmt.Errorf("failed to add restricted day: %w", err)
	}

	log.Info("Added restricted day", "college_id", day.CollegeID, "day_of_week", day.DayOfWeek)
	return nil
}

func (s *store) GetRestrictedDay(collegeID string, dayOfWeek int) (*RestrictedDay, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getRestrictedDay(collegeID, dayOfWeek)
}

func (s *store) getRestrictedDay(collegeID string, dayOfWeek int) (*RestrictedDay, error) {
	var day RestrictedDay
	err := s.db.QueryRow(`
		SELECT id, college_id, day_of_week, is_restricted, start_time, end_time
		FROM restricted_days
		WHERE college_id = ? AND day_of_week = ? AND is_restricted = 1
	`, collegeID, dayOfWeek).Scan(
		&day.ID,
		&day.CollegeID,
		&day.DayOfWeek,
		&day.IsRestricted,
		&day.StartTime,
		&day.EndTime,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Unrestricted day.
		}
		return nil, fmt.Errorf("failed to get restricted day: %w", err)
	}
	return &day, nil
}

// IsTimeRestricted reports whether t falls inside the college's blackout
// window for that weekday. A row without both time bounds restricts the whole
// day; with bounds the window is inclusive at both ends.
func (s *store) IsTimeRestricted(collegeID string, t time.Time) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	day, err := s.getRestrictedDay(collegeID, mondayIndexedWeekday(t))
	if err != nil {
		return false, err
	}
	if day == nil {
		return false, nil
	}

	if day.StartTime != nil && day.EndTime != nil {
		// Zero-padded HH:MM strings compare correctly lexicographically.
		timeOfDay := t.Format("15:04")
		return *day.StartTime <= timeOfDay && timeOfDay <= *day.EndTime, nil
	}
	return true, nil
}

// mondayIndexedWeekday maps time.Weekday (Sunday=0) onto the stored
// 0=Monday .. 6=Sunday convention.
func mondayIndexedWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

func (s *store) CreateVenue(venue *Venue) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if venue.Capacity <= 0 {
		return apperr.New(apperr.KindInvalid, "venue capacity must be positive")
	}

	_, err := s.db.Exec(`
		INSERT INTO venues (id, name, location, capacity, college_id, is_available)
		VALUES (?, ?, ?, ?, ?, ?)
	`, venue.ID, venue.Name, venue.Location, venue.Capacity, venue.CollegeID, venue.IsAvailable)
	if err != nil {
		return fmt.Errorf("failed to create venue: %w", err)
	}

	log.Info("Created venue", "id", venue.ID, "name", venue.Name, "college_id", venue.CollegeID)
	return nil
}

func (s *store) GetVenue(id string) (*Venue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var venue Venue
	err := s.db.QueryRow(`
		SELECT id, name, location, capacity, college_id, is_available FROM venues WHERE id = ?
	`, id).Scan(&venue.ID, &venue.Name, &venue.Location, &venue.Capacity, &venue.CollegeID, &venue.IsAvailable)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.New(apperr.KindNotFound, "venue not found")
		}
		return nil, fmt.Errorf("failed to get venue: %w", err)
	}
	return &venue, nil
}

func (s *store) AddEquipment(eq *Equipment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if eq.Condition == "" {
		eq.Condition = ConditionGood
	}
	if _, err := ParseCondition(string(eq.Condition)); err != nil {
		return err
	}
	if eq.Quantity < 0 {
		return apperr.New(apperr.KindInvalid, "equipment quantity must not be negative")
	}

	_, err := s.db.Exec(`
		INSERT INTO equipment (id, college_id, name, quantity, condition)
		VALUES (?, ?, ?, ?, ?)
	`, eq.ID, eq.CollegeID, eq.Name, eq.Quantity, string(eq.Condition))
	if err != nil {
		return fmt.Errorf("failed to add equipment: %w", err)
	}

	log.Info("Added equipment", "college_id", eq.CollegeID, "name", eq.Name, "quantity", eq.Quantity)
	return nil
}

func (s *store) ListEquipment(collegeID string) ([]Equipment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, college_id, name, quantity, condition
		FROM equipment WHERE college_id = ? ORDER BY name
	`, collegeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query equipment: %w", err)
	}
	defer rows.Close()

	var items []Equipment
	for rows.Next() {
		var eq Equipment
		var condition string
		if err := rows.Scan(&eq.ID, &eq.CollegeID, &eq.Name, &eq.Quantity, &condition); err != nil {
			return nil, fmt.Errorf("failed to scan equipment row: %w", err)
		}
		eq.Condition = Condition(condition)
		items = append(items, eq)
	}
	return items, rows.Err()
}
