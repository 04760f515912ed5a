package campus

import (
	"database/sql"
	"sync"

	"github.com/campus-sports/arena/internal/apperr"
)

// store handles all database operations for colleges and their facilities.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// College represents a participating college.
type College struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Location     string `json:"location"`
	ContactEmail string `json:"contact_email"`
}

// RestrictedDay is a college-defined blackout window. DayOfWeek follows the
// 0=Monday .. 6=Sunday convention. StartTime/EndTime are "HH:MM" time-of-day
// bounds; when either is absent the whole day is restricted.
type RestrictedDay struct {
	ID           string  `json:"id"`
	CollegeID    string  `json:"college_id"`
	DayOfWeek    int     `json:"day_of_week"`
	IsRestricted bool    `json:"is_restricted"`
	StartTime    *string `json:"start_time,omitempty"`
	EndTime      *string `json:"end_time,omitempty"`
}

// Venue is a bookable playing facility owned by a college.
type Venue struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	Capacity    int    `json:"capacity"`
	CollegeID   string `json:"college_id"`
	IsAvailable bool   `json:"is_available"`
}

// Condition is the closed set of equipment conditions.
type Condition string

const (
	ConditionExcellent        Condition = "excellent"
	ConditionGood             Condition = "good"
	ConditionNeedsReplacement Condition = "needs_replacement"
)

// ParseCondition validates a raw condition string against the closed set.
func ParseCondition(raw string) (Condition, error) {
	switch Condition(raw) {
	case ConditionExcellent:
		return ConditionExcellent, nil
	case ConditionGood:
		return ConditionGood, nil
	case ConditionNeedsReplacement:
		return ConditionNeedsReplacement, nil
	}
	return "", apperr.Newf(apperr.KindInvalid, "unknown equipment condition: %q", raw)
}

// Equipment is a stock of gear owned by a college.
type Equipment struct {
	ID        string    `json:"id"`
	CollegeID string    `json:"college_id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	Condition Condition `json:"condition"`
}
